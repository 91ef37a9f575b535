package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"

	"github.com/fsdevblog/groph-vps/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-vps/pkg/uow/mocks"
)

// fakeServer сервер со случайными владельцем и именем.
func fakeServer(status domain.ServerStatus) *domain.Server {
	return &domain.Server{
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		OwnerID:      int64(gofakeit.Number(1, 1_000_000)),
		OwnerEmail:   gofakeit.Email(),
		InstanceID:   gofakeit.DigitN(8),
		Hostname:     "web-" + strings.ToLower(gofakeit.LetterN(8)),
		Region:       "fsn1",
		Image:        "ubuntu-24.04",
		PlanID:       "standard-2",
		VCPU:         2,
		MemoryMB:     4096,
		DiskGB:       80,
		Status:       status,
		HourlyCost:   decimal.RequireFromString("0.03"),
		Currency:     DefaultCurrency,
		BillingStart: time.Now(),
	}
}

// authorizedKey публичный ключ в формате authorized_keys.
func authorizedKey(t *testing.T, comment string) string {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	sshPub, err := ssh.NewPublicKey(pub)
	require.NoError(t, err)
	key := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(sshPub)))
	if comment != "" {
		key += " " + comment
	}
	return key
}

// runInTX настраивает мок UOW так, чтобы Do выполнял функцию с переданной мок транзакцией.
func runInTX(mockUOW *uowmocks.MockUOW, mockTX *uowmocks.MockTX) {
	mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, mockTX)
		},
	).AnyTimes()
}
