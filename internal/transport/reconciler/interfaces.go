package reconciler

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/google/uuid"
)

type Servicer interface {
	PendingReconcile(ctx context.Context, limit uint) ([]domain.Server, error)
	Reconcile(ctx context.Context, serverID uuid.UUID) (*domain.Server, error)
	FindOrphans(ctx context.Context) ([]domain.ProviderInstance, error)
}
