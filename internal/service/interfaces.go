package service

import (
	"context"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type WalletRepository interface {
	FindByOwner(ctx context.Context, ownerID int64, currency string) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, ownerID int64, currency string) (*domain.Wallet, error)
	CreateIfNotExists(ctx context.Context, ownerID int64, currency string) error
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.Wallet, error)
}

type LedgerTransactionRepository interface {
	Create(ctx context.Context, args repoargs.LedgerTransactionCreate) (*domain.LedgerTransaction, error)
	GetByOwner(ctx context.Context, ownerID int64, currency string, limit uint) ([]domain.LedgerTransaction, error)
	SumCompleted(ctx context.Context, walletID int64) (*repoargs.LedgerSum, error)
}

type ServerRepository interface {
	Create(ctx context.Context, s *domain.Server) (*domain.Server, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Server, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Server, error)
	GetByStatuses(ctx context.Context, statuses []domain.ServerStatus, limit uint) ([]domain.Server, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ServerStatus) (bool, error)
	// MarkInstanceMissing исключает сервер из фоновой сверки. true, если отметка поставлена впервые.
	MarkInstanceMissing(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateAfterRebuild(ctx context.Context, id uuid.UUID, args repoargs.ServerRebuilt) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistingInstanceIDs(ctx context.Context, ids []string) ([]string, error)
}

type PricingOverrideRepository interface {
	GetActive(ctx context.Context, planID string) (*domain.PricingOverride, error)
	Upsert(ctx context.Context, planID string, hourly, monthly decimal.Decimal) (*domain.PricingOverride, error)
	Deactivate(ctx context.Context, planID string) error
	ListActive(ctx context.Context) ([]domain.PricingOverride, error)
}

// Provider API облачного провайдера. Ошибки возвращаются как *domain.ProviderError.
type Provider interface {
	CreateInstance(ctx context.Context, args domain.CreateInstanceArgs) (*domain.ProviderInstance, error)
	GetInstance(ctx context.Context, id string) (*domain.ProviderInstance, error)
	PowerAction(ctx context.Context, id string, action domain.PowerAction) error
	RebuildInstance(ctx context.Context, id, image string, authorizedKeys []string) error
	// DeleteInstance считает отсутствующий инстанс успешно удаленным.
	DeleteInstance(ctx context.Context, id string) error
	ListInstances(ctx context.Context, labels map[string]string) ([]domain.ProviderInstance, error)
}

// Catalog статический каталог планов и локаций.
type Catalog interface {
	Plan(id string) (domain.Plan, error)
	Plans() []domain.Plan
	Location(id string) (domain.Location, bool)
	Multiplier(location string) decimal.Decimal
}

// Ниже интерфейсы сервисов, используемые другими сервисами.

type PriceResolver interface {
	Resolve(ctx context.Context, planID, location string) (*domain.Price, error)
}

type Ledger interface {
	CanAfford(ctx context.Context, ownerID int64, currency string, required decimal.Decimal) (bool, error)
	Debit(ctx context.Context, args domain.DebitArgs) (*domain.LedgerEntry, error)
}
