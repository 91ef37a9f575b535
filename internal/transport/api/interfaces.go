package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProvisioningServicer interface {
	Provision(ctx context.Context, req service.ProvisionRequest) (*service.ProvisionResult, error)
}

type LifecycleServicer interface {
	Authorize(ctx context.Context, actor domain.Actor, serverID uuid.UUID) (*domain.Server, error)
	List(ctx context.Context, ownerID int64) ([]domain.Server, error)
	Reconcile(ctx context.Context, serverID uuid.UUID) (*domain.Server, error)
	Power(ctx context.Context, serverID uuid.UUID, action domain.PowerAction) (*domain.Server, error)
	Rebuild(ctx context.Context, args service.RebuildArgs) (*domain.Server, error)
	Delete(ctx context.Context, serverID uuid.UUID) (*service.DeleteResult, error)
}

type LedgerServicer interface {
	Currency() string
	GetBalance(ctx context.Context, ownerID int64, currency string) (decimal.Decimal, error)
	Transactions(ctx context.Context, ownerID int64, currency string, limit uint) ([]domain.LedgerTransaction, error)
	Credit(ctx context.Context, args domain.CreditArgs) (*domain.LedgerEntry, error)
}

type PricingServicer interface {
	Resolve(ctx context.Context, planID, location string) (*domain.Price, error)
	PriceList(ctx context.Context, location string) ([]domain.Price, error)
	Plans() []domain.Plan
	SetOverride(ctx context.Context, planID string, hourly, monthly decimal.Decimal) (*domain.PricingOverride, error)
	ResetOverride(ctx context.Context, planID string) error
}
