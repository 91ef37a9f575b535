package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/jellydator/ttlcache/v3"
	"github.com/shopspring/decimal"
)

const (
	hourlyPrecision  = 4
	monthlyPrecision = 2

	DefaultPricingCacheTTL = 5 * time.Second
)

// basePrice цена плана до применения коэффициента локации.
type basePrice struct {
	hourly  decimal.Decimal
	monthly decimal.Decimal
	source  domain.PriceSource
}

type PricingService struct {
	uow          uow.UOW
	catalog      Catalog
	overrideRepo PricingOverrideRepository
	cache        *ttlcache.Cache[string, basePrice]
}

func NewPricingService(u uow.UOW, catalog Catalog, cacheTTL time.Duration) (*PricingService, error) {
	overrideRepo, err := uow.GetRepositoryAs[PricingOverrideRepository](
		u,
		uow.RepositoryName(repoargs.PricingOverrideRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultPricingCacheTTL
	}
	cache := ttlcache.New[string, basePrice](
		ttlcache.WithTTL[string, basePrice](cacheTTL),
		// чтение не продлевает срок жизни записи.
		ttlcache.WithDisableTouchOnHit[string, basePrice](),
	)
	return &PricingService{
		uow:          u,
		catalog:      catalog,
		overrideRepo: overrideRepo,
		cache:        cache,
	}, nil
}

// Resolve возвращает цену плана planID в локации location.
//
// Алгоритм:
//  1. Берет активное переопределение цены, если оно есть, иначе цену из каталога.
//  2. Умножает обе цены на коэффициент локации (неизвестная локация - коэффициент 1).
//  3. Округляет почасовую цену до 4 знаков, месячную до 2.
//
// Неизвестный план - ErrPlanNotFound.
func (p *PricingService) Resolve(ctx context.Context, planID, location string) (*domain.Price, error) {
	base, err := p.basePrice(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("resolve price of %s: %w", planID, err)
	}
	multiplier := p.catalog.Multiplier(location)
	return &domain.Price{
		PlanID:   planID,
		Location: location,
		Hourly:   base.hourly.Mul(multiplier).Round(hourlyPrecision),
		Monthly:  base.monthly.Mul(multiplier).Round(monthlyPrecision),
		Source:   base.source,
	}, nil
}

// PriceList цены всех планов каталога в локации location.
func (p *PricingService) PriceList(ctx context.Context, location string) ([]domain.Price, error) {
	plans := p.catalog.Plans()
	prices := make([]domain.Price, 0, len(plans))
	for _, plan := range plans {
		price, err := p.Resolve(ctx, plan.ID, location)
		if err != nil {
			return nil, err
		}
		prices = append(prices, *price)
	}
	return prices, nil
}

func (p *PricingService) Plans() []domain.Plan {
	return p.catalog.Plans()
}

// SetOverride выставляет цену плана поверх каталожной. Обе цены должны быть положительными.
func (p *PricingService) SetOverride(
	ctx context.Context,
	planID string,
	hourly, monthly decimal.Decimal,
) (*domain.PricingOverride, error) {
	if !hourly.IsPositive() || !monthly.IsPositive() {
		return nil, fmt.Errorf("set price override of %s: %w: prices must be positive", planID, domain.ErrValidation)
	}
	if _, err := p.catalog.Plan(planID); err != nil {
		return nil, fmt.Errorf("set price override: %w", err)
	}
	override, err := p.overrideRepo.Upsert(ctx, planID, hourly, monthly)
	if err != nil {
		return nil, fmt.Errorf("set price override of %s: %w", planID, err)
	}
	p.Invalidate()
	return override, nil
}

// ResetOverride возвращает плану каталожную цену.
func (p *PricingService) ResetOverride(ctx context.Context, planID string) error {
	if _, err := p.catalog.Plan(planID); err != nil {
		return fmt.Errorf("reset price override: %w", err)
	}
	err := p.overrideRepo.Deactivate(ctx, planID)
	p.Invalidate()
	if err != nil {
		return fmt.Errorf("reset price override of %s: %w", planID, err)
	}
	return nil
}

func (p *PricingService) Overrides(ctx context.Context) ([]domain.PricingOverride, error) {
	overrides, err := p.overrideRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list price overrides: %w", err)
	}
	return overrides, nil
}

// Invalidate сбрасывает кеш цен. Вызывается синхронно после каждого изменения переопределений.
func (p *PricingService) Invalidate() {
	p.cache.DeleteAll()
}

func (p *PricingService) basePrice(ctx context.Context, planID string) (basePrice, error) {
	if item := p.cache.Get(planID); item != nil {
		return item.Value(), nil
	}

	plan, err := p.catalog.Plan(planID)
	if err != nil {
		return basePrice{}, err //nolint:wrapcheck
	}

	base := basePrice{hourly: plan.Hourly, monthly: plan.Monthly, source: domain.PriceSourceCatalog}

	override, err := p.overrideRepo.GetActive(ctx, planID)
	switch {
	case err == nil:
		base = basePrice{hourly: override.Hourly, monthly: override.Monthly, source: domain.PriceSourceOverride}
	case errors.Is(err, domain.ErrRecordNotFound):
	default:
		return basePrice{}, err //nolint:wrapcheck
	}

	p.cache.Set(planID, base, ttlcache.DefaultTTL)
	return base, nil
}
