package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-vps/internal/metrics"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	PricingService      *PricingService
	LedgerService       *LedgerService
	ProvisioningService *ProvisioningService
	LifecycleService    *LifecycleService
}

type FactoryArgs struct {
	UOW             uow.UOW
	Catalog         Catalog
	Provider        Provider
	Logger          *logrus.Logger
	Metrics         *metrics.Metrics
	Currency        string
	PricingCacheTTL time.Duration
	ProviderTimeout time.Duration
}

func Factory(args FactoryArgs) (*AppServices, error) {
	pricingService, pricingErr := NewPricingService(args.UOW, args.Catalog, args.PricingCacheTTL)
	if pricingErr != nil {
		return nil, fmt.Errorf("service factory: %s", pricingErr.Error())
	}

	ledgerService, ledgerErr := NewLedgerService(args.UOW, args.Currency, args.Metrics)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerErr.Error())
	}

	provisioningService, provisioningErr := NewProvisioningService(ProvisioningServiceArgs{
		UOW:             args.UOW,
		Catalog:         args.Catalog,
		Pricing:         pricingService,
		Ledger:          ledgerService,
		Provider:        args.Provider,
		Logger:          args.Logger,
		Metrics:         args.Metrics,
		Currency:        ledgerService.Currency(),
		ProviderTimeout: args.ProviderTimeout,
	})
	if provisioningErr != nil {
		return nil, fmt.Errorf("service factory: %s", provisioningErr.Error())
	}

	lifecycleService, lifecycleErr := NewLifecycleService(LifecycleServiceArgs{
		UOW:             args.UOW,
		Provider:        args.Provider,
		Logger:          args.Logger,
		Metrics:         args.Metrics,
		ProviderTimeout: args.ProviderTimeout,
	})
	if lifecycleErr != nil {
		return nil, fmt.Errorf("service factory: %s", lifecycleErr.Error())
	}

	return &AppServices{
		PricingService:      pricingService,
		LedgerService:       ledgerService,
		ProvisioningService: provisioningService,
		LifecycleService:    lifecycleService,
	}, nil
}
