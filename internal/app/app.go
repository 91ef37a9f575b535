package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-vps/internal/catalog"
	"github.com/fsdevblog/groph-vps/internal/config"
	"github.com/fsdevblog/groph-vps/internal/metrics"
	"github.com/fsdevblog/groph-vps/internal/provider/hcloud"
	"github.com/fsdevblog/groph-vps/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/fsdevblog/groph-vps/internal/service"
	"github.com/fsdevblog/groph-vps/internal/transport/api"
	"github.com/fsdevblog/groph-vps/internal/transport/reconciler"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Version string
}

func New(conf *config.Config, l *logrus.Logger, version string) *App {
	return &App{
		Config:  conf,
		Logger:  l,
		Version: version,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":          a.Config.RunAddress,
		"catalog":          a.Config.CatalogFile,
		"currency":         a.Config.DefaultCurrency,
		"provider_timeout": a.Config.ProviderTimeout.String(),
		"version":          a.Version,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	plans, catalogErr := loadCatalog(a.Config.CatalogFile)
	if catalogErr != nil {
		return fmt.Errorf("app run: %s", catalogErr.Error())
	}

	m := metrics.New()

	providerOpts := []hcloud.Option{hcloud.WithLogger(a.Logger)}
	if a.Config.HCloudEndpoint != "" {
		providerOpts = append(providerOpts, hcloud.WithEndpoint(a.Config.HCloudEndpoint))
	}
	provider := hcloud.New(a.Config.HCloudToken, a.Version, providerOpts...)

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:             unitOfWork,
		Catalog:         plans,
		Provider:        provider,
		Logger:          a.Logger,
		Metrics:         m,
		Currency:        a.Config.DefaultCurrency,
		PricingCacheTTL: a.Config.PricingCacheTTL,
		ProviderTimeout: a.Config.ProviderTimeout,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		Provisioner:        services.ProvisioningService,
		Lifecycle:          services.LifecycleService,
		Ledger:             services.LedgerService,
		Pricing:            services.PricingService,
		JWTSecretKey:       []byte(a.Config.JWTSecret),
		MetricsGatherer:    m.Registry(),
		CORSOrigins:        a.Config.CORSOrigins,
		ProvisionPerMinute: a.Config.ProvisionRatePerMinute,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	processor := reconciler.New(services.LifecycleService, a.Logger).
		SetWorkers(a.Config.ReconcileWorkers).
		SetLimitPerIteration(a.Config.ReconcileBatch).
		SetInterval(a.Config.ReconcileInterval).
		SetOrphanSweepInterval(a.Config.OrphanSweepInterval)

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.WalletRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWalletRepository(dbtx)
		},
		repoargs.LedgerTransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLedgerTransactionRepository(dbtx)
		},
		repoargs.ServerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewServerRepository(dbtx)
		},
		repoargs.PricingOverrideRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPricingOverrideRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}
