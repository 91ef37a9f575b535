package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/groph-vps/internal/catalog"
	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/fsdevblog/groph-vps/internal/service/mocks"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-vps/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProvisioningServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockServerRepo *mocks.MockServerRepository
	mockPricing    *mocks.MockPriceResolver
	mockLedger     *mocks.MockLedger
	mockProvider   *mocks.MockProvider
	logger         *logrus.Logger
	logHook        *test.Hook
	service        *ProvisioningService
}

func TestProvisioningServiceSuite(t *testing.T) {
	suite.Run(t, new(ProvisioningServiceTestSuite))
}

func (s *ProvisioningServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockServerRepo = mocks.NewMockServerRepository(s.mockCtrl)
	s.mockPricing = mocks.NewMockPriceResolver(s.mockCtrl)
	s.mockLedger = mocks.NewMockLedger(s.mockCtrl)
	s.mockProvider = mocks.NewMockProvider(s.mockCtrl)
	s.logger, s.logHook = test.NewNullLogger()

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ServerRepoName)).
		Return(s.mockServerRepo, nil).AnyTimes()

	var err error
	s.service, err = NewProvisioningService(ProvisioningServiceArgs{
		UOW:             s.mockUOW,
		Catalog:         catalog.Default(),
		Pricing:         s.mockPricing,
		Ledger:          s.mockLedger,
		Provider:        s.mockProvider,
		Logger:          s.logger,
		ProviderTimeout: time.Second,
	})
	s.Require().NoError(err)
}

func (s *ProvisioningServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ProvisioningServiceTestSuite) request() ProvisionRequest {
	return ProvisionRequest{
		OwnerID:    42,
		OwnerEmail: "owner@example.com",
		Hostname:   "Web-1",
		Region:     "fsn1",
		Image:      "ubuntu-24.04",
		PlanID:     "standard-2",
		SSHKeys:    []string{authorizedKey(s.T(), "laptop")},
	}
}

func (s *ProvisioningServiceTestSuite) price() *domain.Price {
	return &domain.Price{
		PlanID:   "standard-2",
		Location: "fsn1",
		Hourly:   decimal.RequireFromString("0.03"),
		Monthly:  decimal.RequireFromString("18.90"),
		Source:   domain.PriceSourceCatalog,
	}
}

func (s *ProvisioningServiceTestSuite) TestValidation() {
	cases := []struct {
		name   string
		modify func(r *ProvisionRequest)
		want   error
	}{
		{name: "bad hostname", modify: func(r *ProvisionRequest) { r.Hostname = "-web_1" }, want: domain.ErrValidation},
		{name: "unknown region", modify: func(r *ProvisionRequest) { r.Region = "mars" }, want: domain.ErrValidation},
		{name: "no image", modify: func(r *ProvisionRequest) { r.Image = " " }, want: domain.ErrValidation},
		{name: "bad ssh key", modify: func(r *ProvisionRequest) { r.SSHKeys = []string{"ssh-rsa nope"} }, want: domain.ErrValidation},
		{name: "unknown plan", modify: func(r *ProvisionRequest) { r.PlanID = "enterprise-64" }, want: domain.ErrPlanNotFound},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			req := s.request()
			t.modify(&req)
			_, err := s.service.Provision(s.T().Context(), req)
			s.Require().ErrorIs(err, t.want)
		})
	}
}

func (s *ProvisioningServiceTestSuite) TestInsufficientBalanceSkipsProvider() {
	s.mockPricing.EXPECT().Resolve(gomock.Any(), "standard-2", "fsn1").Return(s.price(), nil)
	s.mockLedger.EXPECT().CanAfford(gomock.Any(), int64(42), DefaultCurrency, decimal.RequireFromString("0.03")).
		Return(false, nil)
	// CreateInstance, Create и Debit не ожидаются: любой вызов провалит тест.

	_, err := s.service.Provision(s.T().Context(), s.request())
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
}

func (s *ProvisioningServiceTestSuite) TestProviderError() {
	s.mockPricing.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.price(), nil)
	s.mockLedger.EXPECT().CanAfford(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockProvider.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("server type unavailable in location"))

	_, err := s.service.Provision(s.T().Context(), s.request())
	s.Require().ErrorIs(err, domain.ErrProvider)

	var pErr *domain.ProviderError
	s.Require().ErrorAs(err, &pErr)
	s.False(pErr.Timeout)
	s.Equal("create", pErr.Op)
}

func (s *ProvisioningServiceTestSuite) TestProviderTimeoutIsUnknownOutcome() {
	s.service.providerTimeout = 20 * time.Millisecond

	s.mockPricing.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.price(), nil)
	s.mockLedger.EXPECT().CanAfford(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockProvider.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.CreateInstanceArgs) (*domain.ProviderInstance, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := s.service.Provision(s.T().Context(), s.request())
	var pErr *domain.ProviderError
	s.Require().ErrorAs(err, &pErr)
	s.True(pErr.Timeout)
}

func (s *ProvisioningServiceTestSuite) TestPersistenceErrorKeepsInstance() {
	s.mockPricing.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.price(), nil)
	s.mockLedger.EXPECT().CanAfford(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockProvider.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).
		Return(&domain.ProviderInstance{ID: "1001", State: domain.InstanceInitializing}, nil)
	s.mockServerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnknown)
	// DeleteInstance и Debit не ожидаются.

	_, err := s.service.Provision(s.T().Context(), s.request())
	s.Require().ErrorIs(err, domain.ErrPersistence)

	var pErr *domain.PersistenceError
	s.Require().ErrorAs(err, &pErr)
	s.Equal("1001", pErr.InstanceID)

	entry := s.logHook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.ErrorLevel, entry.Level)
	s.Equal("1001", entry.Data["instance_id"])
}

func (s *ProvisioningServiceTestSuite) TestCancelledRequestStillPersistsAndCharges() {
	ctx, cancel := context.WithCancel(s.T().Context())
	defer cancel()

	s.mockPricing.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.price(), nil)
	s.mockLedger.EXPECT().CanAfford(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockProvider.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.CreateInstanceArgs) (*domain.ProviderInstance, error) {
			cancel()
			return &domain.ProviderInstance{ID: "1002", State: domain.InstanceRunning}, nil
		})
	s.mockServerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c context.Context, server *domain.Server) (*domain.Server, error) {
			s.Require().NoError(c.Err())
			return server, nil
		})
	s.mockLedger.EXPECT().Debit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c context.Context, _ domain.DebitArgs) (*domain.LedgerEntry, error) {
			s.Require().NoError(c.Err())
			return &domain.LedgerEntry{Transaction: &domain.LedgerTransaction{ID: uuid.New()}}, nil
		})

	res, err := s.service.Provision(ctx, s.request())
	s.Require().NoError(err)
	s.Equal(domain.ServerStatusRunning, res.Server.Status)
}

func (s *ProvisioningServiceTestSuite) TestChargeFailureIsWarning() {
	s.mockPricing.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.price(), nil)
	s.mockLedger.EXPECT().CanAfford(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockProvider.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).
		Return(&domain.ProviderInstance{ID: "1003", State: domain.InstanceInitializing}, nil)
	s.mockServerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, server *domain.Server) (*domain.Server, error) {
			return server, nil
		})
	s.mockLedger.EXPECT().Debit(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInsufficientBalance)

	res, err := s.service.Provision(s.T().Context(), s.request())
	s.Require().NoError(err)
	s.Len(res.Warnings, 1)
	s.True(res.Charged.IsZero())
	s.Nil(res.Transaction)
	s.Equal(domain.ServerStatusProvisioning, res.Server.Status)
}

func (s *ProvisioningServiceTestSuite) TestWithoutOwnerNoBilling() {
	req := s.request()
	req.OwnerID = 0

	s.mockPricing.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.price(), nil)
	s.mockProvider.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).
		Return(&domain.ProviderInstance{ID: "1004", State: domain.InstanceInitializing}, nil)
	s.mockServerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, server *domain.Server) (*domain.Server, error) {
			return server, nil
		})

	res, err := s.service.Provision(s.T().Context(), req)
	s.Require().NoError(err)
	s.True(res.Charged.IsZero())
	s.Empty(res.Warnings)
}

// TestProvisionCharges сквозной сценарий с настоящими сервисами цен и баланса поверх моков репозиториев.
func TestProvisionCharges(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUOW := uowmocks.NewMockUOW(ctrl)
	mockTX := uowmocks.NewMockTX(ctrl)
	walletRepo := mocks.NewMockWalletRepository(ctrl)
	ledgerRepo := mocks.NewMockLedgerTransactionRepository(ctrl)
	overrideRepo := mocks.NewMockPricingOverrideRepository(ctrl)
	serverRepo := mocks.NewMockServerRepository(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	repos := map[repoargs.RepositoryName]any{
		repoargs.WalletRepoName:            walletRepo,
		repoargs.LedgerTransactionRepoName: ledgerRepo,
		repoargs.PricingOverrideRepoName:   overrideRepo,
		repoargs.ServerRepoName:            serverRepo,
	}
	for name, repo := range repos {
		mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
	runInTX(mockUOW, mockTX)

	logger, _ := test.NewNullLogger()
	services, err := Factory(FactoryArgs{
		UOW:      mockUOW,
		Catalog:  catalog.Default(),
		Provider: provider,
		Logger:   logger,
	})
	if err != nil {
		t.Fatal(err)
	}

	wallet := &domain.Wallet{ID: 5, OwnerID: 42, Currency: DefaultCurrency, Balance: decimal.NewFromInt(10)}
	var labels map[string]string

	overrideRepo.EXPECT().GetActive(gomock.Any(), "standard-2").Return(nil, domain.ErrRecordNotFound)
	walletRepo.EXPECT().FindByOwner(gomock.Any(), int64(42), DefaultCurrency).Return(wallet, nil)
	provider.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args domain.CreateInstanceArgs) (*domain.ProviderInstance, error) {
			labels = args.Labels
			return &domain.ProviderInstance{ID: "2001", State: domain.InstanceInitializing, IPv4: "203.0.113.10"}, nil
		})
	serverRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, server *domain.Server) (*domain.Server, error) {
			return server, nil
		})
	walletRepo.EXPECT().GetForUpdate(gomock.Any(), int64(42), DefaultCurrency).Return(wallet, nil)
	walletRepo.EXPECT().UpdateBalance(gomock.Any(), int64(5), decimal.RequireFromString("9.97")).
		Return(&domain.Wallet{ID: 5, OwnerID: 42, Balance: decimal.RequireFromString("9.97")}, nil)
	ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerTransactionCreate) (*domain.LedgerTransaction, error) {
			return &domain.LedgerTransaction{
				ID:          uuid.New(),
				Type:        args.Type,
				Amount:      args.Amount,
				ReferenceID: args.ReferenceID,
			}, nil
		})

	res, err := services.ProvisioningService.Provision(t.Context(), ProvisionRequest{
		OwnerID:  42,
		Hostname: "db-1",
		Region:   "fsn1",
		Image:    "debian-12",
		PlanID:   "standard-2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Charged.Equal(decimal.RequireFromString("0.03")) {
		t.Fatalf("charged %s, want 0.03", res.Charged)
	}
	if res.Transaction.ReferenceID != res.Server.ID.String() {
		t.Fatalf("transaction reference %s, want server id %s", res.Transaction.ReferenceID, res.Server.ID)
	}
	if res.Server.InstanceID != "2001" || res.Server.IPv4 != "203.0.113.10" {
		t.Fatalf("unexpected server %+v", res.Server)
	}
	if labels[LabelManagedBy] != ManagedByValue || labels[LabelServerID] != res.Server.ID.String() {
		t.Fatalf("unexpected labels %v", labels)
	}
}

// TestCostSnapshotSurvivesPriceOverride новая цена плана действует только на новые серверы,
// сохраненная стоимость уже созданного сервера не меняется.
func TestCostSnapshotSurvivesPriceOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUOW := uowmocks.NewMockUOW(ctrl)
	overrideRepo := mocks.NewMockPricingOverrideRepository(ctrl)
	serverRepo := mocks.NewMockServerRepository(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PricingOverrideRepoName)).
		Return(overrideRepo, nil).AnyTimes()
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ServerRepoName)).
		Return(serverRepo, nil).AnyTimes()
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(mocks.NewMockWalletRepository(ctrl), nil).AnyTimes()
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.LedgerTransactionRepoName)).
		Return(mocks.NewMockLedgerTransactionRepository(ctrl), nil).AnyTimes()

	logger, _ := test.NewNullLogger()
	services, err := Factory(FactoryArgs{
		UOW:      mockUOW,
		Catalog:  catalog.Default(),
		Provider: provider,
		Logger:   logger,
	})
	require.NoError(t, err)

	var stored *domain.Server
	gomock.InOrder(
		overrideRepo.EXPECT().GetActive(gomock.Any(), "standard-2").Return(nil, domain.ErrRecordNotFound),
		overrideRepo.EXPECT().Upsert(gomock.Any(), "standard-2",
			decimal.RequireFromString("0.05"), decimal.RequireFromString("31.50")).
			Return(&domain.PricingOverride{
				PlanID:  "standard-2",
				Hourly:  decimal.RequireFromString("0.05"),
				Monthly: decimal.RequireFromString("31.50"),
				Active:  true,
			}, nil),
		overrideRepo.EXPECT().GetActive(gomock.Any(), "standard-2").Return(&domain.PricingOverride{
			PlanID:  "standard-2",
			Hourly:  decimal.RequireFromString("0.05"),
			Monthly: decimal.RequireFromString("31.50"),
			Active:  true,
		}, nil),
	)
	provider.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).
		Return(&domain.ProviderInstance{ID: "3001", State: domain.InstanceInitializing}, nil)
	// единственная запись в servers: создание. Изменение цены серверы не трогает.
	serverRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, server *domain.Server) (*domain.Server, error) {
			copied := *server
			stored = &copied
			return server, nil
		}).Times(1)

	res, err := services.ProvisioningService.Provision(t.Context(), ProvisionRequest{
		Hostname: "app-1",
		Region:   "fsn1",
		Image:    "debian-12",
		PlanID:   "standard-2",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, decimal.RequireFromString("0.03").Equal(stored.HourlyCost), "hourly cost %s", stored.HourlyCost)

	_, err = services.PricingService.SetOverride(t.Context(), "standard-2",
		decimal.RequireFromString("0.05"), decimal.RequireFromString("31.50"))
	require.NoError(t, err)

	price, err := services.PricingService.Resolve(t.Context(), "standard-2", "fsn1")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.05").Equal(price.Hourly))

	assert.True(t, decimal.RequireFromString("0.03").Equal(stored.HourlyCost))
	assert.True(t, decimal.RequireFromString("0.03").Equal(res.Server.HourlyCost))
}
