package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/metrics"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// minimumBillingHours минимальный оплачиваемый период при заказе сервера.
	minimumBillingHours = 1

	DefaultProviderTimeout = 2 * time.Minute
	DefaultPersistTimeout  = 15 * time.Second
)

// Метки, которыми помечаются инстансы у провайдера.
const (
	LabelManagedBy = "managed-by"
	LabelOwnerID   = "owner-id"
	LabelServerID  = "server-id"
	LabelPlanID    = "plan"

	ManagedByValue = "groph-vps"
)

// Исходы заказа для метрик.
const (
	outcomeSuccess             = "success"
	outcomeDegraded            = "charge_failed"
	outcomeInvalid             = "invalid"
	outcomeInsufficientBalance = "insufficient_balance"
	outcomeProviderError       = "provider_error"
	outcomePersistenceError    = "persistence_error"
	outcomeError               = "error"
)

type ProvisionRequest struct {
	// OwnerID 0 - сервер без владельца, проверка баланса и списание не выполняются.
	OwnerID    int64
	OwnerEmail string
	Hostname   string
	Region     string
	Image      string
	PlanID     string
	SSHKeys    []string
}

type ProvisionResult struct {
	Server      *domain.Server
	Price       *domain.Price
	Charged     decimal.Decimal
	Transaction *domain.LedgerTransaction
	// Warnings непустой, если сервер создан, но списать оплату не удалось.
	Warnings []string
}

type ProvisioningServiceArgs struct {
	UOW             uow.UOW
	Catalog         Catalog
	Pricing         PriceResolver
	Ledger          Ledger
	Provider        Provider
	Logger          *logrus.Logger
	Metrics         *metrics.Metrics
	Currency        string
	ProviderTimeout time.Duration
	PersistTimeout  time.Duration
}

type ProvisioningService struct {
	uow             uow.UOW
	serverRepo      ServerRepository
	catalog         Catalog
	pricing         PriceResolver
	ledger          Ledger
	provider        Provider
	logger          *logrus.Entry
	metrics         *metrics.Metrics
	currency        string
	providerTimeout time.Duration
	persistTimeout  time.Duration
	locks           *ownerLocks
}

func NewProvisioningService(args ProvisioningServiceArgs) (*ProvisioningService, error) {
	serverRepo, err := uow.GetRepositoryAs[ServerRepository](args.UOW, uow.RepositoryName(repoargs.ServerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if args.Catalog == nil || args.Pricing == nil || args.Ledger == nil || args.Provider == nil {
		return nil, errors.New("provisioning service: catalog, pricing, ledger and provider are required")
	}
	l := args.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	s := &ProvisioningService{
		uow:             args.UOW,
		serverRepo:      serverRepo,
		catalog:         args.Catalog,
		pricing:         args.Pricing,
		ledger:          args.Ledger,
		provider:        args.Provider,
		logger:          l.WithField("component", "provisioning"),
		metrics:         args.Metrics,
		currency:        args.Currency,
		providerTimeout: args.ProviderTimeout,
		persistTimeout:  args.PersistTimeout,
		locks:           newOwnerLocks(),
	}
	if s.currency == "" {
		s.currency = DefaultCurrency
	}
	if s.providerTimeout <= 0 {
		s.providerTimeout = DefaultProviderTimeout
	}
	if s.persistTimeout <= 0 {
		s.persistTimeout = DefaultPersistTimeout
	}
	return s, nil
}

// Provision заказывает сервер.
//
// Алгоритм работы:
//  1. Проверяет параметры запроса (имя, регион, образ, план, ssh ключи).
//  2. Берет блокировку заказа владельца и держит ее до конца операции.
//  3. Рассчитывает цену, требуемая сумма - цена одного часа.
//  4. Проверяет баланс владельца. При нехватке средств возвращает ErrInsufficientBalance, провайдер не вызывается.
//  5. Создает инстанс у провайдера. При ошибке возвращает *domain.ProviderError, локально ничего не сохраняется.
//  6. Сохраняет сервер. При ошибке возвращает *domain.PersistenceError с идентификатором инстанса,
//     инстанс не удаляется.
//  7. Списывает оплату. Ошибка списания не делает операцию неуспешной, а попадает в Warnings.
//
// Шаги 6 и 7 выполняются независимо от отмены ctx.
func (p *ProvisioningService) Provision(ctx context.Context, req ProvisionRequest) (*ProvisionResult, error) {
	res, err := p.provision(ctx, req)
	p.metrics.RecordProvision(provisionOutcome(res, err))
	if err != nil {
		return nil, fmt.Errorf("provision: %w", err)
	}
	return res, nil
}

func (p *ProvisioningService) provision(ctx context.Context, req ProvisionRequest) (*ProvisionResult, error) {
	hostname, err := normalizeHostname(req.Hostname)
	if err != nil {
		return nil, err
	}
	if _, ok := p.catalog.Location(req.Region); !ok {
		return nil, fmt.Errorf("%w: unknown region %q", domain.ErrValidation, req.Region)
	}
	image := strings.TrimSpace(req.Image)
	if image == "" {
		return nil, fmt.Errorf("%w: image is required", domain.ErrValidation)
	}
	keys, err := normalizeAuthorizedKeys(req.SSHKeys)
	if err != nil {
		return nil, err
	}
	plan, err := p.catalog.Plan(req.PlanID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	billable := req.OwnerID > 0
	if billable {
		release, lockErr := p.locks.acquire(ctx, req.OwnerID)
		if lockErr != nil {
			return nil, fmt.Errorf("wait for owner lock: %w", lockErr)
		}
		defer release()
	}

	price, err := p.pricing.Resolve(ctx, plan.ID, req.Region)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	required := price.Hourly.Mul(decimal.NewFromInt(minimumBillingHours))

	if billable {
		ok, affordErr := p.ledger.CanAfford(ctx, req.OwnerID, p.currency, required)
		if affordErr != nil {
			return nil, affordErr //nolint:wrapcheck
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s %s required", domain.ErrInsufficientBalance, required.String(), p.currency)
		}
	}

	serverID := uuid.New()
	log := p.logger.WithFields(logrus.Fields{
		"server_id": serverID.String(),
		"owner_id":  req.OwnerID,
		"plan":      plan.ID,
		"region":    req.Region,
	})

	// после этой точки отмена запроса не прерывает создание, запись и списание.
	detached := context.WithoutCancel(ctx)

	instance, err := p.createInstance(detached, domain.CreateInstanceArgs{
		Label:          hostname,
		Region:         req.Region,
		ServerType:     plan.ProviderType,
		Image:          image,
		AuthorizedKeys: keys,
		Labels: map[string]string{
			LabelManagedBy: ManagedByValue,
			LabelOwnerID:   strconv.FormatInt(req.OwnerID, 10),
			LabelServerID:  serverID.String(),
			LabelPlanID:    plan.ID,
		},
	})
	if err != nil {
		log.WithError(err).Warn("provider create failed")
		return nil, err
	}
	log = log.WithField("instance_id", instance.ID)

	server, err := p.persist(detached, &domain.Server{
		ID:           serverID,
		OwnerID:      req.OwnerID,
		OwnerEmail:   req.OwnerEmail,
		InstanceID:   instance.ID,
		Hostname:     hostname,
		Region:       req.Region,
		Image:        image,
		PlanID:       plan.ID,
		VCPU:         plan.VCPU,
		MemoryMB:     plan.MemoryMB,
		DiskGB:       plan.DiskGB,
		Status:       statusFromInstance(instance.State, domain.ServerStatusProvisioning),
		HourlyCost:   price.Hourly,
		Currency:     p.currency,
		BillingStart: time.Now().UTC(),
		IPv4:         instance.IPv4,
		IPv6:         instance.IPv6,
		ProviderMeta: instance.Raw,
	})
	if err != nil {
		log.WithError(err).Error("instance created but not persisted, manual reconciliation required")
		return nil, domain.NewPersistenceError(instance.ID, err)
	}

	result := &ProvisionResult{Server: server, Price: price, Charged: decimal.Zero}
	if !billable {
		log.Info("server provisioned without billing")
		return result, nil
	}

	entry, err := p.charge(detached, server, required)
	if err != nil {
		warning := fmt.Sprintf("server created, but charging %s %s failed: %s", required.String(), p.currency, err.Error())
		log.WithError(err).Warn("server created but not charged")
		result.Warnings = append(result.Warnings, warning)
		return result, nil
	}
	result.Charged = required
	result.Transaction = entry.Transaction
	log.WithField("charged", required.String()).Info("server provisioned")
	return result, nil
}

func (p *ProvisioningService) createInstance(
	ctx context.Context,
	args domain.CreateInstanceArgs,
) (*domain.ProviderInstance, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.providerTimeout)
	defer cancel()

	started := time.Now()
	instance, err := p.provider.CreateInstance(callCtx, args)
	p.metrics.RecordProviderCall("create", err, started)
	if err != nil {
		return nil, asProviderError("create", err, callCtx)
	}
	return instance, nil
}

func (p *ProvisioningService) persist(ctx context.Context, server *domain.Server) (*domain.Server, error) {
	persistCtx, cancel := context.WithTimeout(ctx, p.persistTimeout)
	defer cancel()
	return p.serverRepo.Create(persistCtx, server) //nolint:wrapcheck
}

func (p *ProvisioningService) charge(
	ctx context.Context,
	server *domain.Server,
	amount decimal.Decimal,
) (*domain.LedgerEntry, error) {
	debitCtx, cancel := context.WithTimeout(ctx, p.persistTimeout)
	defer cancel()
	return p.ledger.Debit(debitCtx, domain.DebitArgs{ //nolint:wrapcheck
		OwnerID:     server.OwnerID,
		Currency:    server.Currency,
		Amount:      amount,
		Type:        domain.TransactionServerPayment,
		Description: fmt.Sprintf("Server %s (%s), first hour", server.Hostname, server.PlanID),
		ReferenceID: server.ID.String(),
		Metadata: map[string]any{
			"plan_id":     server.PlanID,
			"region":      server.Region,
			"hourly_cost": server.HourlyCost.String(),
			"instance_id": server.InstanceID,
			"vcpu":        server.VCPU,
			"memory_mb":   server.MemoryMB,
			"disk_gb":     server.DiskGB,
		},
	})
}

func provisionOutcome(res *ProvisionResult, err error) string {
	switch {
	case err == nil && len(res.Warnings) > 0:
		return outcomeDegraded
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrPlanNotFound):
		return outcomeInvalid
	case errors.Is(err, domain.ErrInsufficientBalance):
		return outcomeInsufficientBalance
	case errors.Is(err, domain.ErrProvider):
		return outcomeProviderError
	case errors.Is(err, domain.ErrPersistence):
		return outcomePersistenceError
	default:
		return outcomeError
	}
}
