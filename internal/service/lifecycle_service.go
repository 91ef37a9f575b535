package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/metrics"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	reconcileChanged   = "changed"
	reconcileUnchanged = "unchanged"
	reconcileError     = "error"
)

type RebuildArgs struct {
	ServerID uuid.UUID
	Image    string
	// ConfirmName должно совпадать с именем сервера.
	ConfirmName  string
	Acknowledged bool
	SSHKeys      []string
}

// DeleteResult итог удаления. Локальная запись удаляется даже если удалить инстанс у провайдера не удалось.
type DeleteResult struct {
	LocalDeleted  bool
	RemoteDeleted bool
	RemoteError   string
}

type LifecycleServiceArgs struct {
	UOW             uow.UOW
	Provider        Provider
	Logger          *logrus.Logger
	Metrics         *metrics.Metrics
	ProviderTimeout time.Duration
	PersistTimeout  time.Duration
}

type LifecycleService struct {
	uow             uow.UOW
	serverRepo      ServerRepository
	provider        Provider
	logger          *logrus.Entry
	metrics         *metrics.Metrics
	providerTimeout time.Duration
	persistTimeout  time.Duration
}

func NewLifecycleService(args LifecycleServiceArgs) (*LifecycleService, error) {
	serverRepo, err := uow.GetRepositoryAs[ServerRepository](args.UOW, uow.RepositoryName(repoargs.ServerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if args.Provider == nil {
		return nil, errors.New("lifecycle service: provider is required")
	}
	l := args.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	s := &LifecycleService{
		uow:             args.UOW,
		serverRepo:      serverRepo,
		provider:        args.Provider,
		logger:          l.WithField("component", "lifecycle"),
		metrics:         args.Metrics,
		providerTimeout: args.ProviderTimeout,
		persistTimeout:  args.PersistTimeout,
	}
	if s.providerTimeout <= 0 {
		s.providerTimeout = DefaultProviderTimeout
	}
	if s.persistTimeout <= 0 {
		s.persistTimeout = DefaultPersistTimeout
	}
	return s, nil
}

// Authorize возвращает сервер, если actor может им управлять. Чужой сервер - ErrForbidden.
func (l *LifecycleService) Authorize(ctx context.Context, actor domain.Actor, serverID uuid.UUID) (*domain.Server, error) {
	server, err := l.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("authorize: %w", err)
	}
	if !actor.MayOperate(server) {
		return nil, fmt.Errorf("authorize: server %s: %w", serverID, domain.ErrForbidden)
	}
	return server, nil
}

func (l *LifecycleService) List(ctx context.Context, ownerID int64) ([]domain.Server, error) {
	servers, err := l.serverRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	return servers, nil
}

// Reconcile сверяет статус сервера с состоянием инстанса у провайдера. Запись меняется только если статус
// отличается. Если инстанс у провайдера пропал, статус не меняется, возвращается ошибка провайдера, а сервер в
// переходном статусе больше не попадает в PendingReconcile. Статус deleting не трогается.
func (l *LifecycleService) Reconcile(ctx context.Context, serverID uuid.UUID) (*domain.Server, error) {
	server, err := l.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	return l.reconcile(ctx, server)
}

func (l *LifecycleService) reconcile(ctx context.Context, server *domain.Server) (*domain.Server, error) {
	// deleting терминальный, сервер вот-вот будет удален
	if !server.HasInstance() || server.Status == domain.ServerStatusDeleting {
		return server, nil
	}
	instance, err := l.getInstance(ctx, server.InstanceID)
	if err != nil {
		l.metrics.RecordReconcile(reconcileError)
		if errors.Is(err, domain.ErrInstanceNotFound) && server.Status.IsTransient() {
			l.markInstanceMissing(ctx, server)
		}
		return nil, fmt.Errorf("reconcile server %s: %w", server.ID, err)
	}

	status := statusFromInstance(instance.State, server.Status)
	if status == server.Status {
		l.metrics.RecordReconcile(reconcileUnchanged)
		return server, nil
	}

	changed, err := l.serverRepo.UpdateStatus(ctx, server.ID, status)
	if err != nil {
		l.metrics.RecordReconcile(reconcileError)
		return nil, fmt.Errorf("reconcile server %s: %w", server.ID, err)
	}
	if changed {
		l.metrics.RecordReconcile(reconcileChanged)
		l.logger.WithFields(logrus.Fields{
			"server_id": server.ID.String(),
			"from":      server.Status,
			"to":        status,
		}).Info("server status changed")
	} else {
		l.metrics.RecordReconcile(reconcileUnchanged)
	}

	updated := *server
	updated.Status = status
	return &updated, nil
}

// markInstanceMissing снимает сервер с фоновой сверки. Статус не меняется.
func (l *LifecycleService) markInstanceMissing(ctx context.Context, server *domain.Server) {
	marked, err := l.serverRepo.MarkInstanceMissing(ctx, server.ID)
	log := l.logger.WithFields(logrus.Fields{
		"server_id":   server.ID.String(),
		"instance_id": server.InstanceID,
		"status":      server.Status,
	})
	if err != nil {
		log.WithError(err).Error("mark instance missing")
		return
	}
	if marked {
		log.Warn("instance is missing at provider, server excluded from reconciliation")
	}
}

// Power выполняет действие с питанием. start допустим только из stopped, reboot и stop только из running.
// Недопустимый переход возвращает *domain.IllegalTransitionError без обращения к провайдеру.
// Ошибки провайдера не повторяются. После успешного действия статус сверяется с провайдером.
func (l *LifecycleService) Power(ctx context.Context, serverID uuid.UUID, action domain.PowerAction) (*domain.Server, error) {
	server, err := l.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("power %s: %w", action, err)
	}
	if err = checkPowerTransition(server.Status, action); err != nil {
		return nil, fmt.Errorf("power: %w", err)
	}
	if !server.HasInstance() {
		return nil, fmt.Errorf("power %s: %w: server has no provider instance", action, domain.ErrPreconditionFailed)
	}

	callCtx, cancel := context.WithTimeout(ctx, l.providerTimeout)
	started := time.Now()
	err = l.provider.PowerAction(callCtx, server.InstanceID, action)
	l.metrics.RecordProviderCall("power_"+string(action), err, started)
	if err != nil {
		err = asProviderError("power_"+string(action), err, callCtx)
	}
	cancel()
	if err != nil {
		return nil, fmt.Errorf("power %s: %w", action, err)
	}

	updated, err := l.reconcile(ctx, server)
	if err != nil {
		l.logger.WithError(err).WithField("server_id", server.ID.String()).Warn("reconcile after power action failed")
		return server, nil
	}
	return updated, nil
}

// Rebuild переустанавливает сервер из образа. Все данные на диске теряются, поэтому требуется подтверждение
// именем сервера и явное согласие. Допустимо только из running и stopped.
func (l *LifecycleService) Rebuild(ctx context.Context, args RebuildArgs) (*domain.Server, error) {
	server, err := l.serverRepo.GetByID(ctx, args.ServerID)
	if err != nil {
		return nil, fmt.Errorf("rebuild: %w", err)
	}
	if !args.Acknowledged {
		return nil, fmt.Errorf("rebuild: %w: data loss is not acknowledged", domain.ErrPreconditionFailed)
	}
	if args.ConfirmName != server.Hostname {
		return nil, fmt.Errorf("rebuild: %w: confirmation name does not match hostname", domain.ErrPreconditionFailed)
	}
	if server.Status != domain.ServerStatusRunning && server.Status != domain.ServerStatusStopped {
		return nil, fmt.Errorf("rebuild: %w", domain.NewIllegalTransitionError(server.Status, "rebuild"))
	}
	if !server.HasInstance() {
		return nil, fmt.Errorf("rebuild: %w: server has no provider instance", domain.ErrPreconditionFailed)
	}
	image := strings.TrimSpace(args.Image)
	if image == "" {
		return nil, fmt.Errorf("rebuild: %w: image is required", domain.ErrValidation)
	}
	keys, err := normalizeAuthorizedKeys(args.SSHKeys)
	if err != nil {
		return nil, fmt.Errorf("rebuild: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, l.providerTimeout)
	started := time.Now()
	err = l.provider.RebuildInstance(callCtx, server.InstanceID, image, keys)
	l.metrics.RecordProviderCall("rebuild", err, started)
	if err != nil {
		err = asProviderError("rebuild", err, callCtx)
	}
	cancel()
	if err != nil {
		return nil, fmt.Errorf("rebuild: %w", err)
	}

	persistCtx, cancelPersist := context.WithTimeout(context.WithoutCancel(ctx), l.persistTimeout)
	defer cancelPersist()
	if err = l.serverRepo.UpdateAfterRebuild(persistCtx, server.ID, repoargs.ServerRebuilt{
		Image:  image,
		Status: domain.ServerStatusRebuilding,
	}); err != nil {
		l.logger.WithError(err).WithField("server_id", server.ID.String()).Error("rebuild dispatched but not persisted")
		return nil, fmt.Errorf("rebuild: %w", domain.NewPersistenceError(server.InstanceID, err))
	}

	updated := *server
	updated.Image = image
	updated.Status = domain.ServerStatusRebuilding
	l.logger.WithFields(logrus.Fields{"server_id": server.ID.String(), "image": image}).Info("server rebuild started")
	return &updated, nil
}

// Delete удаляет сервер.
//
// Алгоритм работы:
//  1. Переводит сервер в статус deleting.
//  2. Удаляет инстанс у провайдера. Отсутствие идентификатора инстанса или отсутствующий у провайдера инстанс
//     считаются успешным удалением.
//  3. Удаляет локальную запись независимо от результата шага 2.
func (l *LifecycleService) Delete(ctx context.Context, serverID uuid.UUID) (*DeleteResult, error) {
	server, err := l.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("delete: %w", err)
	}
	if _, err = l.serverRepo.UpdateStatus(ctx, server.ID, domain.ServerStatusDeleting); err != nil {
		return nil, fmt.Errorf("delete: %w", err)
	}

	detached := context.WithoutCancel(ctx)
	log := l.logger.WithFields(logrus.Fields{"server_id": server.ID.String(), "instance_id": server.InstanceID})
	result := &DeleteResult{RemoteDeleted: true}

	if server.HasInstance() {
		callCtx, cancel := context.WithTimeout(detached, l.providerTimeout)
		started := time.Now()
		remoteErr := l.provider.DeleteInstance(callCtx, server.InstanceID)
		l.metrics.RecordProviderCall("delete", remoteErr, started)
		cancel()
		if remoteErr != nil {
			log.WithError(remoteErr).Error("provider delete failed, instance may keep running")
			result.RemoteDeleted = false
			result.RemoteError = remoteErr.Error()
		}
	}

	persistCtx, cancel := context.WithTimeout(detached, l.persistTimeout)
	defer cancel()
	if err = l.serverRepo.Delete(persistCtx, server.ID); err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return result, fmt.Errorf("delete: %w", err)
	}
	result.LocalDeleted = true
	log.WithField("remote_deleted", result.RemoteDeleted).Info("server deleted")
	return result, nil
}

// WaitStable периодически сверяет статус, пока сервер не выйдет из provisioning/rebuilding или не закончатся
// попытки. Возвращает последнее известное состояние сервера.
func (l *LifecycleService) WaitStable(
	ctx context.Context,
	serverID uuid.UUID,
	interval time.Duration,
	maxAttempts int,
) (*domain.Server, error) {
	var (
		server  *domain.Server
		lastErr error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		current, err := l.Reconcile(ctx, serverID)
		switch {
		case err == nil:
			server, lastErr = current, nil
			if !server.Status.IsTransient() {
				return server, nil
			}
		case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrInstanceNotFound):
			return nil, err
		default:
			lastErr = err
		}

		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return server, fmt.Errorf("wait stable: %w", ctx.Err())
		case <-time.After(time.Duration(jitter(float64(interval), 0.1, 0.1))): //nolint:mnd
		}
	}
	if server == nil {
		return nil, fmt.Errorf("wait stable: %w", lastErr)
	}
	return server, nil
}

// PendingReconcile серверы в переходных статусах, начиная с давно не обновлявшихся.
func (l *LifecycleService) PendingReconcile(ctx context.Context, limit uint) ([]domain.Server, error) {
	servers, err := l.serverRepo.GetByStatuses(ctx, domain.TransientStatuses(), limit)
	if err != nil {
		return nil, fmt.Errorf("pending reconcile: %w", err)
	}
	return servers, nil
}

// FindOrphans инстансы провайдера с меткой сервиса, для которых нет локальной записи. Ничего не удаляет.
func (l *LifecycleService) FindOrphans(ctx context.Context) ([]domain.ProviderInstance, error) {
	callCtx, cancel := context.WithTimeout(ctx, l.providerTimeout)
	defer cancel()
	started := time.Now()
	instances, err := l.provider.ListInstances(callCtx, map[string]string{LabelManagedBy: ManagedByValue})
	l.metrics.RecordProviderCall("list", err, started)
	if err != nil {
		return nil, fmt.Errorf("find orphans: %w", asProviderError("list", err, callCtx))
	}
	if len(instances) == 0 {
		l.metrics.SetOrphans(0)
		return nil, nil
	}

	ids := make([]string, len(instances))
	for i, inst := range instances {
		ids[i] = inst.ID
	}
	existing, err := l.serverRepo.ExistingInstanceIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find orphans: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}

	var orphans []domain.ProviderInstance
	for _, inst := range instances {
		if _, ok := known[inst.ID]; !ok {
			orphans = append(orphans, inst)
		}
	}
	l.metrics.SetOrphans(len(orphans))
	return orphans, nil
}

func (l *LifecycleService) getInstance(ctx context.Context, id string) (*domain.ProviderInstance, error) {
	callCtx, cancel := context.WithTimeout(ctx, l.providerTimeout)
	defer cancel()
	started := time.Now()
	instance, err := l.provider.GetInstance(callCtx, id)
	l.metrics.RecordProviderCall("get", err, started)
	if err != nil {
		return nil, asProviderError("get", err, callCtx)
	}
	return instance, nil
}

// statusFromInstance отображает состояние инстанса у провайдера на локальный статус. Для переходных
// и неизвестных состояний остается текущий статус.
func statusFromInstance(state domain.InstanceState, current domain.ServerStatus) domain.ServerStatus {
	switch state {
	case domain.InstanceInitializing:
		return domain.ServerStatusProvisioning
	case domain.InstanceRunning:
		return domain.ServerStatusRunning
	case domain.InstanceOff:
		return domain.ServerStatusStopped
	case domain.InstanceRebuilding:
		return domain.ServerStatusRebuilding
	case domain.InstanceDeleting:
		return domain.ServerStatusDeleting
	default:
		return current
	}
}

func checkPowerTransition(status domain.ServerStatus, action domain.PowerAction) error {
	switch action {
	case domain.PowerStart:
		if status == domain.ServerStatusStopped {
			return nil
		}
	case domain.PowerReboot, domain.PowerStop:
		if status == domain.ServerStatusRunning {
			return nil
		}
	default:
		return fmt.Errorf("%w: unknown power action %q", domain.ErrValidation, action)
	}
	return domain.NewIllegalTransitionError(status, string(action))
}

// asProviderError приводит ошибку вызова провайдера к *domain.ProviderError. Истекший или отмененный
// контекст вызова означает, что исход операции неизвестен.
func asProviderError(op string, err error, callCtx context.Context) error {
	unknown := errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || callCtx.Err() != nil
	var pErr *domain.ProviderError
	if errors.As(err, &pErr) && pErr.Timeout == unknown {
		return err
	}
	return domain.NewProviderError(op, err, unknown)
}
