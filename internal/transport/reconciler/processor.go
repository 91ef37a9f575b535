// Package reconciler фоновая сверка локальных серверов с состоянием у провайдера.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrNoServers = errors.New("no servers")

const (
	defaultServiceTimeout         = 5 * time.Second
	defaultReconcileTimeout       = 3 * time.Minute
	defaultInterval               = 15 * time.Second
	defaultOrphanSweepInterval    = 10 * time.Minute
	defaultLimitPerIteration uint = 50
	defaultWorkers           uint = 5
)

// Processor периодически сверяет серверы в переходных статусах и ищет инстансы без локальной записи.
type Processor struct {
	svs                 Servicer
	l                   *logrus.Entry
	limitPerIteration   uint
	workers             uint
	interval            time.Duration
	orphanSweepInterval time.Duration
}

func New(svs Servicer, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "reconciler",
		"module":    "processor",
	})

	return &Processor{
		svs:                 svs,
		l:                   loggerEntry,
		limitPerIteration:   defaultLimitPerIteration,
		workers:             defaultWorkers,
		interval:            defaultInterval,
		orphanSweepInterval: defaultOrphanSweepInterval,
	}
}

// SetLimitPerIteration устанавливает кол-во серверов, сверяемых в одной итерации.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, параллельно обращающихся к провайдеру.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

func (p *Processor) SetInterval(d time.Duration) *Processor {
	if d > 0 {
		p.interval = d
	}
	return p
}

// SetOrphanSweepInterval 0 отключает поиск сирот.
func (p *Processor) SetOrphanSweepInterval(d time.Duration) *Processor {
	p.orphanSweepInterval = d
	return p
}

// Run запускает сверку до отмены контекста.
//
// Алгоритм работы:
//  1. Раз в interval запрашивает через сервисный слой серверы в переходных статусах, не больше limitPerIteration.
//  2. Раздает серверы N воркерам (SetWorkers), каждый сверяет сервер с провайдером.
//  3. Раз в orphanSweepInterval ищет инстансы провайдера без локальной записи и пишет их в лог.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration":   p.limitPerIteration,
		"workers":             p.workers,
		"interval":            p.interval.String(),
		"orphanSweepInterval": p.orphanSweepInterval.String(),
	}).Info("Starting")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var sweepC <-chan time.Time
	if p.orphanSweepInterval > 0 {
		sweepTicker := time.NewTicker(p.orphanSweepInterval)
		defer sweepTicker.Stop()
		sweepC = sweepTicker.C
	}

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoServers) {
				p.l.WithError(err).Error("process error")
			}
		case <-sweepC:
			if _, err := p.sweepOrphans(ctx); err != nil {
				p.l.WithError(err).Error("orphan sweep error")
			}
		}
	}
}

// process одна итерация сверки. Возвращает ErrNoServers, если сверять нечего.
func (p *Processor) process(ctx context.Context) error {
	servers, err := p.produce(ctx)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	results := p.runWorkers(ctx, servers)

	var failed int
	for _, result := range results {
		l := p.l.WithFields(logrus.Fields{
			"worker":    result.WorkerID,
			"server_id": result.Server.ID.String(),
		})
		if result.Error != nil {
			failed++
			if errors.Is(result.Error, domain.ErrInstanceNotFound) {
				l.WithError(result.Error).Warn("instance is missing at provider")
				continue
			}
			l.WithError(result.Error).Error("reconcile server")
			continue
		}
		if result.Status != result.Server.Status {
			l.WithFields(logrus.Fields{"from": result.Server.Status, "to": result.Status}).Debug("Reconciled")
		}
	}
	if failed > 0 {
		return fmt.Errorf("process: %d of %d servers failed", failed, len(results))
	}
	return nil
}

type workerResult struct {
	WorkerID uint
	Server   *domain.Server
	Status   domain.ServerStatus
	Error    error
}

// runWorkers fan-out/fan-in: раздает серверы воркерам и собирает результаты.
func (p *Processor) runWorkers(ctx context.Context, servers []domain.Server) []workerResult {
	var taskCh = make(chan *domain.Server, len(servers))
	for i := range servers {
		taskCh <- &servers[i]
	}
	close(taskCh)

	workers := min(p.workers, uint(len(servers))) // nolint:gosec

	wg := new(sync.WaitGroup)
	wg.Add(int(workers)) // nolint:gosec

	var resultCh = make(chan workerResult, len(servers))
	for i := range workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var results = make([]workerResult, 0, len(servers))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Server,
	resultCh chan<- workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			reqCtx, cancel := context.WithTimeout(ctx, defaultReconcileTimeout)
			updated, err := p.svs.Reconcile(reqCtx, task.ID)
			cancel()

			result := workerResult{WorkerID: workerID, Server: task, Error: err}
			if err == nil {
				result.Status = updated.Status
			}
			resultCh <- result
		}
	}
}

// produce серверы для сверки. Возвращает ErrNoServers, если их нет.
func (p *Processor) produce(ctx context.Context) ([]domain.Server, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	servers, err := p.svs.PendingReconcile(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(servers) == 0 {
		return nil, ErrNoServers
	}
	return servers, nil
}

// sweepOrphans только сообщает о найденных сиротах, ничего не удаляет.
func (p *Processor) sweepOrphans(ctx context.Context) ([]domain.ProviderInstance, error) {
	sweepCtx, cancel := context.WithTimeout(ctx, defaultReconcileTimeout)
	defer cancel()

	orphans, err := p.svs.FindOrphans(sweepCtx)
	if err != nil {
		return nil, fmt.Errorf("sweep orphans: %w", err)
	}
	for _, inst := range orphans {
		p.l.WithFields(logrus.Fields{
			"instance_id": inst.ID,
			"name":        inst.Name,
			"labels":      inst.Labels,
		}).Warn("orphan instance without local record")
	}
	return orphans, nil
}
