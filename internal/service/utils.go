package service

import (
	"context"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/semaphore"
)

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}

// ownerLocks блокировки заказа серверов по владельцам. Запись о владельце живет, пока
// блокировку кто-то держит или ждет.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[int64]*ownerLock
}

type ownerLock struct {
	sem  *semaphore.Weighted
	refs int
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[int64]*ownerLock)}
}

// acquire ждет блокировку владельца ownerID или отмены ctx. Возвращает функцию освобождения.
func (o *ownerLocks) acquire(ctx context.Context, ownerID int64) (func(), error) {
	o.mu.Lock()
	l, ok := o.locks[ownerID]
	if !ok {
		l = &ownerLock{sem: semaphore.NewWeighted(1)}
		o.locks[ownerID] = l
	}
	l.refs++
	o.mu.Unlock()

	if err := l.sem.Acquire(ctx, 1); err != nil {
		o.release(ownerID, l, false)
		return nil, err //nolint:wrapcheck
	}
	var once sync.Once
	return func() {
		once.Do(func() { o.release(ownerID, l, true) })
	}, nil
}

func (o *ownerLocks) release(ownerID int64, l *ownerLock, held bool) {
	if held {
		l.sem.Release(1)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(o.locks, ownerID)
	}
}

// size количество владельцев с активной блокировкой.
func (o *ownerLocks) size() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.locks)
}
