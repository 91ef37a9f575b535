// Package retry повтор операций с экспоненциальной задержкой.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	defaultAttempts     = 3
	defaultInitialDelay = 500 * time.Millisecond
	defaultMaxDelay     = 10 * time.Second
	defaultMultiplier   = 2.0
	defaultJitter       = 0.1
)

type config struct {
	attempts     int
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	jitter       float64
	retryIf      func(error) bool
}

type Option func(*config)

// Attempts общее количество попыток, включая первую. Значения меньше 1 игнорируются.
func Attempts(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.attempts = n
		}
	}
}

func InitialDelay(d time.Duration) Option {
	return func(c *config) {
		c.initialDelay = d
	}
}

func MaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

func Multiplier(m float64) Option {
	return func(c *config) {
		c.multiplier = m
	}
}

// Jitter доля, на которую случайно сдвигается каждая задержка (0.1 = ±10%).
func Jitter(j float64) Option {
	return func(c *config) {
		c.jitter = j
	}
}

// If повторять только ошибки, для которых fn вернула true.
func If(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// PermanentError ошибка, которую не нужно повторять.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent помечает ошибку как неповторяемую.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

func IsPermanent(err error) bool {
	var p *PermanentError
	return errors.As(err, &p)
}

// Do выполняет op, пока она не завершится успешно, не вернет неповторяемую ошибку, не кончатся попытки
// или не будет отменен ctx. Возвращается последняя ошибка op.
func Do(ctx context.Context, op func(ctx context.Context) error, opts ...Option) error {
	cfg := config{
		attempts:     defaultAttempts,
		initialDelay: defaultInitialDelay,
		maxDelay:     defaultMaxDelay,
		multiplier:   defaultMultiplier,
		jitter:       defaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	delay := cfg.initialDelay
	var err error
	for attempt := 1; ; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			var p *PermanentError
			errors.As(err, &p)
			return p.Err
		}
		if cfg.retryIf != nil && !cfg.retryIf(err) {
			return err
		}
		if attempt >= cfg.attempts {
			return fmt.Errorf("after %d attempts: %w", attempt, err)
		}

		timer := time.NewTimer(spread(delay, cfg.jitter))
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry interrupted after %d attempts: %w", attempt, errors.Join(err, ctx.Err()))
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.multiplier)
		if delay > cfg.maxDelay {
			delay = cfg.maxDelay
		}
	}
}

func spread(d time.Duration, j float64) time.Duration {
	if j <= 0 || d <= 0 {
		return d
	}
	return time.Duration(float64(d) * (1 - j + rand.Float64()*2*j)) // nolint:gosec
}
