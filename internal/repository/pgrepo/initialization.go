package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-vps/pkg/retry"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	connectMaxAttempts   = 30
	connectRetryInterval = 3 * time.Second
)

// Connect открывает пул соединений, повторяя попытки пока база недоступна, и применяет миграции из migrationsDir.
// Пустой migrationsDir отключает миграции.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	var (
		pool    *pgxpool.Pool
		attempt int
	)
	connErr := retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		p, openErr := openPool(ctx, poolConfig)
		if openErr != nil {
			l.WithError(openErr).
				WithField("attempt", fmt.Sprintf("#%d / %d", attempt, connectMaxAttempts)).
				Warn("postgres is unavailable")
			return openErr
		}
		pool = p
		return nil
	},
		retry.Attempts(connectMaxAttempts),
		retry.InitialDelay(connectRetryInterval),
		retry.Multiplier(1),
		retry.MaxDelay(connectRetryInterval),
	)
	if connErr != nil {
		return nil, fmt.Errorf("init postgres connection: %w", connErr)
	}

	if migrationsDir == "" {
		return pool, nil
	}
	if err = postgresMigrate(migrationsDir, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func openPool(ctx context.Context, conf *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
