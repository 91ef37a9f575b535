package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const overrideColumns = `plan_id, hourly, monthly, active, created_at, updated_at`

type PricingOverrideRepository struct {
	db uow.DBTX
}

func NewPricingOverrideRepository(db uow.DBTX) *PricingOverrideRepository {
	return &PricingOverrideRepository{db: db}
}

// GetActive возвращает действующее переопределение цены плана или ErrRecordNotFound.
func (p *PricingOverrideRepository) GetActive(ctx context.Context, planID string) (*domain.PricingOverride, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+overrideColumns+` FROM pricing_overrides WHERE plan_id = $1 AND active`,
		planID,
	)
	o, err := scanOverride(row)
	if err != nil {
		return nil, convertErr(err, "active pricing override of %s", planID)
	}
	return o, nil
}

// Upsert создает или заменяет переопределение цены плана и делает его активным.
func (p *PricingOverrideRepository) Upsert(
	ctx context.Context,
	planID string,
	hourly, monthly decimal.Decimal,
) (*domain.PricingOverride, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO pricing_overrides (plan_id, hourly, monthly, active) VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (plan_id) DO UPDATE
			SET hourly = EXCLUDED.hourly, monthly = EXCLUDED.monthly, active = TRUE, updated_at = now()
		RETURNING `+overrideColumns,
		planID, hourly, monthly,
	)
	o, err := scanOverride(row)
	if err != nil {
		return nil, convertErr(err, "upsert pricing override of %s", planID)
	}
	return o, nil
}

// Deactivate выключает переопределение. Возвращает ErrRecordNotFound, если активного переопределения нет.
func (p *PricingOverrideRepository) Deactivate(ctx context.Context, planID string) error {
	tag, err := p.db.Exec(ctx,
		`UPDATE pricing_overrides SET active = FALSE, updated_at = now() WHERE plan_id = $1 AND active`,
		planID,
	)
	if err != nil {
		return convertErr(err, "deactivate pricing override of %s", planID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deactivate pricing override of %s", planID)
	}
	return nil
}

func (p *PricingOverrideRepository) ListActive(ctx context.Context) ([]domain.PricingOverride, error) {
	rows, err := p.db.Query(ctx, `SELECT `+overrideColumns+` FROM pricing_overrides WHERE active ORDER BY plan_id`)
	if err != nil {
		return nil, convertErr(err, "list pricing overrides")
	}
	overrides, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PricingOverride, error) {
		o, scanErr := scanOverride(row)
		if scanErr != nil {
			return domain.PricingOverride{}, scanErr
		}
		return *o, nil
	})
	if err != nil {
		return nil, convertErr(err, "list pricing overrides")
	}
	return overrides, nil
}

func scanOverride(row pgx.Row) (*domain.PricingOverride, error) {
	var o domain.PricingOverride
	if err := row.Scan(&o.PlanID, &o.Hourly, &o.Monthly, &o.Active, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &o, nil
}
