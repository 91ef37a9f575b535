package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const serverColumns = `id, created_at, updated_at, owner_id, owner_email, COALESCE(provider_instance_id, ''),
	hostname, region, image, plan_id, vcpu, memory_mb, disk_gb, status::text, hourly_cost, currency,
	billing_start, ipv4, ipv6, provider_meta`

type ServerRepository struct {
	db uow.DBTX
}

func NewServerRepository(db uow.DBTX) *ServerRepository {
	return &ServerRepository{db: db}
}

// Create сохраняет сервер. ID сервера задается вызывающей стороной заранее.
func (r *ServerRepository) Create(ctx context.Context, s *domain.Server) (*domain.Server, error) {
	meta := s.ProviderMeta
	if meta == nil {
		meta = map[string]any{}
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO servers (id, owner_id, owner_email, provider_instance_id, hostname, region, image, plan_id,
			vcpu, memory_mb, disk_gb, status, hourly_cost, currency, billing_start, ipv4, ipv6, provider_meta)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12::server_status, $13, $14, $15, $16,
			$17, $18)
		RETURNING `+serverColumns,
		s.ID,
		s.OwnerID,
		s.OwnerEmail,
		s.InstanceID,
		s.Hostname,
		s.Region,
		s.Image,
		s.PlanID,
		s.VCPU,
		s.MemoryMB,
		s.DiskGB,
		string(s.Status),
		s.HourlyCost,
		s.Currency,
		s.BillingStart,
		s.IPv4,
		s.IPv6,
		meta,
	)
	created, err := scanServer(row)
	if err != nil {
		return nil, convertErr(err, "create server %s", s.ID)
	}
	return created, nil
}

func (r *ServerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Server, error) {
	row := r.db.QueryRow(ctx, `SELECT `+serverColumns+` FROM servers WHERE id = $1`, id)
	s, err := scanServer(row)
	if err != nil {
		return nil, convertErr(err, "get server %s", id)
	}
	return s, nil
}

func (r *ServerRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Server, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+serverColumns+` FROM servers WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, convertErr(err, "servers of owner %d", ownerID)
	}
	servers, err := collectServers(rows)
	if err != nil {
		return nil, convertErr(err, "servers of owner %d", ownerID)
	}
	return servers, nil
}

// GetByStatuses возвращает до limit серверов в одном из статусов statuses, начиная с давно не обновлявшихся.
// Серверы, у которых инстанс пропал у провайдера (MarkInstanceMissing), не возвращаются.
func (r *ServerRepository) GetByStatuses(
	ctx context.Context,
	statuses []domain.ServerStatus,
	limit uint,
) ([]domain.Server, error) {
	raw := make([]string, len(statuses))
	for i, st := range statuses {
		raw[i] = string(st)
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+serverColumns+` FROM servers
		WHERE status::text = ANY($1) AND instance_missing_at IS NULL
		ORDER BY updated_at
		LIMIT $2`,
		raw, int64(limit),
	)
	if err != nil {
		return nil, convertErr(err, "servers by statuses %v", raw)
	}
	servers, err := collectServers(rows)
	if err != nil {
		return nil, convertErr(err, "servers by statuses %v", raw)
	}
	return servers, nil
}

// UpdateStatus меняет статус сервера только если он отличается от текущего. Статус deleting конечный и не
// перезаписывается. Возвращает true, если запись изменилась.
func (r *ServerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ServerStatus) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE servers SET status = $2::server_status, instance_missing_at = NULL, updated_at = now()
		WHERE id = $1 AND status <> $2::server_status AND status <> 'deleting'`,
		id, string(status),
	)
	if err != nil {
		return false, convertErr(err, "update status of server %s", id)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ServerRepository) MarkInstanceMissing(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE servers SET instance_missing_at = now()
		WHERE id = $1 AND instance_missing_at IS NULL`,
		id,
	)
	if err != nil {
		return false, convertErr(err, "mark instance of server %s missing", id)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateAfterRebuild записывает новый образ и статус после запуска переустановки.
func (r *ServerRepository) UpdateAfterRebuild(ctx context.Context, id uuid.UUID, args repoargs.ServerRebuilt) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE servers SET image = $2, status = $3::server_status, instance_missing_at = NULL, updated_at = now()
		WHERE id = $1`,
		id, args.Image, string(args.Status),
	)
	if err != nil {
		return convertErr(err, "update server %s after rebuild", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "update server %s after rebuild", id)
	}
	return nil
}

func (r *ServerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM servers WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "delete server %s", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "delete server %s", id)
	}
	return nil
}

// ExistingInstanceIDs возвращает те идентификаторы инстансов из ids, для которых есть локальная запись.
func (r *ServerRepository) ExistingInstanceIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT provider_instance_id FROM servers WHERE provider_instance_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, convertErr(err, "existing instance ids")
	}
	existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, convertErr(err, "existing instance ids")
	}
	return existing, nil
}

func collectServers(rows pgx.Rows) ([]domain.Server, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Server, error) { //nolint:wrapcheck
		s, err := scanServer(row)
		if err != nil {
			return domain.Server{}, err
		}
		return *s, nil
	})
}

func scanServer(row pgx.Row) (*domain.Server, error) {
	var (
		s      domain.Server
		status string
	)
	if err := row.Scan(
		&s.ID,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.OwnerID,
		&s.OwnerEmail,
		&s.InstanceID,
		&s.Hostname,
		&s.Region,
		&s.Image,
		&s.PlanID,
		&s.VCPU,
		&s.MemoryMB,
		&s.DiskGB,
		&status,
		&s.HourlyCost,
		&s.Currency,
		&s.BillingStart,
		&s.IPv4,
		&s.IPv6,
		&s.ProviderMeta,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	s.Status = domain.ServerStatus(status)
	return &s, nil
}
