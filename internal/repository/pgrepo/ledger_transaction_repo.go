package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const ledgerColumns = `id, created_at, wallet_id, owner_id, type::text, status::text, amount, balance_after,
	currency, description, reference_id, metadata`

type LedgerTransactionRepository struct {
	db uow.DBTX
}

func NewLedgerTransactionRepository(db uow.DBTX) *LedgerTransactionRepository {
	return &LedgerTransactionRepository{db: db}
}

// Create добавляет запись в журнал. Записи журнала неизменяемы.
func (l *LedgerTransactionRepository) Create(
	ctx context.Context,
	args repoargs.LedgerTransactionCreate,
) (*domain.LedgerTransaction, error) {
	id, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, convertErr(idErr, "generate ledger transaction id")
	}
	metadata := args.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	row := l.db.QueryRow(ctx,
		`INSERT INTO ledger_transactions
			(id, wallet_id, owner_id, type, status, amount, balance_after, currency, description, reference_id, metadata)
		VALUES ($1, $2, $3, $4::ledger_transaction_type, $5::ledger_transaction_status, $6, $7, $8, $9, $10, $11)
		RETURNING `+ledgerColumns,
		id,
		args.WalletID,
		args.OwnerID,
		string(args.Type),
		string(args.Status),
		args.Amount,
		args.BalanceAfter,
		args.Currency,
		args.Description,
		args.ReferenceID,
		metadata,
	)
	trans, err := scanLedgerTransaction(row)
	if err != nil {
		return nil, convertErr(err, "create ledger transaction for wallet %d", args.WalletID)
	}
	return trans, nil
}

// GetByOwner возвращает последние limit записей журнала владельца в валюте currency.
func (l *LedgerTransactionRepository) GetByOwner(
	ctx context.Context,
	ownerID int64,
	currency string,
	limit uint,
) ([]domain.LedgerTransaction, error) {
	rows, err := l.db.Query(ctx,
		`SELECT `+ledgerColumns+` FROM ledger_transactions
		WHERE owner_id = $1 AND currency = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3`,
		ownerID, currency, int64(limit),
	)
	if err != nil {
		return nil, convertErr(err, "ledger transactions of owner %d", ownerID)
	}
	transactions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerTransaction, error) {
		t, scanErr := scanLedgerTransaction(row)
		if scanErr != nil {
			return domain.LedgerTransaction{}, scanErr
		}
		return *t, nil
	})
	if err != nil {
		return nil, convertErr(err, "ledger transactions of owner %d", ownerID)
	}
	return transactions, nil
}

// SumCompleted суммирует завершенные транзакции кошелька отдельно по поступлениям и списаниям.
func (l *LedgerTransactionRepository) SumCompleted(ctx context.Context, walletID int64) (*repoargs.LedgerSum, error) {
	var sum repoargs.LedgerSum
	err := l.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount) FILTER (WHERE type IN ('deposit', 'refund')), 0),
			COALESCE(SUM(amount) FILTER (WHERE type IN ('withdrawal', 'server_payment')), 0)
		FROM ledger_transactions
		WHERE wallet_id = $1 AND status = 'completed'`,
		walletID,
	).Scan(&sum.CreditAmount, &sum.DebitAmount)
	if err != nil {
		return nil, convertErr(err, "sum ledger of wallet %d", walletID)
	}
	return &sum, nil
}

func scanLedgerTransaction(row pgx.Row) (*domain.LedgerTransaction, error) {
	var (
		t              domain.LedgerTransaction
		tType, tStatus string
	)
	if err := row.Scan(
		&t.ID,
		&t.CreatedAt,
		&t.WalletID,
		&t.OwnerID,
		&tType,
		&tStatus,
		&t.Amount,
		&t.BalanceAfter,
		&t.Currency,
		&t.Description,
		&t.ReferenceID,
		&t.Metadata,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	t.Type = domain.TransactionType(tType)
	t.Status = domain.TransactionStatus(tStatus)
	return &t, nil
}
