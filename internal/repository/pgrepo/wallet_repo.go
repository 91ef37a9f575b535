package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, created_at, updated_at, owner_id, currency, balance, version`

type WalletRepository struct {
	db uow.DBTX
}

func NewWalletRepository(db uow.DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

// FindByOwner возвращает кошелек владельца в валюте currency без блокировки строки.
func (w *WalletRepository) FindByOwner(ctx context.Context, ownerID int64, currency string) (*domain.Wallet, error) {
	row := w.db.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE owner_id = $1 AND currency = $2`,
		ownerID, currency,
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "find wallet by owner %d (%s)", ownerID, currency)
	}
	return wallet, nil
}

// GetForUpdate возвращает кошелек, блокируя строку до конца текущей транзакции.
func (w *WalletRepository) GetForUpdate(ctx context.Context, ownerID int64, currency string) (*domain.Wallet, error) {
	row := w.db.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE owner_id = $1 AND currency = $2 FOR UPDATE`,
		ownerID, currency,
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "lock wallet of owner %d (%s)", ownerID, currency)
	}
	return wallet, nil
}

// CreateIfNotExists создает пустой кошелек. Существующий кошелек не трогается.
func (w *WalletRepository) CreateIfNotExists(ctx context.Context, ownerID int64, currency string) error {
	_, err := w.db.Exec(ctx,
		`INSERT INTO wallets (owner_id, currency) VALUES ($1, $2) ON CONFLICT (owner_id, currency) DO NOTHING`,
		ownerID, currency,
	)
	return convertErr(err, "create wallet for owner %d (%s)", ownerID, currency)
}

// UpdateBalance выставляет новый баланс и увеличивает версию кошелька.
func (w *WalletRepository) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.Wallet, error) {
	row := w.db.QueryRow(ctx,
		`UPDATE wallets SET balance = $2, version = version + 1, updated_at = now()
		WHERE id = $1 RETURNING `+walletColumns,
		id, balance,
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "update balance of wallet %d", id)
	}
	return wallet, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := row.Scan(
		&wallet.ID,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
		&wallet.OwnerID,
		&wallet.Currency,
		&wallet.Balance,
		&wallet.Version,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &wallet, nil
}
