package repoargs

import (
	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerTransactionCreate struct {
	WalletID     int64
	OwnerID      int64
	Type         domain.TransactionType
	Status       domain.TransactionStatus
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Currency     string
	Description  string
	ReferenceID  string
	Metadata     map[string]any
}

// LedgerSum суммы завершенных транзакций кошелька в разрезе направления.
type LedgerSum struct {
	CreditAmount decimal.Decimal
	DebitAmount  decimal.Decimal
}
