package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/metrics"
	"github.com/fsdevblog/groph-vps/internal/repository/repoargs"
	"github.com/fsdevblog/groph-vps/pkg/uow"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "EUR"

// amountPrecision знаков после запятой в NUMERIC(20,4) колонках кошелька и журнала.
const amountPrecision = 4

// AuditResult сравнение баланса кошелька с суммой завершенных транзакций журнала.
type AuditResult struct {
	Balance    decimal.Decimal `json:"balance"`
	Journal    decimal.Decimal `json:"journal"`
	Consistent bool            `json:"consistent"`
}

type LedgerService struct {
	uow        uow.UOW
	walletRepo WalletRepository
	ledgerRepo LedgerTransactionRepository
	currency   string
	metrics    *metrics.Metrics
}

func NewLedgerService(u uow.UOW, currency string, m *metrics.Metrics) (*LedgerService, error) {
	walletRepo, err := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	ledgerRepo, err := uow.GetRepositoryAs[LedgerTransactionRepository](
		u,
		uow.RepositoryName(repoargs.LedgerTransactionRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &LedgerService{
		uow:        u,
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		currency:   currency,
		metrics:    m,
	}, nil
}

// Currency валюта по умолчанию.
func (l *LedgerService) Currency() string {
	return l.currency
}

// GetBalance возвращает баланс владельца. Если кошелька нет, баланс нулевой, кошелек не создается.
func (l *LedgerService) GetBalance(ctx context.Context, ownerID int64, currency string) (decimal.Decimal, error) {
	wallet, err := l.walletRepo.FindByOwner(ctx, ownerID, l.currencyOrDefault(currency))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get balance of owner %d: %w", ownerID, err)
	}
	return wallet.Balance, nil
}

// CanAfford сообщает, хватает ли на балансе required. Проверка без блокировки: окончательное решение
// принимает Debit.
func (l *LedgerService) CanAfford(
	ctx context.Context,
	ownerID int64,
	currency string,
	required decimal.Decimal,
) (bool, error) {
	if !required.IsPositive() {
		return true, nil
	}
	balance, err := l.GetBalance(ctx, ownerID, currency)
	if err != nil {
		return false, err
	}
	return balance.GreaterThanOrEqual(required), nil
}

// Debit списывает сумму с баланса.
//
// Алгоритм работы (в одной транзакции):
//  1. Блокирует строку кошелька.
//  2. Повторно проверяет, что баланс не меньше суммы. Если кошелька нет или средств не хватает,
//     возвращает ErrInsufficientBalance и ничего не меняет.
//  3. Уменьшает баланс, увеличивает версию кошелька.
//  4. Записывает завершенную транзакцию в журнал.
func (l *LedgerService) Debit(ctx context.Context, args domain.DebitArgs) (*domain.LedgerEntry, error) {
	if args.Type != domain.TransactionWithdrawal && args.Type != domain.TransactionServerPayment {
		return nil, fmt.Errorf("debit: %w: type %q is not a debit", domain.ErrValidation, args.Type)
	}
	entry, err := l.apply(ctx, ledgerChange{
		ownerID:     args.OwnerID,
		currency:    l.currencyOrDefault(args.Currency),
		amount:      args.Amount,
		tType:       args.Type,
		description: args.Description,
		referenceID: args.ReferenceID,
		metadata:    args.Metadata,
	})
	l.metrics.RecordLedger(string(args.Type), err)
	if err != nil {
		return nil, fmt.Errorf("debit owner %d: %w", args.OwnerID, err)
	}
	return entry, nil
}

// Credit зачисляет сумму на баланс, при необходимости создавая кошелек.
func (l *LedgerService) Credit(ctx context.Context, args domain.CreditArgs) (*domain.LedgerEntry, error) {
	if !args.Type.IsCredit() {
		return nil, fmt.Errorf("credit: %w: type %q is not a credit", domain.ErrValidation, args.Type)
	}
	entry, err := l.apply(ctx, ledgerChange{
		ownerID:     args.OwnerID,
		currency:    l.currencyOrDefault(args.Currency),
		amount:      args.Amount,
		tType:       args.Type,
		description: args.Description,
		referenceID: args.ReferenceID,
		metadata:    args.Metadata,
	})
	l.metrics.RecordLedger(string(args.Type), err)
	if err != nil {
		return nil, fmt.Errorf("credit owner %d: %w", args.OwnerID, err)
	}
	return entry, nil
}

// Transactions последние limit записей журнала владельца.
func (l *LedgerService) Transactions(
	ctx context.Context,
	ownerID int64,
	currency string,
	limit uint,
) ([]domain.LedgerTransaction, error) {
	transactions, err := l.ledgerRepo.GetByOwner(ctx, ownerID, l.currencyOrDefault(currency), limit)
	if err != nil {
		return nil, fmt.Errorf("transactions of owner %d: %w", ownerID, err)
	}
	return transactions, nil
}

// Audit пересчитывает сумму завершенных транзакций и сравнивает ее с балансом кошелька.
func (l *LedgerService) Audit(ctx context.Context, ownerID int64, currency string) (*AuditResult, error) {
	wallet, err := l.walletRepo.FindByOwner(ctx, ownerID, l.currencyOrDefault(currency))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &AuditResult{Balance: decimal.Zero, Journal: decimal.Zero, Consistent: true}, nil
		}
		return nil, fmt.Errorf("audit owner %d: %w", ownerID, err)
	}
	sum, err := l.ledgerRepo.SumCompleted(ctx, wallet.ID)
	if err != nil {
		return nil, fmt.Errorf("audit owner %d: %w", ownerID, err)
	}
	journal := sum.CreditAmount.Sub(sum.DebitAmount)
	return &AuditResult{
		Balance:    wallet.Balance,
		Journal:    journal,
		Consistent: journal.Equal(wallet.Balance),
	}, nil
}

type ledgerChange struct {
	ownerID     int64
	currency    string
	amount      decimal.Decimal
	tType       domain.TransactionType
	description string
	referenceID string
	metadata    map[string]any
}

func (l *LedgerService) apply(ctx context.Context, change ledgerChange) (*domain.LedgerEntry, error) {
	if !change.amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !change.amount.Equal(change.amount.Truncate(amountPrecision)) {
		return nil, fmt.Errorf(
			"%w: amount %s has more than %d decimal places", domain.ErrValidation, change.amount.String(), amountPrecision,
		)
	}
	if change.ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}

	var entry *domain.LedgerEntry
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		walletRepo, err := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		ledgerRepo, err := uow.GetAs[LedgerTransactionRepository](
			tx,
			uow.RepositoryName(repoargs.LedgerTransactionRepoName),
		)
		if err != nil {
			return err //nolint:wrapcheck
		}

		wallet, err := l.lockWallet(c, walletRepo, change)
		if err != nil {
			return err
		}

		delta := change.amount
		if !change.tType.IsCredit() {
			if wallet.Balance.LessThan(change.amount) {
				return fmt.Errorf(
					"%w: balance %s, required %s",
					domain.ErrInsufficientBalance, wallet.Balance.String(), change.amount.String(),
				)
			}
			delta = change.amount.Neg()
		}

		updated, err := walletRepo.UpdateBalance(c, wallet.ID, wallet.Balance.Add(delta))
		if err != nil {
			return err //nolint:wrapcheck
		}

		trans, err := ledgerRepo.Create(c, repoargs.LedgerTransactionCreate{
			WalletID:     wallet.ID,
			OwnerID:      change.ownerID,
			Type:         change.tType,
			Status:       domain.TransactionCompleted,
			Amount:       change.amount,
			BalanceAfter: updated.Balance,
			Currency:     change.currency,
			Description:  change.description,
			ReferenceID:  change.referenceID,
			Metadata:     change.metadata,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		entry = &domain.LedgerEntry{NewBalance: updated.Balance, Transaction: trans}
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return entry, nil
}

// lockWallet блокирует кошелек владельца. Для зачислений кошелек создается, если его еще нет.
func (l *LedgerService) lockWallet(ctx context.Context, repo WalletRepository, change ledgerChange) (*domain.Wallet, error) {
	if change.tType.IsCredit() {
		if err := repo.CreateIfNotExists(ctx, change.ownerID, change.currency); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	wallet, err := repo.GetForUpdate(ctx, change.ownerID, change.currency)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) && !change.tType.IsCredit() {
			return nil, fmt.Errorf("%w: no wallet in %s", domain.ErrInsufficientBalance, change.currency)
		}
		return nil, err //nolint:wrapcheck
	}
	return wallet, nil
}

func (l *LedgerService) currencyOrDefault(currency string) string {
	if currency == "" {
		return l.currency
	}
	return currency
}
