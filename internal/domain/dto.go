package domain

import "github.com/shopspring/decimal"

type ServerStatus string

const (
	ServerStatusProvisioning ServerStatus = "provisioning"
	ServerStatusRunning      ServerStatus = "running"
	ServerStatusStopped      ServerStatus = "stopped"
	ServerStatusRebuilding   ServerStatus = "rebuilding"
	ServerStatusDeleting     ServerStatus = "deleting"
)

// IsTransient true для статусов, которые должны разрешиться через сверку с провайдером.
func (s ServerStatus) IsTransient() bool {
	return s == ServerStatusProvisioning || s == ServerStatusRebuilding
}

// TransientStatuses статусы, для которых имеет смысл периодическая сверка.
func TransientStatuses() []ServerStatus {
	return []ServerStatus{ServerStatusProvisioning, ServerStatusRebuilding}
}

type PowerAction string

const (
	PowerStart  PowerAction = "start"
	PowerReboot PowerAction = "reboot"
	PowerStop   PowerAction = "stop"
)

// InstanceState нормализованный словарь состояний инстанса у провайдера.
type InstanceState string

const (
	InstanceInitializing  InstanceState = "initializing"
	InstanceRunning       InstanceState = "running"
	InstanceOff           InstanceState = "off"
	InstanceRebuilding    InstanceState = "rebuilding"
	InstanceDeleting      InstanceState = "deleting"
	InstanceTransitioning InstanceState = "transitioning"
	InstanceUnknown       InstanceState = "unknown"
)

type TransactionType string

const (
	TransactionDeposit       TransactionType = "deposit"
	TransactionWithdrawal    TransactionType = "withdrawal"
	TransactionServerPayment TransactionType = "server_payment"
	TransactionRefund        TransactionType = "refund"
)

// IsCredit true для типов, увеличивающих баланс.
func (t TransactionType) IsCredit() bool {
	return t == TransactionDeposit || t == TransactionRefund
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

type PriceSource string

const (
	PriceSourceCatalog  PriceSource = "catalog"
	PriceSourceOverride PriceSource = "override"
)

type DebitArgs struct {
	OwnerID     int64
	Currency    string
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	ReferenceID string
	Metadata    map[string]any
}

type CreditArgs struct {
	OwnerID     int64
	Currency    string
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	ReferenceID string
	Metadata    map[string]any
}

// LedgerEntry результат изменения баланса.
type LedgerEntry struct {
	NewBalance  decimal.Decimal
	Transaction *LedgerTransaction
}
