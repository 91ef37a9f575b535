package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Plan тарифный план из статического каталога. В рантайме не меняется.
type Plan struct {
	ID           string          `json:"id" yaml:"id"`
	Category     string          `json:"category" yaml:"category"`
	VCPU         int             `json:"vcpu" yaml:"vcpu"`
	MemoryMB     int             `json:"memory_mb" yaml:"memory_mb"`
	DiskGB       int             `json:"disk_gb" yaml:"disk_gb"`
	TransferTB   int             `json:"transfer_tb" yaml:"transfer_tb"`
	Hourly       decimal.Decimal `json:"hourly" yaml:"hourly"`
	Monthly      decimal.Decimal `json:"monthly" yaml:"monthly"`
	ProviderType string          `json:"-" yaml:"provider_type"`
}

// Location регион размещения серверов.
type Location struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Country    string          `json:"country" yaml:"country"`
	Multiplier decimal.Decimal `json:"-" yaml:"multiplier"`
}

// PricingOverride цена, выставленная администратором поверх каталожной. Hourly и Monthly задаются
// независимо друг от друга и никогда не пересчитываются одна из другой.
type PricingOverride struct {
	PlanID    string
	Hourly    decimal.Decimal
	Monthly   decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Wallet struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	OwnerID   int64
	Currency  string
	Balance   decimal.Decimal
	Version   int64
}

type LedgerTransaction struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	WalletID     int64
	OwnerID      int64
	Type         TransactionType
	Status       TransactionStatus
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Currency     string
	Description  string
	ReferenceID  string
	Metadata     map[string]any
}

// SignedAmount возвращает сумму транзакции со знаком, с которым она входит в баланс кошелька.
func (t LedgerTransaction) SignedAmount() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Server арендованный у провайдера сервер. Характеристики и HourlyCost копируются в момент создания
// и не пересчитываются при изменении каталога или цен.
type Server struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	OwnerID      int64
	OwnerEmail   string
	InstanceID   string
	Hostname     string
	Region       string
	Image        string
	PlanID       string
	VCPU         int
	MemoryMB     int
	DiskGB       int
	Status       ServerStatus
	HourlyCost   decimal.Decimal
	Currency     string
	BillingStart time.Time
	IPv4         string
	IPv6         string
	ProviderMeta map[string]any
}

// HasInstance сообщает, известен ли идентификатор инстанса у провайдера.
func (s *Server) HasInstance() bool {
	return s.InstanceID != ""
}

// Price результат разрешения цены плана в конкретной локации.
type Price struct {
	PlanID   string          `json:"plan_id"`
	Location string          `json:"location"`
	Hourly   decimal.Decimal `json:"hourly"`
	Monthly  decimal.Decimal `json:"monthly"`
	Source   PriceSource     `json:"source"`
}

// ProviderInstance состояние инстанса так, как его видит провайдер.
type ProviderInstance struct {
	ID     string
	Name   string
	State  InstanceState
	IPv4   string
	IPv6   string
	Labels map[string]string
	Raw    map[string]any
}

type CreateInstanceArgs struct {
	Label          string
	Region         string
	ServerType     string
	Image          string
	AuthorizedKeys []string
	Labels         map[string]string
}
