package api

import (
	"time"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/service"
	"github.com/shopspring/decimal"
)

type ServerResponse struct {
	ID           string          `json:"id"`
	Hostname     string          `json:"hostname"`
	Status       string          `json:"status"`
	InstanceID   string          `json:"instance_id,omitempty"`
	Region       string          `json:"region"`
	Image        string          `json:"image"`
	PlanID       string          `json:"plan"`
	VCPU         int             `json:"vcpu"`
	MemoryMB     int             `json:"memory_mb"`
	DiskGB       int             `json:"disk_gb"`
	HourlyCost   decimal.Decimal `json:"hourly_cost"`
	Currency     string          `json:"currency"`
	IPv4         string          `json:"ipv4,omitempty"`
	IPv6         string          `json:"ipv6,omitempty"`
	BillingStart string          `json:"billing_start"`
	CreatedAt    string          `json:"created_at"`
}

func toServerResponse(s *domain.Server) ServerResponse {
	return ServerResponse{
		ID:           s.ID.String(),
		Hostname:     s.Hostname,
		Status:       string(s.Status),
		InstanceID:   s.InstanceID,
		Region:       s.Region,
		Image:        s.Image,
		PlanID:       s.PlanID,
		VCPU:         s.VCPU,
		MemoryMB:     s.MemoryMB,
		DiskGB:       s.DiskGB,
		HourlyCost:   s.HourlyCost,
		Currency:     s.Currency,
		IPv4:         s.IPv4,
		IPv6:         s.IPv6,
		BillingStart: formatTime(s.BillingStart),
		CreatedAt:    formatTime(s.CreatedAt),
	}
}

type ProvisionResponse struct {
	Server        ServerResponse  `json:"server"`
	Price         *domain.Price   `json:"price"`
	Charged       decimal.Decimal `json:"charged"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
}

func toProvisionResponse(res *service.ProvisionResult) ProvisionResponse {
	resp := ProvisionResponse{
		Server:   toServerResponse(res.Server),
		Price:    res.Price,
		Charged:  res.Charged,
		Warnings: res.Warnings,
	}
	if res.Transaction != nil {
		resp.TransactionID = res.Transaction.ID.String()
	}
	return resp
}

type DeleteResponse struct {
	LocalDeleted  bool   `json:"local_deleted"`
	RemoteDeleted bool   `json:"remote_deleted"`
	RemoteError   string `json:"remote_error,omitempty"`
}

type TransactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Currency     string          `json:"currency"`
	Description  string          `json:"description,omitempty"`
	ReferenceID  string          `json:"reference_id,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

func toTransactionResponse(t *domain.LedgerTransaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		Status:       string(t.Status),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Currency:     t.Currency,
		Description:  t.Description,
		ReferenceID:  t.ReferenceID,
		CreatedAt:    formatTime(t.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
