package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/fsdevblog/groph-vps/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	pricing PricingServicer
	ledger  LedgerServicer
}

func NewAdminHandler(pricing PricingServicer, ledger LedgerServicer) *AdminHandler {
	return &AdminHandler{pricing: pricing, ledger: ledger}
}

type SetPriceParams struct {
	Hourly  decimal.Decimal `binding:"gt=0" json:"hourly"`
	Monthly decimal.Decimal `binding:"gt=0" json:"monthly"`
}

type OverrideResponse struct {
	PlanID    string          `json:"plan"`
	Hourly    decimal.Decimal `json:"hourly"`
	Monthly   decimal.Decimal `json:"monthly"`
	Active    bool            `json:"active"`
	UpdatedAt string          `json:"updated_at"`
}

// SetPrice PUT RouteGroup + AdminPricingRoute. Почасовая и месячная цены задаются независимо.
func (h *AdminHandler) SetPrice(c *gin.Context) {
	var params SetPriceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	override, err := h.pricing.SetOverride(ctx, c.Param("plan"), params.Hourly, params.Monthly)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, OverrideResponse{
		PlanID:    override.PlanID,
		Hourly:    override.Hourly,
		Monthly:   override.Monthly,
		Active:    override.Active,
		UpdatedAt: formatTime(override.UpdatedAt),
	})
}

// ResetPrice DELETE RouteGroup + AdminPricingRoute. Возвращает каталожную цену.
func (h *AdminHandler) ResetPrice(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.pricing.ResetOverride(ctx, c.Param("plan")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type CreditParams struct {
	Amount      decimal.Decimal `binding:"gt=0"                          json:"amount"`
	Currency    string          `binding:"omitempty,len=3,alpha"         json:"currency"`
	Type        string          `binding:"omitempty,oneof=deposit refund" json:"type"`
	Description string          `binding:"max=255"                       json:"description"`
	ReferenceID string          `binding:"max=128"                       json:"reference_id"`
}

type CreditResponse struct {
	Balance       decimal.Decimal `json:"balance"`
	TransactionID string          `json:"transaction_id"`
}

// Credit POST RouteGroup + AdminWalletCreditRoute. Пополнение кошелька владельца из пути.
func (h *AdminHandler) Credit(c *gin.Context) {
	ownerID, parseErr := strconv.ParseInt(c.Param("owner"), 10, 64)
	if parseErr != nil || ownerID <= 0 {
		_ = c.AbortWithError(http.StatusNotFound, domain.ErrRecordNotFound).SetType(gin.ErrorTypePrivate)
		return
	}

	var params CreditParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	tType := domain.TransactionDeposit
	if params.Type != "" {
		tType = domain.TransactionType(params.Type)
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.ledger.Credit(ctx, domain.CreditArgs{
		OwnerID:     ownerID,
		Currency:    params.Currency,
		Amount:      params.Amount,
		Type:        tType,
		Description: params.Description,
		ReferenceID: params.ReferenceID,
		Metadata:    map[string]any{"admin_id": middlewares.CurrentActor(c).OwnerID},
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := CreditResponse{Balance: entry.NewBalance}
	if entry.Transaction != nil {
		resp.TransactionID = entry.Transaction.ID.String()
	}
	c.JSON(http.StatusOK, resp)
}
