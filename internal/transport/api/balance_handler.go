package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-vps/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionsLimit uint = 50
)

type BalanceHandler struct {
	svs LedgerServicer
}

func NewBalanceHandler(svs LedgerServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type BalanceQuery struct {
	Currency string `binding:"omitempty,len=3,alpha" form:"currency"`
}

// Index GET RouteGroup + BalanceRoute. Баланс кошелька текущего владельца, 0 если кошелька еще нет.
func (b *BalanceHandler) Index(c *gin.Context) {
	var query BalanceQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	currency := b.currency(query.Currency)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.GetBalance(reqCtx, middlewares.CurrentActor(c).OwnerID, currency)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Balance:  balance,
		Currency: currency,
	})
}

type TransactionsQuery struct {
	Currency string `binding:"omitempty,len=3,alpha" form:"currency"`
	Limit    uint   `binding:"omitempty,max=500"     form:"limit"`
}

// Transactions GET RouteGroup + BalanceTransactionsRoute. Последние записи журнала, новые первыми.
func (b *BalanceHandler) Transactions(c *gin.Context) {
	var query TransactionsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultTransactionsLimit
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := b.svs.Transactions(reqCtx, middlewares.CurrentActor(c).OwnerID,
		b.currency(query.Currency), query.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		response[i] = toTransactionResponse(&transactions[i])
	}
	c.JSON(http.StatusOK, response)
}

func (b *BalanceHandler) currency(requested string) string {
	if requested == "" {
		return b.svs.Currency()
	}
	return requested
}
