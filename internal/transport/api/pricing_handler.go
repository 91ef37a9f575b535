package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	svs PricingServicer
}

func NewPricingHandler(svs PricingServicer) *PricingHandler {
	return &PricingHandler{svs: svs}
}

type LocationQuery struct {
	Location string `binding:"omitempty,max=32" form:"location"`
}

type PlanResponse struct {
	domain.Plan
	Price domain.Price `json:"price"`
}

// Index GET RouteGroup + PlansRoute. Планы каталога с ценами в локации из запроса.
func (h *PricingHandler) Index(c *gin.Context) {
	var query LocationQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	prices, err := h.svs.PriceList(ctx, query.Location)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	byPlan := make(map[string]domain.Price, len(prices))
	for _, p := range prices {
		byPlan[p.PlanID] = p
	}

	plans := h.svs.Plans()
	response := make([]PlanResponse, 0, len(plans))
	for _, plan := range plans {
		response = append(response, PlanResponse{Plan: plan, Price: byPlan[plan.ID]})
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + PricingRoute. Цена одного плана.
func (h *PricingHandler) Show(c *gin.Context) {
	var query LocationQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	price, err := h.svs.Resolve(ctx, c.Param("plan"), query.Location)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}
