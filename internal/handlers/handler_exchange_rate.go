package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/SscSPs/visa_portal_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvc
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvc) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvc, throttle gin.HandlerFunc) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := rg.Group("/exchange-rates", throttle)
	{
		rates.GET("/:base", h.getExchangeRates)
	}
}

// getExchangeRates godoc
// @Summary Get the rate table for a base currency
// @Description Serves the cached table when fresh, otherwise fetches it. When the provider is unreachable the built-in fallback table is returned with fallback=true.
// @Tags exchange-rates
// @Produce  json
// @Param   base path string true "Base currency code"
// @Success 200 {object} dto.ExchangeRateSetResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /exchange-rates/{base} [get]
func (h *exchangeRateHandler) getExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base, err := dto.NormalizeCurrencyCode(c.Param("base"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch exchange rates")
		return
	}

	set := h.exchangeRateService.FetchExchangeRates(c.Request.Context(), base)
	c.JSON(http.StatusOK, dto.ToExchangeRateSetResponse(set))
}
