package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/SscSPs/visa_portal_backend/internal/middleware"
	"github.com/SscSPs/visa_portal_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// summaryHandler serves payment progress in a chosen display currency.
type summaryHandler struct {
	summaryService portssvc.SummarySvc
}

func newSummaryHandler(ss portssvc.SummarySvc) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

func registerSummaryRoutes(portal, admin *gin.RouterGroup, summaryService portssvc.SummarySvc) {
	h := newSummaryHandler(summaryService)

	portal.GET("/payments/summary", h.getMySummary)
	admin.GET("/clients/:userID/summary", h.getClientSummary)
}

// getMySummary godoc
// @Summary Payment progress for the caller
// @Description Totals, remaining balance, percentage and progress band converted into the display currency. A newer request from the same user supersedes an older one, which then answers 409.
// @Tags portal
// @Produce  json
// @Param   currency query string false "Display currency" default(USD)
// @Success 200 {object} dto.PaymentSummaryResponse
// @Failure 400 {object} map[string]string "Invalid currency"
// @Failure 409 {object} map[string]string "Superseded by a newer selection"
// @Security BearerAuth
// @Router /portal/payments/summary [get]
func (h *summaryHandler) getMySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	h.respondSummary(c, logger, userID, userID)
}

// getClientSummary godoc
// @Summary Payment progress for a client
// @Tags admin
// @Produce  json
// @Param   userID path string true "Client user ID"
// @Param   currency query string false "Display currency" default(USD)
// @Success 200 {object} dto.PaymentSummaryResponse
// @Failure 400 {object} map[string]string "Invalid currency"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Superseded by a newer selection from the same admin"
// @Security BearerAuth
// @Router /admin/clients/{userID}/summary [get]
func (h *summaryHandler) getClientSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	h.respondSummary(c, logger, adminID, c.Param("userID"))
}

func (h *summaryHandler) respondSummary(c *gin.Context, logger *slog.Logger, viewerID, userID string) {
	var q dto.SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), viewerID, userID, q.Currency)
	if err != nil {
		respondError(c, logger.With(slog.String("summary_user_id", userID)), err, "Failed to compute payment summary")
		return
	}

	format := func(amount decimal.Decimal) string {
		return utils.FormatMoney(amount, summary.DisplayCurrency)
	}
	c.JSON(http.StatusOK, dto.ToPaymentSummaryResponse(summary, format))
}
