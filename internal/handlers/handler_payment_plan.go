package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/SscSPs/visa_portal_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentPlanHandler handles HTTP requests related to payment plans.
type paymentPlanHandler struct {
	planService portssvc.PaymentPlanSvcFacade
}

func newPaymentPlanHandler(ps portssvc.PaymentPlanSvcFacade) *paymentPlanHandler {
	return &paymentPlanHandler{planService: ps}
}

func registerPaymentPlanRoutes(portal, admin *gin.RouterGroup, planService portssvc.PaymentPlanSvcFacade) {
	h := newPaymentPlanHandler(planService)

	portal.GET("/payment-plan", h.getMyPlan)

	plans := admin.Group("/payment-plans")
	{
		plans.PUT("/:userID", h.upsertPlan)
		plans.DELETE("/:userID", h.deletePlan)
	}
}

// getMyPlan godoc
// @Summary Get the caller's payment plan
// @Tags portal
// @Produce  json
// @Success 200 {object} dto.PaymentPlanResponse
// @Failure 404 {object} map[string]string "No plan"
// @Security BearerAuth
// @Router /portal/payment-plan [get]
func (h *paymentPlanHandler) getMyPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payment plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPlanResponse(plan))
}

// upsertPlan godoc
// @Summary Create or replace a client's payment plan
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   userID path string true "Client user ID"
// @Param   plan body dto.UpsertPaymentPlanRequest true "Plan details"
// @Success 200 {object} dto.PaymentPlanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /admin/payment-plans/{userID} [put]
func (h *paymentPlanHandler) upsertPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	editorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	clientID := c.Param("userID")

	var req dto.UpsertPaymentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertPaymentPlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	plan, err := h.planService.UpsertPlan(c.Request.Context(), clientID, req, editorUserID)
	if err != nil {
		respondError(c, logger.With(slog.String("client_user_id", clientID)), err, "Failed to save payment plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPlanResponse(plan))
}

// deletePlan godoc
// @Summary Delete a client's payment plan
// @Tags admin
// @Param   userID path string true "Client user ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "No plan"
// @Security BearerAuth
// @Router /admin/payment-plans/{userID} [delete]
func (h *paymentPlanHandler) deletePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("userID")

	if err := h.planService.DeletePlan(c.Request.Context(), clientID); err != nil {
		respondError(c, logger.With(slog.String("client_user_id", clientID)), err, "Failed to delete payment plan")
		return
	}
	c.Status(http.StatusNoContent)
}
