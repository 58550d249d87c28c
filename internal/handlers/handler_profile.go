package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/SscSPs/visa_portal_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests related to client profiles.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers the client's own profile routes and the admin client roster.
func registerProfileRoutes(portal, admin *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	portal.GET("/profile", h.getMyProfile)
	portal.PUT("/profile", h.updateMyProfile)

	admin.GET("/clients", h.listClients)
}

// getMyProfile godoc
// @Summary Get the caller's profile
// @Tags portal
// @Produce  json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /portal/profile [get]
func (h *profileHandler) getMyProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateMyProfile godoc
// @Summary Update the caller's profile
// @Tags portal
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateProfileRequest true "Editable profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /portal/profile [put]
func (h *profileHandler) updateMyProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update profile")
		return
	}

	logger.Info("Profile updated")
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// listClients godoc
// @Summary List client profiles
// @Description Admin roster of portal clients, ordered by name
// @Tags admin
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Rows to skip" default(0)
// @Success 200 {array} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid paging"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /admin/clients [get]
func (h *profileHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	profiles, err := h.profileService.ListClients(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProfileResponse(profiles))
}
