package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/SscSPs/visa_portal_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientRecordHandler serves document metadata and sign-in history.
type clientRecordHandler struct {
	documentService portssvc.DocumentSvcFacade
	loginService    portssvc.LoginHistorySvc
}

func newClientRecordHandler(ds portssvc.DocumentSvcFacade, ls portssvc.LoginHistorySvc) *clientRecordHandler {
	return &clientRecordHandler{documentService: ds, loginService: ls}
}

func registerClientRecordRoutes(portal, admin *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, loginService portssvc.LoginHistorySvc) {
	h := newClientRecordHandler(documentService, loginService)

	portal.GET("/documents", h.listMyDocuments)
	portal.POST("/logins", h.recordMyLogin)
	portal.GET("/logins", h.listMyLogins)

	admin.GET("/clients/:userID/documents", h.listClientDocuments)
	admin.POST("/clients/:userID/documents", h.registerClientDocument)
	admin.GET("/clients/:userID/footprint", h.getClientFootprint)
	admin.DELETE("/documents/:documentID", h.deleteDocument)
}

// listMyDocuments godoc
// @Summary List the caller's documents
// @Description Metadata of uploaded files, newest first
// @Tags portal
// @Produce  json
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /portal/documents [get]
func (h *clientRecordHandler) listMyDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	h.respondDocuments(c, logger, userID)
}

// recordMyLogin godoc
// @Summary Record a portal sign-in
// @Description Called by the portal right after sign-in; stores the client IP and user agent
// @Tags portal
// @Produce  json
// @Success 201 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /portal/logins [post]
func (h *clientRecordHandler) recordMyLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rec, err := h.loginService.RecordLogin(c.Request.Context(), userID, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, logger, err, "Failed to record login")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLoginResponse(rec))
}

// listMyLogins godoc
// @Summary List the caller's sign-ins
// @Tags portal
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Rows to skip" default(0)
// @Success 200 {array} dto.LoginResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /portal/logins [get]
func (h *clientRecordHandler) listMyLogins(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logins, err := h.loginService.ListUserLogins(c.Request.Context(), userID, q.Limit, q.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list logins")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLoginResponse(logins))
}

// listClientDocuments godoc
// @Summary List a client's documents
// @Tags admin
// @Produce  json
// @Param   userID path string true "Client user ID"
// @Success 200 {array} dto.DocumentResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /admin/clients/{userID}/documents [get]
func (h *clientRecordHandler) listClientDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	h.respondDocuments(c, logger, c.Param("userID"))
}

func (h *clientRecordHandler) respondDocuments(c *gin.Context, logger *slog.Logger, userID string) {
	docs, err := h.documentService.ListUserDocuments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentResponse(docs))
}

// registerClientDocument godoc
// @Summary Register an uploaded document for a client
// @Description Stores metadata for a file already placed in object storage under the client's prefix
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   userID path string true "Client user ID"
// @Param   document body dto.RegisterDocumentRequest true "Document metadata"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "File path already registered"
// @Security BearerAuth
// @Router /admin/clients/{userID}/documents [post]
func (h *clientRecordHandler) registerClientDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	clientID := c.Param("userID")

	var req dto.RegisterDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.RegisterDocument(c.Request.Context(), clientID, req, creatorUserID)
	if err != nil {
		respondError(c, logger.With(slog.String("client_user_id", clientID)), err, "Failed to register document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// getClientFootprint godoc
// @Summary A client's documents and recent sign-ins
// @Tags admin
// @Produce  json
// @Param   userID path string true "Client user ID"
// @Success 200 {object} dto.ClientFootprintResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /admin/clients/{userID}/footprint [get]
func (h *clientRecordHandler) getClientFootprint(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("userID")

	footprint, err := h.loginService.GetFootprint(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, logger.With(slog.String("client_user_id", clientID)), err, "Failed to load client footprint")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientFootprintResponse(footprint))
}

// deleteDocument godoc
// @Summary Delete document metadata
// @Tags admin
// @Param   documentID path string true "Document ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /admin/documents/{documentID} [delete]
func (h *clientRecordHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	if err := h.documentService.DeleteDocument(c.Request.Context(), documentID); err != nil {
		respondError(c, logger.With(slog.String("document_id", documentID)), err, "Failed to delete document")
		return
	}
	logger.Info("Document deleted", slog.String("document_id", documentID))
	c.Status(http.StatusNoContent)
}
