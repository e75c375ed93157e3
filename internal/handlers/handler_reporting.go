package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/dto"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the read-only screens, the action journal and
// workspace resets.
type reportingHandler struct {
	screenHandler
	reportingService portssvc.ReportingSvc
}

func registerReportingRoutes(rg *gin.RouterGroup, base screenHandler, reportingService portssvc.ReportingSvc) {
	h := &reportingHandler{screenHandler: base, reportingService: reportingService}

	rg.GET("/audit-logs", h.listAuditLogs)
	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/console-actions", h.listConsoleActions)

	workspace := rg.Group("/workspace")
	{
		workspace.POST("/screens/:screen/reset", h.resetScreen)
		workspace.DELETE("", h.closeWorkspace)
	}
}

// listAuditLogs godoc
// @Summary Load the audit log screen
// @Tags reporting
// @Produce json
// @Param object_type query string false "Object type (order, inventory_item, sale, dispatch)"
// @Param object_id query string false "Object ID"
// @Success 200 {object} dto.ScreenResponse[[]domain.AuditLog]
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *reportingHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.AuditLogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "audit log filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.AuditLogs, params.ToDomain(), h.reportingService.LoadAuditLogs)
}

// getDashboard godoc
// @Summary Load the dashboard
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.ScreenResponse[map[string]interface{}]
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Dashboard, struct{}{}, h.reportingService.LoadDashboard)
}

// listConsoleActions godoc
// @Summary List the caller's console actions
// @Description Pages through the local action journal, newest first. Empty when the journal is disabled.
// @Tags reporting
// @Produce json
// @Param resource query string false "Resource (order, sale, balance, ...)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListConsoleActionsResponse
// @Failure 400 {object} map[string]string "Invalid query or token"
// @Failure 500 {object} map[string]string "Failed to list console actions"
// @Security BearerAuth
// @Router /console-actions [get]
func (h *reportingHandler) listConsoleActions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var params dto.ListConsoleActionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "console action query")
		return
	}

	actions, next, err := h.journal.ListConsoleActions(c.Request.Context(), params.ToDomain(userID))
	if err != nil {
		respondError(c, logger, err, "Failed to list console actions")
		return
	}
	c.JSON(http.StatusOK, dto.ListConsoleActionsResponse{
		Enabled:   h.journal.Enabled(),
		Actions:   actions,
		NextToken: next,
	})
}

// resetScreen godoc
// @Summary Reset one screen
// @Description Clears the screen's filter and snapshot and cancels any refresh in flight
// @Tags workspace
// @Produce json
// @Param screen path string true "Screen name (finance, balance, orders, ...)"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} map[string]string "Unknown screen"
// @Security BearerAuth
// @Router /workspace/screens/{screen}/reset [post]
func (h *reportingHandler) resetScreen(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	name := c.Param("screen")
	if !ws.ResetScreen(name) {
		logger.Warn("Unknown screen", slog.String("screen", name))
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown screen: " + name})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Screen reset"})
}

// closeWorkspace godoc
// @Summary Close the caller's workspace
// @Description Drops every screen the caller has open
// @Tags workspace
// @Success 204
// @Security BearerAuth
// @Router /workspace [delete]
func (h *reportingHandler) closeWorkspace(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	h.workspaces.Drop(userID)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Workspace closed")
	c.Status(http.StatusNoContent)
}
