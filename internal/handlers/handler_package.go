package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/dto"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type packageHandler struct {
	screenHandler
	packageService portssvc.PackageSvc
}

// registerPackageRoutes registers routes for packaging stock.
func registerPackageRoutes(rg *gin.RouterGroup, base screenHandler, packageService portssvc.PackageSvc) {
	h := &packageHandler{screenHandler: base, packageService: packageService}

	packages := rg.Group("/packages")
	{
		packages.GET("", h.listPackages)
		packages.POST("/ensure", h.ensurePackages)
		packages.POST("/stock", h.addStock)
		packages.PUT("/:id", h.updatePackage)
		packages.POST("/history/:id/receive-and-pay", h.receiveAndPay)
	}
}

// listPackages godoc
// @Summary Load the packages screen
// @Description Ensures a row exists for every package size, then returns stock and restock history
// @Tags packages
// @Produce json
// @Success 200 {object} dto.ScreenResponse[domain.PackageSnapshot]
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /packages [get]
func (h *packageHandler) listPackages(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Packages, struct{}{}, h.packageService.LoadPackages)
}

// ensurePackages godoc
// @Summary Create missing package rows
// @Tags packages
// @Produce json
// @Success 200 {object} dto.MutationResponse[domain.PackageSnapshot]
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /packages/ensure [post]
func (h *packageHandler) ensurePackages(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	_, err := h.packageService.EnsurePackages(c.Request.Context())
	rec := actionRecord{Action: "ensure_packages", Resource: "package"}
	finishMutation(c, h.journal, ws.Packages, h.packageService.LoadPackages, rec, err, http.StatusOK, "Packages ensured")
}

// addStock godoc
// @Summary Add packages to stock
// @Description Adds to the existing row for the size or creates it; payment fields are only sent when is_paid
// @Tags packages
// @Accept json
// @Produce json
// @Param stock body dto.AddStockRequest true "Stock to add"
// @Success 200 {object} dto.MutationResponse[domain.PackageSnapshot]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /packages/stock [post]
func (h *packageHandler) addStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "package stock")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	pkg, err := h.packageService.AddStock(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "add_package_stock", Resource: "package", ResourceID: string(req.PackageType), Payload: req}
	var result any
	if pkg != nil {
		result = pkg
	}
	finishMutation(c, h.journal, ws.Packages, h.packageService.LoadPackages, rec, err, http.StatusOK, result)
}

// updatePackage godoc
// @Summary Overwrite a package row
// @Tags packages
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param package body dto.UpdatePackageRequest true "New values"
// @Success 200 {object} dto.MutationResponse[domain.PackageSnapshot]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 404 {object} map[string]string "Package not found"
// @Security BearerAuth
// @Router /packages/{id} [put]
func (h *packageHandler) updatePackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "package")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	pkg, err := h.packageService.UpdatePackage(c.Request.Context(), packageID, req.ToDomain())
	var result any
	if pkg != nil {
		result = pkg
	}
	rec := idRecord("update_package", "package", packageID, req)
	finishMutation(c, h.journal, ws.Packages, h.packageService.LoadPackages, rec, err, http.StatusOK, result)
}

// receiveAndPay godoc
// @Summary Mark a restock received and paid
// @Description quantity_received defaults to quantity_added; payment_amount to quantity_added x cost_per_unit
// @Tags packages
// @Accept json
// @Produce json
// @Param id path int true "Package history ID"
// @Param payment body dto.ReceiveAndPayRequest false "Overrides"
// @Success 200 {object} dto.MutationResponse[domain.PackageSnapshot]
// @Failure 400 {object} map[string]string "Already received or rejected by the backend"
// @Failure 404 {object} map[string]string "History entry not found"
// @Security BearerAuth
// @Router /packages/history/{id}/receive-and-pay [post]
func (h *packageHandler) receiveAndPay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	historyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReceiveAndPayRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, logger, err, "receive and pay")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	err := h.packageService.MarkReceivedAndPay(c.Request.Context(), historyID, req.ToDomain())
	rec := idRecord("mark_received_and_pay", "package_history", historyID, req)
	finishMutation(c, h.journal, ws.Packages, h.packageService.LoadPackages, rec, err, http.StatusOK, "Package restock received and paid")
}
