package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/dto"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler serves the sales and returns screens.
type saleHandler struct {
	screenHandler
	saleService   portssvc.SaleSvcFacade
	returnService portssvc.ReturnSvc
}

// registerSaleRoutes registers routes related to sales and returns.
func registerSaleRoutes(rg *gin.RouterGroup, base screenHandler, saleService portssvc.SaleSvcFacade, returnService portssvc.ReturnSvc) {
	h := &saleHandler{screenHandler: base, saleService: saleService, returnService: returnService}

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.createSale)
		sales.GET("/:id/completion-defaults", h.getCompletionDefaults)
		sales.POST("/:id/confirm", h.confirmSale)
		sales.POST("/:id/dispatch", h.dispatchSale)
		sales.POST("/:id/complete", h.completeSale)
		sales.POST("/:id/complete-from-order", h.completeFromOrder)
	}

	returns := rg.Group("/returns")
	{
		returns.GET("", h.listReturns)
		returns.POST("", h.createReturn)
		returns.POST("/:id/mark-refunded", h.markRefunded)
	}
}

// listSales godoc
// @Summary Load the sales screen
// @Description Returns the filtered sales, each with the transitions currently offered for it
// @Tags sales
// @Produce json
// @Param brand query string false "Brand contains"
// @Param size query string false "Size contains"
// @Param color query string false "Color contains"
// @Param status query string false "Status (pending, confirmed, dispatched, completed)"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} dto.ScreenResponse[domain.SaleSnapshot]
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SaleFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "sale filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Sales, params.ToDomain(), h.saleService.LoadSales)
}

// createSale godoc
// @Summary Record a sale
// @Description Checks local inventory for the product before creating the sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.MutationResponse[domain.SaleSnapshot]
// @Failure 400 {object} map[string]string "Invalid input, insufficient inventory, or rejected by the backend"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "sale")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "create_sale", Resource: "sale", Payload: req}
	var result any
	if sale != nil {
		rec = idRecord("create_sale", "sale", sale.ID, req)
		result = sale
	}
	finishMutation(c, h.journal, ws.Sales, h.saleService.LoadSales, rec, err, http.StatusCreated, result)
}

// getCompletionDefaults godoc
// @Summary Prefill the complete-from-order form
// @Description now_paid_amount is selling_price x quantity minus the advance already received, never below zero
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} domain.FromOrderCompletion
// @Failure 400 {object} map[string]string "Action not available for this sale"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id}/completion-defaults [get]
func (h *saleHandler) getCompletionDefaults(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	form, err := h.saleService.CompletionDefaults(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, logger, err, "Failed to prepare sale completion")
		return
	}
	c.JSON(http.StatusOK, form)
}

// saleAction runs one transition on the sale named in the path and refreshes
// the sales screen.
func (h *saleHandler) saleAction(c *gin.Context, action domain.SaleAction, payload any, run func(ctx context.Context, saleID int64) error, message string) {
	saleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	err := run(c.Request.Context(), saleID)
	rec := idRecord(string(action), "sale", saleID, payload)
	finishMutation(c, h.journal, ws.Sales, h.saleService.LoadSales, rec, err, http.StatusOK, message)
}

// confirmSale godoc
// @Summary Confirm a pending sale
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} dto.MutationResponse[domain.SaleSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id}/confirm [post]
func (h *saleHandler) confirmSale(c *gin.Context) {
	h.saleAction(c, domain.SaleActionConfirm, nil, h.saleService.Confirm, "Sale confirmed")
}

// dispatchSale godoc
// @Summary Dispatch a confirmed delivery sale
// @Description Sets the sale to dispatched, then records the delivery leg
// @Tags sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param dispatch body dto.DispatchRequest false "Delivery details"
// @Success 200 {object} dto.MutationResponse[domain.SaleSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id}/dispatch [post]
func (h *saleHandler) dispatchSale(c *gin.Context) {
	var req dto.DispatchRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "dispatch")
		return
	}
	h.saleAction(c, domain.SaleActionDispatch, req, func(ctx context.Context, id int64) error {
		return h.saleService.Dispatch(ctx, id, req.ToDomain())
	}, "Sale dispatched")
}

// completeSale godoc
// @Summary Complete a sale
// @Description Amount defaults to selling_price x quantity in the sale currency
// @Tags sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param payment body dto.PaymentRequest false "Payment override"
// @Success 200 {object} dto.MutationResponse[domain.SaleSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id}/complete [post]
func (h *saleHandler) completeSale(c *gin.Context) {
	req, ok := bindPayment(c)
	if !ok {
		return
	}
	h.saleAction(c, domain.SaleActionComplete, req, func(ctx context.Context, id int64) error {
		return h.saleService.Complete(ctx, id, req.ToCompletion())
	}, "Sale completed")
}

// completeFromOrder godoc
// @Summary Complete a sale created from an order
// @Description Rejects a non-positive selling price; a negative now_paid_amount is treated as zero
// @Tags sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param form body dto.CompleteFromOrderRequest true "Completion form"
// @Success 200 {object} dto.MutationResponse[domain.SaleSnapshot]
// @Failure 400 {object} map[string]string "Invalid input, action not available, or rejected by the backend"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id}/complete-from-order [post]
func (h *saleHandler) completeFromOrder(c *gin.Context) {
	var req dto.CompleteFromOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "completion form")
		return
	}
	h.saleAction(c, domain.SaleActionCompleteFromOrder, req, func(ctx context.Context, id int64) error {
		return h.saleService.CompleteFromOrder(ctx, id, req.ToDomain())
	}, "Sale completed")
}

// listReturns godoc
// @Summary Load the returns screen
// @Tags returns
// @Produce json
// @Param brand query string false "Brand contains"
// @Param size query string false "Size contains"
// @Param color query string false "Color contains"
// @Param reason query string false "Reason"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} dto.ScreenResponse[domain.ReturnSnapshot]
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /returns [get]
func (h *saleHandler) listReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReturnFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "return filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Returns, params.ToDomain(), h.returnService.LoadReturns)
}

// createReturn godoc
// @Summary Record a customer return
// @Tags returns
// @Accept json
// @Produce json
// @Param return body dto.CreateReturnRequest true "Return details"
// @Success 201 {object} dto.MutationResponse[domain.ReturnSnapshot]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /returns [post]
func (h *saleHandler) createReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "return")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	ret, err := h.returnService.CreateReturn(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "create_return", Resource: "return", Payload: req}
	var result any
	if ret != nil {
		rec = idRecord("create_return", "return", ret.ID, req)
		result = ret
	}
	finishMutation(c, h.journal, ws.Returns, h.returnService.LoadReturns, rec, err, http.StatusCreated, result)
}

// markRefunded godoc
// @Summary Refund a return
// @Description Amount defaults to the sale total in the sale currency
// @Tags returns
// @Accept json
// @Produce json
// @Param id path int true "Return ID"
// @Param refund body dto.PaymentRequest false "Refund override"
// @Success 200 {object} dto.MutationResponse[domain.ReturnSnapshot]
// @Failure 400 {object} map[string]string "Already refunded or rejected by the backend"
// @Failure 404 {object} map[string]string "Return not found"
// @Security BearerAuth
// @Router /returns/{id}/mark-refunded [post]
func (h *saleHandler) markRefunded(c *gin.Context) {
	req, ok := bindPayment(c)
	if !ok {
		return
	}
	returnID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	err := h.returnService.MarkRefunded(c.Request.Context(), returnID, req.ToRefund())
	rec := idRecord("mark_refunded", "return", returnID, req)
	finishMutation(c, h.journal, ws.Returns, h.returnService.LoadReturns, rec, err, http.StatusOK, "Return refunded")
}
