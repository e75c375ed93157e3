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

// orderHandler serves the orders screen and its actions.
type orderHandler struct {
	screenHandler
	orderService portssvc.OrderSvcFacade
}

// registerOrderRoutes registers routes related to supplier orders.
func registerOrderRoutes(rg *gin.RouterGroup, base screenHandler, orderService portssvc.OrderSvcFacade) {
	h := &orderHandler{screenHandler: base, orderService: orderService}

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.POST("", h.createOrder)
		orders.POST("/:id/mark-received", h.markReceived)
		orders.POST("/:id/mark-received-and-pay", h.markReceivedAndPay)
		orders.POST("/:id/move-to-inventory", h.moveToInventory)
		orders.POST("/:id/move-to-inventory-and-pay", h.moveToInventoryAndPay)
		orders.POST("/:id/pay-order", h.payOrder)
		orders.POST("/:id/pay-cargo", h.payCargo)
		orders.POST("/:id/sell-product", h.sellProduct)
		orders.POST("/:id/move-to-inventory-from-order", h.moveToInventoryFromOrder)
	}
}

// listOrders godoc
// @Summary Load the orders screen
// @Description Returns the filtered orders, each with the actions currently offered for it
// @Tags orders
// @Produce json
// @Param brand query string false "Brand contains"
// @Param size query string false "Size contains"
// @Param color query string false "Color contains"
// @Param order_type query string false "Order type (stock, on_demand)"
// @Param status query string false "Status (ordered, received, in_inventory)"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} dto.ScreenResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.OrderFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "order filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Orders, params.ToDomain(), h.orderService.LoadOrders)
}

// createOrder godoc
// @Summary Place a supplier order
// @Description Creates a stock or on-demand order and refreshes the orders screen
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "order")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "create_order", Resource: "order", Payload: req}
	var result any
	if order != nil {
		rec = idRecord("create_order", "order", order.ID, req)
		result = order
	}
	finishMutation(c, h.journal, ws.Orders, h.orderService.LoadOrders, rec, err, http.StatusCreated, result)
}

// orderAction runs one transition on the order named in the path and refreshes
// the orders screen.
func (h *orderHandler) orderAction(c *gin.Context, action domain.OrderAction, payload any, run func(ctx context.Context, orderID int64) (any, error)) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	result, err := run(c.Request.Context(), orderID)
	rec := idRecord(string(action), "order", orderID, payload)
	finishMutation(c, h.journal, ws.Orders, h.orderService.LoadOrders, rec, err, http.StatusOK, result)
}

// bindPayment binds an optional payment override body.
func bindPayment(c *gin.Context) (dto.PaymentRequest, bool) {
	var req dto.PaymentRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "payment")
		return req, false
	}
	return req, true
}

// markReceived godoc
// @Summary Mark an order received
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/mark-received [post]
func (h *orderHandler) markReceived(c *gin.Context) {
	h.orderAction(c, domain.ActionMarkReceived, nil, func(ctx context.Context, id int64) (any, error) {
		return "Order marked as received", h.orderService.MarkReceived(ctx, id)
	})
}

// markReceivedAndPay godoc
// @Summary Mark an order received and pay for it
// @Description Payment fields are only sent while the order is unpaid; omitted fields use the order's defaults
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param payment body dto.PaymentRequest false "Payment override"
// @Success 200 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/mark-received-and-pay [post]
func (h *orderHandler) markReceivedAndPay(c *gin.Context) {
	req, ok := bindPayment(c)
	if !ok {
		return
	}
	h.orderAction(c, domain.ActionMarkReceivedAndPay, req, func(ctx context.Context, id int64) (any, error) {
		return "Order marked as received", h.orderService.MarkReceivedAndPay(ctx, id, req.ToOrderPayment())
	})
}

// moveToInventory godoc
// @Summary Move a received stock order to inventory
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/move-to-inventory [post]
func (h *orderHandler) moveToInventory(c *gin.Context) {
	h.orderAction(c, domain.ActionMoveToInventory, nil, func(ctx context.Context, id int64) (any, error) {
		return "Order moved to inventory", h.orderService.MoveToInventory(ctx, id)
	})
}

// moveToInventoryAndPay godoc
// @Summary Move a received stock order to inventory and pay for it
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param payment body dto.PaymentRequest false "Payment override"
// @Success 200 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/move-to-inventory-and-pay [post]
func (h *orderHandler) moveToInventoryAndPay(c *gin.Context) {
	req, ok := bindPayment(c)
	if !ok {
		return
	}
	h.orderAction(c, domain.ActionMoveToInventoryAndPay, req, func(ctx context.Context, id int64) (any, error) {
		return "Order moved to inventory", h.orderService.MoveToInventoryAndPay(ctx, id, req.ToOrderPayment())
	})
}

// payOrder godoc
// @Summary Pay for an order
// @Description Amount defaults to cost_total; currency and type default to the order's stored values
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param payment body dto.PaymentRequest false "Payment override"
// @Success 200 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/pay-order [post]
func (h *orderHandler) payOrder(c *gin.Context) {
	req, ok := bindPayment(c)
	if !ok {
		return
	}
	h.orderAction(c, domain.ActionPayOrder, req, func(ctx context.Context, id int64) (any, error) {
		return "Order paid", h.orderService.PayOrder(ctx, id, req.ToOrderPayment())
	})
}

// payCargo godoc
// @Summary Pay the cargo for an order
// @Description Amount defaults to the UZS cargo cost, then the USD cargo cost
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param payment body dto.PaymentRequest false "Payment override"
// @Success 200 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Action not available, amount missing, or rejected by the backend"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/pay-cargo [post]
func (h *orderHandler) payCargo(c *gin.Context) {
	req, ok := bindPayment(c)
	if !ok {
		return
	}
	h.orderAction(c, domain.ActionPayCargo, req, func(ctx context.Context, id int64) (any, error) {
		return "Cargo paid", h.orderService.PayCargo(ctx, id, req.ToOrderPayment())
	})
}

// sellProduct godoc
// @Summary Sell an on-demand order to its customer
// @Description Creates the from_order sale; the response message is the backend's
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/sell-product [post]
func (h *orderHandler) sellProduct(c *gin.Context) {
	h.orderAction(c, domain.ActionSellProduct, nil, func(ctx context.Context, id int64) (any, error) {
		msg, err := h.orderService.SellProduct(ctx, id)
		return msg, err
	})
}

// moveToInventoryFromOrder godoc
// @Summary Shelve an on-demand order instead of selling it
// @Description Optionally returns the customer's advance; without an advance on the order nothing is returned
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param choice body dto.MoveToInventoryFromOrderRequest false "Advance handling"
// @Success 200 {object} dto.MutationResponse[domain.OrderSnapshot]
// @Failure 400 {object} map[string]string "Action not available or rejected by the backend"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/move-to-inventory-from-order [post]
func (h *orderHandler) moveToInventoryFromOrder(c *gin.Context) {
	var req dto.MoveToInventoryFromOrderRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "move to inventory choice")
		return
	}
	h.orderAction(c, domain.ActionMoveToInventoryFromOrder, req, func(ctx context.Context, id int64) (any, error) {
		return "Order moved to inventory", h.orderService.MoveToInventoryFromOrder(ctx, id, req.ToDomain())
	})
}
