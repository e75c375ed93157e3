package handlers

import (
	"net/http"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/dto"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler serves the product, inventory, customer and worker screens.
type catalogHandler struct {
	screenHandler
	productService   portssvc.ProductSvc
	inventoryService portssvc.InventorySvc
	customerService  portssvc.CustomerSvc
	workerService    portssvc.WorkerSvc
}

// registerCatalogRoutes registers the catalog screens.
func registerCatalogRoutes(rg *gin.RouterGroup, base screenHandler, services *portssvc.ServiceContainer) {
	h := &catalogHandler{
		screenHandler:    base,
		productService:   services.Product,
		inventoryService: services.Inventory,
		customerService:  services.Customer,
		workerService:    services.Worker,
	}

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}

	inventory := rg.Group("/inventory")
	{
		inventory.GET("", h.listInventory)
		inventory.POST("", h.addInventory)
	}

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
		customers.GET("/:id/history", h.getCustomerHistory)
	}

	workers := rg.Group("/workers")
	{
		workers.GET("", h.listWorkers)
		workers.POST("", h.createWorker)
		workers.PUT("/:id", h.updateWorker)
		workers.DELETE("/:id", h.deleteWorker)
		workers.GET("/:id/performance", h.getWorkerPerformance)
		workers.GET("/:id/transactions", h.getWorkerTransactions)
	}
}

// listProducts godoc
// @Summary Load the products screen
// @Tags products
// @Produce json
// @Param brand query string false "Brand contains"
// @Param model query string false "Model contains"
// @Param size query string false "Size contains"
// @Param color query string false "Color contains"
// @Param supplier_country query string false "Supplier country"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} dto.ScreenResponse[[]domain.Product]
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ProductFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "product filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Products, params.ToDomain(), h.productService.LoadProducts)
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Product details"
// @Success 201 {object} dto.MutationResponse[[]domain.Product]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Security BearerAuth
// @Router /products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "product")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "create_product", Resource: "product", Payload: req}
	var result any
	if product != nil {
		rec = idRecord("create_product", "product", product.ID, req)
		result = product
	}
	finishMutation(c, h.journal, ws.Products, h.productService.LoadProducts, rec, err, http.StatusCreated, result)
}

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body dto.ProductRequest true "Product details"
// @Success 200 {object} dto.MutationResponse[[]domain.Product]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *catalogHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "product")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, req.ToDomain())
	var result any
	if product != nil {
		result = product
	}
	rec := idRecord("update_product", "product", productID, req)
	finishMutation(c, h.journal, ws.Products, h.productService.LoadProducts, rec, err, http.StatusOK, result)
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.MutationResponse[[]domain.Product]
// @Failure 400 {object} map[string]string "Rejected by the backend"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *catalogHandler) deleteProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	err := h.productService.DeleteProduct(c.Request.Context(), productID)
	rec := idRecord("delete_product", "product", productID, nil)
	finishMutation(c, h.journal, ws.Products, h.productService.LoadProducts, rec, err, http.StatusOK, "Product deleted")
}

// listInventory godoc
// @Summary Load the inventory screen
// @Tags inventory
// @Produce json
// @Param brand query string false "Brand contains"
// @Param size query string false "Size contains"
// @Param color query string false "Color contains"
// @Param status query string false "Status"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} dto.ScreenResponse[[]domain.InventoryItem]
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /inventory [get]
func (h *catalogHandler) listInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.InventoryFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "inventory filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Inventory, params.ToDomain(), h.inventoryService.LoadInventory)
}

// addInventory godoc
// @Summary Add an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.InventoryRequest true "Inventory item"
// @Success 201 {object} dto.MutationResponse[[]domain.InventoryItem]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Security BearerAuth
// @Router /inventory [post]
func (h *catalogHandler) addInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "inventory item")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.AddInventory(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "add_inventory", Resource: "inventory_item", Payload: req}
	var result any
	if item != nil {
		rec = idRecord("add_inventory", "inventory_item", item.ID, req)
		result = item
	}
	finishMutation(c, h.journal, ws.Inventory, h.inventoryService.LoadInventory, rec, err, http.StatusCreated, result)
}

// listCustomers godoc
// @Summary Load the customers screen
// @Tags customers
// @Produce json
// @Param name query string false "Name contains"
// @Success 200 {object} dto.ScreenResponse[[]domain.Customer]
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /customers [get]
func (h *catalogHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CustomerFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "customer filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Customers, params.ToDomain(), h.customerService.LoadCustomers)
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CustomerRequest true "Customer details"
// @Success 201 {object} dto.MutationResponse[[]domain.Customer]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Security BearerAuth
// @Router /customers [post]
func (h *catalogHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "customer")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "create_customer", Resource: "customer", Payload: req}
	var result any
	if customer != nil {
		rec = idRecord("create_customer", "customer", customer.ID, req)
		result = customer
	}
	finishMutation(c, h.journal, ws.Customers, h.customerService.LoadCustomers, rec, err, http.StatusCreated, result)
}

// updateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param customer body dto.CustomerRequest true "Customer details"
// @Success 200 {object} dto.MutationResponse[[]domain.Customer]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *catalogHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "customer")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), customerID, req.ToDomain())
	var result any
	if customer != nil {
		result = customer
	}
	rec := idRecord("update_customer", "customer", customerID, req)
	finishMutation(c, h.journal, ws.Customers, h.customerService.LoadCustomers, rec, err, http.StatusOK, result)
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.MutationResponse[[]domain.Customer]
// @Failure 400 {object} map[string]string "Rejected by the backend"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *catalogHandler) deleteCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	err := h.customerService.DeleteCustomer(c.Request.Context(), customerID)
	rec := idRecord("delete_customer", "customer", customerID, nil)
	finishMutation(c, h.journal, ws.Customers, h.customerService.LoadCustomers, rec, err, http.StatusOK, "Customer deleted")
}

// getCustomerHistory godoc
// @Summary Get a customer's purchase and payment history
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} domain.CustomerHistory
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id}/history [get]
func (h *catalogHandler) getCustomerHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	history, err := h.customerService.GetCustomerHistory(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve customer history")
		return
	}
	c.JSON(http.StatusOK, history)
}

// listWorkers godoc
// @Summary Load the workers screen
// @Tags workers
// @Produce json
// @Success 200 {object} dto.ScreenResponse[[]domain.Worker]
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /workers [get]
func (h *catalogHandler) listWorkers(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Workers, struct{}{}, h.workerService.LoadWorkers)
}

// createWorker godoc
// @Summary Create a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.WorkerRequest true "Worker details"
// @Success 201 {object} dto.MutationResponse[[]domain.Worker]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Security BearerAuth
// @Router /workers [post]
func (h *catalogHandler) createWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "worker")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "create_worker", Resource: "worker", Payload: req}
	var result any
	if worker != nil {
		rec = idRecord("create_worker", "worker", worker.ID, req)
		result = worker
	}
	finishMutation(c, h.journal, ws.Workers, h.workerService.LoadWorkers, rec, err, http.StatusCreated, result)
}

// updateWorker godoc
// @Summary Update a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param id path int true "Worker ID"
// @Param worker body dto.WorkerRequest true "Worker details"
// @Success 200 {object} dto.MutationResponse[[]domain.Worker]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 404 {object} map[string]string "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [put]
func (h *catalogHandler) updateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "worker")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), workerID, req.ToDomain())
	var result any
	if worker != nil {
		result = worker
	}
	rec := idRecord("update_worker", "worker", workerID, req)
	finishMutation(c, h.journal, ws.Workers, h.workerService.LoadWorkers, rec, err, http.StatusOK, result)
}

// deleteWorker godoc
// @Summary Delete a worker
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} dto.MutationResponse[[]domain.Worker]
// @Failure 404 {object} map[string]string "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [delete]
func (h *catalogHandler) deleteWorker(c *gin.Context) {
	workerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	err := h.workerService.DeleteWorker(c.Request.Context(), workerID)
	rec := idRecord("delete_worker", "worker", workerID, nil)
	finishMutation(c, h.journal, ws.Workers, h.workerService.LoadWorkers, rec, err, http.StatusOK, "Worker deleted")
}

// getWorkerPerformance godoc
// @Summary Get a worker's monthly performance
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Year and month are required"
// @Failure 404 {object} map[string]string "Worker not found"
// @Security BearerAuth
// @Router /workers/{id}/performance [get]
func (h *catalogHandler) getWorkerPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var params dto.WorkerPerformanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "performance period")
		return
	}
	perf, err := h.workerService.GetWorkerPerformance(c.Request.Context(), workerID, params.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve worker performance")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", rawOrNull(perf))
}

// getWorkerTransactions godoc
// @Summary List the finance records paid to a worker
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Worker not found"
// @Security BearerAuth
// @Router /workers/{id}/transactions [get]
func (h *catalogHandler) getWorkerTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	txs, err := h.workerService.GetWorkerTransactions(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve worker transactions")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", rawOrNull(txs))
}

func rawOrNull(raw domain.WorkerTransactions) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
