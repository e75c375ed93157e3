package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/dto"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/SscSPs/resale_backoffice/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// financeHandler serves the finance and money balance screens.
type financeHandler struct {
	screenHandler
	ledgerService  portssvc.LedgerSvc
	balanceService portssvc.BalanceSvc
}

func newFinanceHandler(base screenHandler, ledger portssvc.LedgerSvc, balance portssvc.BalanceSvc) *financeHandler {
	return &financeHandler{screenHandler: base, ledgerService: ledger, balanceService: balance}
}

// registerFinanceRoutes registers the finance and balance screens.
func registerFinanceRoutes(rg *gin.RouterGroup, base screenHandler, ledger portssvc.LedgerSvc, balance portssvc.BalanceSvc) {
	h := newFinanceHandler(base, ledger, balance)

	finance := rg.Group("/finance")
	{
		finance.GET("", h.getFinance)
		finance.GET("/export", h.exportFinance)
		finance.POST("/expenses", h.createExpense)
	}

	balances := rg.Group("/balances")
	{
		balances.GET("", h.getBalances)
		balances.POST("/ensure", h.ensureBalances)
		balances.POST("/adjust", h.adjustBalance)
	}
}

// getFinance godoc
// @Summary Load the finance screen
// @Description Fetches finance records, receivables and payables and returns them with the per-currency ledger summary
// @Tags finance
// @Produce json
// @Param type query string false "Record type (income, expense)"
// @Param status query string false "Record status"
// @Param expense_type query string false "Expense type"
// @Param currency query string false "Currency (USD, UZS)"
// @Param payment_type query string false "Payment type (cash, card)"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} dto.ScreenResponse[domain.FinanceSnapshot]
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 409 {object} map[string]string "Superseded by a newer refresh"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /finance [get]
func (h *financeHandler) getFinance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FinanceFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "finance filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Finance, params.ToDomain(), h.ledgerService.LoadFinance)
}

// exportFinance godoc
// @Summary Export the finance screen
// @Description Loads the finance screen with the given filter and returns it as an Excel workbook
// @Tags finance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param type query string false "Record type (income, expense)"
// @Param status query string false "Record status"
// @Param currency query string false "Currency (USD, UZS)"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /finance/export [get]
func (h *financeHandler) exportFinance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FinanceFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "finance filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	snap, err := ws.Finance.RefreshWith(c.Request.Context(), params.ToDomain(), h.ledgerService.LoadFinance)
	if err != nil {
		respondError(c, logger, err, "Failed to load finance")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteFinanceWorkbook(&buf, snap); err != nil {
		logger.Error("Failed to build finance workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export finance"})
		return
	}

	filename := fmt.Sprintf("finance-%s.xlsx", time.Now().UTC().Format("20060102"))
	logger.Info("Finance exported", slog.Int("records", len(snap.Records)))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// createExpense godoc
// @Summary Book a manual expense
// @Description Creates a completed expense record and refreshes the finance screen
// @Tags finance
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.MutationResponse[domain.FinanceSnapshot]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /finance/expenses [post]
func (h *financeHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "expense")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	record, err := h.ledgerService.CreateExpense(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "create_expense", Resource: "finance", Payload: req}
	if record != nil {
		rec.ResourceID = fmt.Sprint(record.ID)
	}
	finishMutation(c, h.journal, ws.Finance, h.ledgerService.LoadFinance, rec, err, http.StatusCreated, record)
}

// getBalances godoc
// @Summary Load the money balance screen
// @Description Ensures the four cash balances exist, then returns them with the filtered transactions and per-balance movements
// @Tags balances
// @Produce json
// @Param balance_type query string false "Balance type (usd_cash, uzs_cash, usd_card, uzs_card)"
// @Param transaction_type query string false "Transaction type"
// @Param currency query string false "Currency (USD, UZS)"
// @Param payment_type query string false "Payment type (cash, card)"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} dto.ScreenResponse[domain.BalanceSnapshot]
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /balances [get]
func (h *financeHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.BalanceFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "balance filter")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	serveScreen(c, ws.Balance, params.ToDomain(), h.balanceService.LoadBalances)
}

// ensureBalances godoc
// @Summary Create missing cash balances
// @Description Creates a zero balance for each of the four balance types that has no row yet
// @Tags balances
// @Produce json
// @Success 200 {object} dto.MutationResponse[domain.BalanceSnapshot]
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /balances/ensure [post]
func (h *financeHandler) ensureBalances(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	_, err := h.balanceService.EnsureBalances(c.Request.Context())
	rec := actionRecord{Action: "ensure_balances", Resource: "balance"}
	finishMutation(c, h.journal, ws.Balance, h.balanceService.LoadBalances, rec, err, http.StatusOK, "Balances ensured")
}

// adjustBalance godoc
// @Summary Adjust a cash balance
// @Description Adds to or subtracts from one of the four cash balances and refreshes the balance screen
// @Tags balances
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} dto.MutationResponse[domain.BalanceSnapshot]
// @Failure 400 {object} map[string]string "Invalid input or rejected by the backend"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /balances/adjust [post]
func (h *financeHandler) adjustBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "balance adjustment")
		return
	}
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	err := h.balanceService.Adjust(c.Request.Context(), req.ToDomain())
	rec := actionRecord{Action: "adjust_balance", Resource: "balance", ResourceID: string(req.BalanceType), Payload: req}
	finishMutation(c, h.journal, ws.Balance, h.balanceService.LoadBalances, rec, err, http.StatusOK, "Balance adjusted")
}
