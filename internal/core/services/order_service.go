package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/utils/filtering"
	"github.com/shopspring/decimal"
)

type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
}

// NewOrderService creates the orders screen service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// LoadOrders lists the orders, applies filter in memory and attaches the
// actions currently offered for each row.
func (s *orderService) LoadOrders(ctx context.Context, filter domain.OrderFilter) (domain.OrderSnapshot, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return domain.OrderSnapshot{}, fmt.Errorf("failed to list orders: %w", err)
	}

	filtered := filtering.Orders(orders, filter)
	rows := make([]domain.OrderRow, 0, len(filtered))
	for _, o := range filtered {
		actions := o.AvailableActions()
		if actions == nil {
			actions = []domain.OrderAction{}
		}
		rows = append(rows, domain.OrderRow{Order: o, Actions: actions})
	}
	return domain.OrderSnapshot{Orders: rows, Total: len(rows)}, nil
}

func (s *orderService) CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	if in.OrderType == "" {
		in.OrderType = domain.OrderStock
	}
	if !in.OrderType.Valid() {
		return nil, apperrors.NewValidationError("unknown order type %q", in.OrderType)
	}
	if in.Product <= 0 {
		return nil, apperrors.NewValidationError("product is required")
	}
	if in.OrderedQuantity <= 0 {
		return nil, apperrors.NewValidationError("ordered quantity must be greater than zero")
	}
	if in.OrderType == domain.OrderOnDemand && in.Customer == nil {
		return nil, apperrors.NewValidationError("customer is required for on-demand orders")
	}

	costTotal := in.CostPerUnit.Mul(decimal.NewFromInt(int64(in.OrderedQuantity)))
	if in.CostTotal != nil {
		costTotal = *in.CostTotal
	}
	if !costTotal.IsPositive() {
		return nil, apperrors.NewValidationError("cost total must be greater than zero")
	}

	req := domain.OrderCreateRequest{
		OrderType:              in.OrderType,
		Product:                in.Product,
		SupplierCountry:        orDefault(in.SupplierCountry, domain.SupplierGermany),
		OrderedQuantity:        in.OrderedQuantity,
		CostPerUnit:            domain.NewAmount(in.CostPerUnit),
		CostTotal:              domain.NewAmount(costTotal),
		OrderIsPaid:            in.OrderIsPaid,
		OrderPaymentCurrency:   orDefault(in.OrderPaymentCurrency, domain.USD),
		OrderPaymentType:       orDefault(in.OrderPaymentType, domain.Card),
		CargoIsPaid:            in.CargoIsPaid,
		CargoCurrency:          orDefault(in.CargoCurrency, domain.UZS),
		CargoPaymentType:       orDefault(in.CargoPaymentType, domain.Cash),
		CargoUnknown:           in.CargoUnknown,
		Customer:               in.Customer,
		AdvancePaymentCurrency: orDefault(in.AdvancePaymentCurrency, domain.USD),
		AdvancePaymentType:     orDefault(in.AdvancePaymentType, domain.Cash),
		Status:                 domain.OrderOrdered,
	}
	if in.CargoAmount != nil && !in.CargoUnknown {
		amount := domain.NewAmount(*in.CargoAmount)
		req.CargoAmount = &amount
	}
	if in.AdvancePaymentAmount != nil {
		amount := domain.NewAmount(*in.AdvancePaymentAmount)
		req.AdvancePaymentAmount = &amount
	}

	created, err := s.orderRepo.CreateOrder(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to create order", slog.Int64("product_id", in.Product))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.LogInfo(ctx, "Order created", slog.Int64("order_id", created.ID), slog.String("order_type", string(created.OrderType)))
	return created, nil
}

func (s *orderService) MarkReceived(ctx context.Context, orderID int64) error {
	if _, err := s.orderFor(ctx, orderID, domain.ActionMarkReceived); err != nil {
		return err
	}
	return s.updateStatus(ctx, orderID, domain.OrderStatusUpdate{Status: domain.OrderReceived})
}

func (s *orderService) MarkReceivedAndPay(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error {
	order, err := s.orderFor(ctx, orderID, domain.ActionMarkReceivedAndPay)
	if err != nil {
		return err
	}
	update, err := statusWithPayment(*order, domain.OrderReceived, payment)
	if err != nil {
		return err
	}
	return s.updateStatus(ctx, orderID, update)
}

func (s *orderService) MoveToInventory(ctx context.Context, orderID int64) error {
	if _, err := s.orderFor(ctx, orderID, domain.ActionMoveToInventory); err != nil {
		return err
	}
	return s.updateStatus(ctx, orderID, domain.OrderStatusUpdate{Status: domain.OrderInInventory})
}

func (s *orderService) MoveToInventoryAndPay(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error {
	order, err := s.orderFor(ctx, orderID, domain.ActionMoveToInventoryAndPay)
	if err != nil {
		return err
	}
	update, err := statusWithPayment(*order, domain.OrderInInventory, payment)
	if err != nil {
		return err
	}
	return s.updateStatus(ctx, orderID, update)
}

func (s *orderService) PayOrder(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error {
	order, err := s.orderFor(ctx, orderID, domain.ActionPayOrder)
	if err != nil {
		return err
	}
	p, err := orderPayment(*order, payment)
	if err != nil {
		return err
	}

	err = s.orderRepo.PayOrder(ctx, orderID, domain.OrderPaymentRequest{
		OrderPaymentAmount:   domain.NewAmount(p.Amount),
		OrderPaymentCurrency: p.Currency,
		OrderPaymentType:     p.PaymentType,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to pay order", slog.Int64("order_id", orderID))
		return fmt.Errorf("failed to pay order %d: %w", orderID, err)
	}
	s.LogInfo(ctx, "Order paid", slog.Int64("order_id", orderID), slog.String("amount", p.Amount.String()))
	return nil
}

func (s *orderService) PayCargo(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error {
	order, err := s.orderFor(ctx, orderID, domain.ActionPayCargo)
	if err != nil {
		return err
	}
	p, err := cargoPayment(*order, payment)
	if err != nil {
		return err
	}

	err = s.orderRepo.PayCargo(ctx, orderID, domain.CargoPaymentRequest{
		CargoAmount:      domain.NewAmount(p.Amount),
		CargoCurrency:    p.Currency,
		CargoPaymentType: p.PaymentType,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to pay cargo", slog.Int64("order_id", orderID))
		return fmt.Errorf("failed to pay cargo for order %d: %w", orderID, err)
	}
	s.LogInfo(ctx, "Cargo paid", slog.Int64("order_id", orderID), slog.String("amount", p.Amount.String()))
	return nil
}

// SellProduct turns a received on-demand order into a sale and returns the backend's message.
func (s *orderService) SellProduct(ctx context.Context, orderID int64) (string, error) {
	if _, err := s.orderFor(ctx, orderID, domain.ActionSellProduct); err != nil {
		return "", err
	}
	msg, err := s.orderRepo.SellProduct(ctx, orderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sell product from order", slog.Int64("order_id", orderID))
		return "", fmt.Errorf("failed to sell product from order %d: %w", orderID, err)
	}
	s.LogInfo(ctx, "Product sold from order", slog.Int64("order_id", orderID))
	return msg, nil
}

// MoveToInventoryFromOrder shelves an on-demand order. The advance can only be
// returned when the order actually carries one.
func (s *orderService) MoveToInventoryFromOrder(ctx context.Context, orderID int64, in domain.MoveToInventoryInput) error {
	order, err := s.orderFor(ctx, orderID, domain.ActionMoveToInventoryFromOrder)
	if err != nil {
		return err
	}

	req := domain.MoveFromOrderRequest{}
	if in.ReturnAdvance && order.HasAdvance() {
		req.ReturnAdvance = true
		req.ReturnPaymentType = orDefault(in.ReturnPaymentType, domain.Cash)
		if !req.ReturnPaymentType.Valid() {
			return apperrors.NewValidationError("unknown payment type %q", in.ReturnPaymentType)
		}
	}

	if err := s.orderRepo.MoveToInventoryFromOrder(ctx, orderID, req); err != nil {
		s.LogError(ctx, err, "Failed to move order to inventory", slog.Int64("order_id", orderID))
		return fmt.Errorf("failed to move order %d to inventory: %w", orderID, err)
	}
	s.LogInfo(ctx, "Order moved to inventory", slog.Int64("order_id", orderID), slog.Bool("return_advance", req.ReturnAdvance))
	return nil
}

// orderFor fetches the order and checks that action is currently offered for it.
func (s *orderService) orderFor(ctx context.Context, orderID int64, action domain.OrderAction) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order %d: %w", orderID, err)
	}
	if !order.Allows(action) {
		s.LogWarn(ctx, "Rejected unavailable order action",
			slog.Int64("order_id", orderID),
			slog.String("action", string(action)),
			slog.String("status", string(order.Status)))
		return nil, apperrors.NewUnavailableActionError(string(action), "order", orderID)
	}
	return order, nil
}

func (s *orderService) updateStatus(ctx context.Context, orderID int64, update domain.OrderStatusUpdate) error {
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, update); err != nil {
		s.LogError(ctx, err, "Failed to update order status",
			slog.Int64("order_id", orderID),
			slog.String("status", string(update.Status)))
		return fmt.Errorf("failed to update order %d status: %w", orderID, err)
	}
	s.LogInfo(ctx, "Order status updated",
		slog.Int64("order_id", orderID),
		slog.String("status", string(update.Status)),
		slog.Bool("with_payment", update.OrderIsPaid != nil))
	return nil
}

// statusWithPayment builds the combined status-and-pay body. Payment fields are
// only attached while the order is still unpaid.
func statusWithPayment(order domain.Order, status domain.OrderStatus, in domain.OrderPaymentInput) (domain.OrderStatusUpdate, error) {
	update := domain.OrderStatusUpdate{Status: status}
	if order.OrderIsPaid {
		return update, nil
	}
	p, err := orderPayment(order, in)
	if err != nil {
		return domain.OrderStatusUpdate{}, err
	}
	amount := domain.NewAmount(p.Amount)
	paid := true
	update.OrderPaymentAmount = &amount
	update.OrderPaymentCurrency = p.Currency
	update.OrderPaymentType = p.PaymentType
	update.OrderIsPaid = &paid
	return update, nil
}

// orderPayment fills the order payment defaults: cost_total, then the order's
// stored currency and type, falling back to USD and card.
func orderPayment(order domain.Order, in domain.OrderPaymentInput) (domain.Payment, error) {
	p := domain.Payment{
		Amount:      order.CostTotal.OrZero(),
		Currency:    firstValid(in.Currency, order.OrderPaymentCurrency, domain.USD),
		PaymentType: firstValid(in.PaymentType, order.OrderPaymentType, domain.Card),
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if !p.Amount.IsPositive() {
		return domain.Payment{}, apperrors.NewValidationError("payment amount must be greater than zero")
	}
	return p, nil
}

// cargoPayment fills the cargo payment defaults. The amount falls back to the
// UZS cargo cost, then the USD one; a cargo with no known cost needs an amount.
func cargoPayment(order domain.Order, in domain.OrderPaymentInput) (domain.Payment, error) {
	p := domain.Payment{PaymentType: firstValid(in.PaymentType, domain.Cash)}
	defaultCurrency := domain.UZS
	switch {
	case in.Amount != nil:
		p.Amount = *in.Amount
	case order.CargoCostUZS.Positive():
		p.Amount = order.CargoCostUZS.OrZero()
	case order.CargoCostUSD.Positive():
		p.Amount = order.CargoCostUSD.OrZero()
		defaultCurrency = domain.USD
	default:
		return domain.Payment{}, apperrors.NewValidationError("cargo amount is required")
	}
	if !p.Amount.IsPositive() {
		return domain.Payment{}, apperrors.NewValidationError("cargo amount must be greater than zero")
	}
	p.Currency = firstValid(in.Currency, order.CargoPaymentCurrency, defaultCurrency)
	return p, nil
}

// orDefault returns v unless it is the zero value.
func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// firstValid returns the first candidate whose Valid method reports true, or the last one.
func firstValid[T interface{ Valid() bool }](candidates ...T) T {
	for _, c := range candidates {
		if c.Valid() {
			return c
		}
	}
	return candidates[len(candidates)-1]
}
