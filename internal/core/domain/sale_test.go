package domain_test

import (
	"testing"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSale_AvailableActions(t *testing.T) {
	tests := []struct {
		name   string
		status domain.SaleStatus
		typ    domain.SaleType
		want   []domain.SaleAction
	}{
		{"pending shop sale", domain.SalePending, domain.SaleBoughtFromShop, []domain.SaleAction{domain.SaleActionConfirm}},
		{"pending delivery", domain.SalePending, domain.SaleDelivery, []domain.SaleAction{domain.SaleActionConfirm}},
		{"pending from order", domain.SalePending, domain.SaleFromOrder, []domain.SaleAction{domain.SaleActionCompleteFromOrder}},
		{"confirmed delivery", domain.SaleConfirmed, domain.SaleDelivery, []domain.SaleAction{domain.SaleActionDispatch}},
		{"confirmed shop sale", domain.SaleConfirmed, domain.SaleBoughtFromShop, []domain.SaleAction{domain.SaleActionComplete}},
		{"confirmed from order", domain.SaleConfirmed, domain.SaleFromOrder, nil},
		{"dispatched", domain.SaleDispatched, domain.SaleDelivery, []domain.SaleAction{domain.SaleActionComplete}},
		{"completed", domain.SaleCompleted, domain.SaleDelivery, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.Sale{Status: tt.status, SaleType: tt.typ}
			assert.Equal(t, tt.want, s.AvailableActions())
		})
	}
}

func TestSale_CustomerRefFallsBackToOrder(t *testing.T) {
	orderCustomer := int64(7)
	s := domain.Sale{OrderDetail: &domain.SaleOrder{ID: 3, Customer: &orderCustomer}}
	assert.Equal(t, &orderCustomer, s.CustomerRef())

	own := int64(9)
	s.Customer = &own
	assert.Equal(t, &own, s.CustomerRef())
}
