package restapi

import (
	"context"
	"net/url"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

type restFinanceRepository struct {
	client *Client
}

func newRestFinanceRepository(client *Client) portsrepo.FinanceRepositoryFacade {
	return &restFinanceRepository{client: client}
}

var _ portsrepo.FinanceRepositoryFacade = (*restFinanceRepository)(nil)

// ListFinanceRecords forwards every set filter field to GET /finance/.
func (r *restFinanceRepository) ListFinanceRecords(ctx context.Context, filter domain.FinanceFilter) ([]domain.FinanceRecord, error) {
	q := url.Values{}
	setIf(q, "type", string(filter.RecordType))
	setIf(q, "status", string(filter.Status))
	setIf(q, "expense_type", string(filter.ExpenseType))
	setIf(q, "currency", string(filter.Currency))
	setIf(q, "payment_type", string(filter.PaymentType))
	if err := r.client.dateQuery(q, filter.Year, filter.Month); err != nil {
		return nil, err
	}
	return getList[domain.FinanceRecord](ctx, r.client, "/finance/", q, "Error loading finance records")
}

func (r *restFinanceRepository) ListReceivables(ctx context.Context, filter domain.LedgerFilter) ([]domain.Receivable, error) {
	q, err := r.ledgerQuery(filter)
	if err != nil {
		return nil, err
	}
	return getList[domain.Receivable](ctx, r.client, "/receivables/", q, "Error loading receivables")
}

func (r *restFinanceRepository) ListPayables(ctx context.Context, filter domain.LedgerFilter) ([]domain.Payable, error) {
	q, err := r.ledgerQuery(filter)
	if err != nil {
		return nil, err
	}
	return getList[domain.Payable](ctx, r.client, "/payables/", q, "Error loading payables")
}

func (r *restFinanceRepository) ledgerQuery(filter domain.LedgerFilter) (url.Values, error) {
	q := url.Values{}
	setIf(q, "status", string(filter.Status))
	if err := r.client.dateQuery(q, filter.Year, filter.Month); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *restFinanceRepository) CreateExpense(ctx context.Context, req domain.ExpenseRequest) (*domain.FinanceRecord, error) {
	var created domain.FinanceRecord
	if err := r.client.post(ctx, "/finance/", req, &created, "Error creating expense"); err != nil {
		return nil, err
	}
	return &created, nil
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
