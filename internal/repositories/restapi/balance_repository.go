package restapi

import (
	"context"
	"net/url"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

type restBalanceRepository struct {
	client *Client
}

func newRestBalanceRepository(client *Client) portsrepo.BalanceRepositoryFacade {
	return &restBalanceRepository{client: client}
}

var _ portsrepo.BalanceRepositoryFacade = (*restBalanceRepository)(nil)

func (r *restBalanceRepository) ListCashBalances(ctx context.Context) ([]domain.CashBalance, error) {
	return getList[domain.CashBalance](ctx, r.client, "/cash-balance/", nil, "Error loading balances")
}

// ListBalanceTransactions sends balance_type once: an explicit type, otherwise
// the cash balance of the selected currency. payment_type has no backend filter.
func (r *restBalanceRepository) ListBalanceTransactions(ctx context.Context, filter domain.BalanceTransactionFilter) ([]domain.BalanceTransaction, error) {
	q := url.Values{}
	setIf(q, "balance_type", string(filter.EffectiveBalanceType()))
	setIf(q, "transaction_type", string(filter.TransactionType))
	if err := r.client.dateQuery(q, filter.Year, filter.Month); err != nil {
		return nil, err
	}
	return getList[domain.BalanceTransaction](ctx, r.client, "/balance-transactions/", q, "Error loading transactions")
}

func (r *restBalanceRepository) CreateCashBalance(ctx context.Context, req domain.CashBalanceCreate) (*domain.CashBalance, error) {
	var created domain.CashBalance
	if err := r.client.post(ctx, "/cash-balance/", req, &created, "Error creating balance"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restBalanceRepository) AdjustCashBalance(ctx context.Context, balanceID int64, req domain.AdjustRequest) error {
	return r.client.post(ctx, itemPath("cash-balance", balanceID, "adjust"), req, nil, "Error adjusting balance")
}
