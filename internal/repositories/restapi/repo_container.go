package restapi

import (
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every upstream-backed repository. The console
// action journal is local and set by the caller.
func NewRepositoryProvider(client *Client) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FinanceRepo:   newRestFinanceRepository(client),
		BalanceRepo:   newRestBalanceRepository(client),
		OrderRepo:     newRestOrderRepository(client),
		SaleRepo:      newRestSaleRepository(client),
		ReturnRepo:    newRestReturnRepository(client),
		PackageRepo:   newRestPackageRepository(client),
		ProductRepo:   newRestProductRepository(client),
		InventoryRepo: newRestInventoryRepository(client),
		CustomerRepo:  newRestCustomerRepository(client),
		WorkerRepo:    newRestWorkerRepository(client),
		ReportingRepo: newRestReportingRepository(client),
	}
}
