package services

import (
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.FinanceRepo)
	container.Balance = NewBalanceService(repos.BalanceRepo)
	container.Order = NewOrderService(repos.OrderRepo)

	// Sales check stock against the inventory before creating anything
	container.Sale = NewSaleService(repos.SaleRepo, repos.InventoryRepo)
	container.Return = NewReturnService(repos.ReturnRepo)
	container.Package = NewPackageService(repos.PackageRepo)

	container.Product = NewProductService(repos.ProductRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Worker = NewWorkerService(repos.WorkerRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	// The journal stays disabled unless a database is configured and its repo was built
	var journal portsrepo.ConsoleActionRepositoryFacade
	if cfg != nil && cfg.JournalEnabled() && repos.ConsoleActionRepo != nil {
		journal = repos.ConsoleActionRepo
	}
	container.ConsoleAction = NewConsoleActionService(journal)

	return container
}
