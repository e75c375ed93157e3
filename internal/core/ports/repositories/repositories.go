package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FinanceRepo       FinanceRepositoryFacade
	BalanceRepo       BalanceRepositoryFacade
	OrderRepo         OrderRepositoryFacade
	SaleRepo          SaleRepositoryFacade
	ReturnRepo        ReturnRepositoryFacade
	PackageRepo       PackageRepositoryFacade
	ProductRepo       ProductRepositoryFacade
	InventoryRepo     InventoryRepositoryFacade
	CustomerRepo      CustomerRepositoryFacade
	WorkerRepo        WorkerRepositoryFacade
	ReportingRepo     ReportingRepositoryFacade
	ConsoleActionRepo ConsoleActionRepositoryFacade
}
