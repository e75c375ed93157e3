package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Ledger        LedgerSvc
	Balance       BalanceSvc
	Order         OrderSvcFacade
	Sale          SaleSvcFacade
	Return        ReturnSvc
	Package       PackageSvc
	Product       ProductSvc
	Inventory     InventorySvc
	Customer      CustomerSvc
	Worker        WorkerSvc
	Reporting     ReportingSvc
	ConsoleAction ConsoleActionSvc
}
