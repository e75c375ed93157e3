package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/resale_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/core/screens"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/SscSPs/resale_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	workspaces *screens.Workspaces,
	apiMiddleware ...gin.HandlerFunc,
) error {
	if err := registerValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, services, workspaces, apiMiddleware)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific screen route registrations.
// Extra middleware runs after authentication so it can key on the caller.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, workspaces *screens.Workspaces, extra []gin.HandlerFunc) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware())
	v1.Use(extra...)
	base := newScreenHandler(workspaces, services.ConsoleAction)

	registerFinanceRoutes(v1, base, services.Ledger, services.Balance)
	registerOrderRoutes(v1, base, services.Order)
	registerSaleRoutes(v1, base, services.Sale, services.Return)
	registerPackageRoutes(v1, base, services.Package)
	registerCatalogRoutes(v1, base, services)
	registerReportingRoutes(v1, base, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
