package handlers

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/SscSPs/ads_resale_dashboard/cmd/docs"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/SscSPs/ads_resale_dashboard/internal/platform/config"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

var registerValidatorsOnce sync.Once

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter may be nil, in which case login is not rate limited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	registerValidatorsOnce.Do(registerValidators)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth, loginLimiter)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, service.Auth))

	registerSessionRoutes(v1, service.Auth)
	registerUserRoutes(v1, service.User)
	registerDirectoryRoutes(v1, service.Directory)
	registerBudgetRoutes(v1, service.Budget)
	registerContractRoutes(v1, service.Contract, service.Export)
	registerBillRoutes(v1, service.Bill, service.Export)
	registerReportingRoutes(v1, service.Dashboard, service.Overview)
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

// registerValidators teaches gin's validator the password rule and how to
// compare Money and Rate against numeric bounds such as gte=0.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		slog.Warn("Gin validator engine is not go-playground/validator; custom rules not registered")
		return
	}

	if err := v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return utils.ValidPassword(fl.Field().String())
	}); err != nil {
		slog.Error("Failed to register password validator", slog.String("error", err.Error()))
	}

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch value := field.Interface().(type) {
		case domain.Money:
			return value.Float64()
		case domain.Rate:
			return value.Float64()
		}
		return nil
	}, domain.Money{}, domain.Rate{})
}
