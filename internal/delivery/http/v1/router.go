package v1

import (
	"net/http"
	"time"

	"go-studio-backend/config"
	"go-studio-backend/internal/delivery/http/middleware"
	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"
	"go-studio-backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC      domain.ContactUsecase
	Validate       *validator.Validate
	RateLimitStore ratelimit.Store
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Contact form (public, rate limited per client IP)
	contactLimiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.RateLimitContactThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		deps.RateLimitStore,
	))
	NewContactHandler(api, deps.ContactUC, deps.Validate, contactLimiter)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin routes (bearer token required)
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(deps.Config.AdminJWTSecret))
	{
		NewAdminHandler(admin, deps.ContactUC)
	}

	return r
}
