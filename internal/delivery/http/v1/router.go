package v1

import (
	"net/http"
	"time"

	"go-edc-backend/config"
	"go-edc-backend/internal/delivery/http/middleware"
	"go-edc-backend/internal/domain"
	"go-edc-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Validator *validation.ContactValidator
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Contact form (no auth required, rate limited per IP)
	limiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.ContactRateLimit,
		time.Duration(deps.Config.ContactRateWindowSeconds)*time.Second,
	))
	NewContactHandler(api, deps.ContactUC, deps.Validator, limiter)

	return r
}
