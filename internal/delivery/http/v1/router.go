package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	CompanyUC     domain.CompanyUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	AIUC          domain.AIUsecase
	TokenManager  *auth.Manager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global middlewares. CORS must run before anything that can abort.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authLimiter := middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenManager, deps.AuthUC))
	{
		NewAuthHandler(api, protected, deps.AuthUC, authLimiter)
		NewUserHandler(protected, deps.UserUC)
		NewCompanyHandler(api, protected, deps.CompanyUC)
		NewJobHandler(api, protected, deps.JobUC, deps.ApplicationUC, deps.AIUC)
		NewAIHandler(protected, deps.AIUC)
	}

	return r
}
