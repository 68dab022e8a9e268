package app

import (
	"database/sql"
	"net/http"

	"go-hrm/internal/admin"
	"go-hrm/internal/audit"
	"go-hrm/internal/auth"
	"go-hrm/internal/config"
	"go-hrm/internal/department"
	"go-hrm/internal/middleware"
	"go-hrm/internal/position"
	"go-hrm/internal/rbac"
	"go-hrm/internal/rbac/infra"
	"go-hrm/internal/shared/response"
	"go-hrm/internal/statistics"
	"go-hrm/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Deps are the infrastructure handles the feature modules are built on.
type Deps struct {
	Config *config.Config
	DB     *sql.DB
	GormDB *gorm.DB
	Redis  redis.Cmdable
	Audit  audit.Logger
}

func registerModules(router *gin.Engine, deps Deps) error {
	cfg := deps.Config

	// --- Observability ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := middleware.NewHTTPMetrics(reg)

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
		middleware.Metrics(httpMetrics),
	)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)
	if err := rbacService.LoadPolicies(rbac.DefaultPolicies()); err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(deps.GormDB)
	departmentRepo := department.NewRepository(deps.GormDB)
	positionRepo := position.NewRepository(deps.GormDB)
	statisticsRepo := statistics.NewRepository(deps.GormDB)
	userRepo := user.NewRepository(deps.GormDB)

	// --- Services ---
	sessions := auth.NewSessionStore(deps.Redis)
	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	authService := auth.NewService(authRepo, sessions, tokens, deps.Audit)
	adminService := admin.NewService(deps.DB, authRepo, sessions, deps.Audit)
	departmentService := department.NewService(deps.DB, departmentRepo)
	positionService := position.NewService(deps.DB, positionRepo)
	statisticsService := statistics.NewService(statisticsRepo)
	userService := user.NewService(deps.DB, userRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	adminHandler := admin.NewHandler(adminService)
	departmentHandler := department.NewHandler(departmentService)
	positionHandler := position.NewHandler(positionService)
	statisticsHandler := statistics.NewHandler(statisticsService)
	userHandler := user.NewHandler(userService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Middleware ---
	accountLimiter := middleware.NewKeyedRateLimiter(
		rate.Limit(cfg.RateLimit.AccountPerSecond),
		cfg.RateLimit.AccountBurst,
	)
	authMiddleware := middleware.AuthMiddleware(authService, accountLimiter)
	loginLimiter := middleware.RateLimitByIP(
		rate.Limit(cfg.RateLimit.LoginPerSecond),
		cfg.RateLimit.LoginBurst,
	)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware, rbacService, loginLimiter)
		admin.RegisterRoutes(api, adminHandler, authMiddleware, rbacService)
		department.RegisterRoutes(api, departmentHandler, authMiddleware, rbacService)
		position.RegisterRoutes(api, positionHandler, authMiddleware, rbacService)
		statistics.RegisterRoutes(api, statisticsHandler, authMiddleware, rbacService)
		user.RegisterRoutes(api, userHandler, authMiddleware, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
	}

	return nil
}
