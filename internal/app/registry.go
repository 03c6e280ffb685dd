package app

import (
	"database/sql"
	"net/http"

	"go-workforce/internal/config"
	"go-workforce/internal/customer"
	"go-workforce/internal/employee"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/middleware"
	"go-workforce/internal/project"
	"go-workforce/internal/rbac"
	"go-workforce/internal/role"
	"go-workforce/internal/shared/response"
	"go-workforce/internal/technology"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	roleRepo := role.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	technologyRepo := technology.NewRepository(gormDB)
	customerRepo := customer.NewRepository(gormDB)

	// --- RBAC Core ---
	var rbacService rbac.Service
	if cfg.Auth.JWTSecret != "" {
		enforcer, err := rbac.NewEnforcer(cfg.Auth.ModelPath, cfg.Auth.PolicyPath)
		if err != nil {
			return err
		}
		rbacService = rbac.NewService(enforcer, logger)
	}

	guard := middleware.NewGuard(middleware.GuardConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		RBAC:      rbacService,
		RateLimit: cfg.App.RateLimit,
		RateBurst: cfg.App.RateBurst,
		Redis:     rdb,
	})

	// --- Services ---
	roleService := role.NewService(db, roleRepo, rdb, logger)
	var employeeService employee.Service
	if cfg.Kafka.Broker != "" {
		employeeService = employee.NewServiceWithOutbox(db, employeeRepo, kafka.NewOutboxRepository(db), rdb, logger)
	} else {
		employeeService = employee.NewService(db, employeeRepo, rdb, logger)
	}
	projectService := project.NewService(db, projectRepo, logger)
	technologyService := technology.NewService(db, technologyRepo, rdb, logger)
	customerService := customer.NewService(db, customerRepo, logger)

	// --- Handlers ---
	roleHandler := role.NewHandler(roleService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	technologyHandler := technology.NewHandler(technologyService, logger)
	customerHandler := customer.NewHandler(customerService, logger)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	api := router.Group("/api/v1")
	{
		role.RegisterRoutes(api, roleHandler, guard)
		employee.RegisterRoutes(api, employeeHandler, guard)
		project.RegisterRoutes(api, projectHandler, guard)
		technology.RegisterRoutes(api, technologyHandler, guard)
		customer.RegisterRoutes(api, customerHandler, guard)
	}

	return nil
}
