package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/taskhive/backoffice/docs"
	"github.com/taskhive/backoffice/internal/api/handler"
	"github.com/taskhive/backoffice/internal/api/middleware"
	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/service"
	"github.com/taskhive/backoffice/internal/infrastructure/config"
	"github.com/taskhive/backoffice/internal/infrastructure/db/postgres"
	redisstore "github.com/taskhive/backoffice/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	milestoneRepo := postgres.NewMilestoneRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	recoveryStore := redisstore.NewRecoveryTokenStore(rdb)

	authService := service.NewAuthService(accountRepo, recoveryStore, cfg.JWTSecret, cfg.TokenTTL, log)
	accountService := service.NewAccountService(accountRepo, recoveryStore, cfg.AppBaseURL, log)
	customerService := service.NewCustomerService(customerRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	memberService := service.NewMemberService(memberRepo, log)
	milestoneService := service.NewMilestoneService(milestoneRepo, log)
	taskService := service.NewTaskService(taskRepo, milestoneRepo, log)
	reportService := service.NewReportService(reportRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	customerHandler := handler.NewCustomerHandler(customerService)
	projectHandler := handler.NewProjectHandler(projectService)
	memberHandler := handler.NewMemberHandler(memberService)
	milestoneHandler := handler.NewMilestoneHandler(milestoneService)
	taskHandler := handler.NewTaskHandler(taskService)
	reportHandler := handler.NewReportHandler(reportService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/password-reset", authHandler.ResetPassword)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Admin-gated API ---
	v1 := e.Group("/v1",
		middleware.Auth(cfg.JWTSecret),
		middleware.RBAC(domain.RoleAdmin),
	)

	v1.GET("/accounts", accountHandler.List)
	v1.POST("/accounts", accountHandler.Create)
	v1.GET("/accounts/:id", accountHandler.Get)
	v1.PATCH("/accounts/:id", accountHandler.Update)
	v1.DELETE("/accounts/:id", accountHandler.Delete)

	v1.GET("/customers", customerHandler.List)
	v1.POST("/customers", customerHandler.Create)
	v1.GET("/customers/:id", customerHandler.Get)
	v1.PATCH("/customers/:id", customerHandler.Update)
	v1.DELETE("/customers/:id", customerHandler.Delete)

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PATCH("/projects/:id", projectHandler.Update)
	v1.DELETE("/projects/:id", projectHandler.Delete)

	v1.POST("/projects/:id/members", memberHandler.Add)
	v1.GET("/projects/:id/members", memberHandler.ListForProject)
	v1.POST("/projects/:id/members/remove", memberHandler.Remove)
	v1.GET("/members", memberHandler.ListEmployees)

	v1.GET("/milestones", milestoneHandler.List)
	v1.POST("/milestones", milestoneHandler.Create)
	v1.PATCH("/milestones/:id", milestoneHandler.Update)
	v1.DELETE("/milestones/:id", milestoneHandler.Delete)

	// The static segment must be registered before the parameterised one so
	// "reorder" never parses as a task id.
	v1.PATCH("/tasks/reorder", taskHandler.Reorder)
	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create)
	v1.PATCH("/tasks/:id", taskHandler.Update)
	v1.DELETE("/tasks/:id", taskHandler.Delete)

	v1.GET("/reports/milestones/progress", reportHandler.MilestoneProgress)
	v1.GET("/reports/projects/burndown", reportHandler.Burndown)
	v1.GET("/reports/tasks/status-summary", reportHandler.StatusSummary)

	return e
}
