package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pawdesk/clinic-api/docs"
	"github.com/pawdesk/clinic-api/internal/api/handler"
	"github.com/pawdesk/clinic-api/internal/api/middleware"
	"github.com/pawdesk/clinic-api/internal/core/domain"
	"github.com/pawdesk/clinic-api/internal/core/service"
	mongodb "github.com/pawdesk/clinic-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/pawdesk/clinic-api/internal/infrastructure/db/redis"
	"github.com/pawdesk/clinic-api/internal/pkg/config"
	"github.com/pawdesk/clinic-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	ownerRepo := mongodb.NewOwnerRepository(db)
	petRepo := mongodb.NewPetRepository(db)
	apptRepo := mongodb.NewAppointmentRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	throttle := redisinfra.NewLoginThrottle(rdb, 0)

	authService := service.NewAuthService(userRepo, codec, throttle, log)
	userService := service.NewUserService(userRepo, log)
	ownerService := service.NewOwnerService(ownerRepo, log)
	petService := service.NewPetService(petRepo, ownerRepo, log)
	apptService := service.NewAppointmentService(apptRepo, petRepo, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	userHandler := handler.NewUserHandler(userService)
	ownerHandler := handler.NewOwnerHandler(ownerService)
	petHandler := handler.NewPetHandler(petService)
	apptHandler := handler.NewAppointmentHandler(apptService)
	taskHandler := handler.NewTaskHandler(taskService)

	authenticate := middleware.Authenticate(codec, userRepo)
	receptionist := middleware.RequireRole(domain.RoleReceptionist)
	vet := middleware.RequireRole(domain.RoleVet)
	admin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes (no session required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Protected routes ---
	v1 := e.Group("/v1", authenticate)

	v1.GET("/me", authHandler.Me)

	v1.GET("/owners", ownerHandler.List)
	v1.GET("/owners/:id", ownerHandler.Get)
	v1.POST("/owners", ownerHandler.Create, receptionist)
	v1.PATCH("/owners/:id", ownerHandler.Update, receptionist)
	v1.DELETE("/owners/:id", ownerHandler.Delete, receptionist)

	v1.GET("/pets", petHandler.List)
	v1.GET("/pets/:id", petHandler.Get)
	v1.POST("/pets", petHandler.Create, receptionist)
	v1.PATCH("/pets/:id", petHandler.Update, receptionist)
	v1.DELETE("/pets/:id", petHandler.Delete, receptionist)

	v1.GET("/appointments", apptHandler.List)
	v1.GET("/appointments/:id", apptHandler.Get)
	v1.POST("/appointments", apptHandler.Create, receptionist)
	v1.PATCH("/appointments/:id/status", apptHandler.UpdateStatus, receptionist)

	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create, receptionist)
	v1.POST("/tasks/:id/complete", taskHandler.Complete, vet)
	v1.DELETE("/tasks/:id", taskHandler.Delete, receptionist)

	v1.GET("/users", userHandler.List, admin)
	v1.PATCH("/users/:id", userHandler.Update, admin)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
