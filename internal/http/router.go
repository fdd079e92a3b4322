package http

import (
	"log/slog"
	"time"

	"github.com/codermarch/taskboard/internal/auth"
	"github.com/codermarch/taskboard/internal/config"
	"github.com/codermarch/taskboard/internal/http/handlers"
	"github.com/codermarch/taskboard/internal/http/middlewares"
	"github.com/codermarch/taskboard/internal/observability"
	"github.com/codermarch/taskboard/internal/service"
	"github.com/codermarch/taskboard/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxBodyBytes = 1 << 20 // JSON payloads here are tiny

// NewRouter wires middlewares, services and handlers. ping reports
// durable-store reachability for /readyz and may be nil.
func NewRouter(log *slog.Logger, st *store.Manager, cfg config.Config, prom *observability.Prom, ping func() error) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))
	r.Use(middlewares.RequireJSON())
	r.Use(otelgin.Middleware("taskboard"))

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	}

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})))
	}

	// health

	healthHandler := handlers.NewHealthHandler(ping)
	r.GET("/healthz", healthHandler.Healthz)
	r.GET("/readyz", healthHandler.Readyz)

	// credential service + guard

	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL())
	guard := auth.NewGuard(tokens)
	requireAuth := middlewares.NewAuthMiddleware(guard).RequireAuth()

	// services over the shared snapshot store

	authService := service.NewAuth(st, tokens)
	boardService := service.NewBoards(st)
	taskService := service.NewTasks(st)

	authHandler := handlers.NewAuthHandler(authService)
	boardsHandler := handlers.NewBoardsHandler(boardService)
	tasksHandler := handlers.NewTasksHandler(taskService)

	// login/register get the tighter limit; redis when configured
	authLimit := authRateLimit(cfg)

	authRoutes := r.Group("/auth", authLimit)
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)

	boards := r.Group("/boards", requireAuth)
	boards.GET("", boardsHandler.ListBoards)
	boards.POST("", boardsHandler.CreateBoard)
	boards.PUT("/:id", boardsHandler.RenameBoard)
	boards.DELETE("/:id", boardsHandler.DeleteBoard)

	tasks := r.Group("/tasks", requireAuth)
	tasks.GET("", tasksHandler.ListTasks)
	tasks.POST("", tasksHandler.CreateTask)
	tasks.PUT("/reorder", tasksHandler.ReorderTasks)
	tasks.PUT("/:id", tasksHandler.UpdateTask)
	tasks.DELETE("/:id", tasksHandler.DeleteTask)

	return r
}

func authRateLimit(cfg config.Config) gin.HandlerFunc {
	const (
		limit  = 20
		window = time.Minute
	)

	redisLimiter := middlewares.NewRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, limit, window)

	if redisLimiter != nil {
		return redisLimiter.Middleware(middlewares.KeyByIP)
	}

	return middlewares.NewRateLimiter(limit, window).Middleware(middlewares.KeyByIP)
}
