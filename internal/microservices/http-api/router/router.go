package router

import (
	"log/slog"
	"net/http"
	"time"

	"gamerental/internal/config"
	"gamerental/internal/microservices/http-api/handler"
	"gamerental/internal/microservices/http-api/middleware"
	"gamerental/internal/microservices/http-api/repository"
	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Dependencies are the shared handles every route is built from.
type Dependencies struct {
	DB     *gorm.DB
	Redis  *redis.Client // optional, nil disables the token denylist
	Config *config.Config
	Logger *slog.Logger
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pageSize := cfg.PageSize

	// Repositories
	userRepo := repository.NewUserRepository(deps.DB)
	gameRepo := repository.NewGameRepository(deps.DB)
	consoleRepo := repository.NewConsoleRepository(deps.DB)
	rentalRepo := repository.NewRentalRepository(deps.DB)
	gameReviewRepo := repository.NewGameReviewRepository(deps.DB)
	consoleReviewRepo := repository.NewConsoleReviewRepository(deps.DB)
	denylist := repository.NewTokenDenylist(deps.Redis)

	// Services
	authService := service.NewAuthService(userRepo, denylist, cfg)
	userService := service.NewUserService(userRepo, rentalRepo, gameReviewRepo, consoleReviewRepo, pageSize)
	gameService := service.NewGameService(gameRepo, gameReviewRepo, pageSize)
	consoleService := service.NewConsoleService(consoleRepo, gameRepo, consoleReviewRepo, pageSize)
	rentalService := service.NewRentalService(rentalRepo, pageSize)
	gameReviewService := service.NewGameReviewService(gameReviewRepo, pageSize)
	consoleReviewService := service.NewConsoleReviewService(consoleReviewRepo, consoleService, pageSize)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.NoRoute(handler.NotFound)

	r.GET("/health", healthCheck(deps.DB))

	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst)
	handler.NewUserHandler(userService, authService, loginLimiter).RegisterRoutes(r.Group("/users"))
	handler.NewGameHandler(gameService).RegisterRoutes(r.Group("/games"))
	handler.NewConsoleHandler(consoleService).RegisterRoutes(r.Group("/consoles"))
	handler.NewRentalHandler(rentalService).RegisterRoutes(r.Group("/rentals"))
	handler.NewGameReviewHandler(gameReviewService).RegisterRoutes(r.Group("/game_reviews"))
	handler.NewConsoleReviewHandler(consoleReviewService).RegisterRoutes(r.Group("/console_reviews"))

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		dbState := "up"

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			slog.Error("health check: database unreachable", "error", err)
			status = http.StatusServiceUnavailable
			dbState = "down"
		}

		c.JSON(status, gin.H{"status": http.StatusText(status), "database": dbState})
	}
}
