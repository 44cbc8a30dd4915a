package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booktracker-be/internal/cache"
	"booktracker-be/internal/config"
	"booktracker-be/internal/database"
	"booktracker-be/internal/jwt"
	"booktracker-be/internal/logger"
	"booktracker-be/internal/metrics"
	"booktracker-be/internal/middleware"
	"booktracker-be/internal/repository"
	"booktracker-be/internal/router"
	"booktracker-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, os.Stdout)
	gin.SetMode(gin.ReleaseMode)

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db, cfg.DatabaseDriver); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("Failed to connect to Redis, continuing without cache")
			cacheClient = nil
		} else {
			log.Info("Connected to Redis cache")
			defer cacheClient.Close()
		}
	}

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set, protected routes will fail")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	userBookRepo := repository.NewUserBookRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	bookService := service.NewBookService(
		bookRepo,
		userBookRepo,
		cacheClient,
		time.Duration(cfg.PublicBooksCacheTTL)*time.Second,
		log,
	)

	m := metrics.NewMetrics(prometheus.NewRegistry())
	m.RegisterDB(db, cfg.DatabaseDriver)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer generalRateLimiter.Stop()
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	defer authRateLimiter.Stop()

	handler, err := router.New(router.Dependencies{
		Config:         cfg,
		Logger:         log,
		JWTService:     jwtService,
		AuthService:    authService,
		BookService:    bookService,
		Metrics:        m,
		GeneralLimiter: generalRateLimiter,
		AuthLimiter:    authRateLimiter,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to build router")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-done:
		log.WithField("signal", sig.String()).Info("Shutting down the server")
	case err := <-serverErr:
		log.WithError(err).Error("Server failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Failed to shutdown server")
		return
	}
	log.Info("Server shutdown complete")
}
