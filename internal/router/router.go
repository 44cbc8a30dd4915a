package router

import (
	"net/http"
	"time"

	"booktracker-be/internal/config"
	"booktracker-be/internal/controllers"
	"booktracker-be/internal/jwt"
	"booktracker-be/internal/metrics"
	"booktracker-be/internal/middleware"
	"booktracker-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Banner is the plain-text body served on GET /
const Banner = "Book Tracker API is running..."

// Dependencies are the collaborators the HTTP layer is built from.
// Metrics and the rate limiters are optional.
type Dependencies struct {
	Config         *config.Config
	Logger         *logrus.Logger
	JWTService     *jwt.JWTService
	AuthService    service.AuthService
	BookService    service.BookService
	Metrics        *metrics.Metrics
	GeneralLimiter *middleware.RateLimiter
	AuthLimiter    *middleware.RateLimiter
}

// New builds the gin engine with middleware and all routes registered
func New(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	log := deps.Logger

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	router.Use(middleware.RequestLogger(log))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	router.Use(middleware.Recovery(log))
	if cfg.AllowedOrigin != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.AllowedOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	authController := controllers.NewAuthController(deps.AuthService, controllers.CookieOptions{
		Secure: cfg.CookieSecure,
		MaxAge: deps.JWTService.TTL(),
	}, log)
	bookController := controllers.NewBookController(deps.BookService, log)
	qrcodeController := controllers.NewQRCodeController(deps.BookService, cfg.FrontendURL, log)
	requireAuth := middleware.AuthMiddleware(deps.JWTService, log)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Banner)
	})

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := router.Group("/api")
	if deps.GeneralLimiter != nil {
		api.Use(deps.GeneralLimiter.LimitMiddleware())
	}
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		if deps.AuthLimiter != nil {
			auth.Use(deps.AuthLimiter.LimitMiddleware())
		}
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
			auth.GET("/profile", requireAuth, authController.GetProfile)
			auth.PUT("/profile", requireAuth, authController.UpdateProfile)
			auth.PATCH("/profile", requireAuth, authController.UpdateProfile)
		}

		books := api.Group("/books")
		{
			books.GET("/public", bookController.GetPublicBooks)

			// Protected routes - require JWT authentication
			protected := books.Group("")
			protected.Use(requireAuth)
			{
				protected.GET("/my", bookController.GetMyBooks)
				protected.POST("", bookController.AddBook)
				protected.PATCH("/:id", bookController.UpdateBook)
				protected.DELETE("/:id", bookController.DeleteBook)
				protected.GET("/:id/qrcode", qrcodeController.GenerateBookQRCode)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "API route not found",
		})
	})

	return router, nil
}
