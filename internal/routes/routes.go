package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/telconl/catalog-api/internal/auth"
	"github.com/telconl/catalog-api/internal/config"
	"github.com/telconl/catalog-api/internal/handlers"
	"github.com/telconl/catalog-api/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLogger())
	r.Use(cors.New(corsConfig(cfg)))

	// ======================================================
	// SERVICES
	// ======================================================
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenService(cfg.JWTSecret)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, hasher, tokens)
	productHandler := handlers.NewProductHandler()
	customerHandler := handlers.NewCustomerHandler()

	// Liveness probe, no database involved.
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "Server is running")
	})

	// Every data route runs inside a request-scoped transaction.
	api := r.Group("/", middleware.UnitOfWork(db))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/", authHandler.Register)
		api.POST("/auth/token", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)

		// ------------------------------
		// PROTECTED
		// ------------------------------
		secured := api.Group("/", middleware.AuthMiddleware(tokens))
		{
			secured.GET("/auth-check", authHandler.Check)

			secured.GET("/customers/me", customerHandler.GetMe)
			secured.PATCH("/customers/me", customerHandler.UpdateMe)

			secured.POST("/products", middleware.RequireAdmin(), productHandler.Create)
		}
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}

	return corsCfg
}
