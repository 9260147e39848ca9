// Package router builds the gin engine and registers every route.
package router

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "digital_mechanic/internal/feature/auth/transport/handler"
	vehiclehandler "digital_mechanic/internal/feature/vehicles/transport/handler"
	"digital_mechanic/internal/platform/http/handler"
	"digital_mechanic/internal/platform/http/middleware"
)

// NewRouter wires middleware and handlers. allowedOrigins may contain "*" to allow any origin.
func NewRouter(logger *slog.Logger, allowedOrigins []string, authHandler *authhandler.AuthHandler,
	vehicles *vehiclehandler.VehicleHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(allowedOrigins)))

	// 導通確認用
	r.GET("/", handler.Root)
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// ログイン（未登録かつname付きなら新規登録）
		api.POST("/auth/login", authHandler.Login)

		api.GET("/cars/:userId", vehicles.List)
		api.POST("/cars", vehicles.Add)
	}

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}
