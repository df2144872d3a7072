package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API
type APIConfig struct {
	DB      *sql.DB
	Service string
	Version string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Service: "panaderia-delicia",
		Version: "dev",
	}
}

// SetupAPIModule registra el health check en la raíz y bajo /api/v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := healthHandler(cfg)
	router.GET("/health", handler)
	v1.GET("/health", handler)
}

// healthHandler reporta el estado del servicio y de la base de datos
func healthHandler(cfg APIConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "not_configured"
		if cfg.DB != nil {
			if err := cfg.DB.PingContext(ctx.Request.Context()); err != nil {
				dbStatus = "unreachable"
			} else {
				dbStatus = "connected"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  cfg.Service,
			"version":  cfg.Version,
			"database": dbStatus,
		})
	}
}
