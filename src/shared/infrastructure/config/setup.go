package config

import (
	"github.com/gin-gonic/gin"

	"github.com/JosueLm7/PanaderiaDelicia/src/shared/infrastructure/metrics"
	"github.com/JosueLm7/PanaderiaDelicia/src/shared/infrastructure/middleware"
)

// SharedConfig contiene la configuración de los middlewares compartidos
type SharedConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	EnableMetrics  bool
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"http://localhost:3000"},
		EnableMetrics:  true,
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, m *metrics.ServerMetrics, config SharedConfig) {
	if config.EnableCORS {
		router.Use(middleware.CORSMiddleware(middleware.CORSOptions{
			AllowedOrigins: config.AllowedOrigins,
		}))
	}

	if config.EnableMetrics && m != nil {
		router.Use(middleware.MetricsMiddleware(m))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
}
