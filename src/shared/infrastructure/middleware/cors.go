package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSOptions contiene la configuración del middleware CORS
type CORSOptions struct {
	AllowedOrigins []string
}

// CORSMiddleware habilita CORS para la tienda web.
// Allow-Credentials es necesario para que la cookie de sesión del carrito
// viaje en peticiones cross-origin.
func CORSMiddleware(opts CORSOptions) gin.HandlerFunc {
	allowed := make(map[string]bool, len(opts.AllowedOrigins))
	allowAll := false
	for _, origin := range opts.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Access-Control-Allow-Credentials", "true")
			ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			ctx.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
