package middleware

import (
	"log/slog"
	"slices"

	"vacation-desk/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	corsCfg.ExposeHeaders = slices.Clone(corsCfg.ExposeHeaders)
	for _, h := range []string{requestIDHeader, "Location"} {
		if !slices.Contains(corsCfg.ExposeHeaders, h) {
			corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, h)
		}
	}
	// a wildcard origin cannot be combined with credentials
	if slices.Contains(corsCfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowAll", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
