package middleware

import (
	"log/slog"
	"slices"

	"yacht-charter/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy from config. A "*" origin allows
// every origin with credentials off.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}

	if err := c.Validate(); err != nil {
		slog.Warn("invalid CORS settings, falling back to gin-contrib defaults", "error", err.Error())
		c = cors.DefaultConfig()
		c.AllowOrigins = []string{"http://localhost:3000"}
		c.AddAllowHeaders("Authorization", "Idempotency-Key")
		c.AddExposeHeaders("Idempotent-Replayed")
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all", c.AllowAllOrigins,
		"expose_headers", c.ExposeHeaders)
	return cors.New(c)
}
