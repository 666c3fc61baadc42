package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/config"
)

// OriginAllowed implements the CORS decision: requests without an origin are
// non-browser clients and pass, exact matches against the allow-list pass,
// and https preview deployments matching the configured host prefix/suffix
// pass. Everything else is rejected.
func OriginAllowed(cfg config.CORSConfig, origin string) bool {
	if origin == "" {
		return true
	}
	for _, allowed := range cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	if cfg.PreviewPrefix == "" || cfg.PreviewSuffix == "" {
		return false
	}
	u, err := url.Parse(origin)
	if err != nil || u.Scheme != "https" {
		return false
	}
	host := u.Hostname()
	return strings.HasPrefix(host, cfg.PreviewPrefix) && strings.HasSuffix(host, cfg.PreviewSuffix)
}

func NewCORS(cfg config.CORSConfig, log *zap.SugaredLogger) fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			allowed := OriginAllowed(cfg, origin)
			if !allowed {
				log.Warnw("blocked by CORS", "origin", origin)
			}
			return allowed
		},
		AllowHeaders:     "Origin, Content-Type, Accept, Idempotency-Key",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	})
}
