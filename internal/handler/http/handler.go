package http

import (
	"github.com/MKhiriev/go-api-hub/internal/cache"
	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/service"
)

type Handler struct {
	services *service.Services
	cache    cache.Cache
	limiter  *ipRateLimiter
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. responseCache may be nil, which
// disables response caching.
func NewHandler(services *service.Services, responseCache cache.Cache, cfg config.Server, logger *logger.Logger) *Handler {
	if responseCache == nil {
		responseCache = cache.NewNopCache()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cache:    responseCache,
		limiter:  newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		cfg:      cfg,
		logger:   logger,
	}
}
