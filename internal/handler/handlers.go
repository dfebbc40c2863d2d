package handler

import (
	"github.com/MKhiriev/go-api-hub/internal/cache"
	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/handler/http"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. responseCache
// may be nil.
func NewHandlers(services *service.Services, responseCache cache.Cache, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, responseCache, cfg, logger),
	}, nil
}
