package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/service"
	"github.com/MKhiriev/go-api-hub/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrInvalidID:    http.StatusBadRequest,
	ErrInvalidQuery: http.StatusBadRequest,

	service.ErrValidation:             http.StatusBadRequest,
	service.ErrAuthenticationRequired: http.StatusUnauthorized,
	service.ErrInvalidCredentials:     http.StatusUnauthorized,
	service.ErrInvalidToken:           http.StatusForbidden,
	service.ErrTokenRevoked:           http.StatusForbidden,
	service.ErrTokenNotActive:         http.StatusForbidden,
	service.ErrPermissionDenied:       http.StatusForbidden,
	service.ErrNotFound:               http.StatusNotFound,
	service.ErrUserNotFound:           http.StatusNotFound,
	service.ErrEmailTaken:             http.StatusConflict,
	service.ErrConflict:               http.StatusConflict,
	service.ErrUnavailable:            http.StatusServiceUnavailable,
}

// reasonMap holds the reason reported next to token failures.
var reasonMap = map[error]string{
	service.ErrInvalidToken:   reasonInvalid,
	service.ErrTokenRevoked:   reasonRevoked,
	service.ErrTokenNotActive: reasonRevoked,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func reasonFromError(err error) string {
	for target, reason := range reasonMap {
		if errors.Is(err, target) {
			return reason
		}
	}
	return ""
}

// writeError answers with the status mapped from err. Details of server-side
// failures are logged, never returned.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	case errors.Is(err, service.ErrPermissionDenied):
		message = service.ErrPermissionDenied.Error()
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, message, reasonFromError(err))
}
