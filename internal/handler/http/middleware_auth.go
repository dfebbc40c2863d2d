package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/service"
	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
)

// requireAuth is an HTTP middleware that lets a request through only with a
// valid active bearer token. The validated [models.Caller] is attached to
// the request context with [utils.WithCaller].
//
// Rejections are answered with 403 Forbidden and one of the reasons
// "no token", "invalid format", "invalid" or "revoked". A ledger outage is
// answered with 503 so that clients can retry.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		caller, reason, err := h.authenticate(r)
		if err != nil {
			if errors.Is(err, service.ErrUnavailable) {
				writeError(w, r, err)
				return
			}
			log.Debug().Err(err).Str("reason", reason).Msg("request is not authenticated")
			utils.WriteError(w, http.StatusForbidden, "authentication failed", reason)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCaller(r.Context(), caller)))
	})
}

// optionalAuth attaches the caller when the request carries a valid token
// and lets every other request through as a guest.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, reason, err := h.authenticate(r)
		if err != nil {
			if reason != reasonNoToken {
				logger.FromRequest(r).Debug().Err(err).Str("reason", reason).Msg("continuing as guest")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCaller(r.Context(), caller)))
	})
}

// authenticate extracts and validates the bearer token of r. On failure it
// returns the reason to report.
func (h *Handler) authenticate(r *http.Request) (models.Caller, string, error) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if errors.Is(err, utils.ErrNoBearerToken) {
		return models.Caller{}, reasonNoToken, err
	}
	if err != nil {
		return models.Caller{}, reasonInvalidFormat, err
	}

	caller, err := h.services.TokenService.Validate(r.Context(), token)
	if err != nil {
		reason := reasonFromError(err)
		if reason == "" {
			reason = reasonInvalid
		}
		return models.Caller{}, reason, err
	}

	return caller, "", nil
}

// callerID returns the id of the authenticated caller or [models.Guest].
func callerID(r *http.Request) int64 {
	return utils.CallerIDFromContext(r.Context())
}
