package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user.View()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user.View()}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	caller, _ := utils.CallerFromContext(r.Context())

	user, err := h.services.AuthService.Profile(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.View(), http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	caller, _ := utils.CallerFromContext(r.Context())

	var req models.ProfileUpdateRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.View(), http.StatusOK)
}

// logout revokes the token the request was authenticated with.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	caller, _ := utils.CallerFromContext(r.Context())

	if err := h.services.TokenService.Revoke(r.Context(), caller, caller.Token); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// rotateToken exchanges the token of the Authorization header for a new
// one. It is not behind requireAuth: rotation validates the old token
// itself so that a revoked token reports TokenNotActive.
func (h *Handler) rotateToken(w http.ResponseWriter, r *http.Request) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		reason := reasonInvalidFormat
		if errors.Is(err, utils.ErrNoBearerToken) {
			reason = reasonNoToken
		}
		utils.WriteError(w, http.StatusForbidden, "authentication failed", reason)
		return
	}

	var req models.RotateRequest
	if err = decodeJSON(r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	revokeOld := req.RevokeOld == nil || *req.RevokeOld

	issued, user, err := h.services.TokenService.Rotate(r.Context(), token, revokeOld, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RotateResponse{
		Token:           issued.SignedString,
		OldTokenRevoked: revokeOld,
		User:            user.View(),
	}, http.StatusOK)
}

func (h *Handler) listTokens(w http.ResponseWriter, r *http.Request) {
	caller, _ := utils.CallerFromContext(r.Context())

	tokens, err := h.services.TokenService.ListActive(r.Context(), caller.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenListResponse{Tokens: tokens, Count: len(tokens)}, http.StatusOK)
}

func (h *Handler) revokeToken(w http.ResponseWriter, r *http.Request) {
	caller, _ := utils.CallerFromContext(r.Context())

	var req models.RevokeTokenRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TokenService.Revoke(r.Context(), caller, req.Token); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revokeAllTokens(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	caller, _ := utils.CallerFromContext(r.Context())

	count, err := h.services.TokenService.RevokeAll(r.Context(), caller.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", caller.UserID).Int64("revoked", count).Msg("all tokens revoked")
	utils.WriteJSON(w, models.RevokeAllResponse{Revoked: count}, http.StatusOK)
}
