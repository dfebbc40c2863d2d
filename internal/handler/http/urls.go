package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
)

func (h *Handler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var input models.URLInput
	if err := decodeJSON(r, &input, false); err != nil {
		writeError(w, r, err)
		return
	}

	url, err := h.services.URLService.Shorten(r.Context(), callerID(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, url, http.StatusCreated)
}

func (h *Handler) listURLs(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.URLService.List(r.Context(), callerID(r), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getURL(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	url, err := h.services.URLService.Get(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, url, http.StatusOK)
}

func (h *Handler) updateURL(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var updates map[string]any
	if err = decodeJSON(r, &updates, false); err != nil {
		writeError(w, r, err)
		return
	}

	url, err := h.services.URLService.Update(r.Context(), callerID(r), id, updates)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, url, http.StatusOK)
}

func (h *Handler) deleteURL(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.URLService.Delete(r.Context(), callerID(r), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// redirect sends the client to the original URL of a short code. Private
// codes resolve only for their owner.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request) {
	url, err := h.services.URLService.Resolve(r.Context(), callerID(r), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("short_code", url.ShortCode).Int64("clicks", url.Clicks).Msg("redirecting")
	http.Redirect(w, r, url.OriginalURL, http.StatusFound)
}
