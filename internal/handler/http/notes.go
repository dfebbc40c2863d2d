package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.NoteService.List(r.Context(), callerID(r), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Get(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) noteHTML(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	html, err := h.services.NoteService.RenderHTML(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var input models.NoteInput
	if err := decodeJSON(r, &input, false); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), callerID(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
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

	note, err := h.services.NoteService.Update(r.Context(), callerID(r), id, updates)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), callerID(r), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
