package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.TodoService.List(r.Context(), callerID(r), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) todoStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.TodoService.Stats(r.Context(), callerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.Get(r.Context(), callerID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	var input models.TodoInput
	if err := decodeJSON(r, &input, false); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.Create(r.Context(), callerID(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
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

	todo, err := h.services.TodoService.Update(r.Context(), callerID(r), id, updates)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TodoService.Delete(r.Context(), callerID(r), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) bulkCompleteTodos(w http.ResponseWriter, r *http.Request) {
	var req models.BulkCompleteRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.TodoService.BulkComplete(r.Context(), callerID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BulkUpdateResponse{Updated: updated}, http.StatusOK)
}
