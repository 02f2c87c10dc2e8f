package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/genix/genix-go/internal/middleware"
	"github.com/genix/genix-go/internal/model"
	"github.com/genix/genix-go/internal/service"
)

// WordlistHandler handles HTTP requests for stored wordlists.
type WordlistHandler struct {
	service *service.WordlistService
}

// NewWordlistHandler creates a new WordlistHandler.
func NewWordlistHandler(svc *service.WordlistService) *WordlistHandler {
	return &WordlistHandler{service: svc}
}

// HandleCreate handles POST /api/v1/wordlists requests.
func (h *WordlistHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20) // 10MB, wordlists can be large

	var req model.CreateWordlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWordlistNameRequired),
			errors.Is(err, service.ErrWordlistNameTooLong),
			errors.Is(err, service.ErrWordlistEmpty):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordlistNameTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/wordlists requests.
func (h *WordlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	summaries, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// HandleGet handles GET /api/v1/wordlists/{name} requests.
func (h *WordlistHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	name := chi.URLParam(r, "name")

	resp, err := h.service.Get(r.Context(), userID, name)
	if err != nil {
		if errors.Is(err, service.ErrWordlistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/wordlists/{name} requests.
func (h *WordlistHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	name := chi.URLParam(r, "name")

	if err := h.service.Delete(r.Context(), userID, name); err != nil {
		if errors.Is(err, service.ErrWordlistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
