package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/genix/genix-go/internal/middleware"
	"github.com/genix/genix-go/internal/model"
	"github.com/genix/genix-go/internal/secret"
	"github.com/genix/genix-go/internal/service"
)

// GeneratorHandler handles HTTP requests for secret generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if err.Error() == "http: request body too large" {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	// Zero for anonymous callers; set when OptionalJWTAuth saw a valid token.
	userID, _ := middleware.UserIDFromContext(r.Context())

	resp, err := h.service.Generate(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, secret.ErrUnknownStyle),
			errors.Is(err, secret.ErrInvalidCharset),
			errors.Is(err, secret.ErrEmptyWordlist),
			errors.Is(err, secret.ErrNegativeLength),
			errors.Is(err, secret.ErrNegativeCount):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordlistAuthRequired):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNamedWordlistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordlistsUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
