package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/genix/genix-go/internal/model"
	"github.com/genix/genix-go/internal/secret"
	"github.com/genix/genix-go/internal/service"
)

// EntropyHandler handles HTTP requests for entropy estimation.
type EntropyHandler struct {
	service *service.EstimatorService
}

// NewEntropyHandler creates a new EntropyHandler.
func NewEntropyHandler(svc *service.EstimatorService) *EntropyHandler {
	return &EntropyHandler{service: svc}
}

// HandleCheck handles POST /api/v1/entropy/check requests.
func (h *EntropyHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEstimateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Check(req)
	if err != nil {
		writeEstimateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleProfile handles POST /api/v1/entropy/profile requests.
func (h *EntropyHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEstimateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Profile(req)
	if err != nil {
		writeEstimateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func decodeEstimateRequest(w http.ResponseWriter, r *http.Request) (model.EstimateRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	var req model.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return model.EstimateRequest{}, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return model.EstimateRequest{}, false
	}

	return req, true
}

func writeEstimateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, secret.ErrUnknownStyle),
		errors.Is(err, secret.ErrEntropyUndetermined):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
