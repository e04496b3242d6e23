package sandbox

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	sandboxsvc "github.com/sganguly/teacher-avatars/backend/internal/service/sandbox"
	"github.com/sganguly/teacher-avatars/backend/pkg/utils"
)

// Executor abstracts the code-execution backend for testing.
type Executor interface {
	Execute(ctx context.Context, req sandboxsvc.Request) (*sandboxsvc.Result, error)
}

// Handler serves the code-execution endpoint.
type Handler struct {
	executor Executor
}

// New creates the sandbox handler.
func New(executor Executor) *Handler {
	return &Handler{executor: executor}
}

// RegisterRoutes mounts the sandbox routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/execute", h.handleExecute)
}

func (h *Handler) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req sandboxsvc.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Code == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing code")
		return
	}

	result, err := h.executor.Execute(r.Context(), req)
	if err != nil {
		log.Printf("[sandbox] execution failed: %v", err)
		switch {
		case errors.Is(err, sandboxsvc.ErrUpstream):
			utils.RespondError(w, http.StatusBadGateway, "JDoodle API error")
		case errors.Is(err, context.DeadlineExceeded):
			utils.RespondError(w, http.StatusInternalServerError, "Request timed out")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Execution failed")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
