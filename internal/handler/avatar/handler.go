package avatar

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
	"github.com/sganguly/teacher-avatars/backend/pkg/utils"
)

// Handler serves the avatar registry.
type Handler struct {
	avatars avatar.Store
}

// New creates the avatar handler.
func New(avatars avatar.Store) *Handler {
	return &Handler{avatars: avatars}
}

// RegisterRoutes mounts the avatar routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/avatars", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.avatars.List())
}
