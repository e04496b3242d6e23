package chat

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
	turnService "github.com/sganguly/teacher-avatars/backend/internal/service/turn"
	"github.com/sganguly/teacher-avatars/backend/pkg/utils"
)

// maxBodyBytes bounds chat payloads; prompts are short text.
const maxBodyBytes = 1 << 20

// Handler serves the chat-turn endpoint.
type Handler struct {
	turns   *turnService.Service
	avatars avatar.Store
}

// New creates the chat handler.
func New(turns *turnService.Service, avatars avatar.Store) *Handler {
	return &Handler{turns: turns, avatars: avatars}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleTurn)
	r.Post("/chat/session", h.handleCreateSession)
}

// handleTurn runs one conversational exchange. Validation failures get a 400
// with the echoed payload; everything else is a 200-shaped result, including
// upstream failures carried as success=false fallback bodies.
func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	result, verr := h.turns.HandleTurn(r.Context(), raw)
	if verr != nil {
		payload := map[string]any{
			"error":    verr.Message,
			"reason":   verr.Reason,
			"received": verr.Received,
		}
		if len(verr.AvailableAvatars) > 0 {
			payload["availableAvatars"] = verr.AvailableAvatars
		}
		utils.RespondJSON(w, http.StatusBadRequest, payload)
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// handleCreateSession mints a fresh session identifier bound to an avatar,
// for clients that want server-issued ids instead of their own.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AvatarType string `json:"avatarType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.AvatarType == "" {
		utils.RespondError(w, http.StatusBadRequest, "avatarType is required")
		return
	}

	if _, ok := h.avatars.FindByID(payload.AvatarType); !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown avatarType")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"sessionId":  uuid.NewString(),
		"avatarType": payload.AvatarType,
	})
}
