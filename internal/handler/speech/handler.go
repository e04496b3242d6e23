package speech

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sganguly/teacher-avatars/backend/pkg/utils"
)

// Synthesizer abstracts the TTS backend for testing.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang, avatarType string) (string, error)
}

// Handler serves the text-to-speech endpoint.
type Handler struct {
	tts Synthesizer
}

// New creates the speech handler.
func New(tts Synthesizer) *Handler {
	return &Handler{tts: tts}
}

// RegisterRoutes mounts the speech routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/tts", h.handleSynthesize)
}

func (h *Handler) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text       string `json:"text"`
		Lang       string `json:"lang"`
		AvatarType string `json:"avatarType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		utils.RespondError(w, http.StatusBadRequest, "Missing or invalid text. Please provide a valid text string.")
		return
	}

	audio, err := h.tts.Synthesize(r.Context(), payload.Text, payload.Lang, payload.AvatarType)
	if err != nil {
		log.Printf("[tts] synthesis failed: %v", err)
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			utils.RespondError(w, http.StatusRequestTimeout, "TTS request timed out. Please try again.")
		case strings.Contains(err.Error(), "429"):
			utils.RespondError(w, http.StatusTooManyRequests, "TTS service rate limit exceeded. Please try again in a moment.")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "TTS service temporarily unavailable. Please try again later.")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"audio":   audio,
		"success": true,
	})
}
