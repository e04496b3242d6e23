// Package speech synthesizes reply audio through Gemini's TTS models.
package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/sganguly/teacher-avatars/backend/internal/config"
)

// ErrNoAudio is returned when every voice candidate failed to produce audio.
var ErrNoAudio = errors.New("no audio content from TTS service")

// Service converts text to base64-encoded audio.
type Service struct {
	client *genai.Client
	cfg    config.TTSConfig
}

// NewService creates the TTS client.
func NewService(ctx context.Context, cfg config.TTSConfig) (*Service, error) {
	if !cfg.Enabled() {
		return nil, errors.New("missing TTS credentials: set GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS client: %w", err)
	}

	return &Service{client: client, cfg: cfg}, nil
}

// voiceCandidates picks prebuilt voices for the request, preferring Hindi
// voices for Hindi content. Candidates are tried in order until one yields
// audio.
func voiceCandidates(lang, avatarType string) []string {
	if strings.HasPrefix(strings.ToLower(lang), "hi") || avatarType == "hindi-teacher" {
		return []string{"hi-IN-Neural2-D", "hi-IN-Standard-D", "hi-IN-Standard-B", "hi-IN-Standard-A"}
	}
	return []string{"en-US-Standard-A"}
}

// Synthesize returns base64-encoded audio for the text. The call is bounded
// by the configured timeout; on expiry the in-flight request is abandoned.
func (s *Service) Synthesize(ctx context.Context, text, lang, avatarType string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}

	var lastErr error
	for _, voice := range voiceCandidates(lang, avatarType) {
		cfg := &genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
				},
			},
		}

		resp, err := s.client.Models.GenerateContent(callCtx, s.cfg.Model, contents, cfg)
		if err != nil {
			lastErr = err
			if callCtx.Err() != nil {
				return "", callCtx.Err()
			}
			log.Printf("[tts] voice %s failed: %v", voice, err)
			continue
		}

		if audio := extractAudio(resp); len(audio) > 0 {
			return base64.StdEncoding.EncodeToString(audio), nil
		}
		lastErr = ErrNoAudio
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", ErrNoAudio
}

func extractAudio(resp *genai.GenerateContentResponse) []byte {
	if resp == nil {
		return nil
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
