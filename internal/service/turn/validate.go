package turn

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
)

// Reason is the machine-readable cause of a validation failure. Callers
// distinguish these to drive their own error UX.
type Reason string

const (
	ReasonMissingBody       Reason = "missing_body"
	ReasonMissingPrompt     Reason = "missing_prompt"
	ReasonPromptType        Reason = "invalid_prompt_type"
	ReasonEmptyPrompt       Reason = "empty_prompt"
	ReasonMissingAvatarType Reason = "missing_avatar_type"
	ReasonAvatarTypeType    Reason = "invalid_avatar_type"
	ReasonUnknownAvatarType Reason = "unknown_avatar_type"
)

// ValidationError reports why a request payload was rejected. For unknown
// avatar types, AvailableAvatars lists the valid identifiers.
type ValidationError struct {
	Reason           Reason
	Message          string
	Received         map[string]any
	AvailableAvatars []string
}

func (e *ValidationError) Error() string { return e.Message }

// Request is the validated form of one chat-turn payload.
type Request struct {
	Prompt     string
	AvatarType string
	SessionID  string
}

// decodeBody normalizes the raw payload into a JSON object. Clients
// double-encode in the wild, so three shapes are accepted: a plain object, a
// JSON-encoded string containing an object, and a single-element array
// holding either.
func decodeBody(raw []byte) (map[string]any, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, false
	}

	switch raw[0] {
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, false
		}
		return obj, true
	case '"':
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, false
		}
		return decodeBody([]byte(inner))
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil || len(elems) == 0 {
			return nil, false
		}
		return decodeBody(elems[0])
	default:
		return nil, false
	}
}

// validate runs the ordered payload checks, short-circuiting on the first
// failure.
func validate(raw []byte, avatars avatar.Store) (Request, *ValidationError) {
	body, ok := decodeBody(raw)
	if !ok {
		return Request{}, &ValidationError{
			Reason:  ReasonMissingBody,
			Message: "Request body is missing or invalid. Please provide a valid JSON payload.",
		}
	}

	received := map[string]any{
		"prompt":     body["prompt"],
		"avatarType": body["avatarType"],
		"sessionId":  body["sessionId"],
	}

	promptRaw, ok := body["prompt"]
	if !ok || promptRaw == nil {
		return Request{}, &ValidationError{
			Reason:   ReasonMissingPrompt,
			Message:  "Missing prompt field. Please provide a prompt in the request body.",
			Received: received,
		}
	}

	prompt, ok := promptRaw.(string)
	if !ok {
		return Request{}, &ValidationError{
			Reason:   ReasonPromptType,
			Message:  "Invalid prompt type. Prompt must be a string.",
			Received: received,
		}
	}

	if strings.TrimSpace(prompt) == "" {
		return Request{}, &ValidationError{
			Reason:   ReasonEmptyPrompt,
			Message:  "Prompt cannot be empty. Please provide a valid question or message.",
			Received: received,
		}
	}

	avatarRaw, ok := body["avatarType"]
	if !ok || avatarRaw == nil {
		return Request{}, &ValidationError{
			Reason:   ReasonMissingAvatarType,
			Message:  "Missing avatarType field. Please provide an avatar type in the request body.",
			Received: received,
		}
	}

	avatarType, ok := avatarRaw.(string)
	if !ok {
		return Request{}, &ValidationError{
			Reason:   ReasonAvatarTypeType,
			Message:  "Invalid avatarType. Avatar type must be a string.",
			Received: received,
		}
	}

	if _, ok := avatars.FindByID(avatarType); !ok {
		return Request{}, &ValidationError{
			Reason:           ReasonUnknownAvatarType,
			Message:          "Invalid avatar type: \"" + avatarType + "\". Please select a valid avatar.",
			Received:         received,
			AvailableAvatars: avatars.IDs(),
		}
	}

	sessionID := "default"
	if sid, ok := body["sessionId"].(string); ok && strings.TrimSpace(sid) != "" {
		sessionID = sid
	}

	return Request{Prompt: prompt, AvatarType: avatarType, SessionID: sessionID}, nil
}
