package chat

// Turn is one entry in a conversation history.
type Turn struct {
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // unix millis
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Key scopes conversation state to one avatar/session pair.
type Key struct {
	AvatarType string
	SessionID  string
}
