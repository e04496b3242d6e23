// Package fallback produces offline answers and suggestion lists when the
// language model cannot be reached. Everything here is static and
// deterministic: keyword lookup over an ordered topic table, first match wins.
package fallback

import (
	"strings"

	"github.com/sganguly/teacher-avatars/backend/internal/model/chat"
)

// Service answers from the offline knowledge base.
type Service struct{}

// NewService returns the offline fallback service.
func NewService() *Service {
	return &Service{}
}

// Synthesize returns canned explanatory text for the prompt. Topics are
// scanned in table order and the first topic with a keyword appearing as a
// substring of the lowercased prompt wins; otherwise the avatar's default
// text is returned. Avatars without their own table borrow the biology one.
func (s *Service) Synthesize(avatarType, prompt string) string {
	topics, ok := knowledgeBase[avatarType]
	if !ok {
		avatarType = fallbackDefaultAvatar
		topics = knowledgeBase[avatarType]
	}

	promptLower := strings.ToLower(prompt)
	for _, topic := range topics {
		for _, keyword := range topic.Keywords {
			if strings.Contains(promptLower, keyword) {
				return topic.Content
			}
		}
	}

	if content, ok := defaultContent[avatarType]; ok {
		return content
	}
	return defaultContent[fallbackDefaultAvatar]
}

// Articles returns the static reading suggestions for the avatar.
func (s *Service) Articles(avatarType string) []chat.Article {
	items, ok := fallbackArticles[avatarType]
	if !ok {
		items = fallbackArticles[suggestionDefaultAvatar]
	}
	return append([]chat.Article(nil), items...)
}

// Videos returns the static video suggestions for the avatar.
func (s *Service) Videos(avatarType string) []chat.Video {
	items, ok := fallbackVideos[avatarType]
	if !ok {
		items = fallbackVideos[suggestionDefaultAvatar]
	}
	return append([]chat.Video(nil), items...)
}

// QuotaMessage is the user-facing text for quota-exhaustion failures.
func (s *Service) QuotaMessage() string {
	return `I apologize, but I've reached my daily limit for AI responses. Free tier limit reached.

You've used all the free API calls for today.
The quota resets at midnight (UTC).

However, I can still help you with educational resources! Here are some relevant articles and videos to learn about your topic.

Explore the suggested educational resources below.
Try again tomorrow when the quota resets.
Consider upgrading to a paid plan for unlimited access.`
}

// TimeoutMessage is the user-facing text for upstream timeouts.
func (s *Service) TimeoutMessage() string {
	return `I apologize, but the request took too long to process. This might be due to high demand or network issues.

Please try asking your question again in a moment, or explore the suggested resources below for immediate learning.`
}

// NetworkMessage is the user-facing text for connectivity failures.
func (s *Service) NetworkMessage() string {
	return `I apologize, but there seems to be a network connection issue. Please check your internet connection and try again.

In the meantime, you can explore the suggested resources below to continue learning.`
}
