package chat

// Article is one related-reading suggestion attached to a reply.
type Article struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	URL          string `json:"url"`
}

// Video is one related-video suggestion attached to a reply.
type Video struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	URL          string `json:"url"`
}

// TurnResult is the response body for one chat turn. Part1 carries the prose
// answer, Part2 any code payload. Error is set only when Success is false.
type TurnResult struct {
	Part1           string    `json:"part1"`
	Part2           string    `json:"part2"`
	AvatarType      string    `json:"avatarType"`
	SessionID       string    `json:"sessionId"`
	RelatedArticles []Article `json:"relatedArticles"`
	RelatedVideos   []Video   `json:"relatedVideos"`
	Success         bool      `json:"success"`
	Error           string    `json:"error,omitempty"`
}
