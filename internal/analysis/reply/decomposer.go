// Package reply splits free-form model output into structured parts. Models
// are asked to label sections with PART1/PART2/RELATED_ARTICLES/RELATED_VIDEOS
// markers, but frequently omit some or all of them, so every rule here is
// tolerant: absent sections are empty, malformed suggestion lines are skipped.
package reply

import (
	"regexp"
	"strings"

	"github.com/sganguly/teacher-avatars/backend/internal/model/chat"
)

// Parts is the decomposed form of one raw model reply.
type Parts struct {
	Answer   string
	Code     string
	Articles []chat.Article
	Videos   []chat.Video
}

const (
	maxArticles = 4
	maxVideos   = 3
)

var (
	part1Re     = regexp.MustCompile(`(?is)PART1:\s*(.*?)(?:PART2:|RELATED_ARTICLES:|RELATED_VIDEOS:|$)`)
	part2Re     = regexp.MustCompile(`(?is)PART2:\s*(.*?)(?:RELATED_ARTICLES:|RELATED_VIDEOS:|$)`)
	articlesRe  = regexp.MustCompile(`(?is)RELATED_ARTICLES:\s*(.*?)(?:RELATED_VIDEOS:|$)`)
	videosRe    = regexp.MustCompile(`(?is)RELATED_VIDEOS:\s*(.*)$`)
	anyMarkerRe = regexp.MustCompile(`(?i)PART2:|RELATED_ARTICLES:|RELATED_VIDEOS:`)

	fencedRe   = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\n?.*?```")
	urlRe      = regexp.MustCompile(`https?://\S+`)
	durationRe = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)

	leadingPart1Re = regexp.MustCompile(`(?i)^PART1:\s*`)
	leadingPart2Re = regexp.MustCompile(`(?i)^PART2:\s*`)
)

// Decompose parses raw model text into prose, code, and suggestion lists.
// It never returns an empty Answer when the input contains any text.
func Decompose(raw string) Parts {
	raw = strings.TrimSpace(raw)

	var parts Parts
	parts.Answer = raw

	if m := part1Re.FindStringSubmatch(raw); m != nil {
		parts.Answer = strings.TrimSpace(m[1])
	} else if loc := anyMarkerRe.FindStringIndex(raw); loc != nil {
		// Labeled sections without a PART1 marker: the prose is whatever
		// precedes the first marker.
		parts.Answer = strings.TrimSpace(raw[:loc[0]])
	}
	if m := part2Re.FindStringSubmatch(raw); m != nil {
		parts.Code = strings.TrimSpace(m[1])
	}
	if m := articlesRe.FindStringSubmatch(raw); m != nil {
		parts.Articles = parseArticles(m[1])
	}
	if m := videosRe.FindStringSubmatch(raw); m != nil {
		parts.Videos = parseVideos(m[1])
	}

	// No PART2 marker: fenced code blocks in the prose become the code
	// payload and are stripped from the answer.
	if parts.Code == "" {
		if blocks := fencedRe.FindAllString(parts.Answer, -1); len(blocks) > 0 {
			parts.Code = strings.Join(blocks, "\n\n")
			parts.Answer = strings.TrimSpace(fencedRe.ReplaceAllString(parts.Answer, ""))
		}
	}

	parts.Answer = strings.TrimSpace(leadingPart1Re.ReplaceAllString(parts.Answer, ""))
	parts.Code = strings.TrimSpace(leadingPart2Re.ReplaceAllString(parts.Code, ""))

	if parts.Answer == "" {
		parts.Answer = raw
	}

	return parts
}

// parseArticles reads "Title: Description - ThumbnailURL - URL" lines, one
// article per line. The thumbnail is optional; lines without a URL are skipped.
func parseArticles(text string) []chat.Article {
	var items []chat.Article
	for _, line := range strings.Split(text, "\n") {
		if len(items) == maxArticles {
			break
		}

		title, rest, ok := splitTitle(line)
		if !ok {
			continue
		}

		urls := urlRe.FindAllString(rest, -1)
		if len(urls) == 0 {
			continue
		}

		item := chat.Article{
			Title: title,
			URL:   trimURL(urls[len(urls)-1]),
		}
		if len(urls) > 1 {
			item.ThumbnailURL = trimURL(urls[len(urls)-2])
		}
		item.Description = describeOr(descriptionBefore(rest), "Learn more about this topic")
		items = append(items, item)
	}
	return items
}

// parseVideos reads "Title: Description - Duration - ThumbnailURL - URL" lines.
// Duration is M:SS or MM:SS and is required; the thumbnail is optional.
func parseVideos(text string) []chat.Video {
	var items []chat.Video
	for _, line := range strings.Split(text, "\n") {
		if len(items) == maxVideos {
			break
		}

		title, rest, ok := splitTitle(line)
		if !ok {
			continue
		}

		urls := urlRe.FindAllString(rest, -1)
		if len(urls) == 0 {
			continue
		}

		duration := durationRe.FindString(urlRe.ReplaceAllString(rest, ""))
		if duration == "" {
			continue
		}

		item := chat.Video{
			Title:    title,
			Duration: duration,
			URL:      trimURL(urls[len(urls)-1]),
		}
		if len(urls) > 1 {
			item.ThumbnailURL = trimURL(urls[len(urls)-2])
		}

		desc := descriptionBefore(rest)
		desc = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(strings.Replace(desc, duration, "", 1)), "-"))
		item.Description = describeOr(desc, "Watch this educational video")
		items = append(items, item)
	}
	return items
}

func splitTitle(line string) (title, rest string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}
	title, rest, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	title = strings.TrimSpace(title)
	rest = strings.TrimSpace(rest)
	if title == "" || rest == "" {
		return "", "", false
	}
	return title, rest, true
}

// descriptionBefore returns the text preceding the first URL, with the
// trailing field separator removed.
func descriptionBefore(rest string) string {
	if loc := urlRe.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	rest = strings.TrimSpace(rest)
	return strings.TrimSpace(strings.TrimSuffix(rest, "-"))
}

func describeOr(desc, fallback string) string {
	if desc == "" {
		return fallback
	}
	return desc
}

// trimURL drops punctuation the URL regexp may have swallowed at line end.
func trimURL(u string) string {
	return strings.TrimRight(u, ".,;)")
}
