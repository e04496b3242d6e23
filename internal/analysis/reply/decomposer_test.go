package reply

import (
	"strings"
	"testing"
)

func TestDecomposeAllMarkers(t *testing.T) {
	raw := "PART1: Hello\nPART2: ```print(1)```\nRELATED_ARTICLES: Foo: bar - http://x\nRELATED_VIDEOS: Baz: qux - 1:23 - http://y"

	parts := Decompose(raw)

	if parts.Answer != "Hello" {
		t.Fatalf("unexpected answer: %q", parts.Answer)
	}
	if !strings.Contains(parts.Code, "```print(1)```") {
		t.Fatalf("unexpected code: %q", parts.Code)
	}
	if len(parts.Articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(parts.Articles))
	}
	if parts.Articles[0].Title != "Foo" || parts.Articles[0].URL != "http://x" {
		t.Fatalf("unexpected article: %+v", parts.Articles[0])
	}
	if len(parts.Videos) != 1 {
		t.Fatalf("expected 1 video, got %d", len(parts.Videos))
	}
	video := parts.Videos[0]
	if video.Title != "Baz" || video.Duration != "1:23" || video.URL != "http://y" {
		t.Fatalf("unexpected video: %+v", video)
	}
}

func TestDecomposeNoMarkers(t *testing.T) {
	raw := "Just a plain explanation with no structure at all."

	parts := Decompose(raw)

	if parts.Answer != raw {
		t.Fatalf("answer should be the full input, got %q", parts.Answer)
	}
	if parts.Code != "" {
		t.Fatalf("expected empty code, got %q", parts.Code)
	}
	if len(parts.Articles) != 0 || len(parts.Videos) != 0 {
		t.Fatalf("expected no suggestions, got %d articles %d videos", len(parts.Articles), len(parts.Videos))
	}
}

func TestDecomposeFencedCodeExtraction(t *testing.T) {
	raw := "Here is how you print.\n```java\nSystem.out.println(1);\n```\nThat is all."

	parts := Decompose(raw)

	if !strings.Contains(parts.Code, "System.out.println(1);") {
		t.Fatalf("fenced block not extracted: %q", parts.Code)
	}
	if strings.Contains(parts.Answer, "println") {
		t.Fatalf("fenced block not stripped from answer: %q", parts.Answer)
	}
	if !strings.Contains(parts.Answer, "Here is how you print.") {
		t.Fatalf("prose lost: %q", parts.Answer)
	}
}

func TestDecomposeCaseInsensitiveMarkers(t *testing.T) {
	raw := "part1: lower case works\npart2: still code"

	parts := Decompose(raw)

	if parts.Answer != "lower case works" {
		t.Fatalf("unexpected answer: %q", parts.Answer)
	}
	if parts.Code != "still code" {
		t.Fatalf("unexpected code: %q", parts.Code)
	}
}

func TestDecomposeMissingPart1(t *testing.T) {
	raw := "Intro prose before any label.\nPART2: code here"

	parts := Decompose(raw)

	if parts.Answer != "Intro prose before any label." {
		t.Fatalf("unexpected answer: %q", parts.Answer)
	}
	if parts.Code != "code here" {
		t.Fatalf("unexpected code: %q", parts.Code)
	}
}

func TestDecomposeNeverEmptyAnswer(t *testing.T) {
	raw := "```python\nprint(1)\n```"

	parts := Decompose(raw)

	if parts.Answer == "" {
		t.Fatal("answer must not be empty when input has text")
	}
}

func TestDecomposeArticleCapAndMalformedLines(t *testing.T) {
	lines := []string{
		"A: one - http://a",
		"not a valid line",
		"B: two - http://thumb.example/b.png - http://b",
		"C: three - http://c",
		"D: four - http://d",
		"E: five - http://e",
	}
	raw := "PART1: hi\nRELATED_ARTICLES:\n" + strings.Join(lines, "\n")

	parts := Decompose(raw)

	if len(parts.Articles) != 4 {
		t.Fatalf("expected cap of 4 articles, got %d", len(parts.Articles))
	}
	if parts.Articles[1].ThumbnailURL != "http://thumb.example/b.png" {
		t.Fatalf("thumbnail not parsed: %+v", parts.Articles[1])
	}
	if parts.Articles[1].URL != "http://b" {
		t.Fatalf("url not parsed: %+v", parts.Articles[1])
	}
}

func TestDecomposeVideoCapAndDurationRequired(t *testing.T) {
	lines := []string{
		"A: one - 1:00 - http://a",
		"B: missing duration - http://b",
		"C: three - 10:30 - http://thumb.example/c.png - http://c",
		"D: four - 2:05 - http://d",
		"E: five - 3:45 - http://e",
	}
	raw := "PART1: hi\nRELATED_VIDEOS:\n" + strings.Join(lines, "\n")

	parts := Decompose(raw)

	if len(parts.Videos) != 3 {
		t.Fatalf("expected cap of 3 videos, got %d", len(parts.Videos))
	}
	for _, v := range parts.Videos {
		if v.Title == "B" {
			t.Fatalf("video without duration should be skipped: %+v", v)
		}
	}
	if parts.Videos[1].ThumbnailURL != "http://thumb.example/c.png" || parts.Videos[1].URL != "http://c" {
		t.Fatalf("thumbnail/url not parsed: %+v", parts.Videos[1])
	}
	if parts.Videos[1].Duration != "10:30" {
		t.Fatalf("duration not parsed: %+v", parts.Videos[1])
	}
}

func TestDecomposeDefaultDescriptions(t *testing.T) {
	raw := "PART1: hi\nRELATED_ARTICLES:\nOnly: http://a\nRELATED_VIDEOS:\nClip: 1:23 - http://b"

	parts := Decompose(raw)

	if len(parts.Articles) != 1 || parts.Articles[0].Description != "Learn more about this topic" {
		t.Fatalf("missing default article description: %+v", parts.Articles)
	}
	if len(parts.Videos) != 1 || parts.Videos[0].Description != "Watch this educational video" {
		t.Fatalf("missing default video description: %+v", parts.Videos)
	}
}
