package speech

import (
	"testing"

	"google.golang.org/genai"
)

func TestVoiceCandidatesHindi(t *testing.T) {
	cases := []struct {
		lang       string
		avatarType string
	}{
		{"hi", "computer-teacher"},
		{"hi-IN", "computer-teacher"},
		{"HI", "computer-teacher"},
		{"en", "hindi-teacher"},
		{"", "hindi-teacher"},
	}

	for _, tc := range cases {
		voices := voiceCandidates(tc.lang, tc.avatarType)
		if len(voices) == 0 || voices[0] != "hi-IN-Neural2-D" {
			t.Fatalf("lang=%q avatar=%q: expected Hindi voices first, got %v", tc.lang, tc.avatarType, voices)
		}
	}
}

func TestVoiceCandidatesEnglishDefault(t *testing.T) {
	voices := voiceCandidates("en-US", "biology-teacher")
	if len(voices) != 1 || voices[0] != "en-US-Standard-A" {
		t.Fatalf("unexpected default voices: %v", voices)
	}
}

func TestExtractAudio(t *testing.T) {
	if got := extractAudio(nil); got != nil {
		t.Fatalf("nil response should yield nil, got %v", got)
	}

	empty := &genai.GenerateContentResponse{}
	if got := extractAudio(empty); got != nil {
		t.Fatalf("empty response should yield nil, got %v", got)
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: &genai.Content{Parts: []*genai.Part{
				{},
				{InlineData: &genai.Blob{Data: []byte{1, 2, 3}}},
			}}},
		},
	}
	got := extractAudio(resp)
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("unexpected audio bytes: %v", got)
	}
}
