package askdata

import (
	"strings"
	"testing"

	"tweetlens/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	tweets := []models.AnnotatedTweet{
		{Tweet: "first tweet"},
		{Tweet: "second tweet"},
	}

	prompt := BuildPrompt("What is the mood?", tweets)

	want := "What is the mood?\n\nTweets:\nfirst tweet second tweet"
	if prompt != want {
		t.Errorf("BuildPrompt = %q, want %q", prompt, want)
	}
}

func TestBuildPromptNoTweets(t *testing.T) {
	prompt := BuildPrompt("Anything?", nil)

	if !strings.HasPrefix(prompt, "Anything?") {
		t.Errorf("expected question to lead the prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "Tweets:") {
		t.Errorf("expected the tweets header even when empty, got %q", prompt)
	}
}

func TestPromptForMode(t *testing.T) {
	cases := []struct {
		mode     string
		question string
		want     string
	}{
		{"summarize", "ignored", SummarizePrompt},
		{"suggest", "ignored", SuggestPrompt},
		{"", "my own question", "my own question"},
		{"unknown", "fallback", "fallback"},
	}

	for _, tc := range cases {
		if got := PromptForMode(tc.mode, tc.question); got != tc.want {
			t.Errorf("PromptForMode(%q, %q) = %q, want %q", tc.mode, tc.question, got, tc.want)
		}
	}
}

func TestCacheKeyStableAndPrefixed(t *testing.T) {
	a := cacheKey("same prompt")
	b := cacheKey("same prompt")
	c := cacheKey("different prompt")

	if a != b {
		t.Error("expected identical prompts to share a cache key")
	}
	if a == c {
		t.Error("expected different prompts to get different cache keys")
	}
	if !strings.HasPrefix(a, "askdata:answer:") {
		t.Errorf("expected namespaced cache key, got %q", a)
	}
}

func TestNewAnswerRendersMarkdown(t *testing.T) {
	answer := newAnswer("req-1", "# Insights\n\nMostly positive.", false)

	if !strings.Contains(answer.AnswerHTML, "<h1") {
		t.Errorf("expected rendered heading in HTML, got %q", answer.AnswerHTML)
	}
	if answer.Answer != "# Insights\n\nMostly positive." {
		t.Errorf("expected raw markdown preserved, got %q", answer.Answer)
	}
	if answer.Cached {
		t.Error("expected fresh answer to be marked uncached")
	}
}
