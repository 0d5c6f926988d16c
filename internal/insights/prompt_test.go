package insights

import (
	"strings"
	"testing"

	"github.com/lakshcode9/tweetsight/internal/domain"
)

func TestBuildPromptNumbersPosts(t *testing.T) {
	posts := []domain.Post{
		{Text: "shipping the new release today"},
		{Text: "docs are live"},
	}

	got := BuildPrompt(posts)

	if !strings.Contains(got, "Analyze the following 2 tweets") {
		t.Errorf("prompt missing post count header:\n%s", got)
	}
	if !strings.Contains(got, "Tweet 1: shipping the new release today") {
		t.Errorf("prompt missing first post:\n%s", got)
	}
	if !strings.Contains(got, "Tweet 2: docs are live") {
		t.Errorf("prompt missing second post:\n%s", got)
	}
	if idx1, idx2 := strings.Index(got, "Tweet 1:"), strings.Index(got, "Tweet 2:"); idx1 > idx2 {
		t.Errorf("posts out of order: Tweet 1 at %d, Tweet 2 at %d", idx1, idx2)
	}
}

func TestBuildPromptIncludesMetricsWhenPresent(t *testing.T) {
	posts := []domain.Post{
		{Text: "popular take", Likes: 42, Retweets: 7, Replies: 3},
		{Text: "quiet post"},
	}

	got := BuildPrompt(posts)

	if !strings.Contains(got, "Tweet 1: popular take [likes: 42, retweets: 7, replies: 3]") {
		t.Errorf("metrics annotation missing:\n%s", got)
	}
	if strings.Contains(got, "quiet post [") {
		t.Errorf("metrics annotation emitted for post without metrics:\n%s", got)
	}
}

func TestBuildPromptCarriesRequirements(t *testing.T) {
	got := BuildPrompt([]domain.Post{{Text: "hello"}})

	for _, want := range []string{
		"exactly 3 concise, actionable insights",
		"numbered list (1-3)",
		"Requirements:",
		"Number each insight (1, 2, 3)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}
