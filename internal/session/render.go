package session

import (
	"fmt"
	"strings"

	"github.com/lakshcode9/tweetsight/internal/domain"
)

const promptText = "Enter Twitter username (with or without @): "

// separator bounds each rendered insight block.
var separator = strings.Repeat("=", 50)

func (s *Session) renderBanner() {
	fmt.Fprintln(s.out, "Tweet Insight Agent")
	fmt.Fprintln(s.out, strings.Repeat("=", 30))
	fmt.Fprintln(s.out, "Analyze Twitter accounts and get actionable insights.")
	fmt.Fprintln(s.out, "Type 'quit' or 'exit' to stop.")
	fmt.Fprintln(s.out)
}

func (s *Session) renderPrompt() {
	fmt.Fprint(s.out, promptText)
}

func (s *Session) renderEmptyInput() {
	fmt.Fprintln(s.out, "Please enter a valid username.")
}

func (s *Session) renderAnalyzing(handle string) {
	fmt.Fprintf(s.out, "\nAnalyzing @%s...\n", handle)
}

func (s *Session) renderShortTimeline(n int) {
	fmt.Fprintf(s.out, "Found %d tweets (less than %d available)\n", n, s.config.FetchLimit)
}

func (s *Session) renderGenerating() {
	fmt.Fprintln(s.out, "Generating insights...")
}

func (s *Session) renderNoPosts(handle string) {
	fmt.Fprintf(s.out, "No tweets found for @%s\n", handle)
}

func (s *Session) renderError(msg string) {
	fmt.Fprintf(s.out, "Error: %s\n", msg)
}

func (s *Session) renderInsights(handle string, set domain.InsightSet, postCount int) {
	fmt.Fprintf(s.out, "\nInsights for @%s:\n", handle)
	fmt.Fprintln(s.out, separator)
	for i, insight := range set {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, insight)
	}
	fmt.Fprintln(s.out, separator)
	if postCount < s.config.FetchLimit {
		fmt.Fprintf(s.out, "(based on %d tweets)\n", postCount)
	}
}

func (s *Session) renderFarewell() {
	fmt.Fprintln(s.out, "Goodbye!")
}
