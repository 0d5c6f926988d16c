// Package insights builds generation prompts and parses model responses into
// a fixed-size insight set. Both halves are pure so they can be tested
// against literal samples without any network dependency.
package insights

import (
	"fmt"
	"strings"

	"github.com/lakshcode9/tweetsight/internal/domain"
)

const promptHeader = "Analyze the following %d tweets and generate exactly 3 concise, actionable insights. " +
	"Focus on sentiment, main topics, trends, or notable patterns. " +
	"Each insight must be unique and specific to the content provided. " +
	"Format your response as a numbered list (1-3)."

const promptFooter = `Requirements:
- Each insight should be 1-2 sentences
- Focus on actionable observations
- Avoid vague statements
- Be specific to the tweet content
- Number each insight (1, 2, 3)`

// BuildPrompt composes the single generation prompt embedding the post texts
// and, when present, their engagement counts.
func BuildPrompt(posts []domain.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, len(posts))
	b.WriteString("\n\nTweets to analyze:\n")

	for i, p := range posts {
		fmt.Fprintf(&b, "Tweet %d: %s", i+1, p.Text)
		if p.HasMetrics() {
			fmt.Fprintf(&b, " [likes: %d, retweets: %d, replies: %d]", p.Likes, p.Retweets, p.Replies)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(promptFooter)
	return b.String()
}
