package domain

import (
	"strings"
	"time"
)

// Post represents a single public post fetched from an account's timeline.
type Post struct {
	// Text is the post body. Never empty for a fetched post.
	Text string

	// CreatedAt is the post's publication time, when the provider reports it.
	CreatedAt time.Time

	// Engagement counts. Zero when the provider omits public metrics.
	Likes    int
	Retweets int
	Replies  int
}

// HasMetrics reports whether the post carries any engagement counts.
func (p Post) HasMetrics() bool {
	return p.Likes > 0 || p.Retweets > 0 || p.Replies > 0
}

// NormalizeHandle canonicalizes a user-entered account handle: surrounding
// whitespace is trimmed and leading "@" markers are stripped. The operation
// is idempotent.
func NormalizeHandle(raw string) string {
	h := strings.TrimSpace(raw)
	h = strings.TrimLeft(h, "@")
	return strings.TrimSpace(h)
}
