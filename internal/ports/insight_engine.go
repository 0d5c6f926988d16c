package ports

import (
	"context"

	"github.com/lakshcode9/tweetsight/internal/domain"
)

// InsightEngine turns a non-empty set of posts into a fixed-size insight set.
// Implementations classify failures into the domain taxonomy; they do not
// retry.
type InsightEngine interface {
	// Generate composes a prompt from the posts, submits it to a
	// text-generation service, and parses the response.
	//
	// Called with zero posts it fails with domain.ErrGeneration. Service-side
	// and transport failures are domain.ErrGeneration (retryable); a response
	// that yields no parsable insight at all is domain.ErrParse (terminal).
	Generate(ctx context.Context, posts []domain.Post) (domain.InsightSet, error)
}
