package ports

import (
	"context"

	"github.com/lakshcode9/tweetsight/internal/domain"
)

// PostSource resolves an account handle and retrieves its most recent posts.
// Implementations classify failures into the domain taxonomy; they do not
// retry. Retrying is the caller's concern.
type PostSource interface {
	// FetchRecent returns up to limit posts for the handle, newest first.
	// An account with fewer than limit posts returns all available posts;
	// that is not an error. The handle is expected to be normalized already.
	//
	// Classified failures: domain.ErrAccountNotFound, domain.ErrAccountPrivate,
	// domain.ErrRateLimited, domain.ErrNetwork.
	FetchRecent(ctx context.Context, handle string, limit int) ([]domain.Post, error)
}
