// Package twitter implements ports.PostSource against the Twitter API v2
// using an application-only bearer token.
package twitter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lakshcode9/tweetsight/internal/domain"
	"github.com/lakshcode9/tweetsight/internal/ports"
)

// DefaultBaseURL is the Twitter API v2 endpoint.
const DefaultBaseURL = "https://api.twitter.com"

// apiMinResults is the smallest max_results the tweets endpoint accepts.
const apiMinResults = 5

// Client fetches recent posts for a handle. It classifies failures into the
// domain taxonomy and never retries; the retry loop lives one layer up.
type Client struct {
	baseURL string
	bearer  string
	client  ports.HTTPClient
	logger  ports.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// New creates a Twitter post source authenticating with the given bearer
// token.
func New(bearerToken string, client ports.HTTPClient, logger ports.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		bearer:  bearerToken,
		client:  client,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRecent implements ports.PostSource.
func (c *Client) FetchRecent(ctx context.Context, handle string, limit int) ([]domain.Post, error) {
	if limit < 1 {
		limit = 1
	}

	user, err := c.lookupUser(ctx, handle)
	if err != nil {
		return nil, err
	}
	if user.Protected {
		return nil, fmt.Errorf("user %q: %w", handle, domain.ErrAccountPrivate)
	}

	posts, err := c.userTweets(ctx, user.ID, limit)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched posts",
		ports.String("handle", handle),
		ports.Int("count", len(posts)),
	)
	return posts, nil
}

// lookupUser resolves a normalized handle to an opaque user id and the
// protected flag.
func (c *Client) lookupUser(ctx context.Context, handle string) (*userResult, error) {
	endpoint := fmt.Sprintf("%s/2/users/by/username/%s?user.fields=protected",
		c.baseURL, url.PathEscape(handle))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", handle, err)
	}

	user, err := parseUserLookup(body)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", handle, err)
	}
	return user, nil
}

// userTweets retrieves up to limit most recent tweets, newest first.
func (c *Client) userTweets(ctx context.Context, userID string, limit int) ([]domain.Post, error) {
	// The endpoint rejects max_results below 5; request the floor and
	// truncate locally.
	maxResults := limit
	if maxResults < apiMinResults {
		maxResults = apiMinResults
	}

	endpoint := fmt.Sprintf("%s/2/users/%s/tweets?max_results=%d&tweet_fields=created_at,public_metrics",
		c.baseURL, url.PathEscape(userID), maxResults)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("tweets for user %s: %w", userID, err)
	}

	posts, err := parseTweets(body)
	if err != nil {
		return nil, fmt.Errorf("tweets for user %s: %w", userID, err)
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// get issues an authenticated GET and classifies non-2xx outcomes.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer)
	req.Header.Set("User-Agent", "tweetsight")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode/100 != 2 {
		return nil, classifyStatus(resp.StatusCode, resp.Header)
	}
	return body, nil
}

// classifyStatus maps a non-2xx response to the domain taxonomy.
func classifyStatus(status int, header http.Header) error {
	switch {
	case status == http.StatusTooManyRequests:
		reset := parseRateLimitReset(header.Get("x-rate-limit-reset"))
		return fmt.Errorf("%w: reset at %s", domain.ErrRateLimited, reset.Format(time.RFC3339))
	case status == http.StatusNotFound:
		return domain.ErrAccountNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("status %d: %w", status, domain.ErrUnauthorized)
	case status/100 == 5:
		return fmt.Errorf("%w: server returned %d", domain.ErrNetwork, status)
	default:
		return fmt.Errorf("twitter: unexpected status %d", status)
	}
}

// parseRateLimitReset parses the x-rate-limit-reset unix timestamp header.
// Falls back to 15 minutes from now if missing or invalid.
func parseRateLimitReset(v string) time.Time {
	if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(ts, 0)
	}
	return time.Now().Add(15 * time.Minute)
}
