package domain

import "errors"

// Classified failures for the fetch and generate pipeline.
// These errors are wrapped with context by the adapters and can be checked
// with errors.Is at any layer.
var (
	// ErrAccountNotFound is returned when the handle resolves to no account.
	ErrAccountNotFound = errors.New("tweetsight: account not found")

	// ErrAccountPrivate is returned when the account is private or protected.
	ErrAccountPrivate = errors.New("tweetsight: account is private")

	// ErrRateLimited is returned when the provider rejects the call for
	// exceeding its rate limits.
	ErrRateLimited = errors.New("tweetsight: rate limited")

	// ErrUnauthorized is returned when the provider rejects the configured
	// credentials. Retrying with the same credentials cannot succeed.
	ErrUnauthorized = errors.New("tweetsight: authentication rejected")

	// ErrNetwork is returned for transport-level failures (timeout, DNS,
	// connection reset) and provider-side 5xx responses.
	ErrNetwork = errors.New("tweetsight: network error")

	// ErrGeneration is returned when the insight service fails to produce a
	// response.
	ErrGeneration = errors.New("tweetsight: generation failed")

	// ErrParse is returned when a generation response arrives but contains
	// nothing parsable.
	ErrParse = errors.New("tweetsight: unparsable generation response")
)

// Retryable reports whether the failure is transient and worth retrying.
// Terminal failures (not found, private, parse) must be propagated after a
// single attempt.
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrGeneration)
}

// UserMessage maps a classified failure to the one-line message shown on the
// console. Raw transport detail stays in the logs.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return "account not found"
	case errors.Is(err, ErrAccountPrivate):
		return "account is private"
	case errors.Is(err, ErrRateLimited):
		return "rate limit exceeded - please wait and retry"
	case errors.Is(err, ErrUnauthorized):
		return "authentication failed - check your API credentials"
	case errors.Is(err, ErrParse):
		return "could not make sense of the insight service response"
	case errors.Is(err, ErrGeneration):
		return "could not reach the insight service - please try again"
	case errors.Is(err, ErrNetwork):
		return "network error - please check your connection and try again"
	default:
		return "unexpected error - please try again"
	}
}
