package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", ErrRateLimited, true},
		{"network", ErrNetwork, true},
		{"generation", ErrGeneration, true},
		{"not found", ErrAccountNotFound, false},
		{"unauthorized", ErrUnauthorized, false},
		{"private", ErrAccountPrivate, false},
		{"parse", ErrParse, false},
		{"wrapped rate limited", fmt.Errorf("lookup: %w", ErrRateLimited), true},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrAccountNotFound), false},
		{"unclassified", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Retryable(tt.err); got != tt.want {
				t.Errorf("Retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrAccountNotFound, "account not found"},
		{ErrAccountPrivate, "account is private"},
		{ErrRateLimited, "rate limit exceeded - please wait and retry"},
		{ErrUnauthorized, "authentication failed - check your API credentials"},
		{fmt.Errorf("fetch: %w", ErrNetwork), "network error - please check your connection and try again"},
		{ErrGeneration, "could not reach the insight service - please try again"},
		{ErrParse, "could not make sense of the insight service response"},
		{errors.New("boom"), "unexpected error - please try again"},
	}

	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
