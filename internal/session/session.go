// Package session runs the interactive analyze loop: read a handle, fetch
// its recent posts, generate insights, render, repeat. The loop is an
// explicit state machine so the behavior on each failure kind and the abort
// points are individually verifiable.
package session

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lakshcode9/tweetsight/internal/domain"
	"github.com/lakshcode9/tweetsight/internal/ports"
	"github.com/lakshcode9/tweetsight/internal/retry"
)

// exitTokens end the loop when entered at the prompt, case-insensitive.
var exitTokens = map[string]bool{
	"quit": true,
	"exit": true,
	"q":    true,
}

// Config contains configuration for the session loop.
type Config struct {
	// FetchLimit is the number of recent posts requested per handle.
	FetchLimit int

	// Policy is the backoff schedule shared by both network calls.
	Policy retry.Policy
}

// Session orchestrates one request cycle per user-entered handle.
type Session struct {
	config Config
	source ports.PostSource
	engine ports.InsightEngine
	logger ports.Logger
	out    io.Writer
	in     io.Reader

	state State
}

// New creates a session reading handles from in and rendering to out.
func New(
	config Config,
	source ports.PostSource,
	engine ports.InsightEngine,
	logger ports.Logger,
	in io.Reader,
	out io.Writer,
) *Session {
	if config.FetchLimit < 1 {
		config.FetchLimit = 5
	}
	return &Session{
		config: config,
		source: source,
		engine: engine,
		logger: logger,
		in:     in,
		out:    out,
		state:  StateAwaitInput,
	}
}

// State returns the loop's current state.
func (s *Session) State() State {
	return s.state
}

// Run executes the interactive loop until an exit token, end of input, or
// context cancellation. Per-request failures never terminate the loop.
func (s *Session) Run(ctx context.Context) error {
	s.renderBanner()

	// Reading happens on its own goroutine so an interrupt is honored even
	// while the loop is blocked on the terminal.
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		s.transition(StateAwaitInput)
		s.renderPrompt()

		var line string
		select {
		case <-ctx.Done():
			s.transition(StateExiting)
			s.renderFarewell()
			return nil
		case l, ok := <-lines:
			if !ok {
				s.transition(StateExiting)
				s.renderFarewell()
				return nil
			}
			line = l
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			s.renderEmptyInput()
			continue
		}
		if exitTokens[strings.ToLower(trimmed)] {
			s.transition(StateExiting)
			s.renderFarewell()
			return nil
		}

		s.analyze(ctx, domain.NormalizeHandle(trimmed))

		if ctx.Err() != nil {
			s.transition(StateExiting)
			s.renderFarewell()
			return nil
		}
	}
}

// RunOnce performs a single non-interactive analysis for the handle.
// The classified failure is returned so scripted runs can exit non-zero.
func (s *Session) RunOnce(ctx context.Context, handle string) error {
	return s.analyze(ctx, domain.NormalizeHandle(handle))
}

// analyze drives one fetch, generate, render cycle.
func (s *Session) analyze(ctx context.Context, handle string) error {
	requestID := uuid.NewString()
	s.logger.Info("analyzing handle",
		ports.String("handle", handle),
		ports.String("request_id", requestID),
	)
	s.renderAnalyzing(handle)

	s.transition(StateFetching)
	posts, err := retry.DoValue(ctx, s.config.Policy, func(ctx context.Context) ([]domain.Post, error) {
		return s.source.FetchRecent(ctx, handle, s.config.FetchLimit)
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.failCycle(handle, requestID, "fetch failed", err)
		return err
	}

	if len(posts) == 0 {
		s.transition(StateRendering)
		s.renderNoPosts(handle)
		return nil
	}
	if len(posts) < s.config.FetchLimit {
		s.renderShortTimeline(len(posts))
	}

	s.transition(StateGenerating)
	s.renderGenerating()
	set, err := retry.DoValue(ctx, s.config.Policy, func(ctx context.Context) (domain.InsightSet, error) {
		return s.engine.Generate(ctx, posts)
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.failCycle(handle, requestID, "generation failed", err)
		return err
	}

	s.transition(StateRendering)
	s.renderInsights(handle, set, len(posts))
	s.logger.Info("analysis complete",
		ports.String("handle", handle),
		ports.String("request_id", requestID),
		ports.Int("posts", len(posts)),
		ports.Int("padded", set.Padded()),
	)
	return nil
}

// failCycle logs the raw failure and renders its plain one-line message.
// Stack traces and transport detail never reach the console.
func (s *Session) failCycle(handle, requestID, msg string, err error) {
	s.logger.Error(msg,
		ports.String("handle", handle),
		ports.String("request_id", requestID),
		ports.Err(err),
	)
	s.transition(StateRendering)
	s.renderError(domain.UserMessage(err))
}

// transition moves the state machine, logging at debug level.
func (s *Session) transition(next State) {
	if s.state == next {
		return
	}
	s.logger.Debug("state transition",
		ports.String("from", s.state.String()),
		ports.String("to", next.String()),
	)
	s.state = next
}
