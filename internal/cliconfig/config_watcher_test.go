package cliconfig

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// syncBuffer makes zerolog output safe to read while the watcher goroutine
// is still writing.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func waitForLog(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Errorf("log output = %q, want it to contain %q", buf.String(), want)
}

func TestConfigWatcherWarnsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(`fetch_limit = 5`), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	buf := &syncBuffer{}
	logger := zerolog.New(buf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewConfigWatcher(logger, cfgPath)
	go w.Run(ctx)

	// Give the watcher time to register the directory.
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(cfgPath, []byte(`fetch_limit = 3`), 0644); err != nil {
		t.Fatalf("Failed to rewrite config file: %v", err)
	}

	waitForLog(t, buf, "restart tweetsight to apply")
}

func TestConfigWatcherNoticesFileCreatedLater(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")

	buf := &syncBuffer{}
	logger := zerolog.New(buf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Watch a path that does not exist yet.
	w := NewConfigWatcher(logger, envPath)
	go w.Run(ctx)

	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(envPath, []byte("TWITTER_BEARER_TOKEN=x\n"), 0644); err != nil {
		t.Fatalf("Failed to create env file: %v", err)
	}

	waitForLog(t, buf, "restart tweetsight to apply")
}

func TestConfigWatcherIgnoresUnrelatedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.toml")
	otherPath := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(cfgPath, []byte(`fetch_limit = 5`), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	buf := &syncBuffer{}
	logger := zerolog.New(buf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewConfigWatcher(logger, cfgPath)
	go w.Run(ctx)

	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(otherPath, []byte("scratch"), 0644); err != nil {
		t.Fatalf("Failed to create unrelated file: %v", err)
	}

	// Longer than the debounce window; no warning should appear.
	time.Sleep(300 * time.Millisecond)

	if got := buf.String(); strings.Contains(got, "restart tweetsight") {
		t.Errorf("unexpected warning for unrelated file: %q", got)
	}
}

func TestConfigWatcherNoPathsReturnsImmediately(t *testing.T) {
	buf := &syncBuffer{}
	logger := zerolog.New(buf)

	w := NewConfigWatcher(logger)

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("Run did not return for a watcher with no paths")
	}
}
