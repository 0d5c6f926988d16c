// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [PostSource]: Resolves a handle and fetches its most recent posts
//   - [InsightEngine]: Turns a set of posts into a fixed-size insight set
//   - [Logger]: Structured logging abstraction
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// # Usage
//
// The session loop (internal/session) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (Twitter API, OpenRouter, zerolog, etc.).
//
// This separation enables:
//   - Testing the session loop with stub implementations
//   - Swapping providers without changing the loop
//   - Clear boundaries and dependency direction
package ports
