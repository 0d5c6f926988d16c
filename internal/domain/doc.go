// Package domain contains the core domain entities and value objects for
// tweetsight.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (HTTP, terminal I/O, logging) and
// contains only pure business rules.
//
// # Entities
//
//   - [Post]: A single public post from an account's timeline
//   - [InsightSet]: The fixed-size ordered set of insights rendered to the user
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
//
// The package also defines the classified failure taxonomy shared by the
// adapters, the retrier, and the session loop.
package domain
