// Package facade is the single entry point API handlers call. It owns
// every cross-entity rule: uniqueness, relationship resolution,
// association management and the cascade on place deletion. Storage-level
// failures are translated into the domain error taxonomy here and
// nowhere else.
package facade

import (
	"context"

	"github.com/holbertonschool/hbnb/internal/queue"
	"github.com/holbertonschool/hbnb/internal/repository"
)

// EventPublisher receives domain events after successful writes.
// Implementations must be best-effort; the facade never waits on or
// fails because of event delivery.
type EventPublisher interface {
	UserRegistered(ctx context.Context, ev queue.UserRegisteredEvent)
	ReviewCreated(ctx context.Context, ev queue.ReviewCreatedEvent)
}

// Facade mediates all entity operations. It is constructed once at
// process start with its stores injected, so tests can run it against
// the in-memory backend without any wiring changes.
type Facade struct {
	stores     repository.Stores
	events     EventPublisher // optional, may be nil
	bcryptCost int
}

// New builds a facade over the given stores. events may be nil to
// disable publishing.
func New(stores repository.Stores, events EventPublisher, bcryptCost int) *Facade {
	return &Facade{stores: stores, events: events, bcryptCost: bcryptCost}
}
