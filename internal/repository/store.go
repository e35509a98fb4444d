// Package repository contains data access logic separated from business
// rules. One generic Store interface is implemented twice: MemStore keeps
// entities in a process-lifetime map, the MySQL stores persist them with
// real foreign-key and unique constraints. The facade works unmodified
// against either.
package repository

import (
	"context"
	"errors"

	"github.com/holbertonschool/hbnb/internal/model"
)

// ErrNotFound is returned when a lookup does not resolve. It stands in
// for the absent-value signal so callers can branch with errors.Is
// instead of inspecting messages.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a storage-level unique constraint
// rejects a write (e.g. two concurrent creates of the same unique pair).
// The facade translates it into a business conflict; it never reaches
// handlers raw.
var ErrDuplicate = errors.New("duplicate")

// Store is the persistence-agnostic CRUD surface keyed by entity id.
//
//   - Add inserts; an existing id is silently overwritten (duplicate
//     prevention is a business rule, not a storage guard).
//   - Get and GetByAttribute report a missing entity as ErrNotFound.
//   - Update loads the entity, delegates to its ApplyPatch and persists
//     the result.
//   - Delete is idempotent: deleting an absent id is a nil no-op.
type Store[T model.Entity] interface {
	Add(ctx context.Context, e T) error
	Get(ctx context.Context, id string) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, patch map[string]any) (T, error)
	Delete(ctx context.Context, id string) error
	GetByAttribute(ctx context.Context, name, value string) (T, error)
}

// UserStore persists users. Email lookups go through GetByAttribute.
type UserStore interface {
	Store[*model.User]
}

// AmenityStore persists amenities.
type AmenityStore interface {
	Store[*model.Amenity]
}

// PlaceStore persists places and their amenity associations. Add must
// write the place and its association rows atomically, and Update must
// apply scalar changes and a resolved "amenities" replacement in one
// atomic write as well.
type PlaceStore interface {
	Store[*model.Place]
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Place, error)
	DetachAmenity(ctx context.Context, amenityID string) error
}

// ReviewStore persists reviews. DeleteByPlace supports the cascade when a
// place is removed.
type ReviewStore interface {
	Store[*model.Review]
	ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Review, error)
	DeleteByPlace(ctx context.Context, placeID string) error
}

// Stores bundles the four entity stores. It is built once at startup and
// handed to the facade, so a test can swap in any combination of
// backends.
type Stores struct {
	Users     UserStore
	Places    PlaceStore
	Amenities AmenityStore
	Reviews   ReviewStore
}
