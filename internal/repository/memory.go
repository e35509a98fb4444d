package repository

import (
	"context"
	"sync"

	"github.com/holbertonschool/hbnb/internal/model"
)

// MemStore is the in-memory Store variant: a map keyed by entity id plus
// an insertion-order slice so GetAll stays deterministic. A single
// RWMutex guards the map, and every entity crossing the store boundary
// is cloned — callers never hold a pointer into the store, so an Update
// can never race a previously returned read. Contents live for the
// process lifetime only.
type MemStore[T interface {
	model.Entity
	Clone() T
}] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore[T interface {
	model.Entity
	Clone() T
}]() *MemStore[T] {
	return &MemStore[T]{items: make(map[string]T)}
}

// Add inserts a copy of the entity. An already-known id is overwritten
// silently and keeps its original position.
func (s *MemStore[T]) Add(_ context.Context, e T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := e.EntityID()
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = e.Clone()
	return nil
}

// Get returns a copy of the entity or ErrNotFound.
func (s *MemStore[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return e.Clone(), nil
}

// GetAll returns copies of every stored entity in insertion order.
func (s *MemStore[T]) GetAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out, nil
}

// Update patches a copy of the stored entity and swaps it in only when
// every field validated, so a failed patch leaves the stored entity
// untouched and concurrent readers never observe a half-applied one.
func (s *MemStore[T]) Update(_ context.Context, id string, patch map[string]any) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	patched := e.Clone()
	if err := patched.ApplyPatch(patch); err != nil {
		var zero T
		return zero, err
	}
	s.items[id] = patched
	return patched.Clone(), nil
}

// Delete removes the entity if present; deleting an absent id is a no-op.
func (s *MemStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
	return nil
}

// remove expects the write lock to be held.
func (s *MemStore[T]) remove(id string) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// GetByAttribute linearly scans for the first entity whose named
// attribute matches, in insertion order, and returns a copy.
func (s *MemStore[T]) GetByAttribute(_ context.Context, name, value string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if v, ok := s.items[id].Attribute(name); ok && v == value {
			return s.items[id].Clone(), nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// MemPlaceStore adds the place-specific queries on top of MemStore.
type MemPlaceStore struct {
	*MemStore[*model.Place]
}

// NewMemPlaceStore returns an empty in-memory place store.
func NewMemPlaceStore() *MemPlaceStore {
	return &MemPlaceStore{MemStore: NewMemStore[*model.Place]()}
}

// ListByOwner returns copies of every place owned by the given user.
func (s *MemPlaceStore) ListByOwner(_ context.Context, ownerID string) ([]*model.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Place
	for _, id := range s.order {
		if p := s.items[id]; p.OwnerID == ownerID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// DetachAmenity removes an amenity id from every place referencing it.
// Used when an amenity is deleted; the places themselves survive.
func (s *MemPlaceStore) DetachAmenity(_ context.Context, amenityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		p := s.items[id]
		for _, aid := range p.AmenityIDs {
			if aid == amenityID {
				kept := make([]string, 0, len(p.AmenityIDs)-1)
				for _, keep := range p.AmenityIDs {
					if keep != amenityID {
						kept = append(kept, keep)
					}
				}
				next := p.Clone()
				next.SetAmenityIDs(kept)
				s.items[id] = next
				break
			}
		}
	}
	return nil
}

// MemReviewStore adds the review-specific queries on top of MemStore.
type MemReviewStore struct {
	*MemStore[*model.Review]
}

// NewMemReviewStore returns an empty in-memory review store.
func NewMemReviewStore() *MemReviewStore {
	return &MemReviewStore{MemStore: NewMemStore[*model.Review]()}
}

// ListByPlace returns copies of every review written for the given place.
func (s *MemReviewStore) ListByPlace(_ context.Context, placeID string) ([]*model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Review
	for _, id := range s.order {
		if r := s.items[id]; r.PlaceID == placeID {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

// ListByUser returns copies of every review authored by the given user.
func (s *MemReviewStore) ListByUser(_ context.Context, userID string) ([]*model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Review
	for _, id := range s.order {
		if r := s.items[id]; r.UserID == userID {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

// DeleteByPlace removes all reviews of a place. Supports the owning
// cascade when the place itself is deleted.
func (s *MemReviewStore) DeleteByPlace(_ context.Context, placeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range append([]string(nil), s.order...) {
		if r, ok := s.items[id]; ok && r.PlaceID == placeID {
			s.remove(id)
		}
	}
	return nil
}

// NewMemoryStores bundles fresh in-memory stores for all four entities.
func NewMemoryStores() Stores {
	return Stores{
		Users:     NewMemStore[*model.User](),
		Places:    NewMemPlaceStore(),
		Amenities: NewMemStore[*model.Amenity](),
		Reviews:   NewMemReviewStore(),
	}
}
