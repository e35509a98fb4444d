// Package model defines the HBnB entities (User, Place, Amenity, Review)
// together with their field validation. Every entity carries a UUID
// identifier and creation/update timestamps. Construction goes through a
// validating New* function so that an invalid entity is never observable;
// partial updates go through ApplyPatch which validates every supplied
// field before mutating anything.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the common surface the repository layer relies on. Attribute
// exposes scalar fields by name for secondary lookups without reflection;
// ApplyPatch performs a validated partial update.
type Entity interface {
	EntityID() string
	Attribute(name string) (string, bool)
	ApplyPatch(patch map[string]any) error
}

// Base holds the identity and timestamp fields shared by all entities.
// CreatedAt equals UpdatedAt at the moment of creation.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
}

// EntityID returns the UUID assigned at creation.
func (b *Base) EntityID() string { return b.ID }

// Touch refreshes the update timestamp. Called after every successful
// mutation.
func (b *Base) Touch() { b.UpdatedAt = time.Now().UTC() }
