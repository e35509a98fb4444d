package model

import "strings"

// Amenity is a feature a place can offer (wifi, parking, pool). The
// association with places carries no ownership in either direction.
type Amenity struct {
	Base
	Name string `json:"name"`
}

// NewAmenity validates the name and returns a fresh amenity.
func NewAmenity(name string) (*Amenity, error) {
	n, err := validateAmenityName(name)
	if err != nil {
		return nil, err
	}
	return &Amenity{Base: newBase(), Name: n}, nil
}

func validateAmenityName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "is required")
	}
	if len([]rune(name)) > 50 {
		return "", invalid("name", "must not exceed 50 characters")
	}
	return name, nil
}

// Clone returns a copy detached from the receiver.
func (a *Amenity) Clone() *Amenity {
	c := *a
	return &c
}

// Attribute exposes scalar fields for secondary lookups.
func (a *Amenity) Attribute(name string) (string, bool) {
	switch name {
	case "id":
		return a.ID, true
	case "name":
		return a.Name, true
	}
	return "", false
}

// ApplyPatch accepts only "name"; unknown fields are rejected.
func (a *Amenity) ApplyPatch(patch map[string]any) error {
	assign := make([]func(), 0, len(patch))
	for key, value := range patch {
		switch key {
		case "name":
			s, ok := asString(value)
			if !ok {
				return invalid(key, "must be a string")
			}
			n, err := validateAmenityName(s)
			if err != nil {
				return err
			}
			assign = append(assign, func() { a.Name = n })
		default:
			return invalid(key, "is not an updatable field")
		}
	}
	for _, set := range assign {
		set()
	}
	a.Touch()
	return nil
}
