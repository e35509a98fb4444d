package model

import "strings"

// Place is a rental listing. OwnerID references exactly one user and is
// immutable after creation. AmenityIDs is an order-irrelevant set with no
// duplicates; reviews are not stored here, they are looked up by place id.
// (title, owner_id) must be unique — the pair check lives one layer up,
// backed by a storage constraint in the relational variant.
type Place struct {
	Base
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	AmenityIDs  []string `json:"amenity_ids"`
}

// NewPlace validates every field. amenityIDs are stored after
// deduplication; resolving them against real amenities is the caller's
// responsibility.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string, amenityIDs []string) (*Place, error) {
	t, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	d, err := validateDescription(description)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateLatitude(latitude); err != nil {
		return nil, err
	}
	if err := validateLongitude(longitude); err != nil {
		return nil, err
	}
	if strings.TrimSpace(ownerID) == "" {
		return nil, invalid("owner_id", "is required")
	}
	return &Place{
		Base:        newBase(),
		Title:       t,
		Description: d,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		AmenityIDs:  dedupe(amenityIDs),
	}, nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", invalid("title", "is required")
	}
	if len([]rune(title)) > 100 {
		return "", invalid("title", "must not exceed 100 characters")
	}
	return title, nil
}

// Description is optional; when present it must be non-blank and bounded.
func validateDescription(description string) (string, error) {
	if description == "" {
		return "", nil
	}
	if strings.TrimSpace(description) == "" {
		return "", invalid("description", "must not be blank")
	}
	if len([]rune(description)) > 4000 {
		return "", invalid("description", "must not exceed 4000 characters")
	}
	return description, nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return invalid("price", "must be greater than 0")
	}
	return nil
}

func validateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return invalid("latitude", "must be between -90 and 90")
	}
	return nil
}

func validateLongitude(lon float64) error {
	if lon < -180 || lon > 180 {
		return invalid("longitude", "must be between -180 and 180")
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Clone returns a copy detached from the receiver. The amenity id slice
// is copied too so neither side can mutate the other's set.
func (p *Place) Clone() *Place {
	c := *p
	c.AmenityIDs = append([]string(nil), p.AmenityIDs...)
	return &c
}

// SetAmenityIDs replaces the association set wholesale.
func (p *Place) SetAmenityIDs(ids []string) {
	p.AmenityIDs = dedupe(ids)
	p.Touch()
}

// Attribute exposes scalar fields for secondary lookups.
func (p *Place) Attribute(name string) (string, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "title":
		return p.Title, true
	case "owner_id":
		return p.OwnerID, true
	}
	return "", false
}

// ApplyPatch applies a partial update. Scalar fields validate as at
// construction; a resolved "amenities" list replaces the association set
// wholesale. owner_id is immutable and unknown fields are rejected.
// Nothing is mutated unless every supplied field passes validation.
func (p *Place) ApplyPatch(patch map[string]any) error {
	assign := make([]func(), 0, len(patch))
	for key, value := range patch {
		switch key {
		case "title":
			s, ok := asString(value)
			if !ok {
				return invalid(key, "must be a string")
			}
			t, err := validateTitle(s)
			if err != nil {
				return err
			}
			assign = append(assign, func() { p.Title = t })
		case "description":
			s, ok := asString(value)
			if !ok {
				return invalid(key, "must be a string")
			}
			d, err := validateDescription(s)
			if err != nil {
				return err
			}
			assign = append(assign, func() { p.Description = d })
		case "price":
			n, ok := asFloat(value)
			if !ok {
				return invalid(key, "must be a number")
			}
			if err := validatePrice(n); err != nil {
				return err
			}
			assign = append(assign, func() { p.Price = n })
		case "latitude":
			n, ok := asFloat(value)
			if !ok {
				return invalid(key, "must be a number")
			}
			if err := validateLatitude(n); err != nil {
				return err
			}
			assign = append(assign, func() { p.Latitude = n })
		case "longitude":
			n, ok := asFloat(value)
			if !ok {
				return invalid(key, "must be a number")
			}
			if err := validateLongitude(n); err != nil {
				return err
			}
			assign = append(assign, func() { p.Longitude = n })
		case "amenities":
			// Only an already-resolved []string is accepted here; raw
			// client lists arrive as []any and must go through the
			// facade's resolution first.
			ids, ok := value.([]string)
			if !ok {
				return invalid(key, "must be a resolved list of amenity ids")
			}
			assign = append(assign, func() { p.AmenityIDs = dedupe(ids) })
		case "owner_id":
			return invalid(key, "is immutable")
		default:
			return invalid(key, "is not an updatable field")
		}
	}
	for _, set := range assign {
		set()
	}
	p.Touch()
	return nil
}
