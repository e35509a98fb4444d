package facade

import (
	"context"
	"errors"
	"strings"

	"github.com/holbertonschool/hbnb/internal/model"
	"github.com/holbertonschool/hbnb/internal/repository"
)

// NewPlaceInput carries the fields accepted when listing a place.
type NewPlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// PlaceDetail is the read-time join returned for a single place: the
// place plus its resolved amenities and reviews.
type PlaceDetail struct {
	*model.Place
	Amenities []*model.Amenity `json:"amenities"`
	Reviews   []*model.Review  `json:"reviews"`
}

// resolveAmenities maps ids to existing amenities, silently dropping
// unresolvable ones. Any other storage failure propagates.
func (f *Facade) resolveAmenities(ctx context.Context, ids []string) ([]string, error) {
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		_, err := f.stores.Amenities.Get(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, id)
	}
	return resolved, nil
}

// CreatePlace resolves the owner and amenities, rejects a duplicate
// (title, owner) pair and persists the place with its associations in
// one atomic write. A storage-level uniqueness race surfaces as the same
// conflict the pre-check raises.
func (f *Facade) CreatePlace(ctx context.Context, in NewPlaceInput) (*model.Place, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return nil, &model.ValidationError{Field: "owner_id", Message: "is required"}
	}
	owner, err := f.stores.Users.Get(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	amenityIDs, err := f.resolveAmenities(ctx, in.AmenityIDs)
	if err != nil {
		return nil, err
	}
	p, err := model.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, owner.ID, amenityIDs)
	if err != nil {
		return nil, err
	}
	existing, err := f.stores.Places.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.Title == p.Title {
			return nil, conflict("place already exists with this title for this owner")
		}
	}
	if err := f.stores.Places.Add(ctx, p); err != nil {
		return nil, translateWrite(err, "place already exists with this title for this owner")
	}
	return p, nil
}

// GetPlace returns the place with its amenities and reviews joined in.
func (f *Facade) GetPlace(ctx context.Context, id string) (*PlaceDetail, error) {
	p, err := f.stores.Places.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	amenities := make([]*model.Amenity, 0, len(p.AmenityIDs))
	for _, aid := range p.AmenityIDs {
		a, err := f.stores.Amenities.Get(ctx, aid)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		amenities = append(amenities, a)
	}
	reviews, err := f.stores.Reviews.ListByPlace(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}
	return &PlaceDetail{Place: p, Amenities: amenities, Reviews: reviews}, nil
}

// ListPlaces returns every place.
func (f *Facade) ListPlaces(ctx context.Context) ([]*model.Place, error) {
	return f.stores.Places.GetAll(ctx)
}

// ListPlacesByOwner returns every place owned by the given user.
func (f *Facade) ListPlacesByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	return f.stores.Places.ListByOwner(ctx, ownerID)
}

// UpdatePlace applies a partial update. When the patch carries an
// "amenities" list the association set is fully replaced, not merged;
// unresolvable ids are dropped. The resolved list rides in the same
// patch, so scalars and associations land in one atomic store write. A
// title change is re-checked against the owner's other places.
func (f *Facade) UpdatePlace(ctx context.Context, id string, patch map[string]any) (*model.Place, error) {
	current, err := f.stores.Places.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, ok := patch["amenities"]; ok {
		ids, ok := stringList(raw)
		if !ok {
			return nil, &model.ValidationError{Field: "amenities", Message: "must be a list of amenity ids"}
		}
		resolved, err := f.resolveAmenities(ctx, ids)
		if err != nil {
			return nil, err
		}
		patch["amenities"] = resolved
	}

	if raw, ok := patch["title"]; ok {
		if title, ok := raw.(string); ok {
			title = strings.TrimSpace(title)
			siblings, err := f.stores.Places.ListByOwner(ctx, current.OwnerID)
			if err != nil {
				return nil, err
			}
			for _, other := range siblings {
				if other.ID != id && other.Title == title {
					return nil, conflict("place already exists with this title for this owner")
				}
			}
		}
	}

	if len(patch) == 0 {
		return current, nil
	}
	p, err := f.stores.Places.Update(ctx, id, patch)
	if err != nil {
		return nil, translateWrite(err, "place already exists with this title for this owner")
	}
	return p, nil
}

// DeletePlace removes the place and, as its owner, every review written
// for it. Amenities are only detached. Returns false when the id is
// unknown.
func (f *Facade) DeletePlace(ctx context.Context, id string) (bool, error) {
	if _, err := f.stores.Places.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := f.stores.Reviews.DeleteByPlace(ctx, id); err != nil {
		return false, err
	}
	if err := f.stores.Places.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// stringList normalizes a decoded JSON array into []string.
func stringList(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
