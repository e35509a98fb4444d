package facade

import (
	"context"
	"errors"

	"github.com/holbertonschool/hbnb/internal/model"
	"github.com/holbertonschool/hbnb/internal/repository"
)

// CreateAmenity validates and persists a new amenity.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*model.Amenity, error) {
	a, err := model.NewAmenity(name)
	if err != nil {
		return nil, err
	}
	if err := f.stores.Amenities.Add(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAmenity returns the amenity or repository.ErrNotFound.
func (f *Facade) GetAmenity(ctx context.Context, id string) (*model.Amenity, error) {
	return f.stores.Amenities.Get(ctx, id)
}

// ListAmenities returns every amenity.
func (f *Facade) ListAmenities(ctx context.Context) ([]*model.Amenity, error) {
	return f.stores.Amenities.GetAll(ctx)
}

// UpdateAmenity applies a partial update.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, patch map[string]any) (*model.Amenity, error) {
	return f.stores.Amenities.Update(ctx, id, patch)
}

// DeleteAmenity removes the amenity and detaches it from every place.
// The places themselves are untouched. Returns false when the id is
// unknown.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) (bool, error) {
	if _, err := f.stores.Amenities.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := f.stores.Places.DetachAmenity(ctx, id); err != nil {
		return false, err
	}
	if err := f.stores.Amenities.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
