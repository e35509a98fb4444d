package facade

import (
	"context"
	"errors"
	"time"

	"github.com/holbertonschool/hbnb/internal/model"
	"github.com/holbertonschool/hbnb/internal/queue"
	"github.com/holbertonschool/hbnb/internal/repository"
)

// NewReviewInput carries the fields accepted when posting a review.
type NewReviewInput struct {
	Text    string
	Rating  int
	UserID  string
	PlaceID string
}

// CreateReview resolves the author and place, rejects self-reviews and
// second reviews of the same place by the same user, then persists.
// The duplicate check scans the place's existing reviews; there is no
// indexed (user, place) lookup.
func (f *Facade) CreateReview(ctx context.Context, in NewReviewInput) (*model.Review, error) {
	if in.UserID == "" {
		return nil, &model.ValidationError{Field: "user_id", Message: "is required"}
	}
	if in.PlaceID == "" {
		return nil, &model.ValidationError{Field: "place_id", Message: "is required"}
	}
	user, err := f.stores.Users.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	place, err := f.stores.Places.Get(ctx, in.PlaceID)
	if err != nil {
		return nil, err
	}
	if place.OwnerID == user.ID {
		return nil, &model.ValidationError{Field: "user_id", Message: "cannot review own place"}
	}
	existing, err := f.stores.Reviews.ListByPlace(ctx, place.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.UserID == user.ID {
			return nil, &model.ValidationError{Field: "user_id", Message: "has already reviewed this place"}
		}
	}
	review, err := model.NewReview(in.Text, in.Rating, user.ID, place.ID)
	if err != nil {
		return nil, err
	}
	if err := f.stores.Reviews.Add(ctx, review); err != nil {
		return nil, err
	}
	if f.events != nil {
		f.events.ReviewCreated(ctx, queue.ReviewCreatedEvent{
			ReviewID:   review.ID,
			PlaceID:    place.ID,
			PlaceTitle: place.Title,
			UserID:     user.ID,
			Rating:     review.Rating,
			CreatedAt:  review.CreatedAt.Format(time.RFC3339),
		})
	}
	return review, nil
}

// GetReview returns the review or repository.ErrNotFound.
func (f *Facade) GetReview(ctx context.Context, id string) (*model.Review, error) {
	return f.stores.Reviews.Get(ctx, id)
}

// ListReviews returns every review.
func (f *Facade) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return f.stores.Reviews.GetAll(ctx)
}

// ListReviewsByPlace returns the reviews of an existing place;
// repository.ErrNotFound when the place does not resolve.
func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	if _, err := f.stores.Places.Get(ctx, placeID); err != nil {
		return nil, err
	}
	reviews, err := f.stores.Reviews.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}
	return reviews, nil
}

// UpdateReview applies a partial update to text and rating.
func (f *Facade) UpdateReview(ctx context.Context, id string, patch map[string]any) (*model.Review, error) {
	return f.stores.Reviews.Update(ctx, id, patch)
}

// DeleteReview removes the review. The found flag lets callers answer
// 404 without exception handling; deleting twice is safe.
func (f *Facade) DeleteReview(ctx context.Context, id string) (bool, error) {
	if _, err := f.stores.Reviews.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := f.stores.Reviews.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
