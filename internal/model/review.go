package model

import "strings"

// Review is authored by one user about one place. Both references are
// immutable after creation. A place exclusively owns its reviews:
// deleting the place deletes them.
type Review struct {
	Base
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// NewReview validates every field. The self-review and one-review-per-
// place rules need storage lookups and are enforced one layer up.
func NewReview(text string, rating int, userID, placeID string) (*Review, error) {
	t, err := validateText(text)
	if err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, invalid("user_id", "is required")
	}
	if strings.TrimSpace(placeID) == "" {
		return nil, invalid("place_id", "is required")
	}
	return &Review{
		Base:    newBase(),
		Text:    t,
		Rating:  rating,
		UserID:  userID,
		PlaceID: placeID,
	}, nil
}

func validateText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", invalid("text", "is required")
	}
	if len([]rune(text)) > 400 {
		return "", invalid("text", "must not exceed 400 characters")
	}
	return text, nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return invalid("rating", "must be an integer between 1 and 5")
	}
	return nil
}

// Clone returns a copy detached from the receiver.
func (r *Review) Clone() *Review {
	c := *r
	return &c
}

// Attribute exposes scalar fields for secondary lookups.
func (r *Review) Attribute(name string) (string, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "user_id":
		return r.UserID, true
	case "place_id":
		return r.PlaceID, true
	}
	return "", false
}

// ApplyPatch accepts text and rating. The user and place references are
// immutable; unknown fields are rejected.
func (r *Review) ApplyPatch(patch map[string]any) error {
	assign := make([]func(), 0, len(patch))
	for key, value := range patch {
		switch key {
		case "text":
			s, ok := asString(value)
			if !ok {
				return invalid(key, "must be a string")
			}
			t, err := validateText(s)
			if err != nil {
				return err
			}
			assign = append(assign, func() { r.Text = t })
		case "rating":
			n, ok := asInt(value)
			if !ok {
				return invalid(key, "must be an integer")
			}
			if err := validateRating(n); err != nil {
				return err
			}
			assign = append(assign, func() { r.Rating = n })
		case "user_id", "place_id":
			return invalid(key, "is immutable")
		default:
			return invalid(key, "is not an updatable field")
		}
	}
	for _, set := range assign {
		set()
	}
	r.Touch()
	return nil
}
