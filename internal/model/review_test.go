package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview_Valid(t *testing.T) {
	r, err := NewReview("Great stay", 5, "user-1", "place-1")
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, "user-1", r.UserID)
	assert.Equal(t, "place-1", r.PlaceID)
}

func TestNewReview_RatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6} {
		_, err := NewReview("text", rating, "user-1", "place-1")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "rating %d", rating)
		assert.Equal(t, "rating", verr.Field)
	}
	for _, rating := range []int{1, 5} {
		_, err := NewReview("text", rating, "user-1", "place-1")
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestNewReview_TextBounds(t *testing.T) {
	_, err := NewReview("", 3, "user-1", "place-1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "text", verr.Field)

	_, err = NewReview("   ", 3, "user-1", "place-1")
	require.ErrorAs(t, err, &verr)

	_, err = NewReview(strings.Repeat("x", 401), 3, "user-1", "place-1")
	require.ErrorAs(t, err, &verr)

	_, err = NewReview(strings.Repeat("x", 400), 3, "user-1", "place-1")
	assert.NoError(t, err)
}

func TestReview_ApplyPatch(t *testing.T) {
	r, err := NewReview("ok", 3, "user-1", "place-1")
	require.NoError(t, err)

	// JSON decodes the rating as float64; integral floats are accepted.
	require.NoError(t, r.ApplyPatch(map[string]any{"text": "better", "rating": float64(4)}))
	assert.Equal(t, "better", r.Text)
	assert.Equal(t, 4, r.Rating)

	err = r.ApplyPatch(map[string]any{"rating": 4.5})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 4, r.Rating)
}

func TestReview_ApplyPatch_ReferencesImmutable(t *testing.T) {
	r, err := NewReview("ok", 3, "user-1", "place-1")
	require.NoError(t, err)

	for _, field := range []string{"user_id", "place_id"} {
		err := r.ApplyPatch(map[string]any{field: "other"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, field, verr.Field)
	}
	assert.Equal(t, "user-1", r.UserID)
	assert.Equal(t, "place-1", r.PlaceID)
}

func TestNewAmenity(t *testing.T) {
	a, err := NewAmenity("  Wi-Fi ")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", a.Name)

	_, err = NewAmenity("")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = NewAmenity(strings.Repeat("x", 51))
	require.ErrorAs(t, err, &verr)
}

func TestAmenity_ApplyPatch(t *testing.T) {
	a, err := NewAmenity("Wi-Fi")
	require.NoError(t, err)

	require.NoError(t, a.ApplyPatch(map[string]any{"name": "Pool"}))
	assert.Equal(t, "Pool", a.Name)

	err = a.ApplyPatch(map[string]any{"color": "blue"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
