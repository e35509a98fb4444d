package repository

import (
	"context"
	"database/sql"

	"github.com/holbertonschool/hbnb/internal/model"
)

// MySQLReviewStore persists reviews in the 'reviews' table. The user and
// place foreign keys are schema-enforced; place deletion cascades here.
type MySQLReviewStore struct {
	db *sql.DB
}

// NewMySQLReviewStore binds a review store to the given pool.
func NewMySQLReviewStore(db *sql.DB) *MySQLReviewStore { return &MySQLReviewStore{db: db} }

const reviewColumns = "id, text, rating, user_id, place_id, created_at, updated_at"

func scanReview(row interface{ Scan(...any) error }) (*model.Review, error) {
	var r model.Review
	err := row.Scan(&r.ID, &r.Text, &r.Rating, &r.UserID, &r.PlaceID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, mapRowErr(err)
	}
	return &r, nil
}

// Add inserts the review.
func (s *MySQLReviewStore) Add(ctx context.Context, r *model.Review) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reviews (id, text, rating, user_id, place_id, created_at, updated_at) VALUES (?,?,?,?,?,?,?)",
		r.ID, r.Text, r.Rating, r.UserID, r.PlaceID, r.CreatedAt, r.UpdatedAt)
	return mapExecErr(err)
}

// Get fetches a review by id.
func (s *MySQLReviewStore) Get(ctx context.Context, id string) (*model.Review, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE id=? LIMIT 1", id)
	return scanReview(row)
}

// GetAll returns every review ordered by creation time.
func (s *MySQLReviewStore) GetAll(ctx context.Context) ([]*model.Review, error) {
	return s.list(ctx, "SELECT "+reviewColumns+" FROM reviews ORDER BY created_at, id")
}

// ListByPlace returns every review written for the given place.
func (s *MySQLReviewStore) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	return s.list(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE place_id=? ORDER BY created_at, id", placeID)
}

// ListByUser returns every review authored by the given user.
func (s *MySQLReviewStore) ListByUser(ctx context.Context, userID string) ([]*model.Review, error) {
	return s.list(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE user_id=? ORDER BY created_at, id", userID)
}

func (s *MySQLReviewStore) list(ctx context.Context, query string, args ...any) ([]*model.Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Update loads the row, applies the patch and writes it back in one
// transaction.
func (s *MySQLReviewStore) Update(ctx context.Context, id string, patch map[string]any) (*model.Review, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE id=? FOR UPDATE", id)
	r, err := scanReview(row)
	if err != nil {
		return nil, err
	}
	if err := r.ApplyPatch(patch); err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx, "UPDATE reviews SET text=?, rating=?, updated_at=? WHERE id=?",
		r.Text, r.Rating, r.UpdatedAt, r.ID)
	if err != nil {
		return nil, mapExecErr(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes the review if present.
func (s *MySQLReviewStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	return err
}

// DeleteByPlace removes every review of the place.
func (s *MySQLReviewStore) DeleteByPlace(ctx context.Context, placeID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM reviews WHERE place_id=?", placeID)
	return err
}

var reviewAttrColumns = map[string]string{
	"id":       "id",
	"user_id":  "user_id",
	"place_id": "place_id",
}

// GetByAttribute returns the first review whose column matches.
func (s *MySQLReviewStore) GetByAttribute(ctx context.Context, name, value string) (*model.Review, error) {
	col, ok := reviewAttrColumns[name]
	if !ok {
		return nil, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE "+col+"=? LIMIT 1", value)
	return scanReview(row)
}
