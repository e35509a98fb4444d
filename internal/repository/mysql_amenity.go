package repository

import (
	"context"
	"database/sql"

	"github.com/holbertonschool/hbnb/internal/model"
)

// MySQLAmenityStore persists amenities in the 'amenities' table.
type MySQLAmenityStore struct {
	db *sql.DB
}

// NewMySQLAmenityStore binds an amenity store to the given pool.
func NewMySQLAmenityStore(db *sql.DB) *MySQLAmenityStore { return &MySQLAmenityStore{db: db} }

const amenityColumns = "id, name, created_at, updated_at"

func scanAmenity(row interface{ Scan(...any) error }) (*model.Amenity, error) {
	var a model.Amenity
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	return &a, nil
}

// Add inserts the amenity.
func (s *MySQLAmenityStore) Add(ctx context.Context, a *model.Amenity) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO amenities (id, name, created_at, updated_at) VALUES (?,?,?,?)",
		a.ID, a.Name, a.CreatedAt, a.UpdatedAt)
	return mapExecErr(err)
}

// Get fetches an amenity by id.
func (s *MySQLAmenityStore) Get(ctx context.Context, id string) (*model.Amenity, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+amenityColumns+" FROM amenities WHERE id=? LIMIT 1", id)
	return scanAmenity(row)
}

// GetAll returns every amenity ordered by creation time.
func (s *MySQLAmenityStore) GetAll(ctx context.Context) ([]*model.Amenity, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+amenityColumns+" FROM amenities ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Amenity
	for rows.Next() {
		a, err := scanAmenity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update loads the row, applies the patch and writes it back in one
// transaction.
func (s *MySQLAmenityStore) Update(ctx context.Context, id string, patch map[string]any) (*model.Amenity, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT "+amenityColumns+" FROM amenities WHERE id=? FOR UPDATE", id)
	a, err := scanAmenity(row)
	if err != nil {
		return nil, err
	}
	if err := a.ApplyPatch(patch); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE amenities SET name=?, updated_at=? WHERE id=?", a.Name, a.UpdatedAt, a.ID); err != nil {
		return nil, mapExecErr(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the amenity. Association rows go with it via the
// foreign key; places referencing it are only detached, never deleted.
func (s *MySQLAmenityStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM amenities WHERE id=?", id)
	return err
}

var amenityAttrColumns = map[string]string{
	"id":   "id",
	"name": "name",
}

// GetByAttribute returns the first amenity whose column matches.
func (s *MySQLAmenityStore) GetByAttribute(ctx context.Context, name, value string) (*model.Amenity, error) {
	col, ok := amenityAttrColumns[name]
	if !ok {
		return nil, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, "SELECT "+amenityColumns+" FROM amenities WHERE "+col+"=? LIMIT 1", value)
	return scanAmenity(row)
}
