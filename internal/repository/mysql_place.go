package repository

import (
	"context"
	"database/sql"

	"github.com/holbertonschool/hbnb/internal/model"
)

// MySQLPlaceStore persists places plus their amenity association rows.
// The (title, owner_id) unique constraint and the owner foreign key are
// enforced by the schema; writes that touch both the place and its
// associations run inside one transaction so a failure can never leave a
// partially-associated place behind.
type MySQLPlaceStore struct {
	db *sql.DB
}

// NewMySQLPlaceStore binds a place store to the given pool.
func NewMySQLPlaceStore(db *sql.DB) *MySQLPlaceStore { return &MySQLPlaceStore{db: db} }

const placeColumns = "id, title, description, price, latitude, longitude, owner_id, created_at, updated_at"

func scanPlace(row interface{ Scan(...any) error }) (*model.Place, error) {
	var p model.Place
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapRowErr(err)
	}
	return &p, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// loadAmenityIDs fills the association set for a scanned place.
func loadAmenityIDs(ctx context.Context, q querier, p *model.Place) error {
	rows, err := q.QueryContext(ctx, "SELECT amenity_id FROM place_amenities WHERE place_id=? ORDER BY amenity_id", p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	p.AmenityIDs = nil
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		p.AmenityIDs = append(p.AmenityIDs, id)
	}
	return rows.Err()
}

func insertAmenityLinks(ctx context.Context, tx *sql.Tx, placeID string, amenityIDs []string) error {
	for _, aid := range amenityIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO place_amenities (place_id, amenity_id) VALUES (?,?)", placeID, aid); err != nil {
			return mapExecErr(err)
		}
	}
	return nil
}

// Add inserts the place and its association rows atomically. A duplicate
// (title, owner_id) pair rolls everything back and returns ErrDuplicate.
func (s *MySQLPlaceStore) Add(ctx context.Context, p *model.Place) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO places (id, title, description, price, latitude, longitude, owner_id, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?,?)",
		p.ID, p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.OwnerID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return mapExecErr(err)
	}
	if err := insertAmenityLinks(ctx, tx, p.ID, p.AmenityIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// Get fetches a place and its amenity set by id.
func (s *MySQLPlaceStore) Get(ctx context.Context, id string) (*model.Place, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+placeColumns+" FROM places WHERE id=? LIMIT 1", id)
	p, err := scanPlace(row)
	if err != nil {
		return nil, err
	}
	if err := loadAmenityIDs(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetAll returns every place ordered by creation time.
func (s *MySQLPlaceStore) GetAll(ctx context.Context) ([]*model.Place, error) {
	return s.list(ctx, "SELECT "+placeColumns+" FROM places ORDER BY created_at, id")
}

// ListByOwner returns every place owned by the given user.
func (s *MySQLPlaceStore) ListByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	return s.list(ctx, "SELECT "+placeColumns+" FROM places WHERE owner_id=? ORDER BY created_at, id", ownerID)
}

func (s *MySQLPlaceStore) list(ctx context.Context, query string, args ...any) ([]*model.Place, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		if err := loadAmenityIDs(ctx, s.db, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update loads the row, applies the patch and writes it back in one
// transaction. A resolved "amenities" list in the patch replaces the
// association rows inside that same transaction, so scalars and
// associations can never diverge. Renaming into an existing
// (title, owner_id) pair rolls back with ErrDuplicate.
func (s *MySQLPlaceStore) Update(ctx context.Context, id string, patch map[string]any) (*model.Place, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT "+placeColumns+" FROM places WHERE id=? FOR UPDATE", id)
	p, err := scanPlace(row)
	if err != nil {
		return nil, err
	}
	if err := p.ApplyPatch(patch); err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx,
		"UPDATE places SET title=?, description=?, price=?, latitude=?, longitude=?, updated_at=? WHERE id=?",
		p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.UpdatedAt, p.ID)
	if err != nil {
		return nil, mapExecErr(err)
	}
	if _, ok := patch["amenities"]; ok {
		if _, err := tx.ExecContext(ctx, "DELETE FROM place_amenities WHERE place_id=?", id); err != nil {
			return nil, err
		}
		if err := insertAmenityLinks(ctx, tx, id, p.AmenityIDs); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	if err := loadAmenityIDs(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the place. Reviews cascade and association rows vanish
// through the schema's foreign keys.
func (s *MySQLPlaceStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM places WHERE id=?", id)
	return err
}

// DetachAmenity drops the amenity's association rows; the places survive.
func (s *MySQLPlaceStore) DetachAmenity(ctx context.Context, amenityID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM place_amenities WHERE amenity_id=?", amenityID)
	return err
}

var placeAttrColumns = map[string]string{
	"id":       "id",
	"title":    "title",
	"owner_id": "owner_id",
}

// GetByAttribute returns the first place whose column matches.
func (s *MySQLPlaceStore) GetByAttribute(ctx context.Context, name, value string) (*model.Place, error) {
	col, ok := placeAttrColumns[name]
	if !ok {
		return nil, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, "SELECT "+placeColumns+" FROM places WHERE "+col+"=? LIMIT 1", value)
	p, err := scanPlace(row)
	if err != nil {
		return nil, err
	}
	if err := loadAmenityIDs(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}
