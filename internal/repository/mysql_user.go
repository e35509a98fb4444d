package repository

import (
	"context"
	"database/sql"

	"github.com/holbertonschool/hbnb/internal/model"
)

// MySQLUserStore persists users in the 'users' table. The email unique
// constraint is the storage-level second line of defense behind the
// facade's duplicate check.
type MySQLUserStore struct {
	db *sql.DB
}

// NewMySQLUserStore binds a user store to the given connection pool.
func NewMySQLUserStore(db *sql.DB) *MySQLUserStore { return &MySQLUserStore{db: db} }

const userColumns = "id, first_name, last_name, email, password_hash, is_admin, created_at, updated_at"

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapRowErr(err)
	}
	return &u, nil
}

// Add inserts the user. A unique-key collision surfaces as ErrDuplicate.
func (s *MySQLUserStore) Add(ctx context.Context, u *model.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, first_name, last_name, email, password_hash, is_admin, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?)",
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt, u.UpdatedAt)
	return mapExecErr(err)
}

// Get fetches a user by id.
func (s *MySQLUserStore) Get(ctx context.Context, id string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
	return scanUser(row)
}

// GetAll returns every user ordered by creation time.
func (s *MySQLUserStore) GetAll(ctx context.Context) ([]*model.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update loads the row, applies the patch through the entity and writes
// the result back, all inside one transaction.
func (s *MySQLUserStore) Update(ctx context.Context, id string, patch map[string]any) (*model.User, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id=? FOR UPDATE", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	if err := u.ApplyPatch(patch); err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx,
		"UPDATE users SET first_name=?, last_name=?, email=?, password_hash=?, is_admin=?, updated_at=? WHERE id=?",
		u.FirstName, u.LastName, u.Email, u.PasswordHash, u.IsAdmin, u.UpdatedAt, u.ID)
	if err != nil {
		return nil, mapExecErr(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the user if present; absent ids are a no-op.
func (s *MySQLUserStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	return err
}

// userAttrColumns whitelists the columns GetByAttribute may filter on.
var userAttrColumns = map[string]string{
	"id":         "id",
	"email":      "email",
	"first_name": "first_name",
	"last_name":  "last_name",
}

// GetByAttribute returns the first user whose column matches the value.
func (s *MySQLUserStore) GetByAttribute(ctx context.Context, name, value string) (*model.User, error) {
	col, ok := userAttrColumns[name]
	if !ok {
		return nil, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+col+"=? LIMIT 1", value)
	return scanUser(row)
}
