package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// mapRowErr converts driver-level sentinels into the repository taxonomy.
func mapRowErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// isDuplicate reports whether the error is a MySQL duplicate-entry
// violation (error 1062) raised by a unique or primary key.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// mapExecErr converts a write error, promoting duplicate-key violations
// to ErrDuplicate so the business layer can translate them.
func mapExecErr(err error) error {
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// NewMySQLStores bundles the relational stores over one connection pool.
func NewMySQLStores(db *sql.DB) Stores {
	return Stores{
		Users:     NewMySQLUserStore(db),
		Places:    NewMySQLPlaceStore(db),
		Amenities: NewMySQLAmenityStore(db),
		Reviews:   NewMySQLReviewStore(db),
	}
}
