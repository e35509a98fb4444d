package database

import (
	"context"
	"database/sql"
)

// schema declares the four entity tables plus the place_amenities
// association table. Constraints mirror the business rules as a second
// line of defense: unique email, unique (title, owner_id), and foreign
// keys for every reference. Reviews cascade with their place; amenity
// links are detach-only in both directions.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(36)     NOT NULL PRIMARY KEY,
		first_name    VARCHAR(50)  NOT NULL,
		last_name     VARCHAR(50)  NOT NULL,
		email         VARCHAR(120) NOT NULL,
		password_hash VARCHAR(128) NOT NULL,
		is_admin      BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at    DATETIME(6)  NOT NULL,
		updated_at    DATETIME(6)  NOT NULL,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS amenities (
		id         CHAR(36)    NOT NULL PRIMARY KEY,
		name       VARCHAR(50) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS places (
		id          CHAR(36)      NOT NULL PRIMARY KEY,
		title       VARCHAR(100)  NOT NULL,
		description VARCHAR(4000) NOT NULL DEFAULT '',
		price       DOUBLE        NOT NULL,
		latitude    DOUBLE        NOT NULL,
		longitude   DOUBLE        NOT NULL,
		owner_id    CHAR(36)      NOT NULL,
		created_at  DATETIME(6)   NOT NULL,
		updated_at  DATETIME(6)   NOT NULL,
		UNIQUE KEY uq_places_title_owner (title, owner_id),
		CONSTRAINT fk_places_owner FOREIGN KEY (owner_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id         CHAR(36)     NOT NULL PRIMARY KEY,
		text       VARCHAR(400) NOT NULL,
		rating     INT          NOT NULL,
		user_id    CHAR(36)     NOT NULL,
		place_id   CHAR(36)     NOT NULL,
		created_at DATETIME(6)  NOT NULL,
		updated_at DATETIME(6)  NOT NULL,
		CONSTRAINT fk_reviews_user  FOREIGN KEY (user_id)  REFERENCES users (id),
		CONSTRAINT fk_reviews_place FOREIGN KEY (place_id) REFERENCES places (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS place_amenities (
		place_id   CHAR(36) NOT NULL,
		amenity_id CHAR(36) NOT NULL,
		PRIMARY KEY (place_id, amenity_id),
		CONSTRAINT fk_pa_place   FOREIGN KEY (place_id)   REFERENCES places (id)    ON DELETE CASCADE,
		CONSTRAINT fk_pa_amenity FOREIGN KEY (amenity_id) REFERENCES amenities (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables. Statements are idempotent so
// it is safe to run at every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
