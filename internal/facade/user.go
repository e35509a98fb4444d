package facade

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/holbertonschool/hbnb/internal/model"
	"github.com/holbertonschool/hbnb/internal/queue"
	"github.com/holbertonschool/hbnb/internal/repository"
)

// NewUserInput carries the fields accepted when registering a user.
type NewUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UserDetail is the read-time join returned for a single user: the user
// plus the places they own and the reviews they authored.
type UserDetail struct {
	*model.User
	Places  []*model.Place  `json:"places"`
	Reviews []*model.Review `json:"reviews"`
}

// CreateUser validates, rejects an already-registered email, hashes the
// password and persists the new account.
func (f *Facade) CreateUser(ctx context.Context, in NewUserInput) (*model.User, error) {
	u, err := model.NewUser(in.FirstName, in.LastName, in.Email, in.Password, in.IsAdmin, f.bcryptCost)
	if err != nil {
		return nil, err
	}
	if _, err := f.stores.Users.GetByAttribute(ctx, "email", u.Email); err == nil {
		return nil, conflict("email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err := f.stores.Users.Add(ctx, u); err != nil {
		return nil, translateWrite(err, "email already registered")
	}
	if f.events != nil {
		f.events.UserRegistered(ctx, queue.UserRegisteredEvent{
			UserID:       u.ID,
			Email:        u.Email,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			IsAdmin:      u.IsAdmin,
			RegisteredAt: u.CreatedAt.Format(time.RFC3339),
		})
	}
	return u, nil
}

// GetUser returns the user with their places and reviews joined in.
func (f *Facade) GetUser(ctx context.Context, id string) (*UserDetail, error) {
	u, err := f.stores.Users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	places, err := f.stores.Places.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := f.stores.Reviews.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if places == nil {
		places = []*model.Place{}
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}
	return &UserDetail{User: u, Places: places, Reviews: reviews}, nil
}

// ListUsers returns every user.
func (f *Facade) ListUsers(ctx context.Context) ([]*model.User, error) {
	return f.stores.Users.GetAll(ctx)
}

// GetUserByEmail looks a user up by normalized email.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return f.stores.Users.GetByAttribute(ctx, "email", email)
}

// UpdateUser applies a partial update. An email change is re-checked for
// uniqueness against every other user before the patch lands.
func (f *Facade) UpdateUser(ctx context.Context, id string, patch map[string]any) (*model.User, error) {
	if raw, ok := patch["email"]; ok {
		if email, ok := raw.(string); ok {
			email = strings.ToLower(strings.TrimSpace(email))
			other, err := f.stores.Users.GetByAttribute(ctx, "email", email)
			if err == nil && other.ID != id {
				return nil, conflict("email already registered")
			} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
		}
	}
	u, err := f.stores.Users.Update(ctx, id, patch)
	if err != nil {
		return nil, translateWrite(err, "email already registered")
	}
	return u, nil
}

// DeleteUser removes the user together with their reviews and owned
// places (each place cascading its own reviews). Returns false when the
// id is unknown.
func (f *Facade) DeleteUser(ctx context.Context, id string) (bool, error) {
	if _, err := f.stores.Users.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	reviews, err := f.stores.Reviews.ListByUser(ctx, id)
	if err != nil {
		return false, err
	}
	for _, r := range reviews {
		if err := f.stores.Reviews.Delete(ctx, r.ID); err != nil {
			return false, err
		}
	}
	places, err := f.stores.Places.ListByOwner(ctx, id)
	if err != nil {
		return false, err
	}
	for _, p := range places {
		if err := f.stores.Reviews.DeleteByPlace(ctx, p.ID); err != nil {
			return false, err
		}
		if err := f.stores.Places.Delete(ctx, p.ID); err != nil {
			return false, err
		}
	}
	if err := f.stores.Users.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
