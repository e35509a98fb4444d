package model

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/holbertonschool/hbnb/internal/utils"
)

// nameRe accepts letters (including the Latin-1 accented range), spaces
// and hyphens. Digits and punctuation are rejected.
var nameRe = regexp.MustCompile(`^[ a-zA-ZÀ-ÿ-]+$`)

// User is an account holder. PasswordHash stores a bcrypt digest; the
// plaintext password is never retained and the hash is never serialized.
// Email is unique across all users — uniqueness itself is enforced one
// layer up, this type only validates the shape.
type User struct {
	Base
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}

// NewUser validates every field and hashes the password with the given
// bcrypt cost. It returns a *ValidationError naming the first offending
// field.
func NewUser(firstName, lastName, email, password string, isAdmin bool, bcryptCost int) (*User, error) {
	first, err := validateName("first_name", firstName)
	if err != nil {
		return nil, err
	}
	last, err := validateName("last_name", lastName)
	if err != nil {
		return nil, err
	}
	addr, err := validateEmail(email)
	if err != nil {
		return nil, err
	}
	u := &User{
		Base:      newBase(),
		FirstName: first,
		LastName:  last,
		Email:     addr,
		IsAdmin:   isAdmin,
	}
	if err := u.SetPassword(password, bcryptCost); err != nil {
		return nil, err
	}
	return u, nil
}

// Clone returns a copy detached from the receiver.
func (u *User) Clone() *User {
	c := *u
	return &c
}

func validateName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid(field, "is required")
	}
	if len([]rune(name)) > 50 {
		return "", invalid(field, "must contain between 1 and 50 characters")
	}
	if !nameRe.MatchString(name) {
		return "", invalid(field, "must contain only letters or hyphens")
	}
	return name, nil
}

// validateEmail normalizes to lower case and checks the address parses as
// a bare RFC 5322 address (no display name).
func validateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", invalid("email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("email", "is not a valid address")
	}
	return email, nil
}

// SetPassword hashes the plaintext and stores only the digest.
func (u *User) SetPassword(password string, bcryptCost int) error {
	if password == "" {
		return invalid("password", "is required")
	}
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return invalid("password", "could not be hashed")
	}
	u.PasswordHash = hash
	return nil
}

// VerifyPassword compares a candidate plaintext against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return utils.VerifyPassword(u.PasswordHash, password)
}

// Attribute exposes scalar fields for secondary lookups.
func (u *User) Attribute(name string) (string, bool) {
	switch name {
	case "id":
		return u.ID, true
	case "email":
		return u.Email, true
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	}
	return "", false
}

// ApplyPatch applies a partial update. Recognized fields are validated by
// the same rules as construction; unknown fields are rejected so a typo
// never turns into a silent no-op. Nothing is mutated unless every field
// passes. A supplied password is re-hashed with the cost embedded in the
// current hash.
func (u *User) ApplyPatch(patch map[string]any) error {
	assign := make([]func(), 0, len(patch))
	for key, value := range patch {
		switch key {
		case "first_name":
			s, ok := asString(value)
			if !ok {
				return invalid(key, "must be a string")
			}
			name, err := validateName(key, s)
			if err != nil {
				return err
			}
			assign = append(assign, func() { u.FirstName = name })
		case "last_name":
			s, ok := asString(value)
			if !ok {
				return invalid(key, "must be a string")
			}
			name, err := validateName(key, s)
			if err != nil {
				return err
			}
			assign = append(assign, func() { u.LastName = name })
		case "email":
			s, ok := asString(value)
			if !ok {
				return invalid(key, "must be a string")
			}
			addr, err := validateEmail(s)
			if err != nil {
				return err
			}
			assign = append(assign, func() { u.Email = addr })
		case "password":
			s, ok := asString(value)
			if !ok || s == "" {
				return invalid(key, "is required")
			}
			hash, err := utils.HashPassword(s, utils.HashCost(u.PasswordHash))
			if err != nil {
				return invalid(key, "could not be hashed")
			}
			assign = append(assign, func() { u.PasswordHash = hash })
		case "is_admin":
			b, ok := asBool(value)
			if !ok {
				return invalid(key, "must be a boolean")
			}
			assign = append(assign, func() { u.IsAdmin = b })
		default:
			return invalid(key, "is not an updatable field")
		}
	}
	for _, set := range assign {
		set()
	}
	u.Touch()
	return nil
}
