package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestNewUser_Valid(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "Ada@Example.COM", "s3cret!", false, bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ada", u.FirstName)
	assert.Equal(t, "ada@example.com", u.Email, "email is stored lowercase")
	assert.False(t, u.IsAdmin)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt, "fresh entities share one timestamp")
	assert.True(t, u.VerifyPassword("s3cret!"))
	assert.False(t, u.VerifyPassword("wrong"))
}

func TestNewUser_TrimsAndValidatesNames(t *testing.T) {
	u, err := NewUser("  Jean-Luc ", "Picard", "jl@example.com", "pw", false, bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, "Jean-Luc", u.FirstName)

	_, err = NewUser("", "Picard", "jl@example.com", "pw", false, bcrypt.MinCost)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "first_name", verr.Field)

	_, err = NewUser("Bob42", "Picard", "jl@example.com", "pw", false, bcrypt.MinCost)
	require.ErrorAs(t, err, &verr)

	long := make([]rune, 51)
	for i := range long {
		long[i] = 'a'
	}
	_, err = NewUser(string(long), "Picard", "jl@example.com", "pw", false, bcrypt.MinCost)
	require.ErrorAs(t, err, &verr)
}

func TestNewUser_RejectsBadEmail(t *testing.T) {
	for _, email := range []string{"", "nope", "a b@example.com", "Name <a@example.com>"} {
		_, err := NewUser("Ada", "Lovelace", email, "pw", false, bcrypt.MinCost)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "email %q should be rejected", email)
		assert.Equal(t, "email", verr.Field)
	}
}

func TestNewUser_RejectsEmptyPassword(t *testing.T) {
	_, err := NewUser("Ada", "Lovelace", "ada@example.com", "", false, bcrypt.MinCost)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestUser_PasswordNeverMarshalled(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "ada@example.com", "pw", false, bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEmpty(t, u.PasswordHash)

	// json tag "-" keeps the hash out of API responses.
	_, ok := u.Attribute("password")
	assert.False(t, ok)
}

func TestUser_ApplyPatch(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "ada@example.com", "pw", false, bcrypt.MinCost)
	require.NoError(t, err)
	created := u.CreatedAt

	err = u.ApplyPatch(map[string]any{"first_name": "Grace", "email": "Grace@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", u.FirstName)
	assert.Equal(t, "grace@example.com", u.Email)
	assert.Equal(t, created, u.CreatedAt)
	assert.True(t, u.UpdatedAt.After(created) || u.UpdatedAt.Equal(created))
}

func TestUser_ApplyPatch_RejectsUnknownField(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "ada@example.com", "pw", false, bcrypt.MinCost)
	require.NoError(t, err)

	err = u.ApplyPatch(map[string]any{"nickname": "ace"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nickname", verr.Field)
}

func TestUser_ApplyPatch_AtomicOnFailure(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "ada@example.com", "pw", false, bcrypt.MinCost)
	require.NoError(t, err)
	before := *u

	// first_name is valid on its own, but the broken email must leave
	// the whole entity untouched.
	err = u.ApplyPatch(map[string]any{"first_name": "Grace", "email": "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, before.FirstName, u.FirstName)
	assert.Equal(t, before.Email, u.Email)
	assert.Equal(t, before.UpdatedAt, u.UpdatedAt)
}

func TestUser_ApplyPatch_RehashesPassword(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "ada@example.com", "old", false, bcrypt.MinCost)
	require.NoError(t, err)
	oldHash := u.PasswordHash

	require.NoError(t, u.ApplyPatch(map[string]any{"password": "new"}))
	assert.NotEqual(t, oldHash, u.PasswordHash)
	assert.True(t, u.VerifyPassword("new"))
	assert.False(t, u.VerifyPassword("old"))
}

func TestUser_Attribute(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "ada@example.com", "pw", false, bcrypt.MinCost)
	require.NoError(t, err)

	v, ok := u.Attribute("email")
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", v)

	_, ok = u.Attribute("no_such_attribute")
	assert.False(t, ok)
}

func TestValidationError_Unwrap(t *testing.T) {
	err := invalid("email", "is not a valid email address")
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "email: is not a valid email address", err.Error())
}
