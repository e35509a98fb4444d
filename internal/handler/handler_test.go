package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/holbertonschool/hbnb/internal/config"
	"github.com/holbertonschool/hbnb/internal/facade"
	"github.com/holbertonschool/hbnb/internal/handler"
	"github.com/holbertonschool/hbnb/internal/repository"
	"github.com/holbertonschool/hbnb/internal/router"
)

const testSecret = "test-secret"

// newTestServer wires the whole API over the in-memory backend, exactly
// as main does minus Redis and the broker.
func newTestServer(t *testing.T) (*echo.Echo, *facade.Facade) {
	t.Helper()
	cfg := config.Config{
		JWTSecret:    testSecret,
		AccessTTLMin: 15,
		BcryptCost:   bcrypt.MinCost,
	}
	app := facade.New(repository.NewMemoryStores(), nil, cfg.BcryptCost)
	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, app),
		Users:   handler.NewUserHandler(app),
		Places:  handler.NewPlaceHandler(app),
		Reviews: handler.NewReviewHandler(app),
		Amenity: handler.NewAmenityHandler(app),
		Admin:   handler.NewAdminHandler(app),
	}, cfg.JWTSecret, nil)
	return e, app
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// register creates a user through the public endpoint and returns its id.
func register(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/v1/users", "", map[string]any{
		"first_name": "Test", "last_name": "User", "email": email, "password": "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(t, rec)["id"].(string)
}

// login exchanges credentials for an access token.
func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email": email, "password": "pw",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(t, rec)["access_token"].(string)
}

// adminToken provisions an admin through the facade and logs them in.
func adminToken(t *testing.T, e *echo.Echo, app *facade.Facade) string {
	t.Helper()
	_, err := app.CreateUser(context.Background(), facade.NewUserInput{
		FirstName: "Root", LastName: "Admin", Email: "admin@example.com",
		Password: "pw", IsAdmin: true,
	})
	require.NoError(t, err)
	return login(t, e, "admin@example.com")
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/users", "", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace",
		"email": "ada@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.NotEmpty(t, body["id"])
	assert.NotContains(t, rec.Body.String(), "password", "hash must never leave the API")
	assert.Equal(t, false, body["is_admin"], "self-registration never grants admin")

	// Duplicate email.
	rec = doJSON(e, http.MethodPost, "/v1/users", "", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace",
		"email": "ada@example.com", "password": "pw",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Broken email.
	rec = doJSON(e, http.MethodPost, "/v1/users", "", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace",
		"email": "nope", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	token := login(t, e, "ada@example.com")
	require.NotEmpty(t, token)

	rec = doJSON(e, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, body["id"], decode(t, rec)["user_id"])
}

func TestLogin_BadCredentials(t *testing.T) {
	e, _ := newTestServer(t)
	register(t, e, "ada@example.com")

	wrongPW := doJSON(e, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email": "ada@example.com", "password": "nope",
	})
	unknown := doJSON(e, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email": "ghost@example.com", "password": "pw",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPW.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPW.Body.String(), unknown.Body.String(),
		"unknown email and wrong password must be indistinguishable")
}

func TestUserUpdate_Authorization(t *testing.T) {
	e, _ := newTestServer(t)
	adaID := register(t, e, "ada@example.com")
	register(t, e, "bob@example.com")
	ada := login(t, e, "ada@example.com")
	bob := login(t, e, "bob@example.com")

	// No token.
	rec := doJSON(e, http.MethodPut, "/v1/users/"+adaID, "", map[string]any{"first_name": "A"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Another user's profile.
	rec = doJSON(e, http.MethodPut, "/v1/users/"+adaID, bob, map[string]any{"first_name": "A"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Self, regular field.
	rec = doJSON(e, http.MethodPut, "/v1/users/"+adaID, ada, map[string]any{"first_name": "Grace"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Grace", decode(t, rec)["first_name"])

	// Self, but email and password are admin-only changes.
	rec = doJSON(e, http.MethodPut, "/v1/users/"+adaID, ada, map[string]any{"email": "new@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(e, http.MethodPut, "/v1/users/"+adaID, ada, map[string]any{"password": "newpw"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(e, http.MethodPut, "/v1/users/"+adaID, ada, map[string]any{"is_admin": true})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPlaceLifecycle(t *testing.T) {
	e, _ := newTestServer(t)
	ownerID := register(t, e, "owner@example.com")
	register(t, e, "other@example.com")
	owner := login(t, e, "owner@example.com")
	other := login(t, e, "other@example.com")

	// Creation requires a token.
	rec := doJSON(e, http.MethodPost, "/v1/places", "", map[string]any{"title": "Loft", "price": 50})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/places", owner, map[string]any{
		"title": "Loft", "description": "Nice", "price": 50.0,
		"latitude": 48.85, "longitude": 2.35,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	placeID := created["id"].(string)
	assert.Equal(t, ownerID, created["owner_id"], "owner is always the caller")

	// Public read with joined detail.
	rec = doJSON(e, http.MethodGet, "/v1/places/"+placeID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode(t, rec)
	assert.Equal(t, "Loft", detail["title"])
	assert.NotNil(t, detail["amenities"])
	assert.NotNil(t, detail["reviews"])

	// Update by a stranger, then by the owner.
	rec = doJSON(e, http.MethodPut, "/v1/places/"+placeID, other, map[string]any{"price": 60.0})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(e, http.MethodPut, "/v1/places/"+placeID, owner, map[string]any{"price": 60.0})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 60.0, decode(t, rec)["price"])

	// Delete by a stranger fails; the owner succeeds; a second delete 404s.
	rec = doJSON(e, http.MethodDelete, "/v1/places/"+placeID, other, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/places/"+placeID, owner, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/places/"+placeID, owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlace_AdminOverridesOwnership(t *testing.T) {
	e, app := newTestServer(t)
	register(t, e, "owner@example.com")
	owner := login(t, e, "owner@example.com")
	admin := adminToken(t, e, app)

	rec := doJSON(e, http.MethodPost, "/v1/places", owner, map[string]any{
		"title": "Loft", "price": 50.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	placeID := decode(t, rec)["id"].(string)

	rec = doJSON(e, http.MethodPut, "/v1/places/"+placeID, admin, map[string]any{"title": "Renamed"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/places/"+placeID, admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReviewLifecycle(t *testing.T) {
	e, _ := newTestServer(t)
	register(t, e, "owner@example.com")
	guestID := register(t, e, "guest@example.com")
	owner := login(t, e, "owner@example.com")
	guest := login(t, e, "guest@example.com")

	rec := doJSON(e, http.MethodPost, "/v1/places", owner, map[string]any{
		"title": "Loft", "price": 50.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	placeID := decode(t, rec)["id"].(string)

	// The owner cannot review their own place.
	rec = doJSON(e, http.MethodPost, "/v1/reviews", owner, map[string]any{
		"text": "mine is great", "rating": 5, "place_id": placeID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/reviews", guest, map[string]any{
		"text": "lovely", "rating": 5, "place_id": placeID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	review := decode(t, rec)
	reviewID := review["id"].(string)
	assert.Equal(t, guestID, review["user_id"], "author is always the caller")

	// Second review of the same place by the same user.
	rec = doJSON(e, http.MethodPost, "/v1/reviews", guest, map[string]any{
		"text": "again", "rating": 3, "place_id": placeID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Rating out of range.
	rec = doJSON(e, http.MethodPost, "/v1/places", owner, map[string]any{
		"title": "Second loft", "price": 70.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	secondPlaceID := decode(t, rec)["id"].(string)
	rec = doJSON(e, http.MethodPost, "/v1/reviews", guest, map[string]any{
		"text": "over the top", "rating": 6, "place_id": secondPlaceID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown place resolves to 404, not silent acceptance.
	rec = doJSON(e, http.MethodPost, "/v1/reviews", guest, map[string]any{
		"text": "ghost place", "rating": 3, "place_id": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Public listing under the place.
	rec = doJSON(e, http.MethodGet, "/v1/places/"+placeID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode(t, rec)["items"].([]any)
	assert.Len(t, items, 1)

	rec = doJSON(e, http.MethodGet, "/v1/places/ghost/reviews", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The author edits, a stranger cannot.
	rec = doJSON(e, http.MethodPut, "/v1/reviews/"+reviewID, owner, map[string]any{"rating": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(e, http.MethodPut, "/v1/reviews/"+reviewID, guest, map[string]any{"rating": 4})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/v1/reviews/"+reviewID, guest, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/reviews/"+reviewID, guest, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAmenity_AdminOnlyWrites(t *testing.T) {
	e, app := newTestServer(t)
	register(t, e, "user@example.com")
	user := login(t, e, "user@example.com")
	admin := adminToken(t, e, app)

	rec := doJSON(e, http.MethodPost, "/v1/amenities", "", map[string]any{"name": "Wi-Fi"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(e, http.MethodPost, "/v1/amenities", user, map[string]any{"name": "Wi-Fi"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/amenities", admin, map[string]any{"name": "Wi-Fi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	amenityID := decode(t, rec)["id"].(string)

	// Reads stay public.
	rec = doJSON(e, http.MethodGet, "/v1/amenities", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["items"].([]any), 1)

	rec = doJSON(e, http.MethodPut, "/v1/amenities/"+amenityID, admin, map[string]any{"name": "Pool"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pool", decode(t, rec)["name"])

	rec = doJSON(e, http.MethodDelete, "/v1/amenities/"+amenityID, admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/amenities/"+amenityID, admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUserManagement(t *testing.T) {
	e, app := newTestServer(t)
	userID := register(t, e, "user@example.com")
	user := login(t, e, "user@example.com")
	admin := adminToken(t, e, app)

	// The admin group is closed to regular users.
	rec := doJSON(e, http.MethodPost, "/v1/admin/users", user, map[string]any{
		"first_name": "Eve", "last_name": "Intruder",
		"email": "eve@example.com", "password": "pw", "is_admin": true,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/admin/users", admin, map[string]any{
		"first_name": "Second", "last_name": "Admin",
		"email": "second@example.com", "password": "pw", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, decode(t, rec)["is_admin"])

	// Admins may rotate another user's email and password.
	rec = doJSON(e, http.MethodPut, "/v1/admin/users/"+userID, admin, map[string]any{
		"email": "renamed@example.com", "password": "newpw",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed@example.com", decode(t, rec)["email"])

	rec = doJSON(e, http.MethodDelete, "/v1/admin/users/"+userID, admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/admin/users/"+userID, admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserDetail_PublicRead(t *testing.T) {
	e, _ := newTestServer(t)
	ownerID := register(t, e, "owner@example.com")
	owner := login(t, e, "owner@example.com")

	rec := doJSON(e, http.MethodPost, "/v1/places", owner, map[string]any{
		"title": "Loft", "price": 50.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/users/"+ownerID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode(t, rec)
	assert.Len(t, detail["places"].([]any), 1)
	assert.Empty(t, detail["reviews"].([]any))

	rec = doJSON(e, http.MethodGet, "/v1/users/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
