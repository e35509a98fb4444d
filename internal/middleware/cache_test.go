package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func keyFor(target, routeTemplate string) string {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(routeTemplate)
	return cacheKey("cache", c)
}

func TestCacheKey_DistinguishesIDsUnderOneRoute(t *testing.T) {
	// Two entities behind the same parameterized route must never share
	// a key, or the first cached body would be served for both ids.
	a := keyFor("/v1/places/place-a", "/v1/places/:id")
	b := keyFor("/v1/places/place-b", "/v1/places/:id")
	assert.NotEqual(t, a, b)

	// The same request twice maps to the same key.
	assert.Equal(t, a, keyFor("/v1/places/place-a", "/v1/places/:id"))
}

func TestCacheKey_QueryIsPartOfTheKey(t *testing.T) {
	plain := keyFor("/v1/places", "/v1/places")
	filtered := keyFor("/v1/places?owner=u1", "/v1/places")
	assert.NotEqual(t, plain, filtered)
}
