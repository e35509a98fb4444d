package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holbertonschool/hbnb/internal/facade"
	"github.com/holbertonschool/hbnb/internal/middleware"
	"github.com/holbertonschool/hbnb/internal/model"
	"github.com/holbertonschool/hbnb/internal/repository"
)

// currentUserID extracts the authenticated user's id stored by JWTAuth.
func currentUserID(c echo.Context) (string, error) {
	id, ok := c.Get(middleware.CtxUserID).(string)
	if !ok || id == "" {
		return "", errors.New("missing user_id in context")
	}
	return id, nil
}

// currentIsAdmin reports whether the caller authenticated as an admin.
func currentIsAdmin(c echo.Context) bool {
	isAdmin, _ := c.Get(middleware.CtxIsAdmin).(bool)
	return isAdmin
}

// writeError maps a facade error to exactly one HTTP status family by
// its kind: validation 400, missing 404, conflict 409, anything else
// 500. Message text is never inspected.
func writeError(c echo.Context, err error) error {
	var ve *model.ValidationError
	var ce *facade.ConflictError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
	case errors.As(err, &ce):
		return c.JSON(http.StatusConflict, echo.Map{"error": ce.Message})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
