package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holbertonschool/hbnb/internal/facade"
)

// UserHandler serves registration and user CRUD endpoints.
type UserHandler struct {
	Facade *facade.Facade
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(f *facade.Facade) *UserHandler {
	return &UserHandler{Facade: f}
}

type registerReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Register handles POST /v1/users. Self-registration never grants the
// admin flag; admin accounts go through the admin endpoints.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	u, err := h.Facade.CreateUser(c.Request().Context(), facade.NewUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// List handles GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Facade.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": users})
}

// Get handles GET /v1/users/:id and returns the user together with
// their places and reviews.
func (h *UserHandler) Get(c echo.Context) error {
	detail, err := h.Facade.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Update handles PUT /v1/users/:id. A user may only update their own
// profile, and email/password changes are reserved for the admin
// endpoints.
func (h *UserHandler) Update(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	if id != uid && !currentIsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
	}
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !currentIsAdmin(c) {
		if _, ok := patch["email"]; ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "you cannot modify email or password"})
		}
		if _, ok := patch["password"]; ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "you cannot modify email or password"})
		}
		if _, ok := patch["is_admin"]; ok {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
		}
	}
	u, err := h.Facade.UpdateUser(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
