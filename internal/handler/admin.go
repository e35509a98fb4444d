package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holbertonschool/hbnb/internal/facade"
)

// AdminHandler serves the admin-only user management endpoints. These
// are the only routes that may set the admin flag or change another
// user's email and password.
type AdminHandler struct {
	Facade *facade.Facade
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(f *facade.Facade) *AdminHandler {
	return &AdminHandler{Facade: f}
}

type adminUserReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

// CreateUser handles POST /v1/admin/users.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req adminUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	u, err := h.Facade.CreateUser(c.Request().Context(), facade.NewUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// UpdateUser handles PUT /v1/admin/users/:id. The full patch goes
// through unrestricted, so admins may rotate emails and passwords.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	u, err := h.Facade.UpdateUser(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /v1/admin/users/:id. The user's places
// and reviews are removed with them.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	found, err := h.Facade.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
