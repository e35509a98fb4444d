package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holbertonschool/hbnb/internal/facade"
)

// AmenityHandler serves amenity endpoints. Reads are public; writes
// sit behind the admin middleware.
type AmenityHandler struct {
	Facade *facade.Facade
}

// NewAmenityHandler constructs an AmenityHandler.
func NewAmenityHandler(f *facade.Facade) *AmenityHandler {
	return &AmenityHandler{Facade: f}
}

type amenityReq struct {
	Name string `json:"name"`
}

// Create handles POST /v1/amenities (admin only).
func (h *AmenityHandler) Create(c echo.Context) error {
	var req amenityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	a, err := h.Facade.CreateAmenity(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// List handles GET /v1/amenities.
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.Facade.ListAmenities(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": amenities})
}

// Get handles GET /v1/amenities/:id.
func (h *AmenityHandler) Get(c echo.Context) error {
	a, err := h.Facade.GetAmenity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Update handles PUT /v1/amenities/:id (admin only).
func (h *AmenityHandler) Update(c echo.Context) error {
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	a, err := h.Facade.UpdateAmenity(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /v1/amenities/:id (admin only). Places that
// referenced the amenity drop it from their lists.
func (h *AmenityHandler) Delete(c echo.Context) error {
	found, err := h.Facade.DeleteAmenity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "amenity not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
