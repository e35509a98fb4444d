package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holbertonschool/hbnb/internal/facade"
)

// PlaceHandler serves place CRUD endpoints.
type PlaceHandler struct {
	Facade *facade.Facade
}

// NewPlaceHandler constructs a PlaceHandler.
func NewPlaceHandler(f *facade.Facade) *PlaceHandler {
	return &PlaceHandler{Facade: f}
}

type placeReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	AmenityIDs  []string `json:"amenities"`
}

// Create handles POST /v1/places. The owner is always the
// authenticated caller; an owner_id in the body is ignored.
func (h *PlaceHandler) Create(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req placeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p, err := h.Facade.CreatePlace(c.Request().Context(), facade.NewPlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     uid,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// List handles GET /v1/places. An optional owner query parameter
// narrows the listing to one owner's places.
func (h *PlaceHandler) List(c echo.Context) error {
	if owner := c.QueryParam("owner"); owner != "" {
		places, err := h.Facade.ListPlacesByOwner(c.Request().Context(), owner)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": places})
	}
	places, err := h.Facade.ListPlaces(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": places})
}

// Get handles GET /v1/places/:id with resolved amenities and reviews.
func (h *PlaceHandler) Get(c echo.Context) error {
	detail, err := h.Facade.GetPlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Update handles PUT /v1/places/:id for the owner or an admin.
func (h *PlaceHandler) Update(c echo.Context) error {
	ok, err := h.authorize(c)
	if !ok {
		return err
	}
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p, err := h.Facade.UpdatePlace(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /v1/places/:id for the owner or an admin.
// Reviews of the place go with it.
func (h *PlaceHandler) Delete(c echo.Context) error {
	ok, err := h.authorize(c)
	if !ok {
		return err
	}
	found, err := h.Facade.DeletePlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "place not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// authorize checks that the caller may modify the target place. On any
// failure it writes the response itself and returns false, so callers
// just return the accompanying error.
func (h *PlaceHandler) authorize(c echo.Context) (bool, error) {
	uid, err := currentUserID(c)
	if err != nil {
		return false, c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if currentIsAdmin(c) {
		return true, nil
	}
	detail, err := h.Facade.GetPlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return false, writeError(c, err)
	}
	if detail.OwnerID != uid {
		return false, c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
	}
	return true, nil
}
