package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/holbertonschool/hbnb/internal/facade"
)

// ReviewHandler serves review CRUD endpoints.
type ReviewHandler struct {
	Facade *facade.Facade
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(f *facade.Facade) *ReviewHandler {
	return &ReviewHandler{Facade: f}
}

type reviewReq struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
}

// Create handles POST /v1/reviews. The author is always the
// authenticated caller.
func (h *ReviewHandler) Create(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	r, err := h.Facade.CreateReview(c.Request().Context(), facade.NewReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		UserID:  uid,
		PlaceID: req.PlaceID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// List handles GET /v1/reviews.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.Facade.ListReviews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": reviews})
}

// Get handles GET /v1/reviews/:id.
func (h *ReviewHandler) Get(c echo.Context) error {
	r, err := h.Facade.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// ListByPlace handles GET /v1/places/:id/reviews.
func (h *ReviewHandler) ListByPlace(c echo.Context) error {
	reviews, err := h.Facade.ListReviewsByPlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": reviews})
}

// Update handles PUT /v1/reviews/:id for the author or an admin.
func (h *ReviewHandler) Update(c echo.Context) error {
	ok, err := h.authorize(c)
	if !ok {
		return err
	}
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	r, err := h.Facade.UpdateReview(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// Delete handles DELETE /v1/reviews/:id for the author or an admin.
func (h *ReviewHandler) Delete(c echo.Context) error {
	ok, err := h.authorize(c)
	if !ok {
		return err
	}
	found, err := h.Facade.DeleteReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// authorize checks that the caller may modify the target review. On any
// failure it writes the response itself and returns false.
func (h *ReviewHandler) authorize(c echo.Context) (bool, error) {
	uid, err := currentUserID(c)
	if err != nil {
		return false, c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if currentIsAdmin(c) {
		return true, nil
	}
	r, err := h.Facade.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return false, writeError(c, err)
	}
	if r.UserID != uid {
		return false, c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
	}
	return true, nil
}
