package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/holbertonschool/hbnb/internal/config"
	"github.com/holbertonschool/hbnb/internal/facade"
	"github.com/holbertonschool/hbnb/internal/repository"
	"github.com/holbertonschool/hbnb/internal/utils"
)

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Cfg    config.Config
	Facade *facade.Facade
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config, f *facade.Facade) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Facade: f}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type authResp struct {
	User    userPart  `json:"user"`
	Token   string    `json:"access_token"`
	Expires time.Time `json:"expires"`
}

// Login verifies credentials and issues a signed access token carrying
// the user id and admin flag. Unknown email and wrong password answer
// identically so the endpoint leaks nothing about registered addresses.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	u, err := h.Facade.GetUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !u.VerifyPassword(req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.IsAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:    userPart{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin},
		Token:   access.Token,
		Expires: access.Exp,
	})
}

// Me returns the authenticated identity stored in the request context.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  uid,
		"is_admin": currentIsAdmin(c),
	})
}
