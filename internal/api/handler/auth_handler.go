package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedbackd/internal/api/dto"
	"github.com/martijn/feedbackd/internal/api/middleware"
	"github.com/martijn/feedbackd/internal/core/service"
)

type AuthHandler struct {
	authService    *service.AuthService
	sessionService *service.SessionService
	cookieMaxAge   int // seconds
}

func NewAuthHandler(authService *service.AuthService, sessionService *service.SessionService, sessionTTLMinutes int) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
		cookieMaxAge:   sessionTTLMinutes * 60,
	}
}

// Root handles GET /
func (h *AuthHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/register")
}

// ShowRegisterForm handles GET /register
func (h *AuthHandler) ShowRegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormResponse{
		Fields: []dto.FormField{
			{Name: "username", Type: "string", Required: true},
			{Name: "password", Type: "password", Required: true},
			{Name: "email", Type: "email", Required: false},
			{Name: "first_name", Type: "string", Required: false},
			{Name: "last_name", Type: "string", Required: false},
		},
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.FirstName, req.LastName, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.startSession(c, user.Username); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%s", user.Username))
}

// ShowLoginForm handles GET /login. A request that already carries a
// valid session is sent straight to the user's page.
func (h *AuthHandler) ShowLoginForm(c *gin.Context) {
	if username, ok := middleware.CurrentUsername(c); ok {
		c.Redirect(http.StatusFound, fmt.Sprintf("/users/%s", username))
		return
	}

	c.JSON(http.StatusOK, dto.FormResponse{
		Fields: []dto.FormField{
			{Name: "username", Type: "string", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.startSession(c, user.Username); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%s", user.Username))
}

// Logout handles GET /logout. Idempotent: logging out without a session
// still redirects home.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		_ = h.sessionService.Logout(c.Request.Context(), cookie)
	}

	h.clearCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// startSession replaces any session bound to the current cookie with a
// fresh one for username.
func (h *AuthHandler) startSession(c *gin.Context, username string) error {
	if old, err := c.Cookie(middleware.SessionCookieName); err == nil && old != "" {
		_ = h.sessionService.Logout(c.Request.Context(), old)
	}

	token, err := h.sessionService.Login(c.Request.Context(), username)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookieName, token, h.cookieMaxAge, "/", "", false, true)
	return nil
}

func (h *AuthHandler) clearCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}
