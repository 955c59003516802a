package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedbackd/internal/api/dto"
	"github.com/martijn/feedbackd/internal/api/middleware"
	"github.com/martijn/feedbackd/internal/core/domain"
	"github.com/martijn/feedbackd/internal/core/service"
)

type UserHandler struct {
	authService     *service.AuthService
	feedbackService *service.FeedbackService
}

func NewUserHandler(authService *service.AuthService, feedbackService *service.FeedbackService) *UserHandler {
	return &UserHandler{
		authService:     authService,
		feedbackService: feedbackService,
	}
}

// ShowUser handles GET /users/:username
func (h *UserHandler) ShowUser(c *gin.Context) {
	username := c.Param("username")
	actor, _ := middleware.CurrentUsername(c)

	user, err := h.authService.GetUser(c.Request.Context(), actor, username)
	if err != nil {
		respondError(c, err)
		return
	}

	feedback, err := h.feedbackService.ListForUser(c.Request.Context(), actor, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user, feedback))
}

// DeleteUser handles POST /users/:username/delete. The session ends
// with the account: the session row cascades away with the user, and
// the cookie is cleared here.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	actor, _ := middleware.CurrentUsername(c)

	if err := h.authService.DeleteUser(c.Request.Context(), actor, username); err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

func toUserResponse(user *domain.User, feedback []*domain.Feedback) dto.UserResponse {
	response := dto.UserResponse{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		Feedback:  make([]dto.FeedbackResponse, len(feedback)),
	}
	for i, f := range feedback {
		response.Feedback[i] = toFeedbackResponse(f)
	}
	return response
}
