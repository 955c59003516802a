package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedbackd/internal/api/dto"
	"github.com/martijn/feedbackd/internal/api/middleware"
	"github.com/martijn/feedbackd/internal/core/domain"
	"github.com/martijn/feedbackd/internal/core/service"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// ShowAddForm handles GET /users/:username/feedback/add
func (h *FeedbackHandler) ShowAddForm(c *gin.Context) {
	username := c.Param("username")
	actor, _ := middleware.CurrentUsername(c)

	if err := service.RequireOwner(actor, username); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FormResponse{
		Fields: []dto.FormField{
			{Name: "title", Type: "string", Required: true},
			{Name: "content", Type: "string", Required: true},
		},
	})
}

// AddFeedback handles POST /users/:username/feedback/add
func (h *FeedbackHandler) AddFeedback(c *gin.Context) {
	username := c.Param("username")
	actor, _ := middleware.CurrentUsername(c)

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	feedback, err := h.feedbackService.Create(c.Request.Context(), actor, username, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%s", feedback.Username))
}

// ShowFeedback handles GET /feedback/:id/update
func (h *FeedbackHandler) ShowFeedback(c *gin.Context) {
	id, ok := h.feedbackID(c)
	if !ok {
		return
	}
	actor, _ := middleware.CurrentUsername(c)

	feedback, err := h.feedbackService.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondOwnedError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFeedbackResponse(feedback))
}

// UpdateFeedback handles POST /feedback/:id/update
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	id, ok := h.feedbackID(c)
	if !ok {
		return
	}
	actor, _ := middleware.CurrentUsername(c)

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	feedback, err := h.feedbackService.Update(c.Request.Context(), actor, id, req.Title, req.Content)
	if err != nil {
		respondOwnedError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%s", feedback.Username))
}

// DeleteFeedback handles POST /feedback/:id/delete
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := h.feedbackID(c)
	if !ok {
		return
	}
	actor, _ := middleware.CurrentUsername(c)

	owner, err := h.feedbackService.Delete(c.Request.Context(), actor, id)
	if err != nil {
		respondOwnedError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%s", owner))
}

func (h *FeedbackHandler) feedbackID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid feedback ID",
			Code:    http.StatusBadRequest,
		})
		return 0, false
	}
	return id, true
}

func toFeedbackResponse(feedback *domain.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:        feedback.ID,
		Title:     feedback.Title,
		Content:   feedback.Content,
		Username:  feedback.Username,
		CreatedAt: feedback.CreatedAt,
		UpdatedAt: feedback.UpdatedAt,
	}
}
