package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedbackd/internal/api/dto"
	"github.com/martijn/feedbackd/internal/core/domain"
)

// respondError maps the error taxonomy to HTTP for routes without an
// identity requirement.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:  "Bad Request",
			Fields: ve.Fields,
			Code:   http.StatusBadRequest,
		})
	case errors.Is(err, domain.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "Conflict",
			Message: "Username already taken",
			Code:    http.StatusConflict,
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Identical body for unknown username and wrong password.
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "Invalid username or password",
			Code:    http.StatusUnauthorized,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		respondUnauthorized(c)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: "Resource not found",
			Code:    http.StatusNotFound,
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

// respondOwnedError is respondError for identity-scoped resource
// routes. An absent row and an ownership mismatch produce the exact
// same response, so the error text never reveals whether the resource
// exists.
func respondOwnedError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respondUnauthorized(c)
		return
	}
	respondError(c, err)
}

func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   "Unauthorized",
		Message: "You are not allowed to access this resource",
		Code:    http.StatusUnauthorized,
	})
}
