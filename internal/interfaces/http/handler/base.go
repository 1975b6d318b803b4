package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tickets/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// OK sends a 200 response with the given body
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends the 201 body for a stored reservation
func (h *BaseHandler) Created(c *gin.Context, id uuid.UUID) {
	c.JSON(http.StatusCreated, dto.NewCreatedResponse(id))
}

// ValidationError sends a 400 response with itemized field errors
func (h *BaseHandler) ValidationError(c *gin.Context, errors []string) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(errors))
}

// BadRequest sends a 400 response with a single message
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewMessageResponse(message))
}

// InternalError sends a 500 response with a generic message.
// The underlying error is logged server-side, never sent to the client.
func (h *BaseHandler) InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Something went wrong"))
}
