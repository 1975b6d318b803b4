package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tickets/backend/internal/interfaces/http/dto"
)

// StorePinger reports whether the backing store is reachable
type StorePinger interface {
	Ping() error
}

// HealthHandler reports service liveness and store connectivity
type HealthHandler struct {
	BaseHandler
	store StorePinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store StorePinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Check)
}

// Check always returns 200; store connectivity is reported in the body
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		OK:    true,
		Store: h.store.Ping() == nil,
	})
}
