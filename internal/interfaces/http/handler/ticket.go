package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appticketing "github.com/tickets/backend/internal/application/ticketing"
	"github.com/tickets/backend/internal/domain/ticketing"
	"github.com/tickets/backend/internal/infrastructure/export"
	"github.com/tickets/backend/internal/infrastructure/logger"
	"github.com/tickets/backend/internal/interfaces/http/middleware"
)

// TicketHandler handles reservation submission, listing and export
type TicketHandler struct {
	BaseHandler
	service *appticketing.ReservationService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(service *appticketing.ReservationService) *TicketHandler {
	return &TicketHandler{service: service}
}

// RegisterRoutes registers ticket routes
func (h *TicketHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tickets := rg.Group("/tickets")
	{
		tickets.POST("", h.Create)
		tickets.GET("", h.List)
		tickets.GET("/export", h.Export)
	}
}

// Create validates a submission, stores it and returns the new id
func (h *TicketHandler) Create(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.ValidationError(c, []string{"request body must be a JSON object"})
		return
	}

	submission, validationErrors := ticketing.ValidateSubmission(raw)
	if len(validationErrors) > 0 {
		h.ValidationError(c, validationErrors)
		return
	}

	response, err := h.service.Create(c.Request.Context(), *submission)
	if err != nil {
		logger.GetGinLogger(c).Error("Failed to store reservation",
			zap.String("request_id", getRequestID(c)),
			zap.Error(err),
		)
		h.InternalError(c)
		return
	}

	h.Created(c, response.ID)
}

// List returns the most recent reservations, newest first
func (h *TicketHandler) List(c *gin.Context) {
	var query appticketing.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, middleware.FormatBindingError(err))
		return
	}

	reservations, err := h.service.List(c.Request.Context(), query.Limit)
	if err != nil {
		logger.GetGinLogger(c).Error("Failed to list reservations",
			zap.String("request_id", getRequestID(c)),
			zap.Error(err),
		)
		h.InternalError(c)
		return
	}

	h.OK(c, reservations)
}

// Export streams every reservation as a CSV attachment
func (h *TicketHandler) Export(c *gin.Context) {
	reservations, err := h.service.Export(c.Request.Context())
	if err != nil {
		logger.GetGinLogger(c).Error("Failed to export reservations",
			zap.String("request_id", getRequestID(c)),
			zap.Error(err),
		)
		h.InternalError(c)
		return
	}

	document := export.Document(reservations)

	c.Header("Content-Disposition", `attachment; filename=`+export.Filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(document))
}
