package ticketing

import (
	"time"

	"github.com/google/uuid"

	"github.com/tickets/backend/internal/domain/ticketing"
)

// ReservationResponse represents a reservation in API responses
type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	TicketType string    `json:"ticketType"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListQuery represents query options for listing reservations
type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

// ToReservationResponse converts a domain Reservation to ReservationResponse
func ToReservationResponse(r *ticketing.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		TicketType: string(r.TicketType),
		Quantity:   r.Quantity,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
	}
}

// ToReservationResponses converts a slice of reservations
func ToReservationResponses(reservations []ticketing.Reservation) []ReservationResponse {
	responses := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		responses[i] = ToReservationResponse(&reservations[i])
	}
	return responses
}
