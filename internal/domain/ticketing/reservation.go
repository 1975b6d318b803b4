package ticketing

import (
	"github.com/tickets/backend/internal/domain/shared"
)

// TicketType represents a ticket category offered for the event
type TicketType string

const (
	TicketTypeGA            TicketType = "GA Pass"
	TicketTypeGAParking     TicketType = "GA Pass + Parking"
	TicketTypeVIP           TicketType = "VIP Pass"
	TicketTypeFirstDay      TicketType = "1st Day Ticket"
	TicketTypeSecondDay     TicketType = "2nd Day Ticket"
	TicketTypeWeekendPark   TicketType = "Weekend Parking Pass"
	TicketTypeSingleDayPark TicketType = "Single Day Parking"
)

// TicketTypes lists every valid ticket category, in display order.
var TicketTypes = []TicketType{
	TicketTypeGA,
	TicketTypeGAParking,
	TicketTypeVIP,
	TicketTypeFirstDay,
	TicketTypeSecondDay,
	TicketTypeWeekendPark,
	TicketTypeSingleDayPark,
}

// IsValid reports whether t is one of the offered ticket categories
func (t TicketType) IsValid() bool {
	for _, known := range TicketTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Reservation represents one stored ticket reservation.
// It is created exactly once via the submission endpoint and never
// updated or deleted afterwards.
type Reservation struct {
	shared.BaseEntity
	FirstName  string     `gorm:"type:varchar(80);not null"`
	LastName   string     `gorm:"type:varchar(80);not null"`
	Email      string     `gorm:"type:varchar(160);not null;index"`
	TicketType TicketType `gorm:"type:varchar(50);not null"`
	Quantity   int        `gorm:"not null"`
	Notes      string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Reservation) TableName() string {
	return "ticket_reservations"
}

// NewReservation creates a reservation from an already-validated
// submission, assigning its identifier and creation timestamp.
func NewReservation(sub Submission) *Reservation {
	return &Reservation{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  sub.FirstName,
		LastName:   sub.LastName,
		Email:      sub.Email,
		TicketType: sub.TicketType,
		Quantity:   sub.Quantity,
		Notes:      sub.Notes,
	}
}
