package ticketing

import "context"

// ReservationRepository defines the persistence operations for
// reservations. There are no update or delete operations: stored
// reservations are immutable.
type ReservationRepository interface {
	// Create inserts a new reservation
	Create(ctx context.Context, reservation *Reservation) error
	// ListRecent returns the most recent reservations, newest first
	ListRecent(ctx context.Context, limit int) ([]Reservation, error)
	// ListAll returns every reservation, newest first
	ListAll(ctx context.Context) ([]Reservation, error)
}
