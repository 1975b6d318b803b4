package persistence

import (
	"context"

	"github.com/tickets/backend/internal/domain/ticketing"
	"gorm.io/gorm"
)

// GormReservationRepository implements ticketing.ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Create inserts a new reservation
func (r *GormReservationRepository) Create(ctx context.Context, reservation *ticketing.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

// ListRecent returns the most recent reservations, newest first.
// The id column breaks ties so equal timestamps keep a stable order.
func (r *GormReservationRepository) ListRecent(ctx context.Context, limit int) ([]ticketing.Reservation, error) {
	var reservations []ticketing.Reservation
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListAll returns every reservation, newest first
func (r *GormReservationRepository) ListAll(ctx context.Context) ([]ticketing.Reservation, error) {
	var reservations []ticketing.Reservation
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
