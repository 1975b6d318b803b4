package ticketing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tickets/backend/internal/domain/ticketing"
)

const (
	// DefaultListLimit is applied when the caller does not specify one
	DefaultListLimit = 50
	// MaxListLimit caps the number of reservations a single list call returns
	MaxListLimit = 200

	notifyTimeout = 30 * time.Second
)

// Notifier delivers reservation confirmations to a guest
type Notifier interface {
	SendConfirmation(ctx context.Context, reservation *ticketing.Reservation) error
}

// ReservationService handles reservation business operations
type ReservationService struct {
	reservationRepo ticketing.ReservationRepository
	notifier        Notifier
	logger          *zap.Logger
}

// NewReservationService creates a new ReservationService.
// notifier may be nil when mail delivery is not configured.
func NewReservationService(reservationRepo ticketing.ReservationRepository, notifier Notifier, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Create persists a validated submission and dispatches the confirmation
// email in the background. Notification failures are logged, never returned.
func (s *ReservationService) Create(ctx context.Context, sub ticketing.Submission) (*ReservationResponse, error) {
	reservation := ticketing.NewReservation(sub)

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go s.sendConfirmation(reservation)
	}

	response := ToReservationResponse(reservation)
	return &response, nil
}

// sendConfirmation runs detached from the request lifecycle, so it uses
// its own context rather than the request's.
func (s *ReservationService) sendConfirmation(reservation *ticketing.Reservation) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := s.notifier.SendConfirmation(ctx, reservation); err != nil {
		s.logger.Error("Failed to send confirmation email",
			zap.String("reservation_id", reservation.ID.String()),
			zap.Error(err),
		)
	}
}

// List returns the most recent reservations, newest first
func (s *ReservationService) List(ctx context.Context, limit int) ([]ReservationResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	reservations, err := s.reservationRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return ToReservationResponses(reservations), nil
}

// Export returns every reservation, newest first, for CSV export
func (s *ReservationService) Export(ctx context.Context) ([]ticketing.Reservation, error) {
	return s.reservationRepo.ListAll(ctx)
}
