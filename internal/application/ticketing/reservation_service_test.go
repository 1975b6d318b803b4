package ticketing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tickets/backend/internal/domain/ticketing"
)

// MockReservationRepository is a mock implementation of ReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *ticketing.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) ListRecent(ctx context.Context, limit int) ([]ticketing.Reservation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ticketing.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListAll(ctx context.Context) ([]ticketing.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ticketing.Reservation), args.Error(1)
}

// MockNotifier records confirmation sends
type MockNotifier struct {
	mu   chan struct{}
	sent []*ticketing.Reservation
	err  error
}

func NewMockNotifier(err error) *MockNotifier {
	return &MockNotifier{mu: make(chan struct{}, 1), err: err}
}

func (m *MockNotifier) SendConfirmation(_ context.Context, reservation *ticketing.Reservation) error {
	m.sent = append(m.sent, reservation)
	m.mu <- struct{}{}
	return m.err
}

func (m *MockNotifier) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-m.mu:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for confirmation send")
	}
}

func validSubmission() ticketing.Submission {
	return ticketing.Submission{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		TicketType: ticketing.TicketTypeGA,
		Quantity:   2,
		Notes:      "",
	}
}

func TestReservationService_Create(t *testing.T) {
	t.Run("persists and returns the reservation", func(t *testing.T) {
		repo := new(MockReservationRepository)
		service := NewReservationService(repo, nil, zap.NewNop())

		repo.On("Create", mock.Anything, mock.AnythingOfType("*ticketing.Reservation")).Return(nil)

		response, err := service.Create(context.Background(), validSubmission())

		require.NoError(t, err)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", response.ID.String())
		assert.Equal(t, "Ada", response.FirstName)
		assert.Equal(t, "GA Pass", response.TicketType)
		assert.False(t, response.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("returns storage errors", func(t *testing.T) {
		repo := new(MockReservationRepository)
		service := NewReservationService(repo, nil, zap.NewNop())

		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		response, err := service.Create(context.Background(), validSubmission())

		assert.Error(t, err)
		assert.Nil(t, response)
	})

	t.Run("dispatches confirmation after persistence", func(t *testing.T) {
		repo := new(MockReservationRepository)
		notifier := NewMockNotifier(nil)
		service := NewReservationService(repo, notifier, zap.NewNop())

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		response, err := service.Create(context.Background(), validSubmission())
		require.NoError(t, err)

		notifier.waitForSend(t)
		require.Len(t, notifier.sent, 1)
		assert.Equal(t, response.ID, notifier.sent[0].ID)
	})

	t.Run("notification failure does not affect the result", func(t *testing.T) {
		repo := new(MockReservationRepository)
		notifier := NewMockNotifier(errors.New("smtp down"))
		service := NewReservationService(repo, notifier, zap.NewNop())

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		response, err := service.Create(context.Background(), validSubmission())

		require.NoError(t, err)
		assert.NotNil(t, response)
		notifier.waitForSend(t)
	})

	t.Run("concurrent submissions all succeed with unique ids", func(t *testing.T) {
		repo := new(MockReservationRepository)
		service := NewReservationService(repo, nil, zap.NewNop())

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		const workers = 25

		type result struct {
			response *ReservationResponse
			err      error
		}

		results := make(chan result, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				sub := validSubmission()
				sub.Email = fmt.Sprintf("guest%d@example.com", i)
				response, err := service.Create(context.Background(), sub)
				results <- result{response: response, err: err}
			}(i)
		}
		wg.Wait()
		close(results)

		seen := make(map[uuid.UUID]bool, workers)
		for r := range results {
			require.NoError(t, r.err)
			require.NotNil(t, r.response)
			assert.False(t, seen[r.response.ID])
			seen[r.response.ID] = true
		}
		assert.Len(t, seen, workers)
	})

	t.Run("skips notification when repository fails", func(t *testing.T) {
		repo := new(MockReservationRepository)
		notifier := NewMockNotifier(nil)
		service := NewReservationService(repo, notifier, zap.NewNop())

		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("boom"))

		_, err := service.Create(context.Background(), validSubmission())

		assert.Error(t, err)
		assert.Empty(t, notifier.sent)
	})
}

func TestReservationService_List(t *testing.T) {
	t.Run("applies the default limit", func(t *testing.T) {
		repo := new(MockReservationRepository)
		service := NewReservationService(repo, nil, zap.NewNop())

		repo.On("ListRecent", mock.Anything, DefaultListLimit).Return([]ticketing.Reservation{}, nil)

		responses, err := service.List(context.Background(), 0)

		require.NoError(t, err)
		assert.Empty(t, responses)
		repo.AssertExpectations(t)
	})

	t.Run("caps oversized limits", func(t *testing.T) {
		repo := new(MockReservationRepository)
		service := NewReservationService(repo, nil, zap.NewNop())

		repo.On("ListRecent", mock.Anything, MaxListLimit).Return([]ticketing.Reservation{}, nil)

		_, err := service.List(context.Background(), 1000)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("converts records to responses", func(t *testing.T) {
		repo := new(MockReservationRepository)
		service := NewReservationService(repo, nil, zap.NewNop())

		stored := ticketing.NewReservation(validSubmission())
		repo.On("ListRecent", mock.Anything, 10).Return([]ticketing.Reservation{*stored}, nil)

		responses, err := service.List(context.Background(), 10)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, stored.ID, responses[0].ID)
		assert.Equal(t, "ada@example.com", responses[0].Email)
	})

	t.Run("returns storage errors", func(t *testing.T) {
		repo := new(MockReservationRepository)
		service := NewReservationService(repo, nil, zap.NewNop())

		repo.On("ListRecent", mock.Anything, DefaultListLimit).Return(nil, errors.New("boom"))

		responses, err := service.List(context.Background(), 0)

		assert.Error(t, err)
		assert.Nil(t, responses)
	})
}

func TestReservationService_Export(t *testing.T) {
	repo := new(MockReservationRepository)
	service := NewReservationService(repo, nil, zap.NewNop())

	stored := ticketing.NewReservation(validSubmission())
	repo.On("ListAll", mock.Anything).Return([]ticketing.Reservation{*stored}, nil)

	reservations, err := service.Export(context.Background())

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, stored.ID, reservations[0].ID)
}
