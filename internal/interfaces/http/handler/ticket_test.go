package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appticketing "github.com/tickets/backend/internal/application/ticketing"
	"github.com/tickets/backend/internal/domain/ticketing"
	"github.com/tickets/backend/internal/interfaces/http/middleware"
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

func setupTicketRouter(repo *MockReservationRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	service := appticketing.NewReservationService(repo, nil, zap.NewNop())
	handler := NewTicketHandler(service)

	engine := gin.New()
	handler.RegisterRoutes(engine.Group(""))
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func getPath(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"firstName":  "Ada",
		"lastName":   "Lovelace",
		"email":      "ada@example.com",
		"ticketType": "GA Pass",
		"quantity":   2,
		"notes":      "",
	}
}

func TestTicketHandler_Create(t *testing.T) {
	t.Run("stores a valid submission", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*ticketing.Reservation")).Return(nil)

		w := postJSON(t, engine, "/tickets", validBody())

		assert.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			Message string    `json:"message"`
			ID      uuid.UUID `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Saved", response.Message)
		assert.NotEqual(t, uuid.Nil, response.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an empty submission with one message per field", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		w := postJSON(t, engine, "/tickets", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response struct {
			Message string   `json:"message"`
			Errors  []string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Validation failed", response.Message)
		assert.Equal(t, []string{
			"firstName is required",
			"lastName is required",
			"email is required",
			"ticketType is required",
			"quantity is required",
		}, response.Errors)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		req := httptest.NewRequest(http.MethodPost, "/tickets", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects quantity out of bounds", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		body := validBody()
		body["quantity"] = 21

		w := postJSON(t, engine, "/tickets", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "quantity must be between 1 and 20")
	})

	t.Run("hides storage failures behind a generic message", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("pq: connection refused"))

		w := postJSON(t, engine, "/tickets", validBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Something went wrong")
		assert.NotContains(t, w.Body.String(), "pq:")
	})
}

func TestTicketHandler_List(t *testing.T) {
	t.Run("returns a bare array newest first", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		first := ticketing.NewReservation(ticketing.Submission{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			TicketType: ticketing.TicketTypeVIP, Quantity: 1,
		})
		second := ticketing.NewReservation(ticketing.Submission{
			FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
			TicketType: ticketing.TicketTypeGA, Quantity: 2,
		})
		repo.On("ListRecent", mock.Anything, appticketing.DefaultListLimit).
			Return([]ticketing.Reservation{*first, *second}, nil)

		w := getPath(engine, "/tickets")

		assert.Equal(t, http.StatusOK, w.Code)

		var records []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "Ada", records[0]["firstName"])
		assert.Equal(t, "VIP Pass", records[0]["ticketType"])
		assert.Equal(t, "grace@example.com", records[1]["email"])
	})

	t.Run("empty store yields an empty array", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		repo.On("ListRecent", mock.Anything, appticketing.DefaultListLimit).
			Return([]ticketing.Reservation{}, nil)

		w := getPath(engine, "/tickets")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("passes an explicit limit through", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		repo.On("ListRecent", mock.Anything, 5).Return([]ticketing.Reservation{}, nil)

		w := getPath(engine, "/tickets?limit=5")

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an oversized limit", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		w := getPath(engine, "/tickets?limit=500")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "ListRecent")
	})

	t.Run("hides storage failures", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		repo.On("ListRecent", mock.Anything, appticketing.DefaultListLimit).
			Return(nil, errors.New("boom"))

		w := getPath(engine, "/tickets")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Something went wrong")
	})
}

func TestTicketHandler_Export(t *testing.T) {
	t.Run("returns a CSV attachment", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		stored := ticketing.NewReservation(ticketing.Submission{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			TicketType: ticketing.TicketTypeVIP, Quantity: 2,
		})
		repo.On("ListAll", mock.Anything).Return([]ticketing.Reservation{*stored}, nil)

		w := getPath(engine, "/tickets/export")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename=ticket-reservations.csv`, w.Header().Get("Content-Disposition"))
		assert.Contains(t, w.Body.String(), "createdAt,firstName,lastName,email,ticketType,quantity,notes")
		assert.Contains(t, w.Body.String(), `"ada@example.com"`)
	})

	t.Run("empty store exports only the header", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		repo.On("ListAll", mock.Anything).Return([]ticketing.Reservation{}, nil)

		w := getPath(engine, "/tickets/export")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "createdAt,firstName,lastName,email,ticketType,quantity,notes", w.Body.String())
	})

	t.Run("hides storage failures", func(t *testing.T) {
		repo := new(MockReservationRepository)
		engine := setupTicketRouter(repo)

		repo.On("ListAll", mock.Anything).Return(nil, errors.New("boom"))

		w := getPath(engine, "/tickets/export")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
