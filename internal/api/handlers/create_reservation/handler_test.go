package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createReservation.Response), args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	start := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	validBody := `{"start":"2025-10-13T10:00:00Z","end":"2025-10-13T11:00:00Z","contact":"alice@example.com"}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockUseCase)
		wantStatus int
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
					return req.Start.Equal(start) && req.Contact == "alice@example.com"
				})).Return(&createReservation.Response{
					ID:      "3f1c2a9e-0b7d-4f43-9a57-6d2f8e1b4c10",
					Start:   start,
					End:     start.Add(time.Hour),
					Contact: "alice@example.com",
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"start":`,
			setupMock:  func(*MockUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"start":"2025-10-13T10:00:00Z","end":"2025-10-13T11:00:00Z","seats":2}`,
			setupMock:  func(*MockUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing end",
			body:       `{"start":"2025-10-13T10:00:00Z"}`,
			setupMock:  func(*MockUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "date without time",
			body:       `{"start":"2025-10-13","end":"2025-10-13T11:00:00Z"}`,
			setupMock:  func(*MockUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "slot taken",
			body: validBody,
			setupMock: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, createReservation.ErrSlotNotAvailable)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "in the past",
			body: validBody,
			setupMock: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: reservation starts in the past", createReservation.ErrInvalidInput))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "lock timeout",
			body: validBody,
			setupMock: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, createReservation.ErrUpstreamUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			tt.setupMock(uc)
			h := NewHandler(uc, msk, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var body ReservationResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, "2025-10-13T13:00:00+03:00", body.Start)
				assert.Equal(t, "alice@example.com", body.Contact)
			}
			uc.AssertExpectations(t)
		})
	}
}
