package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const reservationID = "3f1c2a9e-0b7d-4f43-9a57-6d2f8e1b4c10"

var (
	msk    = time.FixedZone("MSK", 3*60*60)
	monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
)

func TestService_GetByID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(*MockReservationRepository)
		wantErr   error
	}{
		{
			name: "found",
			id:   reservationID,
			setupMock: func(r *MockReservationRepository) {
				r.On("GetByID", mock.Anything, reservationID).Return(&domain.Reservation{
					ID: reservationID, Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour),
				}, nil)
			},
		},
		{
			name: "not found",
			id:   reservationID,
			setupMock: func(r *MockReservationRepository) {
				r.On("GetByID", mock.Anything, reservationID).Return(nil, reservationRepo.ErrReservationNotFound)
			},
			wantErr: ErrReservationNotFound,
		},
		{
			name:      "malformed id",
			id:        "not-a-uuid",
			setupMock: func(*MockReservationRepository) {},
			wantErr:   ErrReservationNotFound,
		},
		{
			name: "repository failure",
			id:   reservationID,
			setupMock: func(r *MockReservationRepository) {
				r.On("GetByID", mock.Anything, reservationID).Return(nil, errors.New("db down"))
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockReservationRepository)
			tt.setupMock(repo)
			svc := NewService(repo, msk, domain.DefaultMaxRangeDays, logger.NewNop())

			resp, err := svc.GetByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, reservationID, resp.ID)
				assert.Equal(t, 13, resp.Start.Hour())
				assert.Equal(t, msk, resp.Start.Location())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_ListInRange(t *testing.T) {
	start, end := monday, monday.Add(24*time.Hour)

	t.Run("reservations of the window", func(t *testing.T) {
		repo := new(MockReservationRepository)
		repo.On("ListOverlapping", mock.Anything, start, end, "").Return([]domain.Reservation{
			{ID: "a", Start: monday.Add(9 * time.Hour), End: monday.Add(10 * time.Hour)},
			{ID: "b", Start: monday.Add(12 * time.Hour), End: monday.Add(13 * time.Hour)},
		}, nil)
		svc := NewService(repo, time.UTC, domain.DefaultMaxRangeDays, logger.NewNop())

		resp, err := svc.ListInRange(context.Background(), start, end)
		require.NoError(t, err)
		require.Len(t, resp.Reservations, 2)
		assert.Equal(t, "b", resp.Reservations[1].ID)
		repo.AssertExpectations(t)
	})

	t.Run("empty window is never queried", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := NewService(repo, time.UTC, domain.DefaultMaxRangeDays, logger.NewNop())

		_, err := svc.ListInRange(context.Background(), end, start)
		assert.ErrorIs(t, err, ErrInvalidRange)
		repo.AssertNotCalled(t, "ListOverlapping")
	})

	t.Run("window longer than limit", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := NewService(repo, time.UTC, 7, logger.NewNop())

		_, err := svc.ListInRange(context.Background(), start, start.Add(8*24*time.Hour))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "deleted"},
		{name: "not found", repoErr: reservationRepo.ErrReservationNotFound, wantErr: ErrReservationNotFound},
		{name: "repository failure", repoErr: errors.New("db down"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockReservationRepository)
			repo.On("Delete", mock.Anything, reservationID).Return(tt.repoErr)
			svc := NewService(repo, time.UTC, domain.DefaultMaxRangeDays, logger.NewNop())

			err := svc.Delete(context.Background(), reservationID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
