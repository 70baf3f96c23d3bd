package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/lock"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, reservation)
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

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) List(ctx context.Context) ([]domain.CapacityTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapacityTemplate), args.Error(1)
}

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, keys)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordReservation(operation, result string) {
	m.Called(operation, result)
}

// stubTxManager выполняет fn без транзакции или возвращает заданную ошибку фиксации
type stubTxManager struct {
	commitErr error
}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return s.commitErr
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

var templates = []domain.CapacityTemplate{
	{ID: 1, DayOfWeek: time.Monday, Start: types.MustTimeString("09:00"), End: types.MustTimeString("24:00"), Capacity: 1},
	{ID: 2, DayOfWeek: time.Tuesday, Start: types.MustTimeString("00:00"), End: types.MustTimeString("02:00"), Capacity: 1},
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name       string
		req        Request
		commitErr  error
		setupMocks func(*MockReservationRepository, *MockTemplateRepository, *MockLocker, *MockMetrics)
		wantErr    error
	}{
		{
			name: "free interval",
			req:  Request{Start: at(10, 0), End: at(11, 0), Contact: "alice@example.com"},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				l.On("WithLock", mock.Anything, []string{"reservations:day:2025-10-13"}).Return(nil)
				tr.On("List", mock.Anything).Return(templates, nil)
				r.On("ListOverlapping", mock.Anything, at(10, 0), at(11, 0), "").Return([]domain.Reservation{}, nil)
				r.On("Create", mock.Anything, mock.MatchedBy(func(res *domain.Reservation) bool {
					return res.ID == "fixed-id" && res.Contact == "alice@example.com"
				})).Return(&domain.Reservation{ID: "fixed-id"}, nil)
				m.On("RecordReservation", "create", "ok")
			},
		},
		{
			name: "interval across midnight locks both days",
			req:  Request{Start: at(23, 0), End: at(25, 0)},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				l.On("WithLock", mock.Anything, []string{"reservations:day:2025-10-13", "reservations:day:2025-10-14"}).Return(nil)
				tr.On("List", mock.Anything).Return(templates, nil)
				r.On("ListOverlapping", mock.Anything, at(23, 0), at(25, 0), "").Return([]domain.Reservation{}, nil)
				r.On("Create", mock.Anything, mock.Anything).Return(&domain.Reservation{ID: "fixed-id"}, nil)
				m.On("RecordReservation", "create", "ok")
			},
		},
		{
			name: "capacity taken",
			req:  Request{Start: at(10, 30), End: at(11, 30)},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				l.On("WithLock", mock.Anything, mock.Anything).Return(nil)
				tr.On("List", mock.Anything).Return(templates, nil)
				r.On("ListOverlapping", mock.Anything, at(10, 30), at(11, 30), "").
					Return([]domain.Reservation{{ID: "other", Start: at(10, 0), End: at(11, 0)}}, nil)
				m.On("RecordReservation", "create", "unavailable")
			},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name: "outside capacity windows",
			req:  Request{Start: at(7, 0), End: at(8, 0)},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				l.On("WithLock", mock.Anything, mock.Anything).Return(nil)
				tr.On("List", mock.Anything).Return(templates, nil)
				r.On("ListOverlapping", mock.Anything, at(7, 0), at(8, 0), "").Return([]domain.Reservation{}, nil)
				m.On("RecordReservation", "create", "unavailable")
			},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:      "concurrent transaction won",
			req:       Request{Start: at(10, 0), End: at(11, 0)},
			commitErr: fmt.Errorf("%w: could not serialize access", txmanager.ErrSerializationFailure),
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				l.On("WithLock", mock.Anything, mock.Anything).Return(nil)
				tr.On("List", mock.Anything).Return(templates, nil)
				r.On("ListOverlapping", mock.Anything, mock.Anything, mock.Anything, "").Return([]domain.Reservation{}, nil)
				r.On("Create", mock.Anything, mock.Anything).Return(&domain.Reservation{ID: "fixed-id"}, nil)
				m.On("RecordReservation", "create", "unavailable")
			},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name: "lock wait timed out",
			req:  Request{Start: at(10, 0), End: at(11, 0)},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				l.On("WithLock", mock.Anything, mock.Anything).Return(lock.ErrLockTimeout)
				m.On("RecordReservation", "create", "error")
			},
			wantErr: ErrUpstreamUnavailable,
		},
		{
			name: "store failure",
			req:  Request{Start: at(10, 0), End: at(11, 0)},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				l.On("WithLock", mock.Anything, mock.Anything).Return(nil)
				tr.On("List", mock.Anything).Return(nil, errors.New("connection refused"))
				m.On("RecordReservation", "create", "error")
			},
			wantErr: ErrUpstreamUnavailable,
		},
		{
			name: "inverted interval",
			req:  Request{Start: at(11, 0), End: at(10, 0)},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				m.On("RecordReservation", "create", "invalid")
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "too short",
			req:  Request{Start: at(10, 0), End: at(10, 1)},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				m.On("RecordReservation", "create", "invalid")
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "in the past",
			req:  Request{Start: at(-2, 0), End: at(-1, 0)},
			setupMocks: func(r *MockReservationRepository, tr *MockTemplateRepository, l *MockLocker, m *MockMetrics) {
				m.On("RecordReservation", "create", "invalid")
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservationRepo := new(MockReservationRepository)
			templateRepo := new(MockTemplateRepository)
			locker := new(MockLocker)
			metrics := new(MockMetrics)
			tt.setupMocks(reservationRepo, templateRepo, locker, metrics)

			uc := NewUseCase(reservationRepo, templateRepo, &stubTxManager{commitErr: tt.commitErr}, locker,
				availability.NewEngine(time.UTC), metrics, logger.NewNop())
			uc.timeProvider = &fixedTime{now: at(0, 0)}
			uc.newID = func() string { return "fixed-id" }

			resp, err := uc.Execute(context.Background(), &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "fixed-id", resp.ID)
				assert.True(t, resp.Start.Equal(tt.req.Start))
			}

			reservationRepo.AssertExpectations(t)
			templateRepo.AssertExpectations(t)
			locker.AssertExpectations(t)
			metrics.AssertExpectations(t)
		})
	}
}
