package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/MandarKanbargi/turf-admin/internal/availability"
	"github.com/MandarKanbargi/turf-admin/internal/email"
	"github.com/MandarKanbargi/turf-admin/internal/turf"
	"github.com/MandarKanbargi/turf-admin/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockBookingRepo struct{ mock.Mock }
type MockTurfRepo struct{ mock.Mock }
type MockUserRepo struct{ mock.Mock }

func (m *MockBookingRepo) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) CancelBooking(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockBookingRepo) GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func (m *MockBookingRepo) GetBookingsByTurf(ctx context.Context, turfID int, date string) ([]BookingWithDetails, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func (m *MockBookingRepo) ListRecordsForDate(ctx context.Context, turfID int, date string) ([]availability.BookingRecord, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.BookingRecord), args.Error(1)
}

func (m *MockTurfRepo) CreateTurf(ctx context.Context, ownerID int, req turf.CreateTurfRequest) (*turf.Turf, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*turf.Turf), args.Error(1)
}

func (m *MockTurfRepo) GetTurfByID(ctx context.Context, id int) (*turf.Turf, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*turf.Turf), args.Error(1)
}

func (m *MockTurfRepo) ListTurfs(ctx context.Context, city string) ([]turf.Turf, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]turf.Turf), args.Error(1)
}

func (m *MockTurfRepo) ListTurfsByOwner(ctx context.Context, ownerID int) ([]turf.Turf, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]turf.Turf), args.Error(1)
}

func (m *MockTurfRepo) ReplaceOperatingHours(ctx context.Context, turfID int, windows []turf.OperatingWindow) error {
	return m.Called(ctx, turfID, windows).Error(0)
}

func (m *MockTurfRepo) GetOperatingHours(ctx context.Context, turfID int) ([]turf.OperatingWindow, error) {
	args := m.Called(ctx, turfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]turf.OperatingWindow), args.Error(1)
}

func (m *MockTurfRepo) GetOperatingWindow(ctx context.Context, turfID, dayOfWeek int) (*turf.OperatingWindow, error) {
	args := m.Called(ctx, turfID, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*turf.OperatingWindow), args.Error(1)
}

func (m *MockTurfRepo) CreateBookingType(ctx context.Context, turfID int, req turf.CreateBookingTypeRequest) (*turf.BookingType, error) {
	args := m.Called(ctx, turfID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*turf.BookingType), args.Error(1)
}

func (m *MockTurfRepo) ListBookingTypes(ctx context.Context, turfID int, onlyActive bool) ([]turf.BookingType, error) {
	args := m.Called(ctx, turfID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]turf.BookingType), args.Error(1)
}

func (m *MockTurfRepo) CreateBlackout(ctx context.Context, turfID int, date string, start, end int, reason string) (*turf.Blackout, error) {
	args := m.Called(ctx, turfID, date, start, end, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*turf.Blackout), args.Error(1)
}

func (m *MockTurfRepo) ListBlackoutsForDate(ctx context.Context, turfID int, date string) ([]turf.Blackout, error) {
	args := m.Called(ctx, turfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]turf.Blackout), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, name, email, phone, passwordHash, role string) (*user.User, error) {
	args := m.Called(ctx, name, email, phone, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newTestBookingService(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) Service {
	emailService := email.New("from@test.com", "Test", "localhost", "1025", "", "", "localhost:6379")
	return NewService(br, tr, ur, emailService, 10000, 60)
}

func openWindow(turfID int) *turf.OperatingWindow {
	return &turf.OperatingWindow{
		TurfID:    turfID,
		DayOfWeek: 2,
		IsOpen:    true,
		Open:      6 * 60,
		Close:     23 * 60,
	}
}

func fiveASideType() []turf.BookingType {
	return []turf.BookingType{{
		ID:            1,
		TurfID:        1,
		Name:          "5-a-side",
		DisplayName:   "5-a-side Football",
		HourlyRate:    80000,
		MaxConcurrent: 2,
		IsActive:      true,
	}}
}

func TestService_CreateBooking(t *testing.T) {
	// 2030-01-01 is a Tuesday, safely in the future.
	const date = "2030-01-01"

	req := CreateBookingRequest{
		TurfID:        1,
		BookingTypeID: 1,
		Date:          date,
		StartTime:     "18:00",
		EndTime:       "20:00",
	}

	tests := []struct {
		name       string
		req        CreateBookingRequest
		setupMocks func(*MockBookingRepo, *MockTurfRepo, *MockUserRepo)
		wantErr    error
	}{
		{
			name: "successful booking",
			req:  req,
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1, OwnerID: 9, Name: "Greenfield Arena"}, nil)
				tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(openWindow(1), nil)
				tr.On("ListBookingTypes", mock.Anything, 1, true).Return(fiveASideType(), nil)
				br.On("ListRecordsForDate", mock.Anything, 1, date).Return([]availability.BookingRecord{}, nil)
				tr.On("ListBlackoutsForDate", mock.Anything, 1, date).Return([]turf.Blackout{}, nil)
				br.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
					// 2h at 800/h plus the 100 platform fee
					return b.TotalFeePaise == 170000 && b.Start == 18*60 && b.End == 20*60
				})).Return(&Booking{ID: 1, UserID: 1, TurfID: 1, Status: StatusPending, TotalFeePaise: 170000}, nil)
				ur.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "t@x.com", Name: "T"}, nil)
			},
		},
		{
			name: "turf not found",
			req:  req,
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(nil, errors.New("no rows"))
			},
			wantErr: ErrTurfNotFound,
		},
		{
			name: "closed day",
			req:  req,
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1}, nil)
				tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(&turf.OperatingWindow{TurfID: 1, DayOfWeek: 2, IsOpen: false}, nil)
			},
			wantErr: ErrTurfClosed,
		},
		{
			name: "outside operating hours",
			req: CreateBookingRequest{
				TurfID: 1, BookingTypeID: 1, Date: date,
				StartTime: "23:00", EndTime: "23:30",
			},
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1}, nil)
				tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(openWindow(1), nil)
			},
			wantErr: ErrOutsideHours,
		},
		{
			name: "end before start",
			req: CreateBookingRequest{
				TurfID: 1, BookingTypeID: 1, Date: date,
				StartTime: "19:00", EndTime: "18:00",
			},
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1}, nil)
				tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(openWindow(1), nil)
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "unknown booking type",
			req: CreateBookingRequest{
				TurfID: 1, BookingTypeID: 42, Date: date,
				StartTime: "18:00", EndTime: "19:00",
			},
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1}, nil)
				tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(openWindow(1), nil)
				tr.On("ListBookingTypes", mock.Anything, 1, true).Return(fiveASideType(), nil)
			},
			wantErr: ErrTypeNotFound,
		},
		{
			name: "slot fully booked",
			req: CreateBookingRequest{
				TurfID: 1, BookingTypeID: 1, Date: date,
				StartTime: "18:00", EndTime: "19:00",
			},
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1}, nil)
				tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(openWindow(1), nil)
				tr.On("ListBookingTypes", mock.Anything, 1, true).Return(fiveASideType(), nil)
				br.On("ListRecordsForDate", mock.Anything, 1, date).Return([]availability.BookingRecord{
					{BookingTypeID: 1, Start: 18 * 60, End: 19 * 60},
					{BookingTypeID: 1, Start: 18 * 60, End: 19 * 60},
				}, nil)
				tr.On("ListBlackoutsForDate", mock.Anything, 1, date).Return([]turf.Blackout{}, nil)
			},
			wantErr: ErrSlotUnavailable,
		},
		{
			name: "blacked out slot",
			req: CreateBookingRequest{
				TurfID: 1, BookingTypeID: 1, Date: date,
				StartTime: "18:00", EndTime: "19:00",
			},
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1}, nil)
				tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(openWindow(1), nil)
				tr.On("ListBookingTypes", mock.Anything, 1, true).Return(fiveASideType(), nil)
				br.On("ListRecordsForDate", mock.Anything, 1, date).Return([]availability.BookingRecord{}, nil)
				tr.On("ListBlackoutsForDate", mock.Anything, 1, date).Return([]turf.Blackout{
					{TurfID: 1, Date: date, Start: 17 * 60, End: 21 * 60, Reason: "tournament"},
				}, nil)
			},
			wantErr: ErrSlotUnavailable,
		},
		{
			name: "past date",
			req: CreateBookingRequest{
				TurfID: 1, BookingTypeID: 1, Date: "2020-01-07",
				StartTime: "18:00", EndTime: "19:00",
			},
			setupMocks: func(br *MockBookingRepo, tr *MockTurfRepo, ur *MockUserRepo) {
				tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1}, nil)
				tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(openWindow(1), nil)
			},
			wantErr: ErrPastBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := new(MockBookingRepo)
			tr := new(MockTurfRepo)
			ur := new(MockUserRepo)

			tt.setupMocks(br, tr, ur)

			service := newTestBookingService(br, tr, ur)

			booking, err := service.CreateBooking(context.Background(), 1, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, booking)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, booking)
			}
		})
	}
}

func TestService_CreateBooking_OvernightWindow(t *testing.T) {
	const date = "2030-01-01"

	br := new(MockBookingRepo)
	tr := new(MockTurfRepo)
	ur := new(MockUserRepo)

	tr.On("GetTurfByID", mock.Anything, 1).Return(&turf.Turf{ID: 1, Name: "Night Arena"}, nil)
	tr.On("GetOperatingWindow", mock.Anything, 1, 2).Return(&turf.OperatingWindow{
		TurfID: 1, DayOfWeek: 2, IsOpen: true,
		Open: 22 * 60, Close: 2 * 60, SpansMidnight: true,
	}, nil)
	tr.On("ListBookingTypes", mock.Anything, 1, true).Return(fiveASideType(), nil)
	br.On("ListRecordsForDate", mock.Anything, 1, date).Return([]availability.BookingRecord{}, nil)
	tr.On("ListBlackoutsForDate", mock.Anything, 1, date).Return([]turf.Blackout{}, nil)
	br.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		// 23:00-01:00 lifted onto the extended ordinal scale
		return b.Start == 23*60 && b.End == 25*60
	})).Return(&Booking{ID: 2, Start: 23 * 60, End: 25 * 60, Status: StatusPending}, nil)
	ur.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "t@x.com", Name: "T"}, nil)

	service := newTestBookingService(br, tr, ur)

	booking, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		TurfID: 1, BookingTypeID: 1, Date: date,
		StartTime: "23:00", EndTime: "01:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	br.AssertExpectations(t)
}

func TestService_CancelBooking(t *testing.T) {
	br := new(MockBookingRepo)
	tr := new(MockTurfRepo)
	ur := new(MockUserRepo)

	br.On("GetBookingByID", mock.Anything, 1).Return(&Booking{
		ID: 1, UserID: 1, TurfID: 3, BookingDate: "2030-01-01",
		Start: 18 * 60, End: 19 * 60, Status: StatusConfirmed,
	}, nil)
	br.On("CancelBooking", mock.Anything, 1).Return(nil)
	ur.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "t@x.com", Name: "T"}, nil)
	tr.On("GetTurfByID", mock.Anything, 3).Return(&turf.Turf{ID: 3, Name: "Greenfield Arena"}, nil)

	service := newTestBookingService(br, tr, ur)

	err := service.CancelBooking(context.Background(), 1, 1)

	assert.NoError(t, err)
	br.AssertExpectations(t)
}

func TestService_CancelBooking_NotOwner(t *testing.T) {
	br := new(MockBookingRepo)
	tr := new(MockTurfRepo)
	ur := new(MockUserRepo)

	br.On("GetBookingByID", mock.Anything, 1).Return(&Booking{ID: 1, UserID: 1, TurfID: 3}, nil)
	tr.On("GetTurfByID", mock.Anything, 3).Return(&turf.Turf{ID: 3, OwnerID: 9}, nil)

	service := newTestBookingService(br, tr, ur)

	err := service.CancelBooking(context.Background(), 2, 1)

	assert.ErrorIs(t, err, ErrNotBookingOwner)
}

func TestService_CancelBooking_ByTurfOwner(t *testing.T) {
	br := new(MockBookingRepo)
	tr := new(MockTurfRepo)
	ur := new(MockUserRepo)

	br.On("GetBookingByID", mock.Anything, 1).Return(&Booking{
		ID: 1, UserID: 1, TurfID: 3, BookingDate: "2030-01-01",
	}, nil)
	tr.On("GetTurfByID", mock.Anything, 3).Return(&turf.Turf{ID: 3, OwnerID: 9, Name: "Greenfield Arena"}, nil)
	br.On("CancelBooking", mock.Anything, 1).Return(nil)
	ur.On("FindByID", mock.Anything, 1).Return(&user.User{ID: 1, Email: "t@x.com", Name: "T"}, nil)

	service := newTestBookingService(br, tr, ur)

	err := service.CancelBooking(context.Background(), 9, 1)

	assert.NoError(t, err)
	br.AssertExpectations(t)
}

func TestService_UpdateStatus_NotTurfOwner(t *testing.T) {
	br := new(MockBookingRepo)
	tr := new(MockTurfRepo)
	ur := new(MockUserRepo)

	br.On("GetBookingByID", mock.Anything, 1).Return(&Booking{ID: 1, UserID: 1, TurfID: 3}, nil)
	tr.On("GetTurfByID", mock.Anything, 3).Return(&turf.Turf{ID: 3, OwnerID: 9}, nil)

	service := newTestBookingService(br, tr, ur)

	err := service.UpdateStatus(context.Background(), 2, 1, StatusCompleted)

	assert.ErrorIs(t, err, ErrNotTurfOwner)
}

func TestService_GetUserBookings_FillsRemaining(t *testing.T) {
	br := new(MockBookingRepo)
	tr := new(MockTurfRepo)
	ur := new(MockUserRepo)

	br.On("GetUserBookings", mock.Anything, 1).Return([]BookingWithDetails{
		{Booking: Booking{ID: 1, TotalFeePaise: 110000, PlatformFeePaise: 10000, AdvancePaid: true}},
		{Booking: Booking{ID: 2, TotalFeePaise: 110000, PlatformFeePaise: 10000, AdvancePaid: true, RemainingPaid: true}},
	}, nil)

	service := newTestBookingService(br, tr, ur)

	bookings, err := service.GetUserBookings(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(50000), bookings[0].RemainingAmountPaise)
	assert.Equal(t, int64(0), bookings[1].RemainingAmountPaise)
}
