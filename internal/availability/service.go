package availability

import (
	"context"
	"errors"
	"time"

	"github.com/MandarKanbargi/turf-admin/internal/timeofday"
	"github.com/MandarKanbargi/turf-admin/internal/turf"
)

var (
	ErrTurfNotFound  = errors.New("turf not found")
	ErrInvalidDate   = errors.New("invalid date")
	ErrUnknownPeriod = errors.New("unknown day period")
)

// TurfSource is the slice of the turf repository the engine needs.
type TurfSource interface {
	GetTurfByID(ctx context.Context, id int) (*turf.Turf, error)
	GetOperatingWindow(ctx context.Context, turfID, dayOfWeek int) (*turf.OperatingWindow, error)
	ListBookingTypes(ctx context.Context, turfID int, onlyActive bool) ([]turf.BookingType, error)
	ListBlackoutsForDate(ctx context.Context, turfID int, date string) ([]turf.Blackout, error)
}

// BookingSource supplies existing capacity-consuming bookings for a date.
// Status filtering happens in the query, not here.
type BookingSource interface {
	ListRecordsForDate(ctx context.Context, turfID int, date string) ([]BookingRecord, error)
}

type Service interface {
	GetView(ctx context.Context, turfID int, date, periodName string) (*View, error)
}

type service struct {
	turfs       TurfSource
	bookings    BookingSource
	granularity int
	periods     []timeofday.Period
}

func NewService(turfs TurfSource, bookings BookingSource, granularityMinutes int) Service {
	return &service{
		turfs:       turfs,
		bookings:    bookings,
		granularity: granularityMinutes,
		periods:     timeofday.DefaultPeriods,
	}
}

// GetView assembles the availability grid for one turf and date. All data is
// fetched up front; the grid itself is a pure computation over it.
func (s *service) GetView(ctx context.Context, turfID int, date, periodName string) (*View, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.turfs.GetTurfByID(ctx, turfID); err != nil {
		return nil, ErrTurfNotFound
	}

	var periodFilter *timeofday.Period
	if periodName != "" {
		p, ok := timeofday.PeriodByName(s.periods, periodName)
		if !ok {
			return nil, ErrUnknownPeriod
		}
		periodFilter = &p
	}

	window, err := s.turfs.GetOperatingWindow(ctx, turfID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}

	types, err := s.turfs.ListBookingTypes(ctx, turfID, true)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListRecordsForDate(ctx, turfID, date)
	if err != nil {
		return nil, err
	}

	blackouts, err := s.turfs.ListBlackoutsForDate(ctx, turfID, date)
	if err != nil {
		return nil, err
	}

	return BuildView(date, *window, types, bookings, blackouts, s.granularity, periodFilter)
}
