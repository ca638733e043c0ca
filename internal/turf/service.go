package turf

import (
	"context"
	"errors"
	"time"

	"github.com/MandarKanbargi/turf-admin/internal/timeofday"
)

var (
	ErrTurfNotFound    = errors.New("turf not found")
	ErrNotTurfOwner    = errors.New("turf belongs to another owner")
	ErrWindowInvalid   = errors.New("invalid operating window")
	ErrBlackoutInvalid = errors.New("invalid blackout period")
)

type Service interface {
	CreateTurf(ctx context.Context, ownerID int, req CreateTurfRequest) (*Turf, error)
	GetTurfByID(ctx context.Context, id int) (*Turf, error)
	ListTurfs(ctx context.Context, city string) ([]Turf, error)
	ListTurfsByOwner(ctx context.Context, ownerID int) ([]Turf, error)

	UpdateOperatingHours(ctx context.Context, ownerID, turfID int, req UpdateOperatingHoursRequest) ([]OperatingWindow, error)
	GetOperatingHours(ctx context.Context, turfID int) ([]OperatingWindow, error)

	CreateBookingType(ctx context.Context, ownerID, turfID int, req CreateBookingTypeRequest) (*BookingType, error)
	ListBookingTypes(ctx context.Context, turfID int) ([]BookingType, error)

	CreateBlackout(ctx context.Context, ownerID, turfID int, req CreateBlackoutRequest) (*Blackout, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTurf(ctx context.Context, ownerID int, req CreateTurfRequest) (*Turf, error) {
	return s.repo.CreateTurf(ctx, ownerID, req)
}

func (s *service) GetTurfByID(ctx context.Context, id int) (*Turf, error) {
	t, err := s.repo.GetTurfByID(ctx, id)
	if err != nil {
		return nil, ErrTurfNotFound
	}
	return t, nil
}

func (s *service) ListTurfs(ctx context.Context, city string) ([]Turf, error) {
	return s.repo.ListTurfs(ctx, city)
}

func (s *service) ListTurfsByOwner(ctx context.Context, ownerID int) ([]Turf, error) {
	return s.repo.ListTurfsByOwner(ctx, ownerID)
}

func (s *service) requireOwnership(ctx context.Context, ownerID, turfID int) (*Turf, error) {
	t, err := s.repo.GetTurfByID(ctx, turfID)
	if err != nil {
		return nil, ErrTurfNotFound
	}
	if t.OwnerID != ownerID {
		return nil, ErrNotTurfOwner
	}
	return t, nil
}

// UpdateOperatingHours validates and replaces the weekly schedule. A window
// that closes before it opens must carry the spans_midnight flag; otherwise it
// is rejected instead of silently producing negative-length slots.
func (s *service) UpdateOperatingHours(ctx context.Context, ownerID, turfID int, req UpdateOperatingHoursRequest) ([]OperatingWindow, error) {
	if _, err := s.requireOwnership(ctx, ownerID, turfID); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(req.Hours))
	windows := make([]OperatingWindow, 0, len(req.Hours))

	for _, h := range req.Hours {
		if seen[h.DayOfWeek] {
			return nil, ErrWindowInvalid
		}
		seen[h.DayOfWeek] = true

		w := OperatingWindow{
			TurfID:        turfID,
			DayOfWeek:     h.DayOfWeek,
			IsOpen:        h.IsOpen,
			SpansMidnight: h.SpansMidnight,
		}

		if h.IsOpen {
			open, err := timeofday.Parse(h.OpenTime)
			if err != nil {
				return nil, ErrWindowInvalid
			}
			close, err := timeofday.Parse(h.CloseTime)
			if err != nil {
				return nil, ErrWindowInvalid
			}
			if close <= open && !h.SpansMidnight {
				return nil, ErrWindowInvalid
			}
			w.Open = open
			w.Close = close
		}

		windows = append(windows, w)
	}

	if err := s.repo.ReplaceOperatingHours(ctx, turfID, windows); err != nil {
		return nil, err
	}

	return s.repo.GetOperatingHours(ctx, turfID)
}

func (s *service) GetOperatingHours(ctx context.Context, turfID int) ([]OperatingWindow, error) {
	if _, err := s.repo.GetTurfByID(ctx, turfID); err != nil {
		return nil, ErrTurfNotFound
	}
	return s.repo.GetOperatingHours(ctx, turfID)
}

func (s *service) CreateBookingType(ctx context.Context, ownerID, turfID int, req CreateBookingTypeRequest) (*BookingType, error) {
	if _, err := s.requireOwnership(ctx, ownerID, turfID); err != nil {
		return nil, err
	}
	return s.repo.CreateBookingType(ctx, turfID, req)
}

func (s *service) ListBookingTypes(ctx context.Context, turfID int) ([]BookingType, error) {
	if _, err := s.repo.GetTurfByID(ctx, turfID); err != nil {
		return nil, ErrTurfNotFound
	}
	return s.repo.ListBookingTypes(ctx, turfID, true)
}

func (s *service) CreateBlackout(ctx context.Context, ownerID, turfID int, req CreateBlackoutRequest) (*Blackout, error) {
	if _, err := s.requireOwnership(ctx, ownerID, turfID); err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrBlackoutInvalid
	}

	start, err := timeofday.Parse(req.StartTime)
	if err != nil {
		return nil, ErrBlackoutInvalid
	}
	end, err := timeofday.Parse(req.EndTime)
	if err != nil {
		return nil, ErrBlackoutInvalid
	}
	if end <= start {
		return nil, ErrBlackoutInvalid
	}

	return s.repo.CreateBlackout(ctx, turfID, req.Date, int(start), int(end), req.Reason)
}
