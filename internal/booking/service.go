package booking

import (
	"context"
	"errors"
	"time"

	"github.com/MandarKanbargi/turf-admin/internal/availability"
	"github.com/MandarKanbargi/turf-admin/internal/email"
	"github.com/MandarKanbargi/turf-admin/internal/metrics"
	"github.com/MandarKanbargi/turf-admin/internal/payment"
	"github.com/MandarKanbargi/turf-admin/internal/timeofday"
	"github.com/MandarKanbargi/turf-admin/internal/turf"
	"github.com/MandarKanbargi/turf-admin/internal/user"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrTurfNotFound    = errors.New("turf not found")
	ErrTypeNotFound    = errors.New("booking type not found")
	ErrTurfClosed      = errors.New("turf is closed on that day")
	ErrOutsideHours    = errors.New("requested time is outside operating hours")
	ErrInvalidRange    = errors.New("invalid booking time range")
	ErrPastBooking     = errors.New("cannot book a slot in the past")
	ErrSlotUnavailable = errors.New("requested slot is not available")
	ErrNotBookingOwner = errors.New("booking belongs to another user")
	ErrNotTurfOwner    = errors.New("turf belongs to another owner")
)

type Service interface {
	CreateBooking(ctx context.Context, userID int, req CreateBookingRequest) (*Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID int) error
	UpdateStatus(ctx context.Context, ownerID, bookingID int, status string) error
	GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error)
	GetBookingsByTurf(ctx context.Context, ownerID, turfID int, date string) ([]BookingWithDetails, error)
}

type service struct {
	bookingRepo      Repository
	turfRepo         turf.Repository
	userRepo         user.Repository
	emailService     *email.Service
	platformFeePaise int64
	granularity      timeofday.Minutes
	now              func() time.Time
}

func NewService(
	bookingRepo Repository,
	turfRepo turf.Repository,
	userRepo user.Repository,
	emailService *email.Service,
	platformFeePaise int64,
	granularityMinutes int,
) Service {
	return &service{
		bookingRepo:      bookingRepo,
		turfRepo:         turfRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		platformFeePaise: platformFeePaise,
		granularity:      timeofday.Minutes(granularityMinutes),
		now:              time.Now,
	}
}

func (s *service) CreateBooking(ctx context.Context, userID int, req CreateBookingRequest) (*Booking, error) {
	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, ErrInvalidRange
	}

	start, err := timeofday.Parse(req.StartTime)
	if err != nil {
		return nil, ErrInvalidRange
	}
	end, err := timeofday.Parse(req.EndTime)
	if err != nil {
		return nil, ErrInvalidRange
	}

	t, err := s.turfRepo.GetTurfByID(ctx, req.TurfID)
	if err != nil {
		return nil, ErrTurfNotFound
	}

	window, err := s.turfRepo.GetOperatingWindow(ctx, req.TurfID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if !window.IsOpen {
		return nil, ErrTurfClosed
	}

	start, end, err = normalizeRange(*window, start, end)
	if err != nil {
		return nil, err
	}

	if day.Add(time.Duration(start) * time.Minute).Before(s.now()) {
		return nil, ErrPastBooking
	}

	types, err := s.turfRepo.ListBookingTypes(ctx, req.TurfID, true)
	if err != nil {
		return nil, err
	}
	var bookingType *turf.BookingType
	for i := range types {
		if types[i].ID == req.BookingTypeID {
			bookingType = &types[i]
			break
		}
	}
	if bookingType == nil {
		return nil, ErrTypeNotFound
	}

	records, err := s.bookingRepo.ListRecordsForDate(ctx, req.TurfID, req.Date)
	if err != nil {
		return nil, err
	}

	blackouts, err := s.turfRepo.ListBlackoutsForDate(ctx, req.TurfID, req.Date)
	if err != nil {
		return nil, err
	}
	blackoutSlots := make([]availability.Slot, 0, len(blackouts))
	for _, b := range blackouts {
		blackoutSlots = append(blackoutSlots, availability.Slot{Start: b.Start, End: b.End})
	}

	// Capacity is checked per granularity step so a long booking cannot slip
	// through on a range-wide average.
	for sub := start; sub < end; sub += s.granularity {
		subEnd := sub + s.granularity
		if subEnd > end {
			subEnd = end
		}
		slot := availability.Slot{Start: sub, End: subEnd}
		capacity := availability.ResolveCapacity(slot, types, records, blackoutSlots)
		if capacity[bookingType.ID] <= 0 {
			return nil, ErrSlotUnavailable
		}
	}

	duration := int64(end - start)
	totalFee := bookingType.HourlyRate*duration/60 + s.platformFeePaise

	created, err := s.bookingRepo.CreateBooking(ctx, &Booking{
		UserID:           userID,
		TurfID:           req.TurfID,
		BookingTypeID:    req.BookingTypeID,
		BookingDate:      req.Date,
		Start:            start,
		End:              end,
		TotalFeePaise:    totalFee,
		PlatformFeePaise: s.platformFeePaise,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking(created.Status, bookingType.Name)

	// Confirmation mail is best effort; the booking stands either way.
	if u, err := s.userRepo.FindByID(ctx, userID); err == nil {
		slotText, _ := timeofday.FormatRange(created.Start.String(), created.End.String())
		s.emailService.SendBookingConfirmation(ctx, u.Email, u.Name, t.Name, created.BookingDate, slotText)
	}

	return created, nil
}

// normalizeRange validates the requested interval against the operating
// window and lifts past-midnight times onto the extended ordinal scale used
// by the availability engine.
func normalizeRange(w turf.OperatingWindow, start, end timeofday.Minutes) (timeofday.Minutes, timeofday.Minutes, error) {
	closeOrd := w.Close
	if w.SpansMidnight {
		closeOrd += timeofday.MinutesPerDay
		if start < w.Open {
			start += timeofday.MinutesPerDay
		}
	}

	if end <= start {
		if !w.SpansMidnight {
			return 0, 0, ErrInvalidRange
		}
		end += timeofday.MinutesPerDay
	}

	if start < w.Open || end > closeOrd {
		return 0, 0, ErrOutsideHours
	}

	return start, end, nil
}

func (s *service) CancelBooking(ctx context.Context, userID, bookingID int) error {
	b, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	if b.UserID != userID {
		// The turf owner may cancel bookings on their own turf.
		t, err := s.turfRepo.GetTurfByID(ctx, b.TurfID)
		if err != nil || t.OwnerID != userID {
			return ErrNotBookingOwner
		}
	}

	if err := s.bookingRepo.CancelBooking(ctx, bookingID); err != nil {
		if errors.Is(err, ErrBookingNotFoundOrAlreadyCancelled) {
			return ErrBookingNotFound
		}
		return err
	}

	metrics.RecordBookingCancellation()

	if u, err := s.userRepo.FindByID(ctx, b.UserID); err == nil {
		if t, err := s.turfRepo.GetTurfByID(ctx, b.TurfID); err == nil {
			slotText, _ := timeofday.FormatRange(b.Start.String(), b.End.String())
			s.emailService.SendBookingCancellation(ctx, u.Email, u.Name, t.Name, b.BookingDate, slotText)
		}
	}

	return nil
}

func (s *service) UpdateStatus(ctx context.Context, ownerID, bookingID int, status string) error {
	b, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	t, err := s.turfRepo.GetTurfByID(ctx, b.TurfID)
	if err != nil {
		return ErrTurfNotFound
	}
	if t.OwnerID != ownerID {
		return ErrNotTurfOwner
	}

	return s.bookingRepo.UpdateStatus(ctx, bookingID, status)
}

func (s *service) GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	bookings, err := s.bookingRepo.GetUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	fillRemaining(bookings)
	return bookings, nil
}

func (s *service) GetBookingsByTurf(ctx context.Context, ownerID, turfID int, date string) ([]BookingWithDetails, error) {
	t, err := s.turfRepo.GetTurfByID(ctx, turfID)
	if err != nil {
		return nil, ErrTurfNotFound
	}
	if t.OwnerID != ownerID {
		return nil, ErrNotTurfOwner
	}

	bookings, err := s.bookingRepo.GetBookingsByTurf(ctx, turfID, date)
	if err != nil {
		return nil, err
	}
	fillRemaining(bookings)
	return bookings, nil
}

func fillRemaining(bookings []BookingWithDetails) {
	for i := range bookings {
		b := &bookings[i]
		b.RemainingAmountPaise = payment.RemainingAmount(
			b.TotalFeePaise, b.PlatformFeePaise, b.AdvancePaid, b.RemainingPaid,
		)
	}
}
