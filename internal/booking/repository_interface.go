package booking

import (
	"context"

	"github.com/MandarKanbargi/turf-admin/internal/availability"
)

type Repository interface {
	CreateBooking(ctx context.Context, b *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id int) (*Booking, error)
	CancelBooking(ctx context.Context, id int) error
	UpdateStatus(ctx context.Context, id int, status string) error
	GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error)
	GetBookingsByTurf(ctx context.Context, turfID int, date string) ([]BookingWithDetails, error)
	ListRecordsForDate(ctx context.Context, turfID int, date string) ([]availability.BookingRecord, error)
}
