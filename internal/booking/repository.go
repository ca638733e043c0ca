package booking

import (
	"context"
	"errors"

	"github.com/MandarKanbargi/turf-admin/internal/availability"
	"github.com/MandarKanbargi/turf-admin/internal/timeofday"

	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFoundOrAlreadyCancelled = errors.New("booking not found or already cancelled")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, user_id, turf_id, booking_type_id, booking_date,
	start_minutes, end_minutes, status, total_fee_paise, platform_fee_paise,
	advance_paid, remaining_paid, created_at, updated_at`

func (r *repository) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings
			(user_id, turf_id, booking_type_id, booking_date, start_minutes, end_minutes,
			 status, total_fee_paise, platform_fee_paise)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7, $8)
		RETURNING ` + bookingColumns

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.UserID, b.TurfID, b.BookingTypeID, b.BookingDate,
		b.Start, b.End, b.TotalFeePaise, b.PlatformFeePaise,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) CancelBooking(ctx context.Context, id int) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'confirmed')
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFoundOrAlreadyCancelled
	}

	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFoundOrAlreadyCancelled
	}

	return nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.turf_id,
			b.booking_type_id,
			b.booking_date,
			b.start_minutes,
			b.end_minutes,
			b.status,
			b.total_fee_paise,
			b.platform_fee_paise,
			b.advance_paid,
			b.remaining_paid,
			b.created_at,
			b.updated_at,
			t.name AS turf_name,
			t.city AS turf_city,
			bt.display_name AS booking_type_name,
			u.name AS user_name,
			u.phone AS user_phone
		FROM bookings b
		JOIN turfs t ON b.turf_id = t.id
		JOIN booking_types bt ON b.booking_type_id = bt.id
		JOIN users u ON b.user_id = u.id
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC, b.start_minutes DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetBookingsByTurf(ctx context.Context, turfID int, date string) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.turf_id,
			b.booking_type_id,
			b.booking_date,
			b.start_minutes,
			b.end_minutes,
			b.status,
			b.total_fee_paise,
			b.platform_fee_paise,
			b.advance_paid,
			b.remaining_paid,
			b.created_at,
			b.updated_at,
			t.name AS turf_name,
			t.city AS turf_city,
			bt.display_name AS booking_type_name,
			u.name AS user_name,
			u.phone AS user_phone
		FROM bookings b
		JOIN turfs t ON b.turf_id = t.id
		JOIN booking_types bt ON b.booking_type_id = bt.id
		JOIN users u ON b.user_id = u.id
		WHERE b.turf_id = $1
	`
	args := []interface{}{turfID}

	if date != "" {
		query += " AND b.booking_date = $2"
		args = append(args, date)
	}

	query += " ORDER BY b.booking_date DESC, b.start_minutes ASC"

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// ListRecordsForDate feeds the availability engine. Cancelled bookings free
// their capacity, every other status consumes it.
func (r *repository) ListRecordsForDate(ctx context.Context, turfID int, date string) ([]availability.BookingRecord, error) {
	query := `
		SELECT booking_type_id, start_minutes, end_minutes
		FROM bookings
		WHERE turf_id = $1 AND booking_date = $2 AND status <> 'cancelled'
	`

	rows := []struct {
		BookingTypeID int               `db:"booking_type_id"`
		Start         timeofday.Minutes `db:"start_minutes"`
		End           timeofday.Minutes `db:"end_minutes"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, turfID, date); err != nil {
		return nil, err
	}

	records := make([]availability.BookingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, availability.BookingRecord{
			BookingTypeID: row.BookingTypeID,
			Start:         row.Start,
			End:           row.End,
		})
	}

	return records, nil
}
