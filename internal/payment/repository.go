package payment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotAllowed       = errors.New("not allowed to manage payments for this booking")
	ErrBookingCancelled = errors.New("booking is cancelled")
	ErrAlreadyPaid      = errors.New("payment already recorded")
	ErrAdvanceRequired  = errors.New("advance must be paid before the remaining amount")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

type bookingRow struct {
	ID               int    `db:"id"`
	UserID           int    `db:"user_id"`
	TurfOwnerID      int    `db:"turf_owner_id"`
	Status           string `db:"status"`
	TotalFeePaise    int64  `db:"total_fee_paise"`
	PlatformFeePaise int64  `db:"platform_fee_paise"`
	AdvancePaid      bool   `db:"advance_paid"`
	RemainingPaid    bool   `db:"remaining_paid"`
}

// Payments may be recorded by the player who made the booking or by the
// owner of the turf collecting cash at the venue.
func (b bookingRow) allows(userID int) bool {
	return b.UserID == userID || b.TurfOwnerID == userID
}

func (r *repository) GetSummary(ctx context.Context, bookingID, userID int) (*Summary, error) {
	var b bookingRow
	err := r.db.GetContext(ctx, &b, `
		SELECT b.id, b.user_id, t.owner_id AS turf_owner_id, b.status,
		       b.total_fee_paise, b.platform_fee_paise, b.advance_paid, b.remaining_paid
		FROM bookings b
		JOIN turfs t ON t.id = b.turf_id
		WHERE b.id = $1
	`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !b.allows(userID) {
		return nil, ErrNotAllowed
	}

	payments := []Payment{}
	err = r.db.SelectContext(ctx, &payments, `
		SELECT id, booking_id, kind, amount_paise, method, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at ASC
	`, bookingID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		BookingID:            b.ID,
		TotalFeePaise:        b.TotalFeePaise,
		PlatformFeePaise:     b.PlatformFeePaise,
		AdvancePaid:          b.AdvancePaid,
		RemainingPaid:        b.RemainingPaid,
		Status:               State(b.AdvancePaid, b.RemainingPaid),
		AdvanceAmountPaise:   AdvanceAmount(b.TotalFeePaise, b.PlatformFeePaise),
		RemainingAmountPaise: RemainingAmount(b.TotalFeePaise, b.PlatformFeePaise, b.AdvancePaid, b.RemainingPaid),
		Payments:             payments,
	}, nil
}

// RecordPayment marks one half of a booking's fee as collected. The booking
// row is locked for the duration so concurrent requests cannot record the
// same half twice.
func (r *repository) RecordPayment(ctx context.Context, bookingID, userID int, kind, method string) (*Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var b bookingRow
	err = tx.QueryRowxContext(ctx, `
		SELECT b.id, b.user_id, t.owner_id AS turf_owner_id, b.status,
		       b.total_fee_paise, b.platform_fee_paise, b.advance_paid, b.remaining_paid
		FROM bookings b
		JOIN turfs t ON t.id = b.turf_id
		WHERE b.id = $1
		FOR UPDATE OF b
	`, bookingID).StructScan(&b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !b.allows(userID) {
		return nil, ErrNotAllowed
	}
	if b.Status == "cancelled" {
		return nil, ErrBookingCancelled
	}

	var amount int64
	switch kind {
	case KindAdvance:
		if b.AdvancePaid {
			return nil, ErrAlreadyPaid
		}
		amount = AdvanceAmount(b.TotalFeePaise, b.PlatformFeePaise)
	case KindRemaining:
		if !b.AdvancePaid {
			return nil, ErrAdvanceRequired
		}
		if b.RemainingPaid {
			return nil, ErrAlreadyPaid
		}
		amount = RemainingAmount(b.TotalFeePaise, b.PlatformFeePaise, true, false)
	default:
		return nil, errors.New("unknown payment kind: " + kind)
	}

	if method == "" {
		method = "cash"
	}

	p := &Payment{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO payments (booking_id, kind, amount_paise, method)
		VALUES ($1, $2, $3, $4)
		RETURNING id, booking_id, kind, amount_paise, method, created_at
	`, bookingID, kind, amount, method).StructScan(p)
	if err != nil {
		return nil, err
	}

	if kind == KindAdvance {
		// The advance confirms a pending booking.
		_, err = tx.ExecContext(ctx, `
			UPDATE bookings
			SET advance_paid = TRUE,
			    status = CASE WHEN status = 'pending' THEN 'confirmed' ELSE status END,
			    updated_at = NOW()
			WHERE id = $1
		`, bookingID)
	} else {
		_, err = tx.ExecContext(ctx, `
			UPDATE bookings
			SET remaining_paid = TRUE, updated_at = NOW()
			WHERE id = $1
		`, bookingID)
	}
	if err != nil {
		return nil, err
	}

	return p, tx.Commit()
}
