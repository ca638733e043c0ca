package booking

import (
	"time"

	"github.com/MandarKanbargi/turf-admin/internal/timeofday"
)

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID               int               `db:"id" json:"id"`
	UserID           int               `db:"user_id" json:"user_id"`
	TurfID           int               `db:"turf_id" json:"turf_id"`
	BookingTypeID    int               `db:"booking_type_id" json:"booking_type_id"`
	BookingDate      string            `db:"booking_date" json:"booking_date"`
	Start            timeofday.Minutes `db:"start_minutes" json:"start_time"`
	End              timeofday.Minutes `db:"end_minutes" json:"end_time"`
	Status           string            `db:"status" json:"status"`
	TotalFeePaise    int64             `db:"total_fee_paise" json:"total_fee_paise"`
	PlatformFeePaise int64             `db:"platform_fee_paise" json:"platform_fee_paise"`
	AdvancePaid      bool              `db:"advance_paid" json:"advance_paid"`
	RemainingPaid    bool              `db:"remaining_paid" json:"remaining_paid"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at" json:"updated_at"`
}

// BookingWithDetails joins in the display fields list views need.
// RemainingAmountPaise is derived from the paid flags, not stored.
type BookingWithDetails struct {
	Booking
	TurfName             string `db:"turf_name" json:"turf_name"`
	TurfCity             string `db:"turf_city" json:"turf_city"`
	BookingTypeName      string `db:"booking_type_name" json:"booking_type_name"`
	UserName             string `db:"user_name" json:"user_name"`
	UserPhone            string `db:"user_phone" json:"user_phone"`
	RemainingAmountPaise int64  `db:"-" json:"remaining_amount_paise"`
}

type CreateBookingRequest struct {
	TurfID        int    `json:"turf_id" binding:"required"`
	BookingTypeID int    `json:"booking_type_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed completed cancelled"`
}

type CancelBookingResponse struct {
	Message string `json:"message" example:"Booking cancelled successfully"`
}
