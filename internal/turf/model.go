package turf

import (
	"time"

	"github.com/MandarKanbargi/turf-admin/internal/timeofday"
)

type Turf struct {
	ID          int       `db:"id" json:"id"`
	OwnerID     int       `db:"owner_id" json:"owner_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	Address     string    `db:"address" json:"address"`
	City        string    `db:"city" json:"city"`
	SurfaceType string    `db:"surface_type" json:"surface_type,omitempty"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// OperatingWindow is a turf's opening hours for one weekday. SpansMidnight
// marks windows whose close time belongs to the next calendar day; without it
// a close-before-open window is rejected rather than guessed at.
type OperatingWindow struct {
	TurfID        int               `db:"turf_id" json:"-"`
	DayOfWeek     int               `db:"day_of_week" json:"day_of_week"`
	IsOpen        bool              `db:"is_open" json:"is_open"`
	Open          timeofday.Minutes `db:"open_minutes" json:"open_time"`
	Close         timeofday.Minutes `db:"close_minutes" json:"close_time"`
	SpansMidnight bool              `db:"spans_midnight" json:"spans_midnight"`
}

// BookingType is an offering with its own capacity ceiling and rate. An
// exclusive type locks the whole slot for every type while one of its
// bookings is active.
type BookingType struct {
	ID            int       `db:"id" json:"id"`
	TurfID        int       `db:"turf_id" json:"turf_id"`
	Name          string    `db:"name" json:"name"`
	DisplayName   string    `db:"display_name" json:"display_name"`
	HourlyRate    int64     `db:"hourly_rate_paise" json:"hourly_rate_paise"`
	MaxConcurrent int       `db:"max_concurrent" json:"max_concurrent"`
	IsExclusive   bool      `db:"is_exclusive" json:"is_exclusive"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Blackout is an owner-declared unavailable period; it blocks every booking
// type for the overlapped slots.
type Blackout struct {
	ID        int               `db:"id" json:"id"`
	TurfID    int               `db:"turf_id" json:"turf_id"`
	Date      string            `db:"blackout_date" json:"date"`
	Start     timeofday.Minutes `db:"start_minutes" json:"start_time"`
	End       timeofday.Minutes `db:"end_minutes" json:"end_time"`
	Reason    string            `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
}

type CreateTurfRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	Description string `json:"description"`
	SurfaceType string `json:"surface_type"`
}

type OperatingWindowRequest struct {
	DayOfWeek     int    `json:"day_of_week" binding:"min=0,max=6"`
	IsOpen        bool   `json:"is_open"`
	OpenTime      string `json:"open_time"`
	CloseTime     string `json:"close_time"`
	SpansMidnight bool   `json:"spans_midnight"`
}

type UpdateOperatingHoursRequest struct {
	Hours []OperatingWindowRequest `json:"hours" binding:"required,min=1,max=7,dive"`
}

type CreateBookingTypeRequest struct {
	Name          string `json:"name" binding:"required"`
	DisplayName   string `json:"display_name"`
	HourlyRate    int64  `json:"hourly_rate_paise" binding:"required,gt=0"`
	MaxConcurrent int    `json:"max_concurrent" binding:"required,min=1"`
	IsExclusive   bool   `json:"is_exclusive"`
}

type CreateBlackoutRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}
