package turf

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTurf(ctx context.Context, ownerID int, req CreateTurfRequest) (*Turf, error) {
	query := `
		INSERT INTO turfs (owner_id, name, description, address, city, surface_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, name, description, address, city, surface_type, is_active, created_at
	`

	var t Turf
	err := r.db.GetContext(ctx, &t, query, ownerID, req.Name, req.Description, req.Address, req.City, req.SurfaceType)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) GetTurfByID(ctx context.Context, id int) (*Turf, error) {
	query := `
		SELECT id, owner_id, name, description, address, city, surface_type, is_active, created_at
		FROM turfs
		WHERE id = $1
	`

	var t Turf
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) ListTurfs(ctx context.Context, city string) ([]Turf, error) {
	query := `
		SELECT id, owner_id, name, description, address, city, surface_type, is_active, created_at
		FROM turfs
		WHERE is_active = TRUE
	`
	args := []interface{}{}

	if city != "" {
		query += " AND city = $1"
		args = append(args, city)
	}

	query += " ORDER BY name ASC"

	var turfs []Turf
	err := r.db.SelectContext(ctx, &turfs, query, args...)
	if err != nil {
		return nil, err
	}

	return turfs, nil
}

func (r *repository) ListTurfsByOwner(ctx context.Context, ownerID int) ([]Turf, error) {
	query := `
		SELECT id, owner_id, name, description, address, city, surface_type, is_active, created_at
		FROM turfs
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	var turfs []Turf
	err := r.db.SelectContext(ctx, &turfs, query, ownerID)
	if err != nil {
		return nil, err
	}

	return turfs, nil
}

// ReplaceOperatingHours swaps the full weekly schedule in one transaction so
// readers never observe a partially updated week.
func (r *repository) ReplaceOperatingHours(ctx context.Context, turfID int, windows []OperatingWindow) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM operating_hours WHERE turf_id = $1`, turfID); err != nil {
		return err
	}

	for _, w := range windows {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO operating_hours (turf_id, day_of_week, is_open, open_minutes, close_minutes, spans_midnight)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, turfID, w.DayOfWeek, w.IsOpen, w.Open, w.Close, w.SpansMidnight)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetOperatingHours(ctx context.Context, turfID int) ([]OperatingWindow, error) {
	query := `
		SELECT turf_id, day_of_week, is_open, open_minutes, close_minutes, spans_midnight
		FROM operating_hours
		WHERE turf_id = $1
		ORDER BY day_of_week ASC
	`

	var windows []OperatingWindow
	err := r.db.SelectContext(ctx, &windows, query, turfID)
	if err != nil {
		return nil, err
	}

	return windows, nil
}

// GetOperatingWindow returns the window for one weekday. A turf with no row
// for that day is treated as closed, not as an error.
func (r *repository) GetOperatingWindow(ctx context.Context, turfID, dayOfWeek int) (*OperatingWindow, error) {
	query := `
		SELECT turf_id, day_of_week, is_open, open_minutes, close_minutes, spans_midnight
		FROM operating_hours
		WHERE turf_id = $1 AND day_of_week = $2
	`

	var w OperatingWindow
	err := r.db.GetContext(ctx, &w, query, turfID, dayOfWeek)
	if errors.Is(err, sql.ErrNoRows) {
		return &OperatingWindow{TurfID: turfID, DayOfWeek: dayOfWeek, IsOpen: false}, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

func (r *repository) CreateBookingType(ctx context.Context, turfID int, req CreateBookingTypeRequest) (*BookingType, error) {
	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Name
	}

	query := `
		INSERT INTO booking_types (turf_id, name, display_name, hourly_rate_paise, max_concurrent, is_exclusive)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, turf_id, name, display_name, hourly_rate_paise, max_concurrent, is_exclusive, is_active, created_at
	`

	var bt BookingType
	err := r.db.GetContext(ctx, &bt, query, turfID, req.Name, displayName, req.HourlyRate, req.MaxConcurrent, req.IsExclusive)
	if err != nil {
		return nil, err
	}

	return &bt, nil
}

func (r *repository) ListBookingTypes(ctx context.Context, turfID int, onlyActive bool) ([]BookingType, error) {
	query := `
		SELECT id, turf_id, name, display_name, hourly_rate_paise, max_concurrent, is_exclusive, is_active, created_at
		FROM booking_types
		WHERE turf_id = $1
	`

	if onlyActive {
		query += " AND is_active = TRUE"
	}

	query += " ORDER BY hourly_rate_paise ASC"

	var types []BookingType
	err := r.db.SelectContext(ctx, &types, query, turfID)
	if err != nil {
		return nil, err
	}

	return types, nil
}

func (r *repository) CreateBlackout(ctx context.Context, turfID int, date string, start, end int, reason string) (*Blackout, error) {
	query := `
		INSERT INTO turf_blackouts (turf_id, blackout_date, start_minutes, end_minutes, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, turf_id, blackout_date, start_minutes, end_minutes, reason, created_at
	`

	var b Blackout
	err := r.db.GetContext(ctx, &b, query, turfID, date, start, end, reason)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListBlackoutsForDate(ctx context.Context, turfID int, date string) ([]Blackout, error) {
	query := `
		SELECT id, turf_id, blackout_date, start_minutes, end_minutes, reason, created_at
		FROM turf_blackouts
		WHERE turf_id = $1 AND blackout_date = $2
		ORDER BY start_minutes ASC
	`

	var blackouts []Blackout
	err := r.db.SelectContext(ctx, &blackouts, query, turfID, date)
	if err != nil {
		return nil, err
	}

	return blackouts, nil
}
