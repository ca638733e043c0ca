package booking

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type BookingStatsByBucket struct {
	Bucket            string `db:"bucket" json:"bucket"`
	BookingsCreated   int    `db:"bookings_created" json:"bookings_created"`
	BookingsCancelled int    `db:"bookings_cancelled" json:"bookings_cancelled"`
	RevenuePaise      int64  `db:"revenue_paise" json:"revenue_paise"`
}

type BookingStatsByTurf struct {
	TurfID            int    `db:"turf_id" json:"turf_id"`
	TurfName          string `db:"turf_name" json:"turf_name"`
	BookingsCreated   int    `db:"bookings_created" json:"bookings_created"`
	BookingsCancelled int    `db:"bookings_cancelled" json:"bookings_cancelled"`
	RevenuePaise      int64  `db:"revenue_paise" json:"revenue_paise"`
}

// AnalyticsRepository aggregates booking counts and revenue for the owner
// dashboard. Revenue counts only non-cancelled bookings.
type AnalyticsRepository interface {
	GetBookingStatsByDay(ctx context.Context, ownerID int, from, to time.Time) ([]BookingStatsByBucket, error)
	GetBookingStatsByTurf(ctx context.Context, ownerID int, from, to time.Time) ([]BookingStatsByTurf, error)
}

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetBookingStatsByDay(ctx context.Context, ownerID int, from, to time.Time) ([]BookingStatsByBucket, error) {
	query := `
SELECT
  TO_CHAR(DATE(b.created_at), 'YYYY-MM-DD') AS bucket,
  COUNT(*) FILTER (WHERE b.status <> 'cancelled') AS bookings_created,
  COUNT(*) FILTER (WHERE b.status = 'cancelled')  AS bookings_cancelled,
  COALESCE(SUM(b.total_fee_paise) FILTER (WHERE b.status <> 'cancelled'), 0) AS revenue_paise
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
WHERE t.owner_id = $1 AND b.created_at BETWEEN $2 AND $3
GROUP BY DATE(b.created_at)
ORDER BY bucket`

	var stats []BookingStatsByBucket
	if err := r.db.SelectContext(ctx, &stats, query, ownerID, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *analyticsRepository) GetBookingStatsByTurf(ctx context.Context, ownerID int, from, to time.Time) ([]BookingStatsByTurf, error) {
	query := `
SELECT
  t.id   AS turf_id,
  t.name AS turf_name,
  COUNT(b.id) FILTER (WHERE b.status <> 'cancelled') AS bookings_created,
  COUNT(b.id) FILTER (WHERE b.status = 'cancelled')  AS bookings_cancelled,
  COALESCE(SUM(b.total_fee_paise) FILTER (WHERE b.status <> 'cancelled'), 0) AS revenue_paise
FROM turfs t
LEFT JOIN bookings b ON b.turf_id = t.id AND b.created_at BETWEEN $2 AND $3
WHERE t.owner_id = $1
GROUP BY t.id, t.name
ORDER BY t.id`

	var stats []BookingStatsByTurf
	if err := r.db.SelectContext(ctx, &stats, query, ownerID, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}
