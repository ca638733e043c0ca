package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupAnalyticsMock(t *testing.T) (AnalyticsRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAnalyticsRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestGetBookingStatsByDay(t *testing.T) {
	repo, mock, closer := setupAnalyticsMock(t)
	defer closer()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("GROUP BY DATE").
		WithArgs(5, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "bookings_created", "bookings_cancelled", "revenue_paise"}).
			AddRow("2026-08-10", 4, 1, int64(640000)).
			AddRow("2026-08-11", 2, 0, int64(320000)))

	stats, err := repo.GetBookingStatsByDay(context.Background(), 5, from, to)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.Equal(t, "2026-08-10", stats[0].Bucket)
	require.Equal(t, 4, stats[0].BookingsCreated)
	require.Equal(t, int64(640000), stats[0].RevenuePaise)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingStatsByTurf(t *testing.T) {
	repo, mock, closer := setupAnalyticsMock(t)
	defer closer()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("GROUP BY t.id").
		WithArgs(5, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"turf_id", "turf_name", "bookings_created", "bookings_cancelled", "revenue_paise"}).
			AddRow(1, "Greenfield Arena", 6, 1, int64(960000)).
			AddRow(2, "City Turf Park", 0, 0, int64(0)))

	stats, err := repo.GetBookingStatsByTurf(context.Background(), 5, from, to)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.Equal(t, "Greenfield Arena", stats[0].TurfName)
	require.Equal(t, int64(0), stats[1].RevenuePaise)

	require.NoError(t, mock.ExpectationsWereMet())
}
