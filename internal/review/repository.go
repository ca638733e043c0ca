package review

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrAlreadyReviewed = errors.New("user has already reviewed this turf")
	ErrReviewNotFound  = errors.New("review not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateReview inserts a review, deriving the verified flag from whether the
// user actually completed a booking at the turf. The unique index on
// (user_id, turf_id) enforces one review per user per turf.
func (r *repository) CreateReview(ctx context.Context, userID, turfID, rating int, comment string) (*Review, error) {
	rev := &Review{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO reviews (user_id, turf_id, rating, comment, verified)
		VALUES ($1, $2, $3, $4, EXISTS(
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND turf_id = $2 AND status = 'completed'
		))
		RETURNING id, user_id, turf_id, rating, comment, verified, created_at
	`, userID, turfID, rating, comment).StructScan(rev)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	return rev, nil
}

func (r *repository) ListByTurf(ctx context.Context, turfID, limit, offset int) ([]ReviewWithUser, error) {
	if limit <= 0 {
		limit = 50
	}

	reviews := []ReviewWithUser{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT r.id, r.user_id, r.turf_id, r.rating, r.comment, r.verified, r.created_at,
		       u.name AS user_name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.turf_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`, turfID, limit, offset)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *repository) GetSummary(ctx context.Context, turfID int) (*RatingSummary, error) {
	rows := []struct {
		Rating int `db:"rating"`
		Count  int `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT rating, COUNT(*) AS count
		FROM reviews
		WHERE turf_id = $1
		GROUP BY rating
	`, turfID)
	if err != nil {
		return nil, err
	}

	summary := &RatingSummary{TurfID: turfID}
	sum := 0
	for _, row := range rows {
		if row.Rating < 1 || row.Rating > 5 {
			continue
		}
		summary.Breakdown[row.Rating-1] = row.Count
		summary.TotalReviews += row.Count
		sum += row.Rating * row.Count
	}
	if summary.TotalReviews > 0 {
		summary.AverageRating = float64(sum) / float64(summary.TotalReviews)
	}

	return summary, nil
}

func (r *repository) DeleteReview(ctx context.Context, userID, reviewID int) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM reviews
		WHERE id = $1 AND user_id = $2
	`, reviewID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
