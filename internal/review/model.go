package review

import "time"

type Review struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	TurfID    int       `db:"turf_id" json:"turf_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment,omitempty"`
	Verified  bool      `db:"verified" json:"verified"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ReviewWithUser struct {
	Review
	UserName string `db:"user_name" json:"user_name"`
}

// RatingSummary aggregates a turf's reviews: overall average plus a count
// per star so clients can draw the usual breakdown bars.
type RatingSummary struct {
	TurfID        int     `json:"turf_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
	Breakdown     [5]int  `json:"breakdown"` // index 0 holds 1-star counts
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}
