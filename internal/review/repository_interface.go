package review

import "context"

type Repository interface {
	CreateReview(ctx context.Context, userID, turfID, rating int, comment string) (*Review, error)
	ListByTurf(ctx context.Context, turfID, limit, offset int) ([]ReviewWithUser, error)
	GetSummary(ctx context.Context, turfID int) (*RatingSummary, error)
	DeleteReview(ctx context.Context, userID, reviewID int) error
}
