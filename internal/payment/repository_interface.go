package payment

import "context"

type Repository interface {
	GetSummary(ctx context.Context, bookingID, userID int) (*Summary, error)
	RecordPayment(ctx context.Context, bookingID, userID int, kind, method string) (*Payment, error)
}
