package payment

import "time"

// Payment kinds.
const (
	KindAdvance   = "advance"
	KindRemaining = "remaining"
)

// Payment states derived from the two paid flags on a booking.
const (
	StatusUnpaid        = "unpaid"
	StatusAdvancePaid   = "advance_paid"
	StatusRemainingPaid = "remaining_paid"
	StatusPaid          = "paid"
)

type Payment struct {
	ID          int       `db:"id" json:"id"`
	BookingID   int       `db:"booking_id" json:"booking_id"`
	Kind        string    `db:"kind" json:"kind"`
	AmountPaise int64     `db:"amount_paise" json:"amount_paise"`
	Method      string    `db:"method" json:"method"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Summary is the payment view of one booking: the fee split, which halves
// have been paid, and every recorded payment.
type Summary struct {
	BookingID            int       `json:"booking_id"`
	TotalFeePaise        int64     `json:"total_fee_paise"`
	PlatformFeePaise     int64     `json:"platform_fee_paise"`
	AdvancePaid          bool      `json:"advance_paid"`
	RemainingPaid        bool      `json:"remaining_paid"`
	Status               string    `json:"status"`
	AdvanceAmountPaise   int64     `json:"advance_amount_paise"`
	RemainingAmountPaise int64     `json:"remaining_amount_paise"`
	Payments             []Payment `json:"payments"`
}

type RecordPaymentRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=advance remaining"`
	Method string `json:"method" binding:"omitempty,oneof=cash upi card"`
}
