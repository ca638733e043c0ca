package payment

// ActualAmount is what the turf owner collects directly from the player:
// the booking total minus the platform's cut, which is settled online at
// booking time.
func ActualAmount(totalFeePaise, platformFeePaise int64) int64 {
	return totalFeePaise - platformFeePaise
}

// AdvanceAmount is the at-booking half of the actual amount. Integer paise
// division floors, so the remaining half absorbs the odd paisa and the two
// halves always sum to the actual amount.
func AdvanceAmount(totalFeePaise, platformFeePaise int64) int64 {
	return ActualAmount(totalFeePaise, platformFeePaise) / 2
}

// RemainingAmount is what is still owed to the turf owner given which
// halves have been collected.
func RemainingAmount(totalFeePaise, platformFeePaise int64, advancePaid, remainingPaid bool) int64 {
	actual := ActualAmount(totalFeePaise, platformFeePaise)
	switch {
	case advancePaid && remainingPaid:
		return 0
	case advancePaid:
		return actual - actual/2
	case remainingPaid:
		// Remaining recorded without an advance should not happen through
		// the API, but historical rows may carry it; the advance half is
		// still due.
		return actual / 2
	default:
		return actual
	}
}

// State names the payment status implied by the two paid flags.
func State(advancePaid, remainingPaid bool) string {
	switch {
	case advancePaid && remainingPaid:
		return StatusPaid
	case advancePaid:
		return StatusAdvancePaid
	case remainingPaid:
		return StatusRemainingPaid
	default:
		return StatusUnpaid
	}
}
