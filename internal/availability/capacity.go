package availability

import (
	"github.com/MandarKanbargi/turf-admin/internal/timeofday"
	"github.com/MandarKanbargi/turf-admin/internal/turf"
)

// BookingRecord is the engine's view of an existing booking: just the type
// and the occupied interval. Callers are responsible for passing only
// capacity-consuming records (anything not cancelled); the engine does no
// status filtering of its own.
type BookingRecord struct {
	BookingTypeID int
	Start         timeofday.Minutes
	End           timeofday.Minutes
}

// ResolveCapacity computes, per booking type, how many concurrent bookings the
// slot can still take. Counts are clamped to [0, maxConcurrent] so an
// oversubscribed slot reads as full rather than crashing the view. An
// overlapping booking of an exclusive type, or an overlapping blackout, zeroes
// every type for the slot.
func ResolveCapacity(slot Slot, types []turf.BookingType, bookings []BookingRecord, blackouts []Slot) map[int]int {
	available := make(map[int]int, len(types))

	blocked := false
	for _, b := range blackouts {
		if slot.Overlaps(b.Start, b.End) {
			blocked = true
			break
		}
	}

	exclusive := make(map[int]bool, len(types))
	for _, t := range types {
		exclusive[t.ID] = t.IsExclusive
	}

	consumed := make(map[int]int, len(types))
	if !blocked {
		for _, b := range bookings {
			if !slot.Overlaps(b.Start, b.End) {
				continue
			}
			if exclusive[b.BookingTypeID] {
				blocked = true
				break
			}
			consumed[b.BookingTypeID]++
		}
	}

	for _, t := range types {
		if blocked {
			available[t.ID] = 0
			continue
		}
		n := t.MaxConcurrent - consumed[t.ID]
		if n < 0 {
			n = 0
		}
		available[t.ID] = n
	}

	return available
}
