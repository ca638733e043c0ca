package availability

import (
	"errors"

	"github.com/MandarKanbargi/turf-admin/internal/timeofday"
	"github.com/MandarKanbargi/turf-admin/internal/turf"
)

var (
	// ErrAmbiguousWindow marks a window that closes before it opens without
	// declaring that it spans midnight. Guessing either way would silently
	// produce wrong slots, so the caller must resolve it.
	ErrAmbiguousWindow = errors.New("operating window closes before it opens")

	ErrBadGranularity = errors.New("slot granularity must be positive")
)

// Slot is a half-open [Start, End) candidate interval. For windows that span
// midnight the ordinals of the overnight tail run past 24h and wrap on
// formatting.
type Slot struct {
	Start timeofday.Minutes `json:"start_time"`
	End   timeofday.Minutes `json:"end_time"`
}

// Overlaps reports half-open interval overlap with [start, end).
func (s Slot) Overlaps(start, end timeofday.Minutes) bool {
	return s.Start < end && start < s.End
}

// EnumerateSlots tiles the operating window into contiguous slots of
// granularityMinutes, in ascending start order. A closed window yields no
// slots. A trailing remainder shorter than the granularity is dropped so the
// emitted slots always have uniform length.
func EnumerateSlots(w turf.OperatingWindow, granularityMinutes int) ([]Slot, error) {
	if granularityMinutes <= 0 {
		return nil, ErrBadGranularity
	}

	if !w.IsOpen {
		return nil, nil
	}

	open := w.Open
	close := w.Close
	if close <= open {
		if !w.SpansMidnight {
			return nil, ErrAmbiguousWindow
		}
		close += timeofday.MinutesPerDay
	}

	step := timeofday.Minutes(granularityMinutes)
	var slots []Slot
	for start := open; start+step <= close; start += step {
		slots = append(slots, Slot{Start: start, End: start + step})
	}

	return slots, nil
}
