package availability

import (
	"github.com/MandarKanbargi/turf-admin/internal/timeofday"
	"github.com/MandarKanbargi/turf-admin/internal/turf"
)

// TypeAvailability is one booking type's remaining capacity within a slot.
type TypeAvailability struct {
	BookingTypeID  int    `json:"booking_type_id"`
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	HourlyRate     int64  `json:"hourly_rate_paise"`
	MaxConcurrent  int    `json:"max_concurrent"`
	AvailableSlots int    `json:"available_slots"`
}

// SlotAvailability is a candidate slot annotated with per-type capacity.
// MinRate is the cheapest rate among types that still have capacity; it is
// omitted entirely when the slot is full so the caller renders a
// "not available" state instead of a price.
type SlotAvailability struct {
	Slot
	BookingTypes []TypeAvailability `json:"booking_types"`
	Available    bool               `json:"available"`
	MinRate      *int64             `json:"min_hourly_rate_paise,omitempty"`
}

// UnavailablePeriod mirrors a blackout in the response so clients can explain
// blocked ranges.
type UnavailablePeriod struct {
	Start  timeofday.Minutes `json:"start_time"`
	End    timeofday.Minutes `json:"end_time"`
	Reason string            `json:"reason,omitempty"`
}

// View is the displayable availability grid for one turf and date. IsOpen
// distinguishes a closed turf from an open one whose period filter matched
// nothing; slot-list length alone cannot tell the two apart.
type View struct {
	Date               string              `json:"date"`
	TurfID             int                 `json:"turf_id"`
	IsOpen             bool                `json:"is_open"`
	Period             string              `json:"period,omitempty"`
	Slots              []SlotAvailability  `json:"slots"`
	UnavailablePeriods []UnavailablePeriod `json:"unavailable_periods"`
}

// BuildView composes slot enumeration and capacity resolution into the grid
// the UI consumes. periodFilter, when non-nil, keeps only slots whose start
// time falls inside the period. The function is pure: identical inputs yield
// deep-equal views.
func BuildView(
	date string,
	window turf.OperatingWindow,
	types []turf.BookingType,
	bookings []BookingRecord,
	blackouts []turf.Blackout,
	granularityMinutes int,
	periodFilter *timeofday.Period,
) (*View, error) {
	view := &View{
		Date:               date,
		TurfID:             window.TurfID,
		IsOpen:             window.IsOpen,
		Slots:              []SlotAvailability{},
		UnavailablePeriods: []UnavailablePeriod{},
	}
	if periodFilter != nil {
		view.Period = periodFilter.Name
	}

	if !window.IsOpen {
		return view, nil
	}

	candidates, err := EnumerateSlots(window, granularityMinutes)
	if err != nil {
		return nil, err
	}

	blackoutSlots := make([]Slot, 0, len(blackouts))
	for _, b := range blackouts {
		blackoutSlots = append(blackoutSlots, Slot{Start: b.Start, End: b.End})
		view.UnavailablePeriods = append(view.UnavailablePeriods, UnavailablePeriod{
			Start:  b.Start,
			End:    b.End,
			Reason: b.Reason,
		})
	}

	for _, slot := range candidates {
		if periodFilter != nil && !periodFilter.Contains(slot.Start) {
			continue
		}

		capacity := ResolveCapacity(slot, types, bookings, blackoutSlots)

		sa := SlotAvailability{Slot: slot, BookingTypes: make([]TypeAvailability, 0, len(types))}
		for _, t := range types {
			n := capacity[t.ID]
			sa.BookingTypes = append(sa.BookingTypes, TypeAvailability{
				BookingTypeID:  t.ID,
				Name:           t.Name,
				DisplayName:    t.DisplayName,
				HourlyRate:     t.HourlyRate,
				MaxConcurrent:  t.MaxConcurrent,
				AvailableSlots: n,
			})
			if n > 0 {
				sa.Available = true
				if sa.MinRate == nil || t.HourlyRate < *sa.MinRate {
					rate := t.HourlyRate
					sa.MinRate = &rate
				}
			}
		}

		view.Slots = append(view.Slots, sa)
	}

	return view, nil
}
