package timeofday

import "strings"

// Period is a named bucket of the day used for availability filtering. A
// period with Start > End wraps past midnight.
type Period struct {
	Name  string  `json:"name"`
	Start Minutes `json:"-"`
	End   Minutes `json:"-"`
}

// DefaultPeriods partitions the full 24-hour cycle; Night wraps midnight.
var DefaultPeriods = []Period{
	{Name: "Morning", Start: 6 * 60, End: 12 * 60},
	{Name: "Afternoon", Start: 12 * 60, End: 17 * 60},
	{Name: "Evening", Start: 17 * 60, End: 21 * 60},
	{Name: "Night", Start: 21 * 60, End: 6 * 60},
}

// Contains reports whether m falls within the period. Wrapping periods test
// both halves of the split range.
func (p Period) Contains(m Minutes) bool {
	norm := ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	if p.Start > p.End {
		return norm >= p.Start || norm < p.End
	}
	return norm >= p.Start && norm < p.End
}

// CurrentPeriod returns the first period containing now. When no period
// matches (only possible if the list leaves a gap in day coverage) it falls
// back to the first period rather than failing; the UI always needs a
// default selection. An empty list yields the zero Period.
func CurrentPeriod(periods []Period, now Minutes) Period {
	for _, p := range periods {
		if p.Contains(now) {
			return p
		}
	}
	if len(periods) == 0 {
		return Period{}
	}
	return periods[0]
}

// PeriodByName finds a period case-insensitively.
func PeriodByName(periods []Period, name string) (Period, bool) {
	for _, p := range periods {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Period{}, false
}
