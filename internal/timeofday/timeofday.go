package timeofday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("invalid time of day")

// Minutes is a time of day expressed as minutes since local midnight.
// Values at or past 1440 belong to the next calendar day; they appear when an
// operating window spans midnight and are normalized on formatting.
type Minutes int

const MinutesPerDay Minutes = 24 * 60

// Parse converts "H:MM", "HH:MM" or "HH:MM:SS" into Minutes. Seconds are
// accepted and discarded. Malformed input is an error, never a zero value,
// since a silent zero would corrupt slot ordering downstream.
func Parse(s string) (Minutes, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	if len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	}

	return Minutes(hour*60 + minute), nil
}

// String renders the value as 24-hour "HH:MM", wrapping past-midnight ordinals
// back into the [0, 24h) range.
func (m Minutes) String() string {
	norm := ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", norm/60, norm%60)
}

// MarshalJSON renders Minutes as a "HH:MM" string.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON parses a "HH:MM" or "HH:MM:SS" string.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Format12Hour renders a 24-hour time string as "h:mm AM/PM". Hours 0 and 12
// both display as 12.
func Format12Hour(s string) (string, error) {
	m, err := Parse(s)
	if err != nil {
		return "", err
	}

	norm := ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	hour := int(norm / 60)
	minute := int(norm % 60)

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, ampm), nil
}

// FormatRange renders "h:mm AM – h:mm PM" for a pair of 24-hour time strings.
func FormatRange(start, end string) (string, error) {
	from, err := Format12Hour(start)
	if err != nil {
		return "", err
	}
	to, err := Format12Hour(end)
	if err != nil {
		return "", err
	}
	return from + " – " + to, nil
}
