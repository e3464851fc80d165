package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ISODurationToMinutes converts an ISO-8601 duration of the form used by the
// offer provider (e.g. "PT3H10M", "PT45M", "P1DT2H") to total minutes.
// The raw string is kept alongside in display records; this only feeds the
// human readable formatting.
func ISODurationToMinutes(iso string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(iso))
	if !strings.HasPrefix(s, "P") {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", iso)
	}
	s = s[1:]

	var (
		total   int64
		inTime  bool
		numeric strings.Builder
	)

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			numeric.WriteRune(r)
		case r == 'T':
			inTime = true
		case r == 'D' || r == 'H' || r == 'M':
			if numeric.Len() == 0 {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", iso)
			}

			n, err := strconv.ParseInt(numeric.String(), 10, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", iso, err)
			}
			numeric.Reset()

			switch {
			case r == 'D':
				total += n * 24 * 60
			case r == 'H':
				total += n * 60
			case r == 'M' && inTime:
				total += n
			default:
				// months are not meaningful for flight durations
				return 0, fmt.Errorf("unsupported designator in duration %q", iso)
			}
		default:
			return 0, fmt.Errorf("invalid ISO-8601 duration %q", iso)
		}
	}

	if numeric.Len() != 0 {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", iso)
	}

	return total, nil
}

// FormatMinutes converts minutes to a display string.
// Example: 190 -> "3h 10m"
func FormatMinutes(durationInMinutes int64) string {
	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatISODuration renders an ISO-8601 duration for display, falling back to
// the raw string when it cannot be parsed.
func FormatISODuration(iso string) string {
	minutes, err := ISODurationToMinutes(iso)
	if err != nil {
		return iso
	}

	return FormatMinutes(minutes)
}
