// utils/timeutil.go
package utils

import (
	"math"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	HHMMLayout = "15:04"
	day        = 24 * time.Hour
)

// ParseDate accepts a plain calendar date (2025-06-01) or a full RFC3339
// timestamp. Plain dates are pinned to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func IsHHMM(s string) bool {
	_, err := time.Parse(HHMMLayout, s)
	return err == nil
}

// DurationDays is the number of started 24h periods between start and end,
// i.e. ceil((end-start)/day). Non-positive spans yield 0.
func DurationDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// CalendarDays counts the calendar dates touched by [start, end], both ends
// included. A same-day range is 1.
func CalendarDays(start, end time.Time) int {
	s := TruncateToDate(start)
	e := TruncateToDate(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s)/day) + 1
}

func TruncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
