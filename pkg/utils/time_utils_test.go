package utils

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestParseDate(t *testing.T) {
	c := qt.New(t)

	d, err := ParseDate("2025-06-01")
	c.Assert(err, qt.IsNil)
	c.Assert(d, qt.Equals, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	d, err = ParseDate("2025-06-01T10:30:00+02:00")
	c.Assert(err, qt.IsNil)
	c.Assert(d, qt.Equals, time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC))

	_, err = ParseDate("01/06/2025")
	c.Assert(err, qt.IsNotNil)
}

func TestParseOptionalDate(t *testing.T) {
	c := qt.New(t)

	d, err := ParseOptionalDate(nil)
	c.Assert(err, qt.IsNil)
	c.Assert(d, qt.IsNil)

	blank := "  "
	d, err = ParseOptionalDate(&blank)
	c.Assert(err, qt.IsNil)
	c.Assert(d, qt.IsNil)

	bad := "tomorrow"
	_, err = ParseOptionalDate(&bad)
	c.Assert(err, qt.IsNotNil)
}

func TestDurationDays(t *testing.T) {
	c := qt.New(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	c.Assert(DurationDays(start, start.AddDate(0, 0, 7)), qt.Equals, 7)
	c.Assert(DurationDays(start, start.Add(25*time.Hour)), qt.Equals, 2)
	c.Assert(DurationDays(start, start), qt.Equals, 0)
	c.Assert(DurationDays(start, start.Add(-time.Hour)), qt.Equals, 0)
}

func TestCalendarDays(t *testing.T) {
	c := qt.New(t)
	start := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)

	c.Assert(CalendarDays(start, start), qt.Equals, 1)
	c.Assert(CalendarDays(start, start.Add(3*time.Hour)), qt.Equals, 2)
	c.Assert(CalendarDays(start, start.AddDate(0, 0, 6)), qt.Equals, 7)
	c.Assert(CalendarDays(start, start.AddDate(0, 0, -1)), qt.Equals, 0)
}

func TestIsHHMM(t *testing.T) {
	c := qt.New(t)

	c.Assert(IsHHMM("09:30"), qt.IsTrue)
	c.Assert(IsHHMM("23:59"), qt.IsTrue)
	c.Assert(IsHHMM("24:00"), qt.IsFalse)
	c.Assert(IsHHMM("9.30"), qt.IsFalse)
}

func TestFormatDateZero(t *testing.T) {
	c := qt.New(t)

	c.Assert(FormatDate(time.Time{}), qt.Equals, "")
	c.Assert(FormatDate(time.Date(2025, 1, 2, 23, 0, 0, 0, time.UTC)), qt.Equals, "2025-01-02")
}
