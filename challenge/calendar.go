// Package challenge holds the pure calendar arithmetic of the fitness
// challenge: week numbering, day ordinals and week-boundary clipping over a
// fixed [start, end] window. Nothing here touches storage or the clock.
package challenge

import (
	"fmt"
	"time"
)

// Calendar partitions the challenge window into 1-based weeks of up to seven
// days. All arithmetic runs on UTC-midnight days; callers must normalize with
// Day or DayOf before comparing, because every accrual decision depends
// on exact week-boundary inclusion.
type Calendar struct {
	start time.Time
	end   time.Time
}

// NewCalendar builds a Calendar over [start, end]. Both bounds are normalized
// to UTC midnight and the window is inclusive on both sides.
func NewCalendar(start, end time.Time) (Calendar, error) {
	s := Day(start.Year(), start.Month(), start.Day())
	e := Day(end.Year(), end.Month(), end.Day())
	if e.Before(s) {
		return Calendar{}, fmt.Errorf("challenge end %s precedes start %s", e.Format("2006-01-02"), s.Format("2006-01-02"))
	}
	return Calendar{start: s, end: e}, nil
}

// MustCalendar is NewCalendar for wiring code where the dates were already
// validated by configuration loading.
func MustCalendar(start, end time.Time) Calendar {
	c, err := NewCalendar(start, end)
	if err != nil {
		panic(err)
	}
	return c
}

// Day builds a UTC-midnight date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayOf strips the time component from t, keeping its calendar date in UTC.
func DayOf(t time.Time) time.Time {
	return Day(t.Year(), t.Month(), t.Day())
}

// Start returns the first day of the challenge window.
func (c Calendar) Start() time.Time { return c.start }

// End returns the last day of the challenge window.
func (c Calendar) End() time.Time { return c.end }

// Contains reports whether day lies within [start, end] inclusive.
func (c Calendar) Contains(day time.Time) bool {
	d := DayOf(day)
	return !d.Before(c.start) && !d.After(c.end)
}

// WeekNumber maps a date to its 1-based week within the window:
// floor(days since start / 7) + 1. It is defined for any date; callers
// enforce range validity separately where it matters.
func (c Calendar) WeekNumber(day time.Time) int {
	days := int(DayOf(day).Sub(c.start).Hours() / 24)
	if days < 0 {
		// Integer division truncates toward zero; mirror floor semantics
		// so days -1..-7 land in week 0, not week 1.
		return (days+1)/7 - 1 + 1
	}
	return days/7 + 1
}

// DaysInWeek returns the calendar days of the given week in order, clipped to
// the challenge window. The first and last week of the program may therefore
// contain fewer than seven days. Weeks outside the window yield nil.
func (c Calendar) DaysInWeek(weekNumber int) []time.Time {
	weekStart := c.start.AddDate(0, 0, (weekNumber-1)*7)
	var days []time.Time
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		if !d.Before(c.start) && !d.After(c.end) {
			days = append(days, d)
		}
	}
	return days
}

// WeekBounds returns the first and last clipped day of a week, and false when
// the week has no days inside the window.
func (c Calendar) WeekBounds(weekNumber int) (time.Time, time.Time, bool) {
	days := c.DaysInWeek(weekNumber)
	if len(days) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return days[0], days[len(days)-1], true
}

// DayOrdinal is the 1-based offset of day from the window start.
func (c Calendar) DayOrdinal(day time.Time) int {
	return int(DayOf(day).Sub(c.start).Hours()/24) + 1
}

// TotalWeeks is ceil(window length in days / 7).
func (c Calendar) TotalWeeks() int {
	days := int(c.end.Sub(c.start).Hours() / 24)
	return (days + 6) / 7
}

// WeekElapsed reports whether the week's last clipped day has fully passed as
// of now. Debt only ever accrues for elapsed weeks.
func (c Calendar) WeekElapsed(weekNumber int, now time.Time) bool {
	_, last, ok := c.WeekBounds(weekNumber)
	if !ok {
		return false
	}
	// The week ends at the end of its last day; elapsed means now is at or
	// past the following midnight.
	return !now.Before(last.AddDate(0, 0, 1))
}

// OrdinalSuffix returns the English suffix for a positive number (1st, 2nd,
// 3rd, 4th, ... 11th, 12th, 13th, 21st, ...).
func OrdinalSuffix(n int) string {
	j, k := n%10, n%100
	switch {
	case j == 1 && k != 11:
		return "st"
	case j == 2 && k != 12:
		return "nd"
	case j == 3 && k != 13:
		return "rd"
	default:
		return "th"
	}
}

// FormatOrdinal renders n with its ordinal suffix, e.g. 3 -> "3rd".
func FormatOrdinal(n int) string {
	return fmt.Sprintf("%d%s", n, OrdinalSuffix(n))
}
