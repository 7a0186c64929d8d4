package challenge_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fitpact/fitpact/challenge"
)

func TestCalendar_WeekNumber(t *testing.T) {
	Convey("Given the full challenge window", t, func() {
		cal := challenge.MustCalendar(
			challenge.Day(2025, time.October, 27),
			challenge.Day(2026, time.September, 1),
		)

		Convey("The start day is in week 1", func() {
			So(cal.WeekNumber(challenge.Day(2025, time.October, 27)), ShouldEqual, 1)
		})

		Convey("The seventh day is still week 1", func() {
			So(cal.WeekNumber(challenge.Day(2025, time.November, 2)), ShouldEqual, 1)
		})

		Convey("The eighth day starts week 2", func() {
			So(cal.WeekNumber(challenge.Day(2025, time.November, 3)), ShouldEqual, 2)
		})

		Convey("Time-of-day never shifts the week", func() {
			late := time.Date(2025, time.November, 2, 23, 59, 59, 0, time.UTC)
			So(cal.WeekNumber(late), ShouldEqual, 1)
		})

		Convey("Days before the window land in week 0 or lower", func() {
			So(cal.WeekNumber(challenge.Day(2025, time.October, 26)), ShouldEqual, 0)
			So(cal.WeekNumber(challenge.Day(2025, time.October, 20)), ShouldEqual, 0)
			So(cal.WeekNumber(challenge.Day(2025, time.October, 19)), ShouldEqual, -1)
		})
	})
}

func TestCalendar_DaysInWeek(t *testing.T) {
	Convey("Given a ten-day window", t, func() {
		cal := challenge.MustCalendar(
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.November, 5),
		)

		Convey("Week 1 has a full seven days", func() {
			days := cal.DaysInWeek(1)
			So(days, ShouldHaveLength, 7)
			So(days[0], ShouldResemble, challenge.Day(2025, time.October, 27))
			So(days[6], ShouldResemble, challenge.Day(2025, time.November, 2))
		})

		Convey("Week 2 is clipped to the window end", func() {
			days := cal.DaysInWeek(2)
			So(days, ShouldHaveLength, 3)
			So(days[0], ShouldResemble, challenge.Day(2025, time.November, 3))
			So(days[2], ShouldResemble, challenge.Day(2025, time.November, 5))
		})

		Convey("A week beyond the window has no days", func() {
			So(cal.DaysInWeek(3), ShouldBeNil)
		})

		Convey("WeekBounds reports the clipped range", func() {
			first, last, ok := cal.WeekBounds(2)
			So(ok, ShouldBeTrue)
			So(first, ShouldResemble, challenge.Day(2025, time.November, 3))
			So(last, ShouldResemble, challenge.Day(2025, time.November, 5))

			_, _, ok = cal.WeekBounds(9)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCalendar_DayOrdinalAndTotals(t *testing.T) {
	Convey("Given the full challenge window", t, func() {
		cal := challenge.MustCalendar(
			challenge.Day(2025, time.October, 27),
			challenge.Day(2026, time.September, 1),
		)

		Convey("Day ordinals are 1-based from the start", func() {
			So(cal.DayOrdinal(challenge.Day(2025, time.October, 27)), ShouldEqual, 1)
			So(cal.DayOrdinal(challenge.Day(2025, time.October, 28)), ShouldEqual, 2)
			So(cal.DayOrdinal(challenge.Day(2025, time.November, 3)), ShouldEqual, 8)
		})

		Convey("TotalWeeks is the ceiling of the day span over seven", func() {
			So(cal.TotalWeeks(), ShouldEqual, 45)
		})
	})

	Convey("Given a one-week window", t, func() {
		cal := challenge.MustCalendar(
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.November, 2),
		)
		So(cal.TotalWeeks(), ShouldEqual, 1)
	})
}

func TestCalendar_Contains(t *testing.T) {
	Convey("Given a one-week window", t, func() {
		cal := challenge.MustCalendar(
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.November, 2),
		)

		Convey("Both bounds are inclusive", func() {
			So(cal.Contains(challenge.Day(2025, time.October, 27)), ShouldBeTrue)
			So(cal.Contains(challenge.Day(2025, time.November, 2)), ShouldBeTrue)
		})

		Convey("Days outside are rejected", func() {
			So(cal.Contains(challenge.Day(2025, time.October, 26)), ShouldBeFalse)
			So(cal.Contains(challenge.Day(2025, time.November, 3)), ShouldBeFalse)
		})

		Convey("A timestamp late in an in-range day still counts", func() {
			So(cal.Contains(time.Date(2025, time.November, 2, 23, 0, 0, 0, time.UTC)), ShouldBeTrue)
		})
	})
}

func TestCalendar_WeekElapsed(t *testing.T) {
	Convey("Given a one-week window ending Nov 2", t, func() {
		cal := challenge.MustCalendar(
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.November, 2),
		)

		Convey("The week is not elapsed during its last day", func() {
			So(cal.WeekElapsed(1, time.Date(2025, time.November, 2, 23, 59, 0, 0, time.UTC)), ShouldBeFalse)
		})

		Convey("The week is elapsed from the following midnight", func() {
			So(cal.WeekElapsed(1, challenge.Day(2025, time.November, 3)), ShouldBeTrue)
		})

		Convey("A week with no days in the window never elapses", func() {
			So(cal.WeekElapsed(5, challenge.Day(2026, time.June, 1)), ShouldBeFalse)
		})
	})
}

func TestFormatOrdinal(t *testing.T) {
	Convey("Ordinal suffixes follow English rules", t, func() {
		cases := map[int]string{
			1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
			11: "11th", 12: "12th", 13: "13th",
			21: "21st", 22: "22nd", 23: "23rd",
			101: "101st", 111: "111th",
		}
		for n, want := range cases {
			So(challenge.FormatOrdinal(n), ShouldEqual, want)
		}
	})
}

func TestNewCalendar_Validation(t *testing.T) {
	Convey("An inverted window is rejected", t, func() {
		_, err := challenge.NewCalendar(
			challenge.Day(2025, time.November, 2),
			challenge.Day(2025, time.October, 27),
		)
		So(err, ShouldNotBeNil)
	})
}
