package engine_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fitpact/fitpact/challenge"
	"github.com/fitpact/fitpact/engine"
)

func TestStats_DebtAggregation(t *testing.T) {
	Convey("Given a two-week challenge that has fully elapsed", t, func() {
		now := challenge.Day(2025, time.November, 10)
		eng, db, roster := newTestEngine(t,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.November, 9),
			&now, "Alice", "Bora")
		alice, bora := roster[0], roster[1]

		markCompleted(t, db, alice.ID,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.October, 28),
			challenge.Day(2025, time.October, 29),
			challenge.Day(2025, time.November, 3),
			challenge.Day(2025, time.November, 4),
			challenge.Day(2025, time.November, 5))
		markCompleted(t, db, bora.ID,
			challenge.Day(2025, time.October, 27))

		Convey("A participant at the minimum every week owes nothing", func() {
			s, err := eng.StatsFor(alice.ID)
			So(err, ShouldBeNil)
			So(s.TotalCompleted, ShouldEqual, 6)
			So(s.TotalDebt, ShouldEqual, 0)
			So(s.Balance, ShouldEqual, 0)
		})

		Convey("Weeks the accrual never touched are computed live", func() {
			// No CheckWeeklyMinimum ran for Bora: week 1 shortfall is
			// (3-1)*15 and week 2 is (3-0)*15.
			s, err := eng.StatsFor(bora.ID)
			So(err, ShouldBeNil)
			So(s.TotalCompleted, ShouldEqual, 1)
			So(s.TotalDebt, ShouldEqual, 75)
			So(s.Balance, ShouldEqual, -75)
		})

		Convey("A frozen accrual entry overrides the live computation", func() {
			_, err := eng.CheckWeeklyMinimum(bora.ID, challenge.Day(2025, time.October, 28))
			So(err, ShouldBeNil)

			// Retroactive attendance would shrink the live amount, but the
			// frozen entry for week 1 stays authoritative.
			markCompleted(t, db, bora.ID, challenge.Day(2025, time.October, 29))

			s, err := eng.StatsFor(bora.ID)
			So(err, ShouldBeNil)
			So(s.TotalDebt, ShouldEqual, 75) // 30 frozen + 45 live
		})

		Convey("An unknown participant is rejected", func() {
			_, err := eng.StatsFor(9999)
			var notFound *engine.NotFoundError
			So(errors.As(err, &notFound), ShouldBeTrue)
		})
	})
}

func TestStats_InProgressWeeks(t *testing.T) {
	Convey("Given a two-week challenge still inside week 2", t, func() {
		now := challenge.Day(2025, time.November, 5)
		eng, db, roster := newTestEngine(t,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.November, 9),
			&now, "Bora")
		bora := roster[0]

		markCompleted(t, db, bora.ID, challenge.Day(2025, time.October, 27))

		Convey("The in-progress week contributes no debt", func() {
			s, err := eng.StatsFor(bora.ID)
			So(err, ShouldBeNil)
			So(s.TotalDebt, ShouldEqual, 30) // week 1 only
		})
	})
}

func TestStats_BalanceIncludesRewards(t *testing.T) {
	Convey("Given an elapsed month with a calculated reward batch", t, func() {
		now := challenge.Day(2025, time.December, 1)
		eng, db, roster := newTestEngine(t,
			challenge.Day(2025, time.November, 3),
			challenge.Day(2025, time.November, 30),
			&now, "Alice", "Bora")
		alice, bora := roster[0], roster[1]

		// Alice clears the minimum all four weeks, Bora never shows up.
		for week := 0; week < 4; week++ {
			base := 3 + week*7
			markCompleted(t, db, alice.ID,
				challenge.Day(2025, time.November, base),
				challenge.Day(2025, time.November, base+1),
				challenge.Day(2025, time.November, base+2))
		}
		_, err := eng.ComputeMonthlyRewards(11, 2025)
		So(err, ShouldBeNil)

		Convey("Balance is rewards minus debt", func() {
			s, err := eng.StatsFor(alice.ID)
			So(err, ShouldBeNil)
			So(s.TotalDebt, ShouldEqual, 0)
			So(s.TotalRewards, ShouldEqual, 40)
			So(s.Balance, ShouldEqual, 40)

			s, err = eng.StatsFor(bora.ID)
			So(err, ShouldBeNil)
			So(s.TotalDebt, ShouldEqual, 180) // 4 weeks * 3 missed * 15
			So(s.TotalRewards, ShouldEqual, -20)
			So(s.Balance, ShouldEqual, -200)
		})
	})
}

func TestLeaderboard(t *testing.T) {
	Convey("Given three participants with distinct and tied totals", t, func() {
		now := challenge.Day(2025, time.November, 10)
		eng, db, roster := newTestEngine(t,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.November, 9),
			&now, "Alice", "Bora", "Cem")
		alice, bora, cem := roster[0], roster[1], roster[2]

		markCompleted(t, db, alice.ID,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.October, 28))
		markCompleted(t, db, bora.ID,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.October, 28),
			challenge.Day(2025, time.October, 29),
			challenge.Day(2025, time.October, 30))
		markCompleted(t, db, cem.ID,
			challenge.Day(2025, time.November, 3),
			challenge.Day(2025, time.November, 4))

		Convey("Ordering is by completed total, ties in roster order", func() {
			board, err := eng.Leaderboard()
			So(err, ShouldBeNil)
			So(board, ShouldHaveLength, 3)
			So(board[0].Name, ShouldEqual, "Bora")
			// Alice and Cem are tied on 2; Alice is earlier in the roster.
			So(board[1].Name, ShouldEqual, "Alice")
			So(board[2].Name, ShouldEqual, "Cem")
		})

		Convey("Stats itself stays in roster order", func() {
			stats, err := eng.Stats()
			So(err, ShouldBeNil)
			So(stats[0].Name, ShouldEqual, "Alice")
			So(stats[1].Name, ShouldEqual, "Bora")
			So(stats[2].Name, ShouldEqual, "Cem")
		})
	})
}
