package engine_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fitpact/fitpact/challenge"
	"github.com/fitpact/fitpact/engine"
	"github.com/fitpact/fitpact/models"
)

func TestComputeMonthlyRewards(t *testing.T) {
	Convey("Given three participants with November counts 10, 7 and 7", t, func() {
		now := challenge.Day(2025, time.December, 1)
		eng, db, roster := newTestEngine(t,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2026, time.September, 1),
			&now, "Alice", "Bora", "Cem")
		alice, bora, cem := roster[0], roster[1], roster[2]

		novDays := func(days ...int) []time.Time {
			out := make([]time.Time, 0, len(days))
			for _, d := range days {
				out = append(out, challenge.Day(2025, time.November, d))
			}
			return out
		}
		markCompleted(t, db, alice.ID, novDays(1, 3, 5, 7, 9, 11, 13, 15, 17, 19)...)
		markCompleted(t, db, bora.ID, novDays(2, 4, 6, 8, 10, 12, 14)...)
		markCompleted(t, db, cem.ID, novDays(1, 4, 7, 10, 13, 16, 19)...)

		Convey("The batch ranks by count with roster-order ties", func() {
			entries, err := eng.ComputeMonthlyRewards(11, 2025)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 3)

			So(entries[0].ParticipantID, ShouldEqual, alice.ID)
			So(entries[0].Rank, ShouldEqual, 1)
			So(entries[0].Amount, ShouldEqual, 40)

			// Bora and Cem are tied on 7; roster order decides.
			So(entries[1].ParticipantID, ShouldEqual, bora.ID)
			So(entries[1].Rank, ShouldEqual, 2)
			So(entries[1].Amount, ShouldEqual, -20)

			So(entries[2].ParticipantID, ShouldEqual, cem.ID)
			So(entries[2].Rank, ShouldEqual, 3)
			So(entries[2].Amount, ShouldEqual, -20)

			Convey("The batch nets to zero euros", func() {
				sum := 0
				for _, e := range entries {
					sum += e.Amount
				}
				So(sum, ShouldEqual, 0)
			})

			Convey("Every entry carries the same batch ID", func() {
				So(entries[0].BatchID, ShouldNotBeEmpty)
				So(entries[1].BatchID, ShouldEqual, entries[0].BatchID)
				So(entries[2].BatchID, ShouldEqual, entries[0].BatchID)
			})

			Convey("Winner and loser activity events are written", func() {
				var events []models.ActivityEvent
				db.Where("kind = ?", models.ActivityReward).Order("id ASC").Find(&events)
				So(events, ShouldHaveLength, 3)
				So(events[0].Message, ShouldEqual, "Alice won 11/2025 month! Earned +40€ 🏆")
				So(events[1].Message, ShouldEqual, "Bora finished 2nd in 11/2025 month, paid 20€")
				So(events[2].Message, ShouldEqual, "Cem finished 3rd in 11/2025 month, paid 20€")
			})
		})

		Convey("A second calculation for the same month is rejected", func() {
			_, err := eng.ComputeMonthlyRewards(11, 2025)
			So(err, ShouldBeNil)

			_, err = eng.ComputeMonthlyRewards(11, 2025)
			var already *engine.AlreadyCalculatedError
			So(errors.As(err, &already), ShouldBeTrue)
			So(already.Month, ShouldEqual, 11)
			So(already.Year, ShouldEqual, 2025)

			var count int64
			db.Model(&models.RewardEntry{}).Count(&count)
			So(count, ShouldEqual, 3)
		})

		Convey("A different month calculates independently", func() {
			_, err := eng.ComputeMonthlyRewards(11, 2025)
			So(err, ShouldBeNil)
			entries, err := eng.ComputeMonthlyRewards(12, 2025)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 3)
		})

		Convey("Out-of-range months are rejected", func() {
			var validation *engine.ValidationError

			_, err := eng.ComputeMonthlyRewards(13, 2025)
			So(errors.As(err, &validation), ShouldBeTrue)

			_, err = eng.ComputeMonthlyRewards(0, 2025)
			So(errors.As(err, &validation), ShouldBeTrue)

			_, err = eng.ComputeMonthlyRewards(11, 0)
			So(errors.As(err, &validation), ShouldBeTrue)
		})
	})
}

func TestListMonthlyRewards(t *testing.T) {
	Convey("Given two calculated months", t, func() {
		now := challenge.Day(2026, time.January, 1)
		eng, db, roster := newTestEngine(t,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2026, time.September, 1),
			&now, "Alice", "Bora")
		alice := roster[0]

		markCompleted(t, db, alice.ID,
			challenge.Day(2025, time.November, 3),
			challenge.Day(2025, time.December, 3))

		_, err := eng.ComputeMonthlyRewards(11, 2025)
		So(err, ShouldBeNil)
		_, err = eng.ComputeMonthlyRewards(12, 2025)
		So(err, ShouldBeNil)

		Convey("Listing returns the newest batch first, ranks ascending", func() {
			rewards, err := eng.ListMonthlyRewards()
			So(err, ShouldBeNil)
			So(rewards, ShouldHaveLength, 4)
			So(rewards[0].Month, ShouldEqual, 12)
			So(rewards[0].Rank, ShouldEqual, 1)
			So(rewards[1].Month, ShouldEqual, 12)
			So(rewards[1].Rank, ShouldEqual, 2)
			So(rewards[2].Month, ShouldEqual, 11)
			So(rewards[0].Participant.Name, ShouldNotBeEmpty)
		})
	})
}
