package engine_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fitpact/fitpact/challenge"
	"github.com/fitpact/fitpact/models"
)

func TestActivityFeed(t *testing.T) {
	Convey("Given a stream of recorded workouts", t, func() {
		now := challenge.Day(2025, time.October, 30)
		eng, db, roster := newTestEngine(t,
			challenge.Day(2025, time.October, 27),
			challenge.Day(2025, time.November, 2),
			&now, "Alice")
		alice := roster[0]

		for day := 27; day <= 31; day++ {
			_, err := eng.RecordAttendance(alice.ID, challenge.Day(2025, time.October, day), true)
			So(err, ShouldBeNil)
		}

		Convey("The feed returns newest events first", func() {
			events, err := eng.ActivityFeed(0)
			So(err, ShouldBeNil)
			So(events, ShouldHaveLength, 5)
			So(events[0].Message, ShouldContainSubstring, "5th workout")
			So(events[4].Message, ShouldContainSubstring, "1st workout")
			So(events[0].Participant.Name, ShouldEqual, "Alice")
		})

		Convey("The limit truncates the feed", func() {
			events, err := eng.ActivityFeed(2)
			So(err, ShouldBeNil)
			So(events, ShouldHaveLength, 2)
		})

		Convey("Every event in the stream is an attendance event", func() {
			var count int64
			db.Model(&models.ActivityEvent{}).
				Where("kind = ?", models.ActivityAttendance).
				Count(&count)
			So(count, ShouldEqual, 5)
		})
	})
}
