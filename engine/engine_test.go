package engine_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/fitpact/fitpact/challenge"
	"github.com/fitpact/fitpact/config"
	"github.com/fitpact/fitpact/engine"
	"github.com/fitpact/fitpact/models"
)

var testRules = engine.Rules{
	WeeklyMinimum:    3,
	DebtPerMissedDay: 15,
	RewardWinner:     40,
	RewardLoser:      20,
}

// newTestEngine spins up an in-memory sqlite database, seeds the given
// participants in roster order, and returns an engine whose clock reads from
// *now so tests can move time across week boundaries.
func newTestEngine(t *testing.T, start, end time.Time, now *time.Time, names ...string) (*engine.Engine, *gorm.DB, []models.Participant) {
	t.Helper()

	db, err := config.OpenDatabase(sqlite.Open(":memory:"), "silent",
		&models.Participant{},
		&models.AttendanceRecord{},
		&models.DebtEntry{},
		&models.RewardEntry{},
		&models.ActivityEvent{},
	)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// Every pooled connection would get its own :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	participants := make([]models.Participant, 0, len(names))
	for _, name := range names {
		p := models.Participant{
			Name:  name,
			Email: fmt.Sprintf("%s@example.com", strings.ToLower(name)),
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed participant %s: %v", name, err)
		}
		participants = append(participants, p)
	}

	eng := engine.New(db, challenge.MustCalendar(start, end), testRules,
		engine.WithClock(func() time.Time { return *now }))
	return eng, db, participants
}

// markCompleted inserts a completed attendance row directly, bypassing the
// ledger, for read-side tests that need fixed data.
func markCompleted(t *testing.T, db *gorm.DB, participantID uint, days ...time.Time) {
	t.Helper()
	for _, day := range days {
		record := models.AttendanceRecord{
			ParticipantID: participantID,
			Day:           challenge.DayOf(day),
			Completed:     true,
		}
		if err := db.Create(&record).Error; err != nil {
			t.Fatalf("insert attendance: %v", err)
		}
	}
}
