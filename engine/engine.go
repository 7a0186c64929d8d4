// Package engine implements the attendance accounting core: the attendance
// ledger, weekly debt accrual, monthly reward batches, the stats aggregator
// and the activity log. Every operation is a short synchronous unit of work;
// nothing here polls or schedules.
package engine

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fitpact/fitpact/challenge"
	"github.com/fitpact/fitpact/config"
	"github.com/fitpact/fitpact/models"
)

// Rules are the monetary parameters of the challenge.
type Rules struct {
	WeeklyMinimum    int // completed attendances required per week
	DebtPerMissedDay int // euros per missed day below the minimum
	RewardWinner     int // euros to the monthly rank-1 participant
	RewardLoser      int // euros from every other participant
}

// Engine executes accounting decisions against the durable stores. It is safe
// for concurrent use; uniqueness invariants are enforced by composite unique
// indexes at the storage boundary, so a losing concurrent writer degrades to
// a no-op instead of a duplicate.
type Engine struct {
	db      *gorm.DB
	cal     challenge.Calendar
	rules   Rules
	now     func() time.Time
	publish func(models.ActivityEvent)
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the time source. Week-elapsed decisions depend on it.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithActivityPublisher registers a sink invoked after an activity event is
// durably committed, e.g. the Redis feed channel.
func WithActivityPublisher(fn func(models.ActivityEvent)) Option {
	return func(e *Engine) { e.publish = fn }
}

// New builds an Engine over the given database and calendar.
func New(db *gorm.DB, cal challenge.Calendar, rules Rules, opts ...Option) *Engine {
	e := &Engine{
		db:    db,
		cal:   cal,
		rules: rules,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromConfig wires an Engine from application configuration.
func NewFromConfig(db *gorm.DB, cfg config.AppConfig, opts ...Option) *Engine {
	start, _ := time.Parse("2006-01-02", cfg.ChallengeStart)
	end, _ := time.Parse("2006-01-02", cfg.ChallengeEnd)
	rules := Rules{
		WeeklyMinimum:    cfg.WeeklyMinimum,
		DebtPerMissedDay: cfg.DebtPerMissedDay,
		RewardWinner:     cfg.RewardWinner,
		RewardLoser:      cfg.RewardLoser,
	}
	return New(db, challenge.MustCalendar(start, end), rules, opts...)
}

// Calendar exposes the engine's calendar partitioner.
func (e *Engine) Calendar() challenge.Calendar { return e.cal }

// Roster returns all participants in roster order (ascending ID), which is
// the tie-break order for every ranking.
func (e *Engine) Roster() ([]models.Participant, error) {
	var participants []models.Participant
	if err := e.db.Order("id ASC").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (e *Engine) participant(db *gorm.DB, id uint) (models.Participant, error) {
	var p models.Participant
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return p, &NotFoundError{Resource: "participant", ID: id}
		}
		return p, err
	}
	return p, nil
}

func (e *Engine) emit(event models.ActivityEvent) {
	if e.publish != nil {
		e.publish(event)
	}
}
