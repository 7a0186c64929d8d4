package engine

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fitpact/fitpact/models"
)

// CheckWeeklyMinimum runs the debt accrual rule for the week containing day.
// It is a no-op while the week is still in progress, and strictly
// once-per-(participant, week) afterwards: the first detected shortfall is
// frozen, re-running after later attendance edits never creates a second
// entry or adjusts the amount.
func (e *Engine) CheckWeeklyMinimum(participantID uint, day time.Time) (*models.DebtEntry, error) {
	week := e.cal.WeekNumber(day)
	if !e.cal.WeekElapsed(week, e.now()) {
		return nil, nil
	}
	first, last, ok := e.cal.WeekBounds(week)
	if !ok {
		return nil, nil
	}

	count, err := e.countCompleted(e.db, participantID, first, last)
	if err != nil {
		return nil, err
	}
	if int(count) >= e.rules.WeeklyMinimum {
		return nil, nil
	}

	missed := e.rules.WeeklyMinimum - int(count)
	amount := missed * e.rules.DebtPerMissedDay

	var entry models.DebtEntry
	var event models.ActivityEvent
	created := false

	err = e.db.Transaction(func(tx *gorm.DB) error {
		participant, err := e.participant(tx, participantID)
		if err != nil {
			return err
		}

		var existing models.DebtEntry
		err = tx.Where("participant_id = ? AND week_number = ? AND reason = ?",
			participantID, week, models.ReasonWeeklyMinimum).First(&existing).Error
		if err == nil {
			return nil // accrual already frozen for this week
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		entry = models.DebtEntry{
			ParticipantID: participantID,
			WeekNumber:    week,
			Reason:        models.ReasonWeeklyMinimum,
			Amount:        amount,
			AnchorDate:    last,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		created = true

		event = models.ActivityEvent{
			ParticipantID: participantID,
			Kind:          models.ActivityDebt,
			Message: fmt.Sprintf("%s missed weekly minimum (%d/%d), %d€ debt added ⚠️",
				participant.Name, count, e.rules.WeeklyMinimum, amount),
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		// A concurrent check won the race; the unique index turned this
		// writer into a no-op.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, err
	}
	if !created {
		return nil, nil
	}
	e.emit(event)
	return &entry, nil
}

// DebtEntries returns all accrued debt for a participant, oldest week first.
func (e *Engine) DebtEntries(participantID uint) ([]models.DebtEntry, error) {
	var entries []models.DebtEntry
	err := e.db.Where("participant_id = ?", participantID).
		Order("week_number ASC").
		Find(&entries).Error
	return entries, err
}
