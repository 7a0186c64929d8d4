package engine

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitpact/fitpact/challenge"
	"github.com/fitpact/fitpact/models"
)

// RecordAttendance upserts the attendance record for (participant, day) and
// appends one activity event with snapshot counts. Toggling the same day
// replaces the completed flag in place. After the write the weekly debt check
// runs for the day's week.
func (e *Engine) RecordAttendance(participantID uint, day time.Time, completed bool) (models.AttendanceRecord, error) {
	day = challenge.DayOf(day)
	if !e.cal.Contains(day) {
		return models.AttendanceRecord{}, &ValidationError{Msg: fmt.Sprintf(
			"date is not within valid range. Valid range: %s - %s",
			e.cal.Start().Format("2006-01-02"), e.cal.End().Format("2006-01-02"),
		)}
	}

	var record models.AttendanceRecord
	var event models.ActivityEvent

	err := e.db.Transaction(func(tx *gorm.DB) error {
		participant, err := e.participant(tx, participantID)
		if err != nil {
			return err
		}

		// Idempotent upsert keyed (participant_id, day); the unique index
		// serializes concurrent writers for the same day.
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "participant_id"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"completed": completed, "updated_at": time.Now()}),
		}).Create(&models.AttendanceRecord{
			ParticipantID: participantID,
			Day:           day,
			Completed:     completed,
		}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("participant_id = ? AND day = ?", participantID, day).First(&record).Error; err != nil {
			return err
		}

		// Activity messages snapshot the running totals at write time; they
		// are never recomputed later.
		var message string
		if completed {
			week := e.cal.WeekNumber(day)
			total, err := e.countCompleted(tx, participantID, e.cal.Start(), e.cal.End())
			if err != nil {
				return err
			}
			first, last, _ := e.cal.WeekBounds(week)
			weekly, err := e.countCompleted(tx, participantID, first, last)
			if err != nil {
				return err
			}
			message = fmt.Sprintf("%s went to their %s workout. This is their %s workout in week %d.",
				participant.Name, challenge.FormatOrdinal(int(total)), challenge.FormatOrdinal(int(weekly)), week)
		} else {
			message = fmt.Sprintf("%s canceled workout", participant.Name)
		}

		event = models.ActivityEvent{
			ParticipantID: participantID,
			Kind:          models.ActivityAttendance,
			Message:       message,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	e.emit(event)

	if _, err := e.CheckWeeklyMinimum(participantID, day); err != nil {
		return models.AttendanceRecord{}, err
	}

	return record, nil
}

// QueryRange returns one participant's attendance records within [from, to]
// inclusive, newest first. Read-only.
func (e *Engine) QueryRange(participantID uint, from, to time.Time) ([]models.AttendanceRecord, error) {
	from, to = challenge.DayOf(from), challenge.DayOf(to)
	if to.Before(from) {
		return nil, &ValidationError{Msg: "range end precedes range start"}
	}
	if _, err := e.participant(e.db, participantID); err != nil {
		return nil, err
	}
	var records []models.AttendanceRecord
	err := e.db.Where("participant_id = ? AND day BETWEEN ? AND ?", participantID, from, to).
		Order("day DESC").
		Find(&records).Error
	return records, err
}

// ListAttendance returns every participant's attendance within [from, to]
// inclusive, newest first, with the participant preloaded.
func (e *Engine) ListAttendance(from, to time.Time) ([]models.AttendanceRecord, error) {
	from, to = challenge.DayOf(from), challenge.DayOf(to)
	if to.Before(from) {
		return nil, &ValidationError{Msg: "range end precedes range start"}
	}
	var records []models.AttendanceRecord
	err := e.db.Preload("Participant").
		Where("day BETWEEN ? AND ?", from, to).
		Order("day DESC").
		Find(&records).Error
	return records, err
}

func (e *Engine) countCompleted(db *gorm.DB, participantID uint, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.AttendanceRecord{}).
		Where("participant_id = ? AND completed = ? AND day BETWEEN ? AND ?", participantID, true, from, to).
		Count(&count).Error
	return count, err
}
