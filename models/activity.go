package models

import "time"

// Activity event kinds.
const (
	ActivityAttendance = "attendance"
	ActivityDebt       = "debt"
	ActivityReward     = "reward"
)

// ActivityEvent is an append-only record of an accounting-relevant action.
// Messages carry snapshots taken at write time (running totals, week ordinal)
// and are never recomputed or mutated later.
type ActivityEvent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"index;not null" json:"participant_id"`
	Kind          string    `gorm:"size:16;index;not null" json:"kind"`
	Message       string    `gorm:"size:512;not null" json:"message"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`

	Participant *Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
}
