package models

import "time"

// AttendanceRecord stores one attendance per participant per calendar day.
// Day carries no time component; the engine normalizes it to UTC midnight
// before it ever reaches this table. Toggling the same day replaces the
// completed flag in place, it never appends a second row.
type AttendanceRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"index;index:idx_attendance_participant_day,unique;not null" json:"participant_id"`
	Day           time.Time `gorm:"index:idx_attendance_participant_day,unique;type:date;not null" json:"day"`
	Completed     bool      `gorm:"not null" json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Participant *Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
}
