package models

import "time"

// ReasonWeeklyMinimum is the only debt reason the engine writes. Other reasons
// may appear through out-of-band correction tooling.
const ReasonWeeklyMinimum = "weekly_minimum_not_met"

// DebtEntry is a frozen accrual decision: one row per participant per week,
// created the first time a shortfall is detected for a fully elapsed week and
// never adjusted afterwards, even if attendance is edited retroactively.
// AnchorDate is the week's last (clipped) day.
type DebtEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"index;index:idx_debt_participant_week_reason,unique;not null" json:"participant_id"`
	WeekNumber    int       `gorm:"index:idx_debt_participant_week_reason,unique;not null" json:"week_number"`
	Reason        string    `gorm:"size:64;index:idx_debt_participant_week_reason,unique;not null" json:"reason"`
	Amount        int       `gorm:"not null" json:"amount"`
	AnchorDate    time.Time `gorm:"type:date;not null" json:"anchor_date"`
	CreatedAt     time.Time `json:"created_at"`

	Participant *Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
}
