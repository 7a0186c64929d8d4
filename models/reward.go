package models

import "time"

// RewardEntry is one participant's share of a monthly reward batch. Amount is
// signed: positive for the rank-1 winner, negative for everyone else. A batch
// either fully exists for a (month, year) or not at all; BatchID groups the
// rows written in one transaction.
type RewardEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BatchID       string    `gorm:"size:36;index;not null" json:"batch_id"`
	ParticipantID uint      `gorm:"index;index:idx_reward_month_year_participant,unique;not null" json:"participant_id"`
	Month         int       `gorm:"index:idx_reward_month_year_participant,unique;not null" json:"month"`
	Year          int       `gorm:"index:idx_reward_month_year_participant,unique;not null" json:"year"`
	Amount        int       `gorm:"not null" json:"amount"`
	Rank          int       `gorm:"column:position;not null" json:"rank"` // "rank" is reserved in MySQL 8
	CreatedAt     time.Time `json:"created_at"`

	Participant *Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
}
