package models

import (
	"time"

	"gorm.io/gorm"
)

// Participant is one member of the fixed challenge cohort. Passwords are
// stored as bcrypt hashes only. The roster is seeded at boot and immutable
// for the accounting engine; roster order (ascending ID) is the tie-break
// order everywhere ranking happens.
type Participant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}
