package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fitpact/fitpact/config"
	"github.com/fitpact/fitpact/utils"
)

// EnsureRoster seeds the participant cohort from configuration. Existing
// participants (matched by email) are left untouched so re-deploys never
// reset credentials or reorder the roster.
func EnsureRoster(db *gorm.DB, roster []config.RosterEntry) error {
	for _, entry := range roster {
		if entry.Email == "" || entry.Name == "" {
			return fmt.Errorf("roster entry missing name or email: %+v", entry.Name)
		}

		var existing Participant
		err := db.Where("email = ?", entry.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := utils.HashPassword(entry.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", entry.Email, err)
		}
		participant := Participant{
			Name:         entry.Name,
			Email:        entry.Email,
			PasswordHash: hash,
		}
		if err := db.Create(&participant).Error; err != nil {
			return fmt.Errorf("seed participant %s: %w", entry.Email, err)
		}
		if utils.Sugar != nil {
			utils.Sugar.Infof("seeded participant %s (%s)", participant.Name, participant.Email)
		}
	}
	return nil
}
