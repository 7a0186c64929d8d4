package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitpact/fitpact/challenge"
	"github.com/fitpact/fitpact/models"
)

// ComputeMonthlyRewards ranks the roster by completed attendance within the
// calendar month and persists one RewardEntry per participant as a single
// atomic batch. Rank 1 receives +RewardWinner; everyone else pays a flat
// RewardLoser regardless of rank. Ties keep roster order; no secondary
// tie-break is applied. A second call for the same (month, year) fails with
// AlreadyCalculatedError and creates nothing.
func (e *Engine) ComputeMonthlyRewards(month, year int) ([]models.RewardEntry, error) {
	if month < 1 || month > 12 {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid month %d", month)}
	}
	if year < 1 {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid year %d", year)}
	}

	roster, err := e.Roster()
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, &ValidationError{Msg: "roster is empty"}
	}

	monthStart := challenge.Day(year, time.Month(month), 1)
	monthEnd := monthStart.AddDate(0, 1, -1)

	type standing struct {
		participant models.Participant
		count       int64
	}
	standings := make([]standing, 0, len(roster))
	for _, p := range roster {
		count, err := e.countCompleted(e.db, p.ID, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}
		standings = append(standings, standing{participant: p, count: count})
	}
	// Stable sort: tied participants retain roster order.
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].count > standings[j].count
	})

	batchID := uuid.NewString()
	entries := make([]models.RewardEntry, 0, len(standings))
	events := make([]models.ActivityEvent, 0, len(standings))

	err = e.db.Transaction(func(tx *gorm.DB) error {
		// Existence check inside the transaction; the unique index on
		// (month, year, participant) backstops concurrent calculations.
		var existing int64
		if err := tx.Model(&models.RewardEntry{}).
			Where("month = ? AND year = ?", month, year).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return &AlreadyCalculatedError{Month: month, Year: year}
		}

		for i, s := range standings {
			rank := i + 1
			amount := -e.rules.RewardLoser
			if rank == 1 {
				amount = e.rules.RewardWinner
			}

			entry := models.RewardEntry{
				BatchID:       batchID,
				ParticipantID: s.participant.ID,
				Month:         month,
				Year:          year,
				Amount:        amount,
				Rank:          rank,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			entries = append(entries, entry)

			var message string
			if rank == 1 {
				message = fmt.Sprintf("%s won %d/%d month! Earned +%d€ 🏆",
					s.participant.Name, month, year, e.rules.RewardWinner)
			} else {
				message = fmt.Sprintf("%s finished %s in %d/%d month, paid %d€",
					s.participant.Name, challenge.FormatOrdinal(rank), month, year, e.rules.RewardLoser)
			}
			event := models.ActivityEvent{
				ParticipantID: s.participant.ID,
				Kind:          models.ActivityReward,
				Message:       message,
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Msg: fmt.Sprintf("concurrent reward calculation for %d/%d", month, year)}
		}
		return nil, err
	}

	for _, event := range events {
		e.emit(event)
	}
	return entries, nil
}

// ListMonthlyRewards returns all reward entries, newest batch first, with
// participants preloaded.
func (e *Engine) ListMonthlyRewards() ([]models.RewardEntry, error) {
	var rewards []models.RewardEntry
	err := e.db.Preload("Participant").
		Order("year DESC").Order("month DESC").Order("position ASC").
		Find(&rewards).Error
	return rewards, err
}
