package engine

import (
	"sort"

	"github.com/fitpact/fitpact/models"
)

// ParticipantStats is one participant's aggregated position: completed
// attendance over the full window, accumulated debt, reward total and the
// resulting balance (rewards minus debt).
type ParticipantStats struct {
	ParticipantID  uint   `json:"participant_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TotalCompleted int    `json:"total_completed"`
	TotalDebt      int    `json:"total_debt"`
	TotalRewards   int    `json:"total_rewards"`
	Balance        int    `json:"balance"`
}

// Stats aggregates every roster participant, in roster order. Read-only and
// safe to call arbitrarily often; nothing is persisted.
func (e *Engine) Stats() ([]ParticipantStats, error) {
	roster, err := e.Roster()
	if err != nil {
		return nil, err
	}
	stats := make([]ParticipantStats, 0, len(roster))
	for _, p := range roster {
		s, err := e.statsFor(p)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// StatsFor aggregates a single participant.
func (e *Engine) StatsFor(participantID uint) (ParticipantStats, error) {
	p, err := e.participant(e.db, participantID)
	if err != nil {
		return ParticipantStats{}, err
	}
	return e.statsFor(p)
}

// Leaderboard sorts the aggregated stats descending by completed attendance
// over the full challenge window. Ties retain roster order.
func (e *Engine) Leaderboard() ([]ParticipantStats, error) {
	stats, err := e.Stats()
	if err != nil {
		return nil, err
	}
	board := make([]ParticipantStats, len(stats))
	copy(board, stats)
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TotalCompleted > board[j].TotalCompleted
	})
	return board, nil
}

func (e *Engine) statsFor(p models.Participant) (ParticipantStats, error) {
	total, err := e.countCompleted(e.db, p.ID, e.cal.Start(), e.cal.End())
	if err != nil {
		return ParticipantStats{}, err
	}

	totalDebt, err := e.totalDebt(p.ID)
	if err != nil {
		return ParticipantStats{}, err
	}

	var totalRewards int
	rows := []models.RewardEntry{}
	if err := e.db.Where("participant_id = ?", p.ID).Find(&rows).Error; err != nil {
		return ParticipantStats{}, err
	}
	for _, r := range rows {
		totalRewards += r.Amount
	}

	return ParticipantStats{
		ParticipantID:  p.ID,
		Name:           p.Name,
		Email:          p.Email,
		TotalCompleted: int(total),
		TotalDebt:      totalDebt,
		TotalRewards:   totalRewards,
		Balance:        totalRewards - totalDebt,
	}, nil
}

// totalDebt walks every fully elapsed week. Where an accrual entry exists its
// frozen amount is authoritative; where the accrual engine has not run yet
// (no attendance write ever touched the week) the shortfall is computed live
// so balances stay consistent. Weeks in progress contribute zero.
func (e *Engine) totalDebt(participantID uint) (int, error) {
	entries, err := e.DebtEntries(participantID)
	if err != nil {
		return 0, err
	}
	frozen := make(map[int]int, len(entries))
	for _, entry := range entries {
		frozen[entry.WeekNumber] = entry.Amount
	}

	// One range scan instead of a query per week; the cohort is small.
	var records []models.AttendanceRecord
	if err := e.db.Where("participant_id = ? AND completed = ? AND day BETWEEN ? AND ?",
		participantID, true, e.cal.Start(), e.cal.End()).Find(&records).Error; err != nil {
		return 0, err
	}
	completedByWeek := make(map[int]int)
	for _, r := range records {
		completedByWeek[e.cal.WeekNumber(r.Day)]++
	}

	now := e.now()
	total := 0
	for week := 1; week <= e.cal.TotalWeeks(); week++ {
		if !e.cal.WeekElapsed(week, now) {
			break
		}
		if amount, ok := frozen[week]; ok {
			total += amount
			continue
		}
		if missed := e.rules.WeeklyMinimum - completedByWeek[week]; missed > 0 {
			total += missed * e.rules.DebtPerMissedDay
		}
	}
	return total, nil
}
