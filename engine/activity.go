package engine

import "github.com/fitpact/fitpact/models"

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 200
)

// ActivityFeed returns the newest activity events, participant preloaded.
// limit <= 0 falls back to the default; anything above the cap is clamped.
func (e *Engine) ActivityFeed(limit int) ([]models.ActivityEvent, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	var events []models.ActivityEvent
	err := e.db.Preload("Participant").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
