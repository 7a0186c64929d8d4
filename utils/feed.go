package utils

import (
	"context"
	"encoding/json"
	"time"
)

// ActivityChannel is the Redis channel the notification surface subscribes to.
const ActivityChannel = "fitpact:activity"

// PublishActivity pushes an activity event onto the Redis feed channel for
// external consumers (notification bots, live dashboards). Best-effort: the
// database row is the source of truth, a failed publish is only logged.
func PublishActivity(v interface{}) {
	rc := GetRedis()
	if rc == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rc.Publish(ctx, ActivityChannel, b).Err(); err != nil {
		if Sugar != nil {
			Sugar.Debugf("activity publish failed: %v", err)
		}
	}
}
