package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fitpact/fitpact/engine"
	"github.com/fitpact/fitpact/utils"
)

// ActivityController serves the activity feed.
type ActivityController struct {
	eng *engine.Engine
}

// NewActivityController creates a new controller instance.
func NewActivityController(eng *engine.Engine) *ActivityController {
	return &ActivityController{eng: eng}
}

// Feed returns the newest activity events, optionally limited via ?limit=.
func (a *ActivityController) Feed(ctx *gin.Context) {
	limit := 0
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := a.eng.ActivityFeed(limit)
	if err != nil {
		respondEngineError(ctx, err, 50060, "failed to list activities")
		return
	}
	utils.Success(ctx, gin.H{"activities": events})
}
