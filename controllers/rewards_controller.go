package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitpact/fitpact/engine"
	"github.com/fitpact/fitpact/utils"
)

// RewardsController exposes the monthly reward engine.
type RewardsController struct {
	eng *engine.Engine
}

// NewRewardsController creates a new controller instance.
func NewRewardsController(eng *engine.Engine) *RewardsController {
	return &RewardsController{eng: eng}
}

// Compute calculates the reward batch for a given month and year. Exactly
// once per (month, year); a repeat request is rejected without side effects.
func (r *RewardsController) Compute(ctx *gin.Context) {
	if _, ok := getParticipantID(ctx); !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Month int `json:"month" binding:"required"`
		Year  int `json:"year" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "month and year are required")
		return
	}

	rewards, err := r.eng.ComputeMonthlyRewards(req.Month, req.Year)
	if err != nil {
		respondEngineError(ctx, err, 50040, "failed to calculate monthly rewards")
		return
	}

	utils.InvalidateByPrefix("cache:stats")
	utils.Success(ctx, gin.H{"rewards": rewards})
}

// List returns the full reward history, newest batch first.
func (r *RewardsController) List(ctx *gin.Context) {
	rewards, err := r.eng.ListMonthlyRewards()
	if err != nil {
		respondEngineError(ctx, err, 50041, "failed to list monthly rewards")
		return
	}
	utils.Success(ctx, gin.H{"rewards": rewards})
}
