package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpact/fitpact/engine"
	"github.com/fitpact/fitpact/utils"
)

const statsCacheKey = "cache:stats:overview"

// StatsController serves the aggregated stats and leaderboard. Responses are
// cached briefly in Redis; every attendance or reward write invalidates the
// cache prefix.
type StatsController struct {
	eng *engine.Engine
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(eng *engine.Engine) *StatsController {
	return &StatsController{eng: eng}
}

// GetStats returns per-participant summaries plus the leaderboard.
func (s *StatsController) GetStats(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(statsCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	stats, err := s.eng.Stats()
	if err != nil {
		respondEngineError(ctx, err, 50050, "failed to compute stats")
		return
	}
	leaderboard, err := s.eng.Leaderboard()
	if err != nil {
		respondEngineError(ctx, err, 50051, "failed to compute leaderboard")
		return
	}

	payload := gin.H{"stats": stats, "leaderboard": leaderboard}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(statsCacheKey, wrapper, time.Minute)
	utils.Success(ctx, payload)
}

// GetMyStats returns the authenticated participant's summary only.
func (s *StatsController) GetMyStats(ctx *gin.Context) {
	participantID, ok := getParticipantID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	stats, err := s.eng.StatsFor(participantID)
	if err != nil {
		respondEngineError(ctx, err, 50052, "failed to compute stats")
		return
	}
	utils.Success(ctx, stats)
}
