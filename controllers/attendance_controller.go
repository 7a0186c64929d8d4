package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpact/fitpact/engine"
	"github.com/fitpact/fitpact/utils"
)

const dayLayout = "2006-01-02"

// AttendanceController exposes the attendance ledger: recording a day and
// reading a date range.
type AttendanceController struct {
	eng *engine.Engine
}

// NewAttendanceController creates a new controller instance.
func NewAttendanceController(eng *engine.Engine) *AttendanceController {
	return &AttendanceController{eng: eng}
}

// Record upserts attendance for the authenticated participant. A missing
// completed flag defaults to true; explicit false marks the day canceled.
// The weekly debt check runs as part of the same call.
func (a *AttendanceController) Record(ctx *gin.Context) {
	participantID, ok := getParticipantID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Date      string `json:"date" binding:"required"`
		Completed *bool  `json:"completed"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "date is required")
		return
	}

	day, err := time.Parse(dayLayout, req.Date)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid date, expected YYYY-MM-DD")
		return
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	record, err := a.eng.RecordAttendance(participantID, day, completed)
	if err != nil {
		respondEngineError(ctx, err, 50030, "failed to record attendance")
		return
	}

	utils.InvalidateByPrefix("cache:stats")
	utils.Success(ctx, gin.H{"attendance": record})
}

// List returns attendance for all participants within the requested range,
// defaulting to the full challenge window.
func (a *AttendanceController) List(ctx *gin.Context) {
	cal := a.eng.Calendar()
	from, to := cal.Start(), cal.End()

	if v := ctx.Query("startDate"); v != "" {
		parsed, err := time.Parse(dayLayout, v)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40012, "invalid startDate, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if v := ctx.Query("endDate"); v != "" {
		parsed, err := time.Parse(dayLayout, v)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40013, "invalid endDate, expected YYYY-MM-DD")
			return
		}
		to = parsed
	}

	records, err := a.eng.ListAttendance(from, to)
	if err != nil {
		respondEngineError(ctx, err, 50031, "failed to list attendance")
		return
	}

	utils.Success(ctx, gin.H{"attendance": records})
}

// Mine returns the authenticated participant's attendance within the range.
func (a *AttendanceController) Mine(ctx *gin.Context) {
	participantID, ok := getParticipantID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	cal := a.eng.Calendar()
	from, to := cal.Start(), cal.End()
	if v := ctx.Query("startDate"); v != "" {
		parsed, err := time.Parse(dayLayout, v)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40012, "invalid startDate, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if v := ctx.Query("endDate"); v != "" {
		parsed, err := time.Parse(dayLayout, v)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40013, "invalid endDate, expected YYYY-MM-DD")
			return
		}
		to = parsed
	}

	records, err := a.eng.QueryRange(participantID, from, to)
	if err != nil {
		respondEngineError(ctx, err, 50032, "failed to query attendance")
		return
	}

	utils.Success(ctx, gin.H{"attendance": records})
}
