package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitpact/fitpact/engine"
	"github.com/fitpact/fitpact/middleware"
	"github.com/fitpact/fitpact/utils"
)

func getParticipantID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextParticipantIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}

// respondEngineError maps the engine's error taxonomy onto HTTP statuses and
// business codes. Every kind names the violated precondition; partial state
// is never observable, so "nothing changed" always holds on error.
func respondEngineError(ctx *gin.Context, err error, fallbackCode int, fallbackMsg string) {
	var validation *engine.ValidationError
	var notFound *engine.NotFoundError
	var alreadyCalculated *engine.AlreadyCalculatedError
	var conflict *engine.ConflictError

	switch {
	case errors.As(err, &validation):
		utils.Error(ctx, http.StatusBadRequest, 40001, validation.Error())
	case errors.As(err, &notFound):
		utils.Error(ctx, http.StatusNotFound, 40401, notFound.Error())
	case errors.As(err, &alreadyCalculated):
		utils.Error(ctx, http.StatusBadRequest, 40030, alreadyCalculated.Error())
	case errors.As(err, &conflict):
		utils.Error(ctx, http.StatusConflict, 40901, conflict.Error())
	default:
		if utils.Sugar != nil {
			utils.Sugar.Errorf("%s: %v", fallbackMsg, err)
		}
		utils.Error(ctx, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
