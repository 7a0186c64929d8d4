package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitpact/fitpact/models"
	"github.com/fitpact/fitpact/utils"
)

// AuthController handles login and identity endpoints for the fixed cohort.
// There is no registration; the roster is seeded at boot.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Login authenticates a participant by email and password and issues a JWT.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}

	var participant models.Participant
	if err := a.db.Where("email = ?", req.Email).First(&participant).Error; err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "email or password is incorrect")
		return
	}

	if !utils.CheckPassword(participant.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "email or password is incorrect")
		return
	}

	token, err := utils.GenerateToken(participant.ID, participant.Email, 7*24*time.Hour)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token":       token,
		"participant": participant,
	})
}

// Me returns the authenticated participant.
func (a *AuthController) Me(ctx *gin.Context) {
	participantID, ok := getParticipantID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var participant models.Participant
	if err := a.db.First(&participant, participantID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "participant not found")
		return
	}

	utils.Success(ctx, participant)
}

// ListParticipants returns the full roster in roster order.
func (a *AuthController) ListParticipants(ctx *gin.Context) {
	var participants []models.Participant
	if err := a.db.Order("id ASC").Find(&participants).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to retrieve participants")
		return
	}
	utils.Success(ctx, participants)
}
