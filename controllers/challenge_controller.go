package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sweatscore/sweatscore/models"
	"github.com/sweatscore/sweatscore/utils"
)

// ChallengeController serves the read-mostly challenge surfaces. Challenge
// rows are never touched by the check-in ingestion path.
type ChallengeController struct {
	db *gorm.DB
}

// NewChallengeController creates a new controller instance.
func NewChallengeController(db *gorm.DB) *ChallengeController {
	return &ChallengeController{db: db}
}

// ListChallenges returns all challenges with their rosters, newest first.
func (c *ChallengeController) ListChallenges(ctx *gin.Context) {
	var challenges []models.Challenge
	if err := c.db.Preload("Participants.User").Order("start_date DESC").Find(&challenges).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50070, "failed to list challenges")
		return
	}
	utils.Success(ctx, gin.H{"items": challenges})
}

// JoinChallenge enrolls the session user into an open challenge. Joining
// twice is a no-op thanks to the (challenge, user) unique index.
func (c *ChallengeController) JoinChallenge(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	challengeID := strings.TrimSpace(ctx.Param("id"))
	if challengeID == "" {
		utils.Error(ctx, http.StatusBadRequest, 40070, "missing challenge id")
		return
	}

	var challenge models.Challenge
	if err := c.db.First(&challenge, "id = ?", challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40470, "challenge not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to load challenge")
		return
	}
	if time.Now().After(challenge.EndDate) {
		utils.Error(ctx, http.StatusBadRequest, 40071, "challenge has ended")
		return
	}

	participant := models.ChallengeParticipant{
		ChallengeID: challenge.ID,
		UserID:      userID,
		Points:      0,
		JoinedAt:    time.Now(),
	}
	if err := c.db.Where("challenge_id = ? AND user_id = ?", challenge.ID, userID).
		FirstOrCreate(&participant).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50072, "failed to join challenge")
		return
	}

	utils.Success(ctx, participant)
}
