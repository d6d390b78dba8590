package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweatscore/sweatscore/ledger"
	"github.com/sweatscore/sweatscore/middleware"
	"github.com/sweatscore/sweatscore/models"
	"github.com/sweatscore/sweatscore/utils"
)

// AdminController backs the admin panel. Every route is behind
// middleware.AdminRequired, so handlers treat authorization as given.
type AdminController struct {
	db  *gorm.DB
	svc *ledger.Service
}

// NewAdminController creates a new controller instance.
func NewAdminController(db *gorm.DB, svc *ledger.Service) *AdminController {
	return &AdminController{db: db, svc: svc}
}

type addPointsRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Amount int    `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// AddPoints injects a manual point grant through the ledger accountant.
func (a *AdminController) AddPoints(ctx *gin.Context) {
	var req addPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "user_id, amount and reason are required")
		return
	}

	reason := utils.SanitizeReason(req.Reason)
	newTotal, err := a.svc.AddPoints(req.UserID, req.Amount, reason)
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrEmptyReason):
		utils.Error(ctx, http.StatusBadRequest, 40061, err.Error())
		return
	case errors.Is(err, ledger.ErrUserNotFound):
		utils.Error(ctx, http.StatusNotFound, 40460, "user not found")
		return
	case err != nil:
		utils.Sugar.Errorf("admin point grant failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to add points")
		return
	}

	utils.Sugar.Infow("admin added points",
		"admin", ctx.GetString(middleware.ContextSlackIDKey),
		"user_id", req.UserID,
		"amount", req.Amount,
		"reason", reason,
	)
	utils.InvalidateByPrefix("cache:leaderboard:")
	utils.InvalidateByPrefix("cache:profile:")

	utils.Success(ctx, gin.H{"total_points": newTotal})
}

// RemoveCheckIn deletes a check-in and reverses its points. Badges already
// granted on the strength of it stay granted.
func (a *AdminController) RemoveCheckIn(ctx *gin.Context) {
	id, err := strconv.ParseUint(strings.TrimSpace(ctx.Param("id")), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40062, "invalid check-in id")
		return
	}

	newTotal, err := a.svc.RemoveCheckIn(uint(id))
	switch {
	case errors.Is(err, ledger.ErrCheckInNotFound):
		utils.Error(ctx, http.StatusNotFound, 40461, "check-in not found")
		return
	case err != nil:
		utils.Sugar.Errorf("check-in removal failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to remove check-in")
		return
	}

	utils.Sugar.Infow("admin removed check-in",
		"admin", ctx.GetString(middleware.ContextSlackIDKey),
		"check_in_id", id,
	)
	utils.InvalidateByPrefix("cache:leaderboard:")
	utils.InvalidateByPrefix("cache:profile:")

	utils.Success(ctx, gin.H{"total_points": newTotal})
}

// ListUsers returns all users ordered by name for the admin panel picker.
func (a *AdminController) ListUsers(ctx *gin.Context) {
	var users []models.User
	if err := a.db.Order("name ASC").Find(&users).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to list users")
		return
	}
	utils.Success(ctx, gin.H{"items": users})
}

// RecentCheckIns returns the latest check-ins with their users preloaded.
func (a *AdminController) RecentCheckIns(ctx *gin.Context) {
	limit := 20
	if v := strings.TrimSpace(ctx.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	var checkIns []models.CheckIn
	if err := a.db.Preload("User").Order("timestamp DESC").Limit(limit).Find(&checkIns).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to list check-ins")
		return
	}
	utils.Success(ctx, gin.H{"items": checkIns})
}

type createChallengeRequest struct {
	Type        string    `json:"type"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

// CreateChallenge opens a new team challenge.
func (a *AdminController) CreateChallenge(ctx *gin.Context) {
	var req createChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40063, "title, start_date and end_date are required")
		return
	}
	if !req.EndDate.After(req.StartDate) {
		utils.Error(ctx, http.StatusBadRequest, 40064, "end_date must be after start_date")
		return
	}

	challenge := models.Challenge{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := a.db.Create(&challenge).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to create challenge")
		return
	}
	utils.Success(ctx, challenge)
}
