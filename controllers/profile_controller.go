package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sweatscore/sweatscore/models"
	"github.com/sweatscore/sweatscore/utils"
)

// ProfileController serves public user profiles and points history.
type ProfileController struct {
	db *gorm.DB
}

// NewProfileController creates a new controller instance.
func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{db: db}
}

// GetUser returns a user's public profile: identity, total, badges, recent
// check-ins and lifetime check-in count.
func (p *ProfileController) GetUser(ctx *gin.Context) {
	idStr := strings.TrimSpace(ctx.Param("id"))
	if idStr == "" {
		utils.Error(ctx, http.StatusBadRequest, 40050, "missing user id")
		return
	}

	cacheKey := "cache:profile:" + idStr
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var user models.User
	if err := p.db.First(&user, idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40450, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to load user")
		return
	}

	var badges []models.Badge
	if err := p.db.Where("user_id = ?", user.ID).Order("awarded_at ASC").Find(&badges).Error; err != nil {
		badges = nil
	}

	var recentCheckIns []models.CheckIn
	if err := p.db.Where("user_id = ?", user.ID).Order("timestamp DESC").Limit(10).Find(&recentCheckIns).Error; err != nil {
		recentCheckIns = nil
	}

	var checkInCount int64
	if err := p.db.Model(&models.CheckIn{}).Where("user_id = ?", user.ID).Count(&checkInCount).Error; err != nil {
		checkInCount = 0
	}

	payload := gin.H{
		"user":             user,
		"badges":           badges,
		"recent_check_ins": recentCheckIns,
		"check_in_count":   checkInCount,
	}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(cacheKey, wrapper, time.Minute)
	utils.Success(ctx, payload)
}

// ListPointsLog returns a user's points history, newest first, paginated.
func (p *ProfileController) ListPointsLog(ctx *gin.Context) {
	idStr := strings.TrimSpace(ctx.Param("id"))
	if idStr == "" {
		utils.Error(ctx, http.StatusBadRequest, 40051, "missing user id")
		return
	}

	page, pageSize := 1, 20
	if v := strings.TrimSpace(ctx.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(ctx.Query("page_size")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}

	var total int64
	if err := p.db.Model(&models.PointsLogEntry{}).Where("user_id = ?", idStr).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to count points log")
		return
	}

	var entries []models.PointsLogEntry
	if err := p.db.Where("user_id = ?", idStr).
		Order("timestamp DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to load points log")
		return
	}

	utils.Success(ctx, gin.H{
		"items": entries,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	})
}
