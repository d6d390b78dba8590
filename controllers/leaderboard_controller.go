package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sweatscore/sweatscore/ledger"
	"github.com/sweatscore/sweatscore/utils"
)

// LeaderboardController serves windowed rankings.
type LeaderboardController struct {
	svc *ledger.Service
}

// NewLeaderboardController creates a new controller instance.
func NewLeaderboardController(svc *ledger.Service) *LeaderboardController {
	return &LeaderboardController{svc: svc}
}

// GetLeaderboard returns the ranked board for ?window=week|month|quarter|year|all.
func (l *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	window, err := ledger.ParseWindow(ctx.DefaultQuery("window", "week"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, err.Error())
		return
	}

	cacheKey := "cache:leaderboard:" + string(window)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	entries, err := l.svc.Rank(window)
	if err != nil {
		utils.Sugar.Errorf("leaderboard query failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to compute leaderboard")
		return
	}

	payload := gin.H{
		"window":  window,
		"entries": entries,
	}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(cacheKey, wrapper, time.Minute)
	utils.Success(ctx, payload)
}
