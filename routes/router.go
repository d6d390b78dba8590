package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sweatscore/sweatscore/config"
	"github.com/sweatscore/sweatscore/controllers"
	"github.com/sweatscore/sweatscore/ledger"
	"github.com/sweatscore/sweatscore/middleware"
	"github.com/sweatscore/sweatscore/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, svc *ledger.Service) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	webhookController := controllers.NewWebhookController(svc)
	authController := controllers.NewAuthController(db)
	leaderboardController := controllers.NewLeaderboardController(svc)
	profileController := controllers.NewProfileController(db)
	challengeController := controllers.NewChallengeController(db)
	adminController := controllers.NewAdminController(db, svc)

	// Slack delivers events here; signature verification happens before the
	// body reaches the handler.
	r.POST("/api/slack/events", middleware.VerifySlackSignature(), webhookController.HandleSlackEvent)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.GET("/slack/login", authController.SlackLogin)
	authGroup.GET("/slack/callback", authController.SlackCallback)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	api.GET("/leaderboard", leaderboardController.GetLeaderboard)
	api.GET("/users/:id", profileController.GetUser)
	api.GET("/users/:id/points-log", profileController.ListPointsLog)
	api.GET("/challenges", challengeController.ListChallenges)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	protected.POST("/challenges/:id/join", challengeController.JoinChallenge)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.RateLimitMiddleware())
	admin.GET("/users", adminController.ListUsers)
	admin.GET("/check-ins", adminController.RecentCheckIns)
	admin.POST("/points", adminController.AddPoints)
	admin.DELETE("/check-ins/:id", adminController.RemoveCheckIn)
	admin.POST("/challenges", adminController.CreateChallenge)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
