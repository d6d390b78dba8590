package main

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/sweatscore/sweatscore/config"
	"github.com/sweatscore/sweatscore/ledger"
	"github.com/sweatscore/sweatscore/models"
	"github.com/sweatscore/sweatscore/routes"
	"github.com/sweatscore/sweatscore/utils"
)

func main() {
	// Optional .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	loc, err := time.LoadLocation(cfg.WorkspaceTimezone)
	if err != nil {
		utils.Sugar.Fatalf("invalid workspace timezone %q: %v", cfg.WorkspaceTimezone, err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.CheckIn{},
		&models.PointsLogEntry{},
		&models.Badge{},
		&models.Challenge{},
		&models.ChallengeParticipant{},
	)

	svc := ledger.NewService(db, ledger.Options{
		ChannelID:    cfg.SlackChannelID,
		Location:     loc,
		RewardPoints: cfg.CheckInRewardPoints,
	})

	r := routes.SetupRouter(db, svc)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
