package main

import (
	"github.com/fitpact/fitpact/config"
	"github.com/fitpact/fitpact/engine"
	"github.com/fitpact/fitpact/models"
	"github.com/fitpact/fitpact/routes"
	"github.com/fitpact/fitpact/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.Participant{},
		&models.AttendanceRecord{},
		&models.DebtEntry{},
		&models.RewardEntry{},
		&models.ActivityEvent{},
	)

	if err := models.EnsureRoster(db, cfg.Roster); err != nil {
		utils.Sugar.Fatalf("roster seeding failed: %v", err)
	}

	eng := engine.NewFromConfig(db, cfg, engine.WithActivityPublisher(func(event models.ActivityEvent) {
		utils.PublishActivity(event)
	}))

	r := routes.SetupRouter(db, eng)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
