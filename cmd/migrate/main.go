package main

import (
	"github.com/oggyb/beem-sms/internal/config"
	"github.com/oggyb/beem-sms/internal/db/gormdb"
	dispatchRepo "github.com/oggyb/beem-sms/internal/repository/gorm/dispatch"
	"gorm.io/gorm"
)

func main() {
	// Load application configuration (DB, Redis, etc.) from env/.env.
	cfg := config.New()
	log := cfg.Logger().WithField("component", "migrate")

	// Open a Postgres connection through our GORM adapter.
	gormAdapter, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	log.WithField("db", cfg.DB.Name).Info("Connected to database")

	// We go through the adapter to access the underlying *gorm.DB.
	rawDB := gormAdapter.Conn().(*gorm.DB)

	if err := rawDB.AutoMigrate(&dispatchRepo.DispatchModel{}); err != nil {
		log.WithError(err).Fatal("AutoMigrate failed")
	}
	log.Info("Dispatches table is up to date (AutoMigrate completed).")
}
