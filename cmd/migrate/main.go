package main

import (
	"alumni_portal/internal/config" // Custom import path (Config)
	"alumni_portal/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	gdb, err := db.Open(cfg.DatabaseDSN, false)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
}
