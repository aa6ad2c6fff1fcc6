package db

import (
	"alumni_portal/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Models lists every table the portal owns, in dependency order
func Models() []any {
	return []any{
		&domain.Admin{},
		&domain.Alumni{},
		&domain.Tag{},
		&domain.Post{},
		&domain.Reply{},
		&domain.Event{},
		&domain.Donation{},
	}
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(Models()...); err != nil {
		logrus.WithError(err).Error("migration failed")
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
