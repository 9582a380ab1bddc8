package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase establishes a connection to the PostgreSQL database
// using the loaded configuration (or environment defaults when Load was
// not called first)
func ConnectDatabase() error {
	cfg := GetConfig()
	if cfg == nil {
		var err error
		cfg, err = Load()
		if err != nil {
			return err
		}
	}

	dsn := cfg.GetDatabaseURL()

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the database instance (used by tests)
func SetDB(db *gorm.DB) {
	DB = db
}
