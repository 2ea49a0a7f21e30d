package database

import (
	"errors"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/uniworld/uniworld/internal/models"
)

func (d *Database) Connect() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	d.db = db

	return d.Migrate()
}

// Migrate applies the schema. Split out of Connect so tests can run it
// against a different driver.
func (d *Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Message{},
		&models.Course{},
	)
}
