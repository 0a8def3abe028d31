package database

import (
	"workzo_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate over every model. uuid_generate_v4 needs the
// uuid-ossp extension, created here so a fresh database works out of the box.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.JobStatus{},
		&models.Review{},
		&models.Notification{},
	)
}
