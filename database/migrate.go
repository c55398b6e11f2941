package database

import (
	"fmt"

	"craftlink_backend/internal/config"
	"craftlink_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из config.yaml
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей.
// Уникальный индекс (job_id, artisan_profile_id) создается из тега модели
// и закрывает гонку повторного отклика на уровне БД.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ArtisanProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.JobApplication{},
		&models.VerificationLog{},
		&models.Notification{},
		&models.Message{},
	)
}
