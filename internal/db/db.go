package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/config"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.AvailabilitySlot{},
		&models.Appointment{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// no máximo um agendamento não cancelado por horário; duas submissões
	// simultâneas para o mesmo slot disputam este índice, não a checagem
	// feita em aplicação
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (slot_time)
        WHERE status <> 'Cancelled'
    `).Error; err != nil {
		log.Fatalf("failed to create appointment slot index: %v", err)
	}

	return db
}
