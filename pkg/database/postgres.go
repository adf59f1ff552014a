package database

import (
	"log"

	"github.com/hotelio/frontdesk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.Room{},
		&models.Customer{},
		&models.Booking{},
		&models.Charge{},
		&models.Payment{},
		&models.PaymentSplit{},
		&models.Discount{},
		&models.Refund{},
		&models.Product{},
		&models.CashRegisterShift{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: a cashier can have at most one open shift
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_shift_single_open
		ON cash_register_shifts (cashier_id)
		WHERE status = 'open'
	`)

	return db
}
