package models

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Layouts used for the ISO date and time columns.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver         string
	DSN            string
	Seed           bool
	PasswordScheme PasswordScheme
	LogLevel       logger.LogLevel
}

// schemaModels lists every table in foreign-key dependency order.
func schemaModels() []interface{} {
	return []interface{}{
		&Patient{},
		&Doctor{},
		&Service{},
		&Appointment{},
		&MedicalRecord{},
		&Prescription{},
		&LabOrder{},
		&Payment{},
		&AppointmentService{},
		&User{},
	}
}

// Open connects to the configured store. The returned handle is the only
// connection the process holds; callers inject it where needed.
func Open(config DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case "", "sqlite":
		dialector = sqlite.Open(config.DSN)
	case "mysql":
		dialector = mysql.Open(config.DSN)
	case "postgres":
		dialector = postgres.Open(config.DSN)
	default:
		return nil, fmt.Errorf("models: unsupported driver %q", config.Driver)
	}

	level := config.LogLevel
	if level == 0 {
		level = logger.Silent
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("models: open %s: %w", config.Driver, err)
	}

	if config.Driver == "" || config.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// A single connection keeps :memory: databases alive and the pragma in effect.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("models: enable foreign keys: %w", err)
		}
	}
	return db, nil
}

// Migrate creates every missing table. Existing tables are left untouched.
func Migrate(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, model := range schemaModels() {
		if migrator.HasTable(model) {
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("models: create table for %T: %w", model, err)
		}
	}
	return nil
}

// InitDB initializes database connection
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := Open(config)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if config.Seed {
		if _, err := Seed(db, config.PasswordScheme); err != nil {
			return nil, err
		}
	}

	return db, nil
}
