package database

import (
	"fmt"
	"log"

	"github.com/akfoods/pos-api/internal/config"
	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User entities
		&entity.User{},

		// Menu entities
		&entity.Category{},
		&entity.MenuItem{},

		// Billing entities
		&entity.Bill{},
		&entity.BillItem{},
		&entity.BillCounter{},

		// Expense entities
		&entity.ExpenseCategory{},
		&entity.Expense{},

		// System entities
		&entity.Setting{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the bill counter, default settings, expense
// categories, and the initial admin account. Safe to run on every boot.
func SeedDefaultData(db *gorm.DB, adminCfg *config.AdminConfig) error {
	log.Println("Seeding default data...")

	// Bill counter row. AllocateBillNumber expects exactly one row with id=1.
	var counter entity.BillCounter
	if err := db.First(&counter, 1).Error; err != nil {
		counter = entity.BillCounter{ID: 1, Prefix: "AKF", LastNumber: 0}
		if err := db.Create(&counter).Error; err != nil {
			return fmt.Errorf("failed to seed bill counter: %w", err)
		}
	}

	// Default settings. Existing values are never overwritten.
	defaults := map[string]string{
		entity.SettingRestaurantName: "AK Foods",
		entity.SettingAddress:        "",
		entity.SettingPhone1:         "",
		entity.SettingPhone2:         "",
		entity.SettingReceiptFooter:  "Thank you, visit again!",
		entity.SettingTaxEnabled:     "false",
		entity.SettingTaxPercentage:  "0",
	}
	for key, value := range defaults {
		var existing entity.Setting
		if err := db.Where("setting_key = ?", key).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Setting{SettingKey: key, SettingValue: value}).Error; err != nil {
				log.Printf("Warning: failed to seed setting %s: %v", key, err)
			}
		}
	}

	// Default expense categories
	expenseCategories := []string{
		"Groceries",
		"Vegetables",
		"Meat & Poultry",
		"Dairy",
		"Gas & Fuel",
		"Staff Salary",
		"Rent",
		"Electricity",
		"Maintenance",
		"Miscellaneous",
	}
	for _, name := range expenseCategories {
		var existing entity.ExpenseCategory
		if err := db.Where("category_name = ?", name).First(&existing).Error; err != nil {
			cat := entity.ExpenseCategory{CategoryName: name, CategoryType: "expense", IsActive: true}
			if err := db.Create(&cat).Error; err != nil {
				log.Printf("Warning: failed to seed expense category %s: %v", name, err)
			}
		}
	}

	// Initial admin account
	if adminCfg.Username != "" && adminCfg.Password != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminCfg.Username).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminCfg.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				adminUser := entity.User{
					ID:       uuid.New(),
					Username: adminCfg.Username,
					Password: string(hashedPassword),
					Role:     enum.UserRoleAdmin,
					IsActive: true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminCfg.Username)
				}
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
