package database

import (
	"fmt"
	"testing"

	"personal-finance/internal/config"
	"personal-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCategory(t *testing.T, db *DB, userID uuid.UUID, name, direction string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:          userID,
		Name:            name,
		TransactionType: direction,
		IsActive:        true,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestAccount(t *testing.T, db *DB, userID uuid.UUID, name, accountType string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     name,
		Type:     accountType,
		Balance:  decimal.NewFromInt(1000),
		IsActive: true,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCreditCard(t *testing.T, db *DB, userID uuid.UUID, name, bankName string) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		UserID:      userID,
		Name:        name,
		BankName:    bankName,
		CreditLimit: decimal.NewFromInt(5000),
		IsActive:    true,
	}

	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test credit card: %v", err)
	}

	return card
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"categories",
		"credit_cards",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
