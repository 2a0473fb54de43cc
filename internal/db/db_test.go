package db

import (
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/solvelysaid/orderdesk/internal/config"
	"github.com/solvelysaid/orderdesk/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		User: "orderdesk", Password: "secret",
		Host: "10.0.0.5", Port: 3307, Name: "orderdesk_prod",
	})
	want := "orderdesk:secret@tcp(10.0.0.5:3307)/orderdesk_prod?parseTime=true&charset=utf8mb4"
	if dsn != want {
		t.Errorf("DSN = %q, want %q", dsn, want)
	}
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(config.DatabaseConfig{Driver: "postgres"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if !strings.Contains(err.Error(), "unsupported driver") {
		t.Errorf("error = %q, want to mention unsupported driver", err.Error())
	}
}

func TestConnect_SQLiteMemory(t *testing.T) {
	db, err := Connect(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db := openTestDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, model := range AllModels() {
		if !db.Migrator().HasTable(model) {
			t.Errorf("table for %T not created", model)
		}
	}
}

func TestSeedMenus(t *testing.T) {
	db := openTestDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := SeedMenus(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int64
	db.Model(&models.Menu{}).Count(&count)
	if count != 10 {
		t.Errorf("menu count = %d, want 10", count)
	}

	var tomyum models.Menu
	if err := db.Where("name = ?", "ต้มยำ").First(&tomyum).Error; err != nil {
		t.Fatalf("lookup seeded menu: %v", err)
	}
	if tomyum.Price != 99 {
		t.Errorf("ต้มยำ price = %d, want 99", tomyum.Price)
	}
}

func TestSeedMenus_Idempotent(t *testing.T) {
	db := openTestDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := SeedMenus(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedMenus(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	db.Model(&models.Menu{}).Count(&count)
	if count != 10 {
		t.Errorf("menu count after re-seed = %d, want 10", count)
	}
}
