package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/astrenrest/storefront/database"
	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/utils"
)

// setupTestDB opens a fresh in-memory SQLite store per test. The named
// shared-cache DSN keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&database.StateBlob{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupStore(t *testing.T) (*AppStore, *StorageService) {
	t.Helper()
	storage := NewStorageService(setupTestDB(t))
	return NewAppStore(storage), storage
}

func testMenuItem(id string, usd, jod float64) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        models.LocalizedText{En: "Dish " + id, Ar: "طبق " + id},
		Description: models.LocalizedText{En: "A test dish.", Ar: "طبق تجريبي."},
		Price:       models.Price{USD: usd, JOD: jod},
		Category:    models.CategoryMainCourses,
		Image:       "https://example.com/" + id + ".jpg",
	}
}

func testSession() *Session {
	return &Session{ID: "test", cart: NewCart(), currency: models.CurrencyUSD}
}
