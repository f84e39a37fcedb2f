package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrenrest/storefront/database"
	"github.com/astrenrest/storefront/models"
)

func TestLoadFirstRunReturnsDefaults(t *testing.T) {
	storage := NewStorageService(setupTestDB(t))
	assert.Equal(t, models.DefaultAppData(), storage.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	storage := NewStorageService(setupTestDB(t))

	data := models.DefaultAppData()
	phone := "1234567890"
	data.Orders = append(data.Orders, models.Order{
		ID:    "1700000000000",
		Name:  "Jane",
		Email: "jane@example.com",
		Phone: phone,
		Date:  "2026-09-01",
		Time:  "19:00",
		Items: []models.CartItem{
			{MenuItem: testMenuItem("1", 28, 19.80), Quantity: 2},
		},
		Total:  models.TotalPrice{Value: 39.60, Currency: models.CurrencyJOD},
		UserID: &phone,
	})
	data.Users = append(data.Users, models.User{ID: 2, Phone: "999", Password: "x", LoyaltyPoints: 5})
	data.SiteContent.NotificationSettings.FrequencyMinutes = 45

	storage.Save(data)
	assert.Equal(t, data, storage.Load())
}

func TestLoadMergesOlderSchema(t *testing.T) {
	db := setupTestDB(t)
	storage := NewStorageService(db)

	// A blob written by an older build: no socialLinks collection and a
	// siteContent missing the whole notificationSettings object.
	older := `{
		"menuItems": [],
		"orders": [{"id":"42","items":[],"totalPrice":{"value":10,"currency":"jod"},"pointsAwarded":false}],
		"siteContent": {"logoUrl": "https://old.example/logo.png"}
	}`
	require.NoError(t, db.Create(&database.StateBlob{Key: database.KeyAppState, Value: older}).Error)

	data := storage.Load()
	defaults := models.DefaultAppData()

	// Stored values win where present.
	assert.Equal(t, "https://old.example/logo.png", data.SiteContent.LogoURL)
	assert.Len(t, data.Orders, 1)
	assert.Empty(t, data.MenuItems)

	// Absent fields are filled from defaults, nested settings included.
	assert.Equal(t, defaults.SiteContent.NotificationSettings, data.SiteContent.NotificationSettings)
	assert.Equal(t, defaults.SiteContent.FeaturedDishIDs, data.SiteContent.FeaturedDishIDs)
	assert.Equal(t, defaults.SocialLinks, data.SocialLinks)
	assert.Equal(t, defaults.Users, data.Users)
}

func TestLoadMergesPartialNotificationSettings(t *testing.T) {
	db := setupTestDB(t)
	storage := NewStorageService(db)

	older := `{"siteContent": {"notificationSettings": {"enabled": false}}}`
	require.NoError(t, db.Create(&database.StateBlob{Key: database.KeyAppState, Value: older}).Error)

	settings := storage.Load().SiteContent.NotificationSettings
	defaults := models.DefaultAppData().SiteContent.NotificationSettings

	assert.False(t, settings.Enabled)
	assert.Equal(t, defaults.Text, settings.Text)
	assert.Equal(t, defaults.BackgroundColor, settings.BackgroundColor)
	assert.Equal(t, defaults.ImageURL, settings.ImageURL)
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	db := setupTestDB(t)
	storage := NewStorageService(db)

	require.NoError(t, db.Create(&database.StateBlob{Key: database.KeyAppState, Value: "{not json"}).Error)
	assert.Equal(t, models.DefaultAppData(), storage.Load())
}

func TestSaveOverwritesPreviousBlob(t *testing.T) {
	storage := NewStorageService(setupTestDB(t))

	first := models.DefaultAppData()
	storage.Save(first)

	second := first
	second.MenuItems = []models.MenuItem{testMenuItem("9", 1, 1)}
	storage.Save(second)

	loaded := storage.Load()
	assert.Len(t, loaded.MenuItems, 1)
	assert.Equal(t, "9", loaded.MenuItems[0].ID)
}

func TestLastDismissedRoundTrip(t *testing.T) {
	storage := NewStorageService(setupTestDB(t))

	_, ok := storage.LastDismissed()
	assert.False(t, ok)

	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	storage.SetLastDismissed(at)

	got, ok := storage.LastDismissed()
	assert.True(t, ok)
	assert.Equal(t, at.UnixMilli(), got.UnixMilli())
}
