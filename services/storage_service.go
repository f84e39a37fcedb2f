package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/astrenrest/storefront/database"
	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/utils"
)

// StorageService reads and writes the single serialized state blob.
// The in-memory state is always authoritative: load failures fall back
// to the default seed and save failures are logged and swallowed, so a
// broken store never blocks the running session.
type StorageService struct {
	DB *gorm.DB
}

func NewStorageService(db *gorm.DB) *StorageService {
	return &StorageService{DB: db}
}

// Load returns the stored aggregate merged over the default seed.
// Unmarshalling into a pre-filled default means any field absent from
// an older blob keeps its default value, including newly introduced
// keys inside notificationSettings.
func (s *StorageService) Load() models.AppData {
	data := models.DefaultAppData()

	var blob database.StateBlob
	err := s.DB.First(&blob, "key = ?", database.KeyAppState).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return data
	}
	if err != nil {
		utils.ErrorLogger.Printf("Could not read state blob, falling back to defaults: %v", err)
		return models.DefaultAppData()
	}

	if err := json.Unmarshal([]byte(blob.Value), &data); err != nil {
		utils.ErrorLogger.Printf("Could not decode state blob, falling back to defaults: %v", err)
		return models.DefaultAppData()
	}

	// A blob written with explicit nulls must not wipe a collection.
	defaults := models.DefaultAppData()
	if data.MenuItems == nil {
		data.MenuItems = defaults.MenuItems
	}
	if data.Orders == nil {
		data.Orders = defaults.Orders
	}
	if data.GalleryImages == nil {
		data.GalleryImages = defaults.GalleryImages
	}
	if data.SocialLinks == nil {
		data.SocialLinks = defaults.SocialLinks
	}
	if data.Users == nil {
		data.Users = defaults.Users
	}
	if data.SiteContent.FeaturedDishIDs == nil {
		data.SiteContent.FeaturedDishIDs = defaults.SiteContent.FeaturedDishIDs
	}
	if data.SiteContent.FeaturedDessertIDs == nil {
		data.SiteContent.FeaturedDessertIDs = defaults.SiteContent.FeaturedDessertIDs
	}
	return data
}

// Save overwrites the blob with the whole aggregate. Fire-and-forget:
// callers never wait on or learn about persistence failures.
func (s *StorageService) Save(data models.AppData) {
	raw, err := json.Marshal(data)
	if err != nil {
		utils.ErrorLogger.Printf("Could not serialize state: %v", err)
		return
	}

	blob := database.StateBlob{Key: database.KeyAppState, Value: string(raw)}
	if err := s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&blob).Error; err != nil {
		utils.ErrorLogger.Printf("Could not save state: %v", err)
	}
}

// LastDismissed returns the durable notification dismissal timestamp,
// stored as milliseconds since epoch in text form.
func (s *StorageService) LastDismissed() (time.Time, bool) {
	var blob database.StateBlob
	err := s.DB.First(&blob, "key = ?", database.KeyLastDismissed).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("Could not read dismissal timestamp: %v", err)
		}
		return time.Time{}, false
	}

	ms, err := strconv.ParseInt(blob.Value, 10, 64)
	if err != nil {
		utils.ErrorLogger.Printf("Invalid dismissal timestamp %q: %v", blob.Value, err)
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func (s *StorageService) SetLastDismissed(t time.Time) {
	blob := database.StateBlob{
		Key:   database.KeyLastDismissed,
		Value: strconv.FormatInt(t.UnixMilli(), 10),
	}
	if err := s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&blob).Error; err != nil {
		utils.ErrorLogger.Printf("Could not save dismissal timestamp: %v", err)
	}
}
