package services

import (
	"fmt"
	"math"
	"sync"

	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/utils"
)

// AppStore owns the six persisted collections for the lifetime of the
// process. All reads go through copying accessors and all mutations go
// through methods that persist the whole aggregate before returning,
// so the stored blob always reflects the last applied change.
type AppStore struct {
	mu      sync.RWMutex
	data    models.AppData
	storage *StorageService
}

func NewAppStore(storage *StorageService) *AppStore {
	return &AppStore{
		data:    storage.Load(),
		storage: storage,
	}
}

// save must be called with the write lock held.
func (s *AppStore) save() {
	s.storage.Save(s.data)
}

func (s *AppStore) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.MenuItem, len(s.data.MenuItems))
	copy(items, s.data.MenuItems)
	return items
}

func (s *AppStore) MenuItemByID(id string) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.data.MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (s *AppStore) UpsertMenuItem(item models.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data.MenuItems {
		if existing.ID == item.ID {
			s.data.MenuItems[i] = item
			s.save()
			return nil
		}
	}
	s.data.MenuItems = append(s.data.MenuItems, item)
	s.save()
	return nil
}

func (s *AppStore) DeleteMenuItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.data.MenuItems {
		if item.ID == id {
			s.data.MenuItems = append(s.data.MenuItems[:i], s.data.MenuItems[i+1:]...)
			s.save()
			return nil
		}
	}
	return ErrMenuItemNotFound
}

func (s *AppStore) ReplaceMenuItems(items []models.MenuItem) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate menu item id %q", item.ID)
		}
		seen[item.ID] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.MenuItems = items
	s.save()
	return nil
}

func (s *AppStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, len(s.data.Orders))
	copy(orders, s.data.Orders)
	return orders
}

func (s *AppStore) AppendOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Orders = append(s.data.Orders, order)
	s.save()
}

// AwardPoints performs the at-most-once loyalty accrual for an order.
// It is a silent no-op when the order is unknown, already awarded, not
// priced in JOD, or placed by a guest. The order flag and the user's
// balance change inside one critical section and are persisted with a
// single save, so neither is ever observable without the other.
func (s *AppStore) AwardPoints(orderID string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order *models.Order
	for i := range s.data.Orders {
		if s.data.Orders[i].ID == orderID {
			order = &s.data.Orders[i]
			break
		}
	}
	if order == nil || order.PointsAwarded || order.Total.Currency != models.CurrencyJOD || order.UserID == nil {
		return models.User{}, false
	}

	for i := range s.data.Users {
		if s.data.Users[i].Phone == *order.UserID {
			points := int(math.Floor(order.Total.Value))
			s.data.Users[i].LoyaltyPoints += points
			order.PointsAwarded = true
			user := s.data.Users[i]
			s.save()
			utils.InfoLogger.Printf("Awarded %d points to %s for order %s", points, user.Phone, orderID)
			return user, true
		}
	}
	return models.User{}, false
}

func (s *AppStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, len(s.data.Users))
	copy(users, s.data.Users)
	return users
}

func (s *AppStore) UserByPhone(phone string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.Phone == phone {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser allocates an id strictly greater than every existing one
// (1 for the first account) and rejects phones that are already
// registered. Allocation and insertion share the critical section so
// ids stay unique.
func (s *AppStore) CreateUser(phone, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, u := range s.data.Users {
		if u.Phone == phone {
			return models.User{}, ErrPhoneTaken
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	user := models.User{
		ID:            maxID + 1,
		Phone:         phone,
		Password:      password,
		LoyaltyPoints: 0,
	}
	s.data.Users = append(s.data.Users, user)
	s.save()
	return user, nil
}

func (s *AppStore) SiteContent() models.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content := s.data.SiteContent
	content.FeaturedDishIDs = append([]string(nil), s.data.SiteContent.FeaturedDishIDs...)
	content.FeaturedDessertIDs = append([]string(nil), s.data.SiteContent.FeaturedDessertIDs...)
	return content
}

func (s *AppStore) UpdateSiteContent(content models.SiteContent) error {
	if err := content.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SiteContent = content
	s.save()
	return nil
}

func (s *AppStore) NotificationSettings() models.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.SiteContent.NotificationSettings
}

func (s *AppStore) GalleryImages() []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	images := make([]models.GalleryImage, len(s.data.GalleryImages))
	copy(images, s.data.GalleryImages)
	return images
}

func (s *AppStore) ReplaceGalleryImages(images []models.GalleryImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.GalleryImages = images
	s.save()
}

func (s *AppStore) SocialLinks() []models.SocialLink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	links := make([]models.SocialLink, len(s.data.SocialLinks))
	copy(links, s.data.SocialLinks)
	return links
}

func (s *AppStore) ReplaceSocialLinks(links []models.SocialLink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SocialLinks = links
	s.save()
}
