package models

import "errors"

// FeaturedSlots is the number of featured dish/dessert positions on the
// home page.
const FeaturedSlots = 3

type NotificationSettings struct {
	Enabled          bool          `json:"enabled"`
	Text             LocalizedText `json:"text"`
	ImageURL         string        `json:"imageUrl"`
	BackgroundColor  string        `json:"backgroundColor"`
	FrequencyMinutes int           `json:"frequencyMinutes"`
}

// SiteContent is the operator-editable configuration aggregate.
// Featured id lists have exactly FeaturedSlots entries; an empty string
// marks an unset slot.
type SiteContent struct {
	LogoURL              string               `json:"logoUrl"`
	HeroImage            string               `json:"heroImage"`
	FeaturedDishIDs      []string             `json:"featuredDishIds"`
	FeaturedDessertIDs   []string             `json:"featuredDessertIds"`
	Address              LocalizedText        `json:"address"`
	Phone                string               `json:"phone"`
	Email                string               `json:"email"`
	MapURL               string               `json:"mapUrl"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
}

// ValidateFeatured rejects duplicate ids in a featured list once every
// slot is filled. Partially filled lists are allowed, each slot is
// independently optional.
func ValidateFeatured(ids []string) error {
	if len(ids) > FeaturedSlots {
		return errors.New("featured list has too many slots")
	}
	filled := 0
	seen := make(map[string]bool, len(ids))
	dup := false
	for _, id := range ids {
		if id == "" {
			continue
		}
		filled++
		if seen[id] {
			dup = true
		}
		seen[id] = true
	}
	if filled == FeaturedSlots && dup {
		return errors.New("featured slots must reference distinct menu items")
	}
	return nil
}

func (s SiteContent) Validate() error {
	if err := ValidateFeatured(s.FeaturedDishIDs); err != nil {
		return err
	}
	if err := ValidateFeatured(s.FeaturedDessertIDs); err != nil {
		return err
	}
	if s.NotificationSettings.FrequencyMinutes < 0 {
		return errors.New("notification frequency must not be negative")
	}
	return nil
}
