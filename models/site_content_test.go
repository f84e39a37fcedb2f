package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFeatured(t *testing.T) {
	assert.NoError(t, ValidateFeatured([]string{"1", "2", "3"}))
	assert.NoError(t, ValidateFeatured([]string{"", "", ""}))
	assert.NoError(t, ValidateFeatured([]string{"1", "", ""}))

	// Duplicates only matter once all slots are filled.
	assert.NoError(t, ValidateFeatured([]string{"1", "1", ""}))
	assert.Error(t, ValidateFeatured([]string{"1", "1", "2"}))
	assert.Error(t, ValidateFeatured([]string{"7", "7", "7"}))

	assert.Error(t, ValidateFeatured([]string{"1", "2", "3", "4"}))
}

func TestDefaultAppDataIsInternallyConsistent(t *testing.T) {
	data := DefaultAppData()

	assert.NoError(t, data.SiteContent.Validate())
	assert.Empty(t, data.Orders)

	ids := map[string]bool{}
	for _, item := range data.MenuItems {
		assert.NoError(t, item.Validate())
		assert.False(t, ids[item.ID], "duplicate seed menu id %s", item.ID)
		ids[item.ID] = true
	}

	// Every featured slot that is set points at a real dish.
	featured := append([]string{}, data.SiteContent.FeaturedDishIDs...)
	featured = append(featured, data.SiteContent.FeaturedDessertIDs...)
	for _, id := range featured {
		if id != "" {
			assert.True(t, ids[id], "featured id %s missing from seed menu", id)
		}
	}
}
