package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/services"
	"github.com/astrenrest/storefront/utils"
)

type MenuController struct {
	Store   *services.AppStore
	Pairing *services.PairingService
}

func NewMenuController(store *services.AppStore, pairing *services.PairingService) *MenuController {
	return &MenuController{Store: store, Pairing: pairing}
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.Store.MenuItems())
}

// GetMenu
func (mc *MenuController) GetMenu(c *gin.Context) {
	item, ok := mc.Store.MenuItemByID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrMenuItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item", item)
}

// GetPairingSuggestion asks the external sommelier collaborator for a
// drink pairing. Failures come back as fixed localized fallback text,
// the endpoint itself never errors because of the upstream call.
func (mc *MenuController) GetPairingSuggestion(c *gin.Context) {
	item, ok := mc.Store.MenuItemByID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrMenuItemNotFound)
		return
	}

	lang := models.LangEnglish
	if c.Query("lang") == string(models.LangArabic) {
		lang = models.LangArabic
	}

	suggestion := mc.Pairing.Suggest(item, lang)
	utils.RespondJSON(c, http.StatusOK, "Pairing suggestion", gin.H{
		"suggestion": suggestion,
	})
}

// CreateMenu (admin)
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if item.ID == "" {
		item.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if _, exists := mc.Store.MenuItemByID(item.ID); exists {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("menu item %q already exists", item.ID))
		return
	}
	if err := mc.Store.UpsertMenuItem(item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenu (admin)
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id := c.Param("id")
	if item.ID != "" && item.ID != id {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menu item id mismatch"))
		return
	}
	item.ID = id

	if _, exists := mc.Store.MenuItemByID(id); !exists {
		utils.RespondError(c, http.StatusNotFound, services.ErrMenuItemNotFound)
		return
	}
	if err := mc.Store.UpsertMenuItem(item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenu (admin). Orders keep their own item snapshots, so removing
// a menu item never changes order history.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	if err := mc.Store.DeleteMenuItem(c.Param("id")); err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", nil)
}

// ReplaceMenus (admin) swaps the whole catalog, the way the content
// editor saves it.
func (mc *MenuController) ReplaceMenus(c *gin.Context) {
	var items []models.MenuItem
	if err := c.ShouldBindJSON(&items); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := mc.Store.ReplaceMenuItems(items); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu replaced", items)
}
