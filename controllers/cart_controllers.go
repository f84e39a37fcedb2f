package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrenrest/storefront/middlewares"
	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/services"
	"github.com/astrenrest/storefront/utils"
)

type CartController struct {
	Store *services.AppStore
}

func NewCartController(store *services.AppStore) *CartController {
	return &CartController{Store: store}
}

func cartView(sess *services.Session) gin.H {
	currency := sess.Currency()
	return gin.H{
		"items":      sess.CartItems(),
		"item_count": sess.CartItemCount(),
		"currency":   currency,
		"total":      sess.CartTotal(currency),
	}
}

// GetCart
func (cc *CartController) GetCart(c *gin.Context) {
	sess := middlewares.SessionFromContext(c)
	utils.RespondJSON(c, http.StatusOK, "Cart", cartView(sess))
}

// AddItem puts one unit of a menu item in the cart, stacking onto an
// existing line for the same item.
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuID string `json:"menu_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, ok := cc.Store.MenuItemByID(req.MenuID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrMenuItemNotFound)
		return
	}

	sess := middlewares.SessionFromContext(c)
	sess.AddToCart(item)
	utils.RespondJSON(c, http.StatusOK, item.Name.En+" added to cart", cartView(sess))
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess := middlewares.SessionFromContext(c)
	sess.UpdateCartQuantity(c.Param("id"), *req.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cartView(sess))
}

// SetCurrency switches the session's display currency.
func (cc *CartController) SetCurrency(c *gin.Context) {
	var req struct {
		Currency string `json:"currency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cur, err := models.ParseCurrency(req.Currency)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess := middlewares.SessionFromContext(c)
	sess.SetCurrency(cur)
	utils.RespondJSON(c, http.StatusOK, "Currency updated", cartView(sess))
}

// GetTotal prices the cart in an explicit currency without changing the
// session's selection.
func (cc *CartController) GetTotal(c *gin.Context) {
	sess := middlewares.SessionFromContext(c)

	currency := sess.Currency()
	if q := c.Query("currency"); q != "" {
		cur, err := models.ParseCurrency(q)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		currency = cur
	}

	total := sess.CartTotal(currency)
	utils.RespondJSON(c, http.StatusOK, "Cart total", gin.H{
		"currency":  currency,
		"total":     total,
		"formatted": utils.FormatPrice(total, currency),
	})
}
