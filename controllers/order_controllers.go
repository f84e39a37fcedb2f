package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrenrest/storefront/middlewares"
	"github.com/astrenrest/storefront/services"
	"github.com/astrenrest/storefront/utils"
)

type OrderController struct {
	Orders *services.OrderService
	Store  *services.AppStore
}

func NewOrderController(orders *services.OrderService, store *services.AppStore) *OrderController {
	return &OrderController{Orders: orders, Store: store}
}

type placeOrderRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Message string `json:"message"`
}

// PlaceOrder snapshots the session cart into an order. The route sits
// behind the auth middleware, so the order is always tied to the
// authenticated customer's phone.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var userPhone *string
	if phone := c.GetString("phone"); phone != "" {
		userPhone = &phone
	}

	sess := middlewares.SessionFromContext(c)
	order, err := oc.Orders.PlaceOrder(sess, services.OrderDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time,
		Message: req.Message,
	}, userPhone)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondError(c, http.StatusBadRequest, err)
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully", order)
}

// ListOrders (admin)
func (oc *OrderController) ListOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Store.Orders())
}

// AwardPoints (admin) approves the loyalty accrual for an order. The
// workflow is idempotent: unknown, already-awarded, non-JOD and guest
// orders are quiet no-ops, so repeated clicks cannot double-award.
func (oc *OrderController) AwardPoints(c *gin.Context) {
	user, awarded := oc.Orders.AwardPoints(c.Param("id"))
	if !awarded {
		utils.RespondJSON(c, http.StatusOK, "No points awarded", gin.H{
			"awarded": false,
		})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Points awarded", gin.H{
		"awarded": true,
		"user":    user.Public(),
	})
}
