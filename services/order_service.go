package services

import (
	"strconv"
	"sync"
	"time"

	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/utils"
)

// OrderDetails carries the checkout form fields.
type OrderDetails struct {
	Name    string
	Email   string
	Phone   string
	Date    string
	Time    string
	Message string
}

// OrderService turns a session cart into a placed order and drives the
// loyalty award workflow.
type OrderService struct {
	store *AppStore
	now   func() time.Time

	mu     sync.Mutex
	lastID int64
}

func NewOrderService(store *AppStore) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

// nextOrderID derives an id from the wall clock in milliseconds, bumped
// past the previous id when two orders land in the same millisecond.
func (s *OrderService) nextOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// PlaceOrder snapshots the session cart into a new order priced in the
// session currency, appends it and clears the cart. An empty cart is
// rejected with no state change. userPhone is nil for guest checkout.
func (s *OrderService) PlaceOrder(sess *Session, details OrderDetails, userPhone *string) (models.Order, error) {
	currency := sess.Currency()
	items, total, ok := sess.snapshotAndClear(currency)
	if !ok {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ID:      s.nextOrderID(),
		Name:    details.Name,
		Email:   details.Email,
		Phone:   details.Phone,
		Date:    details.Date,
		Time:    details.Time,
		Message: details.Message,
		Items:   items,
		Total: models.TotalPrice{
			Value:    total,
			Currency: currency,
		},
		UserID:        userPhone,
		PointsAwarded: false,
	}

	s.store.AppendOrder(order)
	utils.InfoLogger.Printf("Order %s placed, total %s", order.ID, utils.FormatPrice(total, currency))
	return order, nil
}

// AwardPoints runs the at-most-once accrual for the order. The second
// return value reports whether an award actually happened; callers
// treat false as a normal no-op, not an error.
func (s *OrderService) AwardPoints(orderID string) (models.User, bool) {
	return s.store.AwardPoints(orderID)
}
