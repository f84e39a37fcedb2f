package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/astrenrest/storefront/models"
)

// Session holds the state that lives and dies with one browsing
// session: the cart, the selected display currency and the
// session-scoped banner dismissal flag. None of it survives a restart.
type Session struct {
	ID string

	mu              sync.Mutex
	cart            *Cart
	currency        models.Currency
	bannerDismissed bool
}

func (s *Session) AddToCart(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item)
}

func (s *Session) UpdateCartQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(itemID, quantity)
}

func (s *Session) CartItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *Session) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

func (s *Session) CartTotal(cur models.Currency) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total(cur)
}

// snapshotAndClear atomically copies the cart contents, empties the
// cart and reports the total in the given currency. Order placement
// uses it so the priced snapshot and the cleared cart are one step.
func (s *Session) snapshotAndClear(cur models.Currency) ([]models.CartItem, float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.IsEmpty() {
		return nil, 0, false
	}
	items := s.cart.Items()
	total := s.cart.Total(cur)
	s.cart.Clear()
	return items, total, true
}

func (s *Session) Currency() models.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

func (s *Session) SetCurrency(cur models.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = cur
}

func (s *Session) BannerDismissed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bannerDismissed
}

func (s *Session) SetBannerDismissed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bannerDismissed = true
}

// SessionManager tracks live sessions by opaque id.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *SessionManager) Create() *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		cart:     NewCart(),
		currency: models.CurrencyUSD,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return sess
}

// GetOrCreate returns the session for id, or a fresh one when the id is
// unknown or empty.
func (m *SessionManager) GetOrCreate(id string) *Session {
	if id != "" {
		if sess, ok := m.Get(id); ok {
			return sess
		}
	}
	return m.Create()
}
