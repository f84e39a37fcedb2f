package services

import (
	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/utils"
)

// AuthService is the identity gate in front of checkout. Credentials
// are compared by exact match against the stored account record.
type AuthService struct {
	store *AppStore
}

func NewAuthService(store *AppStore) *AuthService {
	return &AuthService{store: store}
}

// Login authenticates by exact phone and password match and returns the
// user with a session token. No state changes on failure.
func (a *AuthService) Login(phone, password string) (models.User, string, error) {
	user, ok := a.store.UserByPhone(phone)
	if !ok || user.Password != password {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Phone)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Signup registers a new account with zero loyalty points and
// immediately authenticates it. A phone that is already registered is
// rejected and the users collection is left untouched.
func (a *AuthService) Signup(phone, password string) (models.User, string, error) {
	user, err := a.store.CreateUser(phone, password)
	if err != nil {
		return models.User{}, "", err
	}

	utils.InfoLogger.Printf("New customer registered: %s (id=%d)", user.Phone, user.ID)

	token, err := utils.GenerateToken(user.ID, user.Phone)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
