package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrenrest/storefront/services"
	"github.com/astrenrest/storefront/utils"
)

type AuthController struct {
	Auth  *services.AuthService
	Store *services.AppStore
}

func NewAuthController(auth *services.AuthService, store *services.AppStore) *AuthController {
	return &AuthController{Auth: auth, Store: store}
}

type credentialsRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login -> exact credential match, returns JWT for the checkout gate.
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, token, err := ac.Auth.Login(req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondError(c, http.StatusUnauthorized, err)
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// Signup registers a new customer account and authenticates it in the
// same step.
func (ac *AuthController) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, token, err := ac.Auth.Signup(req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrPhoneTaken) {
			utils.RespondError(c, http.StatusConflict, err)
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Account created", gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// GetProfile returns the authenticated customer's account, with the
// current loyalty balance.
func (ac *AuthController) GetProfile(c *gin.Context) {
	phone := c.GetString("phone")
	user, ok := ac.Store.UserByPhone(phone)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("account not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profile", user.Public())
}
