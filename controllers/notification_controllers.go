package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrenrest/storefront/middlewares"
	"github.com/astrenrest/storefront/services"
	"github.com/astrenrest/storefront/utils"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// GetBanner reports whether the promo banner should be shown to this
// session, along with its display settings.
func (nc *NotificationController) GetBanner(c *gin.Context) {
	sess := middlewares.SessionFromContext(c)
	settings, visible := nc.Notifications.Banner(sess)

	utils.RespondJSON(c, http.StatusOK, "Notification banner", gin.H{
		"visible":          visible,
		"text":             settings.Text,
		"image_url":        settings.ImageURL,
		"background_color": settings.BackgroundColor,
	})
}

// DismissBanner records the dismissal in the scope the current policy
// selects (session flag or durable timestamp).
func (nc *NotificationController) DismissBanner(c *gin.Context) {
	sess := middlewares.SessionFromContext(c)
	nc.Notifications.Dismiss(sess)
	utils.RespondJSON(c, http.StatusOK, "Notification dismissed", nil)
}
