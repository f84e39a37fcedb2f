package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrenrest/storefront/models"
	"github.com/astrenrest/storefront/services"
	"github.com/astrenrest/storefront/utils"
)

// ContentController serves and edits the operator-managed records:
// site content, gallery images and social links, plus the loyalty
// overview for the admin panel.
type ContentController struct {
	Store *services.AppStore
}

func NewContentController(store *services.AppStore) *ContentController {
	return &ContentController{Store: store}
}

// GetSiteContent
func (cc *ContentController) GetSiteContent(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Site content", cc.Store.SiteContent())
}

// UpdateSiteContent (admin). Rejects duplicate featured selections and
// negative notification frequencies without applying anything.
func (cc *ContentController) UpdateSiteContent(c *gin.Context) {
	var content models.SiteContent
	if err := c.ShouldBindJSON(&content); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := cc.Store.UpdateSiteContent(content); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Site content updated", content)
}

// GetGallery
func (cc *ContentController) GetGallery(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Gallery images", cc.Store.GalleryImages())
}

// ReplaceGallery (admin)
func (cc *ContentController) ReplaceGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := c.ShouldBindJSON(&images); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	cc.Store.ReplaceGalleryImages(images)
	utils.RespondJSON(c, http.StatusOK, "Gallery updated", images)
}

// GetSocialLinks
func (cc *ContentController) GetSocialLinks(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Social links", cc.Store.SocialLinks())
}

// ReplaceSocialLinks (admin)
func (cc *ContentController) ReplaceSocialLinks(c *gin.Context) {
	var links []models.SocialLink
	if err := c.ShouldBindJSON(&links); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	cc.Store.ReplaceSocialLinks(links)
	utils.RespondJSON(c, http.StatusOK, "Social links updated", links)
}

// ListUsers (admin) backs the loyalty tab: accounts and their point
// balances, passwords stripped.
func (cc *ContentController) ListUsers(c *gin.Context) {
	users := cc.Store.Users()
	public := make([]models.User, len(users))
	for i, u := range users {
		public[i] = u.Public()
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", public)
}
