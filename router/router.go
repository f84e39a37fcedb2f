package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/astrenrest/storefront/config"
	"github.com/astrenrest/storefront/controllers"
	"github.com/astrenrest/storefront/middlewares"
	"github.com/astrenrest/storefront/services"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	storage := services.NewStorageService(db)
	store := services.NewAppStore(storage)
	sessions := services.NewSessionManager()

	authSvc := services.NewAuthService(store)
	orderSvc := services.NewOrderService(store)
	notificationSvc := services.NewNotificationService(store, storage)
	pairingSvc := services.NewPairingService(cfg)

	authCtrl := controllers.NewAuthController(authSvc, store)
	menuCtrl := controllers.NewMenuController(store, pairingSvc)
	cartCtrl := controllers.NewCartController(store)
	orderCtrl := controllers.NewOrderController(orderSvc, store)
	contentCtrl := controllers.NewContentController(store)
	notificationCtrl := controllers.NewNotificationController(notificationSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:id", menuCtrl.GetMenu)
	r.GET("/menus/:id/pairing", menuCtrl.GetPairingSuggestion)
	r.GET("/gallery", contentCtrl.GetGallery)
	r.GET("/content", contentCtrl.GetSiteContent)
	r.GET("/social-links", contentCtrl.GetSocialLinks)

	// Rate limiter for login/signup
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/login", authCtrl.Login)
		auth.POST("/signup", authCtrl.Signup)
	}

	// ----------------------------------------------------------------
	//                      SESSION ROUTES
	// ----------------------------------------------------------------
	session := r.Group("/")
	session.Use(middlewares.SessionMiddleware(sessions))
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		session.GET("/cart/total", cartCtrl.GetTotal)
		session.PUT("/session/currency", cartCtrl.SetCurrency)

		session.GET("/notifications/banner", notificationCtrl.GetBanner)
		session.POST("/notifications/dismiss", notificationCtrl.DismissBanner)

		// Checkout is gated: no valid token, no order.
		checkout := session.Group("/")
		checkout.Use(middlewares.AuthMiddleware())
		{
			checkout.POST("/orders", orderCtrl.PlaceOrder)
			checkout.GET("/profile", authCtrl.GetProfile)
		}
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AdminGate(cfg.AdminPassword))
	{
		admin.GET("/orders", orderCtrl.ListOrders)
		admin.POST("/orders/:id/points", orderCtrl.AwardPoints)
		admin.GET("/users", contentCtrl.ListUsers)

		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.PUT("/menus", menuCtrl.ReplaceMenus)
		admin.PUT("/menus/:id", menuCtrl.UpdateMenu)
		admin.DELETE("/menus/:id", menuCtrl.DeleteMenu)

		admin.PUT("/content", contentCtrl.UpdateSiteContent)
		admin.PUT("/gallery", contentCtrl.ReplaceGallery)
		admin.PUT("/social-links", contentCtrl.ReplaceSocialLinks)
	}

	return r
}
