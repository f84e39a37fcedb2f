package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/astrenrest/storefront/database"
	"github.com/astrenrest/storefront/middlewares"
	"github.com/astrenrest/storefront/services"
	"github.com/astrenrest/storefront/utils"
)

// setupTestRouter wires only the endpoints under test against an
// in-memory SQLite blob store, mirroring the production wiring.
func setupTestRouter(t *testing.T) (*gin.Engine, *services.AppStore) {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&database.StateBlob{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	storage := services.NewStorageService(db)
	store := services.NewAppStore(storage)
	sessions := services.NewSessionManager()

	authCtrl := NewAuthController(services.NewAuthService(store), store)
	cartCtrl := NewCartController(store)
	orderCtrl := NewOrderController(services.NewOrderService(store), store)
	notificationCtrl := NewNotificationController(services.NewNotificationService(store, storage))

	r := gin.New()
	r.POST("/auth/login", authCtrl.Login)
	r.POST("/auth/signup", authCtrl.Signup)

	session := r.Group("/")
	session.Use(middlewares.SessionMiddleware(sessions))
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		session.PUT("/session/currency", cartCtrl.SetCurrency)
		session.GET("/notifications/banner", notificationCtrl.GetBanner)
		session.POST("/notifications/dismiss", notificationCtrl.DismissBanner)

		checkout := session.Group("/")
		checkout.Use(middlewares.AuthMiddleware())
		checkout.POST("/orders", orderCtrl.PlaceOrder)
	}

	return r, store
}

type testClient struct {
	t         *testing.T
	router    *gin.Engine
	sessionID string
	token     string
}

func (tc *testClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	tc.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			tc.t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tc.sessionID != "" {
		req.Header.Set("X-Session-Id", tc.sessionID)
	}
	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	if id := w.Header().Get("X-Session-Id"); id != "" {
		tc.sessionID = id
	}
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out.Data
}
