package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/astrenrest/storefront/config"
	"github.com/astrenrest/storefront/database"
	"github.com/astrenrest/storefront/utils"
)

func setupFullRouter(t *testing.T) *gin.Engine {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&database.StateBlob{}))

	cfg := config.Config{
		AdminPassword: "150150",
	}
	return SetupRouter(db, cfg)
}

type apiResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

// TestStorefrontJourney walks the whole order-and-loyalty workflow the
// way the storefront drives it: browse, log in, fill the cart in JOD,
// check out, then approve the points from the admin panel.
func TestStorefrontJourney(t *testing.T) {
	r := setupFullRouter(t)

	// Seeded catalog is served publicly.
	w, _ := doJSON(t, r, http.MethodGet, "/menus", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Log in as the seeded customer (150 points).
	w, resp := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"phone":    "1234567890",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := resp.Data["token"].(string)

	// Start a session and switch it to JOD.
	w, _ = doJSON(t, r, http.MethodGet, "/cart", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := w.Header().Get("X-Session-Id")
	require.NotEmpty(t, session)

	sessionHeaders := map[string]string{"X-Session-Id": session}
	w, _ = doJSON(t, r, http.MethodPut, "/session/currency", map[string]string{"currency": "jod"}, sessionHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	// Wagyu filet: 53.25 JOD.
	w, _ = doJSON(t, r, http.MethodPost, "/cart/items", map[string]string{"menu_id": "3"}, sessionHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	// Place the order through the authenticated gate.
	checkoutHeaders := map[string]string{
		"X-Session-Id":  session,
		"Authorization": "Bearer " + token,
	}
	w, resp = doJSON(t, r, http.MethodPost, "/orders", map[string]string{
		"name":  "Loyal Customer",
		"email": "loyal@example.com",
		"phone": "1234567890",
		"date":  "2026-09-02",
		"time":  "20:00",
	}, checkoutHeaders)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := resp.Data["id"].(string)
	assert.Equal(t, 53.25, resp.Data["totalPrice"].(map[string]interface{})["value"])

	// The admin surface is locked without the shared secret.
	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%s/points", orderID), nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminHeaders := map[string]string{"X-Admin-Password": "150150"}
	w, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%s/points", orderID), nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp.Data["awarded"])

	// floor(53.25) = 53 points on top of the seeded 150.
	user := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, float64(203), user["loyaltyPoints"])

	// Approving again is a no-op.
	w, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/admin/orders/%s/points", orderID), nil, adminHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp.Data["awarded"])

	// The refreshed balance is visible to the customer immediately.
	w, resp = doJSON(t, r, http.MethodGet, "/profile", nil, checkoutHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(203), resp.Data["loyaltyPoints"])
}

func TestAdminContentValidation(t *testing.T) {
	r := setupFullRouter(t)
	adminHeaders := map[string]string{"X-Admin-Password": "150150"}

	// Fetch current content, then try a duplicate featured selection.
	w, _ := doJSON(t, r, http.MethodGet, "/content", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var current struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	current.Data["featuredDishIds"] = []string{"1", "1", "3"}

	w, _ = doJSON(t, r, http.MethodPut, "/admin/content", current.Data, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	current.Data["featuredDishIds"] = []string{"2", "1", "3"}
	w, _ = doJSON(t, r, http.MethodPut, "/admin/content", current.Data, adminHeaders)
	assert.Equal(t, http.StatusOK, w.Code)
}
