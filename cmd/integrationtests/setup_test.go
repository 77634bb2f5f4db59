package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	catalog "listing-service/internal/catalogService"
	"listing-service/internal/config"
	"listing-service/internal/database"
	model "listing-service/internal/models"
	product "listing-service/internal/productService"
	"listing-service/internal/repository"
	"listing-service/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Seeded users
const (
	adminID int64 = 1
	aliceID int64 = 7
	bobID   int64 = 9
)

var seededUsers = []model.User{
	{ID: adminID, Username: "admin", IsAdmin: true},
	{ID: aliceID, Username: "alice"},
	{ID: bobID, Username: "bob"},
}

// backend builds a fresh store for one test
type backend struct {
	name string
	open func(t *testing.T) repository.Store
}

// backends lists every store the API is exercised against
var backends = []backend{
	{name: "memory", open: func(t *testing.T) repository.Store { return repository.NewMemoryRepo() }},
	{name: "sqlite", open: openSQLite},
}

func openSQLite(t *testing.T) repository.Store {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		DSN:             fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return repository.NewGormRepo(db)
}

// SetupTestRouter initializes the router over store seeded with the test users
func SetupTestRouter(t *testing.T, store repository.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	for _, u := range seededUsers {
		_, err := store.AddUser(context.Background(), u)
		require.NoError(t, err)
	}

	return server.SetupRouter(
		catalog.NewCatalogService(store),
		product.NewProductService(store),
		store,
	)
}

// ExecuteRequestAndParse executes an HTTP request as userID (0 for anonymous)
// and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, userID int64, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(server.UserIDHeader, strconv.FormatInt(userID, 10))
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// validPayload is a complete create/update body
func validPayload(name string) map[string]any {
	return map[string]any{
		"name":          name,
		"description":   name + " description",
		"pictureUrl":    "http://x/" + name + ".png",
		"category":      "Home",
		"originalPrice": 15,
		"endDate":       "2030-06-01T12:00:00Z",
	}
}

// createProduct creates a product as userID and returns its id
func createProduct(t *testing.T, router *gin.Engine, userID int64, name string) int64 {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, userID, "POST", "/products", validPayload(name))
	require.Equal(t, 201, w.Code, w.Body.String())
	data := resp["data"].(map[string]any)
	return int64(data["id"].(float64))
}

// forEachBackend runs fn once per store with a freshly seeded router
func forEachBackend(t *testing.T, fn func(t *testing.T, router *gin.Engine, store repository.Store)) {
	for _, b := range backends {
		b := b
		t.Run(b.name, func(t *testing.T) {
			store := b.open(t)
			router := SetupTestRouter(t, store)
			fn(t, router, store)
		})
	}
}
