package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/farmstay/farmstay-server/internal/api"
	"github.com/farmstay/farmstay-server/internal/config"
	"github.com/farmstay/farmstay-server/internal/repository"
	"github.com/farmstay/farmstay-server/internal/seed"
	"github.com/farmstay/farmstay-server/internal/service"
	"github.com/farmstay/farmstay-server/internal/store"
	"github.com/farmstay/farmstay-server/internal/utils"
)

// Seed account ids and credentials used throughout the API tests.
const (
	CustomerID       = "1"
	CustomerEmail    = "john@example.com"
	CustomerPassword = "password123"
	OwnerID          = "2"
	OwnerEmail       = "owner@farmhouse.com"
	OwnerPassword    = "owner123"
)

// TestContext holds all dependencies for tests
type TestContext struct {
	Router        *gin.Engine
	Sessions      *store.SessionStore
	Data          *store.DataStore
	Service       service.Service
	JWTSecret     []byte
	CustomerToken string
	OwnerToken    string
}

// SetupTestContext creates a new test context with initialized
// dependencies backed by a fresh storage file
func SetupTestContext(t *testing.T) *TestContext {
	cfg := config.LoadConfig()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "state.db")
	cfg.Auth.JWTSecret = "test-secret-key"

	db, err := config.SetupDatabase(cfg)
	require.NoError(t, err, "Failed to set up test storage")
	t.Cleanup(func() { db.Close() })

	repo := repository.NewSQLiteRepository(db)
	log := utils.NewLogger()
	ctx := context.Background()

	sessions, err := store.NewSessionStore(ctx, repo, seed.Users(), log)
	require.NoError(t, err, "Failed to initialize session store")

	data, err := store.NewDataStore(ctx, repo, seed.Farmhouses(), log)
	require.NoError(t, err, "Failed to initialize data store")

	svc := service.NewDefaultService(sessions, data, cfg.Auth.JWTSecret)
	handler := api.NewHandler(svc)

	gin.SetMode(gin.TestMode)
	router := gin.Default()

	// Add middleware for JWT secret
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(cfg.Auth.JWTSecret))
		c.Next()
	})

	handler.SetupRoutes(router)

	return &TestContext{
		Router:        router,
		Sessions:      sessions,
		Data:          data,
		Service:       svc,
		JWTSecret:     []byte(cfg.Auth.JWTSecret),
		CustomerToken: generateToken(t, cfg.Auth.JWTSecret, CustomerID),
		OwnerToken:    generateToken(t, cfg.Auth.JWTSecret, OwnerID),
	}
}

func generateToken(t *testing.T, jwtSecret, userID string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err, "Failed to generate JWT token")

	return tokenString
}

// PerformRequest executes an HTTP request against the router
func PerformRequest(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer

	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// AuthHeaders returns headers with Authorization token
func AuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}

// DecodeResponse unmarshals a recorded JSON response body into out
func DecodeResponse(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "Failed to decode response body")
}
