package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"workzo_backend/database"
	"workzo_backend/internal/app"
	"workzo_backend/internal/config"
	"workzo_backend/internal/logger"
	"workzo_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer holds an in-process router and the test database pool. Requests
// are served through ServeHTTP rather than a real listener so that each test
// can push its own transaction through the request context; DBMiddleware
// picks it up and every handler in the test runs inside it.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer connects to the database named by DATABASE_URL, runs
// migrations and builds the full router. Tests are skipped when
// DATABASE_URL is not set.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration-test-secret")
	}

	gin.SetMode(gin.TestMode)
	config.AppConfig = nil
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init("test")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestServer{
		Router: app.SetupRouter(cfg, db),
		DB:     db,
	}
}

// Begin opens a transaction that is rolled back when the test finishes, so
// tests never leak rows into each other.
func (ts *TestServer) Begin(t *testing.T) *gorm.DB {
	t.Helper()
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin test transaction: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func (ts *TestServer) Close() {
	sqlDB, err := ts.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// SendRequest performs an in-process request with tx bound to the request
// context. Returns the recorder and the response body as a string.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req.WithContext(ctx))

	return rec, rec.Body.String()
}
