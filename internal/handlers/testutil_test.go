package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/telconl/catalog-api/internal/auth"
	"github.com/telconl/catalog-api/internal/config"
	"github.com/telconl/catalog-api/internal/db"
	"github.com/telconl/catalog-api/internal/httperr"
	"github.com/telconl/catalog-api/internal/models"
	"github.com/telconl/catalog-api/internal/routes"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "handler-test-secret",
		ServerPort:  "8080",
		TokenTTL:    20 * time.Minute,
		CORSOrigins: []string{"*"},
	}
}

// setupRouter wires the full route stack against a per-test in-memory
// sqlite database. cache=shared keeps gorm's pooled connections on the
// same database.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(testDB))

	r := gin.New()
	routes.RegisterRoutes(r, testDB, testConfig())

	return r, testDB
}

// seedTestData loads the fixture the behavioral tests share: two customers
// (one with a login), an admin login, and three products.
func seedTestData(t *testing.T, testDB *gorm.DB) (linked, unlinked models.Customer) {
	hasher := auth.NewPasswordHasher()

	linked = models.Customer{
		Name: "test_name", Address: "test address",
		PhoneNumber: "1234567",
		BirthDate:   time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	unlinked = models.Customer{
		Name: "test_name2", Address: "test address2",
		PhoneNumber: "7654321",
		BirthDate:   time.Date(1999, 12, 12, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, testDB.Create(&linked).Error)
	require.NoError(t, testDB.Create(&unlinked).Error)

	for username, password := range map[string]string{"1234567": "test", "admin": "admin"} {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		require.NoError(t, testDB.Create(&models.User{Username: username, HashedPassword: hash}).Error)
	}

	products := []models.Product{
		{Name: "TestPhone1", Description: "Test Desc1", Category: "Mobile test", Price: 100},
		{Name: "TestPhone2", Description: "Test Desc2", Category: "Mobile test", Price: 50},
		{Name: "TestTV", Description: "Test Desc3", Category: "TV test", Price: 150},
	}
	require.NoError(t, testDB.Create(&products).Error)

	return linked, unlinked
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func formLogin(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// loginToken runs the form-encoded token exchange and returns the bearer
// token.
func loginToken(t *testing.T, r *gin.Engine, username, password string) string {
	rec := doRequest(r, formLogin(username, password))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "bearer", body["token_type"])
	require.NotEmpty(t, body["access_token"])

	return body["access_token"]
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func errMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	var e httperr.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Message
}
