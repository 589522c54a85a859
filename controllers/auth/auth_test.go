package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"jumly/config"
	"jumly/database"
	"jumly/models"
	authRoutes "jumly/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4, // keep bcrypt cheap in tests
	}

	dsn := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSignup(t *testing.T) {
	app, db := setupAuthApp(t)

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	resp.Body.Close()
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)

	// A credential account with a hashed password sits behind the user
	var account models.Account
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&account).Error)
	assert.Equal(t, "credential", account.ProviderID)
	assert.NotEqual(t, "supersecret", account.Password)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupAuthApp(t)

	body := map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "supersecret",
	}

	resp := postJSON(t, app, "/auth/signup", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/auth/signup", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()
	assert.Equal(t, "Email is already registered", payload["error"])
}

func TestSignupRejectsShortPassword(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginAndMe(t *testing.T) {
	app, db := setupAuthApp(t)

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginBody struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginBody))
	resp.Body.Close()
	require.NotEmpty(t, loginBody.Token)

	// Login opened a server-side session for the user
	var sessionCount int64
	require.NoError(t, db.Model(&models.Session{}).Where("user_id = ?", loginBody.User.ID).Count(&sessionCount).Error)
	assert.Equal(t, int64(1), sessionCount)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginBody.Token)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	var me models.User
	require.NoError(t, json.NewDecoder(meResp.Body).Decode(&me))
	meResp.Body.Close()
	assert.Equal(t, loginBody.User.ID, me.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrongsecret",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
