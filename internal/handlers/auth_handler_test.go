package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cms-api/internal/config"
	"cms-api/internal/database"
	"cms-api/internal/security"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	database.DB = gdb

	config.Config = config.MainConfig{
		Auth: config.AuthConfig{
			Secret:   []byte("test-secret"),
			TokenTTL: 30 * time.Minute,
		},
	}

	handler := NewAuthHandler()
	app := fiber.New()
	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	return app, mock
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func userRows(t *testing.T, password string, isActive bool) *sqlmock.Rows {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at",
		"email", "hashed_password", "full_name", "is_admin", "is_active",
	}).AddRow(
		uuid.New(), time.Now(), time.Now(),
		"admin@example.com", hash, "Admin", true, isActive,
	)
}

func TestLoginSuccess(t *testing.T) {
	app, mock := setupAuthTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(t, "correct-horse", true))

	resp := postJSON(t, app, "/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "correct-horse",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "access_token")
	assert.Contains(t, string(body), "bearer")
}

func TestLoginWrongPassword(t *testing.T) {
	app, mock := setupAuthTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(t, "correct-horse", true))

	resp := postJSON(t, app, "/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "battery-staple",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	app, mock := setupAuthTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp := postJSON(t, app, "/login", fiber.Map{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginInactiveUser(t *testing.T) {
	app, mock := setupAuthTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(t, "correct-horse", false))

	resp := postJSON(t, app, "/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "correct-horse",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, mock := setupAuthTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(t, "correct-horse", true))

	resp := postJSON(t, app, "/register", fiber.Map{
		"email":    "admin@example.com",
		"password": "new-password-123",
		"fullName": "Second Admin",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterRejectsInvalidBody(t *testing.T) {
	app, _ := setupAuthTest(t)

	resp := postJSON(t, app, "/register", fiber.Map{
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
