package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cms-api/internal/models"
	"cms-api/internal/security"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

func lookupFrom(users map[string]*models.User) UserLookup {
	return func(email string) (*models.User, error) {
		user, ok := users[email]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return user, nil
	}
}

func testApp(t *testing.T, users map[string]*models.User) *fiber.App {
	t.Helper()
	auth := New(testSecret, lookupFrom(users))

	app := fiber.New()
	app.Get("/protected", auth.Protected(), func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).Email)
	})
	app.Post("/admin", auth.AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func issueToken(t *testing.T, email string, ttl time.Duration) string {
	t.Helper()
	token, err := security.CreateAccessToken(email, testSecret, ttl)
	require.NoError(t, err)
	return token
}

func TestMissingTokenUnauthorized(t *testing.T) {
	app := testApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMalformedHeaderUnauthorized(t *testing.T) {
	app := testApp(t, nil)

	for _, header := range []string{"garbage", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestExpiredTokenUnauthorized(t *testing.T) {
	users := map[string]*models.User{
		"admin@example.com": {Email: "admin@example.com", IsAdmin: true, IsActive: true},
	}
	app := testApp(t, users)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "admin@example.com", -time.Minute))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnknownSubjectUnauthorized(t *testing.T) {
	app := testApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "ghost@example.com", time.Minute))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInactiveUserForbidden(t *testing.T) {
	users := map[string]*models.User{
		"sleeper@example.com": {Email: "sleeper@example.com", IsAdmin: true, IsActive: false},
	}
	app := testApp(t, users)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "sleeper@example.com", time.Minute))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestNonAdminForbidden(t *testing.T) {
	users := map[string]*models.User{
		"viewer@example.com": {Email: "viewer@example.com", IsAdmin: false, IsActive: true},
	}
	app := testApp(t, users)

	// Admin-only endpoint rejects the valid token
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "viewer@example.com", time.Minute))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The plain gate still admits it
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "viewer@example.com", time.Minute))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminAllowed(t *testing.T) {
	users := map[string]*models.User{
		"admin@example.com": {Email: "admin@example.com", IsAdmin: true, IsActive: true},
	}
	app := testApp(t, users)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "admin@example.com", time.Minute))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
