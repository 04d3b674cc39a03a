package middleware

import (
	"errors"
	"strings"

	"cms-api/internal/models"
	"cms-api/internal/security"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"gorm.io/gorm"
)

// UserKey is the locals key under which the authenticated user is stored
const UserKey = "currentUser"

// UserLookup resolves a token subject to an account.
// It must return gorm.ErrRecordNotFound for unknown subjects.
type UserLookup func(email string) (*models.User, error)

// AuthMiddleware gates mutating endpoints behind bearer-token checks
type AuthMiddleware struct {
	secret   []byte
	findUser UserLookup
}

// New creates an auth middleware with the given signing secret and user lookup
func New(secret []byte, findUser UserLookup) *AuthMiddleware {
	return &AuthMiddleware{
		secret:   secret,
		findUser: findUser,
	}
}

// Protected requires a valid token belonging to an active account
func (m *AuthMiddleware) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, errResp := m.authenticate(c)
		if user == nil {
			return errResp
		}
		c.Locals(UserKey, user)
		return c.Next()
	}
}

// AdminOnly requires a valid token belonging to an active administrator
func (m *AuthMiddleware) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, errResp := m.authenticate(c)
		if user == nil {
			return errResp
		}
		if !user.IsAdmin {
			return httpx.SendResponse(c, httpx.Forbidden("Not enough permissions"))
		}
		c.Locals(UserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by the gate, if any
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}

// authenticate runs the token, lookup and active checks. On failure it
// writes the response and returns a nil user.
func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*models.User, error) {
	token := bearerToken(c)
	if token == "" {
		return nil, httpx.SendResponse(c, httpx.Unauthorized("Missing or malformed authorization header"))
	}

	email, err := security.VerifyToken(token, m.secret)
	if err != nil {
		return nil, httpx.SendResponse(c, httpx.Unauthorized("Could not validate credentials"))
	}

	user, err := m.findUser(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httpx.SendResponse(c, httpx.Unauthorized("Could not validate credentials"))
		}
		return nil, httpx.SendResponse(c, httpx.InternalServerError("Failed to load user", err))
	}

	if !user.IsActive {
		return nil, httpx.SendResponse(c, httpx.Forbidden("Inactive user"))
	}

	return user, nil
}

// bearerToken extracts the credential from the Authorization header
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
