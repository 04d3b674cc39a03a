package handlers

import (
	"errors"

	"cms-api/internal/config"
	"cms-api/internal/database"
	"cms-api/internal/models"
	"cms-api/internal/requests"
	"cms-api/internal/security"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"gorm.io/gorm"
)

// AuthHandler handles registration and login
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// tokenResponse is the login response payload
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account with a hashed credential
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.RegisterRequest](c)
	if input == nil {
		return errResp
	}

	if _, err := database.FindUserByEmail(input.Email); err == nil {
		return httpx.SendResponse(c, httpx.Conflict("Email already registered", gorm.ErrDuplicatedKey))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to check email", err))
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to hash password", err))
	}

	user := models.User{
		Email:          input.Email,
		HashedPassword: hash,
		FullName:       input.FullName,
		IsAdmin:        true,
		IsActive:       true,
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httpx.SendResponse(c, httpx.Conflict("Email already registered", err))
		}
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to create user", err))
	}

	return httpx.SendResponse(c, httpx.Created("User registered successfully", user))
}

// Login verifies credentials and issues a bearer token.
// Unknown emails and wrong passwords yield the same response.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.LoginRequest](c)
	if input == nil {
		return errResp
	}

	user, err := database.FindUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to fetch user", err))
	}
	if user == nil || !security.VerifyPassword(input.Password, user.HashedPassword) {
		return httpx.SendResponse(c, httpx.Unauthorized("Incorrect email or password"))
	}

	if !user.IsActive {
		return httpx.SendResponse(c, httpx.Forbidden("User is inactive"))
	}

	auth := config.GetConfig().Auth
	token, err := security.CreateAccessToken(user.Email, auth.Secret, auth.TokenTTL)
	if err != nil {
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to issue token", err))
	}

	return httpx.SendResponse(c, httpx.OK("Login successful", tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}))
}
