package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// UploadConfig holds upload storage and validation settings
type UploadConfig struct {
	Dir               string              `yaml:"dir"`
	MaxFileSize       int64               `yaml:"max_file_size"`
	AllowedExtensions map[string][]string `yaml:"allowed_extensions"`
}

// IsAllowed reports whether an extension is permitted for the given
// category. An empty category checks the union of all categories.
func (c UploadConfig) IsAllowed(ext, category string) bool {
	if category != "" {
		for _, allowed := range c.AllowedExtensions[category] {
			if ext == allowed {
				return true
			}
		}
		return false
	}
	for _, extensions := range c.AllowedExtensions {
		for _, allowed := range extensions {
			if ext == allowed {
				return true
			}
		}
	}
	return false
}

// AuthConfig holds token signing settings
type AuthConfig struct {
	Secret   []byte
	TokenTTL time.Duration
}

// MainConfig holds the root configuration
type MainConfig struct {
	Uploads UploadConfig `yaml:"uploads"`
	Auth    AuthConfig   `yaml:"-"`
}

var (
	Config MainConfig
)

// LoadConfig loads the configuration from config/uploads.yaml and the environment
func LoadConfig() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	// Read config file
	data, err := os.ReadFile("config/uploads.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	// Token settings come from the environment
	ttl, err := strconv.Atoi(config.GetEnv("JWT_TTL_MINUTES"))
	if err != nil {
		return fmt.Errorf("invalid JWT_TTL_MINUTES: %w", err)
	}
	cfg.Auth = AuthConfig{
		Secret:   []byte(config.GetEnv("JWT_SECRET")),
		TokenTTL: time.Duration(ttl) * time.Minute,
	}

	// Store config globally
	Config = cfg

	log.Println("Configuration loaded successfully from config/uploads.yaml")
	return nil
}

// GetConfig returns the current configuration
func GetConfig() MainConfig {
	return Config
}
