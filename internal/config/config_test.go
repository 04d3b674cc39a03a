package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testUploadConfig() UploadConfig {
	return UploadConfig{
		AllowedExtensions: map[string][]string{
			"image":    {"jpg", "png"},
			"document": {"pdf"},
		},
	}
}

func TestIsAllowedByCategory(t *testing.T) {
	cfg := testUploadConfig()

	assert.True(t, cfg.IsAllowed("jpg", "image"))
	assert.False(t, cfg.IsAllowed("pdf", "image"))
	assert.True(t, cfg.IsAllowed("pdf", "document"))
	assert.False(t, cfg.IsAllowed("jpg", "unknown"))
}

func TestIsAllowedUnion(t *testing.T) {
	cfg := testUploadConfig()

	// Empty category checks the union of all categories
	assert.True(t, cfg.IsAllowed("jpg", ""))
	assert.True(t, cfg.IsAllowed("pdf", ""))
	assert.False(t, cfg.IsAllowed("exe", ""))
	assert.False(t, cfg.IsAllowed("", ""))
}
