package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "MONGODB_URI", "MONGODB_DB", "SERVERLESS",
		"FRONTEND_URL", "ALLOWED_ORIGINS", "EMAIL_FROM_ADDRESS", "EMAIL_RECIPIENT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "cinesine", cfg.MongoDB)
	assert.False(t, cfg.Serverless)
	assert.True(t, cfg.IsDevelopment())
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
	assert.Contains(t, cfg.CORS.AllowedOrigins, "https://cinesinev1f.vercel.app")
	assert.Equal(t, "cinesinev1f", cfg.CORS.PreviewPrefix)
	assert.Equal(t, ".vercel.app", cfg.CORS.PreviewSuffix)
	assert.Equal(t, cfg.Email.FromAddress, cfg.Email.Recipient)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("SERVERLESS", "true")
	t.Setenv("FRONTEND_URL", "https://cinesine.com")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("EMAIL_RECIPIENT", "owner@cinesine.com")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.True(t, cfg.Serverless)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "https://cinesine.com")
	assert.Contains(t, cfg.CORS.AllowedOrigins, "https://a.example.com")
	assert.Contains(t, cfg.CORS.AllowedOrigins, "https://b.example.com")
	assert.Equal(t, "owner@cinesine.com", cfg.Email.Recipient)
}
