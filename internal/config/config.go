package config

import (
	"os"
	"strings"
)

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	// Recipient overrides where contact notifications are delivered.
	// Falls back to FromAddress when empty.
	Recipient string
}

type CORSConfig struct {
	AllowedOrigins []string
	// Preview deployments are allowed when the origin host starts with
	// PreviewPrefix and ends with PreviewSuffix (e.g. cinesinev1f-pr-42.vercel.app).
	PreviewPrefix string
	PreviewSuffix string
}

type Config struct {
	Env        string
	Port       string
	MongoURI   string
	MongoDB    string
	Serverless bool
	CORS       CORSConfig
	Email      EmailConfig
}

func Load() *Config {
	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "5000"),
		MongoURI:   os.Getenv("MONGODB_URI"),
		MongoDB:    getEnv("MONGODB_DB", "cinesine"),
		Serverless: os.Getenv("SERVERLESS") == "true",
	}

	cfg.CORS.AllowedOrigins = []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"https://cinesinev1f.vercel.app",
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, frontend)
	}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
	}
	cfg.CORS.PreviewPrefix = getEnv("PREVIEW_ORIGIN_PREFIX", "cinesinev1f")
	cfg.CORS.PreviewSuffix = getEnv("PREVIEW_ORIGIN_SUFFIX", ".vercel.app")

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "noreply@cinesine.com")
	cfg.Email.Recipient = getEnv("EMAIL_RECIPIENT", cfg.Email.FromAddress)

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
