// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service. It is built once at
// startup and passed explicitly to the components that need it.
type Config struct {
	Port   string
	AppEnv string

	// Media storage
	MediaRoot     string   // base directory all stored files live under
	AllowedExt    []string // lower-cased extensions accepted for upload
	MaxUploadMB   int64    // request body cap for uploads, in MiB
	UploadToken   string   // shared bearer secret for admin endpoints; empty disables auth
	PublicBaseURL string   // browser-accessible base, e.g. "https://storage.grupoupper.com.br"

	// CORS origins reflected on served media; ["*"] allows any
	AllowedOrigins []string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		MediaRoot:     getEnv("MEDIA_ROOT", "/app/media"),
		AllowedExt:    splitCSV(strings.ToLower(getEnv("ALLOWED_MEDIA_EXT", "mp4,webm,mov,m4v,avi,jpg,jpeg,png,webp"))),
		MaxUploadMB:   getEnvInt64("MAX_UPLOAD_MB", 400),
		UploadToken:   getEnv("UPLOAD_TOKEN", ""),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "https://storage.grupoupper.com.br"), "/"),

		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

// MaxUploadBytes returns the upload body cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
