package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the full environment readout for cmd/api.
type Config struct {
	Port string

	// Postgres DSN. Empty means in-memory storage.
	DBDSN string

	// Path for the sqlite audit trail. Empty means in-memory audit log.
	AuditDBPath string

	// Blob store: memory (default), fs, s3.
	BlobDriver string
	BlobDir    string
	S3Bucket   string
	S3Region   string
	// Base URL prefix for uploaded media URLs (fs driver).
	MediaBaseURL string

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load reads .env (if present) and then the environment. Missing .env is
// fine; explicit env vars always win because godotenv does not override.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getenv("PORT", "5003"),
		DBDSN:        os.Getenv("DB_DSN"),
		AuditDBPath:  os.Getenv("AUDIT_DB_PATH"),
		BlobDriver:   getenv("BLOB_DRIVER", "memory"),
		BlobDir:      getenv("BLOB_DIR", "uploads"),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Region:     os.Getenv("S3_REGION"),
		MediaBaseURL: getenv("MEDIA_BASE_URL", "http://localhost:5003/media"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "text"),
		AppName:      getenv("APP_NAME", "zoo-ops"),
	}
}

// APIBaseURL is the client-side counterpart (cmd/zooctl).
func APIBaseURL() string {
	return getenv("ZOO_API_URL", "http://localhost:5003")
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
