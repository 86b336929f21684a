package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage backend names.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Config holds all deployment configuration. It is constructed once in main and
// passed explicitly to the components that need it.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	DBPath    string `envconfig:"DB" default:"garderoba.sqlite3"`
	LogPath   string `envconfig:"LOG" default:""`
	JWTSecret string `envconfig:"JWT_SECRET" default:""`

	// PublicURL is the externally visible base URL of this server, used to
	// build URLs for locally stored uploads.
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:8080"`

	// Storage selects the asset backend for the whole deployment.
	Storage   string `envconfig:"STORAGE" default:"local"`
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`

	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3Bucket    string `envconfig:"S3_BUCKET"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`
	S3UseSSL    bool   `envconfig:"S3_USE_SSL" default:"true"`

	// S3PublicURL is the base URL assets are fetchable from (endpoint + bucket
	// for path-style access, or a CDN in front of the bucket).
	S3PublicURL string `envconfig:"S3_PUBLIC_URL"`
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("garderoba", &c); err != nil {
		return c, fmt.Errorf("reading environment: %w", err)
	}

	switch c.Storage {
	case BackendLocal:
	case BackendS3:
		if c.S3Endpoint == "" || c.S3Bucket == "" {
			return c, fmt.Errorf("s3 storage requires GARDEROBA_S3_ENDPOINT and GARDEROBA_S3_BUCKET")
		}
	default:
		return c, fmt.Errorf("unknown storage backend %q (want %q or %q)", c.Storage, BackendLocal, BackendS3)
	}

	return c, nil
}
