package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrMissingRequired = errors.New("missing required configuration")

type Config struct {
	MinioEndpoint  string `envconfig:"MINIO_ENDPOINT" default:"play.min.io:443"`
	MinioAccessKey string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	MinioSecretKey string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	MinioUseTLS    bool   `envconfig:"MINIO_USE_TLS" default:"true"`

	WeaviateHost   string `envconfig:"WEAVIATE_HOST" default:"localhost:8080"`
	WeaviateScheme string `envconfig:"WEAVIATE_SCHEME" default:"http"`

	BucketName string `envconfig:"HYDRATE_BUCKET" default:"cda-datasets"`
	URLFile    string `envconfig:"HYDRATE_URL_FILE" default:"urls.txt"`
	RunLogPath string `envconfig:"HYDRATE_RUN_LOG" default:"data/logs/ingest.log"`

	FetchTimeoutSeconds int `envconfig:"FETCH_TIMEOUT_SECONDS" default:"30"`
}

func Load() (*Config, error) {
	// Env vars may also be set in the shell; a missing .env is fine.
	_ = godotenv.Load(".env")

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MinioEndpoint == "" {
		return fmt.Errorf("%w: MINIO_ENDPOINT", ErrMissingRequired)
	}
	if c.MinioAccessKey == "" {
		return fmt.Errorf("%w: MINIO_ACCESS_KEY", ErrMissingRequired)
	}
	if c.BucketName == "" {
		return fmt.Errorf("%w: HYDRATE_BUCKET", ErrMissingRequired)
	}
	if c.RunLogPath == "" {
		return fmt.Errorf("%w: HYDRATE_RUN_LOG", ErrMissingRequired)
	}
	if c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive, got %d", c.FetchTimeoutSeconds)
	}
	return nil
}
