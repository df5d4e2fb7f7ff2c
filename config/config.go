package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret     string `env:"JWT_SECRET,required,notEmpty"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS" envDefault:"72"`
	Port          int    `env:"PORT" envDefault:"8080"`

	// Optional bootstrap admin account, created at startup if missing.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Image hosting. Leaving S3_BUCKET unset disables /api/upload.
	S3Bucket           string `env:"S3_BUCKET"`
	S3Region           string `env:"S3_REGION"`
	S3Folder           string `env:"S3_FOLDER" envDefault:"vantage"`
	S3PublicURL        string `env:"S3_PUBLIC_URL"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

// TokenTTL returns the configured token lifetime.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// ServerAddr returns the listen address in :port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// BootstrapAdmin reports whether an admin account should be ensured at
// startup.
func (c Config) BootstrapAdmin() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
