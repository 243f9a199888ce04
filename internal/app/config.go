package app

import (
	"errors"
	"strings"
	"time"

	"github.com/yungbote/talentswap-backend/internal/data/db"
	"github.com/yungbote/talentswap-backend/internal/observability"
	"github.com/yungbote/talentswap-backend/internal/platform/config"
)

const defaultJWTSecret = "defaultsecret"

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogMode         string        `env:"LOG_MODE" envDefault:"development"`
	JWTSecretKey    string        `env:"JWT_SECRET_KEY" envDefault:"defaultsecret"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	SeedCategories  bool          `env:"SEED_CATEGORIES" envDefault:"false"`
	DefaultPageSize int           `env:"DEFAULT_PAGE_SIZE" envDefault:"20"`
	MaxPageSize     int           `env:"MAX_PAGE_SIZE" envDefault:"100"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DB   db.Config
	OTel observability.OtelConfig
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.LogMode == "production" {
		if secret := strings.TrimSpace(cfg.JWTSecretKey); secret == "" || secret == defaultJWTSecret {
			return Config{}, errors.New("JWT_SECRET_KEY must be set to a non-default value in production")
		}
	}
	if cfg.MaxPageSize > 0 && cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = cfg.MaxPageSize
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
