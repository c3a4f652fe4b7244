package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// RateLimitConfig configures the per-IP limiter. PerSec <= 0 disables it.
type RateLimitConfig struct {
	PerSec float64 `mapstructure:"per_sec"`
	Burst  int     `mapstructure:"burst"`
}

// AuthConfig controls bearer auth on mutating sauna routes.
type AuthConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	SigningKey  string        `mapstructure:"signing_key"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	AllowSignUp bool          `mapstructure:"allow_sign_up"` // false closes /auth/sign-up
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

const (
	envPrefix         = "SAUNA"
	defaultConfigName = "config"
	defaultConfigDir  = "configs"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "sauna.db")
	v.SetDefault("ratelimit.per_sec", 0)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.allow_sign_up", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads configs/config.yml (or the file at path, if given) and
// SAUNA_* environment overrides. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultConfigDir)
		v.SetConfigName(defaultConfigName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.Enabled && strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errors.New("auth.enabled requires auth.signing_key")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.RateLimit.PerSec > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("ratelimit.burst must be positive when ratelimit is on, got %d", c.RateLimit.Burst)
	}
	return nil
}
