package internal

import (
	"fmt"
	"participant-cache/codec"
	"participant-cache/errors"
	"participant-cache/infrastructure/storage"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/samber/lo"
)

type Config struct {
	Driver   string `env:"CACHE_DRIVER,default=badger"`
	Path     string `env:"CACHE_PATH,default=./participant-cache"`
	Codec    string `env:"CACHE_CODEC,default=proto"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if !lo.Contains(storage.Drivers, strings.ToLower(c.Driver)) {
		return fmt.Errorf("%w: CACHE_DRIVER=%q, expected one of %s",
			errors.ErrUnknownDriver, c.Driver, strings.Join(storage.Drivers, ", "))
	}
	if strings.ToLower(c.Driver) != storage.DriverMemory && strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("CACHE_PATH is required for driver %q", c.Driver)
	}
	if _, err := codec.ByName(c.Codec); err != nil {
		return fmt.Errorf("CACHE_CODEC: %w", err)
	}
	return nil
}

// CacheCodec returns the codec named by CACHE_CODEC.
func (c Config) CacheCodec() codec.Codec {
	cc, err := codec.ByName(c.Codec)
	if err != nil {
		return codec.Default()
	}
	return cc
}
