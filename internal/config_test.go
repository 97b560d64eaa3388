package internal

import (
	"os"
	"participant-cache/codec"
	"participant-cache/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	for _, k := range []string{"CACHE_DRIVER", "CACHE_PATH", "CACHE_CODEC", "LOG_LEVEL"} {
		t.Setenv(k, "")
		req.NoError(os.Unsetenv(k))
	}

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("badger", config.Driver)
	req.Equal("./participant-cache", config.Path)
	req.Equal(codec.FormatProto, config.CacheCodec().Format())
	req.Equal("INFO", config.LogLevel)
}

func TestLoadConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	t.Setenv("CACHE_DRIVER", "sqlite")
	t.Setenv("CACHE_PATH", "/var/lib/chat/participants.db")
	t.Setenv("CACHE_CODEC", "msgpack")
	t.Setenv("LOG_LEVEL", "DEBUG")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(Config{
		Driver:   "sqlite",
		Path:     "/var/lib/chat/participants.db",
		Codec:    "msgpack",
		LogLevel: "DEBUG",
	}, config)
	req.Equal(codec.FormatMsgpack, config.CacheCodec().Format())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Driver: "badger", Path: "/tmp/cache", Codec: "proto"}

	t.Run("should accept a known driver and codec", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("should reject an unknown driver", func(t *testing.T) {
		c := valid
		c.Driver = "redis"
		require.ErrorIs(t, c.Validate(), errors.ErrUnknownDriver)
	})

	t.Run("should reject an unknown codec", func(t *testing.T) {
		c := valid
		c.Codec = "xml"
		require.ErrorIs(t, c.Validate(), errors.ErrUnknownCodec)
	})

	t.Run("should require a path for disk drivers", func(t *testing.T) {
		c := valid
		c.Path = " "
		require.Error(t, c.Validate())
	})

	t.Run("should not need a path in memory", func(t *testing.T) {
		c := valid
		c.Driver = "memory"
		c.Path = ""
		require.NoError(t, c.Validate())
	})

	t.Run("should match driver names case-insensitively", func(t *testing.T) {
		c := valid
		c.Driver = "MEMORY"
		c.Path = ""
		require.NoError(t, c.Validate())
	})
}
