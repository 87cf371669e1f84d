package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"INVENTORY_SERVICE_HOST", "INVENTORY_SERVICE_PORT",
	"INTERNAL_SERVICE_PORT", "INVENTORY_DATA_FILE", "LOG_LEVEL",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		original, existed := os.LookupEnv(key)
		os.Unsetenv(key)
		if existed {
			t.Cleanup(func() { os.Setenv(key, original) })
		}
	}
}

func TestLoad(t *testing.T) {
	t.Run("success with all env vars", func(t *testing.T) {
		clearConfigEnv(t)

		t.Setenv("INVENTORY_SERVICE_HOST", "127.0.0.1")
		t.Setenv("INVENTORY_SERVICE_PORT", "8090")
		t.Setenv("INTERNAL_SERVICE_PORT", "8091")
		t.Setenv("INVENTORY_DATA_FILE", "/var/lib/inventory/items.json")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1", cfg.ServiceHost)
		assert.Equal(t, "8090", cfg.ServicePort)
		assert.Equal(t, "8091", cfg.InternalServicePort)
		assert.Equal(t, "/var/lib/inventory/items.json", cfg.DataFile)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("success with defaults", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.ServiceHost)
		assert.Equal(t, "8080", cfg.ServicePort)
		assert.Equal(t, "8081", cfg.InternalServicePort)
		assert.Equal(t, "data/inventory.json", cfg.DataFile)
		assert.Equal(t, "info", cfg.LogLevel)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServiceHost:         "0.0.0.0",
			ServicePort:         "8080",
			InternalServicePort: "8081",
			DataFile:            "data/inventory.json",
			LogLevel:            "info",
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("non-numeric port fails", func(t *testing.T) {
		cfg := valid()
		cfg.ServicePort = "http"
		assert.Error(t, cfg.Validate())
	})

	t.Run("port out of range fails", func(t *testing.T) {
		cfg := valid()
		cfg.InternalServicePort = "70000"
		assert.Error(t, cfg.Validate())
	})

	t.Run("identical ports fail", func(t *testing.T) {
		cfg := valid()
		cfg.InternalServicePort = cfg.ServicePort
		assert.Error(t, cfg.Validate())
	})

	t.Run("blank data file fails", func(t *testing.T) {
		cfg := valid()
		cfg.DataFile = "   "
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level fails", func(t *testing.T) {
		cfg := valid()
		cfg.LogLevel = "verbose"
		assert.Error(t, cfg.Validate())
	})
}

func TestString(t *testing.T) {
	cfg := &Config{
		ServiceHost:         "0.0.0.0",
		ServicePort:         "8080",
		InternalServicePort: "8081",
		DataFile:            "data/inventory.json",
		LogLevel:            "info",
	}

	s := cfg.String()
	assert.Contains(t, s, "8080")
	assert.Contains(t, s, "data/inventory.json")
}
