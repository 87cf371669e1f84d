package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Service configuration
	ServiceHost         string
	ServicePort         string
	InternalServicePort string

	// Storage configuration
	DataFile string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ServiceHost = os.Getenv("INVENTORY_SERVICE_HOST")
	if cfg.ServiceHost == "" {
		cfg.ServiceHost = "0.0.0.0"
	}

	cfg.ServicePort = os.Getenv("INVENTORY_SERVICE_PORT")
	if cfg.ServicePort == "" {
		cfg.ServicePort = "8080"
	}

	cfg.InternalServicePort = os.Getenv("INTERNAL_SERVICE_PORT")
	if cfg.InternalServicePort == "" {
		cfg.InternalServicePort = "8081"
	}

	cfg.DataFile = os.Getenv("INVENTORY_DATA_FILE")
	if cfg.DataFile == "" {
		cfg.DataFile = "data/inventory.json"
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if err := validatePort("INVENTORY_SERVICE_PORT", c.ServicePort); err != nil {
		return err
	}
	if err := validatePort("INTERNAL_SERVICE_PORT", c.InternalServicePort); err != nil {
		return err
	}
	if c.ServicePort == c.InternalServicePort {
		return fmt.Errorf("INVENTORY_SERVICE_PORT and INTERNAL_SERVICE_PORT must differ")
	}

	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("INVENTORY_DATA_FILE cannot be blank")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	for _, level := range validLevels {
		if c.LogLevel == level {
			return nil
		}
	}
	return fmt.Errorf("LOG_LEVEL must be one of: %s", strings.Join(validLevels, ", "))
}

func validatePort(name, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %v", name, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535", name)
	}
	return nil
}

// String returns a string representation of the config (for logging)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Host: %s, Port: %s, InternalPort: %s, DataFile: %s, LogLevel: %s}",
		c.ServiceHost, c.ServicePort, c.InternalServicePort, c.DataFile, c.LogLevel,
	)
}
