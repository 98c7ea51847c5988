package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sixbank/contractlibs/utils"
)

const DefaultAccountNumberPrefix = "SIX"

var ErrMissingSecret = errors.New("jwt secret is not set")

// Config holds the settings services share when they use this library.
type Config struct {
	AccountNumberPrefix string `yaml:"accountNumberPrefix"`
	JWTSecret           string `yaml:"jwtSecret"`
}

func Default() Config {
	return Config{AccountNumberPrefix: DefaultAccountNumberPrefix}
}

// Load starts from Default, merges the YAML file at path when it exists and
// finally applies environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			var fromFile Config
			if err := yaml.Unmarshal(data, &fromFile); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			cfg.merge(fromFile)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) merge(src Config) {
	if src.AccountNumberPrefix != "" {
		c.AccountNumberPrefix = src.AccountNumberPrefix
	}
	if src.JWTSecret != "" {
		c.JWTSecret = src.JWTSecret
	}
}

func (c *Config) applyEnvOverrides() {
	c.AccountNumberPrefix = getEnv("ACCOUNT_NUMBER_PREFIX", c.AccountNumberPrefix)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
}

// Validate reports settings the middleware cannot run without.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// GenerateAccountNumber issues an account number with the configured prefix.
func (c Config) GenerateAccountNumber() (string, error) {
	return utils.GenerateAccountNumber(c.AccountNumberPrefix)
}

// IsValidAccountNumber checks accountNumber against the configured prefix.
func (c Config) IsValidAccountNumber(accountNumber string) bool {
	return utils.IsValidAccountNumber(accountNumber, c.AccountNumberPrefix)
}
