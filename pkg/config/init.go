package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileHeader is prepended to generated configuration files.
const configFileHeader = `# Wizzzey API Configuration File
#
# Generated by 'wizzzey config init'. Every value can be overridden with a
# WIZZZEY_* environment variable, e.g. WIZZZEY_LOGGING_LEVEL=DEBUG.
#
# The JWT secret below was generated randomly. Keep this file private, or
# move the secret to the WIZZZEY_API_JWT_SECRET environment variable and
# remove it from this file.

`

// InitConfig creates a configuration file at the default location
// ($XDG_CONFIG_HOME/wizzzey/config.yaml or ~/.config/wizzzey/config.yaml).
//
// Returns the path of the created file. Fails if the file already exists,
// unless force is true.
func InitConfig(force bool) (string, error) {
	configPath := GetDefaultConfigPath()
	if err := InitConfigToPath(configPath, force); err != nil {
		return "", err
	}
	return configPath, nil
}

// InitConfigToPath creates a configuration file at the given path, creating
// parent directories as needed. Fails if the file already exists, unless
// force is true.
//
// The generated file contains the full default configuration plus a freshly
// generated JWT signing secret, so the server is runnable immediately.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	cfg := GetDefaultConfig()

	secret, err := generateJWTSecret()
	if err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.API.JWT.Secret = secret

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600 because the file holds the JWT signing secret.
	content := append([]byte(configFileHeader), data...)
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateJWTSecret returns a random URL-safe secret long enough for
// HMAC-SHA256 signing (43 characters from 32 random bytes).
func generateJWTSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
