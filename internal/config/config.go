// Package config provides configuration management for the oci-policy-audit CLI.
//
// It implements the disciplined Viper pattern where Viper stays contained
// in this package and the rest of the codebase receives explicit Config structs.
// Configuration sources are resolved in this order: env > config file > defaults.
// The CLI itself takes no flags; a .env file in the working directory is
// honored before the environment is read.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Credential sources for the identity client.
const (
	AuthConfig   = "config"   // local OCI config file (~/.oci/config)
	AuthInstance = "instance" // instance principal
)

// Config is the explicit configuration struct
// This is what the rest of the codebase sees
type Config struct {
	TenancyID  string
	Profile    string
	Region     string
	AuthMethod string
	OutputDir  string
}

// Init initializes viper with defaults and config file paths
func Init() error {
	// A .env in the working directory loses to the real environment
	_ = godotenv.Load(".env")

	// Set config file name and type
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config file search paths
	viper.AddConfigPath("$HOME/.oci-policy-audit")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("tenancy-id", "")
	viper.SetDefault("profile", "")
	viper.SetDefault("region", "")
	viper.SetDefault("auth-method", AuthConfig)
	viper.SetDefault("output-dir", ".")

	// Bind environment variables with prefix (OCI_AUDIT_TENANCY_ID etc.)
	viper.SetEnvPrefix("OCI_AUDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// Load reads from all sources and returns explicit Config
func Load() (*Config, error) {
	cfg := &Config{
		TenancyID:  viper.GetString("tenancy-id"),
		Profile:    viper.GetString("profile"),
		Region:     viper.GetString("region"),
		AuthMethod: viper.GetString("auth-method"),
		OutputDir:  viper.GetString("output-dir"),
	}

	// Standard OCI CLI variables serve as fallbacks
	if cfg.TenancyID == "" {
		cfg.TenancyID = os.Getenv("OCI_TENANCY_ID")
	}
	if cfg.Profile == "" {
		cfg.Profile = os.Getenv("OCI_CLI_PROFILE")
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures config is sane
func (c *Config) Validate() error {
	if c.AuthMethod != AuthConfig && c.AuthMethod != AuthInstance {
		return fmt.Errorf("invalid auth-method: %s (must be %s or %s)", c.AuthMethod, AuthConfig, AuthInstance)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output-dir must not be empty")
	}

	return nil
}

// EnvironmentLabel names the credential source for report banners.
func (c *Config) EnvironmentLabel() string {
	if c.AuthMethod == AuthInstance {
		return "Instance Principal"
	}
	if c.Profile != "" {
		return fmt.Sprintf("Local OCI config (profile %s)", c.Profile)
	}
	return "Local OCI config"
}
