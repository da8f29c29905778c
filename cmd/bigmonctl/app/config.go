package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bigmonlabs/bigmonctl/pkg/constants"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Controller connection
	Controller    string
	AccessToken   string
	ValidateCerts bool
	Timeout       time.Duration

	// Reconciliation behavior
	DryRun bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables (BIGMONCTL_ prefix, plus the BIGSWITCH_ names)
//  3. .env files
//  4. Config file (~/.bigmonctl.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.SetEnvPrefix("BIGMONCTL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Bind the BigSwitch environment variable names
	bindControllerEnv()

	viper.SetDefault("validate_certs", true)

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".bigmonctl")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("output"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Controller connection
		Controller:    viper.GetString("controller"),
		AccessToken:   viper.GetString("access_token"),
		ValidateCerts: viper.GetBool("validate_certs"),
		Timeout:       viper.GetDuration("timeout"),

		// Reconciliation behavior
		DryRun: viper.GetBool("dry_run"),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.Timeout == 0 {
		config.Timeout = constants.DefaultHTTPTimeout
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// Try to load .env files in order of precedence
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindControllerEnv explicitly binds the controller connection variables to
// Viper. The BIGSWITCH_ names predate the BIGMONCTL_ prefix, so both
// spellings work; BindEnv checks names in order.
func bindControllerEnv() {
	bindings := [][]string{
		{"controller", "BIGMONCTL_CONTROLLER", "BIGSWITCH_CONTROLLER"},
		{"access_token", "BIGMONCTL_ACCESS_TOKEN", constants.AccessTokenEnvVar},
	}

	for _, binding := range bindings {
		if err := viper.BindEnv(binding...); err != nil {
			// Log warning but continue - this isn't critical
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable for %s: %v\n", binding[0], err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
