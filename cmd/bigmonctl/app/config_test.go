package app

import (
	"testing"
	"time"

	"github.com/bigmonlabs/bigmonctl/pkg/constants"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	if !config.ValidateCerts {
		t.Error("ValidateCerts should default to true")
	}
	if config.Timeout != constants.DefaultHTTPTimeout {
		t.Errorf("Timeout = %v, want %v", config.Timeout, constants.DefaultHTTPTimeout)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_ControllerEnvironment verifies controller connection env loading.
func TestConfig_ControllerEnvironment(t *testing.T) {
	t.Setenv("BIGMONCTL_CONTROLLER", "192.168.86.221")
	t.Setenv("BIGSWITCH_ACCESS_TOKEN", "env-token")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Controller != "192.168.86.221" {
		t.Errorf("Controller = %s, want 192.168.86.221", config.Controller)
	}
	if config.AccessToken != "env-token" {
		t.Errorf("AccessToken = %s, want env-token", config.AccessToken)
	}
}

// TestConfig_PrefixedTokenWins verifies that the BIGMONCTL_ access token
// name takes precedence over the BigSwitch one.
func TestConfig_PrefixedTokenWins(t *testing.T) {
	t.Setenv("BIGMONCTL_ACCESS_TOKEN", "prefixed-token")
	t.Setenv("BIGSWITCH_ACCESS_TOKEN", "legacy-token")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.AccessToken != "prefixed-token" {
		t.Errorf("AccessToken = %s, want prefixed-token", config.AccessToken)
	}
}

// TestConfig_BooleanEnvironment verifies boolean env parsing.
func TestConfig_BooleanEnvironment(t *testing.T) {
	t.Setenv("BIGMONCTL_VALIDATE_CERTS", "false")
	t.Setenv("BIGMONCTL_DRY_RUN", "true")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.ValidateCerts {
		t.Error("ValidateCerts = true, want false")
	}
	if !config.DryRun {
		t.Error("DryRun = false, want true")
	}
}

// TestConfig_Timeout verifies time duration parsing.
func TestConfig_Timeout(t *testing.T) {
	t.Setenv("BIGMONCTL_TIMEOUT", "45s")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", config.Timeout)
	}
}

// TestConfig_LoggingOptions verifies logging configuration.
func TestConfig_LoggingOptions(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", config.LogFormat)
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %s, want stdout", config.LogOutput)
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence over loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:   "json",
		LogLevel: "warn",
	}

	// Empty flag values leave the loaded values alone
	config.UpdateFromFlags(true, false, false, "", "")
	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json to survive empty flag", config.Format)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn to survive empty flag", config.LogLevel)
	}

	// Set flag values win
	config.UpdateFromFlags(false, true, true, "yaml", "trace")
	if config.Verbose || !config.Quiet || !config.NoColor {
		t.Error("Boolean flags not updated")
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %s, want yaml", config.Format)
	}
	if config.LogLevel != "trace" {
		t.Errorf("LogLevel = %s, want trace", config.LogLevel)
	}
}
