// Package app provides the application context and dependency management
// for the bigmonctl CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/bigmonlabs/bigmonctl"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
)

// App represents the bigmonctl application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// controller client, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Controller client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client bigmonctl.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment,
// .env files, and the config file, and can be customized further using
// functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("config", "failed to load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Format returns the configured output format.
func (a *App) Format() string {
	return a.config.Format
}

// Client returns the controller client, creating it lazily if needed.
// This is thread-safe and ensures only one client is created.
func (a *App) Client() (bigmonctl.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	if a.config.Controller == "" {
		return nil, errors.NewValidationError("controller", "",
			"controller address is required (set --controller or BIGMONCTL_CONTROLLER)")
	}

	c, err := bigmonctl.New(a.config.Controller, a.buildClientOptions()...)
	if err != nil {
		return nil, err
	}

	a.client = c
	return c, nil
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []bigmonctl.Option {
	opts := []bigmonctl.Option{
		bigmonctl.WithCertValidation(a.config.ValidateCerts),
		bigmonctl.WithTimeout(a.config.Timeout),
		bigmonctl.WithLogger(a.logger),
	}

	if a.config.AccessToken != "" {
		opts = append(opts, bigmonctl.WithAccessToken(a.config.AccessToken))
	}
	if a.config.DryRun {
		opts = append(opts, bigmonctl.WithDryRun(true))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom controller client (useful for testing).
func WithClient(client bigmonctl.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
