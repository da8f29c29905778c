package app

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bigmonlabs/bigmonctl/internal/cmdout"
	"github.com/bigmonlabs/bigmonctl/pkg/constants"
)

// Execute runs the bigmonctl CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	// Create root command with app context
	rootCmd := a.createRootCommand()

	// Set arguments
	rootCmd.SetArgs(args)

	// Execute with context
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bigmonctl",
		Short:   "Big Monitoring Fabric policy CLI",
		Version: a.version,
		Long: `Bigmonctl manages bigtap policies on a BigSwitch Big Monitoring Fabric
controller through its REST API.

It reconciles the policies you declare against what the controller is
running: a policy that already matches is left alone, a missing or
drifted policy is pushed, and at most one write is issued per policy.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.bigmonctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, yaml, wide")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Connection flags are merged into config only when set, so values
	// loaded from the environment or config file survive the defaults.
	// The access token default stays empty to keep it out of help output.
	rootCmd.PersistentFlags().StringP("controller", "c", "", "controller address (host or host:port)")
	rootCmd.PersistentFlags().String("access-token", "", "controller access token (prefer the "+constants.AccessTokenEnvVar+" environment variable)")
	rootCmd.PersistentFlags().Bool("validate-certs", true, "validate the controller's TLS certificate")
	rootCmd.PersistentFlags().Duration("timeout", constants.DefaultHTTPTimeout, "timeout for controller operations")
	rootCmd.PersistentFlags().Bool("dry-run", false, "report what would change without writing to the controller")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("bigmonctl {{.Version}}\n")

	// Register all commands
	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "output")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Normalize and reject unknown output formats before any command runs.
	// When no format was requested anywhere, auto-detect: table on a
	// terminal, JSON for pipes and redirects.
	parsed, err := cmdout.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}
	if parsed == "" {
		parsed = cmdout.DetectFormat("")
	}
	a.config.Format = string(parsed)

	// Connection flags override the environment and config file only when set
	if cmd.Flags().Changed("controller") {
		a.config.Controller = mustGetString(cmd, "controller")
	}
	if cmd.Flags().Changed("access-token") {
		a.config.AccessToken = mustGetString(cmd, "access-token")
	}
	if cmd.Flags().Changed("validate-certs") {
		a.config.ValidateCerts = mustGetBool(cmd, "validate-certs")
	}
	if cmd.Flags().Changed("timeout") {
		a.config.Timeout = mustGetDuration(cmd, "timeout")
	}
	if cmd.Flags().Changed("dry-run") {
		a.config.DryRun = mustGetBool(cmd, "dry-run")
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreatePolicyCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetDuration retrieves a duration flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
