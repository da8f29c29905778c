package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bigmonlabs/bigmonctl/cmd/bigmonctl/cmd/policy"
)

// CreatePolicyCommand creates the policy command with app dependencies.
func (a *App) CreatePolicyCommand() *cobra.Command {
	return policy.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("bigmonctl %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
				cmd.Printf("  go:       %s\n", runtime.Version())
				cmd.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
