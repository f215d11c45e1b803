// Package commands wires the weft CLI surface. Commands stay thin: they
// parse flags, build collaborators, and delegate to the internal packages.
// This is also the single place uncaught errors become user-facing output.
package commands

import (
	"errors"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/internal/cli/ui"
	"github.com/weft-ui/weft/internal/platform"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weft",
		Short: "Weft design-to-code tooling",
		Long: color.CyanString(`Weft - design to code, without the handoff

Weft pulls the components you design in Weft Studio into your codebase as
real, typed UI code, and keeps them in sync as designs change.

Commands:
  • create - scaffold a new app wired to the platform
  • sync   - pull generated components into the local tree
  • watch  - re-run sync when the project changes`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewCreateCommand())
	rootCmd.AddCommand(NewSyncCommand())
	rootCmd.AddCommand(NewWatchCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("Weft version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(goVer)
		},
	}
}

// Execute runs the root command and renders any error.
func Execute() error {
	rootCmd := NewRootCommand()
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if errors.Is(err, platform.ErrUnsupported) {
		ui.WriteError(rootCmd.ErrOrStderr(), ui.ErrorOptions{
			Context: "configuration error",
			Problem: err.Error(),
			Suggestions: []string{
				"Supported platforms: nextjs, gatsby, react",
				"Supported schemes: codegen, loader",
			},
			HelpCommands: []string{"weft create --help"},
		})
		return err
	}

	errorColor := color.New(color.FgRed, color.Bold)
	errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return err
}
