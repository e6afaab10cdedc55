// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"aamvakit/internal/config"
	"aamvakit/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "aamvakit",
		Short: "Validate and encode AAMVA driver's license barcode data",
		Long: TitleStyle.Render("aamvakit") + SubtitleStyle.Render(" - AAMVA DL/ID barcode toolkit") + `

aamvakit checks driver's license records against the AAMVA DL/ID card
design standard and encodes compliant records into the raw PDF417
payload format scanners expect.

Records are plain TOML or JSON files keyed by AAMVA element code
(DAQ, DCS, ...) or by friendly name (license_number, last_name, ...).

` + SubtitleStyle.Render("Examples:") + `
  aamvakit validate record.toml      Check a record for compliance
  aamvakit encode record.toml        Emit the raw barcode payload
  aamvakit generate --count 10       Produce synthetic test records
  aamvakit jurisdictions             List supported jurisdictions`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/aamvakit/config.toml)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(jurisdictionsCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	cfg = loaded
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
