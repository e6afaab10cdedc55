// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"aamvakit/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `aamvakit config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage aamvakit configuration",
	Long: `Manage aamvakit configuration.

Configuration is stored in:
  - Linux: ~/.config/aamvakit/config.toml
  - macOS: ~/Library/Application Support/aamvakit/config.toml
  - Windows: %APPDATA%\aamvakit\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Println(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})
}

func showConfig() error {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		loaded = config.DefaultConfig()
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if dir, dirErr := config.ConfigDir(); dirErr == nil {
		path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
		if _, statErr := os.Stat(path); statErr == nil {
			fmt.Printf("%s: %s\n", FieldStyle.Render("Config file"), path)
		} else {
			fmt.Printf("%s: %s\n", FieldStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	} else {
		fmt.Printf("%s: %s\n", FieldStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", FieldStyle.Render("output_dir"), SuccessStyle.Render(loaded.OutputDir))
	fmt.Printf("%s: %s\n", FieldStyle.Render("generate.count"), SuccessStyle.Render(strconv.Itoa(loaded.Generate.Count)))
	fmt.Printf("%s: %s\n", FieldStyle.Render("generate.jurisdiction"), SuccessStyle.Render(loaded.Generate.Jurisdiction))
	fmt.Printf("%s: %s\n", FieldStyle.Render("ui.verbose"), SuccessStyle.Render(strconv.FormatBool(loaded.UI.Verbose)))
	return nil
}
