// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aamvakit/internal/issue"
	"aamvakit/internal/synth"
	"aamvakit/pkg/aamva"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var (
	generateCount        int
	generateJurisdiction string
	generateSeed         uint64
	generateFormat       string
	generateOutDir       string
	generateEncode       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic license records for testing",
	Long: `Generate synthetic license records for testing.

Records are written one file per record into the output directory,
named <jurisdiction>-<n>.<format>. Generated records always pass
compliance checks. With --encode the raw barcode payload is written
alongside each record. A fixed --seed makes the output reproducible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Prefix:          "generate",
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		count := generateCount
		if !cmd.Flags().Changed("count") && cfg != nil {
			count = cfg.Generate.Count
		}
		jurisdiction := generateJurisdiction
		if !cmd.Flags().Changed("jurisdiction") && cfg != nil && cfg.Generate.Jurisdiction != "" {
			jurisdiction = cfg.Generate.Jurisdiction
		}
		outDir := generateOutDir
		if !cmd.Flags().Changed("out-dir") && cfg != nil {
			outDir = cfg.OutputDir
		}

		format := strings.ToLower(generateFormat)
		if format != "toml" && format != "json" {
			return issue.NewErrorContext().
				WithOperation("generate records").
				WithSuggestion(`Use --format toml or --format json`).
				Wrap(fmt.Errorf("unsupported format %q", generateFormat)).
				BuildError()
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return issue.NewErrorContext().
				WithOperation("create output directory").
				WithResource(outDir).
				Wrap(err).
				BuildError()
		}

		gen := synth.New(generateSeed)
		for i := 1; i <= count; i++ {
			record, entry, err := gen.Record(jurisdiction)
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("generate records").
					WithSuggestion("Run 'aamvakit jurisdictions' to list valid codes").
					Wrap(err).
					BuildError()
			}

			path := filepath.Join(outDir, fmt.Sprintf("%s-%03d.%s", entry.Code, i, format))
			if err := writeRecord(path, record, format); err != nil {
				return err
			}
			logger.Debug("wrote record", "path", path, "jurisdiction", entry.Code)

			if generateEncode {
				payload, err := aamva.Encode(synth.Subfiles(record, entry))
				if err != nil {
					return issue.NewErrorContext().
						WithOperation("encode barcode").
						WithResource(path).
						Wrap(err).
						BuildError()
				}
				datPath := strings.TrimSuffix(path, "."+format) + ".dat"
				if err := os.WriteFile(datPath, []byte(payload), 0o644); err != nil {
					return issue.NewErrorContext().
						WithOperation("write barcode payload").
						WithResource(datPath).
						Wrap(err).
						BuildError()
				}
				logger.Debug("wrote payload", "path", datPath, "bytes", len(payload))
			}
		}

		logger.Info("done", "records", count, "dir", outDir)
		return nil
	},
}

func writeRecord(path string, record map[string]string, format string) error {
	var (
		data []byte
		err  error
	)
	if format == "json" {
		data, err = json.MarshalIndent(record, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = toml.Marshal(record)
	}
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("marshal record").
			WithResource(path).
			Wrap(err).
			BuildError()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return issue.NewErrorContext().
			WithOperation("write record file").
			WithResource(path).
			Wrap(err).
			BuildError()
	}
	return nil
}

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 1, "number of records to generate")
	generateCmd.Flags().StringVarP(&generateJurisdiction, "jurisdiction", "j", "", "jurisdiction code (random when empty)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "random seed (0 for a random seed)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "toml", "record file format (toml or json)")
	generateCmd.Flags().StringVar(&generateOutDir, "out-dir", "out", "output directory")
	generateCmd.Flags().BoolVar(&generateEncode, "encode", false, "also write the raw barcode payload per record")
}
