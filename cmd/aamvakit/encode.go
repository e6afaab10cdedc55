// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"aamvakit/internal/issue"
	"aamvakit/pkg/aamva"

	"github.com/spf13/cobra"
)

var (
	encodeOutput string
	encodeForce  bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <record-file>",
	Short: "Encode a license record into the raw barcode payload",
	Long: `Encode a license record into the raw PDF417 barcode payload.

The record is validated first; a record with errors is refused unless
--force is given. The payload is written to stdout, or to a file with -o.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := loadRecord(args[0])
		if err != nil {
			return err
		}

		res := aamva.CheckCompliance(record)
		if !res.IsValid() && !encodeForce {
			renderResult(os.Stderr, res, verbose)
			return &ExitError{Code: 1, Err: fmt.Errorf("record is not compliant; use --force to encode anyway")}
		}

		normalized := aamva.NormalizeRecord(record)
		subfiles := []aamva.Subfile{aamva.NewDLSubfile(normalized)}
		if entry, ok := aamva.LookupJurisdiction(normalized["DAJ"]); ok {
			subfiles = append(subfiles, aamva.NewJurisdictionSubfile(entry, nil))
		}

		payload, err := aamva.Encode(subfiles)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("encode barcode").
				WithResource(args[0]).
				Wrap(err).
				BuildError()
		}

		if encodeOutput == "" {
			fmt.Print(payload)
			return nil
		}
		if err := os.WriteFile(encodeOutput, []byte(payload), 0o644); err != nil {
			return issue.NewErrorContext().
				WithOperation("write barcode payload").
				WithResource(encodeOutput).
				Wrap(err).
				BuildError()
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%s %s (%d bytes)\n", SuccessStyle.Render("wrote"), encodeOutput, len(payload))
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "write the payload to a file instead of stdout")
	encodeCmd.Flags().BoolVar(&encodeForce, "force", false, "encode even when the record has compliance errors")
}
