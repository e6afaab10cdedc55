// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"aamvakit/pkg/aamva"

	"github.com/spf13/cobra"
)

var validatePartial bool

var validateCmd = &cobra.Command{
	Use:   "validate <record-file>",
	Short: "Check a license record for AAMVA compliance",
	Long: `Check a license record for AAMVA compliance.

By default every mandatory element must be present; a missing mandatory
element is an error. With --partial only the fields present in the record
are checked, which is useful while a record is still being assembled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := loadRecord(args[0])
		if err != nil {
			return err
		}

		var res aamva.Result
		if validatePartial {
			res = aamva.ValidateRecord(record)
		} else {
			res = aamva.CheckCompliance(record)
		}

		if !renderResult(os.Stdout, res, verbose) {
			return &ExitError{Code: 1}
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validatePartial, "partial", false, "only validate fields present in the record")
}
