// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"aamvakit/pkg/aamva"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions [filter]",
	Short: "List supported jurisdictions",
	Long: `List supported jurisdictions with their issuer identification
numbers and licensing rules. An optional filter argument narrows the
list by fuzzy-matching jurisdiction names and codes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := aamva.JurisdictionCodes()
		if len(args) == 1 {
			codes = filterJurisdictions(codes, args[0])
			if len(codes) == 0 {
				fmt.Fprintln(os.Stderr, WarningStyle.Render("no jurisdictions match ")+args[0])
				return &ExitError{Code: 1}
			}
		}

		fmt.Printf("%s  %-22s %-8s %-8s %s\n",
			TitleStyle.Render("CODE"),
			"NAME", "IIN", "MIN AGE", "REAL ID")
		for _, code := range codes {
			entry, _ := aamva.LookupJurisdiction(code)
			realID := SubtitleStyle.Render("no")
			if entry.RealIDRequired {
				realID = SuccessStyle.Render("yes")
			}
			fmt.Printf("%s    %-22s %-8s %-8d %s\n",
				FieldStyle.Render(entry.Code),
				entry.Name, entry.IIN, entry.MinAge(), realID)
		}
		return nil
	},
}

// filterJurisdictions keeps the codes whose code or name fuzzy-matches the
// query, preserving match rank.
func filterJurisdictions(codes []string, query string) []string {
	haystack := make([]string, len(codes))
	for i, code := range codes {
		entry, _ := aamva.LookupJurisdiction(code)
		haystack[i] = code + " " + entry.Name
	}

	var out []string
	for _, m := range fuzzy.Find(query, haystack) {
		out = append(out, codes[m.Index])
	}
	return out
}
