// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"aamvakit/pkg/aamva"
)

// renderResult writes validation findings in severity order: errors, then
// warnings, then (verbose only) info confirmations, followed by a one-line
// verdict. Returns true when the result is valid.
func renderResult(w io.Writer, res aamva.Result, verboseMode bool) bool {
	for _, fr := range res.Errors {
		renderFinding(w, ErrorStyle.Render("error"), fr)
	}
	for _, fr := range res.Warnings {
		renderFinding(w, WarningStyle.Render("warning"), fr)
	}
	if verboseMode {
		for _, fr := range res.Info {
			renderFinding(w, VerboseStyle.Render("info"), fr)
		}
	}

	if res.IsValid() {
		fmt.Fprintf(w, "%s (%d warnings)\n", SuccessStyle.Render("✓ record is valid"), len(res.Warnings))
	} else {
		fmt.Fprintf(w, "%s (%d errors, %d warnings)\n", ErrorStyle.Render("✗ record is not valid"), len(res.Errors), len(res.Warnings))
	}
	if verboseMode {
		fmt.Fprintf(w, "%s\n", VerboseStyle.Render(fmt.Sprintf("findings: %d", res.Count())))
	}
	return res.IsValid()
}

func renderFinding(w io.Writer, prefix string, fr aamva.FieldResult) {
	fmt.Fprintf(w, "%s %s: %s\n", prefix, FieldStyle.Render(fr.Field), fr.Message)
	if fr.AutoFix != "" {
		fmt.Fprintf(w, "  %s\n", HintStyle.Render("auto-fix: "+fr.AutoFix))
	}
	if len(fr.Suggestions) > 0 {
		fmt.Fprintf(w, "  %s\n", HintStyle.Render("suggestions: "+strings.Join(fr.Suggestions, ", ")))
	}
}
