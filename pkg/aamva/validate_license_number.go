// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	licenseNumberMinLen = 1
	licenseNumberMaxLen = 25
)

// generalLicensePattern is the jurisdiction-independent character set:
// uppercase letters, digits, and hyphens.
var generalLicensePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// ValidateLicenseNumber checks a license number against the general AAMVA
// constraints and then against the jurisdiction's registered formats. A
// general-constraint violation is an error; a format mismatch is only a
// warning, since real-world numbering schemes evolve faster than pattern
// tables. Jurisdictions without registered patterns get no format opinion.
func ValidateLicenseNumber(number, jurisdictionCode string) FieldResult {
	normalized := strings.ToUpper(strings.TrimSpace(number))

	if len(normalized) < licenseNumberMinLen || len(normalized) > licenseNumberMaxLen {
		return FieldResult{
			Field:    "license_number",
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("license number %q is %d characters; it must be %d-%d characters long",
				number, len(normalized), licenseNumberMinLen, licenseNumberMaxLen),
		}
	}
	if !generalLicensePattern.MatchString(normalized) {
		return FieldResult{
			Field:    "license_number",
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("license number %q may only contain uppercase letters, digits, and hyphens",
				number),
		}
	}

	code := strings.ToUpper(strings.TrimSpace(jurisdictionCode))
	patterns, ok := licensePatterns[code]
	if !ok || len(patterns) == 0 {
		return FieldResult{
			Field:    "license_number",
			Valid:    true,
			Severity: SeverityInfo,
			Message: fmt.Sprintf("no license number format registered for jurisdiction %q; general constraints satisfied",
				jurisdictionCode),
		}
	}

	// Any-of match: no pattern is preferred over another.
	for _, p := range patterns {
		if p.MatchString(normalized) {
			entry, _ := LookupJurisdiction(code)
			return FieldResult{
				Field:    "license_number",
				Valid:    true,
				Severity: SeverityInfo,
				Message: fmt.Sprintf("license number %q matches the %s format", normalized,
					entry.Name),
			}
		}
	}

	entry, _ := LookupJurisdiction(code)
	return FieldResult{
		Field:    "license_number",
		Valid:    true,
		Severity: SeverityWarning,
		Message: fmt.Sprintf("license number %q does not match the expected %s format: %s",
			normalized, entry.Name, entry.PatternHint),
	}
}
