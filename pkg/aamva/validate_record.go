// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

const (
	// maxPlausibleAge is the sanity bound on age at issue, in years.
	maxPlausibleAge = 120

	// nameDisplayBudget is the per-name display budget of the card; names
	// beyond it must carry a "T" truncation flag.
	nameDisplayBudget = 30

	// payloadHeaderOverhead approximates the fixed bytes of the compliance
	// marker, header, and designator table.
	payloadHeaderOverhead = 30
	// payloadWarnBytes is the print-quality ceiling; denser symbols scan
	// poorly on low-resolution printers.
	payloadWarnBytes = 1500
	// payloadMaxBytes is the capacity ceiling of the PDF417 symbol.
	payloadMaxBytes = 2700

	// licenseDurationMaxYears and licenseDurationMinYears bound the
	// plausible validity window of a license.
	licenseDurationMaxYears = 10
	licenseDurationMinYears = 1
)

// poBoxPattern matches the usual spellings of a PO Box delivery address.
var poBoxPattern = regexp.MustCompile(`(?i)\bP\.?\s*O\.?\s*BOX\b`)

// realIDFieldCodes are the elements a compliance-type "F" (fully compliant)
// card is expected to carry.
var realIDFieldCodes = []string{"DAQ", "DCS", "DAC", "DBB", "DAG", "DAI", "DAJ", "DAK"}

// ValidateRecord validates a license record as a whole: every present field
// against its specification, then the relationships no single field can
// express (date ordering, age bounds, truncation-flag consistency, payload
// budget, REAL ID coverage, PO Box policy). Keys may be AAMVA element codes
// or friendly names; dates may be MMDDYYYY or ISO YYYY-MM-DD.
func ValidateRecord(record map[string]string) Result {
	var res Result

	fields := NormalizeRecord(record)

	for _, code := range sortedKeys(fields) {
		res.Add(ValidateField(code, fields[code]))
	}

	if code := fields["DAJ"]; code != "" {
		res.Add(ValidateJurisdictionCode(code))
	}
	if number := fields["DAQ"]; number != "" {
		res.Add(ValidateLicenseNumber(number, fields["DAJ"]))
	}

	validateDates(fields, &res)
	validateTruncationFlags(fields, &res)
	validatePayloadBudget(fields, &res)
	validateRealID(fields, &res)
	validatePOBox(fields, &res)

	return res
}

// validateDates enforces date_of_birth < issue_date < expiration_date
// (strict), the jurisdiction minimum age at issue, the maximum plausible
// age, and the license-duration sanity window. Rules needing a date that
// failed to parse are skipped; the field validator already reported it.
func validateDates(fields map[string]string, res *Result) {
	dob, dobOK := parseDate(fields["DBB"])
	issue, issueOK := parseDate(fields["DBD"])
	expiry, expiryOK := parseDate(fields["DBA"])

	if dobOK && issueOK && !dob.Before(issue) {
		res.Add(FieldResult{
			Field:    "date_of_birth",
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("date_of_birth (%s) must be strictly before issue_date (%s)",
				fields["DBB"], fields["DBD"]),
		})
	}
	if issueOK && expiryOK && !issue.Before(expiry) {
		res.Add(FieldResult{
			Field:    "expiration_date",
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("expiration_date (%s) must be strictly after issue_date (%s)",
				fields["DBA"], fields["DBD"]),
		})
	}

	if dobOK && issueOK && dob.Before(issue) {
		age := yearsBetween(dob, issue)

		minAge := defaultMinLicenseAge
		jurisdiction := fields["DAJ"]
		if entry, ok := LookupJurisdiction(jurisdiction); ok {
			minAge = entry.MinAge()
		}
		if age < float64(minAge) {
			res.Add(FieldResult{
				Field:    "date_of_birth",
				Valid:    false,
				Severity: SeverityError,
				Message: fmt.Sprintf("age at issue is %.1f years, below the minimum of %d for %s",
					age, minAge, displayJurisdiction(jurisdiction)),
			})
		}
		if age > maxPlausibleAge {
			res.Add(FieldResult{
				Field:    "date_of_birth",
				Valid:    false,
				Severity: SeverityError,
				Message: fmt.Sprintf("age at issue is %.0f years, beyond the plausible maximum of %d",
					age, maxPlausibleAge),
			})
		}
	}

	if issueOK && expiryOK && issue.Before(expiry) {
		duration := yearsBetween(issue, expiry)
		if duration > licenseDurationMaxYears {
			res.Add(FieldResult{
				Field:    "expiration_date",
				Valid:    true,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("license duration of %.1f years is unusually long (over %d years)",
					duration, licenseDurationMaxYears),
			})
		} else if duration < licenseDurationMinYears {
			res.Add(FieldResult{
				Field:    "expiration_date",
				Valid:    true,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("license duration of %.1f years is unusually short (under %d year)",
					duration, licenseDurationMinYears),
			})
		}
	}
}

// validateTruncationFlags cross-checks each name against its truncation
// flag: a name beyond the display budget must be flagged "T", a name within
// it must be flagged "N". Both mismatches are advisory with an auto-fix.
func validateTruncationFlags(fields map[string]string, res *Result) {
	pairs := []struct {
		nameCode, flagCode, label string
	}{
		{"DCS", "DDE", "last name"},
		{"DAC", "DDF", "first name"},
		{"DAD", "DDG", "middle name"},
	}

	for _, p := range pairs {
		name := fields[p.nameCode]
		flag := fields[p.flagCode]
		if name == "" || flag == "" || flag == "U" {
			continue
		}
		tooLong := len(name) > nameDisplayBudget
		switch {
		case tooLong && flag == "N":
			res.Add(FieldResult{
				Field:    p.flagCode,
				Valid:    true,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s is %d characters (over the %d character display budget) but the truncation flag is N",
					p.label, len(name), nameDisplayBudget),
				AutoFix: "T",
			})
		case !tooLong && flag == "T":
			res.Add(FieldResult{
				Field:    p.flagCode,
				Valid:    true,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s is %d characters (within the %d character display budget) but the truncation flag is T",
					p.label, len(name), nameDisplayBudget),
				AutoFix: "N",
			})
		}
	}
}

// validatePayloadBudget estimates the encoded payload size: three bytes of
// element code plus the value plus one separator per field, on top of the
// fixed header overhead. Exceeding the symbol capacity is an error;
// approaching it is a print-quality warning.
func validatePayloadBudget(fields map[string]string, res *Result) {
	total := payloadHeaderOverhead
	for _, value := range fields {
		if value == "" {
			continue
		}
		total += 3 + len(value) + 1
	}

	switch {
	case total > payloadMaxBytes:
		res.Add(FieldResult{
			Field:    "barcode",
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("estimated payload of %d bytes exceeds the %d byte PDF417 capacity",
				total, payloadMaxBytes),
		})
	case total > payloadWarnBytes:
		res.Add(FieldResult{
			Field:    "barcode",
			Valid:    true,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("estimated payload of %d bytes exceeds %d bytes; dense symbols may print poorly",
				total, payloadWarnBytes),
		})
	}
}

// validateRealID checks the advisory REAL ID field set when the compliance
// type is "F". Gaps are warnings: REAL ID status does not gate barcode
// encodability.
func validateRealID(fields map[string]string, res *Result) {
	if fields["DDA"] != "F" {
		return
	}
	for _, code := range realIDFieldCodes {
		if fields[code] != "" {
			continue
		}
		spec, _ := LookupField(code)
		res.Add(FieldResult{
			Field:    code,
			Valid:    true,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("compliance type is F (REAL ID) but %s (%s) is missing",
				spec.Name, code),
		})
	}
}

// validatePOBox warns when the delivery address is a PO Box in a
// jurisdiction that does not accept one.
func validatePOBox(fields map[string]string, res *Result) {
	entry, ok := LookupJurisdiction(fields["DAJ"])
	if !ok || entry.AllowsPOBox {
		return
	}
	if poBoxPattern.MatchString(fields["DAG"]) {
		res.Add(FieldResult{
			Field:    "DAG",
			Valid:    true,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("%s does not accept a PO Box as the delivery address: %q",
				entry.Name, fields["DAG"]),
		})
	}
}

// NormalizeRecord maps friendly field names onto AAMVA element codes and
// rewrites ISO dates into the MMDDYYYY wire format. The caller's map is
// never mutated.
func NormalizeRecord(record map[string]string) map[string]string {
	fields := make(map[string]string, len(record))
	for key, value := range record {
		code := FieldCode(strings.TrimSpace(key))
		if spec, ok := LookupField(code); ok && spec.Format == FormatDate {
			value = normalizeDate(value)
		}
		fields[code] = value
	}
	return fields
}

func displayJurisdiction(code string) string {
	if entry, ok := LookupJurisdiction(code); ok {
		return entry.Name
	}
	if code == "" {
		return "an unspecified jurisdiction"
	}
	return code
}

func sortedKeys(m map[string]string) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}
