// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"sort"

	"golang.org/x/exp/maps"
)

const (
	// FormatNone means the field carries free text constrained only by
	// length and character set.
	FormatNone FieldFormat = ""
	// FormatDate means the field must be exactly eight digits forming a
	// real MMDDYYYY calendar date.
	FormatDate FieldFormat = "MMDDYYYY"
	// FormatNumeric means the field must parse as an integer inside the
	// spec's Min/Max range.
	FormatNumeric FieldFormat = "numeric"
)

type (
	// FieldFormat tags the value format a FieldSpec enforces.
	FieldFormat string

	// FieldSpec describes the constraints the standard places on one data
	// element. Each constraint kind is an explicit optional sub-field: a
	// zero MaxLength means unbounded, a nil Values slice means no enum, and
	// FormatNone means no format rule.
	FieldSpec struct {
		// Name is the display name of the element (e.g. "Customer ID Number").
		Name string
		// Mandatory reports whether the DL subfile must carry the element.
		Mandatory bool
		// MaxLength bounds the encoded value length in bytes (0 = unbounded).
		MaxLength int
		// Values enumerates the allowed values (exact, case-sensitive match).
		Values []string
		// Format is the value format rule, if any.
		Format FieldFormat
		// Min and Max bound FormatNumeric values (inclusive).
		Min, Max int
		// Unit names the measurement unit of FormatNumeric values.
		Unit string
	}
)

// fieldSpecs covers every mandatory element of the DL subfile plus the
// optional, compliance, and truncation elements commonly present on US
// licenses. Keyed by the three-letter AAMVA element code.
var fieldSpecs = map[string]FieldSpec{
	"DAQ": {Name: "Customer ID Number", Mandatory: true, MaxLength: 25},
	"DCS": {Name: "Family Name", Mandatory: true, MaxLength: 40},
	"DAC": {Name: "First Name", Mandatory: true, MaxLength: 40},
	"DAD": {Name: "Middle Name", Mandatory: true, MaxLength: 40},
	"DBD": {Name: "Document Issue Date", Mandatory: true, MaxLength: 8, Format: FormatDate},
	"DBB": {Name: "Date of Birth", Mandatory: true, MaxLength: 8, Format: FormatDate},
	"DBA": {Name: "Document Expiration Date", Mandatory: true, MaxLength: 8, Format: FormatDate},
	"DBC": {Name: "Physical Description - Sex", Mandatory: true, MaxLength: 1, Values: []string{"1", "2", "9"}},
	"DAY": {Name: "Physical Description - Eye Color", Mandatory: true, MaxLength: 3,
		Values: []string{"BLK", "BLU", "BRO", "GRY", "GRN", "HAZ", "MAR", "PNK", "DIC", "UNK"}},
	"DAU": {Name: "Physical Description - Height", Mandatory: true, MaxLength: 6,
		Format: FormatNumeric, Min: 20, Max: 108, Unit: "inches"},
	"DAG": {Name: "Address - Street 1", Mandatory: true, MaxLength: 35},
	"DAH": {Name: "Address - Street 2", MaxLength: 35},
	"DAI": {Name: "Address - City", Mandatory: true, MaxLength: 20},
	"DAJ": {Name: "Address - Jurisdiction Code", Mandatory: true, MaxLength: 2},
	"DAK": {Name: "Address - Postal Code", Mandatory: true, MaxLength: 11},
	"DCA": {Name: "Jurisdiction-specific Vehicle Class", Mandatory: true, MaxLength: 6},
	"DCB": {Name: "Jurisdiction-specific Restriction Codes", Mandatory: true, MaxLength: 12},
	"DCD": {Name: "Jurisdiction-specific Endorsement Codes", Mandatory: true, MaxLength: 5},
	"DCF": {Name: "Document Discriminator", Mandatory: true, MaxLength: 25},
	"DCG": {Name: "Country Identification", Mandatory: true, MaxLength: 3, Values: []string{"USA", "CAN"}},
	"DDE": {Name: "Family Name Truncation", Mandatory: true, MaxLength: 1, Values: []string{"T", "N", "U"}},
	"DDF": {Name: "First Name Truncation", Mandatory: true, MaxLength: 1, Values: []string{"T", "N", "U"}},
	"DDG": {Name: "Middle Name Truncation", Mandatory: true, MaxLength: 1, Values: []string{"T", "N", "U"}},

	"DAW": {Name: "Weight (pounds)", MaxLength: 3, Format: FormatNumeric, Min: 1, Max: 999, Unit: "pounds"},
	"DAZ": {Name: "Hair Color", MaxLength: 12,
		Values: []string{"BAL", "BLK", "BLN", "BRO", "GRY", "RED", "SDY", "WHI", "UNK"}},
	"DCL": {Name: "Race / Ethnicity", MaxLength: 3, Values: []string{"AI", "AP", "BK", "H", "O", "U", "W"}},
	"DCU": {Name: "Name Suffix", MaxLength: 5},
	"DDA": {Name: "Compliance Type", MaxLength: 1, Values: []string{"F", "N"}},
	"DDB": {Name: "Card Revision Date", MaxLength: 8, Format: FormatDate},
	"DDC": {Name: "HAZMAT Endorsement Expiration Date", MaxLength: 8, Format: FormatDate},
	"DDD": {Name: "Limited Duration Document Indicator", MaxLength: 1, Values: []string{"0", "1"}},
	"DDK": {Name: "Organ Donor Indicator", MaxLength: 1, Values: []string{"1"}},
	"DDL": {Name: "Veteran Indicator", MaxLength: 1, Values: []string{"1"}},
}

// friendlyNames maps caller-facing field names 1:1 onto AAMVA element codes.
var friendlyNames = map[string]string{
	"license_number":          "DAQ",
	"last_name":               "DCS",
	"first_name":              "DAC",
	"middle_name":             "DAD",
	"issue_date":              "DBD",
	"date_of_birth":           "DBB",
	"expiration_date":         "DBA",
	"sex":                     "DBC",
	"eye_color":               "DAY",
	"height":                  "DAU",
	"street_address":          "DAG",
	"street_address_2":        "DAH",
	"city":                    "DAI",
	"jurisdiction":            "DAJ",
	"postal_code":             "DAK",
	"vehicle_class":           "DCA",
	"restrictions":            "DCB",
	"endorsements":            "DCD",
	"document_discriminator":  "DCF",
	"country":                 "DCG",
	"weight":                  "DAW",
	"hair_color":              "DAZ",
	"race":                    "DCL",
	"name_suffix":             "DCU",
	"compliance_type":         "DDA",
	"card_revision_date":      "DDB",
	"hazmat_expiration_date":  "DDC",
	"limited_duration":        "DDD",
	"last_name_truncation":    "DDE",
	"first_name_truncation":   "DDF",
	"middle_name_truncation":  "DDG",
	"organ_donor":             "DDK",
	"veteran":                 "DDL",
}

// LookupField returns the specification for an AAMVA element code.
func LookupField(code string) (FieldSpec, bool) {
	spec, ok := fieldSpecs[code]
	return spec, ok
}

// FieldCode resolves a friendly field name (e.g. "license_number") to its
// AAMVA element code. Inputs that already are element codes pass through
// unchanged; unknown names are returned as-is so the field validator can
// flag them.
func FieldCode(name string) string {
	if _, ok := fieldSpecs[name]; ok {
		return name
	}
	if code, ok := friendlyNames[name]; ok {
		return code
	}
	return name
}

// FieldName resolves an AAMVA element code back to its friendly name, or
// returns the code itself when no friendly name exists.
func FieldName(code string) string {
	for name, c := range friendlyNames {
		if c == code {
			return name
		}
	}
	return code
}

// MandatoryFieldCodes returns the element codes the DL subfile must carry,
// sorted for deterministic iteration.
func MandatoryFieldCodes() []string {
	var codes []string
	for code, spec := range fieldSpecs {
		if spec.Mandatory {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// FieldCodes returns every element code the specification table covers,
// sorted.
func FieldCodes() []string {
	codes := maps.Keys(fieldSpecs)
	sort.Strings(codes)
	return codes
}
