// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"errors"
	"fmt"
)

const (
	// SeverityError indicates a violation of the standard that makes the
	// record non-compliant.
	SeverityError Severity = "error"
	// SeverityWarning indicates an advisory finding that never blocks
	// overall validity.
	SeverityWarning Severity = "warning"
	// SeverityInfo indicates a confirmation of correctness, useful for UI
	// feedback loops.
	SeverityInfo Severity = "info"
)

// ErrInvalidSeverity is returned when a Severity value is not recognized.
var ErrInvalidSeverity = errors.New("invalid severity")

type (
	// Severity represents the level of a validation finding.
	Severity string

	// FieldResult is the outcome of validating a single field or a single
	// cross-field rule. Messages are self-contained (field, offending value,
	// expected constraint) so callers can render them without re-deriving
	// context.
	FieldResult struct {
		// Field is the AAMVA element code or friendly field name the finding
		// refers to.
		Field string `json:"field"`
		// Valid reports whether the checked value passed this rule.
		Valid bool `json:"valid"`
		// Severity is the finding level (error, warning, info).
		Severity Severity `json:"severity"`
		// Message is the human-readable description of the finding.
		Message string `json:"message"`
		// Suggestions lists candidate corrections, when any are known.
		Suggestions []string `json:"suggestions,omitempty"`
		// AutoFix is a single replacement value that would satisfy the rule.
		// It is a suggestion only; the package never mutates caller records.
		AutoFix string `json:"auto_fix,omitempty"`
	}

	// Result collects FieldResult entries from a full validation pass,
	// bucketed by severity at insertion time. Every added entry lands in
	// exactly one bucket matching its severity.
	Result struct {
		Errors   []FieldResult `json:"errors"`
		Warnings []FieldResult `json:"warnings"`
		Info     []FieldResult `json:"info"`
	}
)

// IsValid returns whether the Severity is one of the defined levels,
// and a list of validation errors if it is not.
func (s Severity) IsValid() (bool, []error) {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidSeverity, s)}
	}
}

// Add routes a finding into the bucket matching its severity. Findings with
// an unrecognized severity are treated as errors so they are never silently
// dropped.
func (r *Result) Add(fr FieldResult) {
	switch fr.Severity {
	case SeverityWarning:
		r.Warnings = append(r.Warnings, fr)
	case SeverityInfo:
		r.Info = append(r.Info, fr)
	default:
		r.Errors = append(r.Errors, fr)
	}
}

// Merge appends every finding of other into the matching buckets of r.
func (r *Result) Merge(other Result) {
	for _, fr := range other.Errors {
		r.Add(fr)
	}
	for _, fr := range other.Warnings {
		r.Add(fr)
	}
	for _, fr := range other.Info {
		r.Add(fr)
	}
}

// IsValid reports overall validity: true iff no error-severity finding
// failed. Warnings and info never affect the overall flag.
func (r *Result) IsValid() bool {
	for _, fr := range r.Errors {
		if !fr.Valid {
			return false
		}
	}
	return true
}

// Count returns the total number of findings across all buckets.
func (r *Result) Count() int {
	return len(r.Errors) + len(r.Warnings) + len(r.Info)
}
