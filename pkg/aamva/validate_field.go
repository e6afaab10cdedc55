// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ValidateField checks a single element value against its specification.
// Checks run in a fixed order and short-circuit on the first failure:
// unknown code, mandatory presence, length bound, enumerated set, value
// format (date or numeric range), and printable-ASCII purity. The same
// input always yields the same result.
func ValidateField(code, value string) FieldResult {
	code = FieldCode(code)

	spec, ok := LookupField(code)
	if !ok {
		return FieldResult{
			Field:    code,
			Valid:    true,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("field %q is not in the AAMVA specification table", code),
		}
	}

	if value == "" {
		if spec.Mandatory {
			return FieldResult{
				Field:    code,
				Valid:    false,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s (%s) is mandatory but empty", spec.Name, code),
			}
		}
		return FieldResult{
			Field:    code,
			Valid:    true,
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("%s (%s) is optional and not set", spec.Name, code),
		}
	}

	if spec.MaxLength > 0 && len(value) > spec.MaxLength {
		return FieldResult{
			Field:    code,
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("%s (%s) value %q is %d bytes, exceeding the %d byte limit",
				spec.Name, code, value, len(value), spec.MaxLength),
			AutoFix: value[:spec.MaxLength],
		}
	}

	if len(spec.Values) > 0 && !slices.Contains(spec.Values, value) {
		return FieldResult{
			Field:    code,
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("%s (%s) value %q is not one of the allowed values: %s",
				spec.Name, code, value, strings.Join(spec.Values, ", ")),
			Suggestions: append([]string(nil), spec.Values...),
		}
	}

	switch spec.Format {
	case FormatDate:
		if _, ok := parseDate(value); !ok {
			return FieldResult{
				Field:    code,
				Valid:    false,
				Severity: SeverityError,
				Message: fmt.Sprintf("%s (%s) value %q is not a valid MMDDYYYY calendar date",
					spec.Name, code, value),
			}
		}
	case FormatNumeric:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < spec.Min || n > spec.Max {
			return FieldResult{
				Field:    code,
				Valid:    false,
				Severity: SeverityError,
				Message: fmt.Sprintf("%s (%s) value %q must be a number between %d and %d %s",
					spec.Name, code, value, spec.Min, spec.Max, spec.Unit),
			}
		}
	}

	if !isPrintableASCII(value) {
		return FieldResult{
			Field:    code,
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("%s (%s) value %q contains characters outside printable ASCII (0x20-0x7E)",
				spec.Name, code, value),
		}
	}

	return FieldResult{
		Field:    code,
		Valid:    true,
		Severity: SeverityInfo,
		Message:  fmt.Sprintf("%s (%s) complies with the standard", spec.Name, code),
	}
}
