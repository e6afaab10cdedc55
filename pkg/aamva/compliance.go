// SPDX-License-Identifier: MPL-2.0

package aamva

// CheckCompliance runs the full compliance pass over a record: mandatory
// field coverage (present or not), per-field validation, cross-field rules,
// jurisdiction validity, license-number format, and the payload budget —
// merged into a single Result. Keys may be friendly names or element codes;
// ISO dates are normalized before checking. Overall validity is false iff
// any merged finding is a failed error; warnings and info never gate it.
func CheckCompliance(record map[string]string) Result {
	res := ValidateRecord(record)

	fields := NormalizeRecord(record)
	for _, code := range MandatoryFieldCodes() {
		if _, present := fields[code]; !present {
			res.Add(ValidateField(code, ""))
		}
	}
	return res
}
