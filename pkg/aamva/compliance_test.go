// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"strings"
	"testing"
)

func TestCheckCompliance_CompliantRecord(t *testing.T) {
	t.Parallel()

	res := CheckCompliance(validRecord())
	if !res.IsValid() {
		t.Fatalf("record should be compliant, errors: %+v", res.Errors)
	}
}

func TestCheckCompliance_MandatoryFieldCoverage(t *testing.T) {
	t.Parallel()

	// Omitting any mandatory field must fail compliance with an error
	// naming that field.
	for _, code := range MandatoryFieldCodes() {
		code := code
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			r := validRecord()
			delete(r, code)
			res := CheckCompliance(r)
			if res.IsValid() {
				t.Fatalf("omitting %s should fail compliance", code)
			}
			found := false
			for _, fr := range res.Errors {
				if fr.Field == code && !fr.Valid {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no error names the missing field %s: %+v", code, res.Errors)
			}
		})
	}
}

func TestCheckCompliance_FriendlyNames(t *testing.T) {
	t.Parallel()

	record := map[string]string{
		"license_number":         "D1234567",
		"last_name":              "SAMPLE",
		"first_name":             "JANE",
		"middle_name":            "MARIE",
		"date_of_birth":          "1990-05-15",
		"issue_date":             "2020-01-10",
		"expiration_date":        "2028-05-15",
		"sex":                    "1",
		"eye_color":              "BRO",
		"height":                 "69",
		"street_address":         "123 MAIN ST",
		"city":                   "SACRAMENTO",
		"jurisdiction":           "CA",
		"postal_code":            "95814",
		"vehicle_class":          "C",
		"restrictions":           "NONE",
		"endorsements":           "NONE",
		"document_discriminator": "1234567890123",
		"country":                "USA",
		"last_name_truncation":   "N",
		"first_name_truncation":  "N",
		"middle_name_truncation": "N",
	}

	res := CheckCompliance(record)
	if !res.IsValid() {
		t.Fatalf("friendly-name record with ISO dates should be compliant, errors: %+v", res.Errors)
	}
}

func TestCheckCompliance_ExpirationBeforeIssue(t *testing.T) {
	t.Parallel()

	res := CheckCompliance(recordWith(map[string]string{"DBA": "05152019"}))
	if res.IsValid() {
		t.Fatal("expiration before issue should fail compliance")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(res.Errors), res.Errors)
	}
	if !strings.Contains(res.Errors[0].Message, "expiration_date") {
		t.Errorf("error should reference the expiration date, got %q", res.Errors[0].Message)
	}
}

func TestCheckCompliance_WarningsNeverGate(t *testing.T) {
	t.Parallel()

	// License-number format warning plus a long-duration warning: still valid.
	r := recordWith(map[string]string{"DAQ": "999", "DBA": "01102035"})
	res := CheckCompliance(r)
	if !res.IsValid() {
		t.Fatalf("warnings must never gate overall validity, errors: %+v", res.Errors)
	}
	if len(res.Warnings) < 2 {
		t.Errorf("expected at least two warnings, got %+v", res.Warnings)
	}
}
