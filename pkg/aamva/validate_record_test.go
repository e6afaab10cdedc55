// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"strings"
	"testing"
)

// validRecord is a fully populated, compliant California record. Tests
// mutate copies of it to trigger individual rules.
func validRecord() map[string]string {
	return map[string]string{
		"DAQ": "D1234567",
		"DCS": "SAMPLE",
		"DAC": "JANE",
		"DAD": "MARIE",
		"DBB": "05151990",
		"DBD": "01102020",
		"DBA": "05152028",
		"DBC": "1",
		"DAY": "BRO",
		"DAU": "69",
		"DAG": "123 MAIN ST",
		"DAI": "SACRAMENTO",
		"DAJ": "CA",
		"DAK": "95814",
		"DCA": "C",
		"DCB": "NONE",
		"DCD": "NONE",
		"DCF": "1234567890123",
		"DCG": "USA",
		"DDE": "N",
		"DDF": "N",
		"DDG": "N",
	}
}

func recordWith(overrides map[string]string) map[string]string {
	r := validRecord()
	for k, v := range overrides {
		r[k] = v
	}
	return r
}

func TestValidateRecord_CompliantRecord(t *testing.T) {
	t.Parallel()

	res := ValidateRecord(validRecord())
	if !res.IsValid() {
		t.Fatalf("record should be valid, errors: %+v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected zero errors, got %d: %+v", len(res.Errors), res.Errors)
	}
}

func TestValidateRecord_DateOrdering(t *testing.T) {
	t.Parallel()

	// Expiration before issue: exactly one error naming the pair.
	res := ValidateRecord(recordWith(map[string]string{"DBA": "05152019"}))
	if res.IsValid() {
		t.Fatal("expiration before issue should be invalid")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %d: %+v", len(res.Errors), res.Errors)
	}
	msg := res.Errors[0].Message
	if !strings.Contains(msg, "expiration_date") || !strings.Contains(msg, "issue_date") {
		t.Errorf("error should name the out-of-order pair, got %q", msg)
	}

	// Birth after issue.
	res = ValidateRecord(recordWith(map[string]string{"DBB": "05152021"}))
	if res.IsValid() {
		t.Error("birth after issue should be invalid")
	}

	// Equal dates violate the strict ordering.
	res = ValidateRecord(recordWith(map[string]string{"DBB": "01102020"}))
	if res.IsValid() {
		t.Error("birth equal to issue should be invalid")
	}
}

func TestValidateRecord_MinimumAge(t *testing.T) {
	t.Parallel()

	// 14 years old at issue in California (minimum 16).
	res := ValidateRecord(recordWith(map[string]string{"DBB": "01102006"}))
	if res.IsValid() {
		t.Error("14-year-old should be below the CA minimum")
	}

	// 16.5 years old: fine in CA, below the NJ override of 17.
	sixteen := map[string]string{"DBB": "07102003"}
	if res := ValidateRecord(recordWith(sixteen)); !res.IsValid() {
		t.Errorf("16.5-year-old should pass in CA: %+v", res.Errors)
	}
	nj := recordWith(sixteen)
	nj["DAJ"] = "NJ"
	nj["DAQ"] = "D12345678901234" // NJ format: 1 letter + 14 digits
	if res := ValidateRecord(nj); res.IsValid() {
		t.Error("16.5-year-old should be below the NJ minimum of 17")
	}
}

func TestValidateRecord_MaximumAge(t *testing.T) {
	t.Parallel()

	res := ValidateRecord(recordWith(map[string]string{"DBB": "05151890"}))
	if res.IsValid() {
		t.Error("130-year-old should be beyond the plausible maximum")
	}
}

func TestValidateRecord_DurationWarnings(t *testing.T) {
	t.Parallel()

	// 15-year duration: valid with a warning.
	res := ValidateRecord(recordWith(map[string]string{"DBA": "01102035"}))
	if !res.IsValid() {
		t.Fatalf("long duration should not block validity: %+v", res.Errors)
	}
	if !hasWarningContaining(res, "unusually long") {
		t.Errorf("expected an unusually-long warning, got %+v", res.Warnings)
	}

	// 6-month duration.
	res = ValidateRecord(recordWith(map[string]string{"DBA": "07102020"}))
	if !res.IsValid() {
		t.Fatalf("short duration should not block validity: %+v", res.Errors)
	}
	if !hasWarningContaining(res, "unusually short") {
		t.Errorf("expected an unusually-short warning, got %+v", res.Warnings)
	}
}

func TestValidateRecord_TruncationFlags(t *testing.T) {
	t.Parallel()

	longName := strings.Repeat("A", 35)

	// 35-character name flagged N: warning with auto-fix T.
	res := ValidateRecord(recordWith(map[string]string{"DCS": longName, "DDE": "N"}))
	fr, ok := findWarning(res, "DDE")
	if !ok {
		t.Fatalf("expected a DDE truncation warning, got %+v", res.Warnings)
	}
	if fr.AutoFix != "T" {
		t.Errorf("AutoFix = %q, want T", fr.AutoFix)
	}

	// 20-character name flagged T: warning with auto-fix N.
	res = ValidateRecord(recordWith(map[string]string{"DCS": strings.Repeat("B", 20), "DDE": "T"}))
	fr, ok = findWarning(res, "DDE")
	if !ok {
		t.Fatalf("expected a DDE truncation warning, got %+v", res.Warnings)
	}
	if fr.AutoFix != "N" {
		t.Errorf("AutoFix = %q, want N", fr.AutoFix)
	}

	// "U" (unknown) expresses no opinion.
	res = ValidateRecord(recordWith(map[string]string{"DCS": longName, "DDE": "U"}))
	if _, ok := findWarning(res, "DDE"); ok {
		t.Error("flag U should not produce a truncation warning")
	}
}

func TestValidateRecord_RealIDAdvisory(t *testing.T) {
	t.Parallel()

	r := recordWith(map[string]string{"DDA": "F"})
	delete(r, "DAK")
	res := ValidateRecord(r)
	if !hasWarningContaining(res, "REAL ID") {
		t.Errorf("missing REAL ID field should warn, got %+v", res.Warnings)
	}

	// Advisory only: a warning must never come back as an error.
	for _, fr := range res.Errors {
		if strings.Contains(fr.Message, "REAL ID") {
			t.Errorf("REAL ID gap must not be an error: %+v", fr)
		}
	}
}

func TestValidateRecord_POBox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		address string
		want    bool
	}{
		{"P.O. BOX 1234", true},
		{"PO BOX 1234", true},
		{"p.o. box 99", true},
		{"123 MAIN ST", false},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			t.Parallel()
			// CA does not allow PO Box delivery addresses.
			res := ValidateRecord(recordWith(map[string]string{"DAG": tt.address}))
			got := hasWarningContaining(res, "PO Box")
			if got != tt.want {
				t.Errorf("address %q: PO Box warning = %v, want %v", tt.address, got, tt.want)
			}
		})
	}

	// Alabama allows PO Boxes: no warning.
	al := recordWith(map[string]string{"DAG": "PO BOX 1234", "DAJ": "AL", "DAQ": "1234567"})
	if res := ValidateRecord(al); hasWarningContaining(res, "PO Box") {
		t.Error("AL allows PO Box addresses, no warning expected")
	}
}

func TestValidateRecord_PayloadBudget(t *testing.T) {
	t.Parallel()

	// Stuffing a huge value through an unknown code bypasses per-field
	// length limits and trips the total budget.
	r := recordWith(map[string]string{"ZZA": strings.Repeat("X", 2800)})
	res := ValidateRecord(r)
	if res.IsValid() {
		t.Error("payload beyond symbol capacity should be an error")
	}

	r = recordWith(map[string]string{"ZZA": strings.Repeat("X", 1600)})
	res = ValidateRecord(r)
	if !res.IsValid() {
		t.Fatalf("payload in the warning band should stay valid: %+v", res.Errors)
	}
	if !hasWarningContaining(res, "print") {
		t.Errorf("expected a print-quality warning, got %+v", res.Warnings)
	}
}

func TestValidateRecord_DateOrderInvariant(t *testing.T) {
	t.Parallel()

	// For every record reported valid, the strict ordering must hold.
	records := []map[string]string{
		validRecord(),
		recordWith(map[string]string{"DBB": "12311970", "DBD": "06152015", "DBA": "06152023"}),
		recordWith(map[string]string{"DBB": "05152021"}), // invalid on purpose
	}
	for _, r := range records {
		res := ValidateRecord(r)
		if !res.IsValid() {
			continue
		}
		dob, _ := parseDate(r["DBB"])
		issue, _ := parseDate(r["DBD"])
		expiry, _ := parseDate(r["DBA"])
		if !dob.Before(issue) || !issue.Before(expiry) {
			t.Errorf("record reported valid but dates are out of order: %v", r)
		}
	}
}

func hasWarningContaining(res Result, substr string) bool {
	for _, fr := range res.Warnings {
		if strings.Contains(fr.Message, substr) {
			return true
		}
	}
	return false
}

func findWarning(res Result, field string) (FieldResult, bool) {
	for _, fr := range res.Warnings {
		if fr.Field == field {
			return fr, true
		}
	}
	return FieldResult{}, false
}
