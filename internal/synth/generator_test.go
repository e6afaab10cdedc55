// SPDX-License-Identifier: MPL-2.0

package synth

import (
	"testing"

	"aamvakit/pkg/aamva"
)

func TestRecord_PassesCompliance(t *testing.T) {
	t.Parallel()

	g := New(42)
	for _, code := range []string{"CA", "NY", "NJ", "TX", "DC"} {
		record, entry, err := g.Record(code)
		if err != nil {
			t.Fatalf("Record(%q): %v", code, err)
		}
		if entry.Code != code {
			t.Fatalf("Record(%q) returned jurisdiction %q", code, entry.Code)
		}
		res := aamva.CheckCompliance(record)
		if !res.IsValid() {
			for _, fr := range res.Errors {
				t.Logf("error on %s: %s", fr.Field, fr.Message)
			}
			t.Fatalf("generated %s record is not compliant", code)
		}
	}
}

func TestRecord_RandomJurisdiction(t *testing.T) {
	t.Parallel()

	g := New(7)
	record, entry, err := g.Record("")
	if err != nil {
		t.Fatalf("Record(\"\"): %v", err)
	}
	if _, ok := aamva.LookupJurisdiction(entry.Code); !ok {
		t.Fatalf("picked unknown jurisdiction %q", entry.Code)
	}
	if record["DAJ"] != entry.Code {
		t.Fatalf("DAJ = %q, want %q", record["DAJ"], entry.Code)
	}
}

func TestRecord_UnknownJurisdiction(t *testing.T) {
	t.Parallel()

	if _, _, err := New(1).Record("ZZ"); err == nil {
		t.Fatal("expected error for unknown jurisdiction")
	}
}

func TestRecord_LicenseNumberMatchesPattern(t *testing.T) {
	t.Parallel()

	g := New(99)
	for i := 0; i < 20; i++ {
		record, _, err := g.Record("CA")
		if err != nil {
			t.Fatal(err)
		}
		fr := aamva.ValidateLicenseNumber(record["DAQ"], "CA")
		if !fr.Valid {
			t.Fatalf("DAQ %q rejected: %s", record["DAQ"], fr.Message)
		}
		if fr.Severity == aamva.SeverityWarning {
			t.Fatalf("DAQ %q does not match the CA pattern", record["DAQ"])
		}
	}
}

func TestRecord_Reproducible(t *testing.T) {
	t.Parallel()

	a, _, err := New(5).Record("TX")
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := New(5).Record("TX")
	if err != nil {
		t.Fatal(err)
	}
	for code, want := range a {
		if got := b[code]; got != want {
			t.Fatalf("seeded runs diverge on %s: %q vs %q", code, want, got)
		}
	}
}

func TestSubfiles_Encode(t *testing.T) {
	t.Parallel()

	record, entry, err := New(11).Record("CA")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := aamva.Encode(Subfiles(record, entry))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := payload[9:15]; got != entry.IIN {
		t.Fatalf("encoded IIN = %q, want %q", got, entry.IIN)
	}
}
