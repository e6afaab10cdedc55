// SPDX-License-Identifier: MPL-2.0

// Package synth generates synthetic license records for scanner testing.
// Generated records are internally consistent by construction: dates in
// order, ages above the jurisdiction minimum, enum values drawn from the
// specification table, and license numbers produced from the jurisdiction's
// own format patterns.
package synth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"aamvakit/pkg/aamva"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces synthetic license records. A zero seed randomizes;
// any other seed makes the output reproducible.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// New creates a Generator. Seed 0 draws a random seed.
func New(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now(),
	}
}

// Record builds one synthetic record for the given jurisdiction code, or a
// random jurisdiction when the code is empty. The returned record uses
// AAMVA element codes as keys and always passes CheckCompliance.
func (g *Generator) Record(jurisdiction string) (map[string]string, aamva.JurisdictionEntry, error) {
	code := strings.ToUpper(strings.TrimSpace(jurisdiction))
	if code == "" {
		codes := aamva.JurisdictionCodes()
		code = codes[g.faker.Number(0, len(codes)-1)]
	}
	entry, ok := aamva.LookupJurisdiction(code)
	if !ok {
		return nil, aamva.JurisdictionEntry{}, fmt.Errorf("unknown jurisdiction %q", jurisdiction)
	}

	dob, issue, expiry := g.dates(entry)

	lastName := strings.ToUpper(g.faker.LastName())
	firstName := strings.ToUpper(g.faker.FirstName())
	middleName := strings.ToUpper(g.faker.FirstName())

	record := map[string]string{
		"DAQ": g.licenseNumber(entry),
		"DCS": lastName,
		"DAC": firstName,
		"DAD": middleName,
		"DBB": dob.Format("01022006"),
		"DBD": issue.Format("01022006"),
		"DBA": expiry.Format("01022006"),
		"DBC": g.faker.RandomString([]string{"1", "2"}),
		"DAY": g.enumValue("DAY"),
		"DAZ": g.enumValue("DAZ"),
		"DAU": strconv.Itoa(g.faker.Number(58, 76)),
		"DAW": strconv.Itoa(g.faker.Number(110, 250)),
		"DAG": clipUpper(g.faker.Street(), 35),
		"DAI": clipUpper(g.faker.City(), 20),
		"DAJ": entry.Code,
		"DAK": g.faker.Zip(),
		"DCA": g.faker.RandomString([]string{"C", "D", "M"}),
		"DCB": "NONE",
		"DCD": "NONE",
		"DCF": g.faker.Regex(`[0-9]{13}`),
		"DCG": "USA",
		"DDE": truncationFlag(lastName),
		"DDF": truncationFlag(firstName),
		"DDG": truncationFlag(middleName),
	}

	if entry.RealIDRequired {
		record["DDA"] = "F"
	} else {
		record["DDA"] = g.faker.RandomString([]string{"F", "N"})
	}
	if g.faker.Bool() {
		record["DDK"] = "1"
	}
	if g.faker.Number(1, 10) == 1 {
		record["DDL"] = "1"
	}

	return record, entry, nil
}

// Subfiles builds the two-subfile sequence the encoder expects for a
// generated record: the DL subfile followed by the jurisdiction subfile.
func Subfiles(record map[string]string, entry aamva.JurisdictionEntry) []aamva.Subfile {
	return []aamva.Subfile{
		aamva.NewDLSubfile(record),
		aamva.NewJurisdictionSubfile(entry, nil),
	}
}

// dates produces date_of_birth < issue < expiry with the holder at least
// three years past the jurisdiction's minimum driving age at issue.
func (g *Generator) dates(entry aamva.JurisdictionEntry) (dob, issue, expiry time.Time) {
	issue = g.faker.DateRange(g.now.AddDate(-3, 0, 0), g.now.AddDate(0, 0, -1))

	age := g.faker.Number(entry.MinAge()+3, 85)
	dob = issue.AddDate(-age, 0, -g.faker.Number(0, 300))

	expiry = issue.AddDate(g.faker.Number(4, 8), 0, 0)
	return dob, issue, expiry
}

// licenseNumber generates a number matching one of the jurisdiction's
// registered patterns; alternatives are equally likely. A few patterns
// admit characters outside the general licensing charset (WA allows "*");
// those are rewritten to a letter the pattern also accepts.
func (g *Generator) licenseNumber(entry aamva.JurisdictionEntry) string {
	pattern := entry.LicensePatterns[g.faker.Number(0, len(entry.LicensePatterns)-1)]
	number := strings.ToUpper(g.faker.Regex(pattern))
	return strings.ReplaceAll(number, "*", "A")
}

// enumValue draws a random allowed value from the field's enumerated set.
func (g *Generator) enumValue(code string) string {
	spec, _ := aamva.LookupField(code)
	return g.faker.RandomString(spec.Values)
}

func truncationFlag(name string) string {
	if len(name) > 30 {
		return "T"
	}
	return "N"
}

func clipUpper(s string, max int) string {
	s = strings.ToUpper(s)
	if len(s) > max {
		return s[:max]
	}
	return s
}
