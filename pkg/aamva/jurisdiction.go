// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// DefaultIIN is the Issuer Identification Number the encoder falls back to
// when the record names a jurisdiction outside the table. Encoding must stay
// possible for exploratory and test jurisdictions, so an unknown code
// degrades instead of failing.
const DefaultIIN = "636000"

// defaultMinLicenseAge is the minimum age at issue (in years) applied when a
// jurisdiction does not declare its own.
const defaultMinLicenseAge = 16

type (
	// JurisdictionEntry is the static record for one issuing jurisdiction.
	// Entries are immutable after init and shared read-only between the
	// validators and the encoder.
	JurisdictionEntry struct {
		// Code is the two-letter jurisdiction code (e.g. "CA").
		Code string
		// Name is the full jurisdiction name (e.g. "CALIFORNIA").
		Name string
		// IIN is the six-digit Issuer Identification Number.
		IIN string
		// SubfileType is the jurisdiction-specific subfile designator
		// ("Z" plus a per-jurisdiction letter, e.g. "ZC").
		SubfileType string
		// MinLicenseAge overrides the default minimum age at issue when > 0.
		MinLicenseAge int
		// LicensePatterns are the accepted license-number formats, kept as
		// source strings so synthetic generators can produce matching
		// numbers. Matching is any-of: no pattern is preferred over another.
		LicensePatterns []string
		// PatternHint describes the accepted formats for humans.
		PatternHint string
		// RealIDRequired reports whether the jurisdiction issues REAL ID
		// compliant cards by default.
		RealIDRequired bool
		// AllowsPOBox reports whether a PO Box is acceptable as the card's
		// delivery address.
		AllowsPOBox bool
	}
)

// jurisdictions covers the 50 US states and DC. IINs come from the AAMVA
// issuer registry. Pattern entries omit anchors; compilation wraps each in
// ^(?:...)$ so a number must match a whole alternative.
var jurisdictions = map[string]JurisdictionEntry{
	"AL": {Code: "AL", Name: "ALABAMA", IIN: "636033", SubfileType: "ZA",
		LicensePatterns: []string{`[0-9]{1,8}`}, PatternHint: "1-8 digits", AllowsPOBox: true},
	"AK": {Code: "AK", Name: "ALASKA", IIN: "636059", SubfileType: "ZK",
		LicensePatterns: []string{`[0-9]{1,7}`}, PatternHint: "1-7 digits", AllowsPOBox: true},
	"AZ": {Code: "AZ", Name: "ARIZONA", IIN: "636026", SubfileType: "ZZ",
		LicensePatterns: []string{`[A-Z][0-9]{8}`, `[0-9]{9}`},
		PatternHint:     "1 letter + 8 digits, or 9 digits"},
	"AR": {Code: "AR", Name: "ARKANSAS", IIN: "636021", SubfileType: "ZR",
		LicensePatterns: []string{`[0-9]{4,9}`}, PatternHint: "4-9 digits", AllowsPOBox: true},
	"CA": {Code: "CA", Name: "CALIFORNIA", IIN: "636014", SubfileType: "ZC",
		LicensePatterns: []string{`[A-Z][0-9]{7}`},
		PatternHint:     "1 letter + 7 digits", RealIDRequired: true},
	"CO": {Code: "CO", Name: "COLORADO", IIN: "636020", SubfileType: "ZO",
		LicensePatterns: []string{`[0-9]{9}`, `[A-Z][0-9]{3,6}`, `[A-Z]{2}[0-9]{2,5}`},
		PatternHint:     "9 digits, or 1-2 letters + 2-6 digits"},
	"CT": {Code: "CT", Name: "CONNECTICUT", IIN: "636006", SubfileType: "ZT",
		LicensePatterns: []string{`[0-9]{9}`}, PatternHint: "9 digits"},
	"DE": {Code: "DE", Name: "DELAWARE", IIN: "636011", SubfileType: "ZW",
		LicensePatterns: []string{`[0-9]{1,7}`}, PatternHint: "1-7 digits"},
	"DC": {Code: "DC", Name: "DISTRICT OF COLUMBIA", IIN: "636043", SubfileType: "ZD",
		LicensePatterns: []string{`[0-9]{7}`, `[0-9]{9}`}, PatternHint: "7 or 9 digits"},
	"FL": {Code: "FL", Name: "FLORIDA", IIN: "636010", SubfileType: "ZF",
		LicensePatterns: []string{`[A-Z][0-9]{12}`},
		PatternHint:     "1 letter + 12 digits", RealIDRequired: true},
	"GA": {Code: "GA", Name: "GEORGIA", IIN: "636055", SubfileType: "ZG",
		LicensePatterns: []string{`[0-9]{7,9}`}, PatternHint: "7-9 digits"},
	"HI": {Code: "HI", Name: "HAWAII", IIN: "636047", SubfileType: "ZH",
		LicensePatterns: []string{`[A-Z][0-9]{8}`, `[0-9]{9}`},
		PatternHint:     "1 letter + 8 digits, or 9 digits", AllowsPOBox: true},
	"ID": {Code: "ID", Name: "IDAHO", IIN: "636050", SubfileType: "ZI",
		LicensePatterns: []string{`[A-Z]{2}[0-9]{6}[A-Z]`, `[0-9]{9}`},
		PatternHint:     "2 letters + 6 digits + 1 letter, or 9 digits", AllowsPOBox: true},
	"IL": {Code: "IL", Name: "ILLINOIS", IIN: "636035", SubfileType: "ZL",
		LicensePatterns: []string{`[A-Z][0-9]{11,12}`},
		PatternHint:     "1 letter + 11-12 digits"},
	"IN": {Code: "IN", Name: "INDIANA", IIN: "636037", SubfileType: "ZN",
		LicensePatterns: []string{`[A-Z][0-9]{9}`, `[0-9]{9,10}`},
		PatternHint:     "1 letter + 9 digits, or 9-10 digits"},
	"IA": {Code: "IA", Name: "IOWA", IIN: "636018", SubfileType: "ZW",
		LicensePatterns: []string{`[0-9]{9}`, `[0-9]{3}[A-Z]{2}[0-9]{4}`},
		PatternHint:     "9 digits, or 3 digits + 2 letters + 4 digits"},
	"KS": {Code: "KS", Name: "KANSAS", IIN: "636022", SubfileType: "ZS",
		LicensePatterns: []string{`[A-Z][0-9][A-Z][0-9][A-Z]`, `[A-Z][0-9]{8}`, `[0-9]{9}`},
		PatternHint:     "K1A2B style, 1 letter + 8 digits, or 9 digits"},
	"KY": {Code: "KY", Name: "KENTUCKY", IIN: "636046", SubfileType: "ZY",
		LicensePatterns: []string{`[A-Z][0-9]{8,9}`, `[0-9]{9}`},
		PatternHint:     "1 letter + 8-9 digits, or 9 digits"},
	"LA": {Code: "LA", Name: "LOUISIANA", IIN: "636007", SubfileType: "ZU",
		LicensePatterns: []string{`[0-9]{1,9}`}, PatternHint: "up to 9 digits"},
	"ME": {Code: "ME", Name: "MAINE", IIN: "636041", SubfileType: "ZE",
		LicensePatterns: []string{`[0-9]{7}`, `[0-9]{7}[A-Z]`, `[0-9]{8}`},
		PatternHint:     "7-8 digits, optionally 7 digits + 1 letter", AllowsPOBox: true},
	"MD": {Code: "MD", Name: "MARYLAND", IIN: "636003", SubfileType: "ZM",
		LicensePatterns: []string{`[A-Z][0-9]{12}`},
		PatternHint:     "1 letter + 12 digits"},
	"MA": {Code: "MA", Name: "MASSACHUSETTS", IIN: "636002", SubfileType: "ZX",
		LicensePatterns: []string{`[A-Z][0-9]{8}`, `[0-9]{9}`},
		PatternHint:     "1 letter + 8 digits, or 9 digits"},
	"MI": {Code: "MI", Name: "MICHIGAN", IIN: "636032", SubfileType: "ZJ",
		LicensePatterns: []string{`[A-Z][0-9]{10}`, `[A-Z][0-9]{12}`},
		PatternHint:     "1 letter + 10 or 12 digits"},
	"MN": {Code: "MN", Name: "MINNESOTA", IIN: "636038", SubfileType: "ZQ",
		LicensePatterns: []string{`[A-Z][0-9]{12}`},
		PatternHint:     "1 letter + 12 digits"},
	"MS": {Code: "MS", Name: "MISSISSIPPI", IIN: "636051", SubfileType: "ZP",
		LicensePatterns: []string{`[0-9]{9}`}, PatternHint: "9 digits"},
	"MO": {Code: "MO", Name: "MISSOURI", IIN: "636030", SubfileType: "ZB",
		LicensePatterns: []string{`[A-Z][0-9]{5,9}`, `[0-9]{8}[A-Z]{2}`, `[0-9]{9}[A-Z]`, `[0-9]{9}`},
		PatternHint:     "1 letter + 5-9 digits, 8-9 digits + trailing letters, or 9 digits"},
	"MT": {Code: "MT", Name: "MONTANA", IIN: "636008", SubfileType: "ZV",
		LicensePatterns: []string{`[A-Z][0-9]{8}`, `[0-9]{9}`, `[0-9]{13,14}`},
		PatternHint:     "1 letter + 8 digits, 9 digits, or 13-14 digits", AllowsPOBox: true},
	"NE": {Code: "NE", Name: "NEBRASKA", IIN: "636054", SubfileType: "Z1",
		LicensePatterns: []string{`[A-Z][0-9]{6,8}`},
		PatternHint:     "1 letter + 6-8 digits", AllowsPOBox: true},
	"NV": {Code: "NV", Name: "NEVADA", IIN: "636049", SubfileType: "Z2",
		LicensePatterns: []string{`[0-9]{9,10}`, `[0-9]{12}`, `X[0-9]{8}`},
		PatternHint:     "9-12 digits, or X + 8 digits"},
	"NH": {Code: "NH", Name: "NEW HAMPSHIRE", IIN: "636039", SubfileType: "Z3",
		LicensePatterns: []string{`[0-9]{2}[A-Z]{3}[0-9]{5}`},
		PatternHint:     "2 digits + 3 letters + 5 digits"},
	"NJ": {Code: "NJ", Name: "NEW JERSEY", IIN: "636036", SubfileType: "Z4",
		MinLicenseAge:   17,
		LicensePatterns: []string{`[A-Z][0-9]{14}`},
		PatternHint:     "1 letter + 14 digits"},
	"NM": {Code: "NM", Name: "NEW MEXICO", IIN: "636009", SubfileType: "Z5",
		LicensePatterns: []string{`[0-9]{8,9}`}, PatternHint: "8-9 digits", AllowsPOBox: true},
	"NY": {Code: "NY", Name: "NEW YORK", IIN: "636001", SubfileType: "Z6",
		LicensePatterns: []string{`[A-Z][0-9]{7}`, `[A-Z][0-9]{18}`, `[0-9]{8}`, `[0-9]{9}`, `[0-9]{16}`},
		PatternHint:     "1 letter + 7 or 18 digits, 8-9 digits, or 16 digits"},
	"NC": {Code: "NC", Name: "NORTH CAROLINA", IIN: "636004", SubfileType: "Z7",
		LicensePatterns: []string{`[0-9]{1,12}`}, PatternHint: "1-12 digits"},
	"ND": {Code: "ND", Name: "NORTH DAKOTA", IIN: "636034", SubfileType: "Z8",
		LicensePatterns: []string{`[A-Z]{3}[0-9]{6}`, `[0-9]{9}`},
		PatternHint:     "3 letters + 6 digits, or 9 digits", AllowsPOBox: true},
	"OH": {Code: "OH", Name: "OHIO", IIN: "636023", SubfileType: "Z9",
		LicensePatterns: []string{`[A-Z][0-9]{4,8}`, `[A-Z]{2}[0-9]{3,7}`, `[0-9]{8}`},
		PatternHint:     "1-2 letters + digits, or 8 digits"},
	"OK": {Code: "OK", Name: "OKLAHOMA", IIN: "636058", SubfileType: "ZQ",
		LicensePatterns: []string{`[A-Z][0-9]{9}`, `[0-9]{9}`},
		PatternHint:     "1 letter + 9 digits, or 9 digits"},
	"OR": {Code: "OR", Name: "OREGON", IIN: "636029", SubfileType: "ZG",
		LicensePatterns: []string{`[0-9]{1,9}`}, PatternHint: "up to 9 digits"},
	"PA": {Code: "PA", Name: "PENNSYLVANIA", IIN: "636025", SubfileType: "ZP",
		LicensePatterns: []string{`[0-9]{8}`}, PatternHint: "8 digits"},
	"RI": {Code: "RI", Name: "RHODE ISLAND", IIN: "636052", SubfileType: "ZH",
		LicensePatterns: []string{`[0-9]{7}`, `[A-Z][0-9]{6}`},
		PatternHint:     "7 digits, or 1 letter + 6 digits"},
	"SC": {Code: "SC", Name: "SOUTH CAROLINA", IIN: "636005", SubfileType: "ZC",
		LicensePatterns: []string{`[0-9]{5,11}`}, PatternHint: "5-11 digits"},
	"SD": {Code: "SD", Name: "SOUTH DAKOTA", IIN: "636042", SubfileType: "ZD",
		LicensePatterns: []string{`[0-9]{6,10}`, `[0-9]{12}`},
		PatternHint:     "6-10 or 12 digits", AllowsPOBox: true},
	"TN": {Code: "TN", Name: "TENNESSEE", IIN: "636053", SubfileType: "ZE",
		LicensePatterns: []string{`[0-9]{7,9}`}, PatternHint: "7-9 digits"},
	"TX": {Code: "TX", Name: "TEXAS", IIN: "636015", SubfileType: "ZT",
		LicensePatterns: []string{`[0-9]{7,8}`}, PatternHint: "7-8 digits"},
	"UT": {Code: "UT", Name: "UTAH", IIN: "636040", SubfileType: "ZU",
		LicensePatterns: []string{`[0-9]{4,10}`}, PatternHint: "4-10 digits", AllowsPOBox: true},
	"VT": {Code: "VT", Name: "VERMONT", IIN: "636024", SubfileType: "ZV",
		LicensePatterns: []string{`[0-9]{8}`, `[0-9]{7}A`},
		PatternHint:     "8 digits, or 7 digits + A", AllowsPOBox: true},
	"VA": {Code: "VA", Name: "VIRGINIA", IIN: "636000", SubfileType: "ZV",
		LicensePatterns: []string{`[A-Z][0-9]{8,11}`, `[0-9]{9}`},
		PatternHint:     "1 letter + 8-11 digits, or 9 digits"},
	"WA": {Code: "WA", Name: "WASHINGTON", IIN: "636045", SubfileType: "ZW",
		LicensePatterns: []string{`[A-Z*]{7}[0-9]{3}[0-9A-Z]{2}`},
		PatternHint:     "7 letters/asterisks + 3 digits + 2 alphanumerics"},
	"WV": {Code: "WV", Name: "WEST VIRGINIA", IIN: "636061", SubfileType: "ZV",
		LicensePatterns: []string{`[0-9]{7}`, `[A-Z]{1,2}[0-9]{5,6}`},
		PatternHint:     "7 digits, or 1-2 letters + 5-6 digits", AllowsPOBox: true},
	"WI": {Code: "WI", Name: "WISCONSIN", IIN: "636031", SubfileType: "ZW",
		LicensePatterns: []string{`[A-Z][0-9]{13}`},
		PatternHint:     "1 letter + 13 digits"},
	"WY": {Code: "WY", Name: "WYOMING", IIN: "636060", SubfileType: "ZW",
		LicensePatterns: []string{`[0-9]{9,10}`}, PatternHint: "9-10 digits", AllowsPOBox: true},
}

// licensePatterns holds the compiled any-of pattern sets, keyed by
// jurisdiction code. Built once at init, read-only afterwards.
var licensePatterns = compileLicensePatterns()

func compileLicensePatterns() map[string][]*regexp.Regexp {
	compiled := make(map[string][]*regexp.Regexp, len(jurisdictions))
	for code, entry := range jurisdictions {
		res := make([]*regexp.Regexp, 0, len(entry.LicensePatterns))
		for _, p := range entry.LicensePatterns {
			res = append(res, regexp.MustCompile(`^(?:`+p+`)$`))
		}
		compiled[code] = res
	}
	return compiled
}

// LookupJurisdiction returns the entry for a two-letter jurisdiction code.
// The lookup is case-insensitive.
func LookupJurisdiction(code string) (JurisdictionEntry, bool) {
	entry, ok := jurisdictions[strings.ToUpper(code)]
	return entry, ok
}

// LookupJurisdictionByName returns the entry whose full name matches the
// given name, case-insensitively.
func LookupJurisdictionByName(name string) (JurisdictionEntry, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, entry := range jurisdictions {
		if entry.Name == upper {
			return entry, true
		}
	}
	return JurisdictionEntry{}, false
}

// JurisdictionCodes returns every supported jurisdiction code, sorted.
func JurisdictionCodes() []string {
	codes := maps.Keys(jurisdictions)
	sort.Strings(codes)
	return codes
}

// MinAge returns the jurisdiction's minimum age at issue in years, falling
// back to the standard default for jurisdictions without an override or
// outside the table.
func (e JurisdictionEntry) MinAge() int {
	if e.MinLicenseAge > 0 {
		return e.MinLicenseAge
	}
	return defaultMinLicenseAge
}
