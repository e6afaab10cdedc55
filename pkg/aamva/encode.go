// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// complianceMarker opens every payload: "@", LF, RS (0x1E), CR.
	complianceMarker = "@\n\x1e\r"

	// aamvaVersion and jurisdictionVersion are the header version fields.
	aamvaVersion        = "10"
	jurisdictionVersion = "00"

	// fileType is the fixed header literal, including its trailing space.
	fileType = "ANSI "

	// DLSubfileType designates the mandatory driver's-license subfile.
	DLSubfileType = "DL"

	// designatorSize is the byte width of one subfile designator:
	// 2-byte type + 4-digit offset + 4-digit length.
	designatorSize = 10
)

var (
	// ErrNoSubfiles is returned when the input sequence is nil or empty.
	ErrNoSubfiles = errors.New("no subfiles to encode")
	// ErrMissingSubfileType is returned when a subfile carries no type.
	ErrMissingSubfileType = errors.New("subfile has no type")
	// ErrFirstSubfileNotDL is returned when the sequence does not start
	// with the mandatory DL subfile.
	ErrFirstSubfileNotDL = errors.New("first subfile must be type DL")
)

type (
	// Field is one tag/value pair inside a subfile.
	Field struct {
		// Code is the three-letter element code.
		Code string
		// Value is the raw value; it is uppercased on emit.
		Value string
	}

	// Subfile is an ordered field record tagged with its subfile type
	// ("DL" or a jurisdiction-specific "Z?" type).
	Subfile struct {
		// Type is the two-letter subfile designator type.
		Type string
		// Fields are emitted in slice order; empty values are skipped.
		Fields []Field
	}
)

// dlFieldOrder is the deterministic emit order of the DL subfile:
// identification first (DAQ), names with their truncation flags, document
// metadata, physical description, then address and auxiliary elements.
var dlFieldOrder = []string{
	"DAQ", "DCS", "DDE", "DAC", "DDF", "DAD", "DDG", "DCU",
	"DCA", "DCB", "DCD", "DBD", "DBB", "DBA", "DBC",
	"DAY", "DAU", "DAW", "DAZ", "DCL",
	"DAG", "DAH", "DAI", "DAJ", "DAK", "DCF", "DCG",
	"DDA", "DDB", "DDC", "DDD", "DDK", "DDL",
}

// NewDLSubfile builds the mandatory DL subfile from a normalized or
// friendly-name record, emitting known elements in the canonical order
// followed by any unknown elements sorted by code. Empty values are
// omitted.
func NewDLSubfile(record map[string]string) Subfile {
	fields := NormalizeRecord(record)

	sf := Subfile{Type: DLSubfileType}
	seen := make(map[string]bool, len(fields))
	for _, code := range dlFieldOrder {
		if v := fields[code]; v != "" {
			sf.Fields = append(sf.Fields, Field{Code: code, Value: v})
			seen[code] = true
		}
	}
	for _, code := range sortedKeys(fields) {
		if !seen[code] && fields[code] != "" {
			sf.Fields = append(sf.Fields, Field{Code: code, Value: fields[code]})
		}
	}
	return sf
}

// NewJurisdictionSubfile builds the jurisdiction-specific subfile for the
// given entry. Jurisdiction elements are vendor-defined; absent any caller
// data the subfile carries the conventional "NONE" filler element, which is
// what scanners expect from cards without jurisdiction extensions.
func NewJurisdictionSubfile(entry JurisdictionEntry, fields []Field) Subfile {
	sf := Subfile{Type: entry.SubfileType, Fields: fields}
	if len(sf.Fields) == 0 {
		sf.Fields = []Field{{Code: entry.SubfileType + "A", Value: "NONE"}}
	}
	return sf
}

// Encode lays out the complete PDF417 text payload: compliance marker,
// header, one designator per subfile, then the subfile bodies. Offsets are
// computed in a second pass once every body's byte length is known; the
// recorded length of a subfile spans its type marker through its
// terminating CR, inclusive.
//
// An unknown jurisdiction code degrades to DefaultIIN rather than failing,
// so test jurisdictions stay encodable. Structural malformation (empty
// sequence, missing type, wrong leading subfile) is the only error surface.
func Encode(subfiles []Subfile) (string, error) {
	if len(subfiles) == 0 {
		return "", ErrNoSubfiles
	}
	for i, sf := range subfiles {
		if strings.TrimSpace(sf.Type) == "" {
			return "", fmt.Errorf("subfile %d: %w", i, ErrMissingSubfileType)
		}
	}
	if subfiles[0].Type != DLSubfileType {
		return "", fmt.Errorf("%w, got %q", ErrFirstSubfileNotDL, subfiles[0].Type)
	}

	// First pass: render every subfile body.
	bodies := make([]string, len(subfiles))
	for i, sf := range subfiles {
		bodies[i] = renderSubfile(sf)
	}

	iin := DefaultIIN
	if entry, ok := LookupJurisdiction(dlJurisdiction(subfiles[0])); ok {
		iin = entry.IIN
	}

	var b strings.Builder
	b.WriteString(complianceMarker)
	b.WriteString(fileType)
	b.WriteString(iin)
	b.WriteString(aamvaVersion)
	b.WriteString(jurisdictionVersion)
	fmt.Fprintf(&b, "%02d", len(subfiles))

	// Second pass: designator offsets count from the start of the entire
	// output, so the designator table's own bytes are part of the
	// arithmetic.
	offset := b.Len() + designatorSize*len(subfiles)
	for i, sf := range subfiles {
		fmt.Fprintf(&b, "%2s%04d%04d", sf.Type, offset, len(bodies[i]))
		offset += len(bodies[i])
	}

	for _, body := range bodies {
		b.WriteString(body)
	}
	return b.String(), nil
}

// renderSubfile emits the subfile body: type marker, code+value+LF per
// non-empty field (uppercased), and the terminating CR. A code with no
// value is never emitted.
func renderSubfile(sf Subfile) string {
	var b strings.Builder
	b.WriteString(sf.Type)
	for _, f := range sf.Fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(strings.ToUpper(f.Code))
		b.WriteString(strings.ToUpper(f.Value))
		b.WriteString("\n")
	}
	b.WriteString("\r")
	return b.String()
}

// dlJurisdiction extracts the DL subfile's jurisdiction code.
func dlJurisdiction(sf Subfile) string {
	for _, f := range sf.Fields {
		if strings.ToUpper(f.Code) == "DAJ" {
			return f.Value
		}
	}
	return ""
}
