// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func encodeSample(t *testing.T) string {
	t.Helper()
	entry, _ := LookupJurisdiction("CA")
	payload, err := Encode([]Subfile{
		NewDLSubfile(validRecord()),
		NewJurisdictionSubfile(entry, nil),
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return payload
}

func TestEncode_HeaderLayout(t *testing.T) {
	t.Parallel()

	payload := encodeSample(t)

	if !strings.HasPrefix(payload, "@\n\x1e\r") {
		t.Errorf("payload does not start with the compliance marker: %q", payload[:8])
	}
	if got := payload[4:9]; got != "ANSI " {
		t.Errorf("bytes[4:9] = %q, want %q", got, "ANSI ")
	}
	if got := payload[9:15]; got != "636014" {
		t.Errorf("bytes[9:15] = %q, want CA's IIN 636014", got)
	}
	if got := payload[15:17]; got != "10" {
		t.Errorf("version bytes = %q, want 10", got)
	}
	if got := payload[17:19]; got != "00" {
		t.Errorf("jurisdiction version bytes = %q, want 00", got)
	}
	if got := payload[19:21]; got != "02" {
		t.Errorf("subfile count bytes = %q, want 02", got)
	}
}

func TestEncode_DesignatorOffsets(t *testing.T) {
	t.Parallel()

	payload := encodeSample(t)

	// Two designators follow the 21-byte prefix.
	for i := 0; i < 2; i++ {
		des := payload[21+i*designatorSize : 21+(i+1)*designatorSize]
		subType := des[:2]
		offset, err := strconv.Atoi(des[2:6])
		if err != nil {
			t.Fatalf("designator %d offset %q is not numeric", i, des[2:6])
		}
		length, err := strconv.Atoi(des[6:10])
		if err != nil {
			t.Fatalf("designator %d length %q is not numeric", i, des[6:10])
		}

		// The recorded offset must point at the subfile's type marker.
		if got := payload[offset : offset+2]; got != subType {
			t.Errorf("designator %d: offset %d points at %q, want %q", i, offset, got, subType)
		}
		// The recorded length spans the marker through the terminating CR.
		segment := payload[offset : offset+length]
		if !strings.HasSuffix(segment, "\r") {
			t.Errorf("designator %d: segment does not end with CR: %q", i, segment)
		}
		if strings.Count(segment, "\r") != 1 {
			t.Errorf("designator %d: segment spans more than one subfile: %q", i, segment)
		}
	}
}

func TestEncode_SubfileBodies(t *testing.T) {
	t.Parallel()

	payload := encodeSample(t)

	// DAQ leads the DL subfile body.
	dlStart := 21 + 2*designatorSize
	if got := payload[dlStart : dlStart+2]; got != "DL" {
		t.Fatalf("first subfile marker = %q, want DL", got)
	}
	if got := payload[dlStart+2 : dlStart+5]; got != "DAQ" {
		t.Errorf("first DL element = %q, want DAQ", got)
	}

	// Every field line is uppercased and LF-terminated.
	record := validRecord()
	record["DAI"] = "sacramento"
	lowered, err := Encode([]Subfile{NewDLSubfile(record)})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(lowered, "DAISACRAMENTO\n") {
		t.Error("values must be uppercased and LF-terminated on emit")
	}
}

func TestEncode_EmptyValuesOmitted(t *testing.T) {
	t.Parallel()

	record := validRecord()
	record["DAH"] = "" // present but empty
	payload, err := Encode([]Subfile{NewDLSubfile(record)})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Contains(payload, "DAH") {
		t.Error("a code with no value must never be emitted")
	}
}

func TestEncode_ASCIIPurity(t *testing.T) {
	t.Parallel()

	payload := encodeSample(t)
	for i := 0; i < len(payload); i++ {
		if payload[i] >= 0x80 {
			t.Fatalf("payload byte %d is %#x, beyond ASCII", i, payload[i])
		}
	}
}

func TestEncode_UnknownJurisdictionFallsBack(t *testing.T) {
	t.Parallel()

	record := validRecord()
	record["DAJ"] = "XX"
	payload, err := Encode([]Subfile{NewDLSubfile(record)})
	if err != nil {
		t.Fatalf("unknown jurisdiction must not fail encoding: %v", err)
	}
	if got := payload[9:15]; got != DefaultIIN {
		t.Errorf("IIN = %q, want the default %q", got, DefaultIIN)
	}
}

func TestEncode_StructuralErrors(t *testing.T) {
	t.Parallel()

	if _, err := Encode(nil); !errors.Is(err, ErrNoSubfiles) {
		t.Errorf("nil input: err = %v, want ErrNoSubfiles", err)
	}
	if _, err := Encode([]Subfile{}); !errors.Is(err, ErrNoSubfiles) {
		t.Errorf("empty input: err = %v, want ErrNoSubfiles", err)
	}

	_, err := Encode([]Subfile{{Type: "", Fields: []Field{{Code: "DAQ", Value: "1"}}}})
	if !errors.Is(err, ErrMissingSubfileType) {
		t.Errorf("missing type: err = %v, want ErrMissingSubfileType", err)
	}

	entry, _ := LookupJurisdiction("CA")
	_, err = Encode([]Subfile{NewJurisdictionSubfile(entry, nil)})
	if !errors.Is(err, ErrFirstSubfileNotDL) {
		t.Errorf("leading jurisdiction subfile: err = %v, want ErrFirstSubfileNotDL", err)
	}
}

func TestEncode_DeterministicOutput(t *testing.T) {
	t.Parallel()

	first := encodeSample(t)
	second := encodeSample(t)
	if first != second {
		t.Error("encoding the same record twice must produce identical payloads")
	}
}
