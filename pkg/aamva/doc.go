// SPDX-License-Identifier: MPL-2.0

// Package aamva validates driver's-license records against the AAMVA DL/ID
// card design standard and encodes them into the exact PDF417 text payload
// the standard prescribes.
//
// The package is pure computation: no I/O, no goroutines, no mutable state.
// The field-specification and jurisdiction tables are package-level values
// constructed at init and never modified afterwards, so every entry point is
// safe for concurrent use.
//
// Validation never returns a Go error for data-quality problems. Each check
// produces a FieldResult with a severity (error, warning, info) and the
// results of a full pass are collected into a Result so callers see every
// problem at once. Only the barcode encoder returns real errors, and only
// for structurally malformed input (nil sequence, missing subfile type).
package aamva
