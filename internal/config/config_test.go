// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want the default %q", cfg.OutputDir, "out")
	}
	if cfg.Generate.Count != 1 {
		t.Errorf("Generate.Count = %d, want 1", cfg.Generate.Count)
	}
}

func TestLoad_TOMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := []byte("output_dir = \"payloads\"\n\n[generate]\ncount = 25\njurisdiction = \"TX\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "payloads" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "payloads")
	}
	if cfg.Generate.Count != 25 || cfg.Generate.Jurisdiction != "TX" {
		t.Errorf("Generate = %+v, want count 25 jurisdiction TX", cfg.Generate)
	}
	// Keys absent from the file keep their defaults.
	if cfg.UI.Verbose {
		t.Error("UI.Verbose should default to false")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := []byte("[generate]\njurisdiction = \"ZZ\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalidJurisdiction) {
		t.Errorf("err = %v, want ErrInvalidJurisdiction", err)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("malformed TOML should fail loading")
	}
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "missing.toml"))
	t.Cleanup(Reset)

	if _, err := Load(); err == nil {
		t.Error("an explicit --config path that does not exist should fail")
	}
}

func TestConfigValidate_Count(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Generate.Count = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidGenerateCount) {
		t.Errorf("err = %v, want ErrInvalidGenerateCount", err)
	}
}
