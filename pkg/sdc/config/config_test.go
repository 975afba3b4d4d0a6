package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMatchConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "match.yaml")
	yaml := "representation: hashed_multiset\nthreshold: 0.65\nstrip_tokens:\n  - \" \"\n  - \".\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadMatchConfig(path)
	if err != nil {
		t.Fatalf("LoadMatchConfig: %v", err)
	}
	if cfg.Representation != HashedMultiset {
		t.Errorf("Representation = %v, want %v", cfg.Representation, HashedMultiset)
	}
	if cfg.Threshold != 0.65 {
		t.Errorf("Threshold = %v, want 0.65", cfg.Threshold)
	}
	set := cfg.StripSet()
	if _, ok := set[" "]; !ok {
		t.Errorf("expected strip set to contain space")
	}
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Threshold = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected validation error for threshold 0")
	}
	cfg.Threshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected validation error for threshold > 1")
	}
}

func TestValidateRejectsUnknownRepresentation(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.Representation = "not-a-thing"
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected validation error for unknown representation")
	}
}

func TestDefaultMatchConfigIsValid(t *testing.T) {
	if err := DefaultMatchConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}
