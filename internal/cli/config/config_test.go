package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Test loading with no config file (should use defaults)
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config to be non-nil")
	}

	// Check defaults
	if len(cfg.Definitions) != 1 || cfg.Definitions[0] != "defs/**/*.yml" {
		t.Errorf("expected default definitions glob, got %v", cfg.Definitions)
	}

	if cfg.Output.Dir != "gen/schemas" {
		t.Errorf("expected default output dir 'gen/schemas', got %s", cfg.Output.Dir)
	}

	if cfg.Output.Package != "schemas" {
		t.Errorf("expected default output package 'schemas', got %s", cfg.Output.Package)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	// Create temporary directory with config file
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	// Write config file
	configContent := `
project_name: test-project
definitions:
  - records/**/*.yml
  - shared/*.yaml
output:
  dir: internal/gen
  package: records
`
	configPath := filepath.Join(tmpDir, "recordkit.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config file, got %v", err)
	}

	if cfg.ProjectName != "test-project" {
		t.Errorf("expected project name 'test-project', got %s", cfg.ProjectName)
	}

	if len(cfg.Definitions) != 2 {
		t.Errorf("expected 2 definition globs, got %v", cfg.Definitions)
	}

	if cfg.Output.Dir != "internal/gen" {
		t.Errorf("expected output dir 'internal/gen', got %s", cfg.Output.Dir)
	}

	if cfg.Output.Package != "records" {
		t.Errorf("expected output package 'records', got %s", cfg.Output.Package)
	}
}

func TestLoadWithInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	configPath := filepath.Join(tmpDir, "recordkit.yml")
	if err := os.WriteFile(configPath, []byte("definitions: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}
