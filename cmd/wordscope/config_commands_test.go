package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config file did not exist; defaults were used")
	requireContains(t, out, "Search words: apple, machine, technology, baking, pie")
	requireContains(t, out, "Configuration valid")

	out, _, err = runCLI(t, []string{"config", "init", "--path", env.configPath}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(env.configPath); err != nil {
		t.Fatalf("expected config file at %s: %v", env.configPath, err)
	}

	out, _, err = runCLI(t, []string{"--config", env.configPath, "config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate with sample: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Configuration valid")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.workDir, "existing.toml")
	if err := os.WriteFile(target, []byte("# keep\n"), 0o644); err != nil {
		t.Fatalf("write existing config: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) == "# keep\n" {
		t.Fatal("expected config to be overwritten")
	}
}

func TestConfigValidateReportsErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[output]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := runCLI(t, []string{"--config", env.configPath, "config", "validate"}, ""); err == nil {
		t.Fatal("expected validation error")
	}
}
