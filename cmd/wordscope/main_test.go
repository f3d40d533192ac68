package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordscope/internal/report"
	"wordscope/internal/session"
	"wordscope/internal/source"
	"wordscope/internal/testsupport"
)

const testArticle = `Apple announced a machine that bakes apple pie. Technology meets baking!

The pie machine sold out. Critics loved the pie?`

type cliTestEnv struct {
	workDir    string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("WORDSCOPE_INPUT", "")
	t.Setenv("WORDSCOPE_LOG_LEVEL", "")

	workDir := filepath.Join(base, "work")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		t.Fatalf("mkdir work: %v", err)
	}
	t.Chdir(workDir)

	return &cliTestEnv{
		workDir:    workDir,
		configPath: filepath.Join(base, "wordscope.toml"),
	}
}

func (e *cliTestEnv) writeArticle(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.workDir, name)
	testsupport.WriteFile(t, path, content)
	return path
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestInteractiveDefaultsReadReadme(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeArticle(t, "README.md", testArticle)

	out, _, err := runCLI(t, nil, "y\nn\n")
	if err != nil {
		t.Fatalf("interactive run: %v", err)
	}
	requireContains(t, out, "Successfully loaded news article from README.md")
	requireContains(t, out, "   • 'apple': 2 occurrences")
	requireContains(t, out, "   • 'machine': 2 occurrences")
	requireContains(t, out, "   • 'technology': 1 occurrences")
	requireContains(t, out, "   • 'baking': 1 occurrences")
	requireContains(t, out, "   • 'pie': 3 occurrences")
	requireContains(t, out, "   • Paragraphs: 2")
	requireContains(t, out, "   • Sentences: 4")
	requireContains(t, out, "Most Common Word: 'pie'")
	requireContains(t, out, "Analysis #2 complete!")
	requireContains(t, out, "Total analyses performed: 2")
}

func TestInteractiveMissingFile(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, "")
	if !errors.Is(err, session.ErrHalted) || !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected halted not-found error, got %v", err)
	}
	requireContains(t, out, "Error: README.md file not found!")
}

func TestInteractiveFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeArticle(t, "story.txt", testArticle)

	out, _, err := runCLI(t, []string{"--file", path, "--words", "pie, critics", "--top", "1", "--color", "never"}, "n\n")
	if err != nil {
		t.Fatalf("interactive run: %v", err)
	}
	requireContains(t, out, "Successfully loaded news article from story.txt")
	requireContains(t, out, "'pie': 3 occurrences")
	requireContains(t, out, "'critics': 1 occurrences")
	requireContains(t, out, "Top Words:\n   1. 'pie' (3)")
	if strings.Contains(out, "'apple'") {
		t.Fatalf("default search words should be replaced\n%s", out)
	}
}

func TestAnalyzeJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeArticle(t, "story.txt", testArticle)

	out, _, err := runCLI(t, []string{"analyze", path, "--format", "json"}, "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var r report.Report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode analyze output: %v\n%s", err, out)
	}
	if r.Source != "story.txt" || r.Run != 1 || r.SessionID == "" {
		t.Fatalf("unexpected report header: %+v", r)
	}
	if r.Summary.MostCommonWord != "pie" || r.Summary.Paragraphs != 2 {
		t.Fatalf("unexpected summary: %+v", r.Summary)
	}
	if len(r.Occurrences) != 5 {
		t.Fatalf("expected default search words, got %+v", r.Occurrences)
	}
}

func TestAnalyzeTableUsesConfigFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeArticle(t, "story.txt", testArticle)
	content := "[input]\npath = \"" + path + "\"\n\n[analysis]\nsearch_words = [\"machine\"]\n\n[output]\nformat = \"table\"\ncolor = \"never\"\n"
	testsupport.WriteFile(t, env.configPath, content)

	out, _, err := runCLI(t, []string{"--config", env.configPath, "analyze"}, "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Word Frequency Analysis")
	requireContains(t, out, "machine")
	requireContains(t, out, "Total characters")
	if strings.Contains(out, "Enter 'y'") {
		t.Fatalf("analyze must not prompt\n%s", out)
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"analyze", "nope.md"}, "")
	if !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInvalidFlagValues(t *testing.T) {
	setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"--format", "yaml", "analyze"}, ""); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, _, err := runCLI(t, []string{"--color", "rainbow", "analyze"}, ""); err == nil {
		t.Fatal("expected error for unknown color mode")
	}
	if _, _, err := runCLI(t, []string{"--words", " , ", "analyze"}, ""); err == nil {
		t.Fatal("expected error for blank search words")
	}
}

func TestColorAlwaysWithoutTerm(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeArticle(t, "story.txt", testArticle)
	t.Setenv("TERM", "")
	os.Unsetenv("TERM")
	t.Setenv("COLORTERM", "")
	os.Unsetenv("COLORTERM")

	out, _, err := runCLI(t, []string{"analyze", path, "--color", "always"}, "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI escapes with --color always\n%q", out)
	}

	out, _, err = runCLI(t, []string{"analyze", path, "--color", "never"}, "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI escapes with --color never\n%q", out)
	}
}
