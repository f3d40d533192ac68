package session_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordscope/internal/config"
	"wordscope/internal/logging"
	"wordscope/internal/session"
	"wordscope/internal/source"
	"wordscope/internal/testsupport"
)

const article = "Apple pie wins. The machine bakes apple pie!\n\nTechnology meets baking? Yes."

func writeArticle(t *testing.T) string {
	t.Helper()
	return testsupport.WriteArticle(t, "README.md", article)
}

func newSession(path, input string, out *bytes.Buffer) *session.Session {
	return session.New(session.Options{
		Path:        path,
		SearchWords: config.DefaultSearchWords(),
		Format:      config.FormatText,
		SessionID:   "test-session",
		In:          strings.NewReader(input),
		Out:         out,
		Logger:      logging.NewNop(),
	})
}

func TestRunSingleAnalysis(t *testing.T) {
	var out bytes.Buffer
	s := newSession(writeArticle(t), "n\n", &out)

	runs, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if runs != 1 || s.Runs() != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}

	got := out.String()
	for _, want := range []string{
		"=== News Article Text Analysis ===\n\n",
		"Successfully loaded news article from README.md\n\n",
		"--- Analysis Run #1 ---\n\n",
		"Article Statistics:\n",
		"   • 'apple': 2 occurrences\n",
		"First analysis complete! Would you like to run another analysis?\n",
		"Enter 'y' to continue or any other key to exit: ",
		"\nThank you for using the News Article Text Analyzer!\n",
		"\nTotal analyses performed: 1\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "Total analyses performed: 1\n") {
		t.Errorf("expected run count to be the last line\n%s", got)
	}
}

func TestRunRepeatsOnYes(t *testing.T) {
	var out bytes.Buffer
	s := newSession(writeArticle(t), "y\n  Y  \nno\n", &out)

	runs, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if runs != 3 {
		t.Fatalf("runs = %d, want 3", runs)
	}

	got := out.String()
	for _, want := range []string{
		"--- Analysis Run #2 ---",
		"--- Analysis Run #3 ---",
		"Analysis #2 complete! Would you like to run another analysis?",
		"Analysis #3 complete!",
		"\n" + strings.Repeat("=", 50) + "\n\n",
		"Total analyses performed: 3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Count(got, "Article Statistics:") != 3 {
		t.Errorf("expected three reports, got %d", strings.Count(got, "Article Statistics:"))
	}
}

func TestRunEndOfInputExits(t *testing.T) {
	var out bytes.Buffer
	s := newSession(writeArticle(t), "", &out)

	runs, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
	if !strings.Contains(out.String(), "Thank you for using") {
		t.Fatalf("expected farewell on EOF\n%s", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	s := newSession(filepath.Join(t.TempDir(), "README.md"), "y\n", &out)

	runs, err := s.Run(context.Background())
	if runs != 0 {
		t.Fatalf("runs = %d, want 0", runs)
	}
	if !errors.Is(err, session.ErrHalted) || !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected halted not-found error, got %v", err)
	}
	if !strings.Contains(out.String(), "Error: README.md file not found!\n") {
		t.Fatalf("expected not found message\n%s", out.String())
	}
	if strings.Contains(out.String(), "Analysis Run") {
		t.Fatal("no analysis should run when the file is missing")
	}
}

func TestRunReadFailure(t *testing.T) {
	var out bytes.Buffer
	s := newSession(t.TempDir(), "", &out)

	_, err := s.Run(context.Background())
	if !errors.Is(err, session.ErrHalted) || errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected halted read error, got %v", err)
	}
	if !strings.Contains(out.String(), "Error reading file: ") {
		t.Fatalf("expected read error message\n%s", out.String())
	}
}

func TestRunStopsWhenCanceled(t *testing.T) {
	var out bytes.Buffer
	s := newSession(writeArticle(t), "y\ny\n", &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs, err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if runs != 0 {
		t.Fatalf("runs = %d, want 0", runs)
	}
}

func TestNewGeneratesSessionID(t *testing.T) {
	a := session.New(session.Options{})
	b := session.New(session.Options{})
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("expected unique generated IDs, got %q and %q", a.ID(), b.ID())
	}
}

func TestRunLogsRunDetails(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New logger: %v", err)
	}

	var out bytes.Buffer
	s := session.New(session.Options{
		Path:        writeArticle(t),
		SearchWords: config.DefaultSearchWords(),
		SessionID:   "logged-session",
		In:          strings.NewReader("n\n"),
		Out:         &out,
		Logger:      logger,
	})
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	logged := string(data)
	for _, want := range []string{`"msg":"analysis run complete"`, `"run":1`, `"average_word_length":`, `"most_common_word":"apple"`, `"session_id":"logged-session"`} {
		if !strings.Contains(logged, want) {
			t.Errorf("expected log to contain %s\n%s", want, logged)
		}
	}
}
