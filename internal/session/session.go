package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"wordscope/internal/logging"
	"wordscope/internal/report"
	"wordscope/internal/source"
)

// ErrHalted marks errors that the session already reported to its output.
var ErrHalted = errors.New("analysis halted")

const (
	banner          = "=== News Article Text Analysis ==="
	continuePrompt  = "Enter 'y' to continue or any other key to exit: "
	farewell        = "Thank you for using the News Article Text Analyzer!"
	separatorWidth  = 50
	continueCommand = "y"
)

// Options configures a Session.
type Options struct {
	Path        string
	SearchWords []string
	TopWords    int
	Format      string
	Color       bool
	LockTimeout time.Duration
	SessionID   string
	In          io.Reader
	Out         io.Writer
	Logger      *slog.Logger
}

// Session is one interactive analysis session over a single document.
type Session struct {
	opts   Options
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	runs   int
}

// New creates a Session. A session ID is generated when none is supplied.
func New(opts Options) *Session {
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := logging.WithSessionID(logging.NewComponentLogger(opts.Logger, "session"), opts.SessionID)
	return &Session{
		opts:   opts,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.opts.SessionID
}

// Runs returns the number of analysis runs performed so far.
func (s *Session) Runs() int {
	return s.runs
}

// Run loads the document and loops until the user declines another run. It
// returns the number of runs performed. Load failures are printed and
// returned wrapped in ErrHalted.
func (s *Session) Run(ctx context.Context) (int, error) {
	s.printf("%s\n\n", banner)

	doc, err := s.load(ctx)
	if err != nil {
		return s.runs, err
	}
	s.printf("Successfully loaded news article from %s\n\n", doc.Name())

	for {
		if err := ctx.Err(); err != nil {
			return s.runs, err
		}
		s.runs++
		if err := s.analyze(doc); err != nil {
			return s.runs, err
		}

		if s.runs == 1 {
			s.printf("First analysis complete! Would you like to run another analysis?\n")
		} else {
			s.printf("Analysis #%d complete! Would you like to run another analysis?\n", s.runs)
		}

		if !s.confirm() {
			s.printf("\n%s\n", farewell)
			break
		}
		s.printf("\n%s\n\n", strings.Repeat("=", separatorWidth))
	}

	s.printf("\nTotal analyses performed: %d\n", s.runs)
	s.logger.Info("session finished", logging.Int("runs", s.runs))
	return s.runs, nil
}

func (s *Session) load(ctx context.Context) (*source.Document, error) {
	if s.opts.LockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.LockTimeout)
		defer cancel()
	}

	doc, err := source.Load(ctx, s.opts.Path)
	if err == nil {
		s.logger.Debug("document loaded",
			logging.String(logging.FieldPath, doc.Path),
			logging.Int64("bytes", doc.Size),
		)
		return doc, nil
	}

	name := filepath.Base(s.opts.Path)
	if errors.Is(err, source.ErrNotFound) {
		s.printf("Error: %s file not found!\n", name)
	} else {
		s.printf("Error reading file: %v\n", err)
	}
	s.logger.Warn("document load failed",
		logging.String(logging.FieldPath, s.opts.Path),
		logging.String(logging.FieldEventType, "load_failed"),
		logging.Error(err),
	)
	return nil, fmt.Errorf("%w: %w", ErrHalted, err)
}

func (s *Session) analyze(doc *source.Document) error {
	start := time.Now()
	s.printf("--- Analysis Run #%d ---\n\n", s.runs)

	r := report.Build(doc, s.runs, s.opts.SearchWords, s.opts.TopWords, s.opts.SessionID)
	if err := report.Render(s.out, r, report.Options{Format: s.opts.Format, Color: s.opts.Color}); err != nil {
		return fmt.Errorf("render run %d: %w", s.runs, err)
	}

	attrs := []logging.Attr{
		logging.Int(logging.FieldRun, s.runs),
		logging.Int("words", r.Summary.Words),
		logging.Float64("average_word_length", r.Summary.AverageWordLength),
		logging.Duration("elapsed", time.Since(start)),
	}
	if r.Summary.HasMostCommon {
		attrs = append(attrs, logging.String("most_common_word", r.Summary.MostCommonWord))
	}
	s.logger.Debug("analysis run complete", logging.Args(attrs...)...)
	return nil
}

// confirm prompts for another run. End of input counts as a "no".
func (s *Session) confirm() bool {
	s.printf("%s", continuePrompt)
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Warn("prompt read failed", logging.Error(err))
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == continueCommand
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
