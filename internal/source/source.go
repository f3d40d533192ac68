package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"wordscope/internal/textutil"
)

var (
	// ErrNotFound reports that the input file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUnreadable reports that the input exists but cannot be read.
	ErrUnreadable = errors.New("file not readable")
	// ErrInvalidEncoding reports that the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
	// ErrLocked reports that a writer held the file for longer than allowed.
	ErrLocked = errors.New("file is locked by another process")
)

const lockRetryDelay = 50 * time.Millisecond

// Document is an immutable text loaded from disk.
type Document struct {
	Path    string
	Text    string
	Size    int64
	ModTime time.Time
}

// Name returns the base name of the document's path.
func (d *Document) Name() string {
	if d == nil {
		return ""
	}
	return filepath.Base(d.Path)
}

// Load reads path as UTF-8 text. The read happens under a shared flock so a
// writer holding an exclusive lock is waited on until ctx expires.
func Load(ctx context.Context, path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, ErrUnreadable)
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrUnreadable, err)
	}

	lock := flock.New(path, flock.SetFlag(os.O_RDONLY))
	locked, err := lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: %w: %w", path, ErrLocked, err)
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	return &Document{
		Path:    path,
		Text:    textutil.NormalizeNewlines(string(data)),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// FromString wraps in-memory text in a Document.
func FromString(name, text string) *Document {
	return &Document{
		Path:    name,
		Text:    textutil.NormalizeNewlines(text),
		Size:    int64(len(text)),
		ModTime: time.Now(),
	}
}
