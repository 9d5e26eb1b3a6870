// Package history persists calculator history entries as a plain text file,
// one entry per line. The file is only ever appended to.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"desk-calculator/internal/logger"

	"github.com/spf13/afero"
)

// DefaultPath is the history file, relative to the working directory
const DefaultPath = "history.txt"

// Store reads and appends history lines on a filesystem
type Store struct {
	path   string
	fs     afero.Fs
	logger logger.Logger
}

// Option configures a Store
type Option func(*Store)

// WithFs sets the filesystem implementation, e.g. afero.NewMemMapFs() in tests
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// WithLogger sets the logger used to report I/O failures
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		s.logger = log
	}
}

// NewStore creates a store for path on the OS filesystem unless overridden
func NewStore(path string, options ...Option) *Store {
	s := &Store{
		path:   path,
		fs:     afero.NewOsFs(),
		logger: logger.NewNop(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads every line of the history file in file order. A missing file
// yields an empty history and no error.
func (s *Store) Load() ([]string, error) {
	file, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("HistoryStore", "no history file", map[string]interface{}{
				"path": s.path,
			})
			return []string{}, nil
		}
		return nil, fmt.Errorf("open history %s: %w", s.path, err)
	}
	defer file.Close()

	entries := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("read history %s: %w", s.path, err)
	}

	s.logger.Info("HistoryStore", "history loaded", map[string]interface{}{
		"path":    s.path,
		"entries": len(entries),
	})
	return entries, nil
}

// Append writes entry as a single line at the end of the history file,
// creating it if needed. The file is closed before returning.
func (s *Store) Append(entry string) error {
	if strings.ContainsAny(entry, "\r\n") {
		return fmt.Errorf("history entry %q spans multiple lines", entry)
	}

	file, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history %s for append: %w", s.path, err)
	}

	if _, err := file.WriteString(entry + "\n"); err != nil {
		file.Close()
		return fmt.Errorf("append history %s: %w", s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close history %s: %w", s.path, err)
	}
	return nil
}
