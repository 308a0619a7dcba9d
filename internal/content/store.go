package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Store hands out the current document. Reloads swap the whole document, so
// readers always see a complete, validated value.
type Store struct {
	path    string
	logger  *zap.Logger
	current atomic.Pointer[Site]
}

// NewStore loads path (or the embedded document when empty).
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{path: path, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the active document.
func (s *Store) Current() *Site {
	return s.current.Load()
}

// Path returns the backing file, empty for the embedded document.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On failure the previous document stays active.
func (s *Store) Reload() error {
	site, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(site)
	return nil
}

// Watch reloads the document whenever its file changes, until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return errors.New("content: watch requires a content file")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("content: watch %s: %w", s.path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("content: watch %s: %w", s.path, err)
	}
	s.logger.Info("watching content", zap.String("path", abs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("content reload rejected", zap.Error(err))
				continue
			}
			s.logger.Info("content reloaded", zap.String("path", abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("content watcher error", zap.Error(err))
		}
	}
}
