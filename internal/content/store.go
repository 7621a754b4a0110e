package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce collapses the burst of events editors emit on save.
const reloadDebounce = 300 * time.Millisecond

// Store hands out the current Site snapshot. Snapshots are immutable; a
// reload swaps in a new one.
type Store struct {
	path string
	site atomic.Pointer[Site]
	log  *zap.Logger
}

// NewStore loads the content at path (empty for the embedded content).
func NewStore(path string, log *zap.Logger) (*Store, error) {
	site, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path, log: log}
	s.site.Store(site)
	return s, nil
}

// StaticStore wraps an already loaded snapshot.
func StaticStore(site *Site) *Store {
	s := &Store{log: zap.NewNop()}
	s.site.Store(site)
	return s
}

// Current returns the snapshot to render.
func (s *Store) Current() *Site {
	return s.site.Load()
}

// Reload re-reads the content file. On failure the previous snapshot stays.
func (s *Store) Reload() error {
	site, err := Load(s.path)
	if err != nil {
		return err
	}
	s.site.Store(site)
	return nil
}

// Watch reloads the content file whenever it changes, until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are still picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("watching content: no content file configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating content watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	go func() {
		defer watcher.Close()

		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					if err := s.Reload(); err != nil {
						s.log.Warn("content reload failed, keeping previous content", zap.String("path", s.path), zap.Error(err))
						return
					}
					s.log.Info("content reloaded", zap.String("path", s.path), zap.Int("projects", len(s.Current().Projects)))
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("content watcher error", zap.Error(err))
			}
		}
	}()

	s.log.Info("watching content file", zap.String("path", s.path))
	return nil
}
