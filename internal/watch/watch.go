// Package watch re-runs generation when package manifests change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches the burst of writes a package install produces.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls OnChange after any of Paths is created, written, removed or
// renamed. Paths need not exist yet; their nearest existing ancestor
// directory is watched instead.
type Watcher struct {
	Paths    []string
	Debounce time.Duration
	OnChange func() error
	Logger   *zap.Logger
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	if w.OnChange == nil {
		return errors.New("watch: OnChange is required")
	}
	log := w.Logger
	if log == nil {
		log = zap.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	targets := w.targets()
	if err := addDirs(fsw, targets, log); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !Relevant(event, targets) {
				continue
			}
			log.Debug("manifest changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			pending = true

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))

		case <-timer.C:
			pending = false
			// New directories (a fresh node_modules) become watchable after installs.
			if err := addDirs(fsw, targets, log); err != nil {
				log.Warn("refresh watch list", zap.Error(err))
			}
			if err := w.OnChange(); err != nil {
				log.Error("regenerate", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) targets() []string {
	out := make([]string, 0, len(w.Paths))
	for _, p := range w.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		out = append(out, abs)
	}
	return out
}

// Relevant reports whether event touches a target or one of its ancestor
// directories, such as node_modules being recreated.
func Relevant(event fsnotify.Event, targets []string) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	for _, t := range targets {
		if name == t || strings.HasPrefix(t, name+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func addDirs(fsw *fsnotify.Watcher, targets []string, log *zap.Logger) error {
	added := 0
	seen := map[string]bool{}
	for _, t := range targets {
		dir := nearestDir(filepath.Dir(t))
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		if err := fsw.Add(dir); err != nil {
			log.Debug("skip watch dir", zap.String("dir", dir), zap.Error(err))
			continue
		}
		added++
	}
	if added == 0 && len(targets) > 0 {
		return errors.New("watch: no watchable directories")
	}
	return nil
}

func nearestDir(dir string) string {
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
