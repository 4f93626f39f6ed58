package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ip812/portfolio/logger"
	"github.com/ip812/portfolio/o11y"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reloads a content directory into a Store whenever one of its
// YAML files changes. Invalid edits are logged and the previous content
// stays live.
type Watcher struct {
	dir      string
	store    *Store
	log      logger.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher

	// reloaded is signalled after every reload attempt; used by tests.
	reloaded chan error
}

func NewWatcher(dir string, store *Store, log logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		dir:      dir,
		store:    store,
		log:      log,
		debounce: defaultDebounce,
		watcher:  fw,
	}, nil
}

// Run blocks until ctx is done, then closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	w.log.Info("watching content directory %s", w.dir)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isContentFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.log.Debug("content change: %s", event)
				pending = time.After(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("content watcher error: %v", err)

		case <-pending:
			pending = nil
			w.notify(w.Reload())
		}
	}
}

// Reload loads the directory once and swaps it in on success.
func (w *Watcher) Reload() error {
	c, err := Load(os.DirFS(w.dir))
	if err != nil {
		o11y.ContentReloads.WithLabelValues("failed").Inc()
		w.log.Warn("keeping previous content, reload failed: %v", err)
		return err
	}

	w.store.Swap(c)
	o11y.ContentReloads.WithLabelValues("ok").Inc()
	w.log.Info("content reloaded: %d projects", c.Catalog.Len())
	return nil
}

func (w *Watcher) notify(err error) {
	if w.reloaded == nil {
		return
	}
	select {
	case w.reloaded <- err:
	default:
	}
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
