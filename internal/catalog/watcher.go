package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"campus-compliments/internal/matcher"
	"campus-compliments/internal/metrics"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher reloads the catalog file when it changes and publishes each new
// catalog through a matcher.Holder. A reload that fails keeps the old catalog.
type Watcher struct {
	path     string
	holder   *matcher.Holder
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// NewWatcher watches the directory containing path. Editors and deploy tools
// usually replace files by rename, which a watch on the file itself would miss.
func NewWatcher(path string, holder *matcher.Holder, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: new watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("catalog: watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, holder: holder, debounce: debounce, fsw: fsw}, nil
}

// Reload reads the file and swaps the new catalog in.
func (w *Watcher) Reload() error {
	c, err := LoadFile(w.path)
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		return err
	}
	prev := w.holder.Swap(c)
	metrics.CatalogReloadsTotal.WithLabelValues("ok").Inc()
	metrics.CatalogBuildings.Set(float64(c.Len()))
	log.Info().Str("path", w.path).Int("buildings", c.Len()).Int("previous", prev.Len()).Msg("catalog_reloaded")
	return nil
}

// Run processes file events until ctx is cancelled, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("catalog_event")
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("catalog_watch_error")

		case <-timer.C:
			if err := w.Reload(); err != nil {
				log.Error().Err(err).Str("path", w.path).Msg("catalog_reload_failed")
			}
		}
	}
}
