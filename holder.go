package folio

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	folog "github.com/eringen/folio/internal/log"
)

// Holder hands out the current Registry and swaps it on reload. A reload
// that fails to load or validate keeps the previous registry.
type Holder struct {
	mu      sync.RWMutex
	current *Registry
	path    string
	loader  func(string) (*Registry, error)
	logger  zerolog.Logger
	metrics *Metrics

	debounce time.Duration

	listenersMu sync.RWMutex
	listeners   []chan<- *Registry
}

// NewHolder builds the initial registry from path. There is no previous
// registry to fall back on, so any error is returned to the caller.
func NewHolder(path string) (*Holder, error) {
	h := &Holder{
		path:     path,
		loader:   LoadRegistry,
		logger:   folog.WithComponent("config"),
		debounce: 500 * time.Millisecond,
	}
	reg, err := h.loader(path)
	if err != nil {
		return nil, err
	}
	h.current = reg
	h.logWarnings(reg)
	return h, nil
}

// NewStaticHolder wraps an already built registry. Reload is a no-op
// without a path.
func NewStaticHolder(reg *Registry) *Holder {
	return &Holder{
		current:  reg,
		loader:   LoadRegistry,
		logger:   folog.WithComponent("config"),
		debounce: 500 * time.Millisecond,
	}
}

// Get returns the current registry.
func (h *Holder) Get() *Registry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Path returns the watched config path, empty for a static holder.
func (h *Holder) Path() string { return h.path }

// SetMetrics attaches reload counters.
func (h *Holder) SetMetrics(m *Metrics) {
	h.metrics = m
	m.observe(h.Get())
}

// Reload loads the config file again and swaps the registry if it is valid.
func (h *Holder) Reload(_ context.Context) error {
	if h.path == "" {
		return nil
	}
	h.logger.Info().Str("event", "config.reload_start").Str("path", h.path).Msg("reloading configuration")

	reg, err := h.loader(h.path)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("event", "config.reload_failed").
			Msg("keeping previous configuration")
		h.metrics.reloaded(false)
		return fmt.Errorf("folio: reload: %w", err)
	}

	h.mu.Lock()
	old := h.current
	h.current = reg
	h.mu.Unlock()

	h.logWarnings(reg)
	h.logChanges(old, reg)
	h.metrics.reloaded(true)
	h.metrics.observe(reg)
	h.notify(reg)

	h.logger.Info().Str("event", "config.reload_success").Msg("configuration reloaded")
	return nil
}

// Watch reloads on changes to the config file until ctx is done. The
// directory is watched rather than the file so editors that replace the
// file by rename are still seen.
func (h *Holder) Watch(ctx context.Context) error {
	if h.path == "" {
		h.logger.Info().
			Str("event", "config.watcher_disabled").
			Msg("no config file; watcher disabled")
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("folio: create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(h.path)
	if err != nil {
		return fmt.Errorf("folio: resolve config path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("folio: watch config dir: %w", err)
	}
	h.logger.Info().
		Str("event", "config.watcher_started").
		Str("path", target).
		Msg("watching config file for changes")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str("event", "config.watcher_stopped").Msg("config watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug().
				Str("event", "config.file_changed").
				Str("op", event.Op.String()).
				Msg("config file changed")
			if timer == nil {
				timer = time.NewTimer(h.debounce)
			} else {
				timer.Reset(h.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			// Errors are logged by Reload; the old registry stays in place.
			_ = h.Reload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Error().Err(err).Str("event", "config.watcher_error").Msg("config watcher error")
		}
	}
}

// Subscribe registers ch to receive each newly swapped registry. Sends never
// block; a full channel misses that update.
func (h *Holder) Subscribe(ch chan<- *Registry) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notify(reg *Registry) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()
	for _, ch := range h.listeners {
		select {
		case ch <- reg:
		default:
			h.logger.Warn().Str("event", "config.listener_skip").Msg("listener channel full")
		}
	}
}

func (h *Holder) logWarnings(reg *Registry) {
	for _, w := range reg.Warnings() {
		h.logger.Warn().Str("event", "config.warning").Msg(w)
	}
}

func (h *Holder) logChanges(old, cur *Registry) {
	if old == nil {
		return
	}
	o, n := old.Site(), cur.Site()
	if o.Title != n.Title {
		h.logger.Info().Str("old", o.Title).Str("new", n.Title).Msg("config changed: site.title")
	}
	if o.Website != n.Website {
		h.logger.Info().Str("old", o.Website).Str("new", n.Website).Msg("config changed: site.website")
	}
	if o.PostPerPage != n.PostPerPage {
		h.logger.Info().Int("old", o.PostPerPage).Int("new", n.PostPerPage).Msg("config changed: site.postPerPage")
	}
	if a, b := len(old.ActiveSocials()), len(cur.ActiveSocials()); a != b {
		h.logger.Info().Int("old", a).Int("new", b).Msg("config changed: active socials")
	}
}
