package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arabshield/platform-api/internal/core/domain"
	"github.com/arabshield/platform-api/internal/core/ports"
)

// WatcherState describes where the watcher's current snapshot came from.
type WatcherState int

const (
	// StateLoading means Start has not completed the initial read yet.
	StateLoading WatcherState = iota
	// StateLive means the snapshot reflects the stored record (or the
	// defaults, when no record has ever been written).
	StateLive
	// StateFallback means the subscription failed and the snapshot holds the
	// defaults. Distinguishable from StateLive so "defaults because never
	// stored" is not conflated with "defaults because of failure".
	StateFallback
)

func (s WatcherState) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateFallback:
		return "fallback"
	default:
		return "loading"
	}
}

// SettingsWatcher holds a live snapshot of the global settings record, fed by
// the repository's change subscription. Reads are atomic: consumers never
// observe a partially-applied update. One watcher per consumer lifetime;
// Stop must be called on every exit path and is idempotent.
type SettingsWatcher struct {
	repo ports.SettingsRepository
	log  zerolog.Logger

	mu       sync.RWMutex
	settings domain.SystemSettings
	state    WatcherState

	stopOnce    sync.Once
	unsubscribe func()
}

// NewSettingsWatcher returns a watcher in the loading state holding defaults.
func NewSettingsWatcher(repo ports.SettingsRepository, log zerolog.Logger) *SettingsWatcher {
	return &SettingsWatcher{
		repo:     repo,
		log:      log,
		settings: domain.DefaultSettings(),
		state:    StateLoading,
	}
}

// Start performs the initial read and establishes the live subscription.
// Establishing the subscription is non-blocking; updates arrive on the
// repository's stream goroutine. A failure at either step leaves the watcher
// serving defaults in the fallback state rather than failing hard.
func (w *SettingsWatcher) Start(ctx context.Context) {
	current, err := w.repo.Get(ctx)
	switch {
	case err == nil:
		w.apply(*current, StateLive)
	case errors.Is(err, domain.ErrSettingsNotFound):
		// No record stored yet: defaults are the live truth.
		w.apply(domain.DefaultSettings(), StateLive)
	default:
		w.log.Error().Err(err).Msg("settings initial read failed, serving defaults")
		w.apply(domain.DefaultSettings(), StateFallback)
	}

	unsub, err := w.repo.Watch(ctx, w.onNext, w.onError)
	if err != nil {
		w.log.Error().Err(err).Msg("settings subscription failed, serving defaults")
		w.apply(domain.DefaultSettings(), StateFallback)
		return
	}
	w.unsubscribe = unsub
}

// Settings returns the current snapshot.
func (w *SettingsWatcher) Settings() domain.SystemSettings {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.settings
}

// State returns the watcher's current state.
func (w *SettingsWatcher) State() WatcherState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Stop tears the subscription down. Safe to call multiple times; repeated
// calls are a no-op.
func (w *SettingsWatcher) Stop() {
	w.stopOnce.Do(func() {
		if w.unsubscribe != nil {
			w.unsubscribe()
		}
	})
}

func (w *SettingsWatcher) onNext(settings domain.SystemSettings) {
	w.apply(settings, StateLive)
}

func (w *SettingsWatcher) onError(err error) {
	w.log.Error().Err(err).Msg("settings subscription errored, falling back to defaults")
	w.apply(domain.DefaultSettings(), StateFallback)
}

func (w *SettingsWatcher) apply(settings domain.SystemSettings, state WatcherState) {
	w.mu.Lock()
	w.settings = settings
	w.state = state
	w.mu.Unlock()
}
