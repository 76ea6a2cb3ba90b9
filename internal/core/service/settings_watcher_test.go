package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arabshield/platform-api/internal/core/domain"
)

func TestSettingsWatcher_StartsWithStoredRecord(t *testing.T) {
	stored := domain.DefaultSettings()
	stored.SiteName = "Custom"
	stored.MaintenanceMode = true
	repo := &stubSettingsRepo{stored: &stored}

	w := NewSettingsWatcher(repo, zerolog.Nop())
	if w.State() != StateLoading {
		t.Fatalf("new watcher should be loading, got %s", w.State())
	}

	w.Start(context.Background())
	defer w.Stop()

	if w.State() != StateLive {
		t.Fatalf("expected live state, got %s", w.State())
	}
	if got := w.Settings(); got.SiteName != "Custom" || !got.MaintenanceMode {
		t.Fatalf("snapshot does not reflect stored record: %+v", got)
	}
}

func TestSettingsWatcher_AbsentRecordServesDefaultsLive(t *testing.T) {
	repo := &stubSettingsRepo{} // Get returns ErrSettingsNotFound
	w := NewSettingsWatcher(repo, zerolog.Nop())
	w.Start(context.Background())
	defer w.Stop()

	if w.State() != StateLive {
		t.Fatalf("missing record is not a failure, expected live, got %s", w.State())
	}
	if got := w.Settings(); got != domain.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestSettingsWatcher_InitialReadFailureFallsBack(t *testing.T) {
	repo := &stubSettingsRepo{getErr: errors.New("store unreachable")}
	w := NewSettingsWatcher(repo, zerolog.Nop())
	w.Start(context.Background())
	defer w.Stop()

	if w.State() != StateFallback {
		t.Fatalf("expected fallback state, got %s", w.State())
	}
	if got := w.Settings(); got != domain.DefaultSettings() {
		t.Fatalf("fallback must serve defaults, got %+v", got)
	}
}

func TestSettingsWatcher_SubscribeFailureFallsBack(t *testing.T) {
	stored := domain.DefaultSettings()
	repo := &stubSettingsRepo{stored: &stored, watchErr: errors.New("change streams unavailable")}
	w := NewSettingsWatcher(repo, zerolog.Nop())
	w.Start(context.Background())
	defer w.Stop()

	if w.State() != StateFallback {
		t.Fatalf("expected fallback state, got %s", w.State())
	}
}

func TestSettingsWatcher_StreamUpdatesSnapshot(t *testing.T) {
	stored := domain.DefaultSettings()
	repo := &stubSettingsRepo{stored: &stored}
	w := NewSettingsWatcher(repo, zerolog.Nop())
	w.Start(context.Background())
	defer w.Stop()

	next := domain.DefaultSettings()
	next.MaintenanceMode = true
	next.MaxProjectsPerUser = 42
	repo.onNext(next)

	got := w.Settings()
	if !got.MaintenanceMode || got.MaxProjectsPerUser != 42 {
		t.Fatalf("stream update not applied: %+v", got)
	}
	if w.State() != StateLive {
		t.Fatalf("stream update must keep watcher live, got %s", w.State())
	}
}

func TestSettingsWatcher_StreamErrorFallsBackToDefaults(t *testing.T) {
	stored := domain.DefaultSettings()
	stored.MaintenanceMode = true
	repo := &stubSettingsRepo{stored: &stored}
	w := NewSettingsWatcher(repo, zerolog.Nop())
	w.Start(context.Background())
	defer w.Stop()

	repo.onError(errors.New("cursor killed"))

	if w.State() != StateFallback {
		t.Fatalf("expected fallback after stream error, got %s", w.State())
	}
	if got := w.Settings(); got.MaintenanceMode {
		t.Fatalf("stale snapshot survived stream error: %+v", got)
	}
}

func TestSettingsWatcher_StopIsIdempotent(t *testing.T) {
	stored := domain.DefaultSettings()
	repo := &stubSettingsRepo{stored: &stored}
	w := NewSettingsWatcher(repo, zerolog.Nop())
	w.Start(context.Background())

	w.Stop()
	w.Stop()
	w.Stop()

	if repo.unsubs != 1 {
		t.Fatalf("expected one unsubscribe, got %d", repo.unsubs)
	}
}

func TestSettingsWatcher_StopBeforeStart(t *testing.T) {
	w := NewSettingsWatcher(&stubSettingsRepo{}, zerolog.Nop())
	w.Stop() // must not panic without a subscription
}
