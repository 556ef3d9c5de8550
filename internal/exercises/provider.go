package exercises

import (
	"context"
	"sync"
	"time"

	"therapy-backend/internal/shared/metrics"
	"therapy-backend/internal/shared/telemetry"
)

// Fetcher fetches a fresh catalog snapshot. *Client is the production
// implementation; tests substitute stubs.
type Fetcher interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

// Provider hands out finalized catalog snapshots. A snapshot is refreshed
// from the remote catalog once its TTL lapses; on refresh failure the
// provider degrades through the last in-memory snapshot, the on-disk
// snapshot, and finally the built-in fixture set, so recommendation calls
// always receive a usable collection.
type Provider struct {
	fetcher Fetcher
	store   *SnapshotStore
	ttl     time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	snapshot Snapshot
	loaded   bool
}

// NewProvider builds a provider. ttl <= 0 falls back to one hour. The
// snapshot store may be nil to disable disk caching.
func NewProvider(fetcher Fetcher, store *SnapshotStore, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Provider{
		fetcher: fetcher,
		store:   store,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Snapshot returns the current catalog, refreshing it first when stale.
func (p *Provider) Snapshot(ctx context.Context) (Snapshot, error) {
	p.mu.RLock()
	if p.loaded && p.now().Sub(p.snapshot.FetchedAt) < p.ttl {
		snap := p.snapshot
		p.mu.RUnlock()
		return snap, nil
	}
	p.mu.RUnlock()

	return p.Refresh(ctx)
}

// Refresh fetches a fresh snapshot regardless of TTL and reports where the
// returned records came from. It only errors when every fallback is empty.
func (p *Provider) Refresh(ctx context.Context) (Snapshot, error) {
	metrics.IncCatalogRefresh()

	snap, err := p.fetcher.Fetch(ctx)
	if err == nil {
		p.mu.Lock()
		p.snapshot = snap
		p.loaded = true
		p.mu.Unlock()

		if p.store != nil {
			if saveErr := p.store.Save(snap); saveErr != nil {
				telemetry.Error("catalog.snapshot_save_failed", map[string]any{"error": saveErr.Error()})
			}
		}
		telemetry.Info("catalog.refreshed", map[string]any{
			"exercises": len(snap.Exercises),
			"source":    string(snap.Source),
		})
		return snap, nil
	}

	metrics.IncCatalogRefreshFailed()
	telemetry.Error("catalog.refresh_failed", map[string]any{"error": err.Error()})

	// Stale in-memory snapshot beats going to disk.
	p.mu.RLock()
	if p.loaded {
		snap := p.snapshot
		p.mu.RUnlock()
		return snap, nil
	}
	p.mu.RUnlock()

	if p.store != nil {
		if diskSnap, loadErr := p.store.Load(); loadErr == nil && len(diskSnap.Exercises) > 0 {
			p.mu.Lock()
			p.snapshot = diskSnap
			p.loaded = true
			p.mu.Unlock()
			telemetry.Info("catalog.loaded_from_disk", map[string]any{"exercises": len(diskSnap.Exercises)})
			return diskSnap, nil
		}
	}

	fixture := FixtureSnapshot()
	p.mu.Lock()
	p.snapshot = fixture
	p.loaded = true
	p.mu.Unlock()
	telemetry.Info("catalog.using_fixtures", map[string]any{"exercises": len(fixture.Exercises)})
	return fixture, nil
}

// Counts reports loaded and PT-relevant totals for the health endpoint.
// Zeroes mean no snapshot has been loaded yet.
func (p *Provider) Counts() (total int, ptRelevant int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.loaded {
		return 0, 0
	}
	return len(p.snapshot.Exercises), len(FilterPTRelevant(p.snapshot.Exercises))
}
