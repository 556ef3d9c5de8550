package exercises

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubFetcher struct {
	snap  Snapshot
	err   error
	calls int
}

func (s *stubFetcher) Fetch(ctx context.Context) (Snapshot, error) {
	s.calls++
	if s.err != nil {
		return Snapshot{}, s.err
	}
	return s.snap, nil
}

func remoteSnapshot(fetchedAt time.Time) Snapshot {
	return Snapshot{
		Exercises: []Exercise{{ID: "a", Name: "Calf Stretch", Category: "stretching"}},
		FetchedAt: fetchedAt,
		Source:    SourceRemote,
	}
}

func TestProviderServesFreshSnapshotWithoutRefetch(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{snap: remoteSnapshot(now)}
	provider := NewProvider(fetcher, nil, time.Hour)
	provider.now = func() time.Time { return now }

	first, err := provider.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if first.Source != SourceRemote {
		t.Fatalf("expected remote source, got %s", first.Source)
	}

	// Second call inside the TTL must not hit the fetcher again.
	if _, err := provider.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", fetcher.calls)
	}
}

func TestProviderRefreshesWhenStale(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{snap: remoteSnapshot(start)}
	provider := NewProvider(fetcher, nil, time.Minute)

	current := start
	provider.now = func() time.Time { return current }

	if _, err := provider.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	current = start.Add(2 * time.Minute)
	if _, err := provider.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if fetcher.calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", fetcher.calls)
	}
}

func TestProviderKeepsStaleSnapshotOnRefreshFailure(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{snap: remoteSnapshot(start)}
	provider := NewProvider(fetcher, nil, time.Minute)

	current := start
	provider.now = func() time.Time { return current }

	if _, err := provider.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	fetcher.err = errors.New("upstream down")
	current = start.Add(2 * time.Minute)

	snap, err := provider.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Exercises) != 1 || snap.Exercises[0].ID != "a" {
		t.Fatalf("expected the stale snapshot, got %+v", snap)
	}
}

func TestProviderFallsBackToDiskThenFixtures(t *testing.T) {
	dir := t.TempDir()
	store := NewSnapshotStore(dir)
	diskSnap := remoteSnapshot(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC))
	if err := store.Save(diskSnap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fetcher := &stubFetcher{err: errors.New("upstream down")}
	provider := NewProvider(fetcher, store, time.Hour)

	snap, err := provider.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Source != SourceDisk {
		t.Fatalf("expected disk source, got %s", snap.Source)
	}

	// With no disk snapshot either, the fixtures are the last resort.
	bare := NewProvider(&stubFetcher{err: errors.New("upstream down")}, NewSnapshotStore(t.TempDir()), time.Hour)
	snap, err = bare.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Source != SourceFixture {
		t.Fatalf("expected fixture source, got %s", snap.Source)
	}
	if len(snap.Exercises) == 0 {
		t.Fatalf("fixture snapshot must not be empty")
	}
}

func TestProviderCounts(t *testing.T) {
	provider := NewProvider(&stubFetcher{snap: Snapshot{
		Exercises: []Exercise{
			{Name: "Calf Stretch", Category: "stretching", Equipment: "body only"},
			{Name: "Leg Press", Category: "strength", Equipment: "machine"},
		},
		FetchedAt: time.Now().UTC(),
		Source:    SourceRemote,
	}}, nil, time.Hour)

	total, pt := provider.Counts()
	if total != 0 || pt != 0 {
		t.Fatalf("expected zero counts before first load, got %d/%d", total, pt)
	}

	if _, err := provider.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	total, pt = provider.Counts()
	if total != 2 || pt != 1 {
		t.Fatalf("expected 2 loaded and 1 PT-relevant, got %d/%d", total, pt)
	}
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	store := NewSnapshotStore(t.TempDir())

	if _, err := store.Load(); err == nil {
		t.Fatalf("expected cache miss on empty store")
	}

	saved := remoteSnapshot(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Source != SourceDisk {
		t.Fatalf("expected disk source, got %s", loaded.Source)
	}
	if len(loaded.Exercises) != 1 || loaded.Exercises[0].Name != "Calf Stretch" {
		t.Fatalf("snapshot mismatch: %+v", loaded)
	}
}
