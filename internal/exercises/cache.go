package exercises

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const snapshotFileName = "catalog_snapshot.json"

// SnapshotStore persists the latest catalog snapshot to local disk so the
// API can keep serving across restarts while the upstream catalog is down.
type SnapshotStore struct {
	baseDir string
}

// NewSnapshotStore roots a store at baseDir.
func NewSnapshotStore(baseDir string) *SnapshotStore {
	return &SnapshotStore{baseDir: baseDir}
}

// Save writes the snapshot atomically via a temp file rename.
func (s *SnapshotStore) Save(snap Snapshot) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmpPath := filepath.Join(s.baseDir, snapshotFileName+".tmp")
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.baseDir, snapshotFileName)); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// Load reads the last persisted snapshot. A missing file is reported as an
// error; callers treat it as a cache miss.
func (s *SnapshotStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, snapshotFileName))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	snap.Source = SourceDisk
	return snap, nil
}
