package exercises

import "time"

// Exercise mirrors one record of the public free-exercise-db catalog.
// Records are immutable once loaded.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Force            string   `json:"force,omitempty"`
	Level            string   `json:"level"`
	Mechanic         string   `json:"mechanic,omitempty"`
	Equipment        string   `json:"equipment,omitempty"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Category         string   `json:"category"`
	Images           []string `json:"images,omitempty"`
}

// Source says where a snapshot's records came from.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceMemory  Source = "memory"
	SourceDisk    Source = "disk"
	SourceFixture Source = "fixture"
)

// Snapshot is a finalized catalog the recommendation layer scores against.
// The provider hands out snapshots by value; callers never mutate them.
type Snapshot struct {
	Exercises []Exercise `json:"exercises"`
	FetchedAt time.Time  `json:"fetchedAt"`
	Source    Source     `json:"source"`
}
