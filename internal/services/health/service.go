package health

import "therapy-backend/internal/exercises"

// Service encapsulates health-related checks.
type Service struct {
	Catalog *exercises.Provider
}

// NewService constructs a new health service.
func NewService(catalog *exercises.Provider) *Service {
	return &Service{Catalog: catalog}
}

// Status returns a health payload with catalog counters.
func (s *Service) Status() map[string]any {
	payload := map[string]any{"ok": true}
	if s != nil && s.Catalog != nil {
		total, pt := s.Catalog.Counts()
		payload["exercises_loaded"] = total
		payload["pt_exercises"] = pt
	}
	return payload
}
