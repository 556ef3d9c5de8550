package assessments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"therapy-backend/internal/exercises"
	"therapy-backend/internal/recommend"
	"therapy-backend/internal/shared/metrics"
	"therapy-backend/internal/shared/telemetry"
)

// Input is one recommendation request.
type Input struct {
	Name          string
	PainLevel     int
	MobilityLevel int
	Condition     string
	Goals         []string
	Limit         int
}

// Recommendation bundles ranked results with the recorded assessment and
// catalog counters.
type Recommendation struct {
	Assessment     Assessment
	Results        []recommend.Result
	TotalExercises int
	PTExercises    int
	CatalogSource  exercises.Source
}

// Service contains business logic for scoring and recording assessments.
type Service struct {
	Repo    Repo
	Catalog *exercises.Provider
	Engine  *recommend.Engine
}

// NewService constructs a Service.
func NewService(repo Repo, catalog *exercises.Provider, engine *recommend.Engine) *Service {
	return &Service{Repo: repo, Catalog: catalog, Engine: engine}
}

// Recommend scores the PT-relevant catalog against the user's assessment and
// records the request.
func (s *Service) Recommend(ctx context.Context, userID string, input Input) (Recommendation, error) {
	return s.recommend(ctx, userID, input, false)
}

// RecommendStretching scores only stretching exercises.
func (s *Service) RecommendStretching(ctx context.Context, userID string, input Input) (Recommendation, error) {
	return s.recommend(ctx, userID, input, true)
}

func (s *Service) recommend(ctx context.Context, userID string, input Input, stretchingOnly bool) (Recommendation, error) {
	if err := validateInput(input); err != nil {
		metrics.IncRecommendationRejected()
		return Recommendation{}, err
	}
	metrics.IncRecommendationRequest()

	snap, err := s.Catalog.Snapshot(ctx)
	if err != nil {
		return Recommendation{}, fmt.Errorf("load exercise catalog: %w", err)
	}

	pt := exercises.FilterPTRelevant(snap.Exercises)
	records := make([]recommend.Exercise, 0, len(pt))
	for _, rec := range pt {
		records = append(records, mapRecord(rec))
	}

	profile := recommend.Profile{
		Name:          input.Name,
		Condition:     input.Condition,
		PainLevel:     input.PainLevel,
		MobilityLevel: input.MobilityLevel,
		Goals:         input.Goals,
	}

	started := time.Now()
	var results []recommend.Result
	if stretchingOnly {
		results = s.Engine.RecommendStretching(records, profile, input.Limit)
	} else {
		results = s.Engine.Recommend(records, profile, input.Limit)
	}
	metrics.ObserveRecommendationDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	assessment := Assessment{
		ID:            uuid.NewString(),
		UserID:        userID,
		PainLevel:     input.PainLevel,
		MobilityLevel: input.MobilityLevel,
		Condition:     input.Condition,
		Goals:         input.Goals,
		ResultCount:   len(results),
		CreatedAt:     time.Now().UTC(),
	}
	if len(results) > 0 {
		assessment.TopScore = results[0].Score
	}

	// History is best effort; a storage failure must not block results.
	if s.Repo != nil {
		if err := s.Repo.Create(ctx, assessment); err != nil {
			telemetry.Warn("assessment.record_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	return Recommendation{
		Assessment:     assessment,
		Results:        results,
		TotalExercises: len(snap.Exercises),
		PTExercises:    len(pt),
		CatalogSource:  snap.Source,
	}, nil
}

// List returns the user's assessment history, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("assessments service not configured")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func validateInput(input Input) error {
	if input.PainLevel < 1 || input.PainLevel > 10 {
		return fmt.Errorf("%w: painLevel must be between 1 and 10", ErrInvalidInput)
	}
	if input.MobilityLevel < 1 || input.MobilityLevel > 10 {
		return fmt.Errorf("%w: mobilityLevel must be between 1 and 10", ErrInvalidInput)
	}
	return nil
}

func mapRecord(rec exercises.Exercise) recommend.Exercise {
	return recommend.Exercise{
		ID:               rec.ID,
		Name:             rec.Name,
		Level:            rec.Level,
		Equipment:        rec.Equipment,
		Category:         rec.Category,
		PrimaryMuscles:   rec.PrimaryMuscles,
		SecondaryMuscles: rec.SecondaryMuscles,
		Instructions:     rec.Instructions,
	}
}
