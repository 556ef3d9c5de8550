package exercises

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupExercisesRouter(t *testing.T, fetcher Fetcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := NewProvider(fetcher, nil, time.Hour)
	handler := NewHandler(provider)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func catalogSnapshot() Snapshot {
	return Snapshot{
		Exercises: []Exercise{
			{ID: "calf-stretch", Name: "Calf Stretch", Equipment: "body only", Category: "stretching"},
			{ID: "goblet-squat", Name: "Goblet Squat", Equipment: "dumbbell", Category: "strength"},
			{ID: "leg-press", Name: "Leg Press", Equipment: "machine", Category: "strength"},
		},
		FetchedAt: time.Now().UTC(),
		Source:    SourceRemote,
	}
}

func TestListExcludesMachineEquipment(t *testing.T) {
	router := setupExercisesRouter(t, &stubFetcher{snap: catalogSnapshot()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		Exercises []Exercise `json:"exercises"`
		Total     int        `json:"total"`
		Source    string     `json:"source"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Total != 2 {
		t.Fatalf("expected 2 PT exercises, got %d", payload.Total)
	}
	for _, ex := range payload.Exercises {
		if ex.Equipment == "machine" {
			t.Fatalf("machine exercise surfaced: %s", ex.Name)
		}
	}
	if payload.Source != string(SourceRemote) {
		t.Fatalf("unexpected source %q", payload.Source)
	}
}

func TestListStretchingFilter(t *testing.T) {
	router := setupExercisesRouter(t, &stubFetcher{snap: catalogSnapshot()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises?stretching=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		Exercises []Exercise `json:"exercises"`
		Total     int        `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Total != 1 || payload.Exercises[0].Category != "stretching" {
		t.Fatalf("expected only stretching exercises, got %+v", payload.Exercises)
	}
}
