package recommend

import (
	"reflect"
	"testing"
)

func TestClassifyIntensityTiers(t *testing.T) {
	cases := []struct {
		name     string
		exercise Exercise
		expected Intensity
	}{
		{
			name:     "jump_is_very_high",
			exercise: Exercise{Name: "Box Jump", Category: "plyometrics"},
			expected: IntensityVeryHigh,
		},
		{
			name:     "high_intensity_phrase",
			exercise: Exercise{Name: "Circuit Finisher", Description: "A high intensity finisher"},
			expected: IntensityVeryHigh,
		},
		{
			name:     "squat_is_high",
			exercise: Exercise{Name: "Goblet Squat", Category: "strength"},
			expected: IntensityHigh,
		},
		{
			name:     "strength_category_is_high",
			exercise: Exercise{Name: "Farmer Carry", Category: "strength"},
			expected: IntensityHigh,
		},
		{
			name:     "lunge_is_moderate",
			exercise: Exercise{Name: "Reverse Lunge"},
			expected: IntensityModerate,
		},
		{
			name:     "cardio_category_is_moderate",
			exercise: Exercise{Name: "Rowing", Category: "cardio"},
			expected: IntensityModerate,
		},
		{
			name:     "stretch_is_low",
			exercise: Exercise{Name: "Hamstring Stretch"},
			expected: IntensityLow,
		},
		{
			name:     "mobility_category_is_low",
			exercise: Exercise{Name: "Hip Circles", Category: "mobility"},
			expected: IntensityLow,
		},
		{
			name:     "meditation_is_very_low",
			exercise: Exercise{Name: "Guided Meditation"},
			expected: IntensityVeryLow,
		},
		{
			name:     "keyword_in_instructions_counts",
			exercise: Exercise{Name: "Wall Sit", Instructions: []string{"Press your back against the wall."}},
			expected: IntensityHigh,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyIntensity(tc.exercise); got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestClassifyIntensityFirstTierWins(t *testing.T) {
	// "squat" (high tier) appears before "jump" would, but the very-high
	// tier is evaluated first, so jump wins.
	ex := Exercise{Name: "Squat Jump"}
	if got := classifyIntensity(ex); got != IntensityVeryHigh {
		t.Fatalf("expected very-high, got %s", got)
	}

	// High tier beats moderate even when a moderate keyword appears too.
	ex = Exercise{Name: "Walking Dumbbell Press"}
	if got := classifyIntensity(ex); got != IntensityHigh {
		t.Fatalf("expected high, got %s", got)
	}
}

func TestClassifyIntensityDifficultyFallback(t *testing.T) {
	cases := []struct {
		level    string
		expected Intensity
	}{
		{level: "beginner", expected: IntensityLow},
		{level: "intermediate", expected: IntensityModerate},
		{level: "advanced", expected: IntensityHigh},
		{level: "expert", expected: IntensityVeryHigh},
		{level: "", expected: IntensityModerate},
		{level: "unknown", expected: IntensityModerate},
	}

	for _, tc := range cases {
		ex := Exercise{Name: "Neutral Movement", Level: tc.level}
		if got := classifyIntensity(ex); got != tc.expected {
			t.Fatalf("level %q: expected %s, got %s", tc.level, tc.expected, got)
		}
	}
}

func TestClassifyCategory(t *testing.T) {
	cases := []struct {
		name     string
		exercise Exercise
		expected Category
	}{
		{name: "category_label", exercise: Exercise{Name: "Hip Circles", Category: "mobility"}, expected: CategoryMobility},
		{name: "name_keyword", exercise: Exercise{Name: "Calf Stretch", Category: "general"}, expected: CategoryStretching},
		{name: "strength", exercise: Exercise{Name: "Row", Category: "strength"}, expected: CategoryStrength},
		{name: "balance", exercise: Exercise{Name: "Single Leg Balance"}, expected: CategoryBalance},
		{name: "cardio", exercise: Exercise{Name: "Bike", Category: "cardio"}, expected: CategoryCardio},
		{name: "flexibility", exercise: Exercise{Name: "Splits", Category: "flexibility"}, expected: CategoryFlexibility},
		{name: "default_therapeutic", exercise: Exercise{Name: "Box Jump", Category: "plyometrics"}, expected: CategoryTherapeutic},
		{name: "empty_record", exercise: Exercise{}, expected: CategoryTherapeutic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, got := Classify(tc.exercise); got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestClassifyTotalAndDeterministic(t *testing.T) {
	validCategories := map[Category]bool{
		CategoryStretching:     true,
		CategoryMobility:       true,
		CategoryStrength:       true,
		CategoryBalance:        true,
		CategoryCardio:         true,
		CategoryFlexibility:    true,
		CategoryRehabilitation: true,
		CategoryTherapeutic:    true,
	}

	records := []Exercise{
		{},
		{Name: "???", Category: "!!!", Level: "mystery"},
		{Name: "Gentle Neck Rotations", Category: "mobility", Level: "beginner"},
		{Name: "Explosive Box Jump", Category: "plyometrics", Level: "expert"},
		{Name: "Deadlift", Category: "powerlifting"},
	}

	for _, ex := range records {
		intensity, category := Classify(ex)
		if intensity < IntensityVeryLow || intensity > IntensityVeryHigh {
			t.Fatalf("intensity out of range for %q: %d", ex.Name, intensity)
		}
		if !validCategories[category] {
			t.Fatalf("unexpected category for %q: %s", ex.Name, category)
		}

		againIntensity, againCategory := Classify(ex)
		if againIntensity != intensity || againCategory != category {
			t.Fatalf("classification not deterministic for %q", ex.Name)
		}
	}
}

func TestClassifyGentleNeckRotations(t *testing.T) {
	ex := Exercise{
		Name:           "Gentle Neck Rotations",
		Category:       "mobility",
		Level:          "beginner",
		PrimaryMuscles: []string{"Neck"},
	}

	intensity, category := Classify(ex)
	if intensity != IntensityLow {
		t.Fatalf("expected low intensity, got %s", intensity)
	}
	if category != CategoryMobility {
		t.Fatalf("expected mobility category, got %s", category)
	}

	pain := PainRange(intensity)
	expected := Range{Min: 5, Max: 10, Optimal: []int{6, 7, 8}}
	if !reflect.DeepEqual(pain, expected) {
		t.Fatalf("expected pain range %+v, got %+v", expected, pain)
	}
}
