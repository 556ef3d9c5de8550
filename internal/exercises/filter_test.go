package exercises

import "testing"

func TestIsPTRelevant(t *testing.T) {
	cases := []struct {
		name     string
		exercise Exercise
		expected bool
	}{
		{
			name:     "bodyweight_stretch_allowed",
			exercise: Exercise{Name: "Calf Stretch", Category: "stretching", Equipment: "body only"},
			expected: true,
		},
		{
			name:     "empty_equipment_allowed",
			exercise: Exercise{Name: "Bird Dog", Category: "strength"},
			expected: true,
		},
		{
			name:     "machine_excluded",
			exercise: Exercise{Name: "Leg Press", Category: "strength", Equipment: "machine"},
			expected: false,
		},
		{
			name:     "stepmill_machine_excluded",
			exercise: Exercise{Name: "Stepmill", Category: "cardio", Equipment: "stepmill machine"},
			expected: false,
		},
		{
			name:     "unknown_equipment_excluded",
			exercise: Exercise{Name: "Trapeze Hang", Category: "strength", Equipment: "trapeze"},
			expected: false,
		},
		{
			name:     "non_pt_category_excluded",
			exercise: Exercise{Name: "Pose Hold", Category: "contortion", Equipment: "body only"},
			expected: false,
		},
		{
			name:     "empty_category_allowed",
			exercise: Exercise{Name: "Mystery Move", Equipment: "dumbbell"},
			expected: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPTRelevant(tc.exercise); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestFilterPTRelevant(t *testing.T) {
	records := []Exercise{
		{Name: "Calf Stretch", Category: "stretching", Equipment: "body only"},
		{Name: "Leg Press", Category: "strength", Equipment: "machine"},
		{Name: "Kettlebell Swing", Category: "strength", Equipment: "kettlebell"},
	}

	filtered := FilterPTRelevant(records)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 records, got %d", len(filtered))
	}
	for _, ex := range filtered {
		if ex.Name == "Leg Press" {
			t.Fatalf("machine exercise not filtered out")
		}
	}
}

func TestIsStretchingCategory(t *testing.T) {
	for _, category := range []string{"stretching", "Flexibility", "MOBILITY"} {
		if !IsStretchingCategory(category) {
			t.Fatalf("expected %q to be a stretching category", category)
		}
	}
	if IsStretchingCategory("strength") {
		t.Fatalf("strength is not a stretching category")
	}
}
