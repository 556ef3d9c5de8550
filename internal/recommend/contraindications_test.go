package recommend

import (
	"reflect"
	"testing"
)

func TestDetectRules(t *testing.T) {
	cases := []struct {
		name     string
		exercise Exercise
		expected Contraindications
	}{
		{
			name:     "jump_blocks_high_pain",
			exercise: Exercise{Name: "Tuck Jump"},
			expected: Contraindications{PainLevels: []int{6, 7, 8, 9, 10}},
		},
		{
			name:     "rotation_blocks_back_conditions",
			exercise: Exercise{Name: "Seated Trunk Rotation"},
			expected: Contraindications{Conditions: []string{"back pain", "spinal injury", "disc herniation"}},
		},
		{
			name:     "lunge_blocks_knee_conditions",
			exercise: Exercise{Name: "Walking Lunge"},
			expected: Contraindications{Conditions: []string{"knee injury", "ankle injury", "joint replacement"}},
		},
		{
			name:     "press_blocks_shoulder_conditions",
			exercise: Exercise{Name: "Overhead Press"},
			expected: Contraindications{Conditions: []string{"shoulder impingement", "rotator cuff injury", "frozen shoulder"}},
		},
		{
			name:     "no_match_is_empty",
			exercise: Exercise{Name: "Cat Cow"},
			expected: Contraindications{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.exercise); !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestDetectRulesUnion(t *testing.T) {
	// Multiple independent rules all contribute.
	got := Detect(Exercise{Name: "Jump Squat with Twist"})
	expected := Contraindications{
		PainLevels: []int{6, 7, 8, 9, 10},
		Conditions: []string{
			"back pain", "spinal injury", "disc herniation",
			"knee injury", "ankle injury", "joint replacement",
		},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %+v, got %+v", expected, got)
	}
}

func TestContraindicationsBlocksCondition(t *testing.T) {
	c := Contraindications{Conditions: []string{"knee injury"}}

	cases := []struct {
		condition string
		expected  bool
	}{
		{condition: "Knee Injury", expected: true},
		{condition: "knee", expected: true},           // keyword contains condition
		{condition: "left knee injury", expected: true}, // condition contains keyword
		{condition: "shoulder", expected: false},
		{condition: "", expected: false},
	}

	for _, tc := range cases {
		if got := c.BlocksCondition(tc.condition); got != tc.expected {
			t.Fatalf("condition %q: expected %v, got %v", tc.condition, tc.expected, got)
		}
	}
}
