package recommend

import (
	"reflect"
	"testing"
)

func TestPainRangeTable(t *testing.T) {
	cases := []struct {
		intensity Intensity
		expected  Range
	}{
		{IntensityVeryLow, Range{Min: 8, Max: 10, Optimal: []int{9, 10}}},
		{IntensityLow, Range{Min: 5, Max: 10, Optimal: []int{6, 7, 8}}},
		{IntensityModerate, Range{Min: 2, Max: 7, Optimal: []int{3, 4, 5}}},
		{IntensityHigh, Range{Min: 1, Max: 4, Optimal: []int{1, 2, 3}}},
		{IntensityVeryHigh, Range{Min: 1, Max: 2, Optimal: []int{1}}},
	}

	for _, tc := range cases {
		if got := PainRange(tc.intensity); !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("%s: expected %+v, got %+v", tc.intensity, tc.expected, got)
		}
	}
}

func TestMobilityRangeCategoryPrecedence(t *testing.T) {
	// Category-specific ranges win regardless of intensity.
	for _, category := range []Category{CategoryStretching, CategoryMobility, CategoryFlexibility} {
		got := MobilityRange(category, IntensityVeryHigh)
		expected := Range{Min: 1, Max: 10, Optimal: []int{2, 3, 4, 5}}
		if !reflect.DeepEqual(got, expected) {
			t.Fatalf("%s: expected %+v, got %+v", category, expected, got)
		}
	}

	cases := []struct {
		category Category
		expected Range
	}{
		{CategoryBalance, Range{Min: 3, Max: 10, Optimal: []int{4, 5, 6, 7}}},
		{CategoryStrength, Range{Min: 4, Max: 10, Optimal: []int{5, 6, 7, 8}}},
		{CategoryCardio, Range{Min: 6, Max: 10, Optimal: []int{7, 8, 9, 10}}},
	}
	for _, tc := range cases {
		if got := MobilityRange(tc.category, IntensityLow); !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("%s: expected %+v, got %+v", tc.category, tc.expected, got)
		}
	}
}

func TestMobilityRangeIntensityFallback(t *testing.T) {
	cases := []struct {
		intensity Intensity
		expected  Range
	}{
		{IntensityVeryLow, Range{Min: 1, Max: 10, Optimal: []int{2, 3, 4}}},
		{IntensityLow, Range{Min: 2, Max: 10, Optimal: []int{3, 4, 5}}},
		{IntensityModerate, Range{Min: 4, Max: 10, Optimal: []int{5, 6, 7}}},
		{IntensityHigh, Range{Min: 6, Max: 10, Optimal: []int{7, 8, 9}}},
		{IntensityVeryHigh, Range{Min: 8, Max: 10, Optimal: []int{9, 10}}},
	}

	for _, tc := range cases {
		if got := MobilityRange(CategoryTherapeutic, tc.intensity); !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("%s: expected %+v, got %+v", tc.intensity, tc.expected, got)
		}
	}
}

func TestRangeInvariants(t *testing.T) {
	check := func(label string, r Range) {
		t.Helper()
		if r.Min > r.Max {
			t.Fatalf("%s: min %d > max %d", label, r.Min, r.Max)
		}
		for _, opt := range r.Optimal {
			if opt < r.Min || opt > r.Max {
				t.Fatalf("%s: optimal %d outside [%d, %d]", label, opt, r.Min, r.Max)
			}
		}
	}

	for intensity, r := range painRanges {
		check("pain/"+intensity.String(), r)
	}
	for category, r := range mobilityCategoryRanges {
		check("mobility/"+string(category), r)
	}
	for intensity, r := range mobilityIntensityRanges {
		check("mobility-fallback/"+intensity.String(), r)
	}
	check("default", defaultRange)
}

func TestRangeHelpers(t *testing.T) {
	r := Range{Min: 2, Max: 7, Optimal: []int{3, 4, 5}}
	if !r.Contains(2) || !r.Contains(7) || r.Contains(1) || r.Contains(8) {
		t.Fatalf("Contains boundaries wrong for %+v", r)
	}
	if !r.IsOptimal(4) || r.IsOptimal(6) {
		t.Fatalf("IsOptimal wrong for %+v", r)
	}
}
