package recommend

// painRanges keys the pain suitability range by intensity. Lower-intensity
// exercises suit higher pain levels.
var painRanges = map[Intensity]Range{
	IntensityVeryLow:  {Min: 8, Max: 10, Optimal: []int{9, 10}},
	IntensityLow:      {Min: 5, Max: 10, Optimal: []int{6, 7, 8}},
	IntensityModerate: {Min: 2, Max: 7, Optimal: []int{3, 4, 5}},
	IntensityHigh:     {Min: 1, Max: 4, Optimal: []int{1, 2, 3}},
	IntensityVeryHigh: {Min: 1, Max: 2, Optimal: []int{1}},
}

// mobilityCategoryRanges holds the category-specific mobility ranges checked
// before the intensity fallback.
var mobilityCategoryRanges = map[Category]Range{
	CategoryStretching:  {Min: 1, Max: 10, Optimal: []int{2, 3, 4, 5}},
	CategoryMobility:    {Min: 1, Max: 10, Optimal: []int{2, 3, 4, 5}},
	CategoryFlexibility: {Min: 1, Max: 10, Optimal: []int{2, 3, 4, 5}},
	CategoryBalance:     {Min: 3, Max: 10, Optimal: []int{4, 5, 6, 7}},
	CategoryStrength:    {Min: 4, Max: 10, Optimal: []int{5, 6, 7, 8}},
	CategoryCardio:      {Min: 6, Max: 10, Optimal: []int{7, 8, 9, 10}},
}

// mobilityIntensityRanges is the intensity-keyed fallback for categories
// without a dedicated mobility range.
var mobilityIntensityRanges = map[Intensity]Range{
	IntensityVeryLow:  {Min: 1, Max: 10, Optimal: []int{2, 3, 4}},
	IntensityLow:      {Min: 2, Max: 10, Optimal: []int{3, 4, 5}},
	IntensityModerate: {Min: 4, Max: 10, Optimal: []int{5, 6, 7}},
	IntensityHigh:     {Min: 6, Max: 10, Optimal: []int{7, 8, 9}},
	IntensityVeryHigh: {Min: 8, Max: 10, Optimal: []int{9, 10}},
}

var defaultRange = Range{Min: 1, Max: 10, Optimal: []int{5}}

// PainRange returns the pain-level suitability range for an intensity.
func PainRange(intensity Intensity) Range {
	if r, ok := painRanges[intensity]; ok {
		return r
	}
	return defaultRange
}

// MobilityRange returns the mobility-level suitability range. The derived
// category takes precedence; otherwise intensity decides.
func MobilityRange(category Category, intensity Intensity) Range {
	if r, ok := mobilityCategoryRanges[category]; ok {
		return r
	}
	if r, ok := mobilityIntensityRanges[intensity]; ok {
		return r
	}
	return defaultRange
}
