package model

// NutrientValues holds the nutrient content of a food per 100 g.
type NutrientValues struct {
	Protein    float64 `json:"protein"`    // g
	Potassium  float64 `json:"potassium"`  // mg
	Phosphorus float64 `json:"phosphorus"` // mg
	Calories   float64 `json:"calories"`   // kcal
}

// Scale returns the nutrient values multiplied by a portion factor
// (portion grams / 100).
func (n NutrientValues) Scale(factor float64) NutrientValues {
	return NutrientValues{
		Protein:    n.Protein * factor,
		Potassium:  n.Potassium * factor,
		Phosphorus: n.Phosphorus * factor,
		Calories:   n.Calories * factor,
	}
}

// NutrientTotals represents aggregate nutrient intake for a selection or a
// logged day.
type NutrientTotals struct {
	Protein    float64 `json:"protein"`
	Potassium  float64 `json:"potassium"`
	Phosphorus float64 `json:"phosphorus"`
	Calories   float64 `json:"calories"`
}

// Add accumulates another set of nutrient values into the totals.
func (t *NutrientTotals) Add(n NutrientValues) {
	t.Protein += n.Protein
	t.Potassium += n.Potassium
	t.Phosphorus += n.Phosphorus
	t.Calories += n.Calories
}

// DRI holds the recommended daily intake targets for dialysis patients.
// The values are comparison baselines only and are never mutated.
type DRI struct {
	Protein    float64
	Potassium  float64
	Phosphorus float64
	Calories   float64
}

// DailyReferenceIntake is the fixed daily target for dialysis patients.
var DailyReferenceIntake = DRI{
	Protein:    60,   // g
	Potassium:  2000, // mg
	Phosphorus: 800,  // mg
	Calories:   2000, // kcal
}
