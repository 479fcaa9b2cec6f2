package service

import "github.com/renalplate/backend/internal/model"

// Thresholds relative to the daily reference intake.
const (
	lowIntakeRatio  = 0.8
	highIntakeRatio = 0.9
)

// OverLimitWarning flags a single nutrient exceeding 100% of its daily
// reference intake.
type OverLimitWarning struct {
	Metric  string `json:"metric"`
	Message string `json:"message"`
}

// Recommendations evaluates the guidance rules against the totals. Rules
// are independent and non-exclusive; the returned order is the fixed
// rule-check order. Pure function, no side effects.
func Recommendations(t model.NutrientTotals) []string {
	dri := model.DailyReferenceIntake
	var recs []string
	if t.Protein < dri.Protein*lowIntakeRatio {
		recs = append(recs, "Increase protein intake: try adding grilled chicken breast or egg whites.")
	}
	if t.Potassium > dri.Potassium*highIntakeRatio {
		recs = append(recs, "Reduce potassium: avoid foods like garlic or dill, choose lettuce or cucumber instead.")
	}
	if t.Phosphorus > dri.Phosphorus*highIntakeRatio {
		recs = append(recs, "Reduce phosphorus: cut back on foods like sardines, choose white bread instead.")
	}
	if t.Calories < dri.Calories*lowIntakeRatio {
		recs = append(recs, "Increase calories: add white rice or pasta to your meals.")
	}
	return recs
}

// OverLimitWarnings reports totals exceeding 100% of their daily reference
// intake. Defined for protein, potassium and phosphorus only; calories has
// no over-limit warning.
func OverLimitWarnings(t model.NutrientTotals) []OverLimitWarning {
	dri := model.DailyReferenceIntake
	var warnings []OverLimitWarning
	if t.Protein > dri.Protein {
		warnings = append(warnings, OverLimitWarning{
			Metric:  "protein",
			Message: "Protein intake exceeds the daily limit. Cut back on foods like fresh beef.",
		})
	}
	if t.Potassium > dri.Potassium {
		warnings = append(warnings, OverLimitWarning{
			Metric:  "potassium",
			Message: "Potassium intake exceeds the daily limit. Avoid foods like garlic or dill.",
		})
	}
	if t.Phosphorus > dri.Phosphorus {
		warnings = append(warnings, OverLimitWarning{
			Metric:  "phosphorus",
			Message: "Phosphorus intake exceeds the daily limit. Cut back on foods like sardines.",
		})
	}
	return warnings
}

// PercentOfDRI returns each total as a percentage of its daily reference
// intake, for the plan summary display.
func PercentOfDRI(t model.NutrientTotals) map[string]float64 {
	dri := model.DailyReferenceIntake
	return map[string]float64{
		"protein":    t.Protein / dri.Protein * 100,
		"potassium":  t.Potassium / dri.Potassium * 100,
		"phosphorus": t.Phosphorus / dri.Phosphorus * 100,
		"calories":   t.Calories / dri.Calories * 100,
	}
}
