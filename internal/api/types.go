package api

import (
	"github.com/renalplate/backend/internal/model"
	"github.com/renalplate/backend/internal/service"
)

// AddFoodRequest adds one manual entry to the working selection. Portion is
// not a binding requirement: a zero or missing portion goes through the
// selection's own validation so the portion error surfaces.
type AddFoodRequest struct {
	Food     string  `json:"food" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Portion  float64 `json:"portion"` // grams
}

// RemoveFoodRequest removes every entry matching the pair.
type RemoveFoodRequest struct {
	Food     string `json:"food" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// LoadTemplateRequest replaces the selection with a template expansion.
type LoadTemplateRequest struct {
	Name string `json:"name" binding:"required"`
}

// ChartPoint is one slice of the nutrient distribution chart. Values are
// scaled the way the original chart scales them (mg and kcal divided by
// 100) so the slices are comparable.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PlanResponse is the full diet plan view for a selection.
type PlanResponse struct {
	Foods           model.SelectedFoodList     `json:"foods"`
	Totals          model.NutrientTotals       `json:"totals"`
	PercentOfDRI    map[string]float64         `json:"percent_of_dri"`
	Recommendations []string                   `json:"recommendations"`
	Warnings        []service.OverLimitWarning `json:"warnings"`
	Chart           []ChartPoint               `json:"chart"`
}

// LogEntry is one logged day in a tracking response.
type LogEntry struct {
	ID     int64                  `json:"id"`
	Date   string                 `json:"date"`
	Totals model.NutrientTotals   `json:"totals"`
	Foods  model.SelectedFoodList `json:"foods"`
}

// TrendPoint is one day's figures for the nutrient trend chart, scaled
// like the distribution chart.
type TrendPoint struct {
	Date       string  `json:"date"`
	Protein    float64 `json:"protein"`
	Potassium  float64 `json:"potassium"`
	Phosphorus float64 `json:"phosphorus"`
	Calories   float64 `json:"calories"`
}

// LogResponse is the tracking view for a period.
type LogResponse struct {
	Period  string       `json:"period"`
	Start   string       `json:"start"`
	End     string       `json:"end"`
	Entries []LogEntry   `json:"entries"`
	Trend   []TrendPoint `json:"trend"`
}

// SaveResponse reports a saved meal log row.
type SaveResponse struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

// ShareResponse reports a created share token and its constructed URL. The
// URL references an external retrieval endpoint not served here.
type ShareResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
