package model

import (
	"database/sql/driver"
	"encoding/json"
)

// FoodItem is a catalog entry with known nutrient content per 100 g.
// Catalog entries are immutable once the catalog is built; (Name, Category)
// is unique across the catalog.
type FoodItem struct {
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	Tags      []string       `json:"tags"`
	Nutrients NutrientValues `json:"nutrients_per_100g"`
}

// SelectedFood is a single entry in a working meal selection. Nutrients are
// scaled from the catalog values at add time and not re-derived later, so
// later catalog changes never affect an existing selection.
type SelectedFood struct {
	Food       string   `json:"food"`
	Category   string   `json:"category"`
	Portion    float64  `json:"portion"` // portion grams / 100
	Protein    float64  `json:"protein"`
	Potassium  float64  `json:"potassium"`
	Phosphorus float64  `json:"phosphorus"`
	Calories   float64  `json:"calories"`
	Tags       []string `json:"tags"`
}

// Grams returns the selected amount in grams.
func (s SelectedFood) Grams() float64 {
	return s.Portion * 100
}

// SelectedFoodList is a custom type for storing a food selection as JSON in
// a single column.
type SelectedFoodList []SelectedFood

// Value implements the driver.Valuer interface
func (l SelectedFoodList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *SelectedFoodList) Scan(value interface{}) error {
	if value == nil {
		*l = SelectedFoodList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Totals sums the scaled nutrient fields across the list. An empty list
// yields all-zero totals.
func (l SelectedFoodList) Totals() NutrientTotals {
	var t NutrientTotals
	for _, f := range l {
		t.Add(NutrientValues{
			Protein:    f.Protein,
			Potassium:  f.Potassium,
			Phosphorus: f.Phosphorus,
			Calories:   f.Calories,
		})
	}
	return t
}
