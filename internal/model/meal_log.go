package model

// GuestUserID is the single fixed identity used when no user id is supplied.
// Multi-user accounts are not implemented.
const GuestUserID = "guest"

// MealLog is a finalized day's selection persisted to the local store.
// Rows are append-only: the application never updates or deletes them.
type MealLog struct {
	ID         int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string           `gorm:"default:guest" json:"user_id"`
	Date       string           `json:"date"` // YYYY-MM-DD
	Foods      SelectedFoodList `gorm:"type:text" json:"foods"`
	Protein    float64          `json:"protein"`
	Potassium  float64          `json:"potassium"`
	Phosphorus float64          `json:"phosphorus"`
	Calories   float64          `json:"calories"`
}

func (MealLog) TableName() string {
	return "meal_logs"
}

// Totals returns the stored day totals.
func (m MealLog) Totals() NutrientTotals {
	return NutrientTotals{
		Protein:    m.Protein,
		Potassium:  m.Potassium,
		Phosphorus: m.Phosphorus,
		Calories:   m.Calories,
	}
}

// SharedPlan is an immutable snapshot of a selection keyed by a generated
// share token. Serving the shared plan back is handled externally.
type SharedPlan struct {
	ID        string           `gorm:"primaryKey" json:"id"`
	UserID    string           `gorm:"default:guest" json:"user_id"`
	Foods     SelectedFoodList `gorm:"type:text" json:"foods"`
	CreatedAt string           `json:"created_at"`
}

func (SharedPlan) TableName() string {
	return "shared_plans"
}
