package catalog

// Meal slots, in expansion order.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// TemplateLine is one food reference inside a meal template.
type TemplateLine struct {
	Food         string  `json:"food"`
	Category     string  `json:"category"`
	PortionGrams float64 `json:"portion"`
}

// TemplateMeal groups the lines of one meal slot.
type TemplateMeal struct {
	Slot  string         `json:"slot"`
	Lines []TemplateLine `json:"lines"`
}

// MealTemplate is a named preset covering a full day's meals with fixed
// portions. Template portions are trusted and not re-validated on load.
type MealTemplate struct {
	Name  string         `json:"name"`
	Meals []TemplateMeal `json:"meals"`
}

var templates = []MealTemplate{
	{
		Name: "standard dialysis day",
		Meals: []TemplateMeal{
			{Slot: SlotBreakfast, Lines: []TemplateLine{
				{Food: "egg whites", Category: CategoryProteins, PortionGrams: 100},
				{Food: "white bread", Category: CategoryGrains, PortionGrams: 50},
				{Food: "apple", Category: CategoryFruits, PortionGrams: 100},
			}},
			{Slot: SlotLunch, Lines: []TemplateLine{
				{Food: "grilled chicken breast", Category: CategoryProteins, PortionGrams: 100},
				{Food: "white rice", Category: CategoryGrains, PortionGrams: 100},
				{Food: "lettuce", Category: CategoryVegetables, PortionGrams: 50},
			}},
			{Slot: SlotDinner, Lines: []TemplateLine{
				{Food: "canned tuna", Category: CategoryProteins, PortionGrams: 100},
				{Food: "cabbage", Category: CategoryVegetables, PortionGrams: 50},
				{Food: "lemon", Category: CategoryFlavor, PortionGrams: 10},
			}},
		},
	},
	{
		Name: "low calorie day",
		Meals: []TemplateMeal{
			{Slot: SlotBreakfast, Lines: []TemplateLine{
				{Food: "egg whites", Category: CategoryProteins, PortionGrams: 50},
				{Food: "berries", Category: CategoryFruits, PortionGrams: 100},
			}},
			{Slot: SlotLunch, Lines: []TemplateLine{
				{Food: "grilled chicken breast", Category: CategoryProteins, PortionGrams: 80},
				{Food: "cucumber", Category: CategoryVegetables, PortionGrams: 100},
			}},
			{Slot: SlotDinner, Lines: []TemplateLine{
				{Food: "canned tuna", Category: CategoryProteins, PortionGrams: 80},
				{Food: "cauliflower", Category: CategoryVegetables, PortionGrams: 50},
			}},
		},
	},
	{
		Name: "high protein day",
		Meals: []TemplateMeal{
			{Slot: SlotBreakfast, Lines: []TemplateLine{
				{Food: "egg whites", Category: CategoryProteins, PortionGrams: 150},
				{Food: "white bread", Category: CategoryGrains, PortionGrams: 50},
			}},
			{Slot: SlotLunch, Lines: []TemplateLine{
				{Food: "grilled chicken breast", Category: CategoryProteins, PortionGrams: 150},
				{Food: "white rice", Category: CategoryGrains, PortionGrams: 100},
				{Food: "bell pepper", Category: CategoryVegetables, PortionGrams: 50},
			}},
			{Slot: SlotDinner, Lines: []TemplateLine{
				{Food: "fresh beef", Category: CategoryProteins, PortionGrams: 100},
				{Food: "cabbage", Category: CategoryVegetables, PortionGrams: 50},
			}},
		},
	},
}

// Templates returns all meal plan templates in display order.
func Templates() []MealTemplate {
	out := make([]MealTemplate, len(templates))
	copy(out, templates)
	return out
}

// FindTemplate looks up a template by name.
func FindTemplate(name string) (MealTemplate, bool) {
	for _, t := range templates {
		if t.Name == name {
			return t, true
		}
	}
	return MealTemplate{}, false
}
