package catalog

import (
	"sort"
	"strings"

	"github.com/renalplate/backend/internal/model"
)

// Food categories, in display order.
const (
	CategoryProteins   = "Proteins"
	CategoryVegetables = "Low-Potassium Vegetables"
	CategoryFruits     = "Low-Potassium Fruits"
	CategoryGrains     = "Carbohydrates & Grains"
	CategoryFlavor     = "Flavor Enhancers"
)

// Dietary tags used across the catalog.
const (
	TagHighProtein   = "high-protein"
	TagLowPotassium  = "low-potassium"
	TagLowPhosphorus = "low-phosphorus"
	TagLowSodium     = "low-sodium"
)

var categories = []string{
	CategoryProteins,
	CategoryVegetables,
	CategoryFruits,
	CategoryGrains,
	CategoryFlavor,
}

// foods is the static reference table. Nutrient values are per 100 g.
// (Name, Category) is unique; the same name may appear under two categories,
// as "onion" does.
var foods = map[string][]model.FoodItem{
	CategoryProteins: {
		{Name: "grilled chicken breast", Category: CategoryProteins, Tags: []string{TagHighProtein, TagLowPhosphorus}, Nutrients: model.NutrientValues{Protein: 31, Potassium: 220, Phosphorus: 210, Calories: 165}},
		{Name: "egg whites", Category: CategoryProteins, Tags: []string{TagHighProtein, TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 3.6, Potassium: 54, Phosphorus: 15, Calories: 17}},
		{Name: "canned tuna", Category: CategoryProteins, Tags: []string{TagHighProtein}, Nutrients: model.NutrientValues{Protein: 26, Potassium: 200, Phosphorus: 180, Calories: 120}},
		{Name: "sardines", Category: CategoryProteins, Tags: []string{TagHighProtein}, Nutrients: model.NutrientValues{Protein: 25, Potassium: 397, Phosphorus: 490, Calories: 208}},
		{Name: "fresh beef", Category: CategoryProteins, Tags: []string{TagHighProtein}, Nutrients: model.NutrientValues{Protein: 26, Potassium: 318, Phosphorus: 200, Calories: 250}},
		{Name: "fresh fish", Category: CategoryProteins, Tags: []string{TagHighProtein}, Nutrients: model.NutrientValues{Protein: 22, Potassium: 350, Phosphorus: 250, Calories: 140}},
	},
	CategoryVegetables: {
		{Name: "lettuce", Category: CategoryVegetables, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 1.4, Potassium: 194, Phosphorus: 20, Calories: 15}},
		{Name: "cucumber", Category: CategoryVegetables, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 0.7, Potassium: 147, Phosphorus: 24, Calories: 16}},
		{Name: "onion", Category: CategoryVegetables, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 1.1, Potassium: 146, Phosphorus: 29, Calories: 40}},
		{Name: "eggplant", Category: CategoryVegetables, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 1, Potassium: 229, Phosphorus: 24, Calories: 25}},
		{Name: "bell pepper", Category: CategoryVegetables, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 1, Potassium: 211, Phosphorus: 26, Calories: 31}},
		{Name: "cauliflower", Category: CategoryVegetables, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 1.9, Potassium: 299, Phosphorus: 44, Calories: 25}},
		{Name: "cabbage", Category: CategoryVegetables, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 1.3, Potassium: 170, Phosphorus: 26, Calories: 25}},
		{Name: "celery", Category: CategoryVegetables, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 0.7, Potassium: 260, Phosphorus: 24, Calories: 16}},
	},
	CategoryFruits: {
		{Name: "apple", Category: CategoryFruits, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 0.3, Potassium: 107, Phosphorus: 11, Calories: 52}},
		{Name: "berries", Category: CategoryFruits, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 1.4, Potassium: 77, Phosphorus: 22, Calories: 57}},
		{Name: "grapes", Category: CategoryFruits, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 0.7, Potassium: 191, Phosphorus: 20, Calories: 69}},
		{Name: "pineapple", Category: CategoryFruits, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 0.5, Potassium: 109, Phosphorus: 8, Calories: 50}},
		{Name: "plums", Category: CategoryFruits, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 0.7, Potassium: 157, Phosphorus: 16, Calories: 46}},
		{Name: "cantaloupe", Category: CategoryFruits, Tags: []string{TagLowPotassium}, Nutrients: model.NutrientValues{Protein: 0.8, Potassium: 267, Phosphorus: 15, Calories: 34}},
	},
	CategoryGrains: {
		{Name: "white bread", Category: CategoryGrains, Tags: []string{TagLowPhosphorus}, Nutrients: model.NutrientValues{Protein: 3.2, Potassium: 115, Phosphorus: 99, Calories: 77}},
		{Name: "white rice", Category: CategoryGrains, Tags: []string{TagLowPhosphorus}, Nutrients: model.NutrientValues{Protein: 2.7, Potassium: 35, Phosphorus: 43, Calories: 130}},
		{Name: "pasta", Category: CategoryGrains, Tags: []string{TagLowPhosphorus}, Nutrients: model.NutrientValues{Protein: 5, Potassium: 44, Phosphorus: 58, Calories: 131}},
		{Name: "corn crackers", Category: CategoryGrains, Tags: []string{TagLowPhosphorus}, Nutrients: model.NutrientValues{Protein: 1, Potassium: 36, Phosphorus: 30, Calories: 110}},
		{Name: "unsalted tortilla chips", Category: CategoryGrains, Tags: []string{TagLowSodium}, Nutrients: model.NutrientValues{Protein: 2, Potassium: 100, Phosphorus: 140, Calories: 140}},
	},
	CategoryFlavor: {
		{Name: "lemon", Category: CategoryFlavor, Tags: []string{TagLowSodium}, Nutrients: model.NutrientValues{Protein: 1.1, Potassium: 138, Phosphorus: 16, Calories: 29}},
		{Name: "garlic", Category: CategoryFlavor, Tags: []string{TagLowSodium}, Nutrients: model.NutrientValues{Protein: 6.4, Potassium: 401, Phosphorus: 153, Calories: 149}},
		{Name: "onion", Category: CategoryFlavor, Tags: []string{TagLowSodium}, Nutrients: model.NutrientValues{Protein: 1.1, Potassium: 146, Phosphorus: 29, Calories: 40}},
		{Name: "cilantro", Category: CategoryFlavor, Tags: []string{TagLowSodium}, Nutrients: model.NutrientValues{Protein: 2.1, Potassium: 521, Phosphorus: 48, Calories: 23}},
		{Name: "dill", Category: CategoryFlavor, Tags: []string{TagLowSodium}, Nutrients: model.NutrientValues{Protein: 3.5, Potassium: 738, Phosphorus: 66, Calories: 43}},
		{Name: "thyme", Category: CategoryFlavor, Tags: []string{TagLowSodium}, Nutrients: model.NutrientValues{Protein: 5.6, Potassium: 609, Phosphorus: 106, Calories: 101}},
		{Name: "rosemary", Category: CategoryFlavor, Tags: []string{TagLowSodium}, Nutrients: model.NutrientValues{Protein: 3.3, Potassium: 668, Phosphorus: 66, Calories: 131}},
	},
}

// Categories returns the catalog categories in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Items returns the catalog entries for a category, in catalog order.
func Items(category string) []model.FoodItem {
	items := foods[category]
	out := make([]model.FoodItem, len(items))
	copy(out, items)
	return out
}

// Find looks up a catalog entry by its (name, category) pair.
func Find(name, category string) (model.FoodItem, bool) {
	for _, item := range foods[category] {
		if item.Name == name {
			return item, true
		}
	}
	return model.FoodItem{}, false
}

// Filter returns catalog entries matching every given tag and, if query is
// non-empty, containing it as a case-insensitive substring of the name.
// Results follow category display order then catalog order.
func Filter(tags []string, query string) []model.FoodItem {
	query = strings.ToLower(query)
	var out []model.FoodItem
	for _, category := range categories {
		for _, item := range foods[category] {
			if !hasAllTags(item.Tags, tags) {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
				continue
			}
			out = append(out, item)
		}
	}
	return out
}

// AllTags returns the sorted set of tags present in the catalog.
func AllTags() []string {
	seen := make(map[string]bool)
	var out []string
	for _, items := range foods {
		for _, item := range items {
			for _, tag := range item.Tags {
				if !seen[tag] {
					seen[tag] = true
					out = append(out, tag)
				}
			}
		}
	}
	sort.Strings(out)
	return out
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
