package service

import (
	"fmt"
	"sync"

	"github.com/renalplate/backend/internal/catalog"
	"github.com/renalplate/backend/internal/model"
)

// MaxPortionGrams is the sanity bound for manual entry. Template portions
// are fixed by the template author and not re-validated.
const MaxPortionGrams = 500

// Selection is a working meal selection. Each entry carries nutrient values
// scaled at add time, so totals are a plain sum over the entries. A
// Selection is owned by a session; requests for the same session can run
// in parallel, so every method holds the selection's lock.
type Selection struct {
	mu    sync.Mutex
	foods model.SelectedFoodList
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Add validates the portion, scales the catalog nutrients and appends an
// entry. Returns ErrInvalidPortion for portions outside (0, MaxPortionGrams]
// and ErrFoodNotFound for an unknown (name, category) pair.
func (s *Selection) Add(name, category string, grams float64) (model.SelectedFood, error) {
	if grams <= 0 || grams > MaxPortionGrams {
		return model.SelectedFood{}, fmt.Errorf("%w: %g g", ErrInvalidPortion, grams)
	}
	item, ok := catalog.Find(name, category)
	if !ok {
		return model.SelectedFood{}, fmt.Errorf("%w: %s (%s)", ErrFoodNotFound, name, category)
	}
	entry := newEntry(item, grams)
	s.mu.Lock()
	s.foods = append(s.foods, entry)
	s.mu.Unlock()
	return entry, nil
}

// LoadTemplate clears the selection and expands the named template into one
// entry per template line, slot by slot in template order.
func (s *Selection) LoadTemplate(name string) error {
	tpl, ok := catalog.FindTemplate(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	var foods model.SelectedFoodList
	for _, meal := range tpl.Meals {
		for _, line := range meal.Lines {
			item, ok := catalog.Find(line.Food, line.Category)
			if !ok {
				return fmt.Errorf("%w: %s (%s)", ErrFoodNotFound, line.Food, line.Category)
			}
			foods = append(foods, newEntry(item, line.PortionGrams))
		}
	}
	s.mu.Lock()
	s.foods = foods
	s.mu.Unlock()
	return nil
}

// Remove drops every entry matching the (name, category) pair in one pass
// and returns how many were removed. A food added twice is removed twice.
func (s *Selection) Remove(name, category string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.foods[:0]
	removed := 0
	for _, f := range s.foods {
		if f.Food == name && f.Category == category {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	s.foods = kept
	return removed
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	s.foods = nil
	s.mu.Unlock()
}

// Foods returns a snapshot of the selection in insertion order.
func (s *Selection) Foods() model.SelectedFoodList {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(model.SelectedFoodList, len(s.foods))
	copy(out, s.foods)
	return out
}

// Totals sums the scaled nutrient fields across the selection. No rounding
// happens here; one-decimal formatting is presentation only.
func (s *Selection) Totals() model.NutrientTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.foods.Totals()
}

func newEntry(item model.FoodItem, grams float64) model.SelectedFood {
	factor := grams / 100
	scaled := item.Nutrients.Scale(factor)
	return model.SelectedFood{
		Food:       item.Name,
		Category:   item.Category,
		Portion:    factor,
		Protein:    scaled.Protein,
		Potassium:  scaled.Potassium,
		Phosphorus: scaled.Phosphorus,
		Calories:   scaled.Calories,
		Tags:       item.Tags,
	}
}
