package service

import (
	"context"

	"github.com/renalplate/backend/internal/model"
)

// IMealLogService defines the interface for meal log persistence
type IMealLogService interface {
	Save(ctx context.Context, foods model.SelectedFoodList, totals model.NutrientTotals, date, userID string) (int64, error)
	QueryRange(ctx context.Context, userID, start, end string) ([]model.MealLog, error)
	Share(ctx context.Context, foods model.SelectedFoodList, userID string) (string, string, error)
}

// IExporter defines the interface for plan and log export rendering
type IExporter interface {
	SelectionCSV(foods model.SelectedFoodList) ([]byte, error)
	LogCSV(logs []model.MealLog) ([]byte, error)
	SelectionPDF(foods model.SelectedFoodList) ([]byte, error)
	LogPDF(logs []model.MealLog) ([]byte, error)
}
