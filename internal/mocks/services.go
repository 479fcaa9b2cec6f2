package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/renalplate/backend/internal/model"
)

// MockMealLogService is a mock implementation of the meal log service
type MockMealLogService struct {
	mock.Mock
}

// Save mocks the Save method
func (m *MockMealLogService) Save(ctx context.Context, foods model.SelectedFoodList, totals model.NutrientTotals, date, userID string) (int64, error) {
	args := m.Called(ctx, foods, totals, date, userID)
	return args.Get(0).(int64), args.Error(1)
}

// QueryRange mocks the QueryRange method
func (m *MockMealLogService) QueryRange(ctx context.Context, userID, start, end string) ([]model.MealLog, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MealLog), args.Error(1)
}

// Share mocks the Share method
func (m *MockMealLogService) Share(ctx context.Context, foods model.SelectedFoodList, userID string) (string, string, error) {
	args := m.Called(ctx, foods, userID)
	return args.String(0), args.String(1), args.Error(2)
}

// MockExporter is a mock implementation of the export formatter
type MockExporter struct {
	mock.Mock
}

// SelectionCSV mocks the SelectionCSV method
func (m *MockExporter) SelectionCSV(foods model.SelectedFoodList) ([]byte, error) {
	args := m.Called(foods)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// LogCSV mocks the LogCSV method
func (m *MockExporter) LogCSV(logs []model.MealLog) ([]byte, error) {
	args := m.Called(logs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// SelectionPDF mocks the SelectionPDF method
func (m *MockExporter) SelectionPDF(foods model.SelectedFoodList) ([]byte, error) {
	args := m.Called(foods)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// LogPDF mocks the LogPDF method
func (m *MockExporter) LogPDF(logs []model.MealLog) ([]byte, error) {
	args := m.Called(logs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
