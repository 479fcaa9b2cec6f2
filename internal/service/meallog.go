package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/renalplate/backend/internal/model"
)

const (
	// DateLayout is the calendar-date form used in meal log rows.
	DateLayout = "2006-01-02"
	// timestampLayout is the created_at form used in shared plans.
	timestampLayout = "2006-01-02 15:04:05"
)

// Period selects the window for a log range query.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// MealLogService persists finalized selections and shared snapshots.
// Every call is its own atomic unit against the store; nothing is retried.
type MealLogService struct {
	db       *gorm.DB
	shareURL string
}

// Ensure MealLogService implements IMealLogService
var _ IMealLogService = (*MealLogService)(nil)

// NewMealLogService creates a new MealLogService instance. shareBaseURL is
// the prefix for constructed share links; the retrieval endpoint it points
// at is served externally.
func NewMealLogService(db *gorm.DB, shareBaseURL string) *MealLogService {
	return &MealLogService{
		db:       db,
		shareURL: shareBaseURL,
	}
}

// Save inserts one append-only row holding the selection snapshot and its
// totals and returns the assigned id. The totals are the caller's sums at
// save time and are not re-validated later.
func (s *MealLogService) Save(ctx context.Context, foods model.SelectedFoodList, totals model.NutrientTotals, date, userID string) (int64, error) {
	if userID == "" {
		userID = model.GuestUserID
	}
	record := model.MealLog{
		UserID:     userID,
		Date:       date,
		Foods:      foods,
		Protein:    totals.Protein,
		Potassium:  totals.Potassium,
		Phosphorus: totals.Phosphorus,
		Calories:   totals.Calories,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, fmt.Errorf("%w: saving meal log: %v", ErrPersistence, err)
	}
	return record.ID, nil
}

// QueryRange returns all rows for the user with start <= date <= end.
// Row order is store-defined; callers needing chronological order must
// re-sort.
func (s *MealLogService) QueryRange(ctx context.Context, userID, start, end string) ([]model.MealLog, error) {
	if userID == "" {
		userID = model.GuestUserID
	}
	var logs []model.MealLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("%w: querying meal logs: %v", ErrPersistence, err)
	}
	return logs, nil
}

// Share persists the selection under a fresh unique token and returns the
// token together with the constructed share URL.
func (s *MealLogService) Share(ctx context.Context, foods model.SelectedFoodList, userID string) (string, string, error) {
	if userID == "" {
		userID = model.GuestUserID
	}
	plan := model.SharedPlan{
		ID:        uuid.NewString(),
		UserID:    userID,
		Foods:     foods,
		CreatedAt: time.Now().Format(timestampLayout),
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return "", "", fmt.Errorf("%w: sharing meal plan: %v", ErrPersistence, err)
	}
	return plan.ID, fmt.Sprintf("%s/%s", s.shareURL, plan.ID), nil
}

// PeriodRange computes the inclusive date window for a period around the
// selected date. Weeks run Monday through Sunday; months span the first to
// the last day of the selected date's month.
func PeriodRange(period Period, date time.Time) (start, end string, err error) {
	switch period {
	case PeriodDaily:
		d := date.Format(DateLayout)
		return d, d, nil
	case PeriodWeekly:
		offset := (int(date.Weekday()) + 6) % 7 // days since Monday
		first := date.AddDate(0, 0, -offset)
		return first.Format(DateLayout), first.AddDate(0, 0, 6).Format(DateLayout), nil
	case PeriodMonthly:
		first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)
		return first.Format(DateLayout), last.Format(DateLayout), nil
	default:
		return "", "", fmt.Errorf("unknown period %q", period)
	}
}
