package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// GoalService manages daily targets and computes today's progress
// against them from the diary and water logs.
type GoalService struct {
	db       *gorm.DB
	diary    *DiaryService
	tracking *TrackingService
}

func NewGoalService(db *gorm.DB, diary *DiaryService, tracking *TrackingService) *GoalService {
	return &GoalService{db: db, diary: diary, tracking: tracking}
}

func (s *GoalService) GetGoal(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyGoal{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) UpsertGoal(userID uint, calories, protein, carbs, fat, waterMl, targetWeightKg float64) error {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:         userID,
			Calories:       calories,
			Protein:        protein,
			Carbs:          carbs,
			Fat:            fat,
			WaterMl:        waterMl,
			TargetWeightKg: targetWeightKg,
		}
		return s.db.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	goal.WaterMl = waterMl
	goal.TargetWeightKg = targetWeightKg
	return s.db.Save(&goal).Error
}

// GoalsAndProgress returns the goal alongside consumed/goal/percent for
// each tracked metric on the given day. Percent is capped at 1.
func (s *GoalService) GoalsAndProgress(userID uint, date time.Time) (*models.DailyGoal, map[string]any, error) {
	goal, err := s.GetGoal(userID)
	if err != nil {
		return nil, nil, err
	}

	totals, err := s.diary.DailyTotals(userID, date)
	if err != nil {
		return goal, nil, err
	}
	water, err := s.tracking.WaterByDate(userID, date)
	if err != nil {
		return goal, nil, err
	}

	capped := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	progress := map[string]any{
		"calories": map[string]float64{"consumed": totals.Calories, "goal": goal.Calories, "percent": capped(totals.Calories, goal.Calories)},
		"protein":  map[string]float64{"consumed": totals.Protein, "goal": goal.Protein, "percent": capped(totals.Protein, goal.Protein)},
		"carbs":    map[string]float64{"consumed": totals.Carbs, "goal": goal.Carbs, "percent": capped(totals.Carbs, goal.Carbs)},
		"fat":      map[string]float64{"consumed": totals.Fat, "goal": goal.Fat, "percent": capped(totals.Fat, goal.Fat)},
		"water":    map[string]float64{"consumed": water, "goal": goal.WaterMl, "percent": capped(water, goal.WaterMl)},
	}

	return goal, progress, nil
}
