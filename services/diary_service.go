package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// DiaryService is the persistence adapter for confirmed food items.
// Rows are keyed (user_id, entry_date, created_at); submitting the same
// items twice creates duplicate rows on purpose.
type DiaryService struct {
	db *gorm.DB
}

func NewDiaryService(db *gorm.DB) *DiaryService {
	return &DiaryService{db: db}
}

// SaveEntries writes one diary row per confirmed food item. Any write
// failure surfaces as *PersistenceError so the caller can tell the user
// the analysis worked but saving did not.
func (s *DiaryService) SaveEntries(userID uint, date time.Time, items []models.FoodItem, photoURL string) ([]models.FoodEntry, error) {
	day := dayStart(date)
	entries := make([]models.FoodEntry, 0, len(items))
	for _, it := range items {
		category := it.Category
		if category == "" {
			category = models.CategoryUncategorized
		}
		entries = append(entries, models.FoodEntry{
			UserID:    userID,
			EntryDate: day,
			Name:      it.Name,
			WeightG:   it.WeightG,
			Calories:  it.Nutrition.Calories,
			Protein:   it.Nutrition.Protein,
			Carbs:     it.Nutrition.Carbs,
			Fat:       it.Nutrition.Fat,
			Category:  category,
			State:     it.State,
			PhotoURL:  photoURL,
		})
	}

	if err := s.db.Create(&entries).Error; err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return entries, nil
}

func (s *DiaryService) ListByDate(userID uint, date time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND entry_date = ?", userID, dayStart(date)).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *DiaryService) ListByRange(userID uint, from, to time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND entry_date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("entry_date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *DiaryService) GetEntry(userID, entryID uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry overwrites an entry with an edited item. Name edits go
// through the orchestrator's nutrition re-query before landing here;
// weight edits go through RescaleFoodItem.
func (s *DiaryService) UpdateEntry(userID, entryID uint, item models.FoodItem) (*models.FoodEntry, error) {
	entry, err := s.GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Name = item.Name
	entry.WeightG = item.WeightG
	entry.Calories = item.Nutrition.Calories
	entry.Protein = item.Nutrition.Protein
	entry.Carbs = item.Nutrition.Carbs
	entry.Fat = item.Nutrition.Fat
	if item.Category != "" {
		entry.Category = item.Category
	}
	entry.State = item.State

	if err := s.db.Save(entry).Error; err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return entry, nil
}

func (s *DiaryService) DeleteEntry(userID, entryID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.FoodEntry{}).Error
}

// DailyTotals sums the day's macros across all entries.
func (s *DiaryService) DailyTotals(userID uint, date time.Time) (models.Nutrition, error) {
	entries, err := s.ListByDate(userID, date)
	if err != nil {
		return models.Nutrition{}, err
	}
	var total models.Nutrition
	for _, e := range entries {
		total.Calories += e.Calories
		total.Protein += e.Protein
		total.Carbs += e.Carbs
		total.Fat += e.Fat
	}
	return total, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
