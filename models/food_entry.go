package models

import (
    "time"

    "gorm.io/gorm"
)

// FoodEntry is one confirmed food item in a user's diary, keyed by
// (user_id, entry_date, created_at). Duplicate submissions create
// duplicate rows on purpose; there is no upsert.
type FoodEntry struct {
    gorm.Model
    UserID    uint      `gorm:"index;not null" json:"user_id"`
    EntryDate time.Time `gorm:"index;not null" json:"entry_date"` // truncated to local midnight

    Name     string  `gorm:"not null" json:"name"`
    WeightG  float64 `json:"weight_g"`
    Calories float64 `json:"calories"`
    Protein  float64 `json:"protein"`
    Carbs    float64 `json:"carbs"`
    Fat      float64 `json:"fat"`
    Category string  `gorm:"size:20" json:"category"`
    State    string  `gorm:"size:20" json:"state"`
    PhotoURL string  `json:"photo_url,omitempty"`
}

// Item converts the stored row back to its transient form, used when a
// diary entry is re-opened for editing.
func (e *FoodEntry) Item() FoodItem {
    return FoodItem{
        Name:    e.Name,
        WeightG: e.WeightG,
        Nutrition: Nutrition{
            Calories: e.Calories,
            Protein:  e.Protein,
            Carbs:    e.Carbs,
            Fat:      e.Fat,
        },
        Category: e.Category,
        State:    e.State,
    }
}
