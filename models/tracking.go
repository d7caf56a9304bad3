package models

import (
    "time"

    "gorm.io/gorm"
)

// WeightLog holds one weigh-in per user per day.
type WeightLog struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null" json:"user_id"`
    Date     time.Time `gorm:"index;not null" json:"date"` // truncate to local midnight
    WeightKg float64   `json:"weight_kg"`
}

// WaterLog accumulates water intake per user per day, in milliliters.
type WaterLog struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null" json:"user_id"`
    Date     time.Time `gorm:"index;not null" json:"date"`
    VolumeMl float64   `json:"volume_ml"`
}
