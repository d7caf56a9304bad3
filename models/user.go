package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email          string `gorm:"uniqueIndex;not null"`
    Password       string `gorm:"not null"`
    FullName       string
    Birthday       time.Time
    Gender         string
    HeightCm       float64
    WeightKg       float64 // most recent known weight
    TargetWeightKg float64
    ActivityLevel  string // "sedentary" | "light" | "moderate" | "active"
    FitnessGoal    string // e.g. "lose weight", "build muscle"
    ResetToken     string
    ResetTokenExp  time.Time
}
