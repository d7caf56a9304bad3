package services

import (
    "errors"
    "time"

    "backend/config"
    "backend/models"
)

type ProfileInput struct {
    FullName       string  `json:"full_name"`
    Birthday       string  `json:"birthday"` // YYYY-MM-DD
    Gender         string  `json:"gender"`
    HeightCm       float64 `json:"height_cm"`
    WeightKg       float64 `json:"weight_kg"`
    TargetWeightKg float64 `json:"target_weight_kg"`
    ActivityLevel  string  `json:"activity_level"`
    FitnessGoal    string  `json:"fitness_goal"`
}

func GetUserProfile(email string) (map[string]any, error) {
    var user models.User
    if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
        return nil, errors.New("user not found")
    }

    birthday := ""
    if !user.Birthday.IsZero() {
        birthday = user.Birthday.Format("2006-01-02")
    }

    return map[string]any{
        "id":               user.ID,
        "email":            user.Email,
        "full_name":        user.FullName,
        "birthday":         birthday,
        "gender":           user.Gender,
        "height_cm":        user.HeightCm,
        "weight_kg":        user.WeightKg,
        "target_weight_kg": user.TargetWeightKg,
        "activity_level":   user.ActivityLevel,
        "fitness_goal":     user.FitnessGoal,
    }, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
    var user models.User
    if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
        return errors.New("user not found")
    }

    if input.FullName != "" {
        user.FullName = input.FullName
    }
    if input.Birthday != "" {
        if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
            user.Birthday = birthday
        }
    }
    if input.Gender != "" {
        user.Gender = input.Gender
    }
    if input.HeightCm > 0 {
        user.HeightCm = input.HeightCm
    }
    if input.WeightKg > 0 {
        user.WeightKg = input.WeightKg
    }
    if input.TargetWeightKg > 0 {
        user.TargetWeightKg = input.TargetWeightKg
    }
    if input.ActivityLevel != "" {
        user.ActivityLevel = input.ActivityLevel
    }
    if input.FitnessGoal != "" {
        user.FitnessGoal = input.FitnessGoal
    }

    return config.DB.Save(&user).Error
}
