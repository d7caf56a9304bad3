package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// TrackingService handles day-keyed weight and water logs.
type TrackingService struct {
	db *gorm.DB
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{db: db}
}

// UpsertWeight records a weigh-in for the day (one per day, later
// entries overwrite) and keeps the user's current weight in sync.
func (s *TrackingService) UpsertWeight(userID uint, date time.Time, weightKg float64) (*models.WeightLog, error) {
	day := dayStart(date)

	log := models.WeightLog{UserID: userID, Date: day, WeightKg: weightKg}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(models.WeightLog{WeightKg: weightKg}).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("weight_kg", weightKg).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *TrackingService) WeightHistory(userID uint, from, to time.Time) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

// AddWater accumulates water intake into the day's row.
func (s *TrackingService) AddWater(userID uint, date time.Time, volumeMl float64) (*models.WaterLog, error) {
	day := dayStart(date)

	var log models.WaterLog
	err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log = models.WaterLog{UserID: userID, Date: day, VolumeMl: volumeMl}
		if err := s.db.Create(&log).Error; err != nil {
			return nil, err
		}
		return &log, nil
	}
	if err != nil {
		return nil, err
	}

	log.VolumeMl += volumeMl
	if err := s.db.Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *TrackingService) WaterByDate(userID uint, date time.Time) (float64, error) {
	var log models.WaterLog
	err := s.db.Where("user_id = ? AND date = ?", userID, dayStart(date)).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return log.VolumeMl, nil
}
