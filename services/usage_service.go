package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// UsageService persists one UsageRecord per user and wraps the pure
// gate transitions around it. Every path fails closed: a storage error
// blocks the analysis, it never falls through to "allowed".
type UsageService struct {
	db *gorm.DB
}

func NewUsageService(db *gorm.DB) *UsageService {
	return &UsageService{db: db}
}

// UsageStatus is the wire shape of the usage check endpoint.
type UsageStatus struct {
	Subscribed           bool       `json:"subscribed"`
	UsageCount           int        `json:"usage_count"`
	DailyLimitReached    bool       `json:"daily_limit_reached"`
	HasFreeUsesRemaining bool       `json:"has_free_uses_remaining"`
	SubscriptionEnd      *time.Time `json:"subscription_end"`
	FirstUsageTime       *time.Time `json:"first_usage_time"`
	LastUsageTime        *time.Time `json:"last_usage_time"`
	HoursUntilNextUse    float64    `json:"hours_until_next_use"`
}

func (s *UsageService) record(userID uint) (*models.UsageRecord, error) {
	var rec models.UsageRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.UsageRecord{UserID: userID}
		if err := s.db.Create(&rec).Error; err != nil {
			return nil, fmt.Errorf("create usage record: %w", err)
		}
		return &rec, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load usage record: %w", err)
	}
	return &rec, nil
}

func gateState(rec *models.UsageRecord) UsageState {
	return UsageState{
		UsageCount:     rec.UsageCount,
		FirstUsageTime: rec.FirstUsageTime,
		LastUsageTime:  rec.LastUsageTime,
		Subscribed:     rec.Subscribed,
	}
}

// Status reports the full gate state for the authenticated user.
func (s *UsageService) Status(userID uint, now time.Time) (*UsageStatus, error) {
	rec, err := s.record(userID)
	if err != nil {
		return nil, err
	}
	decision := EvaluateUsage(gateState(rec), now)
	return &UsageStatus{
		Subscribed:           rec.Subscribed,
		UsageCount:           rec.UsageCount,
		DailyLimitReached:    !decision.Allowed,
		HasFreeUsesRemaining: decision.Allowed,
		SubscriptionEnd:      rec.SubscriptionEnd,
		FirstUsageTime:       rec.FirstUsageTime,
		LastUsageTime:        rec.LastUsageTime,
		HoursUntilNextUse:    decision.HoursUntilNextUse,
	}, nil
}

// Authorize returns nil when one more analysis is allowed right now.
// Denials come back as *UsageLimitError carrying the wait time; storage
// failures come back as plain errors, which callers treat as a denial.
func (s *UsageService) Authorize(userID uint, now time.Time) error {
	rec, err := s.record(userID)
	if err != nil {
		return err
	}
	decision := EvaluateUsage(gateState(rec), now)
	if !decision.Allowed {
		return &UsageLimitError{
			Reason:            "free analysis limit reached",
			HoursUntilNextUse: decision.HoursUntilNextUse,
		}
	}
	return nil
}

// RecordUse applies one successful analysis to the stored counters.
// Read-modify-write on the single row per user; two devices racing here
// resolve last-writer-wins, same as the backing store always has.
func (s *UsageService) RecordUse(userID uint, now time.Time) error {
	rec, err := s.record(userID)
	if err != nil {
		return err
	}
	next := ApplyUsage(gateState(rec), now)
	rec.UsageCount = next.UsageCount
	rec.FirstUsageTime = next.FirstUsageTime
	rec.LastUsageTime = next.LastUsageTime
	if err := s.db.Save(rec).Error; err != nil {
		return fmt.Errorf("save usage record: %w", err)
	}

	// this use consumed the last free slot: tell the user once, now,
	// instead of on their next (denied) attempt
	if decision := EvaluateUsage(next, now); !decision.Allowed {
		EmitAlert(userID, models.AlertUsageLimit,
			fmt.Sprintf("Free analyses used up. Next one in %.1f hours, or go unlimited with a subscription.",
				decision.HoursUntilNextUse))
	}
	return nil
}
