package services

import (
	"testing"
	"time"

	"backend/models"
)

func TestWeightUpsert(t *testing.T) {
	db := newTestDB(t)
	svc := NewTrackingService(db)
	user := newTestUser(t, db, "weight@example.com")
	date := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	if _, err := svc.UpsertWeight(user.ID, date, 82.4); err != nil {
		t.Fatalf("UpsertWeight: %v", err)
	}
	// same day again: overwrite, not append
	if _, err := svc.UpsertWeight(user.ID, date.Add(10*time.Hour), 82.1); err != nil {
		t.Fatalf("UpsertWeight: %v", err)
	}

	logs, err := svc.WeightHistory(user.ID, date.AddDate(0, 0, -1), date.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("WeightHistory: %v", err)
	}
	if len(logs) != 1 || logs[0].WeightKg != 82.1 {
		t.Fatalf("logs: %+v", logs)
	}

	// the profile weight follows the latest weigh-in
	var u models.User
	if err := db.First(&u, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if u.WeightKg != 82.1 {
		t.Errorf("user weight = %v, want 82.1", u.WeightKg)
	}
}

func TestWaterAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewTrackingService(db)
	user := newTestUser(t, db, "water@example.com")
	date := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	if _, err := svc.AddWater(user.ID, date, 250); err != nil {
		t.Fatalf("AddWater: %v", err)
	}
	if _, err := svc.AddWater(user.ID, date.Add(3*time.Hour), 500); err != nil {
		t.Fatalf("AddWater: %v", err)
	}

	total, err := svc.WaterByDate(user.ID, date)
	if err != nil {
		t.Fatalf("WaterByDate: %v", err)
	}
	if total != 750 {
		t.Errorf("total = %v, want 750", total)
	}

	next, _ := svc.WaterByDate(user.ID, date.AddDate(0, 0, 1))
	if next != 0 {
		t.Errorf("next day total = %v, want 0", next)
	}
}
