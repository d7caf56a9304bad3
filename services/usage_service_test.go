package services

import (
	"errors"
	"testing"
	"time"
)

func TestUsageServiceTrialFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewUsageService(db)
	user := newTestUser(t, db, "trial@example.com")

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if err := svc.Authorize(user.ID, now); err != nil {
			t.Fatalf("use %d denied: %v", i+1, err)
		}
		if err := svc.RecordUse(user.ID, now); err != nil {
			t.Fatalf("record use %d: %v", i+1, err)
		}
		now = now.Add(10 * time.Minute)
	}

	err := svc.Authorize(user.ID, now)
	var limitErr *UsageLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("sixth use: want UsageLimitError, got %v", err)
	}
	if limitErr.HoursUntilNextUse <= 0 {
		t.Errorf("HoursUntilNextUse = %v, want > 0", limitErr.HoursUntilNextUse)
	}

	status, err := svc.Status(user.ID, now)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.UsageCount != 5 || !status.DailyLimitReached || status.HasFreeUsesRemaining {
		t.Errorf("status: %+v", status)
	}
	if status.FirstUsageTime == nil || status.LastUsageTime == nil {
		t.Error("usage times should be set")
	}
}

func TestUsageServiceSubscribedBypass(t *testing.T) {
	db := newTestDB(t)
	svc := NewUsageService(db)
	subs := NewSubscriptionService(db)
	user := newTestUser(t, db, "subscriber@example.com")

	now := time.Now()
	for i := 0; i < 5; i++ {
		if err := svc.RecordUse(user.ID, now); err != nil {
			t.Fatalf("record use: %v", err)
		}
	}
	if err := svc.Authorize(user.ID, now); err == nil {
		t.Fatal("allowance should be spent")
	}

	end := now.Add(30 * 24 * time.Hour)
	if err := subs.Activate(user.ID, "cus_123", "sub_123", &end); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	if err := svc.Authorize(user.ID, now); err != nil {
		t.Fatalf("subscribed user denied: %v", err)
	}
	status, _ := svc.Status(user.ID, now)
	if !status.Subscribed || status.SubscriptionEnd == nil {
		t.Errorf("status after activation: %+v", status)
	}
}

func TestUsageServiceStatusForNewUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUsageService(db)
	user := newTestUser(t, db, "new@example.com")

	status, err := svc.Status(user.ID, time.Now())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.UsageCount != 0 || !status.HasFreeUsesRemaining || status.DailyLimitReached {
		t.Errorf("fresh status: %+v", status)
	}
}
