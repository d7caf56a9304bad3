package services

import (
	"testing"
	"time"

	"backend/models"
)

func sampleItems() []models.FoodItem {
	return []models.FoodItem{
		{
			Name: "fried rice", WeightG: 280, Category: "dinner",
			Nutrition: models.Nutrition{Calories: 520, Protein: 14, Carbs: 72, Fat: 18},
		},
		{
			Name: "iced tea", WeightG: 330, Category: "dinner", State: "liquid",
			Nutrition: models.Nutrition{Calories: 90, Carbs: 22},
		},
	}
}

func TestDiarySaveAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiaryService(db)
	user := newTestUser(t, db, "diary@example.com")
	date := time.Date(2025, 6, 1, 19, 30, 0, 0, time.UTC)

	entries, err := svc.SaveEntries(user.ID, date, sampleItems(), "https://cdn.example.com/p.jpg")
	if err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("saved %d entries", len(entries))
	}
	if entries[0].PhotoURL != "https://cdn.example.com/p.jpg" {
		t.Errorf("photo url not attached: %q", entries[0].PhotoURL)
	}

	listed, err := svc.ListByDate(user.ID, date)
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed %d entries", len(listed))
	}
	// the timestamp must collapse to the day
	if !listed[0].EntryDate.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("entry date = %v", listed[0].EntryDate)
	}

	other, _ := svc.ListByDate(user.ID, date.AddDate(0, 0, 1))
	if len(other) != 0 {
		t.Errorf("next day should be empty, got %d", len(other))
	}
}

func TestDiaryDuplicateSubmissions(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiaryService(db)
	user := newTestUser(t, db, "dup@example.com")
	date := time.Now()

	if _, err := svc.SaveEntries(user.ID, date, sampleItems(), ""); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := svc.SaveEntries(user.ID, date, sampleItems(), ""); err != nil {
		t.Fatalf("second save: %v", err)
	}

	listed, _ := svc.ListByDate(user.ID, date)
	if len(listed) != 4 {
		t.Errorf("duplicates should both persist, got %d rows", len(listed))
	}
}

func TestDiaryUpdateEntry(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiaryService(db)
	user := newTestUser(t, db, "edit@example.com")

	entries, err := svc.SaveEntries(user.ID, time.Now(), sampleItems(), "")
	if err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}

	item := RescaleFoodItem(entries[0].Item(), 140)
	updated, err := svc.UpdateEntry(user.ID, entries[0].ID, item)
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if updated.WeightG != 140 || updated.Calories != 260 {
		t.Errorf("rescaled entry: weight=%v calories=%v", updated.WeightG, updated.Calories)
	}
}

func TestDiaryUserScoping(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiaryService(db)
	alice := newTestUser(t, db, "alice@example.com")
	bob := newTestUser(t, db, "bob@example.com")

	entries, err := svc.SaveEntries(alice.ID, time.Now(), sampleItems(), "")
	if err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}

	if _, err := svc.GetEntry(bob.ID, entries[0].ID); err == nil {
		t.Error("bob should not see alice's entry")
	}

	if err := svc.DeleteEntry(bob.ID, entries[0].ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if _, err := svc.GetEntry(alice.ID, entries[0].ID); err != nil {
		t.Error("bob's delete must not remove alice's entry")
	}
}

func TestDiaryDailyTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiaryService(db)
	user := newTestUser(t, db, "totals@example.com")
	date := time.Now()

	if _, err := svc.SaveEntries(user.ID, date, sampleItems(), ""); err != nil {
		t.Fatalf("SaveEntries: %v", err)
	}

	totals, err := svc.DailyTotals(user.ID, date)
	if err != nil {
		t.Fatalf("DailyTotals: %v", err)
	}
	if totals.Calories != 610 || totals.Carbs != 94 || totals.Protein != 14 {
		t.Errorf("totals: %+v", totals)
	}
}
