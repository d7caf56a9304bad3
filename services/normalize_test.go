package services

import (
	"errors"
	"math"
	"testing"

	"backend/models"
)

func TestNormalizeFoodItems(t *testing.T) {
	t.Run("non-array rejected", func(t *testing.T) {
		_, err := NormalizeFoodItems(map[string]any{"name": "rice"})
		var valErr *ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})

	t.Run("empty array rejected", func(t *testing.T) {
		_, err := NormalizeFoodItems([]any{})
		var valErr *ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})

	t.Run("well-formed item passes through", func(t *testing.T) {
		items, err := NormalizeFoodItems([]any{
			map[string]any{
				"name":     "grilled chicken breast",
				"weight_g": 147.0,
				"category": "lunch",
				"state":    "grilled",
				"nutrition": map[string]any{
					"calories": 242.0,
					"protein":  45.0,
					"carbs":    0.0,
					"fat":      5.0,
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := items[0]
		if got.Name != "grilled chicken breast" || got.WeightG != 147 {
			t.Errorf("item not preserved: %+v", got)
		}
		if got.Nutrition.Protein != 45 {
			t.Errorf("nutrition not preserved: %+v", got.Nutrition)
		}
	})

	t.Run("malformed fields fall back to defaults", func(t *testing.T) {
		items, err := NormalizeFoodItems([]any{
			map[string]any{
				"name":     "",
				"weight_g": "a lot",
				"category": "midnight snack",
				"nutrition": map[string]any{
					"calories": -10.0,
					"protein":  math.NaN(),
					"carbs":    math.Inf(1),
					"fat":      3.5,
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := items[0]
		if got.Name != "Unknown Food" {
			t.Errorf("name = %q, want Unknown Food", got.Name)
		}
		if got.WeightG != 100 {
			t.Errorf("weight = %v, want 100", got.WeightG)
		}
		if got.Category != models.CategoryUncategorized {
			t.Errorf("category = %q, want uncategorized", got.Category)
		}
		if got.Nutrition.Calories != 0 || got.Nutrition.Protein != 0 || got.Nutrition.Carbs != 0 {
			t.Errorf("bad numbers should zero out: %+v", got.Nutrition)
		}
		if got.Nutrition.Fat != 3.5 {
			t.Errorf("fat = %v, want 3.5", got.Nutrition.Fat)
		}
	})

	t.Run("non-object entries become all defaults", func(t *testing.T) {
		items, err := NormalizeFoodItems([]any{"just a string"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].Name != "Unknown Food" || items[0].WeightG != 100 {
			t.Errorf("defaults not applied: %+v", items[0])
		}
	})
}

func TestRescaleFoodItem(t *testing.T) {
	base := models.FoodItem{
		Name:    "oatmeal",
		WeightG: 200,
		Nutrition: models.Nutrition{
			Calories: 300, Protein: 10, Carbs: 54, Fat: 6,
		},
	}

	t.Run("halving the weight halves the macros", func(t *testing.T) {
		got := RescaleFoodItem(base, 100)
		if got.WeightG != 100 || got.Nutrition.Calories != 150 || got.Nutrition.Fat != 3 {
			t.Errorf("unexpected rescale: %+v", got)
		}
	})

	t.Run("round trip restores the original", func(t *testing.T) {
		got := RescaleFoodItem(RescaleFoodItem(base, 73), 200)
		const eps = 1e-9
		if math.Abs(got.Nutrition.Calories-base.Nutrition.Calories) > eps ||
			math.Abs(got.Nutrition.Protein-base.Nutrition.Protein) > eps {
			t.Errorf("round trip drifted: %+v", got.Nutrition)
		}
	})

	t.Run("zero original weight zeroes the macros", func(t *testing.T) {
		zero := base
		zero.WeightG = 0
		got := RescaleFoodItem(zero, 150)
		if got.Nutrition.Calories != 0 || got.WeightG != 150 {
			t.Errorf("unexpected: %+v", got)
		}
	})

	t.Run("negative target clamps to zero", func(t *testing.T) {
		got := RescaleFoodItem(base, -50)
		if got.WeightG != 0 || got.Nutrition.Calories != 0 {
			t.Errorf("unexpected: %+v", got)
		}
	})
}
