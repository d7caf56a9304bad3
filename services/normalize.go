package services

import (
	"math"

	"backend/models"
)

const (
	defaultFoodName = "Unknown Food"
	defaultWeightG  = 100.0
)

// NormalizeFoodItems coerces the duck-typed JSON the gateway returns
// into a list of well-formed FoodItems. The whole payload must be a
// non-empty array; individual items never fail, a malformed field just
// falls back to its default. One garbled field from a noisy model must
// not throw away an otherwise usable item.
func NormalizeFoodItems(candidate any) ([]models.FoodItem, error) {
	arr, ok := candidate.([]any)
	if !ok {
		return nil, &ValidationError{Reason: "expected an array of food items"}
	}
	if len(arr) == 0 {
		return nil, &ValidationError{Reason: "empty food item list"}
	}

	items := make([]models.FoodItem, 0, len(arr))
	for _, raw := range arr {
		items = append(items, normalizeFoodItem(raw))
	}
	return items, nil
}

func normalizeFoodItem(raw any) models.FoodItem {
	item := models.FoodItem{
		Name:     defaultFoodName,
		WeightG:  defaultWeightG,
		Category: models.CategoryUncategorized,
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return item
	}

	if name, ok := obj["name"].(string); ok && name != "" {
		item.Name = name
	}
	if w, ok := numberField(obj, "weight_g"); ok && w >= 0 {
		item.WeightG = w
	}
	if cat, ok := obj["category"].(string); ok && validCategory(cat) {
		item.Category = cat
	}
	if state, ok := obj["state"].(string); ok {
		item.State = state
	}

	if nut, ok := obj["nutrition"].(map[string]any); ok {
		item.Nutrition = normalizeNutrition(nut)
	}
	return item
}

func normalizeNutrition(obj map[string]any) models.Nutrition {
	var n models.Nutrition
	if v, ok := numberField(obj, "calories"); ok && v >= 0 {
		n.Calories = v
	}
	if v, ok := numberField(obj, "protein"); ok && v >= 0 {
		n.Protein = v
	}
	if v, ok := numberField(obj, "carbs"); ok && v >= 0 {
		n.Carbs = v
	}
	if v, ok := numberField(obj, "fat"); ok && v >= 0 {
		n.Fat = v
	}
	return n
}

// numberField reads a numeric field, rejecting NaN and infinities so
// every normalized value is finite.
func numberField(obj map[string]any, key string) (float64, bool) {
	v, ok := obj[key].(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func validCategory(cat string) bool {
	switch cat {
	case models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner,
		models.CategorySnacks, models.CategoryUncategorized:
		return true
	}
	return false
}

// RescaleFoodItem adjusts an item for a weight edit during
// verification, scaling all four nutrition fields by
// newWeight/originalWeight. A zero original weight gives ratio 0 (the
// nutrition can't be inferred from nothing). Scaling w0->w1->w0
// restores the original values modulo float rounding.
func RescaleFoodItem(item models.FoodItem, newWeightG float64) models.FoodItem {
	if newWeightG < 0 {
		newWeightG = 0
	}
	var ratio float64
	if item.WeightG > 0 {
		ratio = newWeightG / item.WeightG
	}

	item.Nutrition.Calories *= ratio
	item.Nutrition.Protein *= ratio
	item.Nutrition.Carbs *= ratio
	item.Nutrition.Fat *= ratio
	item.WeightG = newWeightG
	return item
}
