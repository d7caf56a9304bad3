package models

// Meal categories a food entry can be filed under.
const (
    CategoryBreakfast     = "breakfast"
    CategoryLunch         = "lunch"
    CategoryDinner        = "dinner"
    CategorySnacks        = "snacks"
    CategoryUncategorized = "uncategorized"
)

// Nutrition is the macro breakdown of a single food item.
// Calories in kcal, everything else in grams.
type Nutrition struct {
    Calories float64 `json:"calories"`
    Protein  float64 `json:"protein"`
    Carbs    float64 `json:"carbs"`
    Fat      float64 `json:"fat"`
}

// FoodItem is the transient unit of an analyzed meal: produced by the
// analysis pipeline, edited by the user during verification, and only
// persisted (as a FoodEntry) once confirmed.
type FoodItem struct {
    Name      string    `json:"name"`
    WeightG   float64   `json:"weight_g"`
    Nutrition Nutrition `json:"nutrition"`
    Category  string    `json:"category,omitempty"` // breakfast|lunch|dinner|snacks|uncategorized
    State     string    `json:"state,omitempty"`    // "liquid" | "solid", used in reports
}
