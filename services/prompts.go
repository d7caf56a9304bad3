package services

import (
	"fmt"
	"strings"
)

// Prompts for the analysis pipeline. The system prompts pin the exact
// JSON shape because the parser downstream only knows how to cut a
// single JSON span out of the response.

const imageAnalysisSystemPrompt = `You are a nutrition expert analyzing food photos.

Identify every distinct food item visible and estimate its weight and nutrition.

IMPORTANT: Respond ONLY with a valid JSON array in this exact format:
[
  {
    "name": "specific food name",
    "weight_g": [number],
    "nutrition": {
      "calories": [number],
      "protein": [number],
      "carbs": [number],
      "fat": [number]
    }
  }
]

Rules:
- Food names must be specific, not generic ("Grilled Ribeye Steak", not "steak"), and include the cooking method where visible.
- Weights must be realistic estimates in grams. Avoid round numbers: do not use multiples of 5 or 10.
- Nutrition values are whole numbers. Calories in kcal, protein/carbs/fat in grams.
- No text outside the JSON array.`

const textExtractionSystemPrompt = `You are a nutrition assistant. Extract every food item from the user's meal description.

Respond ONLY with a valid JSON array, no other text:
[{"name": "food name", "weight_g": [number]}]

Rules:
- Convert household measures to grams ("a cup of rice" is about 195 g cooked).
- Weights must be realistic estimates in grams. Avoid round numbers: do not use multiples of 5 or 10.
- Keep the user's wording for the food name, including the cooking method if mentioned.`

const nutritionLookupSystemPrompt = `You are a nutrition database. Given a food and its weight, return its macro breakdown.

Respond ONLY with a valid JSON object, no other text:
{"calories": [number], "protein": [number], "carbs": [number], "fat": [number]}

Calories in kcal, the rest in grams, all whole numbers, for the exact weight given.`

func nutritionLookupPrompt(name string, weightG float64) string {
	return fmt.Sprintf("Nutrition for %.0f g of %q.", weightG, name)
}

// coachSystemPrompt assembles the nutrition coach persona from what we
// know about the user and what they ate today.
func coachSystemPrompt(profile CoachProfile) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly, practical nutrition coach. Keep answers short and actionable.\n\n")

	sb.WriteString("About the user:\n")
	if profile.FullName != "" {
		sb.WriteString(fmt.Sprintf("- Name: %s\n", profile.FullName))
	}
	if profile.HeightCm > 0 && profile.WeightKg > 0 {
		sb.WriteString(fmt.Sprintf("- Height %.0f cm, weight %.1f kg\n", profile.HeightCm, profile.WeightKg))
	}
	if profile.TargetWeightKg > 0 {
		sb.WriteString(fmt.Sprintf("- Target weight: %.1f kg\n", profile.TargetWeightKg))
	}
	if profile.FitnessGoal != "" {
		sb.WriteString(fmt.Sprintf("- Goal: %s\n", profile.FitnessGoal))
	}
	if profile.CalorieGoal > 0 {
		sb.WriteString(fmt.Sprintf("- Daily targets: %.0f kcal, %.0f g protein, %.0f g carbs, %.0f g fat\n",
			profile.CalorieGoal, profile.ProteinGoal, profile.CarbsGoal, profile.FatGoal))
	}

	sb.WriteString("\nToday's diary:\n")
	if len(profile.TodayEntries) == 0 {
		sb.WriteString("- (nothing logged yet)\n")
	} else {
		for _, e := range profile.TodayEntries {
			sb.WriteString(fmt.Sprintf("- %s: %.0f g, %.0f kcal, %.0f g protein\n",
				e.Name, e.WeightG, e.Calories, e.Protein))
		}
	}

	sb.WriteString("\nGround advice in the diary and targets above. Never prescribe medication or diagnose.")
	return sb.String()
}
