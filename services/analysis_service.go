package services

import (
	"context"
	"encoding/json"
	"strings"

	"backend/models"
)

// Low temperature biases the model toward deterministic structured
// output instead of creative prose.
const analysisTemperature = 0.3

// Completer is the slice of GatewayService the orchestrator needs.
type Completer interface {
	Complete(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error)
}

// AnalysisService turns a meal photo or description into normalized
// food items: prompt -> gateway -> JSON extraction -> normalization.
type AnalysisService struct {
	gateway  Completer
	precheck *PrecheckService // nil disables the Rekognition food pre-check
}

func NewAnalysisService(gateway Completer, precheck *PrecheckService) *AnalysisService {
	return &AnalysisService{gateway: gateway, precheck: precheck}
}

// AnalysisResult is what the verification step works with. FailedItems
// names items whose nutrition lookup failed even after one retry; their
// siblings are unaffected.
type AnalysisResult struct {
	Items       []models.FoodItem `json:"items"`
	FailedItems []string          `json:"failed_items,omitempty"`
}

// AnalyzeImage runs the single-call image flow: one vision request with
// the full JSON shape pinned in the system prompt.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, imageBase64 string) ([]models.FoodItem, error) {
	dataURL := imageBase64
	if !strings.HasPrefix(dataURL, "data:") {
		dataURL = "data:image/jpeg;base64," + dataURL
	}

	if s.precheck != nil {
		if err := s.precheck.EnsureFood(ctx, dataURL); err != nil {
			return nil, err
		}
	}

	raw, err := s.gateway.Complete(ctx, []Message{
		TextMessage("system", imageAnalysisSystemPrompt),
		ImageMessage("Analyze this meal photo.", dataURL),
	}, analysisTemperature, 1500)
	if err != nil {
		return nil, err
	}

	return s.parseFoodItems(raw)
}

// AnalyzeText runs the two-call text flow: first extract bare
// {name, weight_g} pairs, then look up nutrition for each item. Lookups
// run sequentially and merge back by item index, never by arrival
// order. A failed lookup is retried once; if it fails again the item is
// dropped and reported in FailedItems.
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string) (*AnalysisResult, error) {
	raw, err := s.gateway.Complete(ctx, []Message{
		TextMessage("system", textExtractionSystemPrompt),
		TextMessage("user", text),
	}, analysisTemperature, 600)
	if err != nil {
		return nil, err
	}

	extracted, err := s.parseFoodItems(raw)
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{Items: make([]models.FoodItem, 0, len(extracted))}
	for _, item := range extracted {
		nut, err := s.LookupNutrition(ctx, item.Name, item.WeightG)
		if err != nil {
			nut, err = s.LookupNutrition(ctx, item.Name, item.WeightG)
		}
		if err != nil {
			result.FailedItems = append(result.FailedItems, item.Name)
			continue
		}
		item.Nutrition = nut
		result.Items = append(result.Items, item)
	}

	if len(result.Items) == 0 {
		return nil, &ValidationError{Reason: "no food item survived nutrition lookup"}
	}
	return result, nil
}

// LookupNutrition asks the gateway for the macro breakdown of one named
// food at one weight. Also used on its own when the user renames an
// item during verification.
func (s *AnalysisService) LookupNutrition(ctx context.Context, name string, weightG float64) (models.Nutrition, error) {
	raw, err := s.gateway.Complete(ctx, []Message{
		TextMessage("system", nutritionLookupSystemPrompt),
		TextMessage("user", nutritionLookupPrompt(name, weightG)),
	}, analysisTemperature, 200)
	if err != nil {
		return models.Nutrition{}, err
	}

	span, err := ExtractJSONObject(raw)
	if err != nil {
		return models.Nutrition{}, err
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return models.Nutrition{}, &ParseError{Raw: span, Err: err}
	}
	return normalizeNutrition(obj), nil
}

// parseFoodItems reduces raw gateway text to normalized items:
// extraction, JSON parse, then per-item normalization.
func (s *AnalysisService) parseFoodItems(raw string) ([]models.FoodItem, error) {
	span, err := ExtractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var candidate any
	if err := json.Unmarshal([]byte(span), &candidate); err != nil {
		return nil, &ParseError{Raw: span, Err: err}
	}

	return NormalizeFoodItems(candidate)
}
