package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// AnalysisController fronts the meal analysis flow. Results are
// returned to the client for verification; nothing lands in the diary
// until the confirm endpoint is called.
type AnalysisController struct {
	Analysis *services.AnalysisService
	Usage    *services.UsageService
}

func NewAnalysisController(analysis *services.AnalysisService, usage *services.UsageService) *AnalysisController {
	return &AnalysisController{Analysis: analysis, Usage: usage}
}

type analyzeImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /analysis/image
func (ac *AnalysisController) AnalyzeImage(c *gin.Context) {
	var input analyzeImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := currentUser(c)

	if err := ac.Usage.Authorize(uid, time.Now()); err != nil {
		writeServiceError(c, err)
		return
	}

	items, err := ac.Analysis.AnalyzeImage(c.Request.Context(), input.ImageBase64)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if err := ac.Usage.RecordUse(uid, time.Now()); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type analyzeTextInput struct {
	Text string `json:"text" binding:"required"`
}

// POST /analysis/text
func (ac *AnalysisController) AnalyzeText(c *gin.Context) {
	var input analyzeTextInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := currentUser(c)

	if err := ac.Usage.Authorize(uid, time.Now()); err != nil {
		writeServiceError(c, err)
		return
	}

	result, err := ac.Analysis.AnalyzeText(c.Request.Context(), input.Text)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if err := ac.Usage.RecordUse(uid, time.Now()); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        result.Items,
		"failed_items": result.FailedItems,
	})
}

type rescaleInput struct {
	Item       models.FoodItem `json:"item" binding:"required"`
	NewWeightG float64         `json:"new_weight_g"`
}

// POST /analysis/rescale
//
// Pure arithmetic on an item the client already holds; it does not
// count against the usage limit.
func (ac *AnalysisController) Rescale(c *gin.Context) {
	var input rescaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": services.RescaleFoodItem(input.Item, input.NewWeightG)})
}

type nutritionInput struct {
	Name    string  `json:"name" binding:"required"`
	WeightG float64 `json:"weight_g" binding:"required"`
}

// POST /analysis/nutrition
//
// Fresh macro lookup for a renamed item during verification.
func (ac *AnalysisController) Nutrition(c *gin.Context) {
	var input nutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nut, err := ac.Analysis.LookupNutrition(c.Request.Context(), input.Name, input.WeightG)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":      input.Name,
		"weight_g":  input.WeightG,
		"nutrition": nut,
	})
}

// GET /analysis/usage
func (ac *AnalysisController) UsageStatus(c *gin.Context) {
	status, err := ac.Usage.Status(currentUser(c), time.Now())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
