package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

// GET /goals
func (gc *GoalController) Get(c *gin.Context) {
	goal, err := gc.Goals.GetGoal(currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

type goalInput struct {
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
	WaterMl        float64 `json:"water_ml"`
	TargetWeightKg float64 `json:"target_weight_kg"`
}

// PUT /goals
func (gc *GoalController) Upsert(c *gin.Context) {
	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Calories < 0 || input.Protein < 0 || input.Carbs < 0 || input.Fat < 0 || input.WaterMl < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal values must be non-negative"})
		return
	}

	err := gc.Goals.UpsertGoal(currentUser(c),
		input.Calories, input.Protein, input.Carbs, input.Fat, input.WaterMl, input.TargetWeightKg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goals updated"})
}

// GET /goals/progress?date=YYYY-MM-DD
func (gc *GoalController) Progress(c *gin.Context) {
	date, ok := dateQuery(c, "date")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	goal, progress, err := gc.Goals.GoalsAndProgress(currentUser(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     date.Format("2006-01-02"),
		"goal":     goal,
		"progress": progress,
	})
}
