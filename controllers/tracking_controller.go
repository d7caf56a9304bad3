package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TrackingController struct {
	Tracking *services.TrackingService
}

func NewTrackingController(tracking *services.TrackingService) *TrackingController {
	return &TrackingController{Tracking: tracking}
}

type weightInput struct {
	Date     string  `json:"date"` // YYYY-MM-DD, defaults to today
	WeightKg float64 `json:"weight_kg" binding:"required"`
}

// POST /tracking/weight
func (tc *TrackingController) LogWeight(c *gin.Context) {
	var input weightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.WeightKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight_kg must be positive"})
		return
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	log, err := tc.Tracking.UpsertWeight(currentUser(c), date, input.WeightKg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

// GET /tracking/weight?from=YYYY-MM-DD&to=YYYY-MM-DD
func (tc *TrackingController) WeightHistory(c *gin.Context) {
	to, okTo := dateQuery(c, "to")
	from, okFrom := dateQuery(c, "from")
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
		return
	}
	if c.Query("from") == "" {
		from = to.AddDate(0, 0, -30) // default to the last month
	}

	logs, err := tc.Tracking.WeightHistory(currentUser(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

type waterInput struct {
	Date     string  `json:"date"`
	VolumeMl float64 `json:"volume_ml" binding:"required"`
}

// POST /tracking/water
func (tc *TrackingController) LogWater(c *gin.Context) {
	var input waterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.VolumeMl <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "volume_ml must be positive"})
		return
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	log, err := tc.Tracking.AddWater(currentUser(c), date, input.VolumeMl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

// GET /tracking/water?date=YYYY-MM-DD
func (tc *TrackingController) WaterByDate(c *gin.Context) {
	date, ok := dateQuery(c, "date")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	total, err := tc.Tracking.WaterByDate(currentUser(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":      date.Format("2006-01-02"),
		"volume_ml": total,
	})
}
