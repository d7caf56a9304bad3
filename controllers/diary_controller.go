package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type DiaryController struct {
	Diary    *services.DiaryService
	Analysis *services.AnalysisService
	Goals    *services.GoalService
	RT       *services.RealtimeHub
}

func NewDiaryController(diary *services.DiaryService, analysis *services.AnalysisService, goals *services.GoalService, rt *services.RealtimeHub) *DiaryController {
	return &DiaryController{Diary: diary, Analysis: analysis, Goals: goals, RT: rt}
}

type confirmInput struct {
	Date        string            `json:"date"` // YYYY-MM-DD, defaults to today
	Items       []models.FoodItem `json:"items" binding:"required"`
	PhotoBase64 string            `json:"photo_base64"`
}

// POST /diary/entries
//
// The confirm step: the client sends back the verified items and they
// become diary rows. Submitting twice writes twice.
func (dc *DiaryController) Confirm(c *gin.Context) {
	var input confirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := currentUser(c)

	date := time.Now()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	photoURL := ""
	if input.PhotoBase64 != "" {
		url, err := utils.UploadMealPhoto(input.PhotoBase64, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "photo upload failed"})
			return
		}
		photoURL = url
	}

	entries, err := dc.Diary.SaveEntries(uid, date, input.Items, photoURL)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	dc.afterDiaryChange(uid, date)
	c.JSON(http.StatusCreated, gin.H{"entries": entries})
}

// GET /diary/entries?date=YYYY-MM-DD
func (dc *DiaryController) ListByDate(c *gin.Context) {
	date, ok := dateQuery(c, "date")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entries, err := dc.Diary.ListByDate(currentUser(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals, _ := dc.Diary.DailyTotals(currentUser(c), date)
	c.JSON(http.StatusOK, gin.H{"entries": entries, "totals": totals})
}

// GET /diary/range?from=YYYY-MM-DD&to=YYYY-MM-DD
func (dc *DiaryController) ListByRange(c *gin.Context) {
	from, okFrom := dateQuery(c, "from")
	to, okTo := dateQuery(c, "to")
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to is before from"})
		return
	}

	entries, err := dc.Diary.ListByRange(currentUser(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

type updateEntryInput struct {
	Name     string  `json:"name"`
	WeightG  float64 `json:"weight_g"`
	Category string  `json:"category"`
	State    string  `json:"state"`
}

// PUT /diary/entries/:id
//
// A rename triggers a fresh nutrition lookup; a weight change alone
// rescales the stored macros proportionally.
func (dc *DiaryController) UpdateEntry(c *gin.Context) {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var input updateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := currentUser(c)

	entry, err := dc.Diary.GetEntry(uid, uint(entryID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}

	item := entry.Item()
	if input.Category != "" {
		item.Category = input.Category
	}
	if input.State != "" {
		item.State = input.State
	}

	switch {
	case input.Name != "" && input.Name != entry.Name:
		weight := entry.WeightG
		if input.WeightG > 0 {
			weight = input.WeightG
		}
		nut, err := dc.Analysis.LookupNutrition(c.Request.Context(), input.Name, weight)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		item.Name = input.Name
		item.WeightG = weight
		item.Nutrition = nut
	case input.WeightG > 0 && input.WeightG != entry.WeightG:
		item = services.RescaleFoodItem(item, input.WeightG)
	}

	updated, err := dc.Diary.UpdateEntry(uid, uint(entryID), item)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	dc.afterDiaryChange(uid, updated.EntryDate)
	c.JSON(http.StatusOK, updated)
}

// DELETE /diary/entries/:id
func (dc *DiaryController) DeleteEntry(c *gin.Context) {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}
	uid := currentUser(c)

	if err := dc.Diary.DeleteEntry(uid, uint(entryID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dc.afterDiaryChange(uid, time.Now())
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// afterDiaryChange pushes the change to open sockets and raises a
// goal-exceeded alert when today's calories pass the target.
func (dc *DiaryController) afterDiaryChange(uid uint, date time.Time) {
	if dc.RT != nil {
		dc.RT.Broadcast(uid, services.EventDiaryUpdated, gin.H{"date": date.Format("2006-01-02")})
	}

	if dc.Goals == nil {
		return
	}
	goal, progress, err := dc.Goals.GoalsAndProgress(uid, date)
	if err != nil || goal.Calories <= 0 {
		return
	}
	if cals, ok := progress["calories"].(map[string]float64); ok && cals["consumed"] > goal.Calories {
		services.EmitAlert(uid, models.AlertGoalExceeded,
			fmt.Sprintf("You've passed your %0.f kcal goal for today.", goal.Calories))
	}
}
