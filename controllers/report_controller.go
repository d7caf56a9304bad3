package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GET /reports/summary?from=YYYY-MM-DD&to=YYYY-MM-DD&include_missing=true
func (rc *ReportController) Summary(c *gin.Context) {
	from, okFrom := dateQuery(c, "from")
	to, okTo := dateQuery(c, "to")
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
		return
	}
	if c.Query("from") == "" {
		from = to.AddDate(0, 0, -6) // default to the trailing week
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to is before from"})
		return
	}
	includeMissing := c.Query("include_missing") == "true"

	summary, err := rc.Reports.Summary(c.Request.Context(), currentUser(c), from, to, includeMissing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /reports/weekly?week_start=YYYY-MM-DD&mode=chart|detailed
func (rc *ReportController) WeeklyOverview(c *gin.Context) {
	weekStart, ok := dateQuery(c, "week_start")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}
	if c.Query("week_start") == "" {
		// default to the Monday of the current week
		wd := int(weekStart.Weekday())
		if wd == 0 {
			wd = 7
		}
		weekStart = weekStart.AddDate(0, 0, 1-wd)
	}
	mode := c.DefaultQuery("mode", "chart")

	overview, err := rc.Reports.WeeklyOverview(c.Request.Context(), currentUser(c), weekStart, mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}
