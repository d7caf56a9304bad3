package services

import (
	"context"
	"errors"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// ---------- Summary ----------

type NutrAvg struct {
	AvgConsumed float64 `json:"avg_consumed"`
	AvgGoal     float64 `json:"avg_goal,omitempty"`
	AvgPercent  float64 `json:"avg_percent,omitempty"`
	Unit        string  `json:"unit,omitempty"`
}

type ReportSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Macros map[string]NutrAvg `json:"macros"` // calories, protein, carbs, fat
	Water  NutrAvg            `json:"water"`

	Weight struct {
		StartKg  float64 `json:"start_kg,omitempty"`
		EndKg    float64 `json:"end_kg,omitempty"`
		ChangeKg float64 `json:"change_kg"`
		Entries  int     `json:"entries"`
	} `json:"weight"`

	Metadata struct {
		DaysCounted        int  `json:"days_counted"`
		IncludeMissingDays bool `json:"include_missing_days"`
	} `json:"metadata"`
}

type dayTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Water    float64
}

func (s *ReportService) Summary(
	ctx context.Context, userID uint, from, to time.Time, includeMissing bool,
) (*ReportSummary, error) {

	totalsByDay, err := s.collectDayTotals(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	var dates []string
	if includeMissing {
		for d := dayStart(from); !d.After(to); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d.Format("2006-01-02"))
		}
	} else {
		for d := dayStart(from); !d.After(to); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			if _, ok := totalsByDay[key]; ok {
				dates = append(dates, key)
			}
		}
	}

	type acc struct{ sum, gsum, psum float64 }
	m := map[string]*acc{
		"calories": {}, "protein": {}, "carbs": {}, "fat": {}, "water": {},
	}

	for _, key := range dates {
		dt := totalsByDay[key] // zero value if not found

		type pair struct {
			k string
			c float64
			g float64
		}
		for _, p := range []pair{
			{"calories", dt.Calories, goal.Calories},
			{"protein", dt.Protein, goal.Protein},
			{"carbs", dt.Carbs, goal.Carbs},
			{"fat", dt.Fat, goal.Fat},
			{"water", dt.Water, goal.WaterMl},
		} {
			m[p.k].sum += p.c
			m[p.k].gsum += p.g
			if p.g > 0 {
				m[p.k].psum += (p.c / p.g) * 100.0
			}
		}
	}

	out := &ReportSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")
	out.Metadata.DaysCounted = len(dates)
	out.Metadata.IncludeMissingDays = includeMissing

	n := len(dates)
	out.Macros = map[string]NutrAvg{
		"calories": {AvgConsumed: avg(m["calories"].sum, n), AvgGoal: avg(m["calories"].gsum, n), AvgPercent: avg(m["calories"].psum, n), Unit: "kcal"},
		"protein":  {AvgConsumed: avg(m["protein"].sum, n), AvgGoal: avg(m["protein"].gsum, n), AvgPercent: avg(m["protein"].psum, n), Unit: "g"},
		"carbs":    {AvgConsumed: avg(m["carbs"].sum, n), AvgGoal: avg(m["carbs"].gsum, n), AvgPercent: avg(m["carbs"].psum, n), Unit: "g"},
		"fat":      {AvgConsumed: avg(m["fat"].sum, n), AvgGoal: avg(m["fat"].gsum, n), AvgPercent: avg(m["fat"].psum, n), Unit: "g"},
	}
	out.Water = NutrAvg{AvgConsumed: avg(m["water"].sum, n), AvgGoal: avg(m["water"].gsum, n), AvgPercent: avg(m["water"].psum, n), Unit: "ml"}

	// weight trend across the range
	var weights []models.WeightLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&weights).Error; err != nil {
		return nil, err
	}
	out.Weight.Entries = len(weights)
	if len(weights) > 0 {
		out.Weight.StartKg = weights[0].WeightKg
		out.Weight.EndKg = weights[len(weights)-1].WeightKg
		out.Weight.ChangeKg = round2(out.Weight.EndKg - out.Weight.StartKg)
	}

	return out, nil
}

// ---------- Weekly Overview ----------

type WeeklyOverviewResponse struct {
	WeekStart string `json:"week_start"`
	Mode      string `json:"mode"` // chart|detailed
	Days      any    `json:"days"`
}

type DayChart struct {
	Date        string             `json:"date"`
	Percentages map[string]float64 `json:"percentages"`
}

type Metric struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

type DayDetailed struct {
	Date    string            `json:"date"`
	Metrics map[string]Metric `json:"metrics"`
}

func (s *ReportService) WeeklyOverview(
	ctx context.Context, userID uint, weekStart time.Time, mode string,
) (*WeeklyOverviewResponse, error) {

	if mode != "chart" && mode != "detailed" {
		return nil, errors.New("mode must be 'chart' or 'detailed'")
	}

	from := dayStart(weekStart)
	to := from.AddDate(0, 0, 6)

	totalsByDay, err := s.collectDayTotals(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	goal, err := s.goalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &WeeklyOverviewResponse{
		WeekStart: from.Format("2006-01-02"),
		Mode:      mode,
	}

	if mode == "chart" {
		var days []DayChart
		for i := 0; i < 7; i++ {
			key := from.AddDate(0, 0, i).Format("2006-01-02")
			dt := totalsByDay[key]
			days = append(days, DayChart{
				Date: key,
				Percentages: map[string]float64{
					"calories": pct(dt.Calories, goal.Calories),
					"protein":  pct(dt.Protein, goal.Protein),
					"carbs":    pct(dt.Carbs, goal.Carbs),
					"fat":      pct(dt.Fat, goal.Fat),
					"water":    pct(dt.Water, goal.WaterMl),
				},
			})
		}
		out.Days = days
		return out, nil
	}

	var days []DayDetailed
	for i := 0; i < 7; i++ {
		key := from.AddDate(0, 0, i).Format("2006-01-02")
		dt := totalsByDay[key]
		days = append(days, DayDetailed{
			Date: key,
			Metrics: map[string]Metric{
				"calories":  {Actual: round2(dt.Calories), Target: round2(goal.Calories), Percent: pct(dt.Calories, goal.Calories)},
				"protein_g": {Actual: round2(dt.Protein), Target: round2(goal.Protein), Percent: pct(dt.Protein, goal.Protein)},
				"carbs_g":   {Actual: round2(dt.Carbs), Target: round2(goal.Carbs), Percent: pct(dt.Carbs, goal.Carbs)},
				"fat_g":     {Actual: round2(dt.Fat), Target: round2(goal.Fat), Percent: pct(dt.Fat, goal.Fat)},
				"water_ml":  {Actual: round2(dt.Water), Target: round2(goal.WaterMl), Percent: pct(dt.Water, goal.WaterMl)},
			},
		})
	}
	out.Days = days
	return out, nil
}

// ---------- internals ----------

func (s *ReportService) collectDayTotals(ctx context.Context, userID uint, from, to time.Time) (map[string]dayTotals, error) {
	var entries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	byDay := map[string]dayTotals{}
	for _, e := range entries {
		key := e.EntryDate.Format("2006-01-02")
		dt := byDay[key]
		dt.Calories += e.Calories
		dt.Protein += e.Protein
		dt.Carbs += e.Carbs
		dt.Fat += e.Fat
		byDay[key] = dt
	}

	var water []models.WaterLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Find(&water).Error; err != nil {
		return nil, err
	}
	for _, w := range water {
		key := w.Date.Format("2006-01-02")
		dt := byDay[key]
		dt.Water += w.VolumeMl
		byDay[key] = dt
	}

	return byDay, nil
}

func (s *ReportService) goalSnapshot(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	var g models.DailyGoal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{}, nil
		}
		return nil, err
	}
	return &g, nil
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return round2((actual / goal) * 100.0)
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
