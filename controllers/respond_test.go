package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

// Explicit dates must land on the same local day key as the time.Now()
// default, or a confirm with a date and a read without one would
// disagree about "today" on any non-UTC server.
func TestParseDateUsesLocalTime(t *testing.T) {
	got, err := parseDate("2025-06-01")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Location() != time.Local {
		t.Errorf("location = %v, want local", got.Location())
	}
}

func TestDateQuery(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		d, ok := dateQuery(queryContext(t, "date=2025-06-01"), "date")
		if !ok {
			t.Fatal("valid date rejected")
		}
		if d.Format("2006-01-02") != "2025-06-01" {
			t.Errorf("day key = %s", d.Format("2006-01-02"))
		}
	})

	t.Run("absent defaults to today", func(t *testing.T) {
		d, ok := dateQuery(queryContext(t, ""), "date")
		if !ok {
			t.Fatal("default rejected")
		}
		if d.Format("2006-01-02") != time.Now().Format("2006-01-02") {
			t.Errorf("default day = %s", d.Format("2006-01-02"))
		}
	})

	t.Run("today round-trips through its own format", func(t *testing.T) {
		today := time.Now().Format("2006-01-02")
		d, ok := dateQuery(queryContext(t, "date="+today), "date")
		if !ok {
			t.Fatal("today rejected")
		}
		if d.Format("2006-01-02") != today {
			t.Errorf("explicit today %s parsed to day %s", today, d.Format("2006-01-02"))
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, ok := dateQuery(queryContext(t, "date=June+1st"), "date"); ok {
			t.Error("malformed date accepted")
		}
	})
}
