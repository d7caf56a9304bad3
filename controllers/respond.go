package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is a plain 500.
func writeServiceError(c *gin.Context, err error) {
	var limitErr *services.UsageLimitError
	if errors.As(err, &limitErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":                limitErr.Reason,
			"hours_until_next_use": limitErr.HoursUntilNextUse,
		})
		return
	}

	var valErr *services.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": valErr.Reason})
		return
	}

	var gwErr *services.GatewayError
	if errors.As(err, &gwErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis service unavailable"})
		return
	}

	var parseErr *services.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis returned an unreadable response"})
		return
	}

	var persErr *services.PersistenceError
	if errors.As(err, &persErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func currentUser(c *gin.Context) uint {
	return c.GetUint("userID")
}

// parseDate reads a YYYY-MM-DD string in server-local time, so an
// explicit date lands on the same diary day key as the time.Now()
// defaults used when the client omits it.
func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

// dateQuery reads a YYYY-MM-DD query param, defaulting to today when
// absent. The bool reports whether the value parsed.
func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now(), true
	}
	d, err := parseDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
