package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDay(t *testing.T) {
	morning := time.Date(2026, 8, 28, 7, 15, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, "2026-08-28", CalendarDay(morning))
	// Two logins on the same day compare equal, so no second bonus.
	assert.Equal(t, CalendarDay(morning), CalendarDay(evening))
	// Midnight rollover starts a new bonus day.
	assert.NotEqual(t, CalendarDay(evening), CalendarDay(nextDay))
}
