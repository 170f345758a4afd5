package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateAxis renders the calendar labels for a lookback window ending
// today: windowDays+1 entries, oldest first.
func DateAxis(windowDays int, now time.Time) []string {
	dates := make([]string, 0, windowDays+1)
	for i := windowDays; i >= 0; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format(layout))
	}
	return dates
}
