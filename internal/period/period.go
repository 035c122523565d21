// Package period computes the calendar bucket keys used to name tier files:
// rotating day-of-week slots, ISO week labels, month labels, and year labels.
package period

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DaySlot returns the ISO weekday slot, Monday=1 through Sunday=7.
func DaySlot(t time.Time) int {
	d := int(t.Weekday())
	if d == 0 {
		return 7
	}
	return d
}

// DayLabel returns the rotating day-slot label for t, e.g. "day-1" on a
// Monday. The same label recurs every week, so day-slot files rotate rather
// than accumulate.
func DayLabel(t time.Time) string {
	return fmt.Sprintf("day-%d", DaySlot(t))
}

// IsDaySlot reports whether id is one of the seven rotating day-slot labels.
func IsDaySlot(id string) bool {
	if len(id) != 5 || !strings.HasPrefix(id, "day-") {
		return false
	}
	return id[4] >= '1' && id[4] <= '7'
}

// DateLabel returns the permanent per-date label, e.g. "2024-02-05".
func DateLabel(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekLabel returns the ISO 8601 week label for t, e.g. "2024-W05". Week 1 is
// the week containing the year's first Thursday, so early-January dates can
// belong to the previous year's last week.
func WeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthLabel returns the month label, e.g. "2024-02".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}

// YearLabel returns the year label, e.g. "2024".
func YearLabel(year int) string {
	return strconv.Itoa(year)
}

// PrevMonth returns the calendar month immediately before t's month.
func PrevMonth(t time.Time) (int, time.Month) {
	if t.Month() == time.January {
		return t.Year() - 1, time.December
	}
	return t.Year(), t.Month() - 1
}

// MonthOfWeek maps an ISO week number onto a month number as ceil(week/4.33).
// The mapping is approximate: weeks spanning a month boundary can land on
// either side, and week 52 maps to 13. Callers depend on this exact behavior
// for file selection compatibility.
func MonthOfWeek(week int) int {
	return int(math.Ceil(float64(week) / 4.33))
}

// ParseWeekLabel splits a "<year>-W<week>" label.
func ParseWeekLabel(label string) (year, week int, ok bool) {
	parts := strings.SplitN(label, "-W", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	week, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, week, true
}

// ParseMonthLabel splits a "<year>-<month>" label.
func ParseMonthLabel(label string) (year int, month time.Month, ok bool) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, time.Month(m), true
}
