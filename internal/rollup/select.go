package rollup

import (
	"time"

	"github.com/defipatriot/ss-pool-data-2026/internal/period"
)

// daySlots filters a daily-tier listing down to the seven rotating slot
// files, excluding the per-date backups.
func daySlots(ids []string) []string {
	var out []string
	for _, id := range ids {
		if period.IsDaySlot(id) {
			out = append(out, id)
		}
	}
	return out
}

// weeksOfMonth selects week labels whose year equals filterYear and whose
// week number lands in month under the approximate ceil(week/4.33)
// assignment. filterYear is the year the rollup runs in, not the target
// month's year, so a January run matches no weeks for its December target
// and the rollup writes an empty period.
func weeksOfMonth(ids []string, filterYear int, month time.Month) []string {
	var out []string
	for _, id := range ids {
		year, week, ok := period.ParseWeekLabel(id)
		if !ok || year != filterYear {
			continue
		}
		if period.MonthOfWeek(week) != int(month) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// monthsOfYear selects month labels belonging to year.
func monthsOfYear(ids []string, year int) []string {
	var out []string
	for _, id := range ids {
		y, _, ok := period.ParseMonthLabel(id)
		if !ok || y != year {
			continue
		}
		out = append(out, id)
	}
	return out
}
