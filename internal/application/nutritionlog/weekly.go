package nutritionlog

import (
	"math"
	"time"

	"github.com/platewise/v1/internal/domain/nutrition"
)

// DayDatum is one point of the weekly calorie series.
type DayDatum struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	Value   int    `json:"value"`
	IsToday bool   `json:"isToday"`
}

// EntriesForDate is the pure per-date filter over a ledger snapshot. Matches
// are exact string comparisons on the date key, in insertion order.
func EntriesForDate(st State, date string) []Entry {
	matched := make([]Entry, 0)
	for _, e := range st.Entries {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched
}

// DailyTotals sums the macro fields of every entry on the date.
func DailyTotals(st State, date string) nutrition.Nutrients {
	var total nutrition.Nutrients
	for _, e := range st.Entries {
		if e.Date == date {
			total = total.Add(e.Nutrients())
		}
	}
	return total
}

// WeeklyData computes the series for the trailing seven calendar days ending
// at now, oldest first. A trailing window was chosen over a Monday-anchored
// week so the series never collapses to a single point right after a week
// boundary. Each value is the day's calories as an integer percentage of
// target, uncapped; display code clamps as needed. Days are labeled with
// their short weekday name and today's point is flagged.
func WeeklyData(st State, target int, now time.Time) []DayDatum {
	if target < 1 {
		target = 1
	}
	today := nutrition.Day(now)

	data := make([]DayDatum, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := nutrition.Day(day)
		totals := DailyTotals(st, date)
		data = append(data, DayDatum{
			Date:    date,
			Day:     day.Format("Mon"),
			Value:   int(math.Round(totals.Calories / float64(target) * 100)),
			IsToday: date == today,
		})
	}
	return data
}

// WeeklyAdherence averages the seven daily percentages into a single score,
// rounded to the nearest integer. Each day is capped at 100 before averaging
// so one oversized day cannot mask six empty ones. Days with nothing logged
// count as zero rather than being excluded; sparse logging is meant to pull
// the score down.
func WeeklyAdherence(st State, target int, now time.Time) int {
	var sum float64
	for _, d := range WeeklyData(st, target, now) {
		v := d.Value
		if v > 100 {
			v = 100
		}
		sum += float64(v)
	}
	return int(math.Round(sum / 7))
}

// WeeklyData returns the trailing series anchored at the current day.
func (s *Service) WeeklyData(target int) []DayDatum {
	return WeeklyData(s.store.Snapshot(), target, time.Now())
}

// WeeklyAdherence returns the adherence score anchored at the current day.
func (s *Service) WeeklyAdherence(target int) int {
	return WeeklyAdherence(s.store.Snapshot(), target, time.Now())
}
