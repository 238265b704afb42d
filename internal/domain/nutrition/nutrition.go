// Package nutrition contains the shared nutrition value objects used by the
// meal plan and nutrition log stores.
package nutrition

import "time"

// DateFormat is the day-granularity key format shared by every store.
// Dates are pure string keys with no timezone conversion; callers supply
// consistent local calendar days.
const DateFormat = "2006-01-02"

// MealType identifies one of the meal occasions within a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether the meal type names a known occasion.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Nutrients aggregates the macro values tracked per meal and per day.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum of two nutrient sets.
func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
	}
}

// Day formats a time as a store date key using the local calendar day.
func Day(t time.Time) string {
	return t.Format(DateFormat)
}

// Today returns the current local calendar day as a date key.
func Today() string {
	return Day(time.Now())
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD key.
func ValidDate(date string) bool {
	_, err := time.Parse(DateFormat, date)
	return err == nil
}
