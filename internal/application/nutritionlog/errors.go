package nutritionlog

import "errors"

var (
	// ErrInvalidDate is returned when an entry's date is not a YYYY-MM-DD key.
	ErrInvalidDate = errors.New("entry date must be a valid YYYY-MM-DD string")

	// ErrInvalidMealType is returned when an entry names an unknown occasion.
	ErrInvalidMealType = errors.New("meal type must be breakfast, lunch, dinner or snack")
)
