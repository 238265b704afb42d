package mealplan

import "errors"

var (
	// ErrInvalidDate is returned when a date is not a YYYY-MM-DD key.
	ErrInvalidDate = errors.New("date must be a valid YYYY-MM-DD string")

	// ErrInvalidMealSlot is returned when an operation names an occasion it
	// cannot apply to.
	ErrInvalidMealSlot = errors.New("invalid meal slot for this operation")
)
