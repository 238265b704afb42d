package preferences

import "errors"

var (
	// ErrInvalidUnit is returned for a measurement unit outside the enum.
	ErrInvalidUnit = errors.New("measurement unit must be metric or imperial")
)
