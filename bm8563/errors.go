package bm8563

import (
	"errors"
	"fmt"

	"github.com/ajanata/drivers/internal/bcd"
)

var (
	// ErrLowVoltage matches a *LowVoltageError.
	ErrLowVoltage = errors.New("bm8563: low voltage, clock integrity not guaranteed")

	// ErrInvalidValue matches a *InvalidValueError.
	ErrInvalidValue = bcd.ErrOutOfRange
)

// LowVoltageError is returned by Read when the chip's backup supply dropped
// too low to guarantee the time. Time holds the decoded, suspect value.
type LowVoltageError struct {
	Time DateTime
}

func (e *LowVoltageError) Error() string {
	return fmt.Sprintf("%v: read %v", ErrLowVoltage, e.Time)
}

func (e *LowVoltageError) Unwrap() error {
	return ErrLowVoltage
}

// InvalidValueError reports a DateTime field that the chip cannot hold.
type InvalidValueError struct {
	Field string
	Value int
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("bm8563: %s %d: %v", e.Field, e.Value, ErrInvalidValue)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}
