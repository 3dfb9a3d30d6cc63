package model

import "fmt"

// InvalidWeekdayError reports a consumption override keyed by a name that is
// not one of the seven weekdays.
type InvalidWeekdayError struct {
	Name string
}

func (e *InvalidWeekdayError) Error() string {
	return fmt.Sprintf("invalid weekday name: %q", e.Name)
}

// InvalidParamsError reports a simulation parameter set that violates a
// structural invariant. Reason names the first failing field.
type InvalidParamsError struct {
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return "invalid simulation parameters: " + e.Reason
}
