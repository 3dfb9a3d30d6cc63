package model

import (
	"fmt"
	"time"
)

// Params is the frozen configuration for one simulation run. It is built once
// (by config.Resolve or directly in tests) and never mutated by the engine.
type Params struct {
	StartDate     time.Time
	InitialStock  int
	DeliveryDelay int
	PackSize      int
	PurchaseDay   time.Weekday
	Consumption   ConsumptionProfile
}

// DefaultParams returns the documented default configuration: one year of
// simulation starting Sunday 2025-01-05, 6 units on hand, 2-day delivery
// delay, packs of 2, reorder decisions on Sundays.
func DefaultParams() Params {
	return Params{
		StartDate:     time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		InitialStock:  6,
		DeliveryDelay: 2,
		PackSize:      2,
		PurchaseDay:   time.Sunday,
		Consumption:   DefaultProfile(),
	}
}

// Validate checks the structural invariants in a fixed order and returns an
// *InvalidParamsError naming the first violation.
func (p *Params) Validate() error {
	if p.StartDate.IsZero() {
		return &InvalidParamsError{Reason: "start date is required"}
	}
	if p.InitialStock < 0 {
		return &InvalidParamsError{Reason: "initial stock must be >= 0"}
	}
	if p.DeliveryDelay < 1 {
		return &InvalidParamsError{Reason: "delivery delay must be at least 1 day"}
	}
	if p.PackSize < 1 {
		return &InvalidParamsError{Reason: "pack size must be at least 1"}
	}
	if p.Consumption == nil {
		return &InvalidParamsError{Reason: "consumption profile is required"}
	}
	for _, day := range Weekdays {
		if p.Consumption.For(day) < 0 {
			return &InvalidParamsError{Reason: fmt.Sprintf("consumption for %s must be >= 0", day)}
		}
	}
	return nil
}
