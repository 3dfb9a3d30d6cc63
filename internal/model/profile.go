package model

import "time"

// ConsumptionProfile maps each weekday to the units consumed on that day.
// A fully-resolved profile has an entry for all seven weekdays; missing
// entries read as zero.
type ConsumptionProfile map[time.Weekday]int

// DefaultProfile is the built-in consumption schedule: 3 units per weekday,
// 4 per weekend day.
func DefaultProfile() ConsumptionProfile {
	return ConsumptionProfile{
		time.Monday:    3,
		time.Tuesday:   3,
		time.Wednesday: 3,
		time.Thursday:  3,
		time.Friday:    3,
		time.Saturday:  4,
		time.Sunday:    4,
	}
}

// For returns the consumption for a weekday, zero if the day has no entry.
func (p ConsumptionProfile) For(day time.Weekday) int {
	return p[day]
}

// Clone returns an independent copy, so a resolved parameter set never
// aliases the caller's map.
func (p ConsumptionProfile) Clone() ConsumptionProfile {
	if p == nil {
		return nil
	}
	out := make(ConsumptionProfile, len(p))
	for day, qty := range p {
		out[day] = qty
	}
	return out
}
