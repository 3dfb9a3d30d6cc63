package models

import "yogurt-planner/internal/config"

// SimulateRequest is the optional request body for POST /api/v1/simulate.
// Every field may be absent; absent fields keep the default configuration.
type SimulateRequest struct {
	InitialStock     *int           `json:"initial_stock" binding:"omitempty,min=0"`
	DeliveryDelay    *int           `json:"delivery_delay" binding:"omitempty,min=1"`
	PackSize         *int           `json:"pack_size" binding:"omitempty,min=1"`
	DailyConsumption map[string]int `json:"daily_consumption,omitempty"`
}

// ToOverrides maps the DTO onto the resolver's override set. A nil request
// (empty body) means "run with defaults".
func (r *SimulateRequest) ToOverrides() *config.Overrides {
	if r == nil {
		return nil
	}
	return &config.Overrides{
		InitialStock:     r.InitialStock,
		DeliveryDelay:    r.DeliveryDelay,
		PackSize:         r.PackSize,
		DailyConsumption: r.DailyConsumption,
	}
}
