package config

import (
	"os"

	"yogurt-planner/internal/model"

	"gopkg.in/yaml.v3"
)

// Overrides is the caller-supplied partial configuration. Nil fields keep the
// documented defaults; consumption days not listed keep the default profile's
// value for that day.
type Overrides struct {
	InitialStock     *int           `yaml:"initial_stock" json:"initial_stock"`
	DeliveryDelay    *int           `yaml:"delivery_delay" json:"delivery_delay"`
	PackSize         *int           `yaml:"pack_size" json:"pack_size"`
	DailyConsumption map[string]int `yaml:"daily_consumption" json:"daily_consumption"`
}

// Resolve merges overrides onto the default parameter set. A nil Overrides
// yields the pure defaults. Consumption keys are weekday names, matched
// case-insensitively; an unknown name fails with *model.InvalidWeekdayError.
func Resolve(o *Overrides) (model.Params, error) {
	params := model.DefaultParams()
	if o == nil {
		return params, nil
	}

	if o.InitialStock != nil {
		params.InitialStock = *o.InitialStock
	}
	if o.DeliveryDelay != nil {
		params.DeliveryDelay = *o.DeliveryDelay
	}
	if o.PackSize != nil {
		params.PackSize = *o.PackSize
	}

	if len(o.DailyConsumption) > 0 {
		profile := params.Consumption.Clone()
		for name, qty := range o.DailyConsumption {
			day, err := model.ParseWeekday(name)
			if err != nil {
				return model.Params{}, err
			}
			profile[day] = qty
		}
		params.Consumption = profile
	}

	return params, nil
}

// Load reads an Overrides from a YAML file (the CLI's --config input).
func Load(path string) (*Overrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var o Overrides
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
