package model

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	wantStart := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !p.StartDate.Equal(wantStart) {
		t.Errorf("start date %s, want %s", p.StartDate, wantStart)
	}
	if p.StartDate.Weekday() != time.Sunday {
		t.Errorf("default start date should be a Sunday, got %s", p.StartDate.Weekday())
	}
	if p.InitialStock != 6 || p.DeliveryDelay != 2 || p.PackSize != 2 {
		t.Errorf("unexpected defaults: stock=%d delay=%d pack=%d",
			p.InitialStock, p.DeliveryDelay, p.PackSize)
	}
	if p.PurchaseDay != time.Sunday {
		t.Errorf("purchase day %s, want Sunday", p.PurchaseDay)
	}

	for _, day := range Weekdays {
		want := 3
		if day == time.Saturday || day == time.Sunday {
			want = 4
		}
		if got := p.Consumption.For(day); got != want {
			t.Errorf("default consumption for %s = %d, want %d", day, got, want)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	valid := DefaultParams()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default params should validate, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Params)
		reason string
	}{
		{"zero start date", func(p *Params) { p.StartDate = time.Time{} }, "start date"},
		{"negative stock", func(p *Params) { p.InitialStock = -1 }, "initial stock"},
		{"zero delay", func(p *Params) { p.DeliveryDelay = 0 }, "delivery delay"},
		{"zero pack size", func(p *Params) { p.PackSize = 0 }, "pack size"},
		{"nil profile", func(p *Params) { p.Consumption = nil }, "consumption profile"},
		{"negative friday", func(p *Params) { p.Consumption[time.Friday] = -2 }, "Friday"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)

			err := p.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.reason) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.reason)
			}
		})
	}
}

func TestProfileClone(t *testing.T) {
	orig := DefaultProfile()
	clone := orig.Clone()
	clone[time.Monday] = 99

	if orig.For(time.Monday) == 99 {
		t.Error("mutating the clone changed the original")
	}
}
