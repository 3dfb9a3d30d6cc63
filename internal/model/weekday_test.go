package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want time.Weekday
	}{
		{"Monday", time.Monday},
		{"monday", time.Monday},
		{"MONDAY", time.Monday},
		{"sUnDaY", time.Sunday},
		{"Saturday", time.Saturday},
	}

	for _, tc := range cases {
		got, err := ParseWeekday(tc.in)
		if err != nil {
			t.Errorf("ParseWeekday(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWeekday(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseWeekday_Invalid(t *testing.T) {
	for _, in := range []string{"INVALID_DAY", "", "Mon", "Funday"} {
		_, err := ParseWeekday(in)
		if err == nil {
			t.Errorf("ParseWeekday(%q): expected error", in)
			continue
		}
		var weekdayErr *InvalidWeekdayError
		if !errors.As(err, &weekdayErr) {
			t.Errorf("ParseWeekday(%q): expected InvalidWeekdayError, got %T", in, err)
			continue
		}
		if weekdayErr.Name != in {
			t.Errorf("ParseWeekday(%q): error carries token %q", in, weekdayErr.Name)
		}
		if !strings.Contains(err.Error(), in) && in != "" {
			t.Errorf("ParseWeekday(%q): message %q does not name the token", in, err.Error())
		}
	}
}
