package metrics

import (
	"testing"
	"time"
)

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "january first",
			at:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "2026-W01",
		},
		{
			name: "late february",
			at:   time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC),
			want: "2026-W08",
		},
		{
			name: "saturday midnight stays in first week",
			at:   time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC),
			want: "2026-W01",
		},
		{
			name: "saturday noon rolls into second week",
			at:   time.Date(2026, time.January, 3, 12, 0, 0, 0, time.UTC),
			want: "2026-W02",
		},
		{
			name: "different year offset",
			at:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "2025-W01",
		},
		{
			name: "year end",
			at:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: "2026-W53",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekKey(tt.at); got != tt.want {
				t.Errorf("WeekKey(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}
