package axis

import "testing"

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"small integer", 7, "7"},
		{"negative integer", -2, "-2"},
		{"short fraction", 0.25, "0.25"},
		{"pi truncated to three digits", 3.14159265, "3.14"},
		{"float noise collapses", 0.30000000000000004, "0.3"},
		{"five characters kept", 12345, "12345"},
		{"six characters truncated", 123456, "1.23e+05"},
		{"negative fraction truncated", -1.23456, "-1.23"},
		{"zero", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLabel(tt.v); got != tt.want {
				t.Errorf("FormatLabel(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
