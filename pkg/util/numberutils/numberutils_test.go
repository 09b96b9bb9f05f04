package numberutils

import "testing"

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{name: "half rounds up", input: 22.5, want: 23},
		{name: "below half rounds down", input: 21.4, want: 21},
		{name: "negative half rounds towards positive", input: -2.5, want: -2},
		{name: "negative below half", input: -2.6, want: -3},
		{name: "zero", input: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundHalfUp(tt.input); got != tt.want {
				t.Errorf("RoundHalfUp(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToIntWithDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   int
		want  int
	}{
		{name: "valid", input: "7", def: 1, want: 7},
		{name: "empty", input: "", def: 1, want: 1},
		{name: "garbage", input: "abc", def: 20, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToIntWithDefault(tt.input, tt.def); got != tt.want {
				t.Errorf("ToIntWithDefault(%q, %d) = %d, want %d", tt.input, tt.def, got, tt.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(0, 1, 50); got != 1 {
		t.Errorf("ClampInt(0, 1, 50) = %d, want 1", got)
	}
	if got := ClampInt(99, 1, 50); got != 50 {
		t.Errorf("ClampInt(99, 1, 50) = %d, want 50", got)
	}
	if got := ClampInt(20, 1, 50); got != 20 {
		t.Errorf("ClampInt(20, 1, 50) = %d, want 20", got)
	}
}
