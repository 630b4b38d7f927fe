package main

import "testing"

func TestColorIndex(t *testing.T) {
	tests := []struct {
		hex  string
		want uint8
	}{
		{"#000000", 16},
		{"#FFFFFF", 231},
		{"#ff0000", 196},
		{"#12C2E9", 38},
		{"#F72585", 198},
		{"", 15},
		{"12C2E9", 15},
		{"#12C2EZ", 15},
	}

	for _, tt := range tests {
		if got := ColorIndex(tt.hex); got != tt.want {
			t.Errorf("ColorIndex(%q) = %d, want %d", tt.hex, got, tt.want)
		}
	}
}
