package main

import "strconv"

// cubeLevels are the channel intensities of the xterm 6x6x6 colour cube.
var cubeLevels = [...]int{0, 95, 135, 175, 215, 255}

// ColorIndex maps a "#RRGGBB" colour to the nearest xterm-256 palette entry.
// Anything unparsable maps to white.
func ColorIndex(hex string) uint8 {
	if len(hex) != 7 || hex[0] != '#' {
		return 15
	}

	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 15
	}

	r := nearestLevel(int((rgb >> 16) & 0xff))
	g := nearestLevel(int((rgb >> 8) & 0xff))
	b := nearestLevel(int(rgb & 0xff))
	return uint8(16 + 36*r + 6*g + b)
}

func nearestLevel(v int) int {
	best := 0
	for i, level := range cubeLevels {
		if abs(v-level) < abs(v-cubeLevels[best]) {
			best = i
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
