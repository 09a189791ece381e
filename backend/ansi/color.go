package ansi

import (
	"github.com/muesli/termenv"
)

// Mode selects the color encoding used when emitting SGR sequences
type Mode uint8

const (
	// Mode256 downsamples RGB styles to the xterm 256-color palette
	Mode256 Mode = iota
	// ModeTrueColor emits 24-bit SGR sequences directly
	ModeTrueColor
)

// DetectMode inspects the environment (COLORTERM, TERM) and returns the
// richest mode the terminal advertises
func DetectMode() Mode {
	if termenv.EnvColorProfile() == termenv.TrueColor {
		return ModeTrueColor
	}
	return Mode256
}

// rgbTo256 maps a 24-bit color to the nearest xterm 256-color index.
// Uses the 6x6x6 color cube (16-231) and the grayscale ramp (232-255).
func rgbTo256(r, g, b uint8) uint8 {
	// Grayscale ramp gives finer steps for near-gray colors
	if isGrayish(r, g, b) {
		avg := (int(r) + int(g) + int(b)) / 3
		if avg < 8 {
			return 16 // cube black
		}
		if avg > 238 {
			return 231 // cube white
		}
		return uint8(232 + (avg-8)/10)
	}
	return 16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b)
}

// isGrayish reports whether all channels are within a small band of each
// other, where the grayscale ramp beats the color cube
func isGrayish(r, g, b uint8) bool {
	max, min := r, r
	if g > max {
		max = g
	}
	if g < min {
		min = g
	}
	if b > max {
		max = b
	}
	if b < min {
		min = b
	}
	return max-min < 24
}

// cubeIndex maps one channel onto the 6-level cube axis.
// Cube levels are 0, 95, 135, 175, 215, 255.
func cubeIndex(v uint8) uint8 {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return uint8((int(v) - 35) / 40)
}
