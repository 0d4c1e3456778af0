package core

import "strconv"

// Color is the foreground color of a screen cell, stored as its ANSI
// 256-color code. The zero value means the terminal default; renderers
// need no lookup table, the code goes straight into the escape
// sequence.
type Color uint8

// ANSI returns the color code as a string for terminal styling, or ""
// for the terminal default.
func (c Color) ANSI() string {
	if c == ColorDefault {
		return ""
	}
	return strconv.Itoa(int(c))
}

// The palette covers the 2048 tile ramp (2 and 4 muted, 8 through 2048
// stepping warm to cool, bright variants past the target) plus the HUD
// accents.
const (
	ColorDefault Color = 0

	// Base colors, used by the light-theme tile ramp.
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	// Bright variants, used by the dark-theme ramp and overflow tiles.
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15

	// Extended codes for the 8-tile and muted HUD text.
	ColorOrange Color = 208
	ColorGray   Color = 245
)
