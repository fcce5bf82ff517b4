package core

import "strconv"

// Color is a foreground color for a screen cell: an ANSI 256-color code,
// or ColorDefault for the terminal's own foreground.
type Color int16

// Palette used by the portfolio sections.
const (
	ColorDefault Color = -1
	ColorWhite   Color = 15
	ColorPurple  Color = 99
	ColorIndigo  Color = 63
	ColorPink    Color = 205
	ColorTeal    Color = 37
	ColorBlue    Color = 33
	ColorGreen   Color = 42
	ColorOrange  Color = 208
	ColorRed     Color = 196
	ColorGray    Color = 245
	ColorDim     Color = 240
)

// grayscale ramp bounds in the 256-color table.
const (
	grayDark  = 232
	grayLight = 255
)

// Fade returns a grayscale color for an opacity in [0, 1]: 1 is the
// brightest gray, 0 fades into the dark background.
func Fade(opacity float64) Color {
	opacity = Clamp(opacity, 0, 1)
	return Color(grayDark + int(opacity*float64(grayLight-grayDark)+0.5))
}

// Code returns the ANSI code as a string, or "" for ColorDefault.
func (c Color) Code() string {
	if c < 0 {
		return ""
	}
	return strconv.Itoa(int(c))
}
