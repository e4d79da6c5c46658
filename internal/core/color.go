package core

// Color is a logical foreground color for a screen cell. The platform
// layer decides how each one is drawn on the actual terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
