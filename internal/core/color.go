package core

// Color is a foreground color for a screen cell, mapped to ANSI codes by the
// platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorHighlight // selected menu row
)
