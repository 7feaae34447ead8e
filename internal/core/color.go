package core

// Color is a palette entry shared by every drawing surface.
// Terminal hosts map it to ANSI 256-color codes, window hosts to RGBA.
type Color uint8

// Palette used by the playfield, labels and scoreboard.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// BandColors are the brick and scoreboard colors, top band first.
var BandColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan}
