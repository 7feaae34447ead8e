package window

import (
	"image/color"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Background is the clear color of the window.
var Background = color.RGBA{A: 255}

// palette maps core.Color to RGBA, matching the xterm defaults the terminal
// host renders.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:           {R: 205, A: 255},
	core.ColorGreen:         {G: 205, A: 255},
	core.ColorYellow:        {R: 205, G: 205, A: 255},
	core.ColorBlue:          {B: 238, A: 255},
	core.ColorMagenta:       {R: 205, B: 205, A: 255},
	core.ColorCyan:          {G: 205, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightRed:     {R: 255, A: 255},
	core.ColorBrightGreen:   {G: 255, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 255, A: 255},
	core.ColorBrightBlue:    {R: 92, G: 92, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 255, B: 255, A: 255},
	core.ColorBrightCyan:    {G: 255, B: 255, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 135, A: 255},
	core.ColorGray:          {R: 138, G: 138, B: 138, A: 255},
	core.ColorBlack:         {A: 255},
}

// RGBA returns the window color for c. ColorDefault and unknown colors
// draw as white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorWhite]
}
