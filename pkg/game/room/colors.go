package room

import "image/color"

// Palette shared by the room views and the ending sequence.
var (
	ColorBlack     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorGrey      = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	ColorDarkGrey  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	ColorDarkGrey2 = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	ColorRed       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorBlue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)
