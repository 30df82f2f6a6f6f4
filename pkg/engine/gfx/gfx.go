// Package gfx defines the drawing and asset contracts the game logic
// needs from a renderer. The game never touches rendering internals;
// it fills, blits and measures through these interfaces, which keeps
// every puzzle and scene testable without a display.
package gfx

import (
	"image"
	"image/color"
)

// Image is a loaded bitmap. The concrete type belongs to the renderer;
// the game only needs dimensions for anchoring and hit testing.
type Image interface {
	Width() int
	Height() int
}

// Canvas is the 2D surface the game draws on. Drawing is retained: the
// game only repaints when something changed, and the renderer presents
// the surface every frame.
type Canvas interface {
	// Bounds returns the drawable area.
	Bounds() image.Rectangle

	// Fill floods the whole canvas with a color.
	Fill(c color.Color)

	// FillRect fills a rectangle.
	FillRect(r image.Rectangle, c color.Color)

	// StrokeRect outlines a rectangle with the given stroke width.
	StrokeRect(r image.Rectangle, width int, c color.Color)

	// StrokeLine draws a straight line from a to b.
	StrokeLine(a, b image.Point, width int, c color.Color)

	// FillPolygon fills the polygon spanned by pts, which must be
	// convex.
	FillPolygon(pts []image.Point, c color.Color)

	// Blit composites img with its top-left corner at pos.
	Blit(img Image, pos image.Point)

	// Text draws s at pos (top-left anchored) in the game face at the
	// given pixel size.
	Text(s string, pos image.Point, size float64, c color.Color)

	// TextSize measures s at the given pixel size without drawing it.
	TextSize(s string, size float64) (w, h float64)
}

// Assets resolves logical image names (no path, no extension) to
// loaded images.
type Assets interface {
	Load(name string) (Image, error)
}

// Window is the host window, as far as the scenes care: a fullscreen
// flag they can toggle.
type Window interface {
	Fullscreen() bool
	SetFullscreen(on bool)
}
