// Package gfxtest provides in-memory fakes of the gfx and event
// contracts so game logic can be exercised without a display.
package gfxtest

import (
	"image"
	"image/color"
	"time"

	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/gfx"
)

// Image is a fake bitmap with fixed dimensions.
type Image struct {
	W, H int
}

func (i Image) Width() int  { return i.W }
func (i Image) Height() int { return i.H }

// Canvas records drawing calls instead of rasterizing them. Fills
// counts whole-canvas floods, which scenes use for full redraws, so
// tests can assert how often a screen was repainted from scratch.
type Canvas struct {
	Rect     image.Rectangle
	Fills    int
	LastFill color.Color
	Blits    int
	Rects    int
	Lines    int
	Polygons int
	Texts    []string
}

// NewCanvas returns a recording canvas with the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{Rect: image.Rect(0, 0, w, h)}
}

func (c *Canvas) Bounds() image.Rectangle { return c.Rect }

func (c *Canvas) Fill(col color.Color) {
	c.Fills++
	c.LastFill = col
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) { c.Rects++ }

func (c *Canvas) StrokeRect(r image.Rectangle, width int, col color.Color) { c.Rects++ }

func (c *Canvas) StrokeLine(a, b image.Point, width int, col color.Color) { c.Lines++ }

func (c *Canvas) FillPolygon(pts []image.Point, col color.Color) { c.Polygons++ }

func (c *Canvas) Blit(img gfx.Image, pos image.Point) { c.Blits++ }

func (c *Canvas) Text(s string, pos image.Point, size float64, col color.Color) {
	c.Texts = append(c.Texts, s)
}

// TextSize approximates a monospace face: glyphs are 0.6 em wide and
// one em tall. Good enough for the fit-and-shrink logic under test.
func (c *Canvas) TextSize(s string, size float64) (w, h float64) {
	return size * 0.6 * float64(len([]rune(s))), size
}

// Assets serves the same fixed-size fake image for every name and
// records what was requested.
type Assets struct {
	Size   image.Point
	Loaded []string
}

// NewAssets returns fake assets whose images are all w by h.
func NewAssets(w, h int) *Assets {
	return &Assets{Size: image.Pt(w, h)}
}

func (a *Assets) Load(name string) (gfx.Image, error) {
	a.Loaded = append(a.Loaded, name)
	return Image{W: a.Size.X, H: a.Size.Y}, nil
}

// Window is a fake window that just stores the fullscreen flag.
type Window struct {
	Full bool
}

func (w *Window) Fullscreen() bool      { return w.Full }
func (w *Window) SetFullscreen(on bool) { w.Full = on }

// Clock is a fake event.Clock. It hands out sequential handles and
// records the last period programmed per handle; tests deliver ticks
// themselves by pushing TypeTick events.
type Clock struct {
	next    event.TimerID
	Periods map[event.TimerID]time.Duration
}

// NewClock returns an empty fake clock.
func NewClock() *Clock {
	return &Clock{Periods: make(map[event.TimerID]time.Duration)}
}

func (c *Clock) NewTimer() event.TimerID {
	c.next++
	return c.next
}

func (c *Clock) SetTimer(id event.TimerID, period time.Duration) {
	if period == 0 {
		delete(c.Periods, id)
		return
	}
	c.Periods[id] = period
}

// ActiveTimers returns the handles that currently have a nonzero
// period.
func (c *Clock) ActiveTimers() []event.TimerID {
	var ids []event.TimerID
	for id := range c.Periods {
		ids = append(ids, id)
	}
	return ids
}
