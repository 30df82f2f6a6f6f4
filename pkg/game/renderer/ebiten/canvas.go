// Package ebiten implements the gfx and event contracts on top of the
// Ebiten 2D engine, and hosts the application loop that sequences the
// game's scenes.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"kittyescape/pkg/engine/gfx"
)

// whiteSubImage is the 1x1 source for solid triangle fills.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas is an offscreen surface the scenes paint onto. The app blits
// it to the window every frame, so scenes only repaint on change.
type Canvas struct {
	buffer *ebiten.Image
	fonts  *fontCache
}

// NewCanvas allocates a surface of the given logical size.
func NewCanvas(bounds image.Rectangle) *Canvas {
	return &Canvas{
		buffer: ebiten.NewImage(bounds.Dx(), bounds.Dy()),
		fonts:  newFontCache(),
	}
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.buffer.Bounds()
}

func (c *Canvas) Fill(col color.Color) {
	c.buffer.Fill(col)
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	vector.DrawFilledRect(c.buffer,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		col, false)
}

func (c *Canvas) StrokeRect(r image.Rectangle, width int, col color.Color) {
	vector.StrokeRect(c.buffer,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		float32(width), col, false)
}

func (c *Canvas) StrokeLine(a, b image.Point, width int, col color.Color) {
	vector.StrokeLine(c.buffer,
		float32(a.X), float32(a.Y),
		float32(b.X), float32(b.Y),
		float32(width), col, false)
}

// FillPolygon triangulates the convex polygon as a fan around its
// first vertex.
func (c *Canvas) FillPolygon(pts []image.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}

	r, g, b, a := col.RGBA()
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}

	indices := make([]uint16, 0, (len(pts)-2)*3)
	for i := 2; i < len(pts); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}
	c.buffer.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (c *Canvas) Blit(img gfx.Image, pos image.Point) {
	bitmap, ok := img.(*Bitmap)
	if !ok {
		panic("ebiten canvas can only blit ebiten bitmaps")
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	c.buffer.DrawImage(bitmap.img, op)
}

func (c *Canvas) Text(s string, pos image.Point, size float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.buffer, s, c.fonts.face(size), op)
}

func (c *Canvas) TextSize(s string, size float64) (w, h float64) {
	return text.Measure(s, c.fonts.face(size), 0)
}
