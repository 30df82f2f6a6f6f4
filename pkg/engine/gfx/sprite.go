package gfx

import "image"

// Sprite is a drawable, hit-testable placement of an image on a
// canvas. The anchor is expressed as shift factors of the image's own
// size, so a shift of (-0.5, -1) puts the image's bottom-center at the
// placement position.
type Sprite struct {
	canvas Canvas
	img    Image
	rect   image.Rectangle
}

// NewSprite loads name from assets and places it at pos, shifted by
// the given factors of its dimensions.
func NewSprite(canvas Canvas, assets Assets, name string, pos image.Point, shiftX, shiftY float64) (*Sprite, error) {
	img, err := assets.Load(name)
	if err != nil {
		return nil, err
	}

	w, h := img.Width(), img.Height()
	topLeft := image.Pt(
		pos.X+int(shiftX*float64(w)),
		pos.Y+int(shiftY*float64(h)),
	)
	return &Sprite{
		canvas: canvas,
		img:    img,
		rect:   image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(w, h))},
	}, nil
}

// Draw blits the sprite onto its canvas.
func (s *Sprite) Draw() {
	s.canvas.Blit(s.img, s.rect.Min)
}

// Contains reports whether pos lies inside the sprite's footprint.
func (s *Sprite) Contains(pos image.Point) bool {
	return pos.In(s.rect)
}

// Rect returns the sprite's placement rectangle.
func (s *Sprite) Rect() image.Rectangle {
	return s.rect
}
