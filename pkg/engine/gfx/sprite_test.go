package gfx_test

import (
	"image"
	"testing"

	"kittyescape/pkg/engine/gfx"
	"kittyescape/pkg/engine/gfx/gfxtest"
)

func newSprite(t *testing.T, pos image.Point, shiftX, shiftY float64) (*gfx.Sprite, *gfxtest.Canvas) {
	t.Helper()
	canvas := gfxtest.NewCanvas(800, 600)
	assets := gfxtest.NewAssets(100, 50)
	sprite, err := gfx.NewSprite(canvas, assets, "door", pos, shiftX, shiftY)
	if err != nil {
		t.Fatalf("NewSprite() error: %v", err)
	}
	return sprite, canvas
}

func TestSprite_AnchorShift(t *testing.T) {
	tests := []struct {
		name           string
		shiftX, shiftY float64
		want           image.Rectangle
	}{
		{"top-left anchor", 0, 0, image.Rect(400, 300, 500, 350)},
		{"bottom-center anchor", -0.5, -1, image.Rect(350, 250, 450, 300)},
		{"center anchor", -0.5, -0.5, image.Rect(350, 275, 450, 325)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sprite, _ := newSprite(t, image.Pt(400, 300), tc.shiftX, tc.shiftY)
			if got := sprite.Rect(); got != tc.want {
				t.Errorf("Rect() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSprite_Contains(t *testing.T) {
	sprite, _ := newSprite(t, image.Pt(400, 300), 0, 0)

	if !sprite.Contains(image.Pt(450, 325)) {
		t.Errorf("Contains(inside point) = false, want true")
	}
	if sprite.Contains(image.Pt(399, 325)) {
		t.Errorf("Contains(outside point) = true, want false")
	}
}

func TestSprite_Draw(t *testing.T) {
	sprite, canvas := newSprite(t, image.Pt(400, 300), 0, 0)

	sprite.Draw()
	if canvas.Blits != 1 {
		t.Errorf("Blits after Draw() = %d, want 1", canvas.Blits)
	}
}
