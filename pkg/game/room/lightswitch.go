package room

import (
	"image"

	"kittyescape/pkg/engine/gfx"
)

// LightSwitch toggles the room lighting. The on and off positions use
// different sprites, so the hit area follows the current state.
type LightSwitch struct {
	On  bool
	off *gfx.Sprite
	on  *gfx.Sprite
}

func newLightSwitch(canvas gfx.Canvas, assets gfx.Assets, offName, onName string,
	pos image.Point) (*LightSwitch, error) {

	off, err := gfx.NewSprite(canvas, assets, offName, pos, -0.5, -1)
	if err != nil {
		return nil, err
	}
	on, err := gfx.NewSprite(canvas, assets, onName, pos, -0.5, -1)
	if err != nil {
		return nil, err
	}
	return &LightSwitch{On: true, off: off, on: on}, nil
}

// NewLightSwitch builds the full-size switch on the right wall.
func NewLightSwitch(canvas gfx.Canvas, assets gfx.Assets) (*LightSwitch, error) {
	return newLightSwitch(canvas, assets, "light_switch_off", "light_switch_on",
		image.Pt(ScreenRect.Dx()/2, ScreenRect.Dy()/2))
}

// NewMiniLightSwitch builds the miniature switch for the default view.
func NewMiniLightSwitch(canvas gfx.Canvas, assets gfx.Assets) (*LightSwitch, error) {
	return newLightSwitch(canvas, assets, "mini_light_switch_off", "mini_light_switch_on",
		image.Pt(ScreenRect.Dx()*7/8, ScreenRect.Dy()/2))
}

// Draw blits the sprite for the current position.
func (s *LightSwitch) Draw() {
	if s.On {
		s.on.Draw()
		return
	}
	s.off.Draw()
}

// Contains hit-tests against the sprite for the current position.
func (s *LightSwitch) Contains(pos image.Point) bool {
	if s.On {
		return s.on.Contains(pos)
	}
	return s.off.Contains(pos)
}
