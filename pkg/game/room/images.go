package room

import (
	"fmt"
	"image"

	"kittyescape/pkg/engine/gfx"
)

// Images owns every drawable object in the room, interactive or not.
type Images struct {
	Chest     *Chest
	MiniChest *MiniChest

	Door *Door

	KeyPad *KeyPad

	LightSwitch     *LightSwitch
	MiniLightSwitch *LightSwitch

	Math     *gfx.Sprite
	MiniMath *gfx.Sprite

	Window     *gfx.Sprite
	MiniWindow *gfx.Sprite
	MaxiWindow *gfx.Sprite

	Zodiac     *gfx.Sprite
	MiniZodiac *gfx.Sprite
}

// NewImages loads everything up front so a missing asset fails at
// startup rather than mid-game.
func NewImages(canvas gfx.Canvas, assets gfx.Assets) (*Images, error) {
	images := &Images{}

	var err error
	if images.Chest, err = NewChest(canvas, assets); err != nil {
		return nil, fmt.Errorf("room images: %w", err)
	}
	if images.MiniChest, err = NewMiniChest(canvas, assets); err != nil {
		return nil, fmt.Errorf("room images: %w", err)
	}
	if images.Door, err = NewDoor(canvas, assets); err != nil {
		return nil, fmt.Errorf("room images: %w", err)
	}
	if images.KeyPad, err = NewKeyPad(canvas, assets); err != nil {
		return nil, fmt.Errorf("room images: %w", err)
	}
	if images.LightSwitch, err = NewLightSwitch(canvas, assets); err != nil {
		return nil, fmt.Errorf("room images: %w", err)
	}
	if images.MiniLightSwitch, err = NewMiniLightSwitch(canvas, assets); err != nil {
		return nil, fmt.Errorf("room images: %w", err)
	}

	w, h := ScreenRect.Dx(), ScreenRect.Dy()
	sprites := []struct {
		target         **gfx.Sprite
		name           string
		pos            image.Point
		shiftX, shiftY float64
	}{
		{&images.Math, "math", image.Point{}, 0, 0},
		{&images.MiniMath, "mini_math", BackWallRect.Min, 0, 0},
		{&images.Window, "window", image.Pt(w/4, h/2), 0, -1},
		{&images.MiniWindow, "mini_window", image.Pt(w/16, h/2), 0, -1},
		{&images.MaxiWindow, "maxi_window", image.Pt(0, h/4), 0, 0},
		{&images.Zodiac, "zodiac", image.Point{}, 0, 0},
		{&images.MiniZodiac, "mini_zodiac", image.Point{}, 0, 0},
	}
	for _, s := range sprites {
		if *s.target, err = gfx.NewSprite(canvas, assets, s.name, s.pos, s.shiftX, s.shiftY); err != nil {
			return nil, fmt.Errorf("room images: %w", err)
		}
	}
	return images, nil
}
