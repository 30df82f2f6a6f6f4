package room

import (
	"image"

	"kittyescape/pkg/engine/gfx"
)

// doorGapRect is the sliver of wall that hints at the hidden door
// before it is revealed.
var doorGapRect = image.Rect(
	DoorRect.Max.X-5, DoorRect.Min.Y-2,
	DoorRect.Max.X+5, DoorRect.Max.Y,
)

// digitPos pairs a printed digit with its position on a pad. Kept as a
// slice so draw order is stable.
type digitPos struct {
	digit string
	pos   image.Point
}

// doorDigits is the small digit pad printed beside the revealed door.
var doorDigits = []digitPos{
	{"1", image.Pt(570, 343)},
	{"2", image.Pt(580, 343)},
	{"3", image.Pt(589, 343)},
	{"4", image.Pt(569, 355)},
	{"5", image.Pt(579, 355)},
	{"6", image.Pt(587, 355)},
	{"7", image.Pt(569, 367)},
	{"8", image.Pt(579, 367)},
	{"9", image.Pt(587, 367)},
	{"0", image.Pt(579, 378)},
}

const doorFontSize = 10

var doorTextPos = image.Pt(570, 325)

// Door is the hidden door on the front wall. Until revealed it draws
// as a faint outline whose shade tracks the room lighting; once
// revealed it draws the door sprite with its digit pad and whatever
// the keypad entry mirrored onto it.
type Door struct {
	canvas gfx.Canvas
	door   *gfx.Sprite

	Revealed bool
	LightOn  bool
	text     string
}

// NewDoor builds the door anchored bottom-center on the front wall.
func NewDoor(canvas gfx.Canvas, assets gfx.Assets) (*Door, error) {
	door, err := gfx.NewSprite(canvas, assets, "door",
		image.Pt(ScreenRect.Dx()/2, ScreenRect.Dy()), -0.5, -1)
	if err != nil {
		return nil, err
	}
	return &Door{canvas: canvas, door: door, LightOn: true}, nil
}

// Text returns the mirrored keypad entry.
func (d *Door) Text() string {
	return d.text
}

// SetText replaces the mirrored keypad entry.
func (d *Door) SetText(s string) {
	d.text = s
}

// Draw paints the door for its current state.
func (d *Door) Draw() {
	if d.Revealed {
		d.door.Draw()
		for _, dp := range doorDigits {
			d.canvas.Text(dp.digit, dp.pos, doorFontSize, ColorBlack)
		}
		d.canvas.Text(d.text, doorTextPos, doorFontSize, ColorBlack)
		return
	}

	gapColor := ColorDarkGrey
	if !d.LightOn {
		gapColor = ColorDarkGrey2
	}
	d.canvas.StrokeRect(DoorRect, 5, gapColor)
	d.canvas.FillRect(doorGapRect, gapColor)
}

// Contains hit-tests the gap before the reveal and the door sprite
// after it.
func (d *Door) Contains(pos image.Point) bool {
	if d.Revealed {
		return d.door.Contains(pos)
	}
	return pos.In(doorGapRect)
}
