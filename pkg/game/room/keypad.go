package room

import (
	"image"
	"image/color"

	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/gfx"
)

// keypadSecret is the code that opens the keypad for the arithmetic
// test.
const keypadSecret = "9710"

// keypadDigits lays out the digits printed on the pad sprite.
var keypadDigits = []digitPos{
	{"1", image.Pt(417, 183)},
	{"2", image.Pt(487, 183)},
	{"3", image.Pt(557, 183)},
	{"4", image.Pt(417, 270)},
	{"5", image.Pt(487, 270)},
	{"6", image.Pt(557, 270)},
	{"7", image.Pt(417, 355)},
	{"8", image.Pt(487, 355)},
	{"9", image.Pt(557, 355)},
	{"0", image.Pt(487, 442)},
}

const (
	keypadFontSize    = 85
	keypadMinFontSize = 5
	keypadMaxLen      = 4
)

var keypadTextPos = image.Pt(410, 50)

// KeyPad is the numeric pad behind the door. The code typed to open it
// is tracked separately from the displayed text: once opened, the
// arithmetic test overwrites the display freely without disturbing the
// opened state, and writes are shrunk and centered to fit the box the
// opening code occupied.
type KeyPad struct {
	canvas gfx.Canvas
	pad    *gfx.Sprite
	input  TextInput

	value        string
	textPos      image.Point
	textSize     float64
	textColor    color.Color
	openingInput string
}

// NewKeyPad builds the keypad anchored top-center on its own view.
func NewKeyPad(canvas gfx.Canvas, assets gfx.Assets) (*KeyPad, error) {
	pad, err := gfx.NewSprite(canvas, assets, "keypad",
		image.Pt(ScreenRect.Dx()/2, 0), -0.5, 0)
	if err != nil {
		return nil, err
	}

	keypad := &KeyPad{canvas: canvas, pad: pad}
	keypad.input = TextInput{
		Max: keypadMaxLen,
		ToChar: func(r rune) (rune, bool) {
			if r < '0' || r > '9' {
				return 0, false
			}
			return r, true
		},
		Get: keypad.Text,
		Set: keypad.SetText,
	}
	keypad.Reset()
	return keypad, nil
}

// Reset restores the empty, unopened display.
func (k *KeyPad) Reset() {
	k.value = ""
	k.textPos = keypadTextPos
	k.textSize = keypadFontSize
	k.textColor = ColorBlack
	k.openingInput = ""
}

// Opened reports whether the opening code has been entered.
func (k *KeyPad) Opened() bool {
	return k.openingInput == keypadSecret
}

// Text returns the displayed text.
func (k *KeyPad) Text() string {
	return k.value
}

// SetText updates the displayed text. Before the keypad opens the text
// is the code being entered, so the opening input tracks it; after the
// reveal only the display changes.
func (k *KeyPad) SetText(s string) {
	if k.Opened() {
		k.setResizedText(s)
		return
	}
	k.value = s
	k.openingInput = s
}

// setResizedText shrinks the font until s fits the box the opening
// code occupied, then centers it there.
func (k *KeyPad) setResizedText(s string) {
	maxW, maxH := k.canvas.TextSize(k.openingInput, keypadFontSize)
	size := float64(keypadFontSize)
	w, h := k.canvas.TextSize(s, size)
	for (w > maxW || h > maxH) && size > keypadMinFontSize {
		size -= 10
		w, h = k.canvas.TextSize(s, size)
	}

	k.value = s
	k.textSize = size
	k.textPos = image.Pt(
		keypadTextPos.X+int((maxW-w)/2),
		keypadTextPos.Y+int((maxH-h)/2),
	)
}

// TextColor returns the display color.
func (k *KeyPad) TextColor() color.Color {
	return k.textColor
}

// SetTextColor changes the display color without touching the text.
func (k *KeyPad) SetTextColor(c color.Color) {
	k.textColor = c
}

// Send offers a keyboard event to the code entry. Once opened, raw
// keystrokes are no longer consumed here; they belong to the
// arithmetic test.
func (k *KeyPad) Send(ev event.Event) event.Response {
	if k.Opened() {
		return event.NotConsumed
	}
	return k.input.Feed(ev)
}

// Draw paints the pad, its printed digits and the display.
func (k *KeyPad) Draw() {
	k.pad.Draw()
	for _, dp := range keypadDigits {
		k.canvas.Text(dp.digit, dp.pos, keypadFontSize, ColorBlack)
	}
	k.canvas.Text(k.value, k.textPos, k.textSize, k.textColor)
}

// Contains hit-tests against the pad sprite.
func (k *KeyPad) Contains(pos image.Point) bool {
	return k.pad.Contains(pos)
}
