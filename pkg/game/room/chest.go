package room

import (
	"image"
	"unicode"

	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/gfx"
)

// chestSecret is the combination that opens the chest. Matching it is
// what "opened" means, so deleting a character re-locks the chest.
const chestSecret = "AYP"

// chestBase is the drawable shared by the floor chest and its
// miniature in the default view: a closed and an opened sprite, plus
// the entered combination rendered on the closed lid.
type chestBase struct {
	canvas   gfx.Canvas
	closed   *gfx.Sprite
	opened   *gfx.Sprite
	charPos  []image.Point
	fontSize float64
	text     string
}

func newChestBase(canvas gfx.Canvas, assets gfx.Assets, closedName, openedName string,
	pos image.Point, charPos []image.Point, fontSize float64) (chestBase, error) {

	closed, err := gfx.NewSprite(canvas, assets, closedName, pos, -0.5, -1)
	if err != nil {
		return chestBase{}, err
	}
	opened, err := gfx.NewSprite(canvas, assets, openedName, pos, -0.5, -1)
	if err != nil {
		return chestBase{}, err
	}
	return chestBase{
		canvas:   canvas,
		closed:   closed,
		opened:   opened,
		charPos:  charPos,
		fontSize: fontSize,
	}, nil
}

// Opened reports whether the entered combination matches the secret.
func (c *chestBase) Opened() bool {
	return c.text == chestSecret
}

// Text returns the entered combination.
func (c *chestBase) Text() string {
	return c.text
}

// SetText replaces the entered combination.
func (c *chestBase) SetText(s string) {
	c.text = s
}

// Draw blits the sprite for the current state; on the closed chest the
// entered characters are painted onto the lid's dials.
func (c *chestBase) Draw() {
	if c.Opened() {
		c.opened.Draw()
		return
	}
	c.closed.Draw()
	for i, char := range []rune(c.text) {
		c.canvas.Text(string(char), c.charPos[i], c.fontSize, ColorBlack)
	}
}

// Contains hit-tests against the sprite for the current state.
func (c *chestBase) Contains(pos image.Point) bool {
	if c.Opened() {
		return c.opened.Contains(pos)
	}
	return c.closed.Contains(pos)
}

// Chest is the combination-locked chest on the floor.
type Chest struct {
	chestBase
	input TextInput
}

// NewChest builds the chest anchored bottom-center on the floor view.
func NewChest(canvas gfx.Canvas, assets gfx.Assets) (*Chest, error) {
	base, err := newChestBase(canvas, assets, "chest", "chest_opened",
		image.Pt(ScreenRect.Dx()/2, 2*ScreenRect.Dy()/3),
		[]image.Point{{X: 496, Y: 278}, {X: 509, Y: 278}, {X: 521, Y: 278}}, 15)
	if err != nil {
		return nil, err
	}

	chest := &Chest{chestBase: base}
	chest.input = TextInput{
		Max: len(chestSecret),
		ToChar: func(r rune) (rune, bool) {
			// Any printable character may be dialed in; letters are
			// uppercased to match the dials.
			if !unicode.IsPrint(r) {
				return 0, false
			}
			return unicode.ToUpper(r), true
		},
		Get: chest.Text,
		Set: chest.SetText,
	}
	return chest, nil
}

// Send offers a keyboard event to the combination lock. An opened
// chest no longer listens.
func (c *Chest) Send(ev event.Event) event.Response {
	if c.Opened() {
		return event.NotConsumed
	}
	return c.input.Feed(ev)
}

// MiniChest is the chest as seen in the default view. It takes no
// input of its own; the game mirrors the chest's text into it.
type MiniChest struct {
	chestBase
}

// NewMiniChest builds the miniature chest for the default view.
func NewMiniChest(canvas gfx.Canvas, assets gfx.Assets) (*MiniChest, error) {
	base, err := newChestBase(canvas, assets, "mini_chest", "mini_chest_opened",
		image.Pt(ScreenRect.Dx()/2, ScreenRect.Dy()*7/8),
		[]image.Point{{X: 501, Y: 430}, {X: 510, Y: 430}, {X: 519, Y: 430}}, 10)
	if err != nil {
		return nil, err
	}
	return &MiniChest{chestBase: base}, nil
}
