package state

import (
	"image"
	"time"

	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/gfx"
	"kittyescape/pkg/engine/scene"
	"kittyescape/pkg/game/room"
)

// titleDismissDelay is how long the title card lingers before moving
// on by itself.
const titleDismissDelay = 4 * time.Second

// TitleCard shows the title art until a keystroke, a click or the
// auto-dismiss timer. Quitting here still proceeds to the game, so the
// player can always change their mind at the room itself.
type TitleCard struct {
	scene.Base

	canvas gfx.Canvas
	title  *gfx.Sprite
	clock  event.Clock
	timer  event.TimerID
}

// NewTitleCard loads and presents the title art centered on screen.
func NewTitleCard(canvas gfx.Canvas, window gfx.Window, assets gfx.Assets,
	clock event.Clock) (*TitleCard, error) {

	title, err := gfx.NewSprite(canvas, assets, "title",
		image.Pt(room.ScreenRect.Dx()/2, room.ScreenRect.Dy()/2), -0.5, -0.5)
	if err != nil {
		return nil, err
	}

	card := &TitleCard{
		canvas: canvas,
		title:  title,
		clock:  clock,
		timer:  clock.NewTimer(),
	}
	card.Init(window, card.Draw,
		card.HandleFullscreen,
		card.handleDismiss,
	)
	card.clock.SetTimer(card.timer, titleDismissDelay)
	return card, nil
}

// Draw paints the title art on black.
func (t *TitleCard) Draw() {
	t.canvas.Fill(room.ColorBlack)
	t.title.Draw()
}

// handleDismiss ends the card on any key, click, close request or the
// timer.
func (t *TitleCard) handleDismiss(ev event.Event) bool {
	switch ev.Type {
	case event.TypeKeyDown, event.TypeRune, event.TypeMouseDown, event.TypeQuit:
		t.Deactivate()
		return true
	case event.TypeTick:
		if ev.Timer != t.timer {
			return false
		}
		t.Deactivate()
		return true
	}
	return false
}

// Cleanup stops the auto-dismiss timer.
func (t *TitleCard) Cleanup() {
	t.clock.SetTimer(t.timer, 0)
}
