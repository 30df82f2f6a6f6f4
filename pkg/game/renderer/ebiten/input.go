package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"kittyescape/pkg/engine/event"
)

// pollInput translates this frame's Ebiten input state into discrete
// events on the queue. Character keys arrive through the input-chars
// buffer so layouts and modifiers resolve to the runes the puzzles
// expect; the few non-character keys are polled individually.
func (a *App) pollInput() {
	if ebiten.IsWindowBeingClosed() {
		a.queue.Push(event.Event{Type: event.TypeQuit})
	}

	a.runeBuf = ebiten.AppendInputChars(a.runeBuf[:0])
	for _, r := range a.runeBuf {
		a.queue.Push(event.Event{Type: event.TypeRune, Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		a.queue.Push(event.Event{Type: event.TypeKeyDown, Key: event.KeyBackspace})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.queue.Push(event.Event{Type: event.TypeKeyDown, Key: event.KeyEscape})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.queue.Push(event.Event{
			Type:   event.TypeMouseDown,
			Button: event.MouseButtonLeft,
			Pos:    image.Pt(x, y),
		})
	}
}
