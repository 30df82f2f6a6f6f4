package state

import (
	"image"
	"image/color"
	"time"

	"github.com/leonelquinteros/gotext"

	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/gfx"
	"kittyescape/pkg/engine/scene"
	"kittyescape/pkg/game/room"
)

// endingFrame milestones of the escape animation. Each beat of the
// ending timer advances the frame counter by one; a milestone holds
// until the counter reaches the next one.
type endingFrame int

const (
	frameKeypad     endingFrame = 0
	frameKeypadBlue endingFrame = 1
	frameDoor       endingFrame = 2
	frameCongrats   endingFrame = 4
	frameDetail     endingFrame = 5
	frameWarning    endingFrame = 7
	frameFin        endingFrame = 9
)

const (
	endingTickPeriod = 1250 * time.Millisecond
	endingFontSize   = 100
)

// openDoorPolygon is the door swung open toward the player, drawn as a
// dark silhouette over the blue doorway.
var openDoorPolygon = []image.Point{
	room.DoorRect.Min,
	room.DoorRect.Min.Add(image.Pt(20, 20)),
	image.Pt(room.DoorRect.Min.X+20, room.DoorRect.Max.Y-10),
	image.Pt(room.DoorRect.Min.X, room.DoorRect.Max.Y),
}

// Ending is the scripted escape animation. It is purely timer-driven;
// the only input it accepts is the generic quit and fullscreen keys.
type Ending struct {
	scene.Base

	canvas    gfx.Canvas
	wallColor color.Color
	keypad    *room.KeyPad
	clock     event.Clock
	tick      event.TimerID
	frame     endingFrame
}

// NewEnding starts the animation on the winning keypad display.
func NewEnding(canvas gfx.Canvas, window gfx.Window, wallColor color.Color,
	keypad *room.KeyPad, clock event.Clock) *Ending {

	ending := &Ending{
		canvas:    canvas,
		wallColor: wallColor,
		keypad:    keypad,
		clock:     clock,
		tick:      clock.NewTimer(),
	}
	ending.Init(window, ending.Draw,
		ending.handleTick,
		ending.HandleQuit,
		ending.HandleFullscreen,
	)
	ending.clock.SetTimer(ending.tick, endingTickPeriod)
	return ending
}

// Frame returns the current frame counter.
func (e *Ending) Frame() int {
	return int(e.frame)
}

// Draw renders the milestone the frame counter has reached.
func (e *Ending) Draw() {
	switch {
	case e.frame <= frameKeypadBlue:
		e.canvas.Fill(room.ColorDarkGrey2)
		e.keypad.Draw()
	case e.frame < frameCongrats:
		e.canvas.Fill(e.wallColor)
		e.canvas.FillRect(room.DoorRect, room.ColorBlue)
		e.canvas.FillPolygon(openDoorPolygon, room.ColorDarkGrey2)
		e.canvas.StrokeRect(room.DoorRect, 5, room.ColorBlack)
	default:
		e.canvas.Fill(room.ColorBlue)
		e.renderCentered(gotext.Get("Congratulations"),
			image.Pt(room.ScreenRect.Dx()/2, room.ScreenRect.Dy()/4))
		if e.frame >= frameDetail {
			e.renderCentered(gotext.Get("you escaped"),
				image.Pt(room.ScreenRect.Dx()/2, room.ScreenRect.Dy()/2))
		}
		if e.frame >= frameWarning {
			e.renderCentered(gotext.Get("for now..."),
				image.Pt(room.ScreenRect.Dx()/2, 3*room.ScreenRect.Dy()/4))
		}
	}
}

func (e *Ending) renderCentered(s string, center image.Point) {
	w, h := e.canvas.TextSize(s, endingFontSize)
	pos := image.Pt(center.X-int(w/2), center.Y-int(h/2))
	e.canvas.Text(s, pos, endingFontSize, room.ColorBlack)
}

func (e *Ending) handleTick(ev event.Event) bool {
	if ev.Type != event.TypeTick || ev.Timer != e.tick {
		return false
	}
	e.frame++
	if e.frame == frameFin {
		e.Deactivate()
		return true
	}
	if e.frame == frameKeypadBlue {
		e.keypad.SetTextColor(room.ColorBlue)
	}
	e.Draw()
	return true
}

// Cleanup stops the animation timer.
func (e *Ending) Cleanup() {
	e.clock.SetTimer(e.tick, 0)
}
