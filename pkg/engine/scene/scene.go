// Package scene provides the event-driven scene base the game, ending
// and title screens share: an active flag, an ordered handler chain
// and the generic quit and fullscreen handlers every scene gets.
package scene

import (
	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/gfx"
)

// Scene is what the main loop runs: a drawable event consumer with a
// lifetime.
type Scene interface {
	// Send offers an event to the scene, reporting whether it was
	// consumed.
	Send(ev event.Event) bool

	// Active reports whether the scene still wants events.
	Active() bool

	// Cleanup releases scene resources such as timers. Called once,
	// after the scene deactivates.
	Cleanup()
}

// Handler consumes an event, returning true if it was handled.
type Handler func(ev event.Event) bool

// Base carries the state common to all scenes. Concrete scenes embed
// it and register their handlers at construction time; handlers run in
// registration order and the first consumer wins, so ordering is part
// of a scene's behavior.
type Base struct {
	window   gfx.Window
	active   bool
	handlers []Handler
	draw     func()
}

// Init wires the scene and paints its first frame.
func (b *Base) Init(window gfx.Window, draw func(), handlers ...Handler) {
	b.window = window
	b.active = true
	b.draw = draw
	b.handlers = handlers
	draw()
}

// Active reports whether the scene still wants events.
func (b *Base) Active() bool {
	return b.active
}

// Deactivate marks the scene finished. The pump stops delivering to it
// after the current event.
func (b *Base) Deactivate() {
	b.active = false
}

// Send offers ev to each handler in order until one consumes it.
func (b *Base) Send(ev event.Event) bool {
	for _, handle := range b.handlers {
		if handle(ev) {
			return true
		}
	}
	return false
}

// Cleanup is a no-op; scenes owning timers override it.
func (b *Base) Cleanup() {}

// HandleQuit consumes a window close request or the q key and
// deactivates the scene.
func (b *Base) HandleQuit(ev event.Event) bool {
	isQuitKey := ev.Type == event.TypeRune && ev.Rune == 'q'
	if ev.Type != event.TypeQuit && !isQuitKey {
		return false
	}
	b.Deactivate()
	return true
}

// HandleFullscreen toggles fullscreen on the f key and repaints, since
// the mode switch can clobber the window contents.
func (b *Base) HandleFullscreen(ev event.Event) bool {
	if ev.Type != event.TypeRune || ev.Rune != 'f' {
		return false
	}
	b.window.SetFullscreen(!b.window.Fullscreen())
	b.draw()
	return true
}
