// Package event defines the discrete input and timer event model the
// scenes consume, together with the queue the main loop pumps them
// through and the clock that owns periodic timers.
package event

import (
	"image"
	"time"
)

// Type tags an Event with its source.
type Type int

const (
	// TypeNone is the zero value; it matches no handler.
	TypeNone Type = iota
	// TypeQuit is a window close request.
	TypeQuit
	// TypeKeyDown is a press of a non-character key (Key is set).
	TypeKeyDown
	// TypeRune is a press of a character-producing key (Rune is set).
	TypeRune
	// TypeMouseDown is a mouse button press (Button and Pos are set).
	TypeMouseDown
	// TypeTick is a timer firing (Timer is set).
	TypeTick
)

// Key identifies the non-character keys the game distinguishes.
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyEscape
)

// MouseButtonLeft is the only mouse button the game handles.
const MouseButtonLeft = 1

// TimerID identifies a periodic timer. Each state machine allocates
// its own handles from the Clock, so a tick can always be attributed
// to its owner without a shared registry.
type TimerID int

// Event is a single discrete input occurrence. Only the fields implied
// by Type are meaningful.
type Event struct {
	Type   Type
	Key    Key
	Rune   rune
	Button int
	Pos    image.Point
	Timer  TimerID
}

// Response is the three-valued result of offering an event to a
// consumer.
type Response int

const (
	// NotConsumed means the event is not relevant here; offer it to
	// the next handler.
	NotConsumed Response = iota
	// Consumed means the event was handled with no visible change.
	Consumed
	// ConsumedRedraw means the event was handled and the affected
	// widget must be redrawn.
	ConsumedRedraw
)

// IsConsumed reports whether the event was handled at all.
func (r Response) IsConsumed() bool {
	return r != NotConsumed
}

// Clock hands out timer handles and programs them. Setting a period of
// zero disables the timer. Implementations deliver expirations as
// TypeTick events carrying the handle.
type Clock interface {
	NewTimer() TimerID
	SetTimer(id TimerID, period time.Duration)
}
