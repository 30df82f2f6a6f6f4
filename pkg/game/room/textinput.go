package room

import "kittyescape/pkg/engine/event"

// TextInput implements the shared keyboard semantics of the text-entry
// puzzles: backspace deletes, acceptable characters append up to Max,
// everything else is declined. The buffer itself lives in the owning
// widget and is reached through Get and Set, so owners can hook extra
// bookkeeping into writes (the keypad does).
type TextInput struct {
	Max int

	// ToChar filters and normalizes a typed rune, reporting whether it
	// may enter the buffer.
	ToChar func(r rune) (rune, bool)

	Get func() string
	Set func(s string)
}

// Feed offers a keyboard event to the buffer.
func (t *TextInput) Feed(ev event.Event) event.Response {
	switch ev.Type {
	case event.TypeKeyDown:
		if ev.Key != event.KeyBackspace {
			return event.NotConsumed
		}
		text := []rune(t.Get())
		if len(text) == 0 {
			return event.Consumed
		}
		t.Set(string(text[:len(text)-1]))
		return event.ConsumedRedraw

	case event.TypeRune:
		char, ok := t.ToChar(ev.Rune)
		if !ok {
			return event.NotConsumed
		}
		text := t.Get()
		if len([]rune(text)) >= t.Max {
			return event.Consumed
		}
		t.Set(text + string(char))
		return event.ConsumedRedraw

	default:
		return event.NotConsumed
	}
}
