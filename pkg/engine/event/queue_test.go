package event

import "testing"

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: TypeRune, Rune: 'a'})
	q.Push(Event{Type: TypeRune, Rune: 'b'})
	q.Push(Event{Type: TypeKeyDown, Key: KeyEscape})

	ev, ok := q.Pop()
	if !ok || ev.Rune != 'a' {
		t.Errorf("first Pop() = %v, %v, want rune 'a'", ev, ok)
	}
	ev, ok = q.Pop()
	if !ok || ev.Rune != 'b' {
		t.Errorf("second Pop() = %v, %v, want rune 'b'", ev, ok)
	}
	ev, ok = q.Pop()
	if !ok || ev.Key != KeyEscape {
		t.Errorf("third Pop() = %v, %v, want escape key", ev, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Errorf("Pop() on empty queue reported ok")
	}
}

func TestQueue_Clear(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: TypeQuit})
	q.Push(Event{Type: TypeTick, Timer: 1})
	q.Clear()

	if _, ok := q.Pop(); ok {
		t.Errorf("Pop() after Clear() reported ok")
	}
}
