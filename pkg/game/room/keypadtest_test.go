package room

import (
	"math/rand"
	"testing"
	"time"

	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/gfx/gfxtest"
)

type testHarness struct {
	keypad *KeyPad
	door   *Door
	clock  *gfxtest.Clock
	test   *KeyPadTest
}

// newTestHarness builds a keypad test over an already opened keypad.
func newTestHarness(t *testing.T, rng *rand.Rand) *testHarness {
	t.Helper()
	canvas := gfxtest.NewCanvas(800, 600)
	assets := gfxtest.NewAssets(100, 100)

	keypad, err := NewKeyPad(canvas, assets)
	if err != nil {
		t.Fatalf("NewKeyPad() error: %v", err)
	}
	door, err := NewDoor(canvas, assets)
	if err != nil {
		t.Fatalf("NewDoor() error: %v", err)
	}
	openKeyPad(t, keypad)

	clock := gfxtest.NewClock()
	return &testHarness{
		keypad: keypad,
		door:   door,
		clock:  clock,
		test:   NewKeyPadTest(keypad, door, rng, clock),
	}
}

// start kicks the idle test off with a throwaway event.
func (h *testHarness) start(t *testing.T) {
	t.Helper()
	if !h.test.Send(event.Event{Type: event.TypeMouseDown}) {
		t.Fatalf("Send(first event) = false, want true")
	}
	if !h.test.Active() {
		t.Fatalf("Active() after first event = false, want true")
	}
}

func (h *testHarness) tick(t *testing.T) {
	t.Helper()
	ids := h.clock.ActiveTimers()
	if len(ids) != 1 {
		t.Fatalf("ActiveTimers() = %v, want exactly one", ids)
	}
	if !h.test.Send(event.Event{Type: event.TypeTick, Timer: ids[0]}) {
		t.Fatalf("Send(tick) = false, want true")
	}
}

func (h *testHarness) answer(t *testing.T, digit rune) {
	t.Helper()
	if !h.test.Send(runeEvent(digit)) {
		t.Fatalf("Send(%q) = false, want true", digit)
	}
}

// repeatingDraws builds the scripted random draws for a run whose
// special question arrives at position 9: the position draw itself,
// then n copies of the (5, 3, +) question.
func repeatingDraws(n int) []int64 {
	draws := []int64{0}
	for i := 0; i < n; i++ {
		draws = append(draws, 5, 3, 0)
	}
	return draws
}

func TestKeyPadTest_FirstEventStarts(t *testing.T) {
	h := newTestHarness(t, rand.New(rand.NewSource(1)))
	h.start(t)

	if h.keypad.TextColor() != ColorRed {
		t.Errorf("TextColor() after start = %v, want red", h.keypad.TextColor())
	}
	ids := h.clock.ActiveTimers()
	if len(ids) != 1 {
		t.Fatalf("ActiveTimers() = %v, want exactly one", ids)
	}
	if got := h.clock.Periods[ids[0]]; got != 500*time.Millisecond {
		t.Errorf("tick period = %v, want 500ms", got)
	}
}

func TestKeyPadTest_FirstTickShowsQuestion(t *testing.T) {
	h := newTestHarness(t, scriptedRand(repeatingDraws(1)...))
	h.start(t)

	h.tick(t)
	if got := h.keypad.Text(); got != "3+2" {
		t.Errorf("Text() after first tick = %q, want %q", got, "3+2")
	}
}

func TestKeyPadTest_CorrectAnswerShowsOK(t *testing.T) {
	h := newTestHarness(t, scriptedRand(repeatingDraws(2)...))
	h.start(t)

	h.tick(t)
	h.answer(t, '5')
	h.tick(t)
	if got := h.keypad.Text(); got != "OK" {
		t.Errorf("Text() after correct answer = %q, want %q", got, "OK")
	}

	// The next beat moves on to a fresh question.
	h.tick(t)
	if got := h.keypad.Text(); got != "3+2" {
		t.Errorf("Text() after OK beat = %q, want a new question %q", got, "3+2")
	}
}

func TestKeyPadTest_WrongAnswerStopsTest(t *testing.T) {
	h := newTestHarness(t, scriptedRand(repeatingDraws(1)...))
	h.start(t)

	h.tick(t)
	h.answer(t, '9')
	h.tick(t)
	if got := h.keypad.Text(); got != "ERR" {
		t.Errorf("Text() after wrong answer = %q, want %q", got, "ERR")
	}

	// ERR holds for one beat, then the test tears down and re-locks
	// the keypad.
	h.tick(t)
	if h.test.Active() {
		t.Errorf("Active() after ERR beat = true, want false")
	}
	if h.keypad.Opened() {
		t.Errorf("Opened() after stop = true, want false")
	}
	if h.keypad.Text() != "" {
		t.Errorf("Text() after stop = %q, want empty", h.keypad.Text())
	}
	if h.door.Text() != "" {
		t.Errorf("door Text() after stop = %q, want empty", h.door.Text())
	}
	if ids := h.clock.ActiveTimers(); len(ids) != 0 {
		t.Errorf("ActiveTimers() after stop = %v, want none", ids)
	}
}

func TestKeyPadTest_TimeoutStopsTest(t *testing.T) {
	h := newTestHarness(t, scriptedRand(repeatingDraws(1)...))
	h.start(t)

	h.tick(t) // question appears
	h.tick(t) // one beat of grace
	h.tick(t) // timed out
	h.tick(t) // verdict rendered
	if got := h.keypad.Text(); got != "ERR" {
		t.Errorf("Text() after timeout = %q, want %q", got, "ERR")
	}
	h.tick(t) // teardown
	if h.test.Active() {
		t.Errorf("Active() after timeout teardown = true, want false")
	}
}

func TestKeyPadTest_ColorBlinksEachBeat(t *testing.T) {
	h := newTestHarness(t, scriptedRand(repeatingDraws(4)...))
	h.start(t)

	h.tick(t)
	first := h.keypad.TextColor()
	h.tick(t)
	second := h.keypad.TextColor()
	if first == second {
		t.Errorf("TextColor() did not change across beats: %v", first)
	}
}

func TestKeyPadTest_SpecialQuestionCompletes(t *testing.T) {
	// Position draw 0 places the special question after nine regular
	// ones.
	h := newTestHarness(t, scriptedRand(repeatingDraws(9)...))
	h.start(t)

	for i := 0; i < 9; i++ {
		h.tick(t)
		h.answer(t, '5')
		h.tick(t)
		if got := h.keypad.Text(); got != "OK" {
			t.Fatalf("question %d: Text() = %q, want %q", i+1, got, "OK")
		}
	}

	h.tick(t)
	if got := h.keypad.Text(); got != "1+1" {
		t.Fatalf("Text() at special position = %q, want %q", got, "1+1")
	}

	// The pad expects the deliberately wrong answer.
	h.answer(t, '3')
	h.tick(t)
	if !h.test.Completed() {
		t.Fatalf("Completed() = false, want true")
	}

	// Completion latches: further beats change nothing and never tear
	// down.
	h.tick(t)
	h.tick(t)
	if !h.test.Completed() || !h.test.Active() {
		t.Errorf("Completed(), Active() after extra beats = %v, %v, want true, true",
			h.test.Completed(), h.test.Active())
	}
	if got := h.keypad.Text(); got != "OK" {
		t.Errorf("Text() after completion = %q, want %q", got, "OK")
	}
}

func TestKeyPadTest_SpecialQuestionRightAnswerFails(t *testing.T) {
	h := newTestHarness(t, scriptedRand(repeatingDraws(9)...))
	h.start(t)

	for i := 0; i < 9; i++ {
		h.tick(t)
		h.answer(t, '5')
		h.tick(t)
	}
	h.tick(t)
	if got := h.keypad.Text(); got != "1+1" {
		t.Fatalf("Text() at special position = %q, want %q", got, "1+1")
	}

	// The arithmetically correct answer is graded wrong.
	h.answer(t, '2')
	h.tick(t)
	if got := h.keypad.Text(); got != "ERR" {
		t.Errorf("Text() after answering 2 = %q, want %q", got, "ERR")
	}
	if h.test.Completed() {
		t.Errorf("Completed() = true, want false")
	}
}

func TestKeyPadTest_CleanupKeepsState(t *testing.T) {
	h := newTestHarness(t, scriptedRand(repeatingDraws(1)...))
	h.start(t)
	h.tick(t)

	h.test.Cleanup()
	if ids := h.clock.ActiveTimers(); len(ids) != 0 {
		t.Errorf("ActiveTimers() after Cleanup() = %v, want none", ids)
	}
	if !h.keypad.Opened() {
		t.Errorf("Opened() after Cleanup() = false, want true")
	}
}
