package room

import (
	"math/rand"
	"time"

	"kittyescape/pkg/engine/event"
)

// testTickPeriod is how often the arithmetic test advances: questions
// appear, time out and resolve on this beat, and the display color
// blinks with it.
const testTickPeriod = 500 * time.Millisecond

// The winning special question is slipped in at a random position in
// this range (counting questions asked so far).
const (
	specialPositionMin = 9
	specialPositionMax = 14
)

// KeyPadTest drives the timed arithmetic challenge on the opened
// keypad. It owns a periodic timer handle and consumes digit
// keystrokes while running. Answering the special question with its
// deliberately wrong answer completes the test for good; any error
// stops the test and re-locks the keypad.
type KeyPadTest struct {
	keypad *KeyPad
	door   *Door
	rng    *rand.Rand
	clock  event.Clock
	tick   event.TimerID

	active          bool
	question        *question
	specialPosition int
	numAsked        int
}

// NewKeyPadTest wires the test to the keypad it runs on and the door
// display it mirrors when stopping.
func NewKeyPadTest(keypad *KeyPad, door *Door, rng *rand.Rand, clock event.Clock) *KeyPadTest {
	t := &KeyPadTest{
		keypad: keypad,
		door:   door,
		rng:    rng,
		clock:  clock,
		tick:   clock.NewTimer(),
	}
	t.initState()
	return t
}

func (t *KeyPadTest) initState() {
	t.active = false
	t.question = nil
	t.specialPosition = specialPositionMin +
		t.rng.Intn(specialPositionMax-specialPositionMin+1)
	t.numAsked = 0
}

// Active reports whether the test is running.
func (t *KeyPadTest) Active() bool {
	return t.active
}

// Completed reports whether the special question was answered with its
// expected wrong answer. Once true it stays true: the completion check
// short-circuits every stop path.
func (t *KeyPadTest) Completed() bool {
	return t.question != nil &&
		t.question.value == specialQuestion &&
		t.keypad.Text() == QuestionOK.display()
}

// Start begins the test: blinking red text and the periodic tick.
func (t *KeyPadTest) Start() {
	if t.active {
		panic("keypad test already active")
	}
	t.active = true
	t.keypad.SetTextColor(ColorRed)
	t.clock.SetTimer(t.tick, testTickPeriod)
}

// Stop tears the test down, re-locks the keypad and syncs the door
// display. The special question position is re-rolled for the next
// attempt.
func (t *KeyPadTest) Stop() {
	if !t.active {
		panic("keypad test not active")
	}
	t.initState()
	t.keypad.Reset()
	t.door.SetText(t.keypad.Text())
	t.clock.SetTimer(t.tick, 0)
}

// Send consumes timer ticks and digit keystrokes while the test runs.
// The first event offered to an idle test starts it.
func (t *KeyPadTest) Send(ev event.Event) bool {
	if !t.active {
		t.Start()
		return true
	}

	switch {
	case ev.Type == event.TypeTick && ev.Timer == t.tick:
		t.handleTick()
		return true
	case ev.Type == event.TypeRune && ev.Rune >= '0' && ev.Rune <= '9':
		if t.question != nil {
			t.question.solve(ev.Rune)
		}
		return true
	}
	return false
}

func (t *KeyPadTest) handleTick() {
	switch {
	case t.keypad.Text() == QuestionErr.display():
		// The error verdict has been on screen for a full beat.
		t.Stop()
		return
	case t.Completed():
		// Hold the winning OK on screen forever.
		return
	case t.question == nil || t.keypad.Text() == QuestionOK.display():
		t.nextQuestion()
	case t.question.state != QuestionActive:
		t.keypad.SetText(t.question.state.display())
	default:
		t.question.tick()
	}
	t.flipTextColor()
}

func (t *KeyPadTest) nextQuestion() {
	value := specialQuestion
	if t.numAsked != t.specialPosition {
		value = generateQuestion(t.rng)
	}
	t.question = &question{value: value}
	t.keypad.SetText(value.display())
	t.numAsked++
}

// flipTextColor blinks the display between red and black each beat.
func (t *KeyPadTest) flipTextColor() {
	if t.keypad.TextColor() == ColorBlack {
		t.keypad.SetTextColor(ColorRed)
	} else {
		t.keypad.SetTextColor(ColorBlack)
	}
}

// Cleanup releases the test's timer without resetting the keypad, so a
// completed run keeps its state for the ending.
func (t *KeyPadTest) Cleanup() {
	t.clock.SetTimer(t.tick, 0)
}
