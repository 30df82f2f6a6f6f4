package ebiten

import (
	"time"

	"kittyescape/pkg/engine/event"
)

// clock implements event.Clock against wall time, delivering
// expirations as events on the app's queue. A timer fires at most once
// per update; if a frame stalls past several periods the deadline is
// re-anchored instead of bursting the owner with catch-up ticks.
type clock struct {
	queue  *event.Queue
	next   event.TimerID
	timers map[event.TimerID]*timerState
}

type timerState struct {
	period   time.Duration
	deadline time.Time
}

func newClock(queue *event.Queue) *clock {
	return &clock{
		queue:  queue,
		timers: make(map[event.TimerID]*timerState),
	}
}

func (c *clock) NewTimer() event.TimerID {
	c.next++
	return c.next
}

func (c *clock) SetTimer(id event.TimerID, period time.Duration) {
	if period == 0 {
		delete(c.timers, id)
		return
	}
	c.timers[id] = &timerState{
		period:   period,
		deadline: time.Now().Add(period),
	}
}

// advance pushes a tick for every timer whose deadline has passed and
// rolls its deadline forward.
func (c *clock) advance(now time.Time) {
	for id, timer := range c.timers {
		if now.Before(timer.deadline) {
			continue
		}
		c.queue.Push(event.Event{Type: event.TypeTick, Timer: id})
		timer.deadline = timer.deadline.Add(timer.period)
		if !now.Before(timer.deadline) {
			timer.deadline = now.Add(timer.period)
		}
	}
}
