package engine

// ScheduledEvent fires its action every IntervalMs of elapsed simulation
// time while running. Events are owned by a mode controller and torn down
// with it on game over or restart.
type ScheduledEvent struct {
	IntervalMs float64
	Repeats    bool

	action  func()
	running bool
	elapsed float64
}

// Running reports whether the event will still fire.
func (e *ScheduledEvent) Running() bool {
	return e.running
}

// Stop prevents further firings, including firings already due this tick.
// Idempotent.
func (e *ScheduledEvent) Stop() {
	e.running = false
}

// Scheduler advances a set of scheduled events on the fixed tick. Events
// fire in registration order; a tick spanning several intervals fires the
// action once per elapsed interval.
type Scheduler struct {
	events []*ScheduledEvent
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers a repeating event with the given interval.
// A non-positive interval is rejected and returns a stopped event.
func (s *Scheduler) Every(intervalMs float64, action func()) *ScheduledEvent {
	ev := &ScheduledEvent{
		IntervalMs: intervalMs,
		Repeats:    true,
		action:     action,
		running:    intervalMs > 0,
	}
	s.events = append(s.events, ev)
	return ev
}

// After registers a one-shot event firing once the interval elapses.
func (s *Scheduler) After(intervalMs float64, action func()) *ScheduledEvent {
	ev := s.Every(intervalMs, action)
	ev.Repeats = false
	return ev
}

// Advance adds elapsed simulation time and invokes every due action, in
// event registration order.
func (s *Scheduler) Advance(dtMs float64) {
	for _, ev := range s.events {
		if !ev.running {
			continue
		}
		ev.elapsed += dtMs
		for ev.elapsed >= ev.IntervalMs {
			ev.elapsed -= ev.IntervalMs
			ev.action()
			if !ev.Repeats {
				ev.running = false
				break
			}
			// The action may have stopped this or another event.
			if !ev.running {
				break
			}
		}
	}
}

// StopAll stops every registered event. Used at controller teardown so a
// discarded mode cannot fire into the next session.
func (s *Scheduler) StopAll() {
	for _, ev := range s.events {
		ev.Stop()
	}
}
