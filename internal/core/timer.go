package core

import "time"

// StepPacer spaces simulation steps by a fixed wall-clock delay. It belongs to
// the orchestration layer; the engine itself never paces.
type StepPacer struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewStepPacer constructs a pacer with the given delay between steps.
func NewStepPacer(delay time.Duration) *StepPacer {
	p := &StepPacer{}
	p.SetDelay(delay)
	p.accumulator = p.delay
	return p
}

// SetDelay changes the spacing between steps. A zero or negative delay
// disables pacing so every poll may step.
func (p *StepPacer) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.delay = d
}

// ShouldStep reports whether enough wall time has passed to advance one step.
func (p *StepPacer) ShouldStep() bool {
	if p.delay == 0 {
		return true
	}
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.delay {
		p.accumulator -= p.delay
		return true
	}
	return false
}
