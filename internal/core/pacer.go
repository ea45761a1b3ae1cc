package core

import "time"

// Pacer is a cooperative frame limiter. After each frame's work the caller
// invokes Wait, which sleeps for whatever remains of the frame budget.
type Pacer struct {
	budget time.Duration
	last   time.Time
	now    func() time.Time
	sleep  func(time.Duration)
}

// NewPacer creates a pacer for the given tick rate (ticks per second).
func NewPacer(tickRate int) *Pacer {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Pacer{
		budget: time.Second / time.Duration(tickRate),
		last:   time.Now(),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Budget returns the per-frame time budget.
func (p *Pacer) Budget() time.Duration {
	return p.budget
}

// Wait blocks for the remainder of the frame budget, measured from the
// previous Wait, and returns how long it slept.
func (p *Pacer) Wait() time.Duration {
	elapsed := p.now().Sub(p.last)
	var slept time.Duration
	if elapsed < p.budget {
		slept = p.budget - elapsed
		p.sleep(slept)
	}
	p.last = p.now()
	return slept
}
