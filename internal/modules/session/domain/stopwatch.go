package domain

import "time"

// Stopwatch accumulates running time across start/stop cycles. The zero
// value is stopped at zero.
type Stopwatch struct {
	accumulated time.Duration
	startedAt   time.Time
	running     bool
}

func (w Stopwatch) Running() bool { return w.running }

func (w Stopwatch) Start(now time.Time) Stopwatch {
	if w.running {
		return w
	}
	w.startedAt = now
	w.running = true
	return w
}

func (w Stopwatch) Stop(now time.Time) Stopwatch {
	if !w.running {
		return w
	}
	w.accumulated = w.Elapsed(now)
	w.running = false
	w.startedAt = time.Time{}
	return w
}

func (w Stopwatch) Reset() Stopwatch { return Stopwatch{} }

func (w Stopwatch) Elapsed(now time.Time) time.Duration {
	if !w.running {
		return w.accumulated
	}
	run := now.Sub(w.startedAt)
	if run < 0 {
		run = 0
	}
	return w.accumulated + run
}
