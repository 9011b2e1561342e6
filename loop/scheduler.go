package loop

// Updater runs once per logic tick with the logic clock and the tick length.
type Updater interface {
	Update(now, dt float64)
}

// FixedUpdater runs on the fixed physics cadence with the physics clock.
type FixedUpdater interface {
	FixedUpdate(now float64)
}

// LateUpdater runs once per frame after all logic and physics ticks.
type LateUpdater interface {
	LateUpdate()
}

const (
	DefaultFixedStep     = 1.0 / 50.0
	DefaultMaxFixedSteps = 8
)

// Scheduler drives hooks at three cadences from a single Advance call:
// update hooks once per call, fixed hooks zero or more times from an
// accumulator, then late hooks once. Hooks run in registration order.
type Scheduler struct {
	FixedStep     float64
	MaxFixedSteps int

	now      float64
	fixedNow float64
	acc      float64

	updaters []Updater
	fixed    []FixedUpdater
	late     []LateUpdater
}

// NewScheduler registers each hook under every phase it implements.
func NewScheduler(fixedStep float64, hooks ...any) *Scheduler {
	if fixedStep <= 0 {
		fixedStep = DefaultFixedStep
	}
	s := &Scheduler{FixedStep: fixedStep, MaxFixedSteps: DefaultMaxFixedSteps}
	for _, h := range hooks {
		s.Add(h)
	}
	return s
}

// Add registers h for each of Updater, FixedUpdater and LateUpdater it
// implements and reports whether it matched any.
func (s *Scheduler) Add(h any) bool {
	if h == nil {
		return false
	}
	matched := false
	if u, ok := h.(Updater); ok {
		s.updaters = append(s.updaters, u)
		matched = true
	}
	if f, ok := h.(FixedUpdater); ok {
		s.fixed = append(s.fixed, f)
		matched = true
	}
	if l, ok := h.(LateUpdater); ok {
		s.late = append(s.late, l)
		matched = true
	}
	return matched
}

// Reset clears hooks and rewinds both clocks.
func (s *Scheduler) Reset() {
	s.now, s.fixedNow, s.acc = 0, 0, 0
	s.updaters = nil
	s.fixed = nil
	s.late = nil
}

// Advance moves logic time forward by dt and returns the number of fixed
// ticks that ran. A backlog beyond MaxFixedSteps is dropped.
func (s *Scheduler) Advance(dt float64) int {
	if s == nil || dt < 0 {
		return 0
	}

	s.now += dt
	for _, u := range s.updaters {
		u.Update(s.now, dt)
	}

	s.acc += dt
	steps := 0
	for s.acc >= s.FixedStep {
		if s.MaxFixedSteps > 0 && steps >= s.MaxFixedSteps {
			s.acc = 0
			break
		}
		s.acc -= s.FixedStep
		s.fixedNow += s.FixedStep
		for _, f := range s.fixed {
			f.FixedUpdate(s.fixedNow)
		}
		steps++
	}

	for _, l := range s.late {
		l.LateUpdate()
	}
	return steps
}

// Now is the logic clock in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// FixedNow is the physics clock in seconds; it trails Now by less than one
// fixed step unless a backlog was dropped.
func (s *Scheduler) FixedNow() float64 {
	return s.fixedNow
}
