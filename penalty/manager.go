package penalty

import "gonum.org/v1/gonum/stat"

// window is a fixed-capacity ring buffer of 0/1 feasibility observations
// for one dimension.
type window struct {
	buf   []float64
	next  int
	count int
}

func newWindow(size int) *window {
	return &window{buf: make([]float64, size)}
}

func (w *window) push(feasible bool) {
	v := 0.0
	if feasible {
		v = 1.0
	}
	w.buf[w.next] = v
	w.next = (w.next + 1) % len(w.buf)
	if w.count < len(w.buf) {
		w.count++
	}
}

// feasibleFraction returns the mean of the observations currently held,
// via gonum/stat.Mean rather than a hand-rolled accumulator.
func (w *window) feasibleFraction() (p float64, ok bool) {
	if w.count == 0 {
		return 0, false
	}
	return stat.Mean(w.buf[:w.count], nil), true
}

// Observation is one solution's per-dimension feasibility, as produced by
// costeval from a Solution's excess fields.
type Observation struct {
	LoadFeasible     bool
	TimeWarpFeasible bool
	DistFeasible     bool
	DurFeasible      bool
}

// Manager tracks the four penalty multipliers and adapts them from a
// sliding window of registered solutions, §4.3.
type Manager struct {
	opts        Options
	multipliers Multipliers
	windows     [int(numDimensions)]*window
	sinceUpdate int
}

// New constructs a Manager; returns an error if opts fails validation (§7:
// parameter validation at construction, no partial manager is ever returned).
func New(opts Options) (*Manager, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m := &Manager{opts: opts}
	m.multipliers = Multipliers{
		Load:     opts.Initial[Load],
		TimeWarp: opts.Initial[TimeWarp],
		Distance: opts.Initial[Distance],
		Duration: opts.Initial[Duration],
	}
	for d := 0; d < int(numDimensions); d++ {
		m.windows[d] = newWindow(opts.WindowSize)
	}
	return m, nil
}

// Multipliers returns the current (unboosted) multiplier set.
func (m *Manager) Multipliers() Multipliers { return m.multipliers }

// Boosted returns the multiplier set scaled by Options.BoostFactor, used
// for repair attempts on infeasible candidates (§4.3).
func (m *Manager) Boosted() Multipliers { return m.multipliers.Scale(m.opts.BoostFactor) }

// FeasibleFraction reports dimension d's current sliding-window feasible
// fraction; ok is false until at least one observation has been
// registered. Exposed for the driver's per-iteration statistics stream
// (SPEC_FULL §12).
func (m *Manager) FeasibleFraction(d Dimension) (p float64, ok bool) {
	return m.windows[d].feasibleFraction()
}

// Register records one solution's per-dimension feasibility and, every
// UpdateInterval registrations, recomputes the multipliers.
func (m *Manager) Register(obs Observation) {
	m.windows[Load].push(obs.LoadFeasible)
	m.windows[TimeWarp].push(obs.TimeWarpFeasible)
	m.windows[Distance].push(obs.DistFeasible)
	m.windows[Duration].push(obs.DurFeasible)

	m.sinceUpdate++
	if m.sinceUpdate >= m.opts.UpdateInterval {
		m.update()
		m.sinceUpdate = 0
	}
}

// update recomputes each dimension's multiplier from its window's feasible
// fraction, clamping into [Min, Max] (§4.3).
func (m *Manager) update() {
	for d := Dimension(0); d < numDimensions; d++ {
		p, ok := m.windows[d].feasibleFraction()
		if !ok {
			continue
		}
		cur := m.multipliers.at(d)
		var next float64
		if p >= m.opts.TargetFeasible {
			next = cur * m.opts.DecreaseFactor
		} else {
			next = cur * m.opts.IncreaseFactor
		}
		if next < m.opts.Min[d] {
			next = m.opts.Min[d]
		}
		if next > m.opts.Max[d] {
			next = m.opts.Max[d]
		}
		m.multipliers.set(d, next)
	}
}
