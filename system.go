package ember

import "math/rand/v2"

// System owns all pools and all live emitters and drives the per-frame pass.
// Pools are registered once per kind — registration order is render order, so
// register back-to-front (trails under glows under cores). Emitters are
// removed exactly when they report finished.
//
// The system is single-threaded and frame-synchronous: the host game loop
// calls Update then Render once per frame on one goroutine. Nothing here
// blocks or spans frames.
type System struct {
	// pools is a fixed table indexed by Kind; at most one pool per kind.
	pools    [kindCount]*Pool
	order    []Kind
	emitters []Emitter
	rng      *rand.Rand
}

// NewSystem creates an empty system seeded for deterministic simulation.
// The same seed and the same call sequence reproduce the same frames.
func NewSystem(seed uint64) *System {
	return &System{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Rand returns the system's random source, the single entry point of
// randomness for emitters built against this system.
func (s *System) Rand() *rand.Rand { return s.rng }

// RegisterPool creates (or replaces) the pool for a kind with the given
// capacity. Replacing clears the previous pool first, so no active particle
// outlives its pool. First-time registration appends the kind to the render
// order.
func (s *System) RegisterPool(kind Kind, maxSize int) *Pool {
	if kind >= kindCount {
		return nil
	}
	if old := s.pools[kind]; old != nil {
		old.Clear()
	} else {
		s.order = append(s.order, kind)
	}
	pl := NewPool(kind, maxSize, s.rng)
	s.pools[kind] = pl
	return pl
}

// UnregisterPool clears and removes the pool for a kind. Lookups for the
// kind return nil afterwards, which downstream code treats as "category
// disabled" and skips.
func (s *System) UnregisterPool(kind Kind) {
	if kind >= kindCount || s.pools[kind] == nil {
		return
	}
	s.pools[kind].Clear()
	s.pools[kind] = nil
	for i, k := range s.order {
		if k == kind {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Pool returns the pool registered for kind, or nil if none is. Callers must
// treat nil as a no-op spawn target, never an error.
func (s *System) Pool(kind Kind) *Pool {
	if kind >= kindCount {
		return nil
	}
	return s.pools[kind]
}

// AddEmitter registers a live emitter. The system removes it once Finished
// reports true.
func (s *System) AddEmitter(e Emitter) {
	s.emitters = append(s.emitters, e)
}

// EmitterCount returns the number of live emitters.
func (s *System) EmitterCount() int { return len(s.emitters) }

// Update advances every pool, then every emitter, removing finished emitters
// in the same pass. dt is the frame delta in seconds.
func (s *System) Update(dt float64) {
	for _, k := range s.order {
		s.pools[k].UpdateAll(dt)
	}

	// Order-preserving compaction keeps emitter update order stable.
	kept := s.emitters[:0]
	for _, e := range s.emitters {
		e.Update(dt)
		if !e.Finished() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.emitters); i++ {
		s.emitters[i] = nil
	}
	s.emitters = kept
}

// Render draws every pool in registration order, expressing back-to-front
// layering.
func (s *System) Render(surf Surface) {
	for _, k := range s.order {
		s.pools[k].RenderAll(surf)
	}
}

// Clear stops and drops all emitters and reclaims every active particle.
func (s *System) Clear() {
	for _, k := range s.order {
		s.pools[k].Clear()
	}
	for i, e := range s.emitters {
		e.Stop()
		s.emitters[i] = nil
	}
	s.emitters = s.emitters[:0]
}

// Compose builds a CompositeEmitter at pos from a composition template.
// Specs with unknown types, and specs whose pool kind is not registered
// (category disabled), are skipped.
func (s *System) Compose(c Composition, pos Vec2) *CompositeEmitter {
	children := make([]Emitter, 0, len(c.Emitters))
	for _, spec := range c.Emitters {
		kind, ok := kindForSpecType(spec.Type)
		if !ok {
			continue
		}
		pool := s.Pool(kind)
		if pool == nil {
			continue
		}
		children = append(children, s.buildChild(spec, pool, pos))
	}
	return NewCompositeEmitter(pos, children...)
}

// buildChild constructs one concrete emitter from a spec.
func (s *System) buildChild(spec EmitterSpec, pool *Pool, pos Vec2) Emitter {
	switch spec.Type {
	case "trail":
		return NewTrailEmitter(pool, s.rng, pos, TrailConfig{
			Rate:     spec.Rate,
			Duration: spec.Duration,
			Speed:    spec.Speed,
			Angle:    spec.Angle,
			Size:     spec.Size,
			Life:     spec.Life,
			Color:    spec.Color,
			Friction: spec.Friction,
			Scatter:  spec.Scatter,
		})
	case "glow":
		return NewGlowEmitter(pool, s.rng, pos, GlowConfig{
			Rate:       spec.Rate,
			Duration:   spec.Duration,
			Size:       spec.Size,
			Life:       spec.Life,
			Color:      spec.Color,
			PulseAmp:   spec.Pulse,
			PulseSpeed: spec.PulseHz,
			Scatter:    spec.Scatter,
			Drift:      spec.Drift,
		})
	case "confetti":
		return NewConfettiEmitter(pool, s.rng, pos, ConfettiConfig{
			Count:    spec.Count,
			Speed:    spec.Speed,
			Angle:    spec.Angle,
			Size:     spec.Size,
			Life:     spec.Life,
			Spin:     spec.Spin,
			ShrinkTo: spec.ShrinkTo,
			Gravity:  spec.Gravity,
			Color:    spec.Color,
		})
	default: // burst
		return NewBurstEmitter(pool, s.rng, pos, BurstConfig{
			Count:    spec.Count,
			Sub:      subKindFromName(spec.Sub),
			Speed:    spec.Speed,
			Angle:    spec.Angle,
			Size:     spec.Size,
			Life:     spec.Life,
			Shock:    spec.Shock,
			Jitter:   spec.Jitter,
			Color:    spec.Color,
			Rate:     spec.Rate,
			Duration: spec.Duration,
		})
	}
}

// PoolStats is a per-kind snapshot for diagnostics and HUDs.
type PoolStats struct {
	Kind        Kind
	Active      int
	Available   int
	Cap         int
	Constructed int
}

// Stats is a whole-system snapshot.
type Stats struct {
	Pools    []PoolStats
	Emitters int
	// Utilization is total active particles over total capacity, in [0, 1].
	Utilization float64
}

// Stats captures a snapshot of every pool and the emitter count. It
// allocates; call it from diagnostics paths, not per frame.
func (s *System) Stats() Stats {
	st := Stats{
		Pools:    make([]PoolStats, 0, len(s.order)),
		Emitters: len(s.emitters),
	}
	totalActive, totalCap := 0, 0
	for _, k := range s.order {
		pl := s.pools[k]
		st.Pools = append(st.Pools, PoolStats{
			Kind:        k,
			Active:      pl.ActiveCount(),
			Available:   pl.AvailableCount(),
			Cap:         pl.Cap(),
			Constructed: pl.Constructed(),
		})
		totalActive += pl.ActiveCount()
		totalCap += pl.Cap()
	}
	if totalCap > 0 {
		st.Utilization = float64(totalActive) / float64(totalCap)
	}
	return st
}
