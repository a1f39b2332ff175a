package ember

// Unbounded marks an emitter with no duration limit. Unbounded emitters are
// never finished by elapsed time alone; they finish only via an explicit
// Stop.
const Unbounded = -1.0

// Emitter is a time-driven spawn strategy. Concrete emitters implement only
// EmitParticle — acquiring a particle from their pool and populating its
// fields with randomized-but-bounded values — and share the base accumulator
// bookkeeping through EmitterCore. Emitters request particles but never own
// them; ownership stays with the pool.
type Emitter interface {
	// Update advances elapsed time, checks the duration stop condition, and
	// emits once per whole unit accumulated at the configured rate.
	Update(dt float64)
	// EmitParticle spawns a single particle. Pool exhaustion silently skips
	// the spawn.
	EmitParticle()
	// Finished reports whether the emitter has stopped and can be removed
	// from its registry.
	Finished() bool
	Start()
	Stop()
	Position() Vec2
	SetPosition(Vec2)
}

// EmitterCore carries the state shared by every emitter: position, active
// flag, bounded or unbounded duration, elapsed time, spawn rate, and the
// fractional spawn accumulator. Embed it and call advance from Update.
type EmitterCore struct {
	Pos Vec2

	active  bool
	stopped bool

	// Duration is the emitting window in seconds; Unbounded (negative)
	// disables the limit.
	Duration float64
	// Rate is the spawn rate in particles per second.
	Rate float64

	elapsed float64
	accum   float64
}

// Start activates the emitter, resetting elapsed time and the spawn
// accumulator. Calling Start on a stopped emitter restarts it from scratch.
func (c *EmitterCore) Start() {
	c.active = true
	c.stopped = false
	c.elapsed = 0
	c.accum = 0
}

// Stop deactivates the emitter. Already-spawned particles live out their
// lifetimes in their pool. Stop takes effect on the next tick.
func (c *EmitterCore) Stop() {
	c.active = false
	c.stopped = true
}

// Active reports whether the emitter is currently emitting.
func (c *EmitterCore) Active() bool { return c.active }

// Finished reports whether the emitter has stopped, either explicitly or by
// reaching its bounded duration.
func (c *EmitterCore) Finished() bool { return c.stopped }

// Elapsed returns the time in seconds since the last Start.
func (c *EmitterCore) Elapsed() float64 { return c.elapsed }

// Position returns the emitter's position.
func (c *EmitterCore) Position() Vec2 { return c.Pos }

// SetPosition moves the emitter. Effects that track a moving source
// reposition their emitter between frames.
func (c *EmitterCore) SetPosition(p Vec2) { c.Pos = p }

// advance performs the base per-frame bookkeeping and returns how many
// particles to emit this frame. The fractional accumulator only ever
// triggers whole-number spawns and carries the remainder forward, so the
// effective rate does not drift with frame-rate jitter.
func (c *EmitterCore) advance(dt float64) int {
	if !c.active {
		return 0
	}
	c.elapsed += dt
	if c.Duration >= 0 && c.elapsed >= c.Duration {
		c.active = false
		c.stopped = true
		return 0
	}
	if c.Rate <= 0 {
		return 0
	}
	c.accum += c.Rate * dt
	n := int(c.accum)
	c.accum -= float64(n)
	return n
}
