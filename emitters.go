package ember

import (
	"math"
	"math/rand/v2"
)

// BurstConfig controls a one-shot explosion burst: Count debris particles
// thrown outward in a cone, each with a shockwave ring. A non-zero Rate adds
// a trailing drizzle of debris for Duration seconds after the initial burst.
type BurstConfig struct {
	Count int
	Sub   SubKind
	// Speed is the launch speed range in pixels per second.
	Speed Range
	// Angle is the launch cone in radians. A zero range means a full circle.
	Angle Range
	Size  Range
	// Life is the particle lifetime range in frame-ticks.
	Life     Range
	Shock    Range   // shockwave cap radius range; zero disables the ring
	Jitter   float64 // electric velocity kick, pixels/second
	Color    Color   // zero value uses the sub-kind palette
	Rate     float64
	Duration float64
}

// withDefaults fills unset fields with workable values.
func (cfg BurstConfig) withDefaults() BurstConfig {
	if cfg.Count <= 0 {
		cfg.Count = 12
	}
	if cfg.Speed == (Range{}) {
		cfg.Speed = Range{60, 220}
	}
	if cfg.Angle == (Range{}) {
		cfg.Angle = Range{0, 2 * math.Pi}
	}
	if cfg.Size == (Range{}) {
		cfg.Size = Range{2, 5}
	}
	if cfg.Life == (Range{}) {
		cfg.Life = Range{30, 70}
	}
	if cfg.Sub == DebrisElectric && cfg.Jitter == 0 {
		cfg.Jitter = 900
	}
	return cfg
}

// spawnOne acquires one debris particle and populates it from the config.
// A nil or exhausted pool skips the spawn.
func (cfg BurstConfig) spawnOne(pool *Pool, rng *rand.Rand, pos Vec2) {
	if pool == nil {
		return
	}
	p := pool.Acquire()
	if p == nil {
		return
	}
	angle := cfg.Angle.Rand(rng)
	speed := cfg.Speed.Rand(rng)
	p.Pos = pos
	p.Vel = Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}
	color, accel := debrisPalette(cfg.Sub)
	if cfg.Color != (Color{}) {
		color = cfg.Color
	}
	p.Color = color
	p.Accel = accel
	p.Sub = cfg.Sub
	p.Size = cfg.Size.Rand(rng)
	p.MaxLife = cfg.Life.RandTicks(rng)
	p.ShockMax = cfg.Shock.Rand(rng)
	p.Jitter = cfg.Jitter
	p.Init()
}

// BurstEmitter throws its whole Count on the first update after Start, then
// drizzles at the configured rate until its duration elapses. With the
// default zero duration it finishes immediately after the burst, leaving the
// particles to live out in the pool.
type BurstEmitter struct {
	EmitterCore
	pool     *Pool
	rng      *rand.Rand
	cfg      BurstConfig
	launched bool
}

// NewBurstEmitter creates a burst emitter drawing from pool. The emitter is
// created stopped; call Start to arm it.
func NewBurstEmitter(pool *Pool, rng *rand.Rand, pos Vec2, cfg BurstConfig) *BurstEmitter {
	e := &BurstEmitter{pool: pool, rng: rng, cfg: cfg.withDefaults()}
	e.Pos = pos
	e.Duration = cfg.Duration
	e.Rate = cfg.Rate
	return e
}

// Start arms the emitter and re-arms the initial burst.
func (e *BurstEmitter) Start() {
	e.EmitterCore.Start()
	e.launched = false
}

// Update fires the initial burst once, then runs the base accumulator for
// the trailing rate.
func (e *BurstEmitter) Update(dt float64) {
	if e.Active() && !e.launched {
		e.launched = true
		for i := 0; i < e.cfg.Count; i++ {
			e.EmitParticle()
		}
	}
	n := e.advance(dt)
	for i := 0; i < n; i++ {
		e.EmitParticle()
	}
}

// EmitParticle spawns a single debris particle at the emitter position.
func (e *BurstEmitter) EmitParticle() {
	e.cfg.spawnOne(e.pool, e.rng, e.Pos)
}

// TrailConfig controls a continuous spark/trail emitter.
type TrailConfig struct {
	Rate float64
	// Duration in seconds. Zero and Unbounded both keep emitting until an
	// explicit Stop; continuous effects rarely have a natural end.
	Duration float64
	Speed    Range
	Angle    Range // radians
	Size     Range
	Life     Range // frame-ticks
	Color    Color
	// Friction is the per-tick velocity damping, in (0, 1).
	Friction float64
	// Scatter randomly offsets spawn positions within this radius.
	Scatter float64
}

func (cfg TrailConfig) withDefaults() TrailConfig {
	if cfg.Rate <= 0 {
		cfg.Rate = 30
	}
	if cfg.Speed == (Range{}) {
		cfg.Speed = Range{40, 120}
	}
	if cfg.Angle == (Range{}) {
		cfg.Angle = Range{0, 2 * math.Pi}
	}
	if cfg.Size == (Range{}) {
		cfg.Size = Range{1.5, 3}
	}
	if cfg.Life == (Range{}) {
		cfg.Life = Range{25, 50}
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	if cfg.Friction <= 0 || cfg.Friction >= 1 {
		cfg.Friction = 0.96
	}
	if cfg.Duration == 0 {
		cfg.Duration = Unbounded
	}
	return cfg
}

// TrailEmitter continuously emits spark particles that drag fading trails.
type TrailEmitter struct {
	EmitterCore
	pool *Pool
	rng  *rand.Rand
	cfg  TrailConfig
}

// NewTrailEmitter creates a trail emitter drawing from pool. The emitter is
// created stopped; call Start to begin emitting.
func NewTrailEmitter(pool *Pool, rng *rand.Rand, pos Vec2, cfg TrailConfig) *TrailEmitter {
	e := &TrailEmitter{pool: pool, rng: rng, cfg: cfg.withDefaults()}
	e.Pos = pos
	e.Duration = e.cfg.Duration
	e.Rate = e.cfg.Rate
	return e
}

// Update runs the base accumulator and emits the accumulated whole units.
func (e *TrailEmitter) Update(dt float64) {
	n := e.advance(dt)
	for i := 0; i < n; i++ {
		e.EmitParticle()
	}
}

// EmitParticle spawns one spark within the scatter radius.
func (e *TrailEmitter) EmitParticle() {
	e.cfg.spawnOne(e.pool, e.rng, e.Pos)
}

// spawnOne acquires one trail particle and populates it from the config.
func (cfg TrailConfig) spawnOne(pool *Pool, rng *rand.Rand, pos Vec2) {
	if pool == nil {
		return
	}
	p := pool.Acquire()
	if p == nil {
		return
	}
	angle := cfg.Angle.Rand(rng)
	speed := cfg.Speed.Rand(rng)
	p.Pos = scatter(pos, cfg.Scatter, rng)
	p.Vel = Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}
	p.Color = cfg.Color
	p.Size = cfg.Size.Rand(rng)
	p.MaxLife = cfg.Life.RandTicks(rng)
	p.Friction = cfg.Friction
	p.Init()
}

// GlowConfig controls a pulsing glow emitter.
type GlowConfig struct {
	Rate     float64
	Duration float64
	Size     Range
	Life     Range // frame-ticks
	Color    Color
	// PulseAmp is the size oscillation amplitude in pixels.
	PulseAmp float64
	// PulseSpeed is the oscillation speed in radians per second.
	PulseSpeed float64
	// Scatter randomly offsets spawn positions within this radius.
	Scatter float64
	// Drift is the upward drift speed range; glows rise gently by default.
	Drift Range
}

func (cfg GlowConfig) withDefaults() GlowConfig {
	if cfg.Rate <= 0 {
		cfg.Rate = 6
	}
	if cfg.Size == (Range{}) {
		cfg.Size = Range{4, 8}
	}
	if cfg.Life == (Range{}) {
		cfg.Life = Range{40, 80}
	}
	if cfg.Color == (Color{}) {
		cfg.Color = Color{1, 0.9, 0.5, 1}
	}
	if cfg.PulseAmp == 0 {
		cfg.PulseAmp = 1.5
	}
	if cfg.PulseSpeed == 0 {
		cfg.PulseSpeed = 6
	}
	if cfg.Duration == 0 {
		cfg.Duration = Unbounded
	}
	return cfg
}

// GlowEmitter emits slow pulsing glow particles, the building block of auras
// and shields.
type GlowEmitter struct {
	EmitterCore
	pool *Pool
	rng  *rand.Rand
	cfg  GlowConfig
}

// NewGlowEmitter creates a glow emitter drawing from pool. The emitter is
// created stopped; call Start to begin emitting.
func NewGlowEmitter(pool *Pool, rng *rand.Rand, pos Vec2, cfg GlowConfig) *GlowEmitter {
	e := &GlowEmitter{pool: pool, rng: rng, cfg: cfg.withDefaults()}
	e.Pos = pos
	e.Duration = e.cfg.Duration
	e.Rate = e.cfg.Rate
	return e
}

// Update runs the base accumulator and emits the accumulated whole units.
func (e *GlowEmitter) Update(dt float64) {
	n := e.advance(dt)
	for i := 0; i < n; i++ {
		e.EmitParticle()
	}
}

// EmitParticle spawns one glow particle with a randomized pulse phase.
func (e *GlowEmitter) EmitParticle() {
	e.cfg.spawnOne(e.pool, e.rng, e.Pos)
}

// spawnOne acquires one glow particle and populates it from the config.
// The pulse phase is randomized so overlapping glows don't beat in sync.
func (cfg GlowConfig) spawnOne(pool *Pool, rng *rand.Rand, pos Vec2) {
	if pool == nil {
		return
	}
	p := pool.Acquire()
	if p == nil {
		return
	}
	p.Pos = scatter(pos, cfg.Scatter, rng)
	p.Vel = Vec2{0, -cfg.Drift.Rand(rng)}
	p.Color = cfg.Color
	p.Size = cfg.Size.Rand(rng)
	p.MaxLife = cfg.Life.RandTicks(rng)
	p.PulseAmp = cfg.PulseAmp
	p.PulseSpeed = cfg.PulseSpeed
	p.elapsed = rng.Float64() * 2 * math.Pi / clampMin(cfg.PulseSpeed, 0.01)
	p.Init()
}

// ConfettiConfig controls a one-shot burst of basic particles: spinning,
// shrinking squares and dots for score bursts and pickups.
type ConfettiConfig struct {
	Count int
	Speed Range
	Angle Range // radians; zero range means a full circle
	Size  Range
	Life  Range // frame-ticks
	// Spin is the rotation speed range in radians per second. Zero keeps
	// particles as plain dots.
	Spin Range
	// ShrinkTo is the end-size fraction; particles decay linearly toward it.
	ShrinkTo float64
	// Gravity pulls confetti down after the initial throw.
	Gravity float64
	Color   Color
}

func (cfg ConfettiConfig) withDefaults() ConfettiConfig {
	if cfg.Count <= 0 {
		cfg.Count = 16
	}
	if cfg.Speed == (Range{}) {
		cfg.Speed = Range{80, 200}
	}
	if cfg.Angle == (Range{}) {
		cfg.Angle = Range{0, 2 * math.Pi}
	}
	if cfg.Size == (Range{}) {
		cfg.Size = Range{2, 4}
	}
	if cfg.Life == (Range{}) {
		cfg.Life = Range{30, 60}
	}
	if cfg.ShrinkTo <= 0 {
		cfg.ShrinkTo = 0.2
	}
	if cfg.Gravity == 0 {
		cfg.Gravity = 150
	}
	if cfg.Color == (Color{}) {
		cfg.Color = Color{1, 0.85, 0.3, 1}
	}
	return cfg
}

// ConfettiEmitter throws its whole count on the first update after Start and
// then finishes, like a burst emitter over the basic pool.
type ConfettiEmitter struct {
	EmitterCore
	pool     *Pool
	rng      *rand.Rand
	cfg      ConfettiConfig
	launched bool
}

// NewConfettiEmitter creates a confetti emitter drawing from pool. The
// emitter is created stopped; call Start to arm it.
func NewConfettiEmitter(pool *Pool, rng *rand.Rand, pos Vec2, cfg ConfettiConfig) *ConfettiEmitter {
	e := &ConfettiEmitter{pool: pool, rng: rng, cfg: cfg.withDefaults()}
	e.Pos = pos
	e.Duration = 0
	return e
}

// Start arms the emitter and re-arms the burst.
func (e *ConfettiEmitter) Start() {
	e.EmitterCore.Start()
	e.launched = false
}

// Update fires the burst once, then lets the base bookkeeping finish the
// emitter.
func (e *ConfettiEmitter) Update(dt float64) {
	if e.Active() && !e.launched {
		e.launched = true
		for i := 0; i < e.cfg.Count; i++ {
			e.EmitParticle()
		}
	}
	e.advance(dt)
}

// EmitParticle spawns one basic particle at the emitter position.
func (e *ConfettiEmitter) EmitParticle() {
	e.cfg.spawnOne(e.pool, e.rng, e.Pos)
}

// spawnOne acquires one basic particle and populates it from the config.
func (cfg ConfettiConfig) spawnOne(pool *Pool, rng *rand.Rand, pos Vec2) {
	if pool == nil {
		return
	}
	p := pool.Acquire()
	if p == nil {
		return
	}
	angle := cfg.Angle.Rand(rng)
	speed := cfg.Speed.Rand(rng)
	p.Pos = pos
	p.Vel = Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}
	p.Accel = Vec2{0, cfg.Gravity}
	p.Color = cfg.Color
	p.Size = cfg.Size.Rand(rng)
	p.MaxLife = cfg.Life.RandTicks(rng)
	p.RotSpeed = cfg.Spin.Rand(rng)
	p.ShrinkTo = clamp01(cfg.ShrinkTo)
	p.Init()
}

// scatter offsets pos uniformly within a disc of the given radius. The sqrt
// keeps the distribution uniform over area rather than clustering at the
// center.
func scatter(pos Vec2, radius float64, rng *rand.Rand) Vec2 {
	if radius <= 0 {
		return pos
	}
	r := math.Sqrt(rng.Float64()) * radius
	a := rng.Float64() * 2 * math.Pi
	return Vec2{pos.X + math.Cos(a)*r, pos.Y + math.Sin(a)*r}
}
