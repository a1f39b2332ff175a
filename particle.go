package ember

import (
	"math"
	"math/rand/v2"
)

// trailCap is the fixed length of a trail particle's position history.
// The buffer is allocated once per particle and retained across reuse.
const trailCap = 10

// Particle is a single simulated visual unit. A single flat struct is used
// for all kinds to avoid interface dispatch on the hot path; the Kind tag
// selects the variant hooks. Instances are owned by their Pool for the life
// of the process and re-initialized on every acquire, never reallocated.
type Particle struct {
	Pos   Vec2
	Vel   Vec2
	Accel Vec2

	Color   Color
	Size    float64
	Opacity float64 // [0, 1]; tracks Life/MaxLife unless a variant overrides

	// Lifetime counts frame-ticks, not wall-clock time, so countdowns stay
	// deterministic under variable dt. Life <= 0 means inactive.
	Life    int
	MaxLife int
	Active  bool
	Kind    Kind

	elapsed  float64 // seconds since spawn; drives pulse phase and easing
	baseSize float64 // size at spawn; decay and pulse derive from it

	// Basic.
	Rotation float64
	RotSpeed float64 // radians/second; non-zero renders a spinning square
	ShrinkTo float64 // end-size fraction of baseSize; 1 disables decay

	// Trail.
	Friction          float64 // per-tick velocity damping, < 1
	history           []Vec2  // ring buffer of recent positions
	histHead, histLen int
	seg               [2]Vec2 // scratch for per-segment polyline draws
	quad              [5]Vec2 // scratch for the rotated square outline

	// Glow.
	PulseAmp   float64
	PulseSpeed float64 // radians/second

	// Debris.
	Sub      SubKind
	Shock    float64 // shockwave radius, independent of Size
	ShockMax float64
	Jitter   float64 // electric velocity kick magnitude, pixels/second
}

// reset re-initializes the particle to active defaults for its kind.
// The trail history buffer is kept; only its length is cleared.
func (p *Particle) reset(kind Kind) {
	hist := p.history
	*p = Particle{
		Kind:     kind,
		Color:    ColorWhite,
		Size:     2,
		baseSize: 2,
		Opacity:  1,
		Life:     1,
		MaxLife:  1,
		Active:   true,
		ShrinkTo: 1,
		history:  hist,
	}
	if kind == KindTrail && p.history == nil {
		p.history = make([]Vec2, trailCap)
	}
}

// Init fixes the spawn-time parameters after an emitter has populated the
// particle's fields: lifetime is floored at one tick, size at a small
// positive value, and the spawn size is recorded for decay and pulsing.
func (p *Particle) Init() {
	if p.MaxLife < 1 {
		p.MaxLife = 1
	}
	p.Life = p.MaxLife
	p.Size = clampMin(p.Size, 0.1)
	p.baseSize = p.Size
	p.Opacity = 1
	p.ShockMax = clampMin(p.ShockMax, 0)
	if p.Friction < 0 || p.Friction >= 1 {
		p.Friction = 0
	}
}

// step advances the particle by one frame-tick. The base physics step is
// identical across variants: integrate acceleration and velocity with dt,
// decrement the tick counter, recompute opacity from the lifetime ratio,
// then run the variant hook. rng feeds the electric debris jitter, the one
// per-tick stochastic behavior in the engine.
func (p *Particle) step(dt float64, rng *rand.Rand) {
	p.Vel.X += p.Accel.X * dt
	p.Vel.Y += p.Accel.Y * dt
	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt

	p.Life--
	p.elapsed += dt
	p.Opacity = clamp01(float64(p.Life) / float64(p.MaxLife))

	switch p.Kind {
	case KindBasic:
		p.stepBasic(dt)
	case KindTrail:
		p.stepTrail()
	case KindGlow:
		p.stepGlow()
	case KindDebris:
		p.stepDebris(dt, rng)
	}

	// Variants clamp their own outputs; the lifetime floor is shared.
	if p.Life <= 0 {
		p.Life = 0
		p.Active = false
	}
}

// render draws the particle through the variant's render recipe.
// Inactive particles are never rendered; the pool guarantees that.
func (p *Particle) render(s Surface) {
	switch p.Kind {
	case KindBasic:
		p.renderBasic(s)
	case KindTrail:
		p.renderTrail(s)
	case KindGlow:
		p.renderGlow(s)
	case KindDebris:
		p.renderDebris(s)
	}
}

// stepBasic applies linear size decay toward ShrinkTo and integrates
// rotation.
func (p *Particle) stepBasic(dt float64) {
	ratio := float64(p.Life) / float64(p.MaxLife)
	p.Size = clampMin(p.baseSize*lerp(p.ShrinkTo, 1, ratio), 0)
	p.Rotation += p.RotSpeed * dt
}

// renderBasic draws a filled circle, or a spinning square outline when the
// particle has rotation.
func (p *Particle) renderBasic(s Surface) {
	paint := Paint{Color: p.Color.Scaled(p.Opacity)}
	if p.RotSpeed == 0 {
		s.FillCircle(p.Pos, p.Size, paint)
		return
	}
	paint.StrokeWidth = clampMin(p.Size*0.5, 1)
	for i := 0; i < 4; i++ {
		a := p.Rotation + math.Pi/4 + float64(i)*math.Pi/2
		p.quad[i] = Vec2{p.Pos.X + math.Cos(a)*p.Size, p.Pos.Y + math.Sin(a)*p.Size}
	}
	p.quad[4] = p.quad[0]
	s.Polyline(p.quad[:], paint)
}
