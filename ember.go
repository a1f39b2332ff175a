package ember

import "math/rand/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication (if any) is the drawing surface's concern.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default particle tint.
var ColorWhite = Color{1, 1, 1, 1}

// Scaled returns the color with its alpha multiplied by a, clamped to [0, 1].
func (c Color) Scaled(a float64) Color {
	c.A = clamp01(c.A * a)
	return c
}

// Vec2 is a 2D vector used for positions, velocities, and accelerations
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scaled returns v scaled by s.
func (v Vec2) Scaled(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Range is a general-purpose min/max range used by emitter configs to bound
// randomized spawn parameters (speed, angle, size, lifetime).
type Range struct {
	Min, Max float64
}

// Rand returns a uniformly random value in [Min, Max] drawn from rng.
// All randomness in the engine flows through an explicit rng handle so
// simulations can be made deterministic for tests and replays.
func (r Range) Rand(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// RandTicks returns a random whole number of frame-ticks in [Min, Max],
// never less than 1.
func (r Range) RandTicks(rng *rand.Rand) int {
	t := int(r.Rand(rng))
	if t < 1 {
		t = 1
	}
	return t
}

// Kind identifies a concrete particle variant. Each kind has its own pool;
// the kind tag selects the variant's physics and render hooks via a switch,
// keeping the per-frame loop free of interface dispatch.
type Kind uint8

const (
	KindBasic Kind = iota // circle or spinning square, linear fade
	KindTrail             // spark with a fading polyline trail
	KindGlow              // pulsing layered halo
	KindDebris            // explosion fragment with shockwave

	kindCount
)

// String returns the kind's name for stats and debug output.
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindTrail:
		return "trail"
	case KindGlow:
		return "glow"
	case KindDebris:
		return "debris"
	default:
		return "unknown"
	}
}

// SubKind selects a debris flavor. Each flavor swaps the acceleration vector
// and color palette; electric debris additionally jitters its velocity.
type SubKind uint8

const (
	DebrisNormal SubKind = iota
	DebrisFire
	DebrisIce
	DebrisElectric
)

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampMin clamps v to at least min.
func clampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
