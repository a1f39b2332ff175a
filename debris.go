package ember

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Debris particles are explosion fragments. Independently of the fragment
// itself they grow a shockwave ring toward a capped radius, eased so the
// wave expands fast and settles, with ring opacity inverse to its progress.
// The sub-kind swaps the acceleration vector and palette; electric debris
// additionally kicks its velocity every tick for erratic motion.

// debrisPalette returns the fragment color and gravity-style acceleration
// for a sub-kind. Spawning code may still override the color per particle.
func debrisPalette(sub SubKind) (Color, Vec2) {
	switch sub {
	case DebrisFire:
		return Color{1, 0.55, 0.15, 1}, Vec2{0, -40} // embers rise
	case DebrisIce:
		return Color{0.6, 0.85, 1, 1}, Vec2{0, 160} // shards fall fast
	case DebrisElectric:
		return Color{0.75, 0.8, 1, 1}, Vec2{0, 0}
	default:
		return Color{1, 0.8, 0.4, 1}, Vec2{0, 90}
	}
}

// stepDebris grows the shockwave and applies the electric jitter.
func (p *Particle) stepDebris(dt float64, rng *rand.Rand) {
	if p.ShockMax > 0 {
		t := 1 - float64(p.Life)/float64(p.MaxLife)
		p.Shock = float64(ease.OutCubic(float32(t), 0, float32(p.ShockMax), 1))
	}
	if p.Sub == DebrisElectric && p.Jitter > 0 {
		p.Vel.X += (rng.Float64()*2 - 1) * p.Jitter * dt
		p.Vel.Y += (rng.Float64()*2 - 1) * p.Jitter * dt
	}
}

// renderDebris draws the shockwave ring under the fragment.
func (p *Particle) renderDebris(s Surface) {
	if p.ShockMax > 0 && p.Shock > 0.5 {
		ringAlpha := clamp01(1 - p.Shock/p.ShockMax)
		s.StrokeCircle(p.Pos, p.Shock, Paint{
			Color:       p.Color.Scaled(ringAlpha * 0.8),
			StrokeWidth: clampMin(p.Size*0.4, 1),
		})
	}
	s.FillCircle(p.Pos, p.Size, Paint{Color: p.Color.Scaled(p.Opacity)})
}
