package ember

import "math"

// Glow particles pulse: size and two concentric halo radii oscillate on a
// sine of the particle's age. They render as three nested translucent fills
// (outer, mid, core halo) plus a solid core, the layered-circle recipe used
// for auras and shield effects.

// stepGlow oscillates the size around the spawn size. Opacity keeps the base
// lifetime fade; the pulse rides on top of it through the halo radii.
func (p *Particle) stepGlow() {
	pulse := p.PulseAmp * math.Sin(p.elapsed*p.PulseSpeed)
	p.Size = clampMin(p.baseSize+pulse, 0.5)
}

// renderGlow layers the halos back-to-front. Blur asks the surface for soft
// edges; alpha steps down toward the outer halo.
func (p *Particle) renderGlow(s Surface) {
	s.FillCircle(p.Pos, p.Size*2.4, Paint{Color: p.Color.Scaled(p.Opacity * 0.15), Blur: p.Size})
	s.FillCircle(p.Pos, p.Size*1.7, Paint{Color: p.Color.Scaled(p.Opacity * 0.3), Blur: p.Size * 0.5})
	s.FillCircle(p.Pos, p.Size*1.2, Paint{Color: p.Color.Scaled(p.Opacity * 0.5), Blur: p.Size * 0.25})
	s.FillCircle(p.Pos, p.Size*0.7, Paint{Color: p.Color.Scaled(p.Opacity)})
}
