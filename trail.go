package ember

// Trail (spark) particles drag a bounded history of recent positions behind
// them, rendered as a fading polyline. Velocity is damped every tick by the
// friction coefficient so sparks slow down as they burn out.

// stepTrail damps velocity and appends the current position to the history
// ring, evicting the oldest entry when full.
func (p *Particle) stepTrail() {
	if p.Friction > 0 {
		p.Vel.X *= p.Friction
		p.Vel.Y *= p.Friction
	}
	if len(p.history) == 0 {
		return
	}
	if p.histLen < len(p.history) {
		p.history[(p.histHead+p.histLen)%len(p.history)] = p.Pos
		p.histLen++
	} else {
		p.history[p.histHead] = p.Pos
		p.histHead = (p.histHead + 1) % len(p.history)
	}
}

// histAt returns the i'th history entry, oldest first.
func (p *Particle) histAt(i int) Vec2 {
	return p.history[(p.histHead+i)%len(p.history)]
}

// renderTrail draws the history as per-segment strokes whose alpha ramps up
// toward the head, then the spark itself as a filled circle. Per-segment
// draws let the trail fade along its length with a plain polyline primitive.
func (p *Particle) renderTrail(s Surface) {
	width := clampMin(p.Size*0.6, 1)
	for i := 1; i < p.histLen; i++ {
		p.seg[0] = p.histAt(i - 1)
		p.seg[1] = p.histAt(i)
		fade := float64(i) / float64(p.histLen)
		s.Polyline(p.seg[:], Paint{
			Color:       p.Color.Scaled(p.Opacity * fade),
			StrokeWidth: width,
		})
	}
	s.FillCircle(p.Pos, p.Size, Paint{Color: p.Color.Scaled(p.Opacity)})
}
