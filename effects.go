package ember

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Quality selects a performance preset: pool capacities plus which particle
// categories exist at all. Lower presets disable trails and glows entirely by
// not registering their pools, so glow-dependent code paths simply no-op.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
	QualityUltra
)

// String returns the preset name.
func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return "ultra"
	}
}

// qualityPreset fixes pool capacities per kind; zero capacity with the
// category disabled means the pool is not registered at all.
type qualityPreset struct {
	basic, trail, glow, debris int
	trailOn, glowOn            bool
}

var qualityPresets = [...]qualityPreset{
	QualityLow:    {basic: 64, debris: 48},
	QualityMedium: {basic: 128, trail: 96, debris: 96, trailOn: true},
	QualityHigh:   {basic: 256, trail: 192, glow: 64, debris: 160, trailOn: true, glowOn: true},
	QualityUltra:  {basic: 512, trail: 384, glow: 128, debris: 320, trailOn: true, glowOn: true},
}

// namedEffect is a persistent emitter keyed by a string handle, optionally
// gliding toward a repositioning target.
type namedEffect struct {
	emitter        Emitter
	glideX, glideY *gween.Tween
}

// Effects is the coordination facade game code talks to: one-shot triggers,
// named persistent emitters, composition templates, and quality presets. It
// owns a System and drives it through Update and Render.
type Effects struct {
	sys     *System
	named   map[string]*namedEffect
	comps   map[string]Composition
	quality Quality
}

// NewEffects creates a facade with its own seeded System, the builtin
// composition library, and the high quality preset.
func NewEffects(seed uint64) *Effects {
	f := &Effects{
		sys:   NewSystem(seed),
		named: make(map[string]*namedEffect),
		comps: make(map[string]Composition),
	}
	for _, c := range BuiltinCompositions() {
		f.comps[c.Name] = c
	}
	f.SetQuality(QualityHigh)
	return f
}

// System exposes the underlying registry for direct pool and emitter work.
func (f *Effects) System() *System { return f.sys }

// Quality returns the current preset.
func (f *Effects) Quality() Quality { return f.quality }

// SetQuality switches presets: every pool is cleared and re-registered with
// the preset's capacity, and disabled categories are dropped entirely. This
// is the only path that mutates pool capacities at runtime. All live and
// named emitters are discarded because they hold references into the old
// pools; persistent effects must be re-attached by the caller.
func (f *Effects) SetQuality(q Quality) {
	if q < QualityLow {
		q = QualityLow
	}
	if q > QualityUltra {
		q = QualityUltra
	}
	f.quality = q
	p := qualityPresets[q]

	f.sys.Clear()
	clear(f.named)

	// Back-to-front: trails under glows under debris under cores.
	if p.trailOn {
		f.sys.RegisterPool(KindTrail, p.trail)
	} else {
		f.sys.UnregisterPool(KindTrail)
	}
	if p.glowOn {
		f.sys.RegisterPool(KindGlow, p.glow)
	} else {
		f.sys.UnregisterPool(KindGlow)
	}
	f.sys.RegisterPool(KindDebris, p.debris)
	f.sys.RegisterPool(KindBasic, p.basic)
}

// Update advances named-emitter glides and the whole system by dt seconds.
func (f *Effects) Update(dt float64) {
	for _, n := range f.named {
		n.updateGlide(dt)
	}
	f.sys.Update(dt)
}

// Render draws the current visual state to the surface.
func (f *Effects) Render(surf Surface) {
	f.sys.Render(surf)
}

// Stats returns the system snapshot for diagnostics and HUDs.
func (f *Effects) Stats() Stats { return f.sys.Stats() }

// --- One-shot triggers -----------------------------------------------------

// Explosion spawns a one-shot debris burst at pos. Intensity scales particle
// count, launch speed, and shockwave radius; 1 is a standard explosion.
// Exhausted or disabled pools cap the count silently.
func (f *Effects) Explosion(pos Vec2, sub SubKind, intensity float64) {
	intensity = clampMin(intensity, 0.1)
	cfg := BurstConfig{
		Count: int(12 * intensity),
		Sub:   sub,
		Speed: Range{60 * intensity, 220 * intensity},
		Shock: Range{20 * intensity, 45 * intensity},
	}.withDefaults()
	pool := f.sys.Pool(KindDebris)
	for i := 0; i < cfg.Count; i++ {
		cfg.spawnOne(pool, f.sys.Rand(), pos)
	}
}

// Sparks spawns count one-shot trail sparks at pos with the given color.
func (f *Effects) Sparks(pos Vec2, color Color, count int) {
	cfg := TrailConfig{Color: color}.withDefaults()
	pool := f.sys.Pool(KindTrail)
	for i := 0; i < count; i++ {
		cfg.spawnOne(pool, f.sys.Rand(), pos)
	}
}

// ScoreBurst spawns a one-shot confetti burst at pos, the standard score
// popup accent. Intensity scales the count.
func (f *Effects) ScoreBurst(pos Vec2, color Color, intensity float64) {
	intensity = clampMin(intensity, 0.1)
	cfg := ConfettiConfig{
		Count: int(16 * intensity),
		Color: color,
		Spin:  Range{-8, 8},
	}.withDefaults()
	pool := f.sys.Pool(KindBasic)
	for i := 0; i < cfg.Count; i++ {
		cfg.spawnOne(pool, f.sys.Rand(), pos)
	}
}

// --- Composition triggers --------------------------------------------------

// AddComposition registers (or replaces) a composition template by name.
func (f *Effects) AddComposition(c Composition) {
	f.comps[c.Name] = c
}

// LoadCompositions parses YAML composition templates and registers them,
// replacing same-named entries.
func (f *Effects) LoadCompositions(data []byte) error {
	comps, err := ParseCompositions(data)
	if err != nil {
		return err
	}
	for _, c := range comps {
		f.comps[c.Name] = c
	}
	return nil
}

// Trigger fires the named composition once at pos and reports whether the
// name was known. Unknown names no-op.
func (f *Effects) Trigger(name string, pos Vec2) bool {
	c, ok := f.comps[name]
	if !ok {
		return false
	}
	e := f.sys.Compose(c, pos)
	e.Start()
	f.sys.AddEmitter(e)
	return true
}

// --- Named persistent emitters ---------------------------------------------

// Attach creates a persistent emitter from the named composition, keyed by
// handle, and starts it. An existing emitter under the same handle is
// detached first. Returns false (and does nothing) for unknown compositions.
// Use it for long-lived attached effects like a shield aura following an
// entity, repositioned every frame or glided.
func (f *Effects) Attach(handle, composition string, pos Vec2) bool {
	c, ok := f.comps[composition]
	if !ok {
		return false
	}
	e := f.sys.Compose(c, pos)
	e.Start()
	f.AttachEmitter(handle, e)
	return true
}

// AttachEmitter registers an already-built emitter under a handle and adds
// it to the system. The caller is responsible for having started it.
func (f *Effects) AttachEmitter(handle string, e Emitter) {
	f.Detach(handle)
	f.named[handle] = &namedEffect{emitter: e}
	f.sys.AddEmitter(e)
}

// Reposition moves a named emitter immediately, cancelling any glide.
// Unknown handles no-op.
func (f *Effects) Reposition(handle string, pos Vec2) {
	n, ok := f.named[handle]
	if !ok {
		return
	}
	n.glideX, n.glideY = nil, nil
	n.emitter.SetPosition(pos)
}

// GlideTo eases a named emitter toward pos over the given duration in
// seconds. Unknown handles no-op; a non-positive duration snaps.
func (f *Effects) GlideTo(handle string, pos Vec2, duration float64) {
	n, ok := f.named[handle]
	if !ok {
		return
	}
	if duration <= 0 {
		n.glideX, n.glideY = nil, nil
		n.emitter.SetPosition(pos)
		return
	}
	from := n.emitter.Position()
	n.glideX = gween.New(float32(from.X), float32(pos.X), float32(duration), ease.OutQuad)
	n.glideY = gween.New(float32(from.Y), float32(pos.Y), float32(duration), ease.OutQuad)
}

// Detach stops and forgets a named emitter. The registry removes it on the
// next tick; its particles live out their lifetimes.
func (f *Effects) Detach(handle string) {
	n, ok := f.named[handle]
	if !ok {
		return
	}
	n.emitter.Stop()
	delete(f.named, handle)
}

// Position returns a named emitter's position, or the zero vector for
// unknown handles.
func (f *Effects) Position(handle string) Vec2 {
	if n, ok := f.named[handle]; ok {
		return n.emitter.Position()
	}
	return Vec2{}
}

// updateGlide advances an in-flight glide and writes the eased position.
func (n *namedEffect) updateGlide(dt float64) {
	if n.glideX == nil {
		return
	}
	x, doneX := n.glideX.Update(float32(dt))
	y, _ := n.glideY.Update(float32(dt))
	n.emitter.SetPosition(Vec2{float64(x), float64(y)})
	if doneX {
		n.glideX, n.glideY = nil, nil
	}
}
