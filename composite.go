package ember

// CompositeEmitter owns a list of child emitters built from a named
// Composition. It spawns nothing itself; its update delegates the base
// accumulator to bookkeeping only, then advances every child and drops the
// ones that report finished. To the registry a composite is indistinguishable
// from a simple emitter, which makes layered effects ("fire explosion" =
// burst + glow) independently schedulable units.
type CompositeEmitter struct {
	EmitterCore
	children []Emitter
}

// NewCompositeEmitter wraps the given children. The composite is created
// stopped; Start starts it and every child.
func NewCompositeEmitter(pos Vec2, children ...Emitter) *CompositeEmitter {
	c := &CompositeEmitter{children: children}
	c.Pos = pos
	// The composite's own emitting window is irrelevant — it spawns nothing.
	// A zero duration satisfies the base stop condition on the first tick,
	// so the children alone decide when the composite is finished.
	c.Duration = 0
	for _, ch := range c.children {
		ch.SetPosition(pos)
	}
	return c
}

// Children returns the live child emitters.
func (c *CompositeEmitter) Children() []Emitter { return c.children }

// Start starts the composite and all children.
func (c *CompositeEmitter) Start() {
	c.EmitterCore.Start()
	for _, ch := range c.children {
		ch.Start()
	}
}

// Stop stops the composite and all children.
func (c *CompositeEmitter) Stop() {
	c.EmitterCore.Stop()
	for _, ch := range c.children {
		ch.Stop()
	}
}

// SetPosition moves the composite and every child with it.
func (c *CompositeEmitter) SetPosition(p Vec2) {
	c.EmitterCore.SetPosition(p)
	for _, ch := range c.children {
		ch.SetPosition(p)
	}
}

// Update advances base bookkeeping, then every child, compacting out
// children that finished this frame.
func (c *CompositeEmitter) Update(dt float64) {
	c.advance(dt)

	i := 0
	for i < len(c.children) {
		ch := c.children[i]
		ch.Update(dt)
		if ch.Finished() {
			last := len(c.children) - 1
			c.children[i] = c.children[last]
			c.children[last] = nil
			c.children = c.children[:last]
			continue
		}
		i++
	}
}

// EmitParticle is a no-op; composites never spawn particles directly.
func (c *CompositeEmitter) EmitParticle() {}

// Finished reports true only when the composite's own base condition holds
// and every child has finished.
func (c *CompositeEmitter) Finished() bool {
	return c.EmitterCore.Finished() && len(c.children) == 0
}
