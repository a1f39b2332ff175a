// Package ember is a real-time 2D particle and effects engine for
// [Ebitengine].
//
// Ember simulates hundreds of independently-typed visual entities —
// explosions, spark trails, glows, score bursts, layered composite effects —
// at a fixed frame budget with no per-frame heap allocation. Particles are
// recycled through fixed-capacity typed pools; when a pool is exhausted the
// spawn is silently dropped, trading visual density for a hard memory bound.
//
// # Quick start
//
// [Effects] is the facade game code talks to. Create one, drive it from your
// game loop, and trigger effects by name or position:
//
//	fx := ember.NewEffects(1)
//
//	func (g *Game) Update() error {
//		fx.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		fx.Render(ember.NewImageSurface(screen))
//	}
//
//	// Somewhere in game logic:
//	fx.Explosion(ember.Vec2{X: 320, Y: 240}, ember.DebrisFire, 1.5)
//	fx.Trigger("electric-storm", pos)
//
// Persistent effects attach under a string handle and follow a moving
// source:
//
//	fx.Attach("shield", "score-burst", playerPos)
//	fx.Reposition("shield", playerPos) // every frame
//	fx.Detach("shield")
//
// # Layers
//
// Underneath the facade, [System] owns one [Pool] per particle [Kind] and an
// ordered list of live [Emitter] values. Pools render in registration order,
// which expresses back-to-front layering. Concrete emitters
// ([BurstEmitter], [TrailEmitter], [GlowEmitter], [ConfettiEmitter]) share
// the [EmitterCore] accumulator so spawn rates hold steady under frame-rate
// jitter; [CompositeEmitter] bundles children built from a named
// [Composition], loadable from YAML via [ParseCompositions].
//
// Rendering goes through the [Surface] interface — filled circles, stroked
// circles, and polylines keyed by a [Paint] — so the engine itself never
// touches a window. [ImageSurface] is the ebiten implementation.
//
// Quality presets ([Effects.SetQuality]) resize every pool and disable whole
// categories (trails, glows) for low-end targets.
//
// The engine is single-threaded and frame-synchronous: call Update then
// Render once per frame from one goroutine. All randomness flows through the
// seed given to [NewEffects]/[NewSystem], so simulations are reproducible.
//
// [Ebitengine]: https://ebitengine.org
package ember
