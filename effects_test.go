package ember

import (
	"math"
	"testing"
)

func TestQualityPresetCapacities(t *testing.T) {
	f := NewEffects(1)
	cases := []struct {
		q                          Quality
		basic, trail, glow, debris int
	}{
		{QualityLow, 64, 0, 0, 48},
		{QualityMedium, 128, 96, 0, 96},
		{QualityHigh, 256, 192, 64, 160},
		{QualityUltra, 512, 384, 128, 320},
	}
	capOf := func(k Kind) int {
		if pl := f.System().Pool(k); pl != nil {
			return pl.Cap()
		}
		return 0
	}
	for _, tc := range cases {
		f.SetQuality(tc.q)
		if f.Quality() != tc.q {
			t.Fatalf("quality = %v, want %v", f.Quality(), tc.q)
		}
		if capOf(KindBasic) != tc.basic || capOf(KindTrail) != tc.trail ||
			capOf(KindGlow) != tc.glow || capOf(KindDebris) != tc.debris {
			t.Errorf("%v: caps = %d/%d/%d/%d, want %d/%d/%d/%d", tc.q,
				capOf(KindBasic), capOf(KindTrail), capOf(KindGlow), capOf(KindDebris),
				tc.basic, tc.trail, tc.glow, tc.debris)
		}
	}
}

func TestSetQualityClampsOutOfRange(t *testing.T) {
	f := NewEffects(1)
	f.SetQuality(Quality(-3))
	if f.Quality() != QualityLow {
		t.Errorf("quality = %v, want low", f.Quality())
	}
	f.SetQuality(Quality(99))
	if f.Quality() != QualityUltra {
		t.Errorf("quality = %v, want ultra", f.Quality())
	}
}

func TestSetQualityLeavesNoDanglingState(t *testing.T) {
	f := NewEffects(1)
	f.Explosion(Vec2{X: 10, Y: 10}, DebrisFire, 1)
	f.Attach("aura", "fire-explosion", Vec2{})
	if f.Stats().Emitters == 0 {
		t.Fatal("expected a live emitter before the switch")
	}

	f.SetQuality(QualityLow)
	st := f.Stats()
	if st.Emitters != 0 {
		t.Errorf("emitters = %d after quality switch, want 0", st.Emitters)
	}
	for _, ps := range st.Pools {
		if ps.Active != 0 {
			t.Errorf("%v pool has %d active after quality switch, want 0", ps.Kind, ps.Active)
		}
	}
	if f.Position("aura") != (Vec2{}) {
		t.Error("named handles should be discarded on a quality switch")
	}
}

func TestDisabledCategoryIsNoop(t *testing.T) {
	f := NewEffects(1)
	f.SetQuality(QualityLow) // trails and glows off

	f.Sparks(Vec2{}, ColorWhite, 50)
	st := f.Stats()
	total := 0
	for _, ps := range st.Pools {
		total += ps.Active
	}
	if total != 0 {
		t.Errorf("sparks spawned %d particles with trails disabled, want 0", total)
	}

	// Compositions skip children whose category is disabled.
	if !f.Trigger("fire-explosion", Vec2{}) {
		t.Fatal("builtin composition should be known")
	}
	f.Update(1.0 / 60.0)
	if f.System().Pool(KindGlow) != nil {
		t.Error("glow pool should not exist at low quality")
	}
}

func TestExplosionLifecycle(t *testing.T) {
	f := NewEffects(7)
	f.Explosion(Vec2{X: 100, Y: 100}, DebrisNormal, 1)

	pool := f.System().Pool(KindDebris)
	if pool.ActiveCount() != 12 {
		t.Fatalf("active = %d after explosion, want 12", pool.ActiveCount())
	}
	constructed := pool.Constructed()

	// Default debris lifetime tops out at 70 ticks; after that every
	// particle must be reclaimed.
	for i := 0; i < 71; i++ {
		f.Update(1.0 / 60.0)
	}
	if pool.ActiveCount() != 0 {
		t.Errorf("active = %d after lifetimes elapsed, want 0", pool.ActiveCount())
	}
	if pool.AvailableCount() != constructed {
		t.Errorf("available = %d, want %d reclaimed", pool.AvailableCount(), constructed)
	}

	// A second explosion reuses the reclaimed particles.
	f.Explosion(Vec2{}, DebrisNormal, 1)
	if pool.Constructed() != constructed {
		t.Errorf("constructed grew from %d to %d, want reuse", constructed, pool.Constructed())
	}
}

func TestExplosionIntensityScalesCount(t *testing.T) {
	f := NewEffects(1)
	f.Explosion(Vec2{}, DebrisFire, 3)
	if got := f.System().Pool(KindDebris).ActiveCount(); got != 36 {
		t.Errorf("active = %d at intensity 3, want 36", got)
	}
}

func TestScoreBurst(t *testing.T) {
	f := NewEffects(1)
	f.ScoreBurst(Vec2{X: 40, Y: 40}, Color{0.3, 1, 0.4, 1}, 1)
	pool := f.System().Pool(KindBasic)
	if pool.ActiveCount() != 16 {
		t.Fatalf("active = %d, want 16", pool.ActiveCount())
	}
	for _, p := range pool.active {
		if p.Color != (Color{0.3, 1, 0.4, 1}) {
			t.Fatal("score burst should use the given color")
		}
		if p.RotSpeed < -8 || p.RotSpeed > 8 {
			t.Fatalf("spin %f outside [-8, 8]", p.RotSpeed)
		}
	}
}

func TestTriggerUnknownNameNoop(t *testing.T) {
	f := NewEffects(1)
	if f.Trigger("no-such-effect", Vec2{}) {
		t.Error("unknown composition should report false")
	}
	if f.Stats().Emitters != 0 {
		t.Error("unknown composition should add no emitters")
	}
}

func TestTriggerRunsToCompletion(t *testing.T) {
	f := NewEffects(1)
	if !f.Trigger("ice-shatter", Vec2{X: 50, Y: 50}) {
		t.Fatal("builtin composition should be known")
	}
	if f.Stats().Emitters != 1 {
		t.Fatalf("emitters = %d, want 1 composite", f.Stats().Emitters)
	}
	f.Update(1.0 / 60.0)
	if f.System().Pool(KindDebris).ActiveCount() != 20 {
		t.Errorf("burst child emitted %d, want 20", f.System().Pool(KindDebris).ActiveCount())
	}

	// The trail child runs 0.5s; drive well past it and past every
	// particle lifetime.
	for i := 0; i < 200; i++ {
		f.Update(1.0 / 60.0)
	}
	st := f.Stats()
	if st.Emitters != 0 {
		t.Errorf("emitters = %d after completion, want 0", st.Emitters)
	}
	assertNear(t, "utilization", st.Utilization, 0)
}

func TestAttachRepositionDetach(t *testing.T) {
	f := NewEffects(1)
	if !f.Attach("shield", "fire-explosion", Vec2{X: 10, Y: 10}) {
		t.Fatal("attach of a builtin should succeed")
	}
	if f.Position("shield") != (Vec2{X: 10, Y: 10}) {
		t.Errorf("position = %v, want the attach point", f.Position("shield"))
	}

	f.Reposition("shield", Vec2{X: 30, Y: 40})
	if f.Position("shield") != (Vec2{X: 30, Y: 40}) {
		t.Errorf("position = %v after reposition", f.Position("shield"))
	}

	// Re-attaching under the same handle replaces the emitter.
	f.Attach("shield", "score-burst", Vec2{X: 1, Y: 2})
	if f.Position("shield") != (Vec2{X: 1, Y: 2}) {
		t.Error("re-attach should replace the named emitter")
	}

	f.Detach("shield")
	if f.Position("shield") != (Vec2{}) {
		t.Error("detached handle should look up as zero")
	}
	f.Detach("shield") // double detach is a no-op
	f.Reposition("shield", Vec2{X: 9, Y: 9})
}

func TestAttachUnknownComposition(t *testing.T) {
	f := NewEffects(1)
	if f.Attach("x", "no-such-effect", Vec2{}) {
		t.Error("unknown composition should report false")
	}
	if f.Stats().Emitters != 0 {
		t.Error("failed attach should add no emitters")
	}
}

func TestGlideToEasesTowardTarget(t *testing.T) {
	f := NewEffects(1)
	sys := f.System()
	e := NewGlowEmitter(sys.Pool(KindGlow), sys.Rand(), Vec2{}, GlowConfig{Rate: 1})
	e.Start()
	f.AttachEmitter("orb", e)

	f.GlideTo("orb", Vec2{X: 100, Y: 0}, 1.0)
	f.Update(0.25)
	mid := f.Position("orb")
	if mid.X <= 0 || mid.X >= 100 {
		t.Fatalf("x = %f mid-glide, want strictly between 0 and 100", mid.X)
	}
	// Ease-out covers more than a quarter of the distance in the first
	// quarter of the duration.
	if mid.X < 25 {
		t.Errorf("x = %f at t=0.25, ease-out should be ahead of linear", mid.X)
	}

	for i := 0; i < 8; i++ {
		f.Update(0.25)
	}
	end := f.Position("orb")
	if math.Abs(end.X-100) > 0.5 || math.Abs(end.Y) > 0.5 {
		t.Errorf("position = %v after glide, want (100, 0)", end)
	}
}

func TestGlideZeroDurationSnaps(t *testing.T) {
	f := NewEffects(1)
	sys := f.System()
	e := NewGlowEmitter(sys.Pool(KindGlow), sys.Rand(), Vec2{}, GlowConfig{Rate: 1})
	e.Start()
	f.AttachEmitter("orb", e)

	f.GlideTo("orb", Vec2{X: 7, Y: 8}, 0)
	if f.Position("orb") != (Vec2{X: 7, Y: 8}) {
		t.Errorf("position = %v, want an immediate snap", f.Position("orb"))
	}
}

func TestRepositionCancelsGlide(t *testing.T) {
	f := NewEffects(1)
	sys := f.System()
	e := NewGlowEmitter(sys.Pool(KindGlow), sys.Rand(), Vec2{}, GlowConfig{Rate: 1})
	e.Start()
	f.AttachEmitter("orb", e)

	f.GlideTo("orb", Vec2{X: 100, Y: 100}, 5.0)
	f.Reposition("orb", Vec2{X: -5, Y: -5})
	f.Update(1.0 / 60.0)
	if f.Position("orb") != (Vec2{X: -5, Y: -5}) {
		t.Errorf("position = %v, reposition should cancel the glide", f.Position("orb"))
	}
}

func TestLoadCompositions(t *testing.T) {
	f := NewEffects(1)
	if err := f.LoadCompositions([]byte(sampleYAML)); err != nil {
		t.Fatalf("LoadCompositions: %v", err)
	}
	if !f.Trigger("firework", Vec2{}) {
		t.Error("loaded composition should be triggerable")
	}
	if err := f.LoadCompositions([]byte("compositions: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestQualityString(t *testing.T) {
	cases := map[Quality]string{
		QualityLow:    "low",
		QualityMedium: "medium",
		QualityHigh:   "high",
		QualityUltra:  "ultra",
	}
	for q, want := range cases {
		if q.String() != want {
			t.Errorf("%d.String() = %q, want %q", q, q.String(), want)
		}
	}
}
