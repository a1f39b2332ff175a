package ember

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// recordSurface counts primitive calls for render tests.
type recordSurface struct {
	fills   int
	strokes int
	lines   int
	lastFill struct {
		center Vec2
		radius float64
		paint  Paint
	}
}

func (r *recordSurface) FillCircle(center Vec2, radius float64, p Paint) {
	r.fills++
	r.lastFill.center = center
	r.lastFill.radius = radius
	r.lastFill.paint = p
}

func (r *recordSurface) StrokeCircle(center Vec2, radius float64, p Paint) {
	r.strokes++
}

func (r *recordSurface) Polyline(points []Vec2, p Paint) {
	if len(points) >= 2 {
		r.lines++
	}
}

func (r *recordSurface) reset() {
	*r = recordSurface{}
}

func TestRangeRand(t *testing.T) {
	rng := NewSystem(1).Rand()
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.Rand(rng)
		if v < 10 || v > 20 {
			t.Fatalf("Rand() = %f, outside [10, 20]", v)
		}
	}

	// Equal min/max.
	r2 := Range{5, 5}
	for i := 0; i < 10; i++ {
		if r2.Rand(rng) != 5 {
			t.Fatal("Rand() with Min==Max should return Min")
		}
	}
}

func TestRangeRandTicksFloor(t *testing.T) {
	rng := NewSystem(1).Rand()
	if got := (Range{0, 0}).RandTicks(rng); got != 1 {
		t.Errorf("RandTicks on zero range = %d, want 1", got)
	}
	if got := (Range{-10, -5}).RandTicks(rng); got != 1 {
		t.Errorf("RandTicks on negative range = %d, want 1", got)
	}
}

func TestClamp01(t *testing.T) {
	assertNear(t, "clamp01(-1)", clamp01(-1), 0)
	assertNear(t, "clamp01(0.5)", clamp01(0.5), 0.5)
	assertNear(t, "clamp01(2)", clamp01(2), 1)
}

func TestColorScaled(t *testing.T) {
	c := Color{1, 0.5, 0.25, 0.8}
	got := c.Scaled(0.5)
	assertNear(t, "A", got.A, 0.4)
	assertNear(t, "R unchanged", got.R, 1)

	// Alpha never exceeds 1.
	over := c.Scaled(10)
	assertNear(t, "A clamped", over.A, 1)
}

func TestKindString(t *testing.T) {
	if KindGlow.String() != "glow" {
		t.Errorf("KindGlow.String() = %q", KindGlow.String())
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("Kind(200).String() = %q", Kind(200).String())
	}
}
