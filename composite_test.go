package ember

import "testing"

func newBoundedChild(duration float64) (*TrailEmitter, *Pool) {
	sys := NewSystem(1)
	pool := NewPool(KindTrail, 256, sys.Rand())
	e := NewTrailEmitter(pool, sys.Rand(), Vec2{}, TrailConfig{
		Rate:     4,
		Duration: duration,
		Life:     Range{100000, 100000},
	})
	return e, pool
}

func TestCompositeFinishesWithLongestChild(t *testing.T) {
	short, _ := newBoundedChild(1.0)
	long, _ := newBoundedChild(2.0)
	c := NewCompositeEmitter(Vec2{}, short, long)
	c.Start()

	// dt of 0.25 is exact in binary, so the duration boundaries land
	// precisely on a tick.
	for i := 0; i < 7; i++ {
		c.Update(0.25)
	}
	if c.Finished() {
		t.Fatal("composite finished before its longest child")
	}
	c.Update(0.25) // long child reaches 2.0s here
	if !c.Finished() {
		t.Error("composite should finish once its last child does")
	}
}

func TestCompositeDropsFinishedChildren(t *testing.T) {
	short, _ := newBoundedChild(0.5)
	long, _ := newBoundedChild(2.0)
	c := NewCompositeEmitter(Vec2{}, short, long)
	c.Start()

	if len(c.Children()) != 2 {
		t.Fatalf("children = %d, want 2", len(c.Children()))
	}
	for i := 0; i < 2; i++ {
		c.Update(0.25)
	}
	if len(c.Children()) != 1 {
		t.Errorf("children = %d after short child expired, want 1", len(c.Children()))
	}
	if short.Finished() != true {
		t.Error("short child should be finished")
	}
}

func TestCompositeStartStopPropagate(t *testing.T) {
	a, _ := newBoundedChild(Unbounded)
	b, _ := newBoundedChild(Unbounded)
	c := NewCompositeEmitter(Vec2{}, a, b)

	c.Start()
	if !a.Active() || !b.Active() {
		t.Fatal("Start should start every child")
	}
	c.Stop()
	if !a.Finished() || !b.Finished() {
		t.Error("Stop should stop every child")
	}
	if !c.Finished() {
		// Children are only dropped on update; one tick flushes them.
		c.Update(0.25)
		if !c.Finished() {
			t.Error("stopped composite should report finished after a tick")
		}
	}
}

func TestCompositeSetPositionMovesChildren(t *testing.T) {
	a, _ := newBoundedChild(Unbounded)
	b, _ := newBoundedChild(Unbounded)
	c := NewCompositeEmitter(Vec2{X: 1, Y: 1}, a, b)

	if a.Position() != (Vec2{X: 1, Y: 1}) {
		t.Fatal("children should adopt the composite position at build time")
	}
	c.SetPosition(Vec2{X: 50, Y: 60})
	if a.Position() != (Vec2{X: 50, Y: 60}) || b.Position() != (Vec2{X: 50, Y: 60}) {
		t.Error("SetPosition should move every child")
	}
}

func TestCompositeChildrenSpawnWhileRunning(t *testing.T) {
	child, pool := newBoundedChild(Unbounded)
	c := NewCompositeEmitter(Vec2{}, child)
	c.Start()
	for i := 0; i < 8; i++ {
		c.Update(0.25)
	}
	// Rate 4 over 2 seconds.
	got := pool.ActiveCount()
	if got < 7 || got > 9 {
		t.Errorf("child emitted %d through composite updates, want 8 ± 1", got)
	}
}

func TestCompositeEmptyFinishesImmediately(t *testing.T) {
	c := NewCompositeEmitter(Vec2{})
	c.Start()
	c.Update(0.25)
	if !c.Finished() {
		t.Error("childless composite should finish on its first update")
	}
}
