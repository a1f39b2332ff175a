package ember

import "math/rand/v2"

// defaultPoolSize is used when a pool is created with a non-positive
// capacity.
const defaultPoolSize = 128

// Pool is a fixed-capacity recycler for particles of one kind. It holds two
// disjoint sets, available and active, backed by storage allocated once up
// front; after warm-up a pool never allocates again. Acquire returns nil when
// the pool is at capacity — exhaustion trades visual density for a hard bound
// on memory and is deliberately silent.
type Pool struct {
	kind    Kind
	maxSize int

	// storage has capacity maxSize; instances are appended on first use and
	// never released for the life of the pool.
	storage     []Particle
	available   []*Particle
	active      []*Particle
	constructed int

	rng *rand.Rand
}

// NewPool creates an empty pool for the given kind. Instances are constructed
// lazily on first acquisition, up to maxSize. rng feeds the per-tick jitter of
// stochastic variants during UpdateAll.
func NewPool(kind Kind, maxSize int, rng *rand.Rand) *Pool {
	if maxSize <= 0 {
		maxSize = defaultPoolSize
	}
	return &Pool{
		kind:      kind,
		maxSize:   maxSize,
		storage:   make([]Particle, 0, maxSize),
		available: make([]*Particle, 0, maxSize),
		active:    make([]*Particle, 0, maxSize),
		rng:       rng,
	}
}

// Kind returns the particle kind this pool recycles.
func (pl *Pool) Kind() Kind { return pl.kind }

// Cap returns the pool's fixed capacity.
func (pl *Pool) Cap() int { return pl.maxSize }

// ActiveCount returns the number of currently simulated particles.
func (pl *Pool) ActiveCount() int { return len(pl.active) }

// AvailableCount returns the number of inactive, reusable particles.
func (pl *Pool) AvailableCount() int { return len(pl.available) }

// Constructed returns how many instances the pool has ever built. Once the
// pool is warm this stops increasing: every subsequent Acquire is a reuse.
func (pl *Pool) Constructed() int { return pl.constructed }

// Acquire returns a particle reset to active defaults, preferring reuse from
// the available set. It constructs a new instance only while below capacity,
// and returns nil when the pool is exhausted. Callers skip the spawn on nil;
// it is not an error.
func (pl *Pool) Acquire() *Particle {
	var p *Particle
	if n := len(pl.available); n > 0 {
		p = pl.available[n-1]
		pl.available = pl.available[:n-1]
	} else if pl.constructed < pl.maxSize {
		pl.storage = append(pl.storage, Particle{})
		p = &pl.storage[len(pl.storage)-1]
		pl.constructed++
	} else {
		return nil
	}
	p.reset(pl.kind)
	pl.active = append(pl.active, p)
	return p
}

// Release returns an active particle to the available set and clears its
// active flag. Releasing a particle the pool does not consider active is a
// no-op.
func (pl *Pool) Release(p *Particle) {
	for i, q := range pl.active {
		if q == p {
			pl.reclaim(i)
			return
		}
	}
}

// reclaim moves active[i] to the available set by swap-remove.
func (pl *Pool) reclaim(i int) {
	p := pl.active[i]
	p.Active = false
	last := len(pl.active) - 1
	pl.active[i] = pl.active[last]
	pl.active = pl.active[:last]
	pl.available = append(pl.available, p)
}

// UpdateAll advances every active particle by one frame-tick and sweeps
// expired ones back into the available set in the same pass. No allocation,
// no separate collection step.
func (pl *Pool) UpdateAll(dt float64) {
	i := 0
	for i < len(pl.active) {
		p := pl.active[i]
		p.step(dt, pl.rng)
		if !p.Active {
			pl.reclaim(i)
			continue
		}
		i++
	}
}

// RenderAll draws every active particle to the surface in acquisition order.
func (pl *Pool) RenderAll(s Surface) {
	for _, p := range pl.active {
		p.render(s)
	}
}

// Clear forcibly deactivates and reclaims all active particles. Used on
// reset and on quality-level changes.
func (pl *Pool) Clear() {
	for len(pl.active) > 0 {
		pl.reclaim(len(pl.active) - 1)
	}
}
