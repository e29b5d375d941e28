package synth

import "math/rand"

// CyclePool implements the cycle-mode draw policy: tiles are drawn from a
// shuffled permutation of the catalog without replacement, so every tile is
// used exactly once per full cycle. On exhaustion the pool reshuffles and
// the cursor restarts at zero.
//
// The pool is the only engine state that survives a generation pass. It is
// owned by one generation session and must not be shared across sessions.
type CyclePool struct {
	order  []int
	cursor int
}

// Next returns the next catalog index in the current cycle.
//
// Parameters:
//   - rng: The random source used for reshuffles.
//   - n: The current catalog size. If it differs from the size the pool was
//     shuffled for (the catalog was rebuilt), the cycle restarts with a
//     fresh permutation.
//
// The caller guards n > 0.
func (p *CyclePool) Next(rng *rand.Rand, n int) int {
	if len(p.order) != n || p.cursor >= len(p.order) {
		p.order = rng.Perm(n)
		p.cursor = 0
	}
	idx := p.order[p.cursor]
	p.cursor++
	return idx
}

// Reset discards the current permutation so the next draw starts a fresh
// cycle.
func (p *CyclePool) Reset() {
	p.order = nil
	p.cursor = 0
}
