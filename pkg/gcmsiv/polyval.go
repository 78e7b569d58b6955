package gcmsiv

// Polyval computes the POLYVAL universal hash (RFC 8452 §3): given a hash
// key H and blocks X_1..X_s, S_0 = 0, S_j = dot(S_{j-1} XOR X_j, H).
//
// Polyval holds only the accumulator and hash key, matching this
// package's incremental-hash shape: construct once, call
// UpdateBlock/UpdateBlocks any number of times, read Sum when done.
type Polyval struct {
	h   FieldElement
	acc FieldElement
}

// NewPolyval returns a Polyval keyed by h, with a zero accumulator.
func NewPolyval(h FieldElement) *Polyval {
	return &Polyval{h: h}
}

// Reset restores the accumulator to zero without changing the key.
func (p *Polyval) Reset() {
	p.acc = FieldElement{}
}

// UpdateBlock folds one more block into the running hash.
func (p *Polyval) UpdateBlock(x FieldElement) {
	p.acc = FieldDot(FieldAdd(p.acc, x), p.h)
}

// UpdateBlocks folds a sequence of blocks into the running hash, in order.
func (p *Polyval) UpdateBlocks(xs []FieldElement) {
	for _, x := range xs {
		p.UpdateBlock(x)
	}
}

// Sum returns the current hash value S_s. It does not reset the
// accumulator.
func (p *Polyval) Sum() FieldElement {
	return p.acc
}

// ComputePolyval is the one-shot form of POLYVAL(H, X_1, ..., X_s). An
// empty block sequence returns the zero element.
func ComputePolyval(h FieldElement, blocks []FieldElement) FieldElement {
	p := NewPolyval(h)
	p.UpdateBlocks(blocks)
	return p.Sum()
}
