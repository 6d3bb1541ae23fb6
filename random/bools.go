package random

// Bools generates fair coin flips, 64 per word drawn from the source.
type Bools struct {
	src  *Source
	bits uint64
	left int
}

func NewBools(seed Seed) *Bools {
	return &Bools{src: NewSource(seed)}
}

func (b *Bools) Next() bool {
	if b.left == 0 {
		b.bits = b.src.Uint64()
		b.left = 64
	}
	v := b.bits&1 == 1
	b.bits >>= 1
	b.left--
	return v
}

// WeightedBools generates true with probability n/d.
type WeightedBools struct {
	src  *Source
	n, d uint64
}

// NewWeightedBools panics unless 0 < d and n <= d.
func NewWeightedBools(seed Seed, n, d uint64) *WeightedBools {
	if d == 0 {
		panic("random: probability denominator must be positive")
	}
	if n > d {
		panic("random: probability must not exceed 1")
	}
	return &WeightedBools{src: NewSource(seed), n: n, d: d}
}

func (w *WeightedBools) Next() bool {
	return uniformBelow(w.src, w.d) < w.n
}
