package random

import (
	"math"
	"testing"

	"github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/golib/assert"
)

func TestStripedBitSourceRunLength(t *testing.T) {
	tt := assert.WrapTB(t)
	src := NewStripedBitSource(ExampleSeed, 4, 1)

	runs, length := 0, 0
	prev := src.Next()
	total := 0
	for i := 0; i < 100000; i++ {
		b := src.Next()
		length++
		if b != prev {
			runs++
			total += length
			length = 0
		}
		prev = b
	}
	mean := float64(total) / float64(runs)
	tt.MustAssert(math.Abs(mean-4) < 0.3, "%f", mean)
}

func TestStripedBitSourceSetPreviousBit(t *testing.T) {
	tt := assert.WrapTB(t)

	// With a huge mean run length, the next bit almost surely repeats
	// whatever the previous bit was set to.
	src := NewStripedBitSource(ExampleSeed, 1<<40, 1)
	src.Next()
	src.SetPreviousBit(true)
	tt.MustAssert(src.Next())
	src.SetPreviousBit(false)
	tt.MustAssert(!src.Next())
}

func TestStripedBitSourcePanics(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(catchPanic(func() { NewStripedBitSource(ExampleSeed, 1, 0) }))
	tt.MustAssert(catchPanic(func() { NewStripedBitSource(ExampleSeed, 1, 1) }))
	tt.MustAssert(catchPanic(func() { NewStripedBitSource(ExampleSeed, 1, 2) }))
}

func TestStripedLimbs(t *testing.T) {
	tt := assert.WrapTB(t)
	src := NewStripedBitSource(ExampleSeed, 8, 1)
	for _, bits := range []uint64{0, 1, 63, 64, 65, 200} {
		xs := StripedLimbs(src, bits)
		tt.MustEqual(int((bits+bignum.LimbBits-1)/bignum.LimbBits), len(xs))
		n := bignum.FromLimbsAsc(xs)
		tt.MustAssert(n.SignificantBits() <= bits, "%d bits: %x", bits, n)
	}
}

func TestStripedUnsignedBitChunks(t *testing.T) {
	tt := assert.WrapTB(t)
	g := NewStripedUnsignedBitChunks[uint8](ExampleSeed, 5, 4, 1)
	for i := 0; i < 1000; i++ {
		tt.MustAssert(g.Next() < 32)
	}
	tt.MustAssert(catchPanic(func() { NewStripedUnsignedBitChunks[uint8](ExampleSeed, 9, 4, 1) }))
}

func TestStripedUnsigneds(t *testing.T) {
	tt := assert.WrapTB(t)

	// Long runs make values near zero and near the maximum common.
	g := NewStripedUnsigneds[uint64](ExampleSeed, 64, 1)
	var zeroes, ones int
	for i := 0; i < 1000; i++ {
		switch g.Next() {
		case 0:
			zeroes++
		case math.MaxUint64:
			ones++
		}
	}
	tt.MustAssert(zeroes > 100, "%d", zeroes)
	tt.MustAssert(ones > 100, "%d", ones)
}

func TestStripedSigneds(t *testing.T) {
	tt := assert.WrapTB(t)
	g := NewStripedSigneds[int16](ExampleSeed, 4, 1)
	var pos, neg int
	for i := 0; i < 10000; i++ {
		if g.Next() < 0 {
			neg++
		} else {
			pos++
		}
	}
	tt.MustAssert(neg > 4700 && neg < 5300, "pos %d, neg %d", pos, neg)

	a := NewStripedSigneds[int64](ExampleSeed, 4, 1)
	b := NewStripedSigneds[int64](ExampleSeed, 4, 1)
	for i := 0; i < 100; i++ {
		tt.MustEqual(a.Next(), b.Next())
	}
}
