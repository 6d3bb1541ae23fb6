package random

import (
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func catchPanic(fn func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
		}
	}()
	fn()
	return false
}

func TestSourceDeterministic(t *testing.T) {
	tt := assert.WrapTB(t)
	a, b := NewSource(ExampleSeed), NewSource(ExampleSeed)
	for i := 0; i < 1000; i++ {
		tt.MustEqual(a.Uint64(), b.Uint64(), "word %d", i)
	}

	c := NewSource(ExampleSeed.Fork("other"))
	same := 0
	d := NewSource(ExampleSeed)
	for i := 0; i < 100; i++ {
		if c.Uint64() == d.Uint64() {
			same++
		}
	}
	tt.MustAssert(same < 2, "forked source matched parent %d times", same)
}

func TestSourceSeed(t *testing.T) {
	tt := assert.WrapTB(t)
	s := NewSource(ExampleSeed)
	s.Uint64()
	s.Seed(42)

	exp := NewSource(SeedFromUint64(42))
	for i := 0; i < 100; i++ {
		tt.MustEqual(exp.Uint64(), s.Uint64())
	}
}

func TestSourceAsRandSource(t *testing.T) {
	tt := assert.WrapTB(t)
	r1 := rand.New(NewSource(ExampleSeed))
	r2 := rand.New(NewSource(ExampleSeed))
	for i := 0; i < 100; i++ {
		v := r1.Int63()
		tt.MustAssert(v >= 0)
		tt.MustEqual(v, r2.Int63())
	}
}

func TestSeedFork(t *testing.T) {
	tt := assert.WrapTB(t)
	parent := ExampleSeed
	orig := parent

	a := parent.Fork("a")
	tt.MustEqual(a, parent.Fork("a"))
	tt.MustAssert(a != parent.Fork("b"))
	tt.MustAssert(a != parent)
	tt.MustEqual(orig, parent)

	// Forking is not commutative across generations.
	tt.MustAssert(a.Fork("b") != parent.Fork("b").Fork("a"))
}

func TestSeedFromUint64(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(SeedFromUint64(1), SeedFromUint64(1))
	tt.MustAssert(SeedFromUint64(1) != SeedFromUint64(2))
}

func TestSeedString(t *testing.T) {
	tt := assert.WrapTB(t)
	s := ExampleSeed.String()
	tt.MustEqual(64, len(s))
	tt.MustEqual("bf1811ce15eefd20", s[:16])
}

func TestSeedFromEntropy(t *testing.T) {
	tt := assert.WrapTB(t)
	a, err := SeedFromEntropy()
	tt.MustOK(err)
	b, err := SeedFromEntropy()
	tt.MustOK(err)
	tt.MustAssert(a != b)
}

func TestUniformBelow(t *testing.T) {
	tt := assert.WrapTB(t)
	src := NewSource(ExampleSeed)
	for _, limit := range []uint64{1, 2, 3, 7, 8, 1000, 1<<63 + 1, ^uint64(0)} {
		for i := 0; i < 200; i++ {
			v := uniformBelow(src, limit)
			tt.MustAssert(v < limit, "%d >= %d", v, limit)
		}
	}
	tt.MustAssert(catchPanic(func() { uniformBelow(src, 0) }))

	var seen [5]int
	for i := 0; i < 5000; i++ {
		seen[uniformBelow(src, 5)]++
	}
	for v, n := range seen {
		tt.MustAssert(n > 800 && n < 1200, "value %d seen %d times", v, n)
	}
}

func TestUnsignedRange(t *testing.T) {
	tt := assert.WrapTB(t)
	g := NewUnsignedRange[uint8](ExampleSeed, 10, 13)
	var seen [3]bool
	for i := 0; i < 300; i++ {
		v := g.Next()
		tt.MustAssert(v >= 10 && v < 13, "%d", v)
		seen[v-10] = true
	}
	tt.MustEqual([3]bool{true, true, true}, seen)

	w := NewUnsignedRange[uint64](ExampleSeed, 0, ^uint64(0))
	for i := 0; i < 100; i++ {
		tt.MustAssert(w.Next() != ^uint64(0))
	}

	tt.MustAssert(catchPanic(func() { NewUnsignedRange[uint8](ExampleSeed, 5, 5) }))
	tt.MustAssert(catchPanic(func() { NewUnsignedRange[uint8](ExampleSeed, 6, 5) }))
}

func TestUnsigneds(t *testing.T) {
	tt := assert.WrapTB(t)
	a := NewUnsigneds[uint16](ExampleSeed)
	b := NewUnsigneds[uint16](ExampleSeed)
	distinct := map[uint16]bool{}
	for i := 0; i < 100; i++ {
		v := a.Next()
		tt.MustEqual(v, b.Next())
		distinct[v] = true
	}
	tt.MustAssert(len(distinct) > 90)
}
