package bignum

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func nats(s string) Natural { return MustNaturalFromString(s, 0) }

func TestGetBits(t *testing.T) {
	for idx, tc := range []struct {
		x          uint16
		start, end uint64
		out        uint16
	}{
		{0xabcd, 4, 8, 0xc},
		{0xabcd, 0, 16, 0xabcd},
		{0xabcd, 12, 100, 0xa},
		{0xabcd, 16, 20, 0},
		{0xabcd, 200, 300, 0},
		{0xabcd, 5, 5, 0},
	} {
		t.Run(fmt.Sprintf("%d/%x[%d:%d]", idx, tc.x, tc.start, tc.end), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, GetBits(tc.x, tc.start, tc.end))
		})
	}
}

func TestAssignBits(t *testing.T) {
	for idx, tc := range []struct {
		x          uint16
		start, end uint64
		bits       uint16
		out        uint16
	}{
		{0xab5d, 4, 8, 0xc, 0xabcd},
		{0xffff, 0, 16, 0, 0},
		{0x0000, 12, 20, 0xf, 0xf000},
		{0x1234, 16, 40, 0, 0x1234},
		{0x1234, 100, 200, 0, 0x1234},
	} {
		t.Run(fmt.Sprintf("%d/%x[%d:%d]=%x", idx, tc.x, tc.start, tc.end, tc.bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			x := tc.x
			AssignBits(&x, tc.start, tc.end, tc.bits)
			tt.MustEqual(tc.out, x)
		})
	}
}

func TestAssignBitsPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	x := uint16(0)
	tt.MustAssert(catchPanic(func() { AssignBits(&x, 4, 8, 0x10) }))
	tt.MustAssert(catchPanic(func() { AssignBits(&x, 12, 20, 0x10) }))
	tt.MustAssert(catchPanic(func() { AssignBits(&x, 16, 20, 1) }))
	tt.MustAssert(catchPanic(func() { AssignBits(&x, 8, 4, 0) }))
	tt.MustAssert(catchPanic(func() { GetBits(x, 8, 4) }))
}

func TestGetAssignBitsRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 10000; i++ {
		x := globalRNG.Uint64()
		start := uint64(globalRNG.Intn(70))
		end := start + uint64(globalRNG.Intn(70))

		y := x
		AssignBits(&y, start, end, GetBits(x, start, end))
		tt.MustEqual(x, y, "%x[%d:%d]", x, start, end)

		// Assigning then reading returns what was assigned, for bits that fit.
		if start < 64 {
			w := end - start
			if w > 64-start {
				w = 64 - start
			}
			bits := globalRNG.Uint64() & lowMask[uint64](w)
			AssignBits(&y, start, end, bits)
			tt.MustEqual(bits, GetBits(y, start, end), "%x[%d:%d]", x, start, end)
		}
	}
}

func TestGetBitsSigned(t *testing.T) {
	for idx, tc := range []struct {
		x          int8
		start, end uint64
		out        uint64
	}{
		{-1, 0, 16, 0xffff},
		{-2, 1, 4, 0x7},
		{-2, 0, 4, 0xe},
		{-128, 4, 12, 0xf8},
		{-1, 100, 164, math.MaxUint64},
		{0x35, 4, 100, 0x3},
		{0x35, 8, 16, 0},
	} {
		t.Run(fmt.Sprintf("%d/%d[%d:%d]", idx, tc.x, tc.start, tc.end), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, GetBitsSigned(tc.x, tc.start, tc.end))
		})
	}
}

func TestGetBitsSignedTooWide(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(catchPanic(func() { GetBitsSigned(int8(-1), 0, 65) }))
}

func TestAssignBitsSigned(t *testing.T) {
	for idx, tc := range []struct {
		x          int8
		start, end uint64
		bits       uint64
		out        int8
	}{
		{-1, 0, 4, 0, -16},
		{-16, 0, 4, 0xf, -1},
		{5, 0, 3, 0x2, 2},
		{-5, 7, 9, 0x3, -5},
		{-5, 0, 16, 0xfff0, -16},
		{5, 4, 16, 0, 5},
	} {
		t.Run(fmt.Sprintf("%d/%d[%d:%d]=%x", idx, tc.x, tc.start, tc.end, tc.bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			x := tc.x
			AssignBitsSigned(&x, tc.start, tc.end, tc.bits)
			tt.MustEqual(tc.out, x)
		})
	}
}

func TestAssignBitsSignedSignChange(t *testing.T) {
	tt := assert.WrapTB(t)
	pos, neg := int8(5), int8(-5)
	tt.MustAssert(catchPanic(func() { AssignBitsSigned(&pos, 7, 8, 1) }))
	tt.MustAssert(catchPanic(func() { AssignBitsSigned(&neg, 7, 8, 0) }))
	tt.MustAssert(catchPanic(func() { AssignBitsSigned(&neg, 0, 100, 0) }))
	tt.MustEqual(int8(5), pos)
	tt.MustEqual(int8(-5), neg)
}

func TestNaturalGetBits(t *testing.T) {
	for idx, tc := range []struct {
		n          Natural
		start, end uint64
		out        Natural
	}{
		{nats("0xabcd"), 4, 8, nats("0xc")},
		{nats("0x1234567890abcdef1234567890abcdef"), 60, 72, nats("0xef1")},
		{nats("0x1234567890abcdef1234567890abcdef"), 64, 128, nats("0x1234567890abcdef")},
		{nats("0x1234567890abcdef1234567890abcdef"), 4, 200, nats("0x1234567890abcdef1234567890abcde")},
		{nats("0x1234567890abcdef1234567890abcdef"), 128, 200, Natural{}},
		{nats("0xffffffffffffffffffffffffffffffff"), 30, 100, LowMaskNatural(70)},
		{Natural{}, 0, 100, Natural{}},
	} {
		t.Run(fmt.Sprintf("%d/%x[%d:%d]", idx, tc.n, tc.start, tc.end), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out := tc.n.GetBits(tc.start, tc.end)
			tt.MustOK(checkNormalized(out))
			tt.MustAssert(tc.out.Equal(out), "found: %x", out)
		})
	}
}

func TestNaturalAssignBits(t *testing.T) {
	for idx, tc := range []struct {
		n          Natural
		start, end uint64
		bits       Natural
		out        Natural
	}{
		{nats("0xab5d"), 4, 8, nats("0xc"), nats("0xabcd")},
		{nats("0x1"), 100, 104, nats("0xf"), nats("0xf0000000000000000000000001")},
		{nats("0xffffffffffffffffffffffffffffffff"), 0, 128, Natural{}, Natural{}},
		{nats("0xffffffffffffffffffffffffffffffff"), 0, 64, Natural{}, nats("0xffffffffffffffff0000000000000000")},
		{nats("0xffffffffffffffffffffffffffffffff"), 60, 200, nats("0x1"), nats("0x1fffffffffffffff")},
		{Natural{}, 0, 8, nats("0xff"), nats("0xff")},
	} {
		t.Run(fmt.Sprintf("%d/%x[%d:%d]=%x", idx, tc.n, tc.start, tc.end, tc.bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			n := tc.n.Clone()
			n.AssignBits(tc.start, tc.end, tc.bits)
			tt.MustOK(checkNormalized(n))
			tt.MustAssert(tc.out.Equal(n), "found: %x", n)
		})
	}
}

func TestNaturalAssignBitsTooWide(t *testing.T) {
	tt := assert.WrapTB(t)
	n := nats("0x1234567890abcdef1234567890abcdef")
	tt.MustAssert(catchPanic(func() { n.AssignBits(0, 4, nats("0x10")) }))
	tt.MustAssert(catchPanic(func() { n.AssignBits(0, 100, PowerOf2Natural(100)) }))
}

func TestNaturalSetClearBit(t *testing.T) {
	tt := assert.WrapTB(t)

	var n Natural
	n.SetBit(200)
	tt.MustAssert(n.Equal(PowerOf2Natural(200)))
	n.SetBit(3)
	tt.MustAssert(n.Bit(3))
	tt.MustAssert(n.Bit(200))
	tt.MustAssert(!n.Bit(199))

	n.ClearBit(200)
	tt.MustOK(checkNormalized(n))
	tt.MustAssert(n.Equal(NaturalFromLimb(8)), "found: %s", n)
	n.ClearBit(3)
	tt.MustAssert(n.IsZero())
	n.ClearBit(1000)
	tt.MustAssert(n.IsZero())
}
