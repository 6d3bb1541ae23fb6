package bignum

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
)

var (
	BenchBigIntResult   *big.Int
	BenchBoolResult     bool
	BenchFloatResult    float64
	BenchIntResult      int
	BenchLimbResult     Limb
	BenchNaturalResult  Natural
	BenchOrderingResult Ordering
	BenchStringResult   string
	BenchUint64Result   uint64

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917
)

var benchBits = []uint64{64, 256, 1024, 4096}

func benchNaturals(bits uint64) (x, y Natural) {
	rng := rand.New(rand.NewSource(1))
	return RandNaturalWithBits(rng, bits), RandNaturalWithBits(rng, bits/2+1)
}

func BenchmarkUint64DivRound(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, BenchOrderingResult = DivRound(BenchUint642, BenchUint641, Nearest)
	}
}

func BenchmarkUint64ShrRound(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, BenchOrderingResult = ShrRound(BenchUint642, 7, Nearest)
	}
}

func BenchmarkUint64FloorLogBase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = FloorLogBase(BenchUint642, 10)
	}
}

func BenchmarkUint64GetBits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = GetBits(BenchUint642, 3, 20)
	}
}

func BenchmarkXXXAddWithCarry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, BenchLimbResult = XXXAddYYYToZZZ(Limb(BenchUint641), MaxLimb, MaxLimb, 1, Limb(BenchUint642), 1)
	}
}

func BenchmarkNaturalAdd(b *testing.B) {
	for _, bits := range benchBits {
		x, y := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNaturalResult = x.Add(y)
			}
		})
	}
}

func BenchmarkNaturalAddAssign(b *testing.B) {
	for _, bits := range benchBits {
		x, y := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			z := x.Clone()
			for i := 0; i < b.N; i++ {
				z.AddAssign(y)
			}
			BenchNaturalResult = z
		})
	}
}

func BenchmarkNaturalMul(b *testing.B) {
	for _, bits := range benchBits {
		x, y := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNaturalResult = x.Mul(y)
			}
		})
	}
}

func BenchmarkNaturalDivRound(b *testing.B) {
	for _, bits := range benchBits {
		x, y := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNaturalResult, BenchOrderingResult = x.DivRound(y, Nearest)
			}
		})
	}
}

func BenchmarkNaturalShrRound(b *testing.B) {
	for _, bits := range benchBits {
		x, _ := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNaturalResult, BenchOrderingResult = x.ShrRound(int64(bits/3), Nearest)
			}
		})
	}
}

func BenchmarkNaturalGetBits(b *testing.B) {
	for _, bits := range benchBits {
		x, _ := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNaturalResult = x.GetBits(bits/4, bits/2)
			}
		})
	}
}

func BenchmarkNaturalEqModPowerOf2(b *testing.B) {
	for _, bits := range benchBits {
		x, _ := benchNaturals(bits)
		y := x.Add(PowerOf2Natural(bits / 2))
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = x.EqModPowerOf2(y, bits/2)
			}
		})
	}
}

func BenchmarkNaturalFloorLogBase(b *testing.B) {
	base := NaturalFromLimb(10)
	for _, bits := range benchBits {
		x, _ := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUint64Result = x.FloorLogBase(base)
			}
		})
	}
}

func BenchmarkNaturalString(b *testing.B) {
	for _, bits := range benchBits {
		x, _ := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = x.String()
			}
		})
	}
}

func BenchmarkNaturalRoundingToFloat64(b *testing.B) {
	for _, bits := range benchBits {
		x, _ := benchNaturals(bits)
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchFloatResult, BenchOrderingResult = x.RoundingToFloat64(Nearest)
			}
		})
	}
}

func BenchmarkNaturalCmpEqual(b *testing.B) {
	for _, bits := range benchBits {
		x, _ := benchNaturals(bits)
		y := x.Clone()
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = x.Cmp(y)
			}
		})
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	for _, bits := range benchBits {
		x, y := benchNaturals(bits)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Add(bx, by)
			}
		})
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	for _, bits := range benchBits {
		x, y := benchNaturals(bits)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Mul(bx, by)
			}
		})
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	for _, bits := range benchBits {
		x, y := benchNaturals(bits)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				BenchBigIntResult = dest.Div(bx, by)
			}
		})
	}
}

func BenchmarkBigIntString(b *testing.B) {
	for _, bits := range benchBits {
		x, _ := benchNaturals(bits)
		bx := x.AsBigInt()
		b.Run(fmt.Sprint(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = bx.String()
			}
		})
	}
}
