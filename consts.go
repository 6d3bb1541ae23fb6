package bignum

const (
	// intSize is the width of uint, and so of big.Word.
	intSize = 32 << (^uint(0) >> 63)

	float64MantBits = 53

	// A float64 is below 2^float64MaxExp.
	float64MaxExp = 1024

	// maxShlLimbs bounds the number of limbs a left shift may add.
	maxShlLimbs = 1<<31 - 1
)
