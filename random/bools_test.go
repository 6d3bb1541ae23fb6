package random

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBools(t *testing.T) {
	tt := assert.WrapTB(t)
	bs := NewBools(ExampleSeed)
	trues := 0
	for i := 0; i < 10000; i++ {
		if bs.Next() {
			trues++
		}
	}
	tt.MustAssert(trues > 4700 && trues < 5300, "%d", trues)
}

func TestBoolsDeterministic(t *testing.T) {
	tt := assert.WrapTB(t)
	a, b := NewBools(ExampleSeed), NewBools(ExampleSeed)
	for i := 0; i < 500; i++ {
		tt.MustEqual(a.Next(), b.Next())
	}
}

func TestWeightedBools(t *testing.T) {
	for idx, tc := range []struct {
		n, d     uint64
		min, max int
	}{
		{0, 1, 0, 0},
		{0, 100, 0, 0},
		{1, 1, 10000, 10000},
		{7, 7, 10000, 10000},
		{1, 2, 4700, 5300},
		{1, 4, 2300, 2700},
		{3, 4, 7300, 7700},
		{1, 100, 60, 140},
	} {
		t.Run(fmt.Sprintf("%d/%d/%d", idx, tc.n, tc.d), func(t *testing.T) {
			tt := assert.WrapTB(t)
			bs := NewWeightedBools(ExampleSeed, tc.n, tc.d)
			trues := 0
			for i := 0; i < 10000; i++ {
				if bs.Next() {
					trues++
				}
			}
			tt.MustAssert(trues >= tc.min && trues <= tc.max, "%d", trues)
		})
	}
}

func TestWeightedBoolsPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(catchPanic(func() { NewWeightedBools(ExampleSeed, 0, 0) }))
	tt.MustAssert(catchPanic(func() { NewWeightedBools(ExampleSeed, 2, 1) }))
}
