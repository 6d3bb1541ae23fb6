package main

import (
	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/random"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type naturalGenerator interface {
	Next() bignum.Natural
}

func (a *app) randCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print reproducible random naturals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := a.seed()
			if err != nil {
				return err
			}

			count := a.v.GetInt("count")
			meanBits := a.v.GetUint64("mean-bits")
			stripe := a.v.GetUint64("stripe")
			if meanBits == 0 {
				return errors.New("bignum: --mean-bits must be positive")
			}
			if stripe == 1 {
				return errors.New("bignum: --stripe must be 0 or greater than 1")
			}

			a.log.Info("generating naturals",
				zap.Stringer("seed", seed),
				zap.Int("count", count),
				zap.Uint64("mean-bits", meanBits),
				zap.Uint64("stripe", stripe))

			var gen naturalGenerator
			if stripe == 0 {
				gen = random.NewNaturals(seed, meanBits, 1)
			} else {
				gen = random.NewStripedNaturals(seed, stripe, 1, meanBits, 1)
			}
			for i := 0; i < count; i++ {
				if err := a.printNatural(gen.Next()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Uint64("seed", 0, "generator seed; 0 draws a seed from the operating system")
	flags.Int("count", 10, "number of naturals to print")
	flags.Uint64("mean-bits", 64, "mean bit length")
	flags.Uint64("stripe", 0, "mean length of runs of equal bits; 0 for uniform bits")
	a.bindFlags(flags, "seed", "count", "mean-bits", "stripe")
	return cmd
}

func (a *app) seed() (random.Seed, error) {
	if v := a.v.GetUint64("seed"); v != 0 {
		return random.SeedFromUint64(v), nil
	}
	return random.SeedFromEntropy()
}
