package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func parseNatural(s string) (bignum.Natural, error) {
	n, err := bignum.NaturalFromString(s, 0)
	if err != nil {
		return bignum.Natural{}, errors.Wrapf(err, "bignum: argument %q", s)
	}
	return n, nil
}

func parseNaturals(args []string) ([]bignum.Natural, error) {
	ns := make([]bignum.Natural, len(args))
	for i, arg := range args {
		n, err := parseNatural(arg)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}

func parseBitIndex(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bignum: bit index %q", s)
	}
	return v, nil
}

// printRounded writes a rounded natural followed by its ordering against the
// exact result.
func (a *app) printRounded(n bignum.Natural, o bignum.Ordering) error {
	s, err := a.formatNatural(n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, s, o)
	return err
}

func (a *app) printNatural(n bignum.Natural) error {
	s, err := a.formatNatural(n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, s)
	return err
}

// roundedCmd builds a command that takes two naturals and prints a rounded
// result.
func (a *app) roundedCmd(use, short string, op func(x, y bignum.Natural, rm bignum.RoundingMode) (bignum.Natural, bignum.Ordering)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseNaturals(args)
			if err != nil {
				return err
			}
			rm, err := a.rounding()
			if err != nil {
				return err
			}
			return guard(func() error {
				q, o := op(ns[0], ns[1], rm)
				a.log.Debug(cmd.Name(),
					zap.Stringer("x", ns[0]),
					zap.Stringer("y", ns[1]),
					zap.Stringer("rounding", rm),
					zap.Stringer("result", q),
					zap.Stringer("ordering", o))
				return a.printRounded(q, o)
			})
		},
	}
}

func (a *app) divRoundCmd() *cobra.Command {
	return a.roundedCmd("divround <x> <y>", "Divide x by y, rounding the quotient",
		func(x, y bignum.Natural, rm bignum.RoundingMode) (bignum.Natural, bignum.Ordering) {
			return x.DivRound(y, rm)
		})
}

func (a *app) roundMultipleCmd() *cobra.Command {
	return a.roundedCmd("roundmultiple <x> <y>", "Round x to a multiple of y",
		func(x, y bignum.Natural, rm bignum.RoundingMode) (bignum.Natural, bignum.Ordering) {
			return x.RoundToMultiple(y, rm)
		})
}

func (a *app) shrRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shrround <x> <bits>",
		Short: "Shift x right by bits, rounding the discarded bits; use -- before a negative shift",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			bits, err := strconv.ParseInt(args[1], 0, 64)
			if err != nil {
				return errors.Wrapf(err, "bignum: shift %q", args[1])
			}
			rm, err := a.rounding()
			if err != nil {
				return err
			}
			return guard(func() error {
				q, o := x.ShrRound(bits, rm)
				a.log.Debug("shrround",
					zap.Stringer("x", x),
					zap.Int64("bits", bits),
					zap.Stringer("rounding", rm),
					zap.Stringer("result", q),
					zap.Stringer("ordering", o))
				return a.printRounded(q, o)
			})
		},
	}
}

func (a *app) getBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "getbits <x> <start> <end>",
		Short: "Print bits [start, end) of x",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			start, end, err := parseRange(args[1], args[2])
			if err != nil {
				return err
			}
			return guard(func() error {
				return a.printNatural(x.GetBits(start, end))
			})
		},
	}
}

func (a *app) assignBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assignbits <x> <start> <end> <bits>",
		Short: "Replace bits [start, end) of x and print the result",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			start, end, err := parseRange(args[1], args[2])
			if err != nil {
				return err
			}
			bits, err := parseNatural(args[3])
			if err != nil {
				return err
			}
			return guard(func() error {
				x.AssignBits(start, end, bits)
				return a.printNatural(x)
			})
		},
	}
}

func (a *app) negBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "negbits <magnitude> <start> <end>",
		Short: "Print bits [start, end) of the two's complement of -magnitude",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mag, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			start, end, err := parseRange(args[1], args[2])
			if err != nil {
				return err
			}
			return guard(func() error {
				return a.printNatural(bignum.NegGetBits(mag, start, end))
			})
		},
	}
}

func parseRange(s, e string) (start, end uint64, err error) {
	if start, err = parseBitIndex(s); err != nil {
		return 0, 0, err
	}
	if end, err = parseBitIndex(e); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func (a *app) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <x> <base>",
		Short: "Print the floor, ceiling and exact logarithm of x, or none if inexact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseNaturals(args)
			if err != nil {
				return err
			}
			return guard(func() error {
				x, base := ns[0], ns[1]
				floor := x.FloorLogBase(base)
				ceil := x.CeilingLogBase(base)
				exact := "none"
				if v, ok := x.CheckedLogBase(base); ok {
					exact = strconv.FormatUint(v, 10)
				}
				_, err := fmt.Fprintln(a.out, floor, ceil, exact)
				return err
			})
		},
	}
}

func (a *app) toFloatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tofloat <x>",
		Short: "Round x to a float64",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			rm, err := a.rounding()
			if err != nil {
				return err
			}
			return guard(func() error {
				f, o := x.RoundingToFloat64(rm)
				_, err := fmt.Fprintln(a.out, strconv.FormatFloat(f, 'g', -1, 64), o)
				return err
			})
		},
	}
}

func (a *app) fromFloatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fromfloat <f>",
		Short: "Round a non-negative float64 to a natural",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "bignum: float %q", args[0])
			}
			rm, err := a.rounding()
			if err != nil {
				return err
			}
			return guard(func() error {
				n, o := bignum.NaturalRoundingFromFloat64(f, rm)
				return a.printRounded(n, o)
			})
		},
	}
}
