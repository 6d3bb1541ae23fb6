package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "BIGNUM"

const (
	formatDec = "dec"
	formatHex = "hex"
)

type app struct {
	v   *viper.Viper
	out io.Writer
	log *zap.Logger
}

// roundingFlag validates --rounding at parse time. Names are matched without
// regard to case.
type roundingFlag bignum.RoundingMode

var _ pflag.Value = (*roundingFlag)(nil)

func (r *roundingFlag) String() string { return bignum.RoundingMode(*r).String() }
func (r *roundingFlag) Type() string   { return "roundingMode" }

func (r *roundingFlag) Set(s string) error {
	rm, err := parseRounding(s)
	if err != nil {
		return err
	}
	*r = roundingFlag(rm)
	return nil
}

func parseRounding(s string) (bignum.RoundingMode, error) {
	for _, rm := range bignum.RoundingModes {
		if strings.EqualFold(rm.String(), s) {
			return rm, nil
		}
	}
	return 0, errors.Errorf("bignum: invalid rounding mode %q", s)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, log: zap.NewNop()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cmd := &cobra.Command{
		Use:          "bignum",
		Short:        "Evaluate natural number kernel operations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(errOut, a.v.GetString("log-format"), a.v.GetString("log-level"))
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	rm := roundingFlag(bignum.Nearest)
	flags := cmd.PersistentFlags()
	flags.Var(&rm, "rounding", "rounding mode: down, up, floor, ceiling, nearest or exact")
	flags.String("format", formatDec, "output base for naturals: dec or hex")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", logFormatConsole, "log encoding: console, json or logfmt")
	a.bindFlags(flags, "rounding", "format", "log-level", "log-format")

	cmd.AddCommand(
		a.divRoundCmd(),
		a.shrRoundCmd(),
		a.roundMultipleCmd(),
		a.getBitsCmd(),
		a.assignBitsCmd(),
		a.negBitsCmd(),
		a.logCmd(),
		a.toFloatCmd(),
		a.fromFloatCmd(),
		a.randCmd(),
	)
	return cmd
}

func (a *app) bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		// Only fails when the flag is missing.
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// rounding reads the rounding mode from the flag or the environment.
func (a *app) rounding() (bignum.RoundingMode, error) {
	return parseRounding(a.v.GetString("rounding"))
}

func (a *app) formatNatural(n bignum.Natural) (string, error) {
	switch f := a.v.GetString("format"); f {
	case formatDec:
		return n.String(), nil
	case formatHex:
		return fmt.Sprintf("%#x", n), nil
	default:
		return "", errors.Errorf("bignum: invalid output format %q", f)
	}
}

// guard converts a panic raised by the kernel, such as an inexact result
// under Exact, into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v", r)
		}
	}()
	return fn()
}
