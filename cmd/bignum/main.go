// Command bignum evaluates single kernel operations from the command line,
// mostly as an aid for checking test expectations by hand:
//
//	bignum divround 7 2
//	bignum --rounding floor shrround 0x1234567890abcdef1234 17
//	bignum --format hex getbits 0xabcd 4 8
//	bignum rand --seed 1 --stripe 8 --count 4
//
// Every flag can also be set from the environment with a BIGNUM_ prefix, for
// example BIGNUM_ROUNDING=Up.
package main

import (
	"os"
)

func main() {
	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if newRootCmd(os.Stdout, os.Stderr).Execute() != nil {
		os.Exit(1)
	}
}
