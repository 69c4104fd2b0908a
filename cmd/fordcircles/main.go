// Fordcircles prints the fractions behind a Ford circle diagram.
//
// Usage:
//
//	fordcircles -l 0 -r 1 -q 5
//	fordcircles -l 0 -r 1 -scale 800
//	fordcircles -approx 3.14159265 -prec 1/1000
//	fordcircles -digits 1/7 -n 30
//	fordcircles -cf 415/93
//
// With -digits the output ends in "..." if the expansion continues beyond
// the printed digits; -n 0 prints the leading digit and exponent only.
//
// With -scale the denominator bound follows from the zoom level and the
// radius threshold in FORD_RADIUS_THRESHOLD.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"

	"github.com/govalues/fraction"
	"github.com/govalues/fraction/viewport"
)

const prog = "fordcircles"

var errUsage = errors.New("usage error")

func main() {
	logger := log.New(os.Stderr, prog+": ", 0)
	err := run(os.Args[1:], os.Stdout, logger)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		logger.Print(err)
		os.Exit(2)
	default:
		logger.Print(err)
		os.Exit(1)
	}
}

type options struct {
	l, r, maxq, scale string
	approx, prec      string
	digits            string
	n                 int
	cf                string
	verbose           bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.l, "l", "", "left end of the interval")
	fs.StringVar(&o.r, "r", "", "right end of the interval")
	fs.StringVar(&o.maxq, "q", "", "largest denominator to enumerate")
	fs.StringVar(&o.scale, "scale", "", "pixels per unit, derives the largest denominator")
	fs.StringVar(&o.approx, "approx", "", "value to approximate")
	fs.StringVar(&o.prec, "prec", "1/1000000", "precision of the approximation")
	fs.StringVar(&o.digits, "digits", "", "value to expand into decimal digits")
	fs.IntVar(&o.n, "n", 20, "number of fractional digits, 0 prints the leading digit only")
	fs.StringVar(&o.cf, "cf", "", "value to expand into a continued fraction")
	fs.BoolVar(&o.verbose, "v", false, "print circle radii and log derived parameters")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [OPTION]\n", prog)
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return o, err
		}
		return o, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	modes := 0
	for _, set := range []bool{o.l != "" || o.r != "", o.approx != "", o.digits != "", o.cf != ""} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		return o, fmt.Errorf("%w: exactly one of -l/-r, -approx, -digits, -cf is required", errUsage)
	}
	if o.n < 0 {
		return o, fmt.Errorf("%w: -n %v is negative", errUsage, o.n)
	}
	return o, nil
}

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	o, err := parseFlags(args, logger.Writer())
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	switch {
	case o.approx != "":
		return approximate(stdout, o)
	case o.digits != "":
		return expand(stdout, o)
	case o.cf != "":
		return continued(stdout, o)
	default:
		return enumerate(stdout, logger, o)
	}
}

func enumerate(w io.Writer, logger *log.Logger, o options) error {
	if o.l == "" || o.r == "" {
		return fmt.Errorf("%w: both -l and -r are required", errUsage)
	}
	if (o.maxq == "") == (o.scale == "") {
		return fmt.Errorf("%w: exactly one of -q and -scale is required", errUsage)
	}
	l, err := fraction.Parse(o.l)
	if err != nil {
		return err
	}
	r, err := fraction.Parse(o.r)
	if err != nil {
		return err
	}

	var fs []fraction.Fraction
	if o.maxq != "" {
		maxq, ok := new(big.Int).SetString(o.maxq, 10)
		if !ok {
			return fmt.Errorf("%w: -q %q is not an integer", errUsage, o.maxq)
		}
		fs, err = fraction.Interval(l, r, maxq)
		if err != nil {
			return err
		}
	} else {
		scale, err := fraction.Parse(o.scale)
		if err != nil {
			return err
		}
		cfg, err := viewport.ConfigFromEnv()
		if err != nil {
			return err
		}
		maxq, err := cfg.MaxDenominator(scale)
		if err != nil {
			return err
		}
		if o.verbose {
			logger.Printf("scale %v, radius threshold %v: largest denominator %v", scale, cfg.RadiusThreshold, maxq)
		}
		fs, err = cfg.Circles(l, r, maxq)
		if err != nil {
			return err
		}
	}
	if o.verbose {
		logger.Printf("%v fractions", len(fs))
	}

	for _, f := range fs {
		if o.verbose {
			fmt.Fprintf(w, "%v %v\n", f, viewport.Radius(f))
		} else {
			fmt.Fprintln(w, f)
		}
	}
	return nil
}

func approximate(w io.Writer, o options) error {
	x, err := fraction.Parse(o.approx)
	if err != nil {
		return err
	}
	prec, err := fraction.Parse(o.prec)
	if err != nil {
		return err
	}
	a, err := x.Approximate(prec)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, a.Left, a.Fraction, a.Right)
	return nil
}

func expand(w io.Writer, o options) error {
	x, err := fraction.Parse(o.digits)
	if err != nil {
		return err
	}
	e := x.Expand()
	frac := e.Digits.Take(o.n)
	// With no fractional digits there is nothing to continue.
	if _, more := e.Digits.Next(); more && frac != "" {
		frac += "..."
	}
	fmt.Fprintln(w, e.Scientific(frac))
	return nil
}

func continued(w io.Writer, o options) error {
	x, err := fraction.Parse(o.cf)
	if err != nil {
		return err
	}
	terms := x.Terms()
	convs, err := fraction.Convergents(terms)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, terms)
	fmt.Fprintln(w, convs)
	return nil
}
