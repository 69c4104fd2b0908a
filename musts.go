package fraction

import (
	"fmt"
	"math/big"
)

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return f
}

// MustQuo is like [Fraction.Quo] but panics if g is 0.
func (f Fraction) MustQuo(g Fraction) Fraction {
	h, err := f.Quo(g)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", g, err))
	}
	return h
}

// MustInterval is like [Interval] but panics on invalid arguments.
func MustInterval(l, r Fraction, maxq int64) []Fraction {
	fs, err := Interval(l, r, big.NewInt(maxq))
	if err != nil {
		panic(fmt.Sprintf("MustInterval(%v, %v, %v) failed: %v", l, r, maxq, err))
	}
	return fs
}
