package fraction

import (
	"math/big"
	"strconv"
	"strings"
)

// Expansion is a decimal expansion of a fraction in normalized
// scientific notation:
//
//	Sign · (Lead + 0.d1 d2 d3 ...) · 10^Exponent
//
// where Lead is a single nonzero digit and d1, d2, d3, ... are produced
// by Digits.
type Expansion struct {
	Sign     int      // -1 or +1
	Lead     *big.Int // leading digit, 0 only for the zero fraction
	Exponent int      // power of ten
	Digits   *Digits  // fractional digits, nil for the zero fraction
}

// Digits is an iterator over the fractional digits of an [Expansion].
// The sequence ends if the expansion terminates and is infinite otherwise;
// no attempt is made to detect a period.
// Digits cannot be rewound: a caller that needs the digits again must
// keep them.
// Digits is not safe for concurrent use.
type Digits struct {
	rem *bint // remainder numerator, 0 <= rem < den
	den *bint
}

// Expand returns the decimal expansion of f.
func (f Fraction) Expand() Expansion {
	if f.IsZero() {
		return Expansion{Sign: 1, Lead: new(big.Int)}
	}

	p, q := new(bint), new(bint)
	p.abs(f.p())
	q.setBint(f.q())

	// Equalize digit counts, then p/q lies in (0.1, 10)
	exp := p.prec() - q.prec()
	k := new(bint)
	switch {
	case exp > 0:
		k.pow10(exp)
		q.mul(q, k)
	case exp < 0:
		k.pow10(-exp)
		p.mul(p, k)
	}
	if p.cmp(q) < 0 {
		p.mul(p, bten)
		exp--
	}

	lead, rem := new(bint), new(bint)
	lead.quoRem(p, q, rem)
	return Expansion{
		Sign:     f.Sign(),
		Lead:     (*big.Int)(lead),
		Exponent: exp,
		Digits:   &Digits{rem: rem, den: q},
	}
}

// Next returns the next fractional digit.
// The second result is false once the expansion has terminated.
func (d *Digits) Next() (int, bool) {
	if d == nil || d.rem.sign() == 0 {
		return 0, false
	}
	digit := new(bint)
	d.rem.mul(d.rem, bten)
	digit.quoRem(d.rem, d.den, d.rem)
	return int(digit.int64()), true
}

// Take returns up to n next fractional digits as a string.
// The result is shorter than n only if the expansion has terminated.
func (d *Digits) Take(n int) string {
	var buf strings.Builder
	for i := 0; i < n; i++ {
		digit, ok := d.Next()
		if !ok {
			break
		}
		buf.WriteByte(byte(digit) + '0')
	}
	return buf.String()
}

// Scientific formats the expansion with the given fractional digits,
// which are usually collected from Digits by the caller:
//
//	-3.33e-1
//	1.25
//	7e3
//
// The exponent is omitted if it is 0.
func (e Expansion) Scientific(frac string) string {
	var buf strings.Builder
	if e.Sign < 0 {
		buf.WriteByte('-')
	}
	if e.Lead == nil {
		buf.WriteByte('0')
	} else {
		buf.WriteString(e.Lead.String())
	}
	if frac != "" {
		buf.WriteByte('.')
		buf.WriteString(frac)
	}
	if e.Exponent != 0 {
		buf.WriteByte('e')
		buf.WriteString(strconv.Itoa(e.Exponent))
	}
	return buf.String()
}
