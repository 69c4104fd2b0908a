package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Fraction type is a representation of an exact rational number p/q
// with arbitrary-precision numerator and denominator.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fraction is a struct with two parameters:
//
//   - Numerator: an integer carrying the sign of the fraction.
//   - Denominator: a positive integer.
//
// Fractions produced by the validating constructors ([New], [NewFromBigInt],
// [Parse] and friends) are always in lowest terms, so every numeric value
// has exactly one representation and 0 is represented as 0/1.
type Fraction struct {
	num *bint // numerator, carries the sign
	den *bint // denominator, always positive
}

var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNegativeRadicand    = errors.New("negative radicand")
)

var half = newRaw(bone, btwo)

// newRaw returns num/den without reduction.
// The caller guarantees that gcd(|num|, den) == 1 and den > 0,
// and that neither num nor den is modified afterwards.
func newRaw(num, den *bint) Fraction {
	return Fraction{num: num, den: den}
}

// reduce returns num/den in lowest terms.
// The caller guarantees that den != 0.
func reduce(num, den *bint) Fraction {
	if num.sign() == 0 {
		return newRaw(bzero, bone)
	}
	g := new(bint)
	g.gcd(num, den)
	p, q := new(bint), new(bint)
	p.quo(num, g)
	q.quo(den, g)
	if q.sign() < 0 {
		p.neg(p)
		q.neg(q)
	}
	return newRaw(p, q)
}

func newFraction(num, den *bint) (Fraction, error) {
	if den.sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return reduce(num, den), nil
}

// New returns a fraction equal to num / den in lowest terms.
// New returns [ErrDivisionByZero] if den is 0.
func New(num, den int64) (Fraction, error) {
	f, err := newFraction(newBint(num), newBint(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("New(%v, %v) failed: %w", num, den, err)
	}
	return f, nil
}

// NewFromBigInt is similar to [New], but it accepts arbitrary-precision integers.
// The arguments are copied and can be reused by the caller.
func NewFromBigInt(num, den *big.Int) (Fraction, error) {
	f, err := newFraction((*bint)(num), (*bint)(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("NewFromBigInt(%v, %v) failed: %w", num, den, err)
	}
	return f, nil
}

// NewFromInt64 returns a fraction equal to n / 1.
func NewFromInt64(n int64) Fraction {
	return newRaw(newBint(n), bone)
}

// NewUnchecked returns a fraction num / den without reducing it.
// The arguments are copied and can be reused by the caller.
//
// The caller must guarantee that den > 0 and gcd(|num|, den) == 1,
// as is the case for the mediant of two Stern-Brocot neighbors or for
// a convergent of a continued fraction.
// Passing any other pair produces a fraction for which comparison,
// equality and all derived operations are undefined.
// Use [NewFromBigInt] unless the precondition is proven.
func NewUnchecked(num, den *big.Int) Fraction {
	p := new(bint)
	p.setBint((*bint)(num))
	q := new(bint)
	q.setBint((*bint)(den))
	return newRaw(p, q)
}

// NewFromFloat64 converts a float to a fraction.
// The conversion is exact: the mantissa and the exponent of x are
// decomposed bit by bit, so [Fraction.Float64] of the result returns x.
// Negative zero is converted to 0.
//
// NewFromFloat64 returns [ErrInvalidArgument] if x is NaN or an infinity.
func NewFromFloat64(x float64) (Fraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Fraction{}, fmt.Errorf("NewFromFloat64(%v) failed: %w", x, ErrInvalidArgument)
	}

	bits := math.Float64bits(x)
	neg := bits>>63 != 0
	exp := int(bits>>52) & 0x7ff
	mant := bits & (1<<52 - 1)

	// Subnormal numbers have no implicit leading bit
	if exp == 0 {
		exp = -1074
	} else {
		mant |= 1 << 52
		exp -= 1075
	}

	num, den := new(bint), new(bint)
	num.setUint64(mant)
	den.setBint(bone)
	if exp >= 0 {
		num.lsh(num, uint(exp))
	} else {
		den.lsh(den, uint(-exp))
	}
	if neg {
		num.neg(num)
	}
	return reduce(num, den), nil
}

// Parse converts a string to a fraction.
// The input string must be in one of the following formats:
//
//	-22/7
//	1234
//	-0.125
//	0.1(6)
//	+3.(142857)
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign      ::= '+' | '-'
//	digits    ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	ratio     ::= [sign] digits '/' [sign] digits
//	period    ::= '(' digits ')'
//	decimal   ::= [sign] digits [ '.' [digits] [period] ]
//	fraction  ::= ratio | decimal
//
// The digits in parentheses denote a block that repeats forever,
// so "0.1(6)" is parsed as 1/6.
//
// Parse returns error:
//   - [ErrInvalidNumberFormat] if the string does not match the grammar.
//   - [ErrDivisionByZero] if the denominator of a ratio is 0.
func Parse(s string) (Fraction, error) {
	var (
		f   Fraction
		err error
	)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		f, err = parseRatio(s[:i], s[i+1:])
	} else {
		f, err = parseDecimal(s)
	}
	if err != nil {
		return Fraction{}, fmt.Errorf("Parse(%q) failed: %w", s, err)
	}
	return f, nil
}

func parseRatio(ps, qs string) (Fraction, error) {
	p, err := parseInteger(ps)
	if err != nil {
		return Fraction{}, fmt.Errorf("numerator: %w", err)
	}
	q, err := parseInteger(qs)
	if err != nil {
		return Fraction{}, fmt.Errorf("denominator: %w", err)
	}
	return newFraction(p, q)
}

// scanDigits returns the position of the first non-digit character
// of s at or after pos.
func scanDigits(s string, pos int) int {
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	return pos
}

// parseDigits converts a string of decimal digits to an integer.
// An empty string is converted to 0.
func parseDigits(s string) *bint {
	if s == "" {
		return newBint(0)
	}
	return mustParseBint(s)
}

func parseInteger(s string) (*bint, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	start := pos
	pos = scanDigits(s, pos)

	if pos != width {
		return nil, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidNumberFormat)
	}
	if start == pos {
		return nil, fmt.Errorf("no digits: %w", ErrInvalidNumberFormat)
	}

	z := parseDigits(s[start:])
	if neg {
		z.neg(z)
	}
	return z, nil
}

func parseDecimal(s string) (Fraction, error) {
	var (
		pos    int
		width  int
		neg    bool
		intg   string
		frac   string
		period string
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	start := pos
	pos = scanDigits(s, pos)
	intg = s[start:pos]
	if intg == "" {
		if pos < width {
			return Fraction{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidNumberFormat)
		}
		return Fraction{}, fmt.Errorf("no integer part: %w", ErrInvalidNumberFormat)
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		pos = scanDigits(s, pos)
		frac = s[start:pos]

		// Repeating block
		if pos < width && s[pos] == '(' {
			pos++
			start = pos
			pos = scanDigits(s, pos)
			period = s[start:pos]
			if pos == width || s[pos] != ')' {
				return Fraction{}, fmt.Errorf("unterminated repeating block: %w", ErrInvalidNumberFormat)
			}
			if period == "" {
				return Fraction{}, fmt.Errorf("empty repeating block: %w", ErrInvalidNumberFormat)
			}
			pos++
		}
	}

	if pos != width {
		return Fraction{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidNumberFormat)
	}

	// (intg·10^lf + frac) / 10^lf
	num := parseDigits(intg)
	den := new(bint)
	den.pow10(len(frac))
	num.fma(num, den, parseDigits(frac))

	// (intg·10^lf·(10^lp−1) + frac·(10^lp−1) + period) / (10^lf·(10^lp−1))
	if period != "" {
		k := new(bint)
		k.pow10(len(period))
		k.sub(k, bone)
		num.fma(num, k, parseDigits(period))
		den.mul(den, k)
	}

	if neg {
		num.neg(num)
	}
	return reduce(num, den), nil
}

// p returns the numerator, mapping the zero value to 0.
func (f Fraction) p() *bint {
	if f.num == nil {
		return bzero
	}
	return f.num
}

// q returns the denominator, mapping the zero value to 1.
func (f Fraction) q() *bint {
	if f.den == nil {
		return bone
	}
	return f.den
}

// Num returns the numerator of f.
// The result is a copy and can be modified by the caller.
func (f Fraction) Num() *big.Int {
	return f.p().big()
}

// Den returns the denominator of f, which is always positive.
// The result is a copy and can be modified by the caller.
func (f Fraction) Den() *big.Int {
	return f.q().big()
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a fraction in the "p/q" form.
// Integers are formatted with the denominator 1, e.g. "3/1".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	return f.p().string() + "/" + f.q().string()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Float64 returns the nearest binary floating-point number rounded
// using "half to even" rule.
// The conversion is inexact for most fractions and overflows to an
// infinity for fractions of very large magnitude.
func (f Fraction) Float64() float64 {
	x, _ := new(big.Rat).SetFrac((*big.Int)(f.p()), (*big.Int)(f.q())).Float64()
	return x
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	return f.p().sign()
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f.Sign() == 0
}

// IsInt returns true if the denominator of f is 1.
func (f Fraction) IsInt() bool {
	return f.q().cmp(bone) == 0
}

// Neg returns f with opposite sign.
func (f Fraction) Neg() Fraction {
	p := new(bint)
	p.neg(f.p())
	return newRaw(p, f.q())
}

// Abs returns absolute value of f.
func (f Fraction) Abs() Fraction {
	if f.Sign() >= 0 {
		return newRaw(f.p(), f.q())
	}
	return f.Neg()
}

// Add returns sum of f and g.
func (f Fraction) Add(g Fraction) Fraction {
	num, den := new(bint), new(bint)
	num.mul(f.p(), g.q())
	num.fma(g.p(), f.q(), num)
	den.mul(f.q(), g.q())
	return reduce(num, den)
}

// Sub returns difference of f and g.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// Mul returns product of f and g.
func (f Fraction) Mul(g Fraction) Fraction {
	num, den := new(bint), new(bint)
	num.mul(f.p(), g.p())
	den.mul(f.q(), g.q())
	return reduce(num, den)
}

// Quo returns quotient of f and g.
// Quo returns [ErrDivisionByZero] if g is 0.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, fmt.Errorf("%v.Quo(%v) failed: %w", f, g, ErrDivisionByZero)
	}
	num, den := new(bint), new(bint)
	num.mul(f.p(), g.q())
	den.mul(f.q(), g.p())
	return reduce(num, den), nil
}

// Inv returns the multiplicative inverse 1/f.
// Inv returns [ErrDivisionByZero] if f is 0.
func (f Fraction) Inv() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, fmt.Errorf("%v.Inv() failed: %w", f, ErrDivisionByZero)
	}
	return f.inv(), nil
}

// inv returns 1/f for a nonzero f.
func (f Fraction) inv() Fraction {
	if f.Sign() > 0 {
		return newRaw(f.q(), f.p())
	}
	p, q := new(bint), new(bint)
	p.neg(f.q())
	q.neg(f.p())
	return newRaw(p, q)
}

// Pow returns f raised to the power of exp.
// A negative exponent raises the inverse of f to the power of -exp.
// Pow returns [ErrDivisionByZero] if f is 0 and exp is negative.
func (f Fraction) Pow(exp int) (Fraction, error) {
	if exp < 0 {
		if f.IsZero() {
			return Fraction{}, fmt.Errorf("%v.Pow(%v) failed: %w", f, exp, ErrDivisionByZero)
		}
		return f.inv().pow(-exp), nil
	}
	return f.pow(exp), nil
}

// pow assumes that exp >= 0.
// Powers of coprime integers stay coprime, so no reduction is needed.
func (f Fraction) pow(exp int) Fraction {
	p, q := new(bint), new(bint)
	p.exp(f.p(), exp)
	q.exp(f.q(), exp)
	return newRaw(p, q)
}

// Mediant returns (f.p + g.p) / (f.q + g.q) in lowest terms.
// The mediant of two fractions always lies between them.
func (f Fraction) Mediant(g Fraction) Fraction {
	num, den := new(bint), new(bint)
	num.add(f.p(), g.p())
	den.add(f.q(), g.q())
	return reduce(num, den)
}

// mediant is similar to [Fraction.Mediant], but it skips the reduction.
// The caller guarantees that f and g are Stern-Brocot neighbors,
// i.e. f.p·g.q − g.p·f.q = ±1, and their denominators are not negative.
// One of them may be the formal fraction 1/0.
func (f Fraction) mediant(g Fraction) Fraction {
	num, den := new(bint), new(bint)
	num.add(f.p(), g.p())
	den.add(f.q(), g.q())
	return newRaw(num, den)
}

// Floor returns the greatest integer that is less than or equal to f.
func (f Fraction) Floor() *big.Int {
	z := new(bint)
	z.floorQuo(f.p(), f.q())
	return (*big.Int)(z)
}

// Ceil returns the least integer that is greater than or equal to f.
func (f Fraction) Ceil() *big.Int {
	z := new(bint)
	z.ceilQuo(f.p(), f.q())
	return (*big.Int)(z)
}

// Cross returns the cross product f.p·g.q − g.p·f.q.
// Its sign is the sign of f − g, and its absolute value is 1
// if and only if f and g are Stern-Brocot neighbors.
// Unlike [Fraction.Cmp], the result is not clamped to {-1, 0, 1}.
func (f Fraction) Cross(g Fraction) *big.Int {
	return (*big.Int)(f.cross(g))
}

func (f Fraction) cross(g Fraction) *bint {
	z, t := new(bint), new(bint)
	z.mul(f.p(), g.q())
	t.mul(g.p(), f.q())
	z.sub(z, t)
	return z
}

// Cmp compares f and g numerically and returns:
//
//	-1 if f < g
//	 0 if f == g
//	+1 if f > g
func (f Fraction) Cmp(g Fraction) int {
	return f.cross(g).sign()
}

// Equal returns true if f and g represent the same number.
func (f Fraction) Equal(g Fraction) bool {
	return f.p().cmp(g.p()) == 0 && f.q().cmp(g.q()) == 0
}

// Max returns maximum of f and g.
func (f Fraction) Max(g Fraction) Fraction {
	if f.Cmp(g) >= 0 {
		return f
	}
	return g
}

// Min returns minimum of f and g.
func (f Fraction) Min(g Fraction) Fraction {
	if f.Cmp(g) <= 0 {
		return f
	}
	return g
}
