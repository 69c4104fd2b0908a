package fraction

import (
	"fmt"
	"math/big"
)

// bint (Big INTeger) is a wrapper around big.Int.
// Values referenced by a [Fraction] are never modified after construction.
type bint big.Int

var (
	bzero = newBint(0)
	bone  = newBint(1)
	btwo  = newBint(2)
	bten  = newBint(10)
)

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [39]*bint {
	var cache [39]*bint
	cache[0] = newBint(1)
	for i := 1; i < len(cache); i++ {
		z := new(bint)
		z.mul(cache[i-1], bten)
		cache[i] = z
	}
	return cache
}()

func newBint(x int64) *bint {
	return (*bint)(big.NewInt(x))
}

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	return (*bint)(z)
}

// big returns a copy of z that the caller is free to modify.
func (z *bint) big() *big.Int {
	return new(big.Int).Set((*big.Int)(z))
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) int64() int64 {
	return (*big.Int)(z).Int64()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setUint64(x uint64) {
	(*big.Int)(z).SetUint64(x)
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// fma (Fused Multiply-Addition) calculates z = x * y + w.
func (z *bint) fma(x, y, w *bint) {
	t := new(big.Int).Mul((*big.Int)(x), (*big.Int)(y))
	(*big.Int)(z).Add(t, (*big.Int)(w))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// lsh (Left Shift) calculates z = x * 2^shift.
func (z *bint) lsh(x *bint, shift uint) {
	(*big.Int)(z).Lsh((*big.Int)(x), shift)
}

// hlf (Half) calculates z = ⌊x / 2⌋.
func (z *bint) hlf(x *bint) {
	(*big.Int)(z).Rsh((*big.Int)(x), 1)
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x *bint, y int) {
	(*big.Int)(z).Exp((*big.Int)(x), big.NewInt(int64(y)), nil)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	z.exp(bten, power)
}

// gcd calculates z = gcd(|x|, |y|).
func (z *bint) gcd(x, y *bint) {
	(*big.Int)(z).GCD(nil, nil, (*big.Int)(x), (*big.Int)(y))
}

// quo calculates z = x / y, truncated towards zero.
func (z *bint) quo(x, y *bint) {
	(*big.Int)(z).Quo((*big.Int)(x), (*big.Int)(y))
}

// quoRem calculates z = x / y, truncated towards zero, and r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// floorQuoRem calculates z = ⌊x / y⌋ and r = x - y * z for y > 0,
// so that 0 <= r < y.
func (z *bint) floorQuoRem(x, y, r *bint) {
	z.quoRem(x, y, r)
	if r.sign() < 0 {
		z.sub(z, bone)
		r.add(r, y)
	}
}

// floorQuo calculates z = ⌊x / y⌋ for y > 0.
func (z *bint) floorQuo(x, y *bint) {
	z.floorQuoRem(x, y, new(bint))
}

// ceilQuo calculates z = ⌈x / y⌉ for y > 0.
func (z *bint) ceilQuo(x, y *bint) {
	r := new(bint)
	z.quoRem(x, y, r)
	if r.sign() > 0 {
		z.add(z, bone)
	}
}

// prec returns length of |z| in decimal digits.
// prec assumes that 0 has no digits.
func (z *bint) prec() int {
	if z.sign() == 0 {
		return 0
	}
	n := len((*big.Int)(z).Text(10))
	if z.sign() < 0 {
		n--
	}
	return n
}

// IntSqrt returns ⌊√x⌋.
// It returns [ErrNegativeRadicand] if x is negative.
func IntSqrt(x *big.Int) (*big.Int, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("IntSqrt(%v) failed: %w", x, ErrNegativeRadicand)
	}
	return new(big.Int).Sqrt(x), nil
}
