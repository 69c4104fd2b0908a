package fraction

import (
	"fmt"
	"math/big"
)

// Terms returns the continued fraction expansion [a0; a1, ..., an] of f,
// such that f = a0 + 1/(a1 + 1/(... + 1/an)).
// The first term is ⌊f⌋, all the following terms are positive.
// The last term of an expansion with more than one term is never
// replaced by the equivalent pair (an − 1, 1).
func (f Fraction) Terms() []*big.Int {
	p, q := new(bint), new(bint)
	p.setBint(f.p())
	q.setBint(f.q())
	var terms []*big.Int
	for {
		a, r := new(bint), new(bint)
		a.floorQuoRem(p, q, r)
		terms = append(terms, (*big.Int)(a))
		if r.sign() == 0 {
			return terms
		}
		p, q = q, r
	}
}

// TruncatedTerms is similar to [Fraction.Terms], but every term is
// computed using division truncated towards zero.
// For non-negative fractions both expansions are identical.
// For negative fractions all terms are non-positive.
func (f Fraction) TruncatedTerms() []*big.Int {
	p, q := new(bint), new(bint)
	p.setBint(f.p())
	q.setBint(f.q())
	var terms []*big.Int
	for {
		a, r := new(bint), new(bint)
		a.quoRem(p, q, r)
		terms = append(terms, (*big.Int)(a))
		if r.sign() == 0 {
			return terms
		}
		p, q = q, r
	}
}

// Convergents returns the convergents of the continued fraction
// [a0; a1, ..., an], computed with the recurrence
//
//	h(i) = a(i)·h(i−1) + h(i−2),  h(−1) = 1, h(−2) = 0
//	k(i) = a(i)·k(i−1) + k(i−2),  k(−1) = 0, k(−2) = 1
//
// Consecutive convergents are Stern-Brocot neighbors.
//
// Convergents returns error:
//   - [ErrInvalidArgument] if terms is empty.
//   - [ErrDivisionByZero] if the denominator of some convergent is 0.
func Convergents(terms []*big.Int) ([]Fraction, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("Convergents(%v) failed: no terms: %w", terms, ErrInvalidArgument)
	}
	prev, prevprev := newRaw(bone, bzero), newRaw(bzero, bone)
	convs := make([]Fraction, 0, len(terms))
	for i, a := range terms {
		curr := semiconvergent(prev, prevprev, (*bint)(a))
		// h(i)·k(i−1) − h(i−1)·k(i) = ±1, so only the sign needs fixing
		switch curr.q().sign() {
		case 0:
			return nil, fmt.Errorf("Convergents(%v) failed: term %v: %w", terms, i, ErrDivisionByZero)
		case -1:
			p, q := new(bint), new(bint)
			p.neg(curr.p())
			q.neg(curr.q())
			convs = append(convs, newRaw(p, q))
		default:
			convs = append(convs, curr)
		}
		prevprev, prev = prev, curr
	}
	return convs, nil
}

// FromTerms returns the value of the continued fraction [a0; a1, ..., an].
// See [Convergents] for the errors.
func FromTerms(terms []*big.Int) (Fraction, error) {
	convs, err := Convergents(terms)
	if err != nil {
		return Fraction{}, err
	}
	return convs[len(convs)-1], nil
}

// semiconvergent returns (prev.p·m + prevprev.p) / (prev.q·m + prevprev.q).
// The result is in lowest terms whenever prev and prevprev are
// Stern-Brocot neighbors.
func semiconvergent(prev, prevprev Fraction, m *bint) Fraction {
	p, q := new(bint), new(bint)
	p.fma(prev.p(), m, prevprev.p())
	q.fma(prev.q(), m, prevprev.q())
	return newRaw(p, q)
}

// within returns true if |f − c| <= prec.
// c must have a positive denominator.
func (f Fraction) within(c, prec Fraction) bool {
	// |f.p·c.q − c.p·f.q| · prec.q <= prec.p · f.q · c.q
	lhs, rhs := new(bint), new(bint)
	lhs.abs(f.cross(c))
	lhs.mul(lhs, prec.q())
	rhs.mul(prec.p(), f.q())
	rhs.mul(rhs, c.q())
	return lhs.cmp(rhs) <= 0
}

// Approximation is the result of [Fraction.Approximate].
type Approximation struct {
	// Fraction is the approximant with the smallest denominator.
	Fraction Fraction
	// Left and Right are the Stern-Brocot parents of Fraction:
	// both are its neighbors, Left < Fraction < Right, and Fraction is
	// their mediant. Every other fraction strictly between Left and Right
	// has a greater denominator than Fraction.
	// For an integer approximant n, whose right parent is formally 1/0,
	// Right is reported as n + 1.
	Left  Fraction
	Right Fraction
}

// Approximate returns the fraction with the smallest denominator that
// differs from f by at most prec.
// It walks the continued fraction expansion of f and, once a convergent
// is close enough, bisects the semiconvergents preceding it.
//
// Approximate returns [ErrInvalidArgument] if prec is not positive.
func (f Fraction) Approximate(prec Fraction) (Approximation, error) {
	if prec.Sign() <= 0 {
		return Approximation{}, fmt.Errorf("%v.Approximate(%v) failed: precision must be positive: %w", f, prec, ErrInvalidArgument)
	}
	return f.approximate(prec), nil
}

// approximate assumes that prec >= 0.
func (f Fraction) approximate(prec Fraction) Approximation {
	prev, prevprev := newRaw(bone, bzero), newRaw(bzero, bone)
	for i, a := range f.Terms() {
		m := (*bint)(a)
		curr := semiconvergent(prev, prevprev, m)
		if !f.within(curr, prec) {
			prevprev, prev = prev, curr
			continue
		}

		// Integer part
		if i == 0 {
			left, right := new(bint), new(bint)
			left.sub(m, bone)
			right.add(m, bone)
			return Approximation{
				Fraction: curr,
				Left:     newRaw(left, bone),
				Right:    newRaw(right, bone),
			}
		}

		// Smallest multiplier that is still within precision
		lo, hi := new(bint), new(bint)
		lo.setBint(bone)
		hi.setBint(m)
		for lo.cmp(hi) < 0 {
			mid := new(bint)
			mid.add(lo, hi)
			mid.hlf(mid)
			if f.within(semiconvergent(prev, prevprev, mid), prec) {
				hi = mid
			} else {
				lo.add(mid, bone)
			}
		}
		best := semiconvergent(prev, prevprev, lo)
		lo.sub(lo, bone)
		other := semiconvergent(prev, prevprev, lo)
		if other.q().sign() == 0 {
			other = best.Add(NewFromInt64(1))
		}

		// Even convergents undershoot f, odd convergents overshoot it
		if i%2 == 0 {
			return Approximation{Fraction: best, Left: other, Right: prev}
		}
		return Approximation{Fraction: best, Left: prev, Right: other}
	}
	// The last convergent equals f
	panic(fmt.Sprintf("%v.Approximate(%v) failed: no convergent within precision", f, prec))
}

// Path returns the path from the integer part of f down the Stern-Brocot
// tree to f: ⌊f⌋, then ⌊f⌋ + 1, then every mediant visited while
// bisecting towards f, ending with f itself.
// Consecutive fractions on the path are Stern-Brocot neighbors.
// If f is an integer, the path consists of f alone.
func (f Fraction) Path() []Fraction {
	fl := new(bint)
	fl.floorQuo(f.p(), f.q())
	left := newRaw(fl, bone)
	path := []Fraction{left}
	if f.IsInt() {
		return path
	}
	cl := new(bint)
	cl.add(fl, bone)
	right := newRaw(cl, bone)
	path = append(path, right)
	for {
		m := left.mediant(right)
		path = append(path, m)
		switch m.Cmp(f) {
		case 0:
			return path
		case -1:
			left = m
		default:
			right = m
		}
	}
}
