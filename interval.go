package fraction

import (
	"fmt"
	"math/big"
)

// Interval returns, in increasing order, every fraction x in lowest terms
// such that l <= x <= r and the denominator of x does not exceed maxq.
// Within [0, 1] the result is a slice of the Farey sequence of order maxq.
//
// The running time is proportional to the length of the result plus
// the number of continued fraction terms needed to reach l and r,
// so the interval can be arbitrarily narrow and arbitrarily far from 0.
//
// Interval returns [ErrInvalidArgument] if l > r or maxq < 1.
func Interval(l, r Fraction, maxq *big.Int) ([]Fraction, error) {
	switch {
	case maxq == nil || maxq.Sign() <= 0:
		return nil, fmt.Errorf("Interval(%v, %v, %v) failed: denominator bound must be positive: %w", l, r, maxq, ErrInvalidArgument)
	case l.Cmp(r) > 0:
		return nil, fmt.Errorf("Interval(%v, %v, %v) failed: empty interval: %w", l, r, maxq, ErrInvalidArgument)
	}
	return interval(l, r, (*bint)(maxq)), nil
}

func interval(l, r Fraction, maxq *bint) []Fraction {
	// Anchor: the fraction with the smallest denominator in [l, r]
	mid := l.Add(r).Mul(half)
	root := mid.approximate(r.Sub(l).Mul(half))
	if root.Fraction.q().cmp(maxq) > 0 {
		return nil
	}

	// Move the anchor to the leftmost integer in [l, r].
	// If the anchor is not an integer, [l, r] holds no integer and k is 0.
	if k := root.Fraction.Sub(l).Floor(); k.Sign() > 0 {
		shift := newRaw((*bint)(k), bone)
		root.Fraction = root.Fraction.Sub(shift)
		root.Left = root.Left.Sub(shift)
		root.Right = root.Right.Sub(shift)
	}

	// Left extension: bisect between the left parent and the anchor
	// towards l; every mediant at or above l is a new first element.
	// Consecutive steps towards the right parent are taken at once.
	var head []Fraction
	left, right := root.Left, root.Fraction
	for {
		if k := jump(left, right, l, maxq); k.sign() > 0 {
			left = semiconvergent(right, left, k)
		}
		m := left.mediant(right)
		if m.q().cmp(maxq) > 0 {
			break
		}
		c := m.Cmp(l)
		if c < 0 {
			left = m
			continue
		}
		head = append(head, m)
		if c == 0 {
			break
		}
		right = m
	}
	anchors := make([]Fraction, 0, len(head)+2)
	for i := len(head) - 1; i >= 0; i-- {
		anchors = append(anchors, head[i])
	}
	anchors = append(anchors, root.Fraction)

	// Integer walk: consecutive integers are neighbors
	left, right = root.Fraction, root.Right
	if root.Fraction.IsInt() {
		one := NewFromInt64(1)
		right = left.Add(one)
		for right.Cmp(r) <= 0 {
			anchors = append(anchors, right)
			left = right
			right = right.Add(one)
		}
	}

	// Right extension: bisect between the last anchor and its right
	// parent towards r; every mediant at or below r is a new last element.
	for {
		if k := jump(right, left, r, maxq); k.sign() > 0 {
			right = semiconvergent(left, right, k)
		}
		m := left.mediant(right)
		if m.q().cmp(maxq) > 0 {
			break
		}
		c := m.Cmp(r)
		if c > 0 {
			right = m
			continue
		}
		anchors = append(anchors, m)
		if c == 0 {
			break
		}
		left = m
	}

	// Densification
	res := make([]Fraction, 0, 2*len(anchors))
	for i := 0; i < len(anchors)-1; i++ {
		res = append(res, anchors[i])
		res = densify(res, anchors[i], anchors[i+1], maxq)
	}
	return append(res, anchors[len(anchors)-1])
}

// jump returns the largest k >= 0 such that the fraction
// (a.p + k·b.p) / (a.q + k·b.q) lies strictly on the same side of x as a
// and its denominator does not exceed maxq.
// a and b must be Stern-Brocot neighbors, a strictly on one side of x,
// b on the other side or equal to x.
func jump(a, b, x Fraction, maxq *bint) *bint {
	k := new(bint)
	if a.q().cmp(maxq) >= 0 {
		return k
	}
	k.sub(maxq, a.q())
	k.quo(k, b.q())

	// cross(a + k·b, x) = cross(a, x) + k·cross(b, x), so the side
	// changes once k·|cross(b, x)| >= |cross(a, x)|.
	n, d := new(bint), new(bint)
	n.abs(a.cross(x))
	d.abs(b.cross(x))
	if d.sign() != 0 {
		n.sub(n, bone)
		n.quo(n, d)
		if n.cmp(k) < 0 {
			k = n
		}
	}
	return k
}

// densify appends to res, in increasing order, every fraction strictly
// between the Stern-Brocot neighbors a < b whose denominator does not
// exceed maxq.
// Any such fraction is a descendant of the mediant of a and b, so the
// subtree is traversed in order, pruning at denominators above maxq.
func densify(res []Fraction, a, b Fraction, maxq *bint) []Fraction {
	type frame struct {
		left, right Fraction
		emit        bool // emit left instead of descending
	}
	stack := []frame{{left: a, right: b}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.emit {
			res = append(res, top.left)
			continue
		}
		m := top.left.mediant(top.right)
		if m.q().cmp(maxq) > 0 {
			continue
		}
		stack = append(stack,
			frame{left: m, right: top.right},
			frame{left: m, emit: true},
			frame{left: top.left, right: m},
		)
	}
	return res
}
