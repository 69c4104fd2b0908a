// Package viewport maps the on-screen window of a zoomable Ford circle
// diagram onto the fraction package: it derives the denominator bound
// from the zoom level, collects the fractions whose circles may be
// visible, snaps coordinates to simple fractions and keeps track of
// which circles have to be added or removed when the view changes.
package viewport

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/govalues/fraction"
)

// ErrInvalidView is returned for a view with non-positive scale or negative width.
var ErrInvalidView = errors.New("invalid view")

// Config holds the drawing parameters of a diagram.
type Config struct {
	// PixelDrift is how far, in pixels, a snapped coordinate may move.
	PixelDrift fraction.Fraction
	// RadiusThreshold is the smallest radius, in pixels, of a drawn circle.
	RadiusThreshold fraction.Fraction
}

// DefaultConfig returns a config with half-pixel drift and threshold.
func DefaultConfig() Config {
	return Config{
		PixelDrift:      fraction.MustNew(1, 2),
		RadiusThreshold: fraction.MustNew(1, 2),
	}
}

// ConfigFromEnv builds a Config from the FORD_PIXEL_DRIFT and
// FORD_RADIUS_THRESHOLD environment variables, falling back to
// [DefaultConfig] for unset variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if s := os.Getenv("FORD_PIXEL_DRIFT"); s != "" {
		f, err := fraction.Parse(s)
		if err != nil {
			return Config{}, fmt.Errorf("FORD_PIXEL_DRIFT: %w", err)
		}
		cfg.PixelDrift = f
	}
	if s := os.Getenv("FORD_RADIUS_THRESHOLD"); s != "" {
		f, err := fraction.Parse(s)
		if err != nil {
			return Config{}, fmt.Errorf("FORD_RADIUS_THRESHOLD: %w", err)
		}
		cfg.RadiusThreshold = f
	}
	return cfg, cfg.Validate()
}

// Validate returns [fraction.ErrInvalidArgument] unless both parameters
// are positive.
func (c Config) Validate() error {
	if c.PixelDrift.Sign() <= 0 {
		return fmt.Errorf("pixel drift %v must be positive: %w", c.PixelDrift, fraction.ErrInvalidArgument)
	}
	if c.RadiusThreshold.Sign() <= 0 {
		return fmt.Errorf("radius threshold %v must be positive: %w", c.RadiusThreshold, fraction.ErrInvalidArgument)
	}
	return nil
}

// MaxDenominator returns a denominator bound for the circles drawn at the
// given scale: ⌊√⌈2·scale/threshold⌉⌋ + 1.
// A circle of p/q has radius scale/(2q²) pixels, so every circle above
// the radius threshold has q <= √(scale/(2·threshold)). The bound is
// about twice that and keeps some smaller circles near the threshold.
func (c Config) MaxDenominator(scale fraction.Fraction) (*big.Int, error) {
	x, err := scale.Mul(fraction.NewFromInt64(2)).Quo(c.RadiusThreshold)
	if err != nil {
		return nil, fmt.Errorf("MaxDenominator(%v) failed: %w", scale, err)
	}
	q, err := fraction.IntSqrt(x.Ceil())
	if err != nil {
		return nil, fmt.Errorf("MaxDenominator(%v) failed: %w", scale, err)
	}
	return q.Add(q, big.NewInt(1)), nil
}

// Snap returns the fraction with the smallest denominator that lies
// within PixelDrift pixels of x at the given scale.
func (c Config) Snap(x, scale fraction.Fraction) (fraction.Fraction, error) {
	prec, err := c.PixelDrift.Quo(scale)
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("Snap(%v, %v) failed: %w", x, scale, err)
	}
	a, err := x.Approximate(prec)
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("Snap(%v, %v) failed: %w", x, scale, err)
	}
	return a.Fraction, nil
}

// Circles returns, in increasing order, the fractions whose circles may
// be visible above [l, r] with denominators up to maxq.
// Besides the fractions of the interval itself, large circles centered
// outside it can reach into it: these are the even convergents of l,
// which lie below l, and the odd convergents of r, which lie above r.
func (c Config) Circles(l, r fraction.Fraction, maxq *big.Int) ([]fraction.Fraction, error) {
	inside, err := fraction.Interval(l, r, maxq)
	if err != nil {
		return nil, err
	}
	pre, err := boundary(l, maxq, 0)
	if err != nil {
		return nil, err
	}
	if n := len(pre); n > 0 && pre[n-1].Equal(l) {
		pre = pre[:n-1]
	}
	post, err := boundary(r, maxq, 1)
	if err != nil {
		return nil, err
	}
	// Odd convergents decrease towards r
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	if len(post) > 0 && post[0].Equal(r) {
		post = post[1:]
	}

	res := make([]fraction.Fraction, 0, len(pre)+len(inside)+len(post))
	res = append(res, pre...)
	res = append(res, inside...)
	return append(res, post...), nil
}

// boundary returns the convergents of x with the given index parity
// and denominators up to maxq.
func boundary(x fraction.Fraction, maxq *big.Int, parity int) ([]fraction.Fraction, error) {
	convs, err := fraction.Convergents(x.Terms())
	if err != nil {
		return nil, err
	}
	var res []fraction.Fraction
	for i, c := range convs {
		if c.Den().Cmp(maxq) > 0 {
			break
		}
		if i%2 == parity {
			res = append(res, c)
		}
	}
	return res, nil
}

// Radius returns the radius 1/(2q²) of the Ford circle of f in diagram units.
func Radius(f fraction.Fraction) fraction.Fraction {
	q := f.Den()
	d := new(big.Int).Mul(q, q)
	return fraction.NewUnchecked(big.NewInt(1), d.Lsh(d, 1))
}

// View is the horizontal extent of the window onto the diagram.
type View struct {
	Offset fraction.Fraction // diagram coordinate of the left edge
	Scale  fraction.Fraction // pixels per diagram unit
	Width  fraction.Fraction // window width in pixels
}

// Validate returns an error unless the scale is positive and the width
// is not negative.
func (v View) Validate() error {
	if v.Scale.Sign() <= 0 {
		return fmt.Errorf("scale %v must be positive: %w", v.Scale, ErrInvalidView)
	}
	if v.Width.Sign() < 0 {
		return fmt.Errorf("width %v must not be negative: %w", v.Width, ErrInvalidView)
	}
	return nil
}

// Bounds returns the diagram coordinates of the left and right edges.
func (v View) Bounds() (l, r fraction.Fraction, err error) {
	if err := v.Validate(); err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}
	w, err := v.Width.Quo(v.Scale)
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}
	return v.Offset, v.Offset.Add(w), nil
}

// Union returns the smallest interval covering both views and the
// larger of their scales.
func Union(a, b View) (l, r, scale fraction.Fraction, err error) {
	al, ar, err := a.Bounds()
	if err != nil {
		return l, r, scale, err
	}
	bl, br, err := b.Bounds()
	if err != nil {
		return l, r, scale, err
	}
	return al.Min(bl), ar.Max(br), a.Scale.Max(b.Scale), nil
}

// Pan drags the diagram dx pixels to the right and snaps the new offset.
func (c Config) Pan(v View, dx fraction.Fraction) (View, error) {
	shift, err := dx.Quo(v.Scale)
	if err != nil {
		return View{}, fmt.Errorf("Pan(%v) failed: %w", dx, err)
	}
	offset, err := c.Snap(v.Offset.Sub(shift), v.Scale)
	if err != nil {
		return View{}, fmt.Errorf("Pan(%v) failed: %w", dx, err)
	}
	v.Offset = offset
	return v, nil
}

// Zoom multiplies the scale by factor, keeping the point at pixel x in
// place. Both the new scale and the new offset are snapped.
func (c Config) Zoom(v View, factor, x fraction.Fraction) (View, error) {
	if err := v.Validate(); err != nil {
		return View{}, fmt.Errorf("Zoom(%v, %v) failed: %w", factor, x, err)
	}
	if factor.Sign() <= 0 || v.Width.IsZero() {
		return View{}, fmt.Errorf("Zoom(%v, %v) failed: %w", factor, x, fraction.ErrInvalidArgument)
	}
	prec := v.Scale.Mul(c.PixelDrift).MustQuo(v.Width)
	a, err := v.Scale.Mul(factor).Approximate(prec)
	if err != nil {
		return View{}, fmt.Errorf("Zoom(%v, %v) failed: %w", factor, x, err)
	}
	scale := a.Fraction
	if scale.Sign() <= 0 {
		return View{}, fmt.Errorf("Zoom(%v, %v) failed: scale %v is too small: %w", factor, x, scale, ErrInvalidView)
	}
	// The diagram point under x moves by x·(1/scale − 1/v.Scale)
	d := scale.MustQuo(v.Scale)
	d = fraction.NewFromInt64(1).Sub(d).MustQuo(scale)
	offset, err := c.Snap(v.Offset.Sub(d.Mul(x)), v.Scale)
	if err != nil {
		return View{}, fmt.Errorf("Zoom(%v, %v) failed: %w", factor, x, err)
	}
	return View{Offset: offset, Scale: scale, Width: v.Width}, nil
}

// Diff compares two increasing sequences of fractions and returns the
// elements only in next and the elements only in prev.
func Diff(prev, next []fraction.Fraction) (added, removed []fraction.Fraction) {
	i, j := 0, 0
	for i < len(prev) && j < len(next) {
		switch prev[i].Cmp(next[j]) {
		case -1:
			removed = append(removed, prev[i])
			i++
		case 1:
			added = append(added, next[j])
			j++
		default:
			i++
			j++
		}
	}
	removed = append(removed, prev[i:]...)
	added = append(added, next[j:]...)
	return added, removed
}

// Tracker remembers which circles are drawn.
// Tracker is not safe for concurrent use.
type Tracker struct {
	cfg   Config
	drawn []fraction.Fraction
}

// NewTracker returns a tracker with nothing drawn.
func NewTracker(cfg Config) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tracker{cfg: cfg}, nil
}

// Drawn returns the fractions whose circles are currently drawn.
func (t *Tracker) Drawn() []fraction.Fraction {
	return t.drawn
}

// Update moves the window from one view to another. The circles that may be
// visible in either view at the larger scale become the drawn set,
// and the changes against the previous drawn set are returned.
func (t *Tracker) Update(from, to View) (added, removed []fraction.Fraction, err error) {
	l, r, scale, err := Union(from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("Update failed: %w", err)
	}
	maxq, err := t.cfg.MaxDenominator(scale)
	if err != nil {
		return nil, nil, fmt.Errorf("Update failed: %w", err)
	}
	circles, err := t.cfg.Circles(l, r, maxq)
	if err != nil {
		return nil, nil, fmt.Errorf("Update failed: %w", err)
	}
	added, removed = Diff(t.drawn, circles)
	t.drawn = circles
	return added, removed, nil
}
