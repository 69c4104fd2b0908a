package fraction_test

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/govalues/fraction"
)

// This example lists the Ford circles tangent to the unit interval:
// every fraction p/q in lowest terms is the point of tangency of a circle
// with radius 1/(2q²), and only circles larger than a threshold are drawn.
func Example_fordCircles() {
	l := fraction.MustParse("0")
	r := fraction.MustParse("1")
	for _, f := range fraction.MustInterval(l, r, 4) {
		q := f.Den()
		d := new(big.Int).Mul(q, q)
		radius := fraction.NewUnchecked(big.NewInt(1), d.Lsh(d, 1))
		fmt.Printf("%v r=%v\n", f, radius)
	}
	// Output:
	// 0/1 r=1/2
	// 1/4 r=1/32
	// 1/3 r=1/18
	// 1/2 r=1/8
	// 2/3 r=1/18
	// 3/4 r=1/32
	// 1/1 r=1/2
}

// This example finds the simplest fractions approximating pi
// with increasing precision.
func Example_piApproximation() {
	pi := fraction.MustParse("3.14159265358979")
	for _, s := range []string{"1/10", "1/100", "1/1000", "1/1000000"} {
		a, err := pi.Approximate(fraction.MustParse(s))
		if err != nil {
			panic(err)
		}
		fmt.Println(a.Fraction)
	}
	// Output:
	// 16/5
	// 22/7
	// 201/64
	// 355/113
}

func ExampleMustNew() {
	fmt.Println(fraction.MustNew(6, 4))
	fmt.Println(fraction.MustNew(6, -4))
	fmt.Println(fraction.MustNew(0, 5))
	// Output:
	// 3/2
	// -3/2
	// 0/1
}

func ExampleNew() {
	fmt.Println(fraction.New(6, 4))
	fmt.Println(fraction.New(-6, -4))
	fmt.Println(fraction.New(7, 1))
	// Output:
	// 3/2 <nil>
	// 3/2 <nil>
	// 7/1 <nil>
}

func ExampleNewFromInt64() {
	fmt.Println(fraction.NewFromInt64(-7))
	fmt.Println(fraction.NewFromInt64(0))
	// Output:
	// -7/1
	// 0/1
}

func ExampleNewFromFloat64() {
	fmt.Println(fraction.NewFromFloat64(1.5))
	fmt.Println(fraction.NewFromFloat64(-0.25))
	fmt.Println(fraction.NewFromFloat64(0.1))
	// Output:
	// 3/2 <nil>
	// -1/4 <nil>
	// 3602879701896397/36028797018963968 <nil>
}

func ExampleParse() {
	fmt.Println(fraction.Parse("22/7"))
	fmt.Println(fraction.Parse("-1.25"))
	fmt.Println(fraction.Parse("0.1(6)"))
	fmt.Println(fraction.Parse("12"))
	// Output:
	// 22/7 <nil>
	// -5/4 <nil>
	// 1/6 <nil>
	// 12/1 <nil>
}

func ExampleMustParse() {
	fmt.Println(fraction.MustParse("4/6"))
	// Output: 2/3
}

func ExampleFraction_MarshalText() {
	type Point struct {
		X fraction.Fraction `json:"x"`
	}
	b, err := json.Marshal(Point{X: fraction.MustParse("1/3")})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"x":"1/3"}
}

func ExampleFraction_UnmarshalText() {
	var v struct {
		X fraction.Fraction `json:"x"`
	}
	err := json.Unmarshal([]byte(`{"x":"0.(3)"}`), &v)
	if err != nil {
		panic(err)
	}
	fmt.Println(v.X)
	// Output: 1/3
}

func ExampleFraction_Float64() {
	fmt.Println(fraction.MustParse("1/2").Float64())
	fmt.Println(fraction.MustParse("1/3").Float64())
	// Output:
	// 0.5
	// 0.3333333333333333
}

func ExampleFraction_Add() {
	f := fraction.MustParse("1/2")
	g := fraction.MustParse("1/3")
	fmt.Println(f.Add(g))
	// Output: 5/6
}

func ExampleFraction_Sub() {
	f := fraction.MustParse("1/2")
	g := fraction.MustParse("1/3")
	fmt.Println(f.Sub(g))
	// Output: 1/6
}

func ExampleFraction_Mul() {
	f := fraction.MustParse("2/3")
	g := fraction.MustParse("-3/4")
	fmt.Println(f.Mul(g))
	// Output: -1/2
}

func ExampleFraction_Quo() {
	f := fraction.MustParse("2/3")
	g := fraction.MustParse("-4/3")
	fmt.Println(f.Quo(g))
	// Output: -1/2 <nil>
}

func ExampleFraction_Inv() {
	fmt.Println(fraction.MustParse("-2/3").Inv())
	// Output: -3/2 <nil>
}

func ExampleFraction_Pow() {
	f := fraction.MustParse("2/3")
	fmt.Println(f.Pow(2))
	fmt.Println(f.Pow(-2))
	fmt.Println(f.Pow(0))
	// Output:
	// 4/9 <nil>
	// 9/4 <nil>
	// 1/1 <nil>
}

func ExampleFraction_Mediant() {
	f := fraction.MustParse("1/3")
	g := fraction.MustParse("1/2")
	fmt.Println(f.Mediant(g))
	// Output: 2/5
}

func ExampleFraction_Floor() {
	fmt.Println(fraction.MustParse("7/2").Floor())
	fmt.Println(fraction.MustParse("-7/2").Floor())
	// Output:
	// 3
	// -4
}

func ExampleFraction_Ceil() {
	fmt.Println(fraction.MustParse("7/2").Ceil())
	fmt.Println(fraction.MustParse("-7/2").Ceil())
	// Output:
	// 4
	// -3
}

func ExampleFraction_Cmp() {
	f := fraction.MustParse("1/3")
	g := fraction.MustParse("2/5")
	fmt.Println(f.Cmp(g))
	fmt.Println(f.Cmp(f))
	fmt.Println(g.Cmp(f))
	// Output:
	// -1
	// 0
	// 1
}

func ExampleFraction_Cross() {
	f := fraction.MustParse("1/3")
	g := fraction.MustParse("1/2")
	fmt.Println(f.Cross(g))
	// Output: -1
}

func ExampleFraction_Terms() {
	fmt.Println(fraction.MustParse("415/93").Terms())
	fmt.Println(fraction.MustParse("-22/7").Terms())
	// Output:
	// [4 2 6 7]
	// [-4 1 6]
}

func ExampleFraction_TruncatedTerms() {
	fmt.Println(fraction.MustParse("-22/7").TruncatedTerms())
	// Output: [-3 -7]
}

func ExampleConvergents() {
	terms := []*big.Int{big.NewInt(3), big.NewInt(7), big.NewInt(16)}
	fmt.Println(fraction.Convergents(terms))
	// Output: [3/1 22/7 355/113] <nil>
}

func ExampleFromTerms() {
	terms := []*big.Int{big.NewInt(4), big.NewInt(2), big.NewInt(6), big.NewInt(7)}
	fmt.Println(fraction.FromTerms(terms))
	// Output: 415/93 <nil>
}

func ExampleFraction_Approximate() {
	f := fraction.MustParse("355/113")
	a, err := f.Approximate(fraction.MustParse("1/100"))
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Left, a.Fraction, a.Right)
	// Output: 3/1 22/7 19/6
}

func ExampleFraction_Path() {
	fmt.Println(fraction.MustParse("3/5").Path())
	// Output: [0/1 1/1 1/2 2/3 3/5]
}

func ExampleInterval() {
	l := fraction.MustParse("1/3")
	r := fraction.MustParse("1")
	fmt.Println(fraction.Interval(l, r, big.NewInt(3)))
	// Output: [1/3 1/2 2/3 1/1] <nil>
}

func ExampleMustInterval() {
	l := fraction.MustParse("-3/2")
	r := fraction.MustParse("1/2")
	fmt.Println(fraction.MustInterval(l, r, 2))
	// Output: [-3/2 -1/1 -1/2 0/1 1/2]
}

func ExampleFraction_Expand() {
	e := fraction.MustParse("-1/3").Expand()
	fmt.Println(e.Sign, e.Lead, e.Exponent, e.Digits.Take(5))
	// Output: -1 3 -1 33333
}

func ExampleExpansion_Scientific() {
	e := fraction.MustParse("1250").Expand()
	fmt.Println(e.Scientific(e.Digits.Take(10)))
	// Output: 1.25e3
}

func ExampleDigits_Next() {
	d := fraction.MustParse("1/8").Expand().Digits
	for {
		digit, ok := d.Next()
		if !ok {
			break
		}
		fmt.Println(digit)
	}
	// Output:
	// 2
	// 5
}

func ExampleIntSqrt() {
	fmt.Println(fraction.IntSqrt(big.NewInt(99)))
	fmt.Println(fraction.IntSqrt(big.NewInt(100)))
	// Output:
	// 9 <nil>
	// 10 <nil>
}
