package fraction

import (
	"math/rand"
	"testing"
)

func TestFraction_Expand(t *testing.T) {
	tests := []struct {
		f        string
		n        int
		sign     int
		lead     string
		exp      int
		digits   string
		finished bool
	}{
		{"0", 5, 1, "0", 0, "", true},
		{"1", 5, 1, "1", 0, "", true},
		{"10", 5, 1, "1", 1, "", true},
		{"1/3", 5, 1, "3", -1, "33333", false},
		{"-1/3", 5, -1, "3", -1, "33333", false},
		{"1/8", 5, 1, "1", -1, "25", true},
		{"1250", 5, 1, "1", 3, "25", true},
		{"1/1000", 5, 1, "1", -3, "", true},
		{"99/100", 5, 1, "9", -1, "9", true},
		{"-22/7", 12, -1, "3", 0, "142857142857", false},
		{"1/7", 6, 1, "1", -1, "428571", false},
		{"123456789012345678901234567890", 40, 1, "1", 29, "2345678901234567890123456789", true},
	}
	for _, tt := range tests {
		f := MustParse(tt.f)
		e := f.Expand()
		if e.Sign != tt.sign || e.Lead.String() != tt.lead || e.Exponent != tt.exp {
			t.Errorf("%q.Expand() = {%v, %v, %v}, want {%v, %v, %v}", f, e.Sign, e.Lead, e.Exponent, tt.sign, tt.lead, tt.exp)
			continue
		}
		got := e.Digits.Take(tt.n)
		if got != tt.digits {
			t.Errorf("%q.Expand().Digits.Take(%v) = %q, want %q", f, tt.n, got, tt.digits)
		}
		if _, ok := e.Digits.Next(); ok == tt.finished {
			t.Errorf("%q.Expand().Digits.Next() after %v digits = %v, want %v", f, tt.n, ok, !tt.finished)
		}
	}
}

func TestFraction_Expand_Zero(t *testing.T) {
	e := Fraction{}.Expand()
	if e.Digits != nil {
		t.Errorf("Fraction{}.Expand().Digits = %v, want nil", e.Digits)
	}
	if d, ok := e.Digits.Next(); ok || d != 0 {
		t.Errorf("Fraction{}.Expand().Digits.Next() = (%v, %v), want (0, false)", d, ok)
	}
}

func TestDigits_NotRestartable(t *testing.T) {
	d := MustParse("1/7").Expand().Digits
	if got := d.Take(3); got != "428" {
		t.Errorf("Take(3) = %q, want %q", got, "428")
	}
	if got := d.Take(3); got != "571" {
		t.Errorf("Take(3) = %q, want %q", got, "571")
	}
}

func TestExpansion_Scientific(t *testing.T) {
	tests := []struct {
		f    string
		n    int
		want string
	}{
		{"0", 3, "0"},
		{"1/3", 2, "3.33e-1"},
		{"-1/3", 2, "-3.33e-1"},
		{"-22/7", 2, "-3.14"},
		{"1250", 5, "1.25e3"},
		{"7000", 5, "7e3"},
		{"1/1000", 5, "1e-3"},
	}
	for _, tt := range tests {
		f := MustParse(tt.f)
		e := f.Expand()
		got := e.Scientific(e.Digits.Take(tt.n))
		if got != tt.want {
			t.Errorf("%q.Expand().Scientific() = %q, want %q", f, got, tt.want)
		}
	}
}

// Fractions with denominators 2^a·5^b terminate and their digits
// reproduce the fraction exactly.
func TestFraction_Expand_Terminating(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	ten := NewFromInt64(10)
	for i := 0; i < 200; i++ {
		den := int64(1)
		for j := rnd.Intn(8); j > 0; j-- {
			den *= 2
		}
		for j := rnd.Intn(8); j > 0; j-- {
			den *= 5
		}
		f := MustNew(rnd.Int63n(2000001)-1000000, den)
		if f.IsZero() {
			continue
		}
		e := f.Expand()
		frac := e.Digits.Take(100)
		if _, ok := e.Digits.Next(); ok {
			t.Errorf("%q.Expand() did not terminate", f)
			continue
		}
		s := e.Lead.String()
		if frac != "" {
			s += "." + frac
		}
		scale, err := ten.Pow(e.Exponent)
		if err != nil {
			t.Errorf("%q.Pow(%v) failed: %v", ten, e.Exponent, err)
			continue
		}
		got := MustParse(s).Mul(scale)
		if e.Sign < 0 {
			got = got.Neg()
		}
		if !got.Equal(f) {
			t.Errorf("%q.Expand() = %v, reconstructed as %q", f, e.Scientific(frac), got)
		}
	}
}
