/*
Package fraction implements immutable exact rational numbers with
arbitrary-precision numerators and denominators, together with the
continued fraction and Stern-Brocot tree algorithms needed to enumerate
the fractions of bounded denominator inside an interval.
It is the numeric engine behind a zoomable [Ford circle] diagram, where
every visible circle corresponds to a fraction of the interval on screen
and the denominator bound follows from the zoom level.

# Representation

[Fraction] is a struct with two fields:

  - Numerator: an arbitrary-precision integer carrying the sign.
  - Denominator: a positive arbitrary-precision integer.

All constructors except [NewUnchecked] reduce the fraction to lowest terms,
so every number has exactly one representation, and zero is 0/1.
No operation ever rounds: zooming arbitrarily deep near any point never
loses precision, only the size of the integers grows.

# Conversions

The package provides methods for converting fractions:

  - from/to string:
    [Parse], [Fraction.String], [Fraction.MarshalText], [Fraction.UnmarshalText].
    Parse accepts "p/q", integers, terminating decimals and decimals
    with a repeating block, such as "0.1(6)".
  - from/to float64:
    [NewFromFloat64], [Fraction.Float64].
    The conversion from a float is exact.
  - from integers:
    [New], [NewFromInt64], [NewFromBigInt].
  - to decimal digits:
    [Fraction.Expand] returns a lazy, possibly infinite, digit sequence.

# Stern-Brocot tree

Two fractions a/b < c/d are Stern-Brocot neighbors if bc − ad = 1.
Their mediant (a+c)/(b+d) is already in lowest terms and is the unique
fraction with the smallest denominator strictly between them.
The algorithms of this package rely on this property:

  - [Fraction.Terms] and [Convergents] compute continued fractions.
  - [Fraction.Approximate] finds the fraction with the smallest denominator
    within a given distance, together with its two parents in the tree.
  - [Interval] enumerates all fractions with bounded denominator
    inside an interval in time proportional to the size of the result.
  - [Fraction.Path] returns the path from the root of the tree to a fraction.

# Errors

All methods are pure and, except for the Must functions, panic-free.
Errors are returned in the following cases:

  - [ErrDivisionByZero]: zero denominator or division by 0.
  - [ErrInvalidNumberFormat]: a string does not represent a fraction.
  - [ErrInvalidArgument]: non-positive precision or denominator bound,
    an empty interval, or a float that is NaN or infinite.
  - [ErrNegativeRadicand]: [IntSqrt] of a negative number.

[Ford circle]: https://en.wikipedia.org/wiki/Ford_circle
*/
package fraction
