// SPDX-License-Identifier: MIT
// Package ops: generic scalar math.
//
// Go's math package is float64-only; these wrappers lift it over the
// expr.Float bound so operator kernels stay generic. Routing float32
// through float64 keeps one code path and matches IEEE round-to-nearest on
// the final conversion.
package ops

import (
	"math"

	"github.com/katalvlaran/dynexpr/expr"
)

// NaN returns the quiet NaN of the scalar type.
func NaN[T expr.Float]() T { return T(math.NaN()) }

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T expr.Float](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Abs returns |x|.
func Abs[T expr.Float](x T) T { return T(math.Abs(float64(x))) }

// Sqrt returns √x.
func Sqrt[T expr.Float](x T) T { return T(math.Sqrt(float64(x))) }

// Cbrt returns the cube root of x.
func Cbrt[T expr.Float](x T) T { return T(math.Cbrt(float64(x))) }

// Exp returns e**x.
func Exp[T expr.Float](x T) T { return T(math.Exp(float64(x))) }

// Exp2 returns 2**x.
func Exp2[T expr.Float](x T) T { return T(math.Exp2(float64(x))) }

// Expm1 returns e**x − 1, accurate near zero.
func Expm1[T expr.Float](x T) T { return T(math.Expm1(float64(x))) }

// Log returns the natural logarithm of x.
func Log[T expr.Float](x T) T { return T(math.Log(float64(x))) }

// Log1p returns ln(1+x), accurate near zero.
func Log1p[T expr.Float](x T) T { return T(math.Log1p(float64(x))) }

// Log2 returns the base-2 logarithm of x.
func Log2[T expr.Float](x T) T { return T(math.Log2(float64(x))) }

// Log10 returns the base-10 logarithm of x.
func Log10[T expr.Float](x T) T { return T(math.Log10(float64(x))) }

// Sin returns the sine of x (radians).
func Sin[T expr.Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[T expr.Float](x T) T { return T(math.Cos(float64(x))) }

// Tan returns the tangent of x (radians).
func Tan[T expr.Float](x T) T { return T(math.Tan(float64(x))) }

// Asin returns the arcsine of x.
func Asin[T expr.Float](x T) T { return T(math.Asin(float64(x))) }

// Acos returns the arccosine of x.
func Acos[T expr.Float](x T) T { return T(math.Acos(float64(x))) }

// Atan returns the arctangent of x.
func Atan[T expr.Float](x T) T { return T(math.Atan(float64(x))) }

// Atan2 returns the two-argument arctangent of y/x.
func Atan2[T expr.Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Sinh returns the hyperbolic sine of x.
func Sinh[T expr.Float](x T) T { return T(math.Sinh(float64(x))) }

// Cosh returns the hyperbolic cosine of x.
func Cosh[T expr.Float](x T) T { return T(math.Cosh(float64(x))) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T expr.Float](x T) T { return T(math.Tanh(float64(x))) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T expr.Float](x T) T { return T(math.Asinh(float64(x))) }

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh[T expr.Float](x T) T { return T(math.Acosh(float64(x))) }

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh[T expr.Float](x T) T { return T(math.Atanh(float64(x))) }

// Pow returns x**y.
func Pow[T expr.Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// Sign returns 1 for positive x, -1 for negative x, and x itself for
// zero or NaN (so ±0 stays ±0 and NaN propagates).
func Sign[T expr.Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}
