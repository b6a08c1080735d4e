// SPDX-License-Identifier: MIT
// Package ops: the builtin operator set.
//
// Operator order below is fixed: ids are dense per arity in registration
// order, and downstream code may persist them for the life of a run.
// Extend by appending, never by reordering.
package ops

import "github.com/katalvlaran/dynexpr/expr"

// unary wraps single-argument value/partial functions into an Op.
func unary[T expr.Float](name, infix string, role Role, eval, partial func(T) T) Op[T] {
	return Op[T]{
		Name:  name,
		Infix: infix,
		Role:  role,
		Eval: func(a *[expr.MaxArity]T) T {
			return eval(a[0])
		},
		Partial: func(a *[expr.MaxArity]T, j int) T {
			if j != 0 {
				panic("ops: unary partial index out of range")
			}

			return partial(a[0])
		},
	}
}

// Builtin returns a fresh registry with the full builtin operator set:
// 30 unary, 8 binary and 2 ternary operators. Each call builds an
// independent Set; ids are identical across calls because the
// registration order is fixed.
func Builtin[T expr.Float]() *Set[T] {
	s := NewSet[T]()

	// --- unary -----------------------------------------------------------
	s.Register(1, unary[T]("abs", "", RoleNone, Abs[T], func(x T) T {
		// abs'(0) is taken as 0.
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	}))
	s.Register(1, unary[T]("abs2", "", RoleNone,
		func(x T) T { return x * x },
		func(x T) T { return 2 * x },
	))
	s.Register(1, unary[T]("acos", "", RoleNone, Acos[T],
		func(x T) T { return -1 / Sqrt(1-x*x) }))
	s.Register(1, unary[T]("acosh", "", RoleNone, Acosh[T],
		func(x T) T { return 1 / (Sqrt(x-1) * Sqrt(x+1)) }))
	s.Register(1, unary[T]("asin", "", RoleNone, Asin[T],
		func(x T) T { return 1 / Sqrt(1-x*x) }))
	s.Register(1, unary[T]("asinh", "", RoleNone, Asinh[T],
		func(x T) T { return 1 / Sqrt(x*x+1) }))
	s.Register(1, unary[T]("atan", "", RoleNone, Atan[T],
		func(x T) T { return 1 / (1 + x*x) }))
	s.Register(1, unary[T]("atanh", "", RoleNone, Atanh[T],
		func(x T) T { return 1 / (1 - x*x) }))
	s.Register(1, unary[T]("cbrt", "", RoleNone, Cbrt[T],
		func(x T) T {
			c := Cbrt(x)

			return 1 / (3 * c * c)
		}))
	s.Register(1, unary[T]("cos", "", RoleNone, Cos[T],
		func(x T) T { return -Sin(x) }))
	s.Register(1, unary[T]("cosh", "", RoleNone, Cosh[T], Sinh[T]))
	s.Register(1, unary[T]("cot", "", RoleNone,
		func(x T) T { return 1 / Tan(x) },
		func(x T) T {
			sn := Sin(x)

			return -1 / (sn * sn)
		}))
	s.Register(1, unary[T]("csc", "", RoleNone,
		func(x T) T { return 1 / Sin(x) },
		func(x T) T { return -(1 / Sin(x)) * (1 / Tan(x)) }))
	s.Register(1, unary[T]("exp", "", RoleNone, Exp[T], Exp[T]))
	s.Register(1, unary[T]("exp2", "", RoleNone, Exp2[T],
		func(x T) T { return Exp2(x) * Log(T(2)) }))
	s.Register(1, unary[T]("expm1", "", RoleNone, Expm1[T], Exp[T]))
	s.Register(1, unary[T]("identity", "", RoleNone,
		func(x T) T { return x },
		func(T) T { return 1 }))
	s.Register(1, unary[T]("inv", "", RoleNone,
		func(x T) T { return 1 / x },
		func(x T) T { return -1 / (x * x) }))
	s.Register(1, unary[T]("log", "", RoleNone, Log[T],
		func(x T) T { return 1 / x }))
	s.Register(1, unary[T]("log1p", "", RoleNone, Log1p[T],
		func(x T) T { return 1 / (1 + x) }))
	s.Register(1, unary[T]("log2", "", RoleNone, Log2[T],
		func(x T) T { return 1 / (x * Log(T(2))) }))
	s.Register(1, unary[T]("log10", "", RoleNone, Log10[T],
		func(x T) T { return 1 / (x * Log(T(10))) }))
	s.Register(1, unary[T]("neg", "-", RoleNeg,
		func(x T) T { return -x },
		func(T) T { return -1 }))
	s.Register(1, unary[T]("sec", "", RoleNone,
		func(x T) T { return 1 / Cos(x) },
		func(x T) T { return (1 / Cos(x)) * Tan(x) }))
	s.Register(1, unary[T]("sign", "", RoleNone, Sign[T],
		func(T) T { return 0 }))
	s.Register(1, unary[T]("sin", "", RoleNone, Sin[T], Cos[T]))
	s.Register(1, unary[T]("sinh", "", RoleNone, Sinh[T], Cosh[T]))
	s.Register(1, unary[T]("sqrt", "", RoleNone, Sqrt[T],
		func(x T) T { return 1 / (2 * Sqrt(x)) }))
	s.Register(1, unary[T]("tan", "", RoleNone, Tan[T],
		func(x T) T {
			c := Cos(x)

			return 1 / (c * c)
		}))
	s.Register(1, unary[T]("tanh", "", RoleNone, Tanh[T],
		func(x T) T {
			c := Cosh(x)

			return 1 / (c * c)
		}))

	// --- binary ----------------------------------------------------------
	s.Register(2, Op[T]{
		Name: "add", Infix: "+", Role: RoleAdd,
		Eval: func(a *[expr.MaxArity]T) T { return a[0] + a[1] },
		Partial: func(_ *[expr.MaxArity]T, j int) T {
			switch j {
			case 0, 1:
				return 1
			default:
				panic("ops: add partial index out of range")
			}
		},
	})
	s.Register(2, Op[T]{
		Name: "atan2",
		Eval: func(a *[expr.MaxArity]T) T { return Atan2(a[0], a[1]) },
		Partial: func(a *[expr.MaxArity]T, j int) T {
			y, x := a[0], a[1]
			denom := x*x + y*y
			switch j {
			case 0:
				return x / denom
			case 1:
				return -y / denom
			default:
				panic("ops: atan2 partial index out of range")
			}
		},
	})
	s.Register(2, Op[T]{
		Name: "div", Infix: "/", Role: RoleDiv,
		Eval: func(a *[expr.MaxArity]T) T { return a[0] / a[1] },
		Partial: func(a *[expr.MaxArity]T, j int) T {
			switch j {
			case 0:
				return 1 / a[1]
			case 1:
				return -a[0] / (a[1] * a[1])
			default:
				panic("ops: div partial index out of range")
			}
		},
	})
	s.Register(2, Op[T]{
		Name: "max",
		Eval: func(a *[expr.MaxArity]T) T {
			if a[0] > a[1] {
				return a[0]
			}

			return a[1]
		},
		Partial: maxPartial[T],
	})
	s.Register(2, Op[T]{
		Name: "min",
		Eval: func(a *[expr.MaxArity]T) T {
			if a[0] < a[1] {
				return a[0]
			}

			return a[1]
		},
		Partial: minPartial[T],
	})
	s.Register(2, Op[T]{
		Name: "mul", Infix: "*", Role: RoleMul,
		Eval: func(a *[expr.MaxArity]T) T { return a[0] * a[1] },
		Partial: func(a *[expr.MaxArity]T, j int) T {
			switch j {
			case 0:
				return a[1]
			case 1:
				return a[0]
			default:
				panic("ops: mul partial index out of range")
			}
		},
	})
	s.Register(2, Op[T]{
		Name: "pow",
		Eval: func(a *[expr.MaxArity]T) T { return Pow(a[0], a[1]) },
		Partial: func(a *[expr.MaxArity]T, j int) T {
			x, y := a[0], a[1]
			switch j {
			case 0:
				return y * Pow(x, y-1)
			case 1:
				return Pow(x, y) * Log(x)
			default:
				panic("ops: pow partial index out of range")
			}
		},
	})
	s.Register(2, Op[T]{
		Name: "sub", Infix: "-", Role: RoleSub,
		Eval: func(a *[expr.MaxArity]T) T { return a[0] - a[1] },
		Partial: func(_ *[expr.MaxArity]T, j int) T {
			switch j {
			case 0:
				return 1
			case 1:
				return -1
			default:
				panic("ops: sub partial index out of range")
			}
		},
	})

	// --- ternary ---------------------------------------------------------
	s.Register(3, Op[T]{
		Name: "clamp",
		Eval: func(a *[expr.MaxArity]T) T {
			x, lo, hi := a[0], a[1], a[2]
			if x < lo {
				return lo
			}
			if x > hi {
				return hi
			}

			return x
		},
		Partial: clampPartial[T],
	})
	s.Register(3, Op[T]{
		Name: "fma",
		Eval: func(a *[expr.MaxArity]T) T { return a[0]*a[1] + a[2] },
		Partial: func(a *[expr.MaxArity]T, j int) T {
			switch j {
			case 0:
				return a[1]
			case 1:
				return a[0]
			case 2:
				return 1
			default:
				panic("ops: fma partial index out of range")
			}
		},
	})

	return s
}

// minPartial implements the ½-at-ties convention: min is locally the
// identity in the smaller argument, flat in the larger, and splits the
// subgradient evenly when equal.
func minPartial[T expr.Float](a *[expr.MaxArity]T, j int) T {
	const half = 0.5
	switch j {
	case 0:
		switch {
		case a[0] < a[1]:
			return 1
		case a[0] > a[1]:
			return 0
		default:
			return half
		}
	case 1:
		switch {
		case a[1] < a[0]:
			return 1
		case a[1] > a[0]:
			return 0
		default:
			return half
		}
	default:
		panic("ops: min partial index out of range")
	}
}

// maxPartial mirrors minPartial with the comparison flipped.
func maxPartial[T expr.Float](a *[expr.MaxArity]T, j int) T {
	const half = 0.5
	switch j {
	case 0:
		switch {
		case a[0] > a[1]:
			return 1
		case a[0] < a[1]:
			return 0
		default:
			return half
		}
	case 1:
		switch {
		case a[1] > a[0]:
			return 1
		case a[1] < a[0]:
			return 0
		default:
			return half
		}
	default:
		panic("ops: max partial index out of range")
	}
}

// clampPartial follows the inside-the-interval convention: boundaries
// belong to the pass-through region, so ∂x is 1 on [lo, hi] and the bound
// partials switch on only under strict violation.
func clampPartial[T expr.Float](a *[expr.MaxArity]T, j int) T {
	x, lo, hi := a[0], a[1], a[2]
	switch j {
	case 0:
		if x < lo || x > hi {
			return 0
		}

		return 1
	case 1:
		if x < lo {
			return 1
		}

		return 0
	case 2:
		if x > hi {
			return 1
		}

		return 0
	default:
		panic("ops: clamp partial index out of range")
	}
}
