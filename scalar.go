package calculator

import (
	"math"
)

// DefaultEpsilon is the absolute tolerance IsClose uses.
const DefaultEpsilon = 1e-12

// Scalar is a real value that is either a concrete float64 or symbolic text
// in the expression grammar, which may mention free variables. Operations
// with only numeric operands compute numbers; operations with any symbolic
// operand build the text of the operation instead, formatting numeric
// operands with FormatFloat.
//
// Scalars are immutable values. The zero value is the number 0.
type Scalar struct {
	sym  bool
	num  float64
	text string
}

// Num returns a numeric Scalar.
func Num(x float64) Scalar {
	return Scalar{num: x}
}

// Sym returns a symbolic Scalar holding text. The text is not parsed or
// evaluated.
func Sym(text string) Scalar {
	return Scalar{sym: true, text: text}
}

// IsNum returns whether x holds a concrete number.
func (x Scalar) IsNum() bool {
	return !x.sym
}

// Text returns the symbolic text of x and whether x is symbolic.
func (x Scalar) Text() (string, bool) {
	return x.text, x.sym
}

// Float64 returns the number x holds. If x is symbolic, the error is
// ErrSymbolic.
func (x Scalar) Float64() (float64, error) {
	if x.sym {
		return 0, ErrSymbolic
	}
	return x.num, nil
}

// String returns the canonical text of x: its symbolic text, or its number
// formatted with FormatFloat.
func (x Scalar) String() string {
	if x.sym {
		return x.text
	}
	return FormatFloat(x.num)
}

func (x Scalar) binary(y Scalar, op string, f func(a, b float64) float64) Scalar {
	if !x.sym && !y.sym {
		return Num(f(x.num, y.num))
	}
	return Sym("(" + operand(x) + " " + op + " " + operand(y) + ")")
}

func (x Scalar) call(name string, f func(float64) float64) Scalar {
	if !x.sym {
		return Num(f(x.num))
	}
	return Sym(name + "(" + x.text + ")")
}

// Add returns x + y.
func (x Scalar) Add(y Scalar) Scalar {
	return x.binary(y, "+", func(a, b float64) float64 { return a + b })
}

// Sub returns x - y.
func (x Scalar) Sub(y Scalar) Scalar {
	return x.binary(y, "-", func(a, b float64) float64 { return a - b })
}

// Mul returns x * y.
func (x Scalar) Mul(y Scalar) Scalar {
	return x.binary(y, "*", func(a, b float64) float64 { return a * b })
}

// Div returns x / y. If y is a numeric zero of either sign, the error is
// ErrDivisionByZero. A symbolic y is never checked; a zero it evaluates to is
// reported when the result is resolved.
func (x Scalar) Div(y Scalar) (Scalar, error) {
	if !y.sym && y.num == 0 {
		return Scalar{}, ErrDivisionByZero
	}
	return x.binary(y, "/", func(a, b float64) float64 { return a / b }), nil
}

// Pow returns x ^ y.
func (x Scalar) Pow(y Scalar) Scalar {
	return x.binary(y, "^", math.Pow)
}

// Atan2 returns the arc tangent of x/y, using the signs of both to determine
// the quadrant, as math.Atan2(x, y).
func (x Scalar) Atan2(y Scalar) Scalar {
	if !x.sym && !y.sym {
		return Num(math.Atan2(x.num, y.num))
	}
	return Sym("atan2(" + x.String() + ", " + y.String() + ")")
}

// Neg returns -x.
func (x Scalar) Neg() Scalar {
	if !x.sym {
		return Num(-x.num)
	}
	return Sym("(-" + operand(x) + ")")
}

// Recip returns 1/x, with the same zero check as Div.
func (x Scalar) Recip() (Scalar, error) {
	return Num(1).Div(x)
}

// Sqrt returns the square root of x.
func (x Scalar) Sqrt() Scalar { return x.call("sqrt", math.Sqrt) }

// Exp returns e^x.
func (x Scalar) Exp() Scalar { return x.call("exp", math.Exp) }

// Sin returns the sine of x.
func (x Scalar) Sin() Scalar { return x.call("sin", math.Sin) }

// Cos returns the cosine of x.
func (x Scalar) Cos() Scalar { return x.call("cos", math.Cos) }

// Acos returns the arc cosine of x.
func (x Scalar) Acos() Scalar { return x.call("acos", math.Acos) }

// Abs returns the absolute value of x.
func (x Scalar) Abs() Scalar { return x.call("abs", math.Abs) }

// Signum returns 1 if x is positive or +0, -1 if x is negative or -0, and
// NaN if x is NaN.
func (x Scalar) Signum() Scalar { return x.call("sign", signum) }

func (x Scalar) Tan() Scalar   { return x.call("tan", math.Tan) }
func (x Scalar) Asin() Scalar  { return x.call("asin", math.Asin) }
func (x Scalar) Atan() Scalar  { return x.call("atan", math.Atan) }
func (x Scalar) Sinh() Scalar  { return x.call("sinh", math.Sinh) }
func (x Scalar) Cosh() Scalar  { return x.call("cosh", math.Cosh) }
func (x Scalar) Tanh() Scalar  { return x.call("tanh", math.Tanh) }
func (x Scalar) Ln() Scalar    { return x.call("ln", math.Log) }
func (x Scalar) Log10() Scalar { return x.call("log10", math.Log10) }
func (x Scalar) Cbrt() Scalar  { return x.call("cbrt", math.Cbrt) }
func (x Scalar) Floor() Scalar { return x.call("floor", math.Floor) }
func (x Scalar) Ceil() Scalar  { return x.call("ceil", math.Ceil) }
func (x Scalar) Round() Scalar { return x.call("round", math.Round) }

// Equal returns whether x and y are both numbers that compare equal, or both
// symbolic with identical text. NaN is not equal to itself.
func (x Scalar) Equal(y Scalar) bool {
	if x.sym != y.sym {
		return false
	}
	if x.sym {
		return x.text == y.text
	}
	return x.num == y.num
}

// IsClose is IsCloseEps with DefaultEpsilon.
func (x Scalar) IsClose(y Scalar) bool {
	return x.IsCloseEps(y, DefaultEpsilon)
}

// IsCloseEps returns whether x and y are numbers within eps of each other, or
// both symbolic with identical text. A number is never close to a symbolic
// value.
func (x Scalar) IsCloseEps(y Scalar, eps float64) bool {
	switch {
	case !x.sym && !y.sym:
		return x.num == y.num || math.Abs(x.num-y.num) <= eps
	case x.sym && y.sym:
		return x.text == y.text
	default:
		return false
	}
}
