package calculator

import (
	"math"
)

// Func is a function from reals to reals.
type Func interface {
	// Call evaluates the function. The function arguments are passed in
	// invoc, which has a length for which CanCall returned true. The
	// function may but generally should not look up variables. Call may
	// modify the elements of invoc.
	Call(ctx *Context, invoc []float64) (float64, error)

	// CanCall returns whether the function can be called with n arguments.
	// A function for which CanCall(0) is true may also be written without
	// an argument list, like a constant.
	CanCall(n int) bool
}

var globalfuncs = map[string]Func{
	"sqrt":   Monadic(math.Sqrt),
	"exp":    Monadic(math.Exp),
	"sin":    Monadic(math.Sin),
	"cos":    Monadic(math.Cos),
	"acos":   Monadic(math.Acos),
	"abs":    Monadic(math.Abs),
	"sign":   Monadic(signum),
	"signum": Monadic(signum),
	"atan2":  Dyadic(math.Atan2),

	"tan":   Monadic(math.Tan),
	"asin":  Monadic(math.Asin),
	"atan":  Monadic(math.Atan),
	"sinh":  Monadic(math.Sinh),
	"cosh":  Monadic(math.Cosh),
	"tanh":  Monadic(math.Tanh),
	"ln":    Monadic(math.Log),
	"log10": Monadic(math.Log10),
	"log2":  Monadic(math.Log2),
	"exp2":  Monadic(math.Exp2),
	"cbrt":  Monadic(math.Cbrt),
	"floor": Monadic(math.Floor),
	"ceil":  Monadic(math.Ceil),
	"round": Monadic(math.Round),
	"hypot": Dyadic(math.Hypot),
	"pow":   Dyadic(math.Pow),
	"max":   Dyadic(math.Max),
	"min":   Dyadic(math.Min),

	// constants
	"pi": Niladic(func() float64 { return math.Pi }),
}

// signum is 1 for positive numbers and +0, -1 for negative numbers and -0,
// and NaN for NaN.
func signum(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	return math.Copysign(1, x)
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(ctx *Context, invoc []float64) (float64, error) {
	return m.f(invoc[0]), nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. Arguments outside f's
// domain should produce NaN, as the functions in package math do.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(x, y float64) float64
}

func (d dyadic) Call(ctx *Context, invoc []float64) (float64, error) {
	return d.f(invoc[0], invoc[1]), nil
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func.
func Dyadic(f func(x, y float64) float64) Func {
	return dyadic{f}
}

type niladic struct {
	f func() float64
}

func (n niladic) Call(ctx *Context, invoc []float64) (float64, error) {
	return n.f(), nil
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func.
func Niladic(f func() float64) Func {
	return niladic{f}
}
