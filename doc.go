// Package calculator implements real and complex values that are either
// concrete float64 numbers or symbolic expressions, and a calculator that
// evaluates symbolic expressions to numbers.
//
// A Scalar holds a number or the text of an expression. Arithmetic on two
// numbers computes a number; arithmetic involving any symbolic operand
// produces the text of the operation, so Sym("x").Add(Num(1)) is the Scalar
// "(x + 1e0)". A Complex is a pair of Scalars.
//
// Expressions use the usual infix syntax. From most to least binding:
// parentheses and function calls, unary - and +, ^ (right-associative), * and
// / (left-associative), + and - (left-associative). Note that unary minus
// binds more tightly than ^, so "-2^2" is 4. Names that are not functions are
// variables, looked up when the expression is evaluated.
//
// A Calculator keeps variable bindings between evaluations:
//
//	c := calculator.New()
//	c.Set("x", 2)
//	v, err := c.Resolve(calculator.Sym("x + 1")) // 3, nil
//
// Scalars and Complexes are immutable and safe to share between goroutines.
// Contexts and Calculators are not.
package calculator
