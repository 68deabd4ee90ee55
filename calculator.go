package calculator

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Calculator evaluates expressions against a set of variable bindings that
// persist between calls. It is not safe for concurrent use; give each
// goroutine its own Calculator or serialize access.
type Calculator struct {
	ctx *Context
}

// New creates a calculator. The options set initial variables.
func New(opts ...ContextOption) *Calculator {
	return &Calculator{ctx: NewContext(opts...)}
}

// Set binds a variable. The name is not validated; a name that is not an
// identifier can never be referenced by an expression.
func (c *Calculator) Set(name string, value float64) {
	c.ctx.Set(name, value)
}

// Get returns the value of a variable and whether it is bound.
func (c *Calculator) Get(name string) (float64, bool) {
	return c.ctx.Lookup(name)
}

// Vars returns the names of all bound variables in sorted order.
func (c *Calculator) Vars() []string {
	return c.ctx.Names()
}

// Eval evaluates a parsed expression against the calculator's variables. If
// the expression is an assignment, the variable is bound.
func (c *Calculator) Eval(e *Expr) (float64, error) {
	return c.ctx.Eval(e)
}

// stmtopts ends each statement at a semicolon.
var stmtopts = StopOn(';')

// Parse evaluates text, which is one or more statements separated by
// semicolons. Each statement is an expression or an assignment "name = expr"
// that binds name for the following statements and later calls. The result
// is the value of the last statement. Evaluation stops at the first error;
// assignments made before it remain.
func (c *Calculator) Parse(text string) (float64, error) {
	src := strings.NewReader(text)
	var r float64
	for {
		col := utf8.RuneCountInString(text[:len(text)-src.Len()]) + 1
		a, err := Parse(src, stmtopts, colopt(col))
		if err != nil {
			return 0, err
		}
		r, err = c.ctx.Eval(a)
		if err != nil {
			return 0, err
		}
		if !more(src) {
			return r, nil
		}
	}
}

// more skips whitespace in src and reports whether anything follows.
func more(src io.RuneScanner) bool {
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			return false
		}
		if !unicode.IsSpace(r) {
			src.UnreadRune()
			return true
		}
	}
}

// Resolve returns a concrete value for x. Numbers and numeric Scalars are
// returned directly. Strings and symbolic Scalars are evaluated with Parse.
// Any other input gives an error wrapping ErrNotConvertible.
func (c *Calculator) Resolve(x any) (float64, error) {
	if s, ok := x.(string); ok {
		return c.Parse(s)
	}
	v, err := ToScalar(x)
	if err != nil {
		return 0, err
	}
	if !v.sym {
		return v.num, nil
	}
	return c.Parse(v.text)
}

// ResolveComplex resolves both parts of anything ToComplex accepts.
func (c *Calculator) ResolveComplex(x any) (complex128, error) {
	z, err := ToComplex(x)
	if err != nil {
		return 0, err
	}
	re, err := c.Resolve(z.Re)
	if err != nil {
		return 0, err
	}
	im, err := c.Resolve(z.Im)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// Calc evaluates text with a new Calculator that has no variables.
func Calc(text string) (float64, error) {
	return New().Parse(text)
}
