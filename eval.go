package calculator

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It holds the variable
// bindings that expressions are evaluated against. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []float64
	names map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If the expression is
// an assignment statement, the result is also bound to the assigned name. If
// an error occurs, e.g. a missing variable definition or a division by zero,
// then the context's variables are unchanged.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	if len(ctx.stack) != 0 {
		panic("calculator: Eval during Eval")
	}
	err := e.n.eval(ctx)
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return 0, err
	}
	if len(ctx.stack) != 1 {
		panic("calculator: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
	r := ctx.pop()
	if e.assign != "" {
		ctx.Set(e.assign, r)
	}
	return r, nil
}

// EvalString parses src as a single expression or assignment statement and
// evaluates it in ctx.
func (ctx *Context) EvalString(src string) (float64, error) {
	a, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return ctx.Eval(a)
}

// Resolve returns a concrete value for x. Numbers and numeric Scalars are
// returned unchanged. Strings and symbolic Scalars are parsed as expressions
// and evaluated with ctx; assignments are rejected, so Resolve never changes
// the context's variables. Any other input gives an error wrapping
// ErrNotConvertible.
func (ctx *Context) Resolve(x any) (float64, error) {
	v, err := ToScalar(x)
	if err != nil {
		return 0, err
	}
	if !v.sym {
		return v.num, nil
	}
	a, err := ParseString(v.text, NoAssign())
	if err != nil {
		return 0, err
	}
	return ctx.Eval(a)
}

// Set sets the value of a variable. Returns ctx for chaining. Calling Set
// while the context is being used to evaluate an expression panics.
func (ctx *Context) Set(name string, value float64) *Context {
	if len(ctx.stack) > 0 {
		panic("calculator: Set on in-use context")
	}
	if ctx.names == nil {
		ctx.names = make(map[string]float64)
	}
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether it is bound.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Names returns the names of all bound variables in sorted order.
func (ctx *Context) Names() []string {
	names := make([]string, 0, len(ctx.names))
	for k := range ctx.names {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Clone creates a copy of a context and applies options to it. The returned
// context is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]float64, 0, cap(ctx.stack)),
		names: make(map[string]float64, len(ctx.names)),
	}
	for name, val := range ctx.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("calculator: unknown option type")
		}
	}
	return &n
}

func (ctx *Context) push(v float64) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() float64 {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *float64 {
	return &ctx.stack[len(ctx.stack)-1]
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push(n.num)
	case nodeName:
		v, ok := ctx.names[n.name]
		if !ok {
			return &NameError{Name: n.name}
		}
		ctx.push(v)
	case nodeCall:
		k := len(ctx.stack)
		for l := n.right; l != nil; l = l.right {
			if err := l.left.eval(ctx); err != nil {
				return err
			}
		}
		invoc := ctx.stack[k:len(ctx.stack):len(ctx.stack)]
		r, err := n.fn.Call(ctx, invoc)
		if err != nil {
			return &EvalError{Col: n.pos, Op: n.name, Err: err}
		}
		ctx.stack = ctx.stack[:k]
		ctx.push(r)
	case nodeArg:
		panic("calculator: eval on nodeArg")
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		l := ctx.top()
		*l = -*l
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		switch n.kind {
		case nodeAdd:
			*l += r
		case nodeSub:
			*l -= r
		case nodeMul:
			*l *= r
		case nodeDiv:
			// Guard against division by zero rather than producing inf or
			// NaN.
			if r == 0 {
				return &EvalError{Col: n.pos, Op: "/", Err: ErrDivisionByZero}
			}
			*l /= r
		case nodePow:
			*l = math.Pow(*l, r)
		}
	case nodeNop:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
	default:
		panic("calculator: invalid AST node " + n.kind.String())
	}
	return nil
}

// Eval is a shortcut to parse an expression and return its result using the
// default functions.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return ctx.Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// Resolve is a shortcut to resolve a value with a new context.
func Resolve(x any, opts ...ContextOption) (float64, error) {
	return NewContext(opts...).Resolve(x)
}
