package calculator

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two ASTs are equal. If any node is nodeNone, it is returned.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	switch n.kind {
	case nodeNum:
		if n.name != m.name {
			return n, m
		}
	case nodeName:
		if n.name != m.name {
			return n, m
		}
	case nodeCall:
		if n.name != m.name {
			return n, m
		}
		if d, e := n.right.diff(m.right); d != nil || e != nil {
			return d, e
		}
	case nodeArg, nodeNeg, nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
		if d, e := n.right.diff(m.right); d != nil || e != nil {
			return d, e
		}
	case nodeNop:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
	default:
		panic(fmt.Errorf("invalid node kind: n=%+v m=%+v", n, m))
	}
	return nil, nil
}

// haskind checks whether a parse tree contains a node of the given type.
func (n *node) haskind(k nodeKind) bool {
	if n == nil {
		return false
	}
	if n.kind == k {
		return true
	}
	if n.left.haskind(k) {
		return true
	}
	return n.right.haskind(k)
}

type mockfn struct {
	can []int
}

func mockFunc(n ...int) Func {
	return mockfn{can: n}
}

func (f mockfn) Call(ctx *Context, invoc []float64) (float64, error) {
	return 0, nil
}

func (f mockfn) CanCall(n int) bool {
	for _, v := range f.can {
		if v == n {
			return true
		}
	}
	return false
}

var testfns = map[string]Func{
	"zero":    mockFunc(0),
	"one":     mockFunc(1),
	"zeroone": mockFunc(0, 1),
	"five":    mockFunc(5),
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		b := binop(string(r))
		u := unop(string(r))
		if b.op == nodeNone && u.op == nodeNone {
			t.Errorf("no operator for %c", r)
		}
	}
}

func TestUnaryBindsTighterThanPow(t *testing.T) {
	for _, op := range []string{"+", "-"} {
		if u, p := unop(op), binop("^"); !u.moreBinding(p) {
			t.Errorf("unary %s has prec %d but ^ has prec %d", op, u.prec, p.prec)
		}
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(x)", "x"},
		{"multi", "((((x))))", "x"},

		{"plus", "+x", "(+(x))"},
		{"neg", "-x", "(-(x))"},
		{"negnum", "-1", "(-(1))"},
		{"add", "x+y", "((x)+(y))"},
		{"sub", "x-y", "((x)-(y))"},
		{"mul", "x*y", "((x)*(y))"},
		{"div", "x/y", "((x)/(y))"},
		{"pow", "x^y", "((x)^(y))"},
		{"altmul", "x×y", "x*y"},
		{"altdiv", "x÷y", "x/y"},

		{"call0", "zero()", "zero"},
		{"call0-mul", "zero()*x", "zero*x"},
		{"call01", "zeroone(x)", "zeroone((x))"},
		{"call1", "one(x+y)", "one(((x)+(y)))"},
		{"call1-add", "one(x) + y", "(one(x)) + y"},
		{"call1-pow", "one(x)^y", "(one(x))^y"},
		{"call5", "five(a, b, c, d, e)", "five((a), (b), (c), (d), (e))"},
		{"call-nested", "one(one(x))", "one((one((x))))"},

		{"add4", "w+x+y+z", "((w+x)+y)+z"},
		{"sub4", "w-x-y-z", "((w-x)-y)-z"},
		{"mul4", "w*x*y*z", "((w*x)*y)*z"},
		{"div4", "w/x/y/z", "((w/x)/y)/z"},
		{"pow4", "w^x^y^z", "w^(x^(y^z))"},

		{"negpow", "-x^n", "(-x)^n"},
		{"negnumpow", "-2^2", "(-2)^2"},
		{"desc", "w^x*y+z", "((w^x)*y)+z"},
		{"asc", "w+x*y^z", "w+(x*(y^z))"},
		{"descasc", "w^x*y+z+a*b^c", "(((w^x)*y)+z)+a*(b^c)"},
		{"ascdesc", "w+x*y^z^a*b+c", "w+((x*(y^(z^a)))*b)+c"},
		{"negneg", "--x", "-(-x)"},
		{"negsub", "-x-x", "(-x)-x"},
		{"mulneg", "x*-y", "x*(-y)"},
		{"powneg", "x^-1", "x^(-1)"},
		{"pownegpow", "x^-y^-z", "x^((-y)^(-z))"},
		{"pownegneg", "x^--y", "x^(-(-y))"},
		{"negcall", "-one(x)", "-(one(x))"},
		{"mixed", "x-y*z/w", "x-((y*z)/w)"},
	}
	preset := ParsingPreset(DisableDefaultFuncs(), ParseFuncs(testfns))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.a), preset)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := Parse(strings.NewReader(c.b), preset)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			d, e := a.n.diff(b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a.n, d, c.b, b.n, e)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "call1-paren",
			src:  "one(x)",
			n: &node{
				kind: nodeCall,
				name: "one",
				right: &node{
					kind: nodeArg,
					left: &node{
						kind: nodeName,
						name: "x",
					},
				},
			},
		},
		{
			name: "call0-bare",
			src:  "zero",
			n: &node{
				kind: nodeCall,
				name: "zero",
			},
		},
		{
			name: "call5",
			src:  "five(a, b, c, d, e)",
			n: &node{
				kind: nodeCall,
				name: "five",
				right: &node{
					kind: nodeArg,
					left: &node{kind: nodeName, name: "a"},
					right: &node{
						kind: nodeArg,
						left: &node{kind: nodeName, name: "b"},
						right: &node{
							kind: nodeArg,
							left: &node{kind: nodeName, name: "c"},
							right: &node{
								kind: nodeArg,
								left: &node{kind: nodeName, name: "d"},
								right: &node{
									kind: nodeArg,
									left: &node{kind: nodeName, name: "e"},
								},
							},
						},
					},
				},
			},
		},
		{
			name: "inf1",
			src:  "inf",
			n:    &node{kind: nodeNum, name: "inf"},
		},
		{
			name: "inf2",
			src:  "Inf",
			n:    &node{kind: nodeNum, name: "Inf"},
		},
		{
			name: "nan",
			src:  "NaN",
			n:    &node{kind: nodeNum, name: "NaN"},
		},
		{
			name: "assign",
			src:  "y = x + 1",
			n: &node{
				kind:  nodeAdd,
				left:  &node{kind: nodeName, name: "x"},
				right: &node{kind: nodeNum, name: "1"},
			},
		},
	}
	preset := ParsingPreset(DisableDefaultFuncs(), ParseFuncs(testfns))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.src), preset)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d, e := a.n.diff(c.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\twant %v which has %v\n\tgot  %v which has %v from %q", c.n, e, a.n, d, c.src)
			}
		})
	}
}

func TestParseNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"1.5", 1.5},
		{".25", 0.25},
		{"1e3", 1000},
		{"2.5e-1", 0.25},
		{"1e999", math.Inf(1)},
		{"1e-999", 0},
	}
	for _, c := range cases {
		a, err := ParseString(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if a.n.kind != nodeNum || a.n.num != c.want {
			t.Errorf("%q: want number %g, got %v with value %g", c.src, c.want, a.n, a.n.num)
		}
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"paren", "(x)"},
		{"plus", "+x"},
		{"neg", "-x"},
		{"negnum", "-1"},
		{"add", "x+y"},
		{"sub", "x-y"},
		{"mul", "x*y"},
		{"div", "x/y"},
		{"pow", "x^y"},
		{"altmul", "x×y"},
		{"altdiv", "x÷y"},

		{"call0", "zero()"},
		{"call0-bare", "zero * x"},
		{"call1", "one(x)"},
		{"call1-add", "one(x) + y"},
		{"call5", "five(a, b, c, d, e)"},

		{"add4", "w+x+y+z"},
		{"sub4", "w-x-y-z"},
		{"mul4", "w*x*y*z"},
		{"div4", "w/x/y/z"},
		{"pow4", "w^x^y^z"},

		{"negpow", "-1^n"},
		{"desc", "w^x*y+z"},
		{"asc", "w+x*y^z"},
		{"descasc", "w^x*y+z+a*b^c"},
		{"ascdesc", "w+x*y^z^a*b+c"},
		{"negneg", "--x"},
		{"negsub", "-x-x"},
		{"powneg", "x^-1"},
		{"pownegpow", "x^-y^-z"},
		{"pownegneg", "x^--y"},
		{"nonfinite", "inf - NaN"},
		{"assign", "y = x^2 + 1"},
	}
	preset := ParsingPreset(DisableDefaultFuncs(), ParseFuncs(testfns))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.src), preset)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			s := a.String()
			b, err := Parse(strings.NewReader(s), preset)
			if err != nil {
				t.Fatalf("%q -> %q failed to parse: %v", c.src, s, err)
			}
			d, e := a.n.diff(b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.src, a.n, d, s, b.n, e)
			}
			if a.Assigns() != b.Assigns() {
				t.Errorf("%q assigns %q but %q assigns %q", c.src, a.Assigns(), s, b.Assigns())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		res  []string
		excl []string
	}{
		{"empty", "", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`}, []string{`(?i)\bend\b`}},
		{"space", "   ", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`}, nil},
		{"emptyparen", "()", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`, `\)`}, nil},
		{"emptyoperand", "x*", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`, `(?i)\bend\b`}, nil},
		{"emptyunary", "x*-", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`, `(?i)\bend\b`}, nil},
		{"left", "(x", new(BracketError), []string{`(?i)\bbracket\b`, `\(`}, nil},
		{"right", "x)", new(BracketError), []string{`(?i)\bbracket\b`, `\)`}, nil},
		{"left-add", "(1 + 2", new(BracketError), []string{`(?i)\bbracket\b`, `\(`}, nil},
		{"nonunary", "*x", new(OperatorError), []string{`(?i)\bunary\b`, `(?i)\bop`, `\*`}, nil},
		{"nonunary-pow", "x + ^y", new(OperatorError), []string{`(?i)\bunary\b`, `\^`}, nil},
		{"sep", "x, y", new(SeparatorError), []string{`","`}, nil},
		{"semi", "x; y", new(SeparatorError), []string{`";"`}, nil},
		{"sepbrackets", "(x, y)", new(SeparatorError), []string{`","`}, nil},
		{"terms", "x y", new(TokenError), []string{`"y"`}, nil},
		{"numterms", "2 x", new(TokenError), []string{`"x"`}, nil},
		{"parenterms", "x(y)", new(TokenError), []string{`"\("`}, nil},
		{"call0-terms", "zero x", new(TokenError), []string{`"x"`}, nil},
		{"call1-0", "one()", new(CallError), []string{`(?i)\bcall\b`, `\bone\b`, `\b0\b`}, nil},
		{"call1-eof", "one", new(CallError), []string{`(?i)\bmissing\b`, `\bone\b`}, nil},
		{"call1-bare", "one x", new(CallError), []string{`(?i)\bmissing\b`, `\bone\b`}, nil},
		{"call1-pareneof", "one(", new(BracketError), []string{`(?i)\bbracket\b`, `\(`}, nil},
		{"call1-2", "one(x, y)", new(CallError), []string{`(?i)\bcall\b`, `\bone\b`, `\b2\b`}, nil},
		{"call1-empty", "one(, x)", new(SeparatorError), []string{`","`}, nil},
		{"call1-empty2", "one(x,)", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`, `\)`}, nil},
		{"call1-semi", "one(x; y)", new(SeparatorError), []string{`";"`}, nil},
		{"call5-4", "five(a, b, c, d)", new(CallError), []string{`(?i)\bcall\b`, `\bfive\b`, `\b4\b`}, nil},
		{"call5-empty", "five(a,,,,b)", new(SeparatorError), []string{`","`}, nil},
		{"lexer", "2^one(-$)", new(LexError), []string{`\$`}, nil},
		{"square", "[x]", new(LexError), []string{`\[`}, nil},
		{"assign-expr", "x + 1 = 2", new(AssignError), []string{`(?i)\bassign\b`}, nil},
		{"assign-twice", "x = y = 1", new(AssignError), []string{`(?i)\bassign\b`}, nil},
		{"assign-operand", "1 + = 2", new(AssignError), []string{`(?i)\bassign\b`}, nil},
		{"assign-arg", "one(x = 1)", new(AssignError), []string{`(?i)\bassign\b`}, nil},
		{"assign-lone", "=", new(AssignError), []string{`(?i)\bassign\b`}, nil},
		{"assign-empty", "x =", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`}, nil},

		// Cases identified with fuzzing.
		{"op-paren", "(b*)", new(EmptyExpressionError), []string{`\)`}, nil},
		{"haskell", "(+)", new(EmptyExpressionError), []string{`\)`}, nil},
	}
	preset := ParsingPreset(DisableDefaultFuncs(), ParseFuncs(testfns))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.src), preset)
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a.n)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error %v from %q does not wrap ErrSyntax", err, c.src)
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
			for _, re := range c.excl {
				if regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q matches %s", msg, re)
				}
			}
		})
	}
}

func TestParseErrorPos(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		opts []ParseOption
	}{
		{"unary", "1 + * 2", 5, nil},
		{"unclosed", "(1 + 2", 7, nil},
		{"unopened", "1 + 2)", 6, nil},
		{"terms", "x y", 3, nil},
		{"sep", "1, 2", 2, nil},
		{"lex", "1 + $", 5, nil},
		{"assign", "x + 1 = 2", 7, nil},
		{"offset", "x y", 9, []ParseOption{colopt(7)}},
		{"offset-lex", "$", 4, []ParseOption{colopt(4)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseString(c.src, c.opts...)
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: want InputError, got %#v", c.src, err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q: want error at %d, got %d (%v)", c.src, c.col, ie.Pos(), err)
			}
		})
	}
}

func TestParseVars(t *testing.T) {
	cases := []struct {
		src    string
		vars   []string
		assign string
	}{
		{"1", nil, ""},
		{"x", []string{"x"}, ""},
		{"b + a * b", []string{"a", "b"}, ""},
		{"sqrt(z) + pi", []string{"z"}, ""},
		{"y = 2", nil, "y"},
		{"y = x + 1", []string{"x"}, "y"},
		{"x = x + 1", []string{"x"}, "x"},
	}
	for _, c := range cases {
		a, err := ParseString(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if v := a.Vars(); !reflect.DeepEqual(v, c.vars) {
			t.Errorf("%q: want vars %q, got %q", c.src, c.vars, v)
		}
		if a.Assigns() != c.assign {
			t.Errorf("%q: want assignment to %q, got %q", c.src, c.assign, a.Assigns())
		}
	}
}

func TestDisableDefaultFuncs(t *testing.T) {
	for name := range globalfuncs {
		t.Run(name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(name), DisableDefaultFuncs())
			if err != nil {
				t.Fatalf("%q failed to parse: %v", name, err)
			}
			if a.n.haskind(nodeCall) {
				t.Errorf("call expression in %v", a.n)
			}
			if v := a.Vars(); len(v) != 1 || v[0] != name {
				t.Errorf("want %q as the only variable, got %q", name, v)
			}
		})
	}
}

func TestParseFuncOverride(t *testing.T) {
	a, err := ParseString("sqrt + 1", ParseFunc("sqrt", nil))
	if err != nil {
		t.Fatalf("failed to parse with sqrt disabled: %v", err)
	}
	if a.n.haskind(nodeCall) {
		t.Errorf("call expression in %v", a.n)
	}
	a, err = ParseString("twice(3)", ParseFunc("twice", Monadic(func(x float64) float64 { return 2 * x })))
	if err != nil {
		t.Fatalf("failed to parse with twice: %v", err)
	}
	if !a.n.haskind(nodeCall) {
		t.Errorf("no call expression in %v", a.n)
	}
	// Defaults remain alongside the new function.
	if _, err := ParseString("twice(sqrt(4))", ParseFunc("twice", Monadic(func(x float64) float64 { return 2 * x }))); err != nil {
		t.Errorf("failed to parse with twice and defaults: %v", err)
	}
}

func TestStopOn(t *testing.T) {
	cases := []struct {
		name string
		src  string
		stop string
		good [][]nodeKind
		bad  [][]nodeKind
		errs []error
	}{
		{"newline", "x\nx", "\n", [][]nodeKind{{}, {}}, [][]nodeKind{{nodeMul}, {nodeMul}}, nil},
		{"comma", "x,x", ",", [][]nodeKind{{}, {}}, [][]nodeKind{{nodeMul, nodeCall}, {nodeMul, nodeCall}}, nil},
		{"semi", "x;x", ";", [][]nodeKind{{}, {}}, [][]nodeKind{{nodeMul, nodeCall}, {nodeMul, nodeCall}}, nil},
		{"num", "1\n1", "\n", [][]nodeKind{{}, {}}, [][]nodeKind{{nodeMul}, {nodeMul}}, nil},
		{"multinl", "x\n\nx", "\n", [][]nodeKind{{}, {}}, [][]nodeKind{{nodeMul}, {nodeMul}}, nil},
		{"opnl", "x +\ny", "\n", [][]nodeKind{{nodeAdd}}, [][]nodeKind{{}}, nil},
		{"call0", "zero\nx", "\n", [][]nodeKind{{nodeCall}, {nodeName}}, [][]nodeKind{{nodeName}, {nodeCall}}, nil},
		{"call1-err", "one\nx", "\n", [][]nodeKind{{}, {nodeName}}, [][]nodeKind{{}, {}}, []error{new(CallError)}},
		{"call1-brackets", "one(\nx)", "\n", [][]nodeKind{{nodeArg}}, [][]nodeKind{{}}, nil},
		{"call5-semi", "five(a, b, c, d, e); x", ";", [][]nodeKind{{nodeCall}, {nodeName}}, [][]nodeKind{{}, {nodeCall}}, nil},
		{"assign", "a = 1; b = a", ";", [][]nodeKind{{nodeNum}, {nodeName}}, [][]nodeKind{{nodeName}, {nodeNum}}, nil},
		{"start,", ",", ",", [][]nodeKind{{}, {}}, [][]nodeKind{{}, {}}, []error{new(EmptyExpressionError), new(EmptyExpressionError)}},
		{"start;", ";", ";", [][]nodeKind{{}, {}}, [][]nodeKind{{}, {}}, []error{new(EmptyExpressionError), new(EmptyExpressionError)}},
	}
	preset := ParsingPreset(DisableDefaultFuncs(), ParseFuncs(testfns))
	for _, c := range cases {
		if len(c.good) != len(c.bad) {
			t.Fatalf("case %q has different sizes of good and bad: %v vs %v", c.name, c.good, c.bad)
		}
		t.Run(c.name, func(t *testing.T) {
			src := strings.NewReader(c.src)
			for i := range c.good {
				a, err := Parse(src, preset, StopOn([]rune(c.stop)...))
				if err != nil {
					switch {
					case i >= len(c.errs), c.errs[i] == nil:
						t.Errorf("%q iter %d didn't parse: %v", c.src, i, err)
					case reflect.TypeOf(err) != reflect.TypeOf(c.errs[i]):
						t.Errorf("%q iter %d gave wrong error: want %T, got %#v", c.src, i, c.errs[i], err)
					}
					continue
				}
				for _, good := range c.good[i] {
					if !a.n.haskind(good) {
						t.Errorf("%q iter %d didn't have %v", c.src, i, good)
					}
				}
				for _, bad := range c.bad[i] {
					if a.n.haskind(bad) {
						t.Errorf("%q iter %d had %v", c.src, i, bad)
					}
				}
			}
			a, err := Parse(src, preset)
			if _, ok := err.(*EmptyExpressionError); !ok {
				t.Errorf("%q after %d iters parsed with error %#v and parse tree %v", c.src, len(c.good), err, a)
			}
		})
	}
}

func TestStopOnPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StopOn('x') did not panic")
		}
	}()
	StopOn('x')
}

func TestNoAssign(t *testing.T) {
	_, err := ParseString("x = 1", NoAssign())
	var ae *AssignError
	if !errors.As(err, &ae) {
		t.Fatalf("want *AssignError, got %#v", err)
	}
	if !ae.Forbidden || ae.Pos() != 3 {
		t.Errorf("want forbidden assignment at 3, got %#v", ae)
	}
	// A misplaced = is still reported as such.
	_, err = ParseString("1 = 1", NoAssign())
	if !errors.As(err, &ae) || ae.Forbidden {
		t.Errorf("want misplaced assignment, got %#v", err)
	}
	if _, err := ParseString("x + 1", NoAssign()); err != nil {
		t.Errorf("expression failed to parse: %v", err)
	}
	// Presets carry the option.
	preset := ParsingPreset(NoAssign(), StopOn(';'))
	if _, err := ParseString("y = 2;", preset); !errors.As(err, &ae) || !ae.Forbidden {
		t.Errorf("want forbidden assignment through preset, got %#v", err)
	}
}

func TestParsingPresetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("preset after StopOn did not panic")
		}
	}()
	ParseString("x", StopOn(';'), ParsingPreset(ParseFunc("f", nil)))
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"descasc", "w^x*y+z+a*b^c"},
		{"descasc-parens", "(((w^x)*y)+z)+a*(b^c)"},
		{"ascdesc", "w+x*y^z^a*b+c"},
		{"ascdesc-parens", "w+((x*(y^(z^a)))*b)+c"},
		{"descasc-nums", "1^1.1*1.1e1+1.1e-1+.1*inf^inf"},
		{"ascdesc-nums", "1+1.1*1.1e1^1.1e-1^.1*inf+inf"},
		{"call0", "zero()"},
		{"call1", "one(x)"},
		{"call5", "five(a, b, c, d, e)"},
		{"assign", "y = x^2 + 1"},
	}
	preset := ParsingPreset(DisableDefaultFuncs(), ParseFuncs(testfns))
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			var src strings.Reader
			for i := 0; i < b.N; i++ {
				src.Reset(c.src)
				Parse(&src, preset)
			}
		})
	}
}
