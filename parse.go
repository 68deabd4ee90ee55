package calculator

import (
	"io"
	"strconv"
	"strings"
)

// Stmt = name '=' Expr | Expr
// Expr = num | name | Call | Neg | Plus | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Call = constname | funcname '(' [ Expr { ',' Expr } ] ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Pow = Expr '^' Expr

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names used in the expression.
	names []string
	// assign is the variable an assignment statement binds, or empty.
	assign string
}

// Parse parses an expression so it can be evaluated with a context. The given
// options are applied in order. The input may be an assignment statement,
// "name = expr"; evaluating it binds name in the context.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	p := parsectx{
		names: make(map[string]bool),
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	p.withDefaults()
	scan := lex(src)
	if p.col > 0 {
		scan.rune = p.col
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	var assign string
	tok := scan.must()
	if n != nil && tok.kind == tokenAssign {
		if n.kind != nodeName {
			return nil, &AssignError{Col: tok.pos}
		}
		if p.noassign {
			return nil, &AssignError{Col: tok.pos, Forbidden: true}
		}
		assign = n.name
		// The target is only a variable use if the value mentions it.
		delete(p.names, assign)
		n, err = parseterm(scan, &p, exprprec)
		if err != nil {
			return nil, err
		}
		tok = scan.must()
	}
	switch tok.kind {
	case tokenEOF:
	case tokenSep:
		if !p.stop.sep(tok.text) {
			return nil, itShouldNotHaveEndedThisWay(tok, false)
		}
	default:
		return nil, itShouldNotHaveEndedThisWay(tok, false)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
	ex := Expr{
		n:      n,
		names:  make([]string, 0, len(p.names)),
		assign: assign,
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.stop.ws)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenIdent, tokenOpen:
			// A term can only follow an operator.
			return nil, &TokenError{Col: tok.pos, Text: tok.text}
		case tokenOp:
			// Binary operator.
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseoperand(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs, pos: tok.pos}
		case tokenClose, tokenSep, tokenAssign, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
}

// parseoperand parses the right-hand side of an operator, which must not be
// empty.
func parseoperand(scan *lexer, p *parsectx, prec operator) (*node, error) {
	rhs, err := parseterm(scan, p, prec)
	if err != nil {
		return nil, err
	}
	if rhs == nil {
		end := scan.must()
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return rhs, nil
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx) (*node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// The lexer only produces valid syntax, so the only possible
			// error is range. ParseFloat has already given ±Inf or ±0.
			if ne, _ := err.(*strconv.NumError); ne == nil || ne.Err != strconv.ErrRange {
				panic("calculator: invalid number: " + tok.text + " (" + err.Error() + ")")
			}
		}
		n = &node{kind: nodeNum, name: tok.text, num: v, pos: tok.pos}
	case tokenIdent:
		fn := p.funcs[tok.text]
		if fn == nil {
			p.names[tok.text] = true
			n = &node{kind: nodeName, name: tok.text, pos: tok.pos}
			break
		}
		args, err := parsecall(scan, p, fn, tok.text)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeCall, name: tok.text, fn: fn, right: args, pos: tok.pos}
	case tokenOp:
		// unary operator
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		rhs, err := parseoperand(scan, p, prec)
		if err != nil {
			return nil, err
		}
		n = &node{kind: prec.op, left: rhs, pos: tok.pos}
	case tokenOpen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end, true)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// Let the caller decide what an empty group means.
		scan.push(tok)
		return nil, nil
	case tokenSep:
		if tok.text != "," && tok.text != ";" {
			panic("calculator: invalid separator " + strconv.Quote(tok.text))
		}
		if p.stop.sep(tok.text) {
			scan.push(tok)
			return nil, nil
		}
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenAssign:
		return nil, &AssignError{Col: tok.pos}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("calculator: unknown token: " + tok.String())
	}
	return n, nil
}

// parsecall parses the arguments to a call of a given Func. The result is the
// first argument node, or nil for a call with no arguments.
func parsecall(scan *lexer, p *parsectx, fn Func, name string) (*node, error) {
	// We respect whitespace here so that pi\nx doesn't string
	// together expressions.
	tok, err := scan.next(p.stop.ws)
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOpen {
		// Only constants may appear without an argument list.
		if !fn.CanCall(0) {
			return nil, &CallError{Col: tok.pos, Func: name, Len: -1}
		}
		scan.push(tok)
		return nil, nil
	}
	n, len, err := parsearglist(scan, p)
	if err != nil {
		return nil, err
	}
	end := scan.must()
	if end.kind != tokenClose {
		panic("calculator: parsearglist ended on " + end.String() + " instead of close bracket")
	}
	if !fn.CanCall(len) {
		return nil, &CallError{Col: tok.pos, Func: name, Len: len}
	}
	return n, nil
}

// parsearglist parses a bracketed list of zero or more args.
func parsearglist(scan *lexer, p *parsectx) (*node, int, error) {
	var n node
	l := &n
	len := 0
	for {
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			// As a special case, reporting mismatched brackets is more helpful
			// than empty expression, if that's what we'd do here.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: "("}
			}
			return nil, 0, err
		}
		end := scan.must()
		switch end.kind {
		case tokenClose:
			// Caller checks that brackets match.
			scan.push(end)
			if rhs == nil {
				// No expression parsed.
				// func() is allowed, but func(a,) isn't.
				if len != 0 {
					return nil, 0, &EmptyExpressionError{Col: end.pos, End: end.text}
				}
				return nil, 0, nil
			}
			l.right = &node{kind: nodeArg, left: rhs}
			return n.right, len + 1, nil
		case tokenSep:
			if end.text != "," {
				return nil, 0, &SeparatorError{Col: end.pos, Sep: end.text}
			}
			if rhs == nil {
				return nil, 0, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			len++
			l.right = &node{kind: nodeArg, left: rhs}
			l = l.right
		case tokenEOF:
			return nil, 0, &BracketError{Col: end.pos, Left: "(", Right: ""}
		case tokenAssign:
			return nil, 0, &AssignError{Col: end.pos}
		default:
			panic("calculator: parseexpr ended on non-end token " + end.String())
		}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open is whether the subexpression is
// inside an open bracket.
func itShouldNotHaveEndedThisWay(tok lexToken, open bool) error {
	left := ""
	if open {
		left = "("
	}
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: left, Right: ""}
	case tokenClose:
		return &BracketError{Col: tok.pos, Left: left, Right: tok.text}
	case tokenSep:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenAssign:
		return &AssignError{Col: tok.pos}
	default:
		panic("calculator: it really should not have ended this way: " + tok.String())
	}
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Assigns returns the name of the variable the expression binds when it is
// evaluated. The result is empty unless the expression is an assignment
// statement.
func (e *Expr) Assigns() string {
	return e.assign
}

// String creates a string representation of the parsed expression, with
// parentheses grouping each term. The result parses to the same expression.
func (e *Expr) String() string {
	var b strings.Builder
	if e.assign != "" {
		b.WriteString(e.assign)
		b.WriteString(" = ")
	}
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*", "×":
		return operator{5, false, nodeMul}
	case "/", "÷":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{10, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone. Unary operators bind more
// tightly than exponentiation, so -2^2 is (-2)^2.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{15, true, nodeNop}
	case "-":
		return operator{15, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
