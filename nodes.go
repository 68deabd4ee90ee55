package calculator

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	name string
	num  float64
	fn   Func
	// pos is the column of the token that produced the node.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num
	nodeName // push lookup(name)

	nodeCall // name is Func to call, right is link to nodeArg unless niladic
	nodeArg  // eval left, right is link to next arg

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
	nodeNop // evaluate left
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the node with every term parenthesized, so that the result
// parses back to the same tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.fmtargs(b)
	case nodeArg:
		// Args usually only appear inside calls, which are handled by fmtargs.
		b.WriteByte(':')
		n.left.fmt(b)
		if n.right != nil {
			n.right.fmt(b)
		}
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd:
		n.binary(b, " + ")
	case nodeSub:
		n.binary(b, " - ")
	case nodeMul:
		n.binary(b, " * ")
	case nodeDiv:
		n.binary(b, " / ")
	case nodePow:
		n.binary(b, " ^ ")
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b)
	default:
		panic("calculator: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binary(b *strings.Builder, op string) {
	n.left.fmt(b)
	b.WriteString(op)
	n.right.fmt(b)
}

func (n *node) fmtargs(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	if n.right == nil {
		// Niladic call.
		return
	}
	n = n.right
	if n.kind != nodeArg {
		b.WriteString("***")
		n.fmt(b)
		return
	}
	n.left.fmt(b)
	for n.right != nil {
		n = n.right
		if n.kind != nodeArg {
			b.WriteString("***")
			n.fmt(b)
			return
		}
		b.WriteString(", ")
		n.left.fmt(b)
	}
}
