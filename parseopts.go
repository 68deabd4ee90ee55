package calculator

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// stops is the set of runes that end a statement.
type stops struct {
	// ws holds the whitespace runes that make the lexer produce EOF.
	ws string
	// comma and semi are whether each separator may end the statement.
	comma, semi bool
}

// sep reports whether the separator text ends the statement.
func (s stops) sep(text string) bool {
	switch text {
	case ",":
		return s.comma
	case ";":
		return s.semi
	}
	return false
}

func (s stops) any() bool {
	return s.ws != "" || s.comma || s.semi
}

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
	// funcs maps names that parse as calls to their functions.
	funcs map[string]Func
	// nodefaults indicates that funcs already includes every default function
	// not overridden.
	nodefaults bool
	// stop ends statements early.
	stop stops
	// col is the column of the first rune, or 0 for 1.
	col int
	// noassign rejects assignment statements.
	noassign bool
}

// withDefaults fills in the default functions that options have not set.
func (p *parsectx) withDefaults() {
	if p.funcs == nil {
		p.funcs = globalfuncs
		return
	}
	if p.nodefaults {
		return
	}
	for k, v := range globalfuncs {
		if _, ok := p.funcs[k]; !ok {
			p.funcs[k] = v
		}
	}
	p.nodefaults = true
}

type funcsopt map[string]Func

// ParseFunc sets a function for parsing. To disable parsing a function, pass
// nil for fn; its name is then parsed as a variable.
func ParseFunc(name string, fn Func) ParseOption {
	return funcsopt{name: fn}
}

// ParseFuncs sets a group of functions for parsing. To disable parsing any
// function, set it to nil.
func ParseFuncs(fns map[string]Func) ParseOption {
	return funcsopt(fns)
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	// Always copy, so that neither the option nor a preset is modified.
	m := make(map[string]Func, len(p.funcs)+len(o))
	for k, v := range p.funcs {
		m[k] = v
	}
	for k, v := range o {
		m[k] = v
	}
	p.funcs = m
	return p
}

// DisableDefaultFuncs disables all default functions during parsing. Their
// names will be parsed as variables instead.
func DisableDefaultFuncs() ParseOption {
	return disablefns
}

var disablefns = func() funcsopt {
	m := make(funcsopt, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = nil
	}
	return m
}()

// StopOn tells the parser to treat a list of characters as ending the
// statement. Each rune must be a comma, semicolon, or whitespace codepoint.
// Whitespace does not end a statement where a term is expected, e.g. at the
// beginning or following an operator or bracket. Commas do not end
// statements inside function argument lists.
//
// StopOn overrides the effect of any previous StopOn in the parsing options,
// including in presets. With no arguments, StopOn produces the default
// termination behavior, which is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var s stops
	for _, r := range chars {
		switch {
		case r == ',':
			s.comma = true
		case r == ';':
			s.semi = true
		case unicode.IsSpace(r):
			if !strings.ContainsRune(s.ws, r) {
				s.ws += string(r)
			}
		default:
			panic("calculator: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	return s
}

func (s stops) parseOption(p parsectx) parsectx {
	p.stop = s
	return p
}

// NoAssign makes assignment statements a syntax error, so that the parsed
// expression cannot bind a variable when it is evaluated.
func NoAssign() ParseOption {
	return assignopt{}
}

type assignopt struct{}

func (assignopt) parseOption(p parsectx) parsectx {
	p.noassign = true
	return p
}

// colopt sets the column of the first rune of the input, for parsing one
// statement out of a longer source.
type colopt int

func (o colopt) parseOption(p parsectx) parsectx {
	p.col = int(o)
	return p
}

// ParsingPreset creates a parsing preset that may be more efficient when using
// the same non-default parsing options for many calls to Parse. A preset
// panics when it would change any option from the default, but it is safe to
// apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs != nil {
		p.withDefaults()
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.funcs != nil || p.stop.any() || p.noassign {
		panic("calculator: preset applied to non-default parse config")
	}
	p.funcs = o.funcs
	p.nodefaults = o.nodefaults
	p.stop = o.stop
	p.noassign = o.noassign
	return p
}
