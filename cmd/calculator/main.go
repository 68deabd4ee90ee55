package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

const historyFile = ".calculator_history"

func main() {
	var (
		inname, verb, varsname string
		with                   [][2]string
		nl, echo, verbose      bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&varsname, "vars", "", "YAML file mapping variable names to numbers or expressions")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&verbose, "v", false, "log debugging information")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	calc := calculator.New()
	if varsname != "" {
		if err := loadVars(calc, varsname); err != nil {
			log.Fatal().Err(err).Msg("loading variables")
		}
	}
	for _, d := range with {
		nm := d[0]
		r, err := calc.Parse(d[1])
		if err != nil {
			log.Fatal().Err(err).Str("name", nm).Msg("setting variable")
		}
		calc.Set(nm, r)
		log.Debug().Str("name", nm).Float64("value", r).Msg("bound variable")
	}

	verb += "\n"
	if inname == "" && flag.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		os.Exit(repl(calc, verb))
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal().Err(err).Msg("opening input")
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	opts := []calculator.ParseOption{calculator.StopOn(';')}
	if nl {
		opts = []calculator.ParseOption{calculator.StopOn(';', '\n')}
	}
	for _, in := range ins {
		for more(in) {
			a, err := calculator.Parse(in, opts...)
			if err != nil {
				log.Fatal().Err(err).Msg("parsing")
			}
			log.Debug().Stringer("expr", a).Strs("vars", a.Vars()).Msg("parsed")
			if echo {
				fmt.Printf("%v : ", a)
			}
			r, err := calc.Eval(a)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf(verb, r)
		}
	}
}

// more skips whitespace in the input and reports whether anything follows.
func more(in io.RuneScanner) bool {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err != io.EOF {
				log.Fatal().Err(err).Msg("reading input")
			}
			return false
		}
		if !unicode.IsSpace(r) {
			in.UnreadRune()
			return true
		}
	}
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}

// loadVars binds the variables in a YAML mapping, in document order. Values
// may be numbers or expressions using variables bound before them.
func loadVars(calc *calculator.Calculator, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading variables %s: %w", name, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: variables must be a mapping of names to values", name)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		var s calculator.Scalar
		if err := v.Decode(&s); err != nil {
			return fmt.Errorf("%s: %s: %w", name, k.Value, err)
		}
		r, err := calc.Resolve(s)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", name, k.Value, err)
		}
		calc.Set(k.Value, r)
		log.Debug().Str("name", k.Value).Stringer("value", s).Float64("resolved", r).Msg("bound variable")
	}
	return nil
}

func repl(calc *calculator.Calculator, verb string) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return 0
			}
			log.Error().Err(err).Msg("reading input")
			return 1
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return 0
		case ":vars":
			for _, name := range calc.Vars() {
				v, _ := calc.Get(name)
				fmt.Printf("%s = "+verb, name, v)
			}
			ln.AppendHistory(line)
			continue
		}
		ln.AppendHistory(line)
		r, err := calc.Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf(verb, r)
	}
}
