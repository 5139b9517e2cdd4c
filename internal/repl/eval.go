package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cayleygraph/quad/nquads"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/term"
	"github.com/cayleygraph/rdfstore/voc"
)

// ErrExit is returned by Eval for the exit command.
var ErrExit = errors.New("exit")

const helpText = `Help
	exit                // Exit
	help                // this help
	:a <quad>           // add quad
	:d <quad>           // delete quad
	? s p o [c]         // pattern lookup, * or ? match anything
	:contexts           // list contexts
	:prefixes           // list bound namespaces and known vocabularies
	:size [c]           // number of triples in c, or in the union
	:debug [t|f]
`

// Session evaluates REPL lines against a store. Blank node labels typed
// during one session name the same node.
type Session struct {
	store graph.Store
	scope *term.Scope

	// Limit caps the number of printed results; zero means no limit.
	Limit int
}

// NewSession creates a session over s.
func NewSession(s graph.Store) *Session {
	return &Session{store: s, scope: term.NewGenerator().NewScope(), Limit: 100}
}

func trace(s string) (string, time.Time) {
	return s, time.Now()
}

func un(w io.Writer, s string, startTime time.Time) {
	endTime := time.Now()

	fmt.Fprintf(w, s, float64(endTime.UnixNano()-startTime.UnixNano())/float64(1e6))
}

// Eval runs a single line, writing its output to w.
func (s *Session) Eval(ctx context.Context, line string, w io.Writer) error {
	line = strings.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return nil
	}
	cmd, args := splitLine(line)
	switch cmd {
	case ":debug":
		return s.debug(strings.TrimSpace(args), w)
	case ":a":
		t, c, err := s.parseQuad(args)
		if err != nil {
			return err
		}
		return s.store.Add(t, c, false)
	case ":d":
		t, c, err := s.parseQuad(args)
		if err != nil {
			return err
		}
		return s.store.Remove(t, c)
	case ":contexts":
		for _, c := range s.store.Contexts(nil) {
			fmt.Fprintln(w, c)
		}
		return nil
	case ":prefixes":
		for _, ns := range s.store.Namespaces() {
			fmt.Fprintf(w, "%s:\t%s\n", ns.Prefix, ns.URI)
		}
		for _, p := range voc.List() {
			fmt.Fprintf(w, "%s\t<%s>\n", p[0], p[1])
		}
		return nil
	case ":size":
		var c term.Term
		if args = strings.TrimSpace(args); args != "" {
			ts, err := internal.ParsePattern([]string{"*", "*", "*", args}, s.scope)
			if err != nil {
				return err
			}
			c = ts[3]
		}
		fmt.Fprintln(w, s.store.Size(c))
		return nil
	case "?":
		return s.query(ctx, args, w)
	case "help":
		fmt.Fprint(w, helpText)
		return nil
	case "exit":
		return ErrExit
	}
	if cmd[0] == ':' {
		return fmt.Errorf("unknown command: %q", cmd)
	}
	return fmt.Errorf("cannot parse %q, type help for a list of commands", line)
}

func (s *Session) debug(arg string, w io.Writer) error {
	var debug bool
	switch arg {
	case "", "t":
		debug = true
	case "f":
		// Do nothing.
	default:
		var err error
		debug, err = strconv.ParseBool(arg)
		if err != nil {
			return fmt.Errorf("cannot parse %q as a valid boolean - acceptable values: 't'|'true' or 'f'|'false'", arg)
		}
	}
	if debug {
		clog.SetV(2)
	} else {
		clog.SetV(0)
	}
	fmt.Fprintf(w, "Debug set to %t\n", debug)
	return nil
}

// parseQuad reads one statement. An unlabelled statement belongs to the
// store default context.
func (s *Session) parseQuad(args string) (term.Triple, term.Term, error) {
	q, err := nquads.Parse(strings.TrimSpace(args))
	if err != nil {
		return term.Triple{}, nil, fmt.Errorf("not a valid quad: %w", err)
	}
	t, c, err := internal.FromQuadTriple(q, s.scope)
	if err != nil {
		return term.Triple{}, nil, fmt.Errorf("not a valid quad: %w", err)
	}
	if c == nil {
		c = s.store.Identifier()
	}
	return t, c, nil
}

func (s *Session) query(ctx context.Context, args string, w io.Writer) error {
	fields, err := splitFields(args)
	if err != nil {
		return err
	}
	if len(fields) != 3 && len(fields) != 4 {
		return fmt.Errorf("expected 3 or 4 terms, got %d", len(fields))
	}
	pattern, c, err := internal.ParseTriplePattern(fields, s.scope)
	if err != nil {
		return err
	}

	startTrace, startTime := trace("Elapsed time: %g ms\n\n")
	res, err := graph.All(ctx, s.store.Triples(pattern, c))
	if err != nil {
		return err
	}
	internal.SortResults(res)
	fmt.Fprintln(w)
	for i, r := range res {
		if s.Limit > 0 && i == s.Limit {
			fmt.Fprintf(w, "... %d more\n", len(res)-i)
			break
		}
		fmt.Fprintln(w, r)
	}
	if n := len(res); n > 0 {
		results := "Result"
		if n > 1 {
			results += "s"
		}
		fmt.Fprintf(w, "-----------\n%d %s\n", n, results)
		un(w, startTrace, startTime)
	}
	return nil
}

// Splits a line into a command and its arguments
// e.g. ":a b c d ." will be split into ":a" and " b c d ."
func splitLine(line string) (string, string) {
	var command, arguments string

	line = strings.TrimSpace(line)

	// An empty line/a line consisting of whitespace contains neither command nor arguments
	if len(line) > 0 {
		command = strings.Fields(line)[0]

		// A line containing only a command has no arguments
		if len(line) > len(command) {
			arguments = line[len(command):]
		}
	}

	return command, arguments
}

// splitFields splits the terms of a pattern, keeping quoted literals with
// their spaces intact. A final "." and anything after it is dropped.
func splitFields(s string) ([]string, error) {
	var out []string
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" || s[0] == '.' || s[0] == '#' {
			return out, nil
		}
		n, err := fieldLen(s)
		if err != nil {
			return nil, err
		}
		out = append(out, s[:n])
		s = s[n:]
	}
}

func fieldLen(s string) (int, error) {
	switch s[0] {
	case '<':
		i := strings.IndexByte(s, '>')
		if i < 0 {
			return 0, fmt.Errorf("unterminated IRI: %q", s)
		}
		return i + 1, nil
	case '"':
		i := 1
		for ; i < len(s); i++ {
			if s[i] == '\\' {
				i++
			} else if s[i] == '"' {
				break
			}
		}
		if i >= len(s) {
			return 0, fmt.Errorf("unterminated literal: %q", s)
		}
		s = s[i+1:]
		if j := strings.IndexAny(s, " \t"); j >= 0 {
			return i + 1 + j, nil
		}
		return i + 1 + len(s), nil
	}
	if j := strings.IndexAny(s, " \t"); j >= 0 {
		return j, nil
	}
	return len(s), nil
}
