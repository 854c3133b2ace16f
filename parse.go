package pulsesim

import (
	"strings"

	"github.com/db47h/pulsesim/internal/decl"
	"github.com/pkg/errors"
)

// Parse builds a Network from declaration lines. Blank lines are ignored.
//
// Destinations that are not declared become implicit sinks. Unmarked modules
// other than the entry module that have no destination are sinks as well.
//
func Parse(lines []string, opts ...Option) (*Network, error) {
	o := options{entry: DefaultEntry}
	for _, opt := range opts {
		opt(&o)
	}

	type declared struct {
		*decl.Decl
		line int
	}
	var ds []declared
	nw := &Network{entry: -1, index: make(map[string]int, len(lines))}

	for ln, text := range lines {
		if strings.TrimSpace(text) == "" {
			continue
		}
		d, err := decl.Parse(text)
		if err != nil {
			pe := &ParseError{Line: ln + 1, Text: text, Pos: -1, Msg: err.Error()}
			if de, ok := err.(*decl.Error); ok {
				pe.Pos, pe.Msg = de.Pos, de.Msg
			}
			return nil, pe
		}
		if _, dup := nw.index[d.Name]; dup {
			return nil, &ParseError{Line: ln + 1, Text: text, Pos: d.Pos, Msg: "module " + d.Name + " already declared"}
		}
		var k Kind
		switch d.Marker {
		case decl.MarkToggle:
			k = Toggle
		case decl.MarkGate:
			k = Gate
		default:
			k = Relay
			if d.Name != o.entry && len(d.Dests) == 0 {
				k = Sink
			}
		}
		i := nw.add(d.Name, k, false)
		if d.Name == o.entry {
			if k != Relay {
				return nil, &ParseError{Line: ln + 1, Text: text, Pos: 0, Msg: "entry module " + d.Name + " must not be marked"}
			}
			nw.entry = i
		}
		ds = append(ds, declared{d, ln + 1})
	}
	if nw.entry < 0 {
		return nil, &ParseError{Pos: -1, Msg: "missing entry module " + o.entry}
	}

	// resolve destinations, creating sinks for undeclared ones.
	for i, d := range ds {
		outs := make([]int, 0, len(d.Dests))
		for _, dest := range d.Dests {
			n, ok := nw.index[dest]
			if !ok {
				n = nw.add(dest, Sink, true)
			}
			outs = append(outs, n)
		}
		nw.nodes[i].outs = outs
	}
	nw.link()
	return nw, nil
}

// ParseString parses a network from a newline separated declaration string.
//
func ParseString(s string, opts ...Option) (*Network, error) {
	return Parse(strings.Split(s, "\n"), opts...)
}

// ParseFile parses the network declared in the named file.
//
func ParseFile(name string, opts ...Option) (*Network, error) {
	lines, err := ReadFile(name)
	if err != nil {
		return nil, err
	}
	nw, err := Parse(lines, opts...)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return nw, nil
}
