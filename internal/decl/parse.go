package decl

import (
	"strconv"

	"github.com/db47h/pulsesim/internal/lex"
)

// Node markers.
//
const (
	MarkRelay  byte = 0
	MarkToggle byte = '%'
	MarkGate   byte = '&'
)

// Decl is a parsed declaration line.
//
type Decl struct {
	Marker byte
	Name   string
	Pos    int // byte offset of Name
	Dests  []string
}

// Error is a syntax error at a given byte offset in a declaration line.
//
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return "pos " + strconv.Itoa(e.Pos+1) + ": " + e.Msg
}

func errorf(i lex.Item, msg string) error {
	return &Error{Pos: int(i.Pos), Msg: msg + ", got " + describe(i)}
}

// Parse parses a single declaration line.
//
func Parse(line string) (*Decl, error) {
	l := Lexer(line)
	d := new(Decl)

	i := l.Lex()
	switch i.Type {
	case Percent:
		d.Marker = MarkToggle
		i = l.Lex()
	case Amp:
		d.Marker = MarkGate
		i = l.Lex()
	}
	if i.Type != Ident {
		return nil, errorf(i, "expected node name")
	}
	d.Name, d.Pos = i.Value.(string), int(i.Pos)

	if i = l.Lex(); i.Type != Arrow {
		return nil, errorf(i, "expected '->' after node name")
	}

	// destination list, possibly empty
	i = l.Lex()
	if i.Type == EOF {
		return d, nil
	}
	for {
		if i.Type != Ident {
			return nil, errorf(i, "expected destination name")
		}
		d.Dests = append(d.Dests, i.Value.(string))
		i = l.Lex()
		switch i.Type {
		case EOF:
			return d, nil
		case Comma:
			i = l.Lex()
		default:
			return nil, errorf(i, "expected ',' or end of line")
		}
	}
}
