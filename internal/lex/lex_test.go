package lex_test

import (
	"io"
	"strings"
	"testing"
	"unicode"

	"github.com/db47h/pulsesim/internal/lex"
)

const (
	word lex.Type = iota
	other
)

// words emits runs of letters and single other runes, skipping spaces.
func words(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		l.Emit(lex.EOF, nil)
		return words
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case unicode.IsLetter(r):
		l.AcceptWhile(unicode.IsLetter)
		l.Emit(word, nil)
	default:
		l.Emit(other, r)
	}
	return nil
}

func TestLexer(t *testing.T) {
	td := []struct {
		in    string
		types []lex.Type
		pos   []lex.Pos
	}{
		{"", []lex.Type{lex.EOF}, []lex.Pos{0}},
		{"ab  cd", []lex.Type{word, word, lex.EOF}, []lex.Pos{0, 4, 6}},
		{" é,x", []lex.Type{word, other, word, lex.EOF}, []lex.Pos{1, 3, 4, 5}},
	}
	for _, d := range td {
		l := lex.New(strings.NewReader(d.in), words)
		for j := range d.types {
			i := l.Lex()
			if i.Type != d.types[j] || i.Pos != d.pos[j] {
				t.Errorf("%q: item %d: got type %d at %d, expected %d at %d", d.in, j, i.Type, i.Pos, d.types[j], d.pos[j])
			}
		}
		if i := l.Lex(); i.Type != lex.EOF {
			t.Errorf("%q: expected EOF, got %v", d.in, i)
		}
	}
}

func TestBackup(t *testing.T) {
	// not a RuneScanner
	l := lex.New(struct{ io.Reader }{strings.NewReader("xy")}, nil)
	if r := l.Next(); r != 'x' || l.Current() != 'x' {
		t.Fatalf("got %q", r)
	}
	l.Backup()
	l.Backup()
	if l.Pos() != 0 {
		t.Errorf("pos = %d after backup", l.Pos())
	}
	if r := l.Next(); r != 'x' {
		t.Errorf("got %q after backup", r)
	}
	l.Next()
	if r := l.Next(); r != lex.EOF || l.Pos() != 2 {
		t.Errorf("got %q at %d, expected EOF at 2", r, l.Pos())
	}
	l.Backup()
	if l.Pos() != 2 {
		t.Errorf("backup at EOF moved to %d", l.Pos())
	}
}
