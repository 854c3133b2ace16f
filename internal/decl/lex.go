// Package decl implements the lexer and parser for network declaration lines.
//
// A declaration line has the form:
//
//	[%|&]name -> dest1, dest2, ...
//
package decl

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/db47h/pulsesim/internal/lex"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	Percent
	Amp
	Arrow
	Comma
)

func typeName(t lex.Type) string {
	switch t {
	case EOF:
		return "end of input"
	case Raw:
		return "raw"
	case Ident:
		return "identifier"
	case Percent:
		return "'%'"
	case Amp:
		return "'&'"
	case Arrow:
		return "'->'"
	case Comma:
		return "','"
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// describe returns the description of i used in error messages.
//
func describe(i lex.Item) string {
	switch i.Type {
	case Ident:
		return "identifier " + strconv.Quote(i.Value.(string))
	case Raw:
		return "character " + strconv.Quote(string(i.Value.(rune)))
	}
	return typeName(i.Type)
}

// Lexer returns a new lexer for a declaration line.
//
func Lexer(input string) lex.Interface {
	return lex.New(strings.NewReader(input), lexInit)
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case isIdent(r):
		return lexIdent
	case r == '%':
		l.Emit(Percent, "%")
	case r == '&':
		l.Emit(Amp, "&")
	case r == ',':
		l.Emit(Comma, ",")
	case r == '-':
		if l.Next() == '>' {
			l.Emit(Arrow, "->")
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for isIdent(r) {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}
