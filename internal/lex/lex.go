// Package lex provides the state machine driving the lexers of declaration
// lines.
//
// A lexer is a set of state functions. Each state reads runes with Next,
// emits zero or more items with Emit and returns the next state, or nil to
// start a new token in the initial state.
//
package lex

import (
	"bufio"
	"io"
)

// EOF is both the rune returned by Next at end of input and the item type
// emitted for it.
//
const EOF = -1

// Type is an item type.
//
type Type int

// Pos is a byte offset in the input.
//
type Pos int

// Item is a lexed token.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

// Interface is implemented by lexers.
//
type Interface interface {
	Lex() Item
}

// StateFn is a lexer state.
//
type StateFn func(l *Lexer) StateFn

// Lexer runs state functions over a rune stream.
//
type Lexer struct {
	r     io.RuneScanner
	init  StateFn
	state StateFn
	items []Item

	start Pos // start of the current token
	pos   Pos // offset of the next rune
	cur   rune
	width int // size of cur, 0 at end of input
}

// New returns a new Lexer reading from r and starting every token in state
// init.
//
func New(r io.Reader, init StateFn) *Lexer {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &Lexer{r: rs, init: init}
}

// Lex returns the next item.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.state = l.init
			l.start = l.pos
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next reads the next rune. It returns EOF at end of input or on read error.
//
func (l *Lexer) Next() rune {
	r, w, err := l.r.ReadRune()
	if err != nil {
		l.cur, l.width = EOF, 0
		return EOF
	}
	l.cur, l.width = r, w
	l.pos += Pos(w)
	return r
}

// Current returns the last rune read by Next.
//
func (l *Lexer) Current() rune { return l.cur }

// Backup unreads the last rune read by Next. It can only be called once per
// call to Next.
//
func (l *Lexer) Backup() {
	if l.width == 0 {
		return
	}
	l.r.UnreadRune()
	l.pos -= Pos(l.width)
	l.width = 0
}

// AcceptWhile reads runes as long as f returns true and leaves the first
// rejected rune unread.
//
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	for r := l.Next(); r != EOF && f(r); r = l.Next() {
	}
	l.Backup()
}

// Emit emits an item of type t at the start of the current token. The next
// token starts at the current position.
//
func (l *Lexer) Emit(t Type, value interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: value})
	l.start = l.pos
}

// Pos returns the offset of the next rune.
//
func (l *Lexer) Pos() Pos { return l.pos }
