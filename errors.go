package pulsesim

import (
	"strconv"

	"github.com/pkg/errors"
)

// ParseError reports a malformed network declaration.
//
type ParseError struct {
	Line int    // 1-based line number, 0 if the error is not tied to a line
	Text string // offending line
	Pos  int    // 0-based byte offset in Text, -1 if unknown
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	s := "line " + strconv.Itoa(e.Line) + ": in " + strconv.Quote(e.Text)
	if e.Pos >= 0 {
		s += " at pos " + strconv.Itoa(e.Pos+1)
	}
	return s + ": " + e.Msg
}

// UnknownTargetError is returned when a query names a module that is not part
// of the network.
//
type UnknownTargetError struct {
	Name string
}

func (e *UnknownTargetError) Error() string {
	return "unknown module " + strconv.Quote(e.Name)
}

// PeriodNotFoundError is returned by FirstActivation when the period of a
// watched module could not be established within the press budget.
//
type PeriodNotFoundError struct {
	Module string
	Budget int
	Reason string
}

func (e *PeriodNotFoundError) Error() string {
	return "no period found for module " + strconv.Quote(e.Module) +
		" within " + strconv.Itoa(e.Budget) + " presses: " + e.Reason
}

// ErrRunaway is returned when a single activation sends more signals than
// allowed by Circuit.MaxSignals, which happens with relay or gate loops that
// never settle.
//
var ErrRunaway = errors.New("activation does not settle")
