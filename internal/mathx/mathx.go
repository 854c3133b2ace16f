// Package mathx provides integer helpers.
//
package mathx

import (
	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b.
//
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, which must be positive.
// ok is false if the result overflows T.
//
func LCM[T constraints.Integer](a, b T) (l T, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	q := a / GCD(a, b)
	l = q * b
	if l/b != q || l < 0 {
		return l, false
	}
	return l, true
}

// LCMAll returns the least common multiple of all values, or 1 for an empty
// list.
//
func LCMAll[T constraints.Integer](vs ...T) (T, bool) {
	var l T = 1
	for _, v := range vs {
		var ok bool
		if l, ok = LCM(l, v); !ok {
			return l, false
		}
	}
	return l, true
}
