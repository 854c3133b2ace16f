package pulsesim

import (
	"github.com/pkg/errors"
)

// CountPulses resets nw, presses the button n times and returns the product
// of the total number of low pulses by the total number of high pulses sent.
//
func CountPulses(nw *Network, n int) (int64, error) {
	if n < 0 {
		return 0, errors.Errorf("invalid press count %d", n)
	}
	c := NewCircuit(nw)
	c.Reset()
	cnt, err := c.Run(n)
	if err != nil {
		return 0, err
	}
	return cnt.Product(), nil
}

// FirstActivationReaching returns the number of presses needed for target to
// receive a value pulse, starting from the initial state. See
// Circuit.FirstActivation.
//
func FirstActivationReaching(nw *Network, target string, value Pulse, budget int) (int64, error) {
	return NewCircuit(nw).FirstActivation(target, value, budget)
}
