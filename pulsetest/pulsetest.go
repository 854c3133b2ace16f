// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing pulse networks.
//
package pulsetest

import (
	"fmt"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// Record presses the button of c presses times and returns, for each press,
// the signals delivered in the classic "from -value-> to" form.
//
func Record(c *pulsesim.Circuit, presses int) ([][]string, error) {
	var cur []string
	c.Probe(func(s pulsesim.Signal) { cur = append(cur, s.String()) })
	out := make([][]string, 0, presses)
	for i := 0; i < presses; i++ {
		cur = nil
		if _, err := c.Press(); err != nil {
			return out, err
		}
		out = append(out, cur)
	}
	return out, nil
}

// CompareNetworks presses the button of both networks presses times, starting
// from their initial state, and fails if any press produces different
// signals.
//
func CompareNetworks(t *testing.T, presses int, a, b *pulsesim.Network) {
	t.Helper()
	ca, cb := pulsesim.NewCircuit(a), pulsesim.NewCircuit(b)
	ca.Reset()
	cb.Reset()
	ta, err := Record(ca, presses)
	if err != nil {
		t.Fatal(err)
	}
	tb, err := Record(cb, presses)
	if err != nil {
		t.Fatal(err)
	}
	for i := range ta {
		if diff := cmp.Diff(ta[i], tb[i]); diff != "" {
			t.Fatalf("press %d: traces differ (-a +b):\n%s", i+1, diff)
		}
	}
	if ca.Total() != cb.Total() {
		t.Fatalf("totals differ: %+v != %+v", ca.Total(), cb.Total())
	}
}

// FirstEmission runs module in isolation, that is in the subnet made of the
// module and all of its upstream modules, and returns the first press during
// which it sends a value pulse.
//
func FirstEmission(nw *pulsesim.Network, module string, value pulsesim.Pulse, budget int) (int64, error) {
	sub, err := nw.Subnet(module)
	if err != nil {
		return 0, err
	}
	c := pulsesim.NewCircuit(sub)
	sent := false
	c.Probe(func(s pulsesim.Signal) {
		if s.From == module && s.Value == value {
			sent = true
		}
	})
	for k := int64(1); k <= int64(budget); k++ {
		if _, err := c.Press(); err != nil {
			return 0, err
		}
		if sent {
			return k, nil
		}
	}
	return 0, errors.Errorf("%s did not send %v within %d presses", module, value, budget)
}

// Fixture is a network with a hand checked trace.
//
type Fixture struct {
	Name  string
	Input string
	// Trace holds the signals of the first presses.
	Trace [][]string
	// Presses and Product are the expected result of CountPulses.
	Presses int
	Product int64
}

// Check verifies that f parses and produces the expected trace and product.
//
func (f *Fixture) Check(t *testing.T) {
	t.Helper()
	nw, err := pulsesim.ParseString(f.Input)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := Record(pulsesim.NewCircuit(nw), len(f.Trace))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(f.Trace, tr); diff != "" {
		t.Errorf("%s: trace mismatch (-want +got):\n%s", f.Name, diff)
	}
	p, err := pulsesim.CountPulses(nw, f.Presses)
	if err != nil {
		t.Fatal(err)
	}
	if p != f.Product {
		t.Errorf("%s: CountPulses(%d) = %d, expected %d", f.Name, f.Presses, p, f.Product)
	}
}

// Fixtures returns the reference networks.
//
func Fixtures() []*Fixture {
	return []*Fixture{
		{
			Name: "chain",
			Input: `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`,
			Trace: [][]string{{
				"button -low-> broadcaster",
				"broadcaster -low-> a",
				"broadcaster -low-> b",
				"broadcaster -low-> c",
				"a -high-> b",
				"b -high-> c",
				"c -high-> inv",
				"inv -low-> a",
				"a -low-> b",
				"b -low-> c",
				"c -low-> inv",
				"inv -high-> a",
			}},
			Presses: 1000,
			Product: 32000000,
		},
		{
			Name: "output",
			Input: `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output`,
			Trace: [][]string{
				{
					"button -low-> broadcaster",
					"broadcaster -low-> a",
					"a -high-> inv",
					"a -high-> con",
					"inv -low-> b",
					"con -high-> output",
					"b -high-> con",
					"con -low-> output",
				},
				{
					"button -low-> broadcaster",
					"broadcaster -low-> a",
					"a -low-> inv",
					"a -low-> con",
					"inv -high-> b",
					"con -high-> output",
				},
				{
					"button -low-> broadcaster",
					"broadcaster -low-> a",
					"a -high-> inv",
					"a -high-> con",
					"inv -low-> b",
					"con -low-> output",
					"b -low-> con",
					"con -high-> output",
				},
				{
					"button -low-> broadcaster",
					"broadcaster -low-> a",
					"a -low-> inv",
					"a -low-> con",
					"inv -high-> b",
					"con -high-> output",
				},
			},
			Presses: 1000,
			Product: 11687500,
		},
	}
}

// String implements fmt.Stringer.
//
func (f *Fixture) String() string { return fmt.Sprintf("%s (%d presses)", f.Name, f.Presses) }
