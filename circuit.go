// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"log/slog"

	"github.com/pkg/errors"
)

// DefaultMaxSignals is the default value of Circuit.MaxSignals.
//
const DefaultMaxSignals = 1 << 22

// A Probe is called for every signal delivered by a Circuit, in processing
// order.
//
type Probe func(s Signal)

type event struct {
	from, to int
	p        Pulse
}

// Circuit runs activations on a Network.
//
// A Circuit is not safe for concurrent use. Activations depend on the state
// left by the previous ones and must run sequentially.
//
type Circuit struct {
	// MaxSignals is the maximum number of signals a single activation may
	// send before Press gives up with ErrRunaway.
	MaxSignals int

	nw      *Network
	queue   []event
	presses int64
	total   Counts
	probes  []Probe
	watch   func(e event)
	log     *slog.Logger
}

// NewCircuit returns a new Circuit driving nw.
//
func NewCircuit(nw *Network) *Circuit {
	return &Circuit{MaxSignals: DefaultMaxSignals, nw: nw}
}

// Network returns the network driven by c.
//
func (c *Circuit) Network() *Network { return c.nw }

// SetLogger sets the logger used to report progress of long running queries.
// A nil logger disables logging.
//
func (c *Circuit) SetLogger(l *slog.Logger) { c.log = l }

// Probe registers p to be called for every signal delivered.
//
func (c *Circuit) Probe(p Probe) { c.probes = append(c.probes, p) }

// Presses returns the number of activations run since the last Reset.
//
func (c *Circuit) Presses() int64 { return c.presses }

// Total returns the pulse counts accumulated since the last Reset.
//
func (c *Circuit) Total() Counts { return c.total }

// Reset resets the network state and the press and pulse counters.
//
func (c *Circuit) Reset() {
	c.nw.Reset()
	c.presses = 0
	c.total = Counts{}
}

func (c *Circuit) name(i int) string {
	if i == button {
		return Button
	}
	return c.nw.nodes[i].name
}

// Press runs one activation: a low pulse is sent from the button to the entry
// module and the resulting signals are processed in the order they were sent
// until none is left. It returns the number of low and high pulses sent,
// including the initial one.
//
func (c *Circuit) Press() (Counts, error) {
	var cnt Counts
	c.presses++
	nodes := c.nw.nodes
	limit := c.MaxSignals
	if limit <= 0 {
		limit = DefaultMaxSignals
	}

	q := append(c.queue[:0], event{from: button, to: c.nw.entry, p: Low})
	cnt.add(Low)
	for h := 0; h < len(q); h++ {
		e := q[h]
		if c.watch != nil {
			c.watch(e)
		}
		for _, p := range c.probes {
			p(Signal{From: c.name(e.from), To: c.name(e.to), Value: e.p})
		}
		n := &nodes[e.to]
		p, ok := n.receive(e.from, e.p)
		if !ok {
			continue
		}
		if len(q)+len(n.outs) > limit {
			c.queue = q[:0]
			return cnt, errors.Wrapf(ErrRunaway, "press %d: more than %d signals", c.presses, limit)
		}
		for _, o := range n.outs {
			q = append(q, event{from: e.to, to: o, p: p})
			cnt.add(p)
		}
	}
	c.queue = q[:0]
	c.total.Add(cnt)
	return cnt, nil
}

// Run runs n activations and returns the accumulated pulse counts for these
// activations.
//
func (c *Circuit) Run(n int) (Counts, error) {
	var cnt Counts
	for i := 0; i < n; i++ {
		pc, err := c.Press()
		if err != nil {
			return cnt, err
		}
		cnt.Add(pc)
	}
	return cnt, nil
}
