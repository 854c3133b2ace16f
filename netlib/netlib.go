// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlib provides generators for common pulse networks.
//
package netlib

import (
	"strconv"
	"strings"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
)

// Builder accumulates module declarations.
//
type Builder struct {
	lines []string
}

// New returns an empty Builder.
//
func New() *Builder { return new(Builder) }

func (b *Builder) decl(name string, dests []string) {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" ->")
	for i, d := range dests {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(d)
	}
	b.lines = append(b.lines, sb.String())
}

// Relay declares a relay module.
//
func (b *Builder) Relay(name string, dests ...string) { b.decl(name, dests) }

// Toggle declares a toggle module.
//
func (b *Builder) Toggle(name string, dests ...string) { b.decl("%"+name, dests) }

// Gate declares a gate module.
//
func (b *Builder) Gate(name string, dests ...string) { b.decl("&"+name, dests) }

// Lines returns the declarations added so far.
//
func (b *Builder) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Network parses the declarations into a network.
//
func (b *Builder) Network(opts ...pulsesim.Option) (*pulsesim.Network, error) {
	return pulsesim.Parse(b.lines, opts...)
}

// BitName returns the name of toggle number bit in the counter named name.
//
func BitName(name string, bit int) string { return name + "b" + strconv.Itoa(bit) }

// HubName returns the name of the gate that fires when the counter named name
// reaches its period.
//
func HubName(name string) string { return name + "hub" }

// Counter declares a bits wide binary counter made of toggles, reset by a gate
// hub whenever it reaches period. The counter increments on every low pulse
// sent to BitName(name, 0), which is returned.
//
// The hub sends a low pulse to out every period presses and a high pulse
// every time it receives a pulse otherwise. period must be odd and such that
// 1<<(bits-1) < period < 1<<bits.
//
func (b *Builder) Counter(name string, bits int, period int64, out string) (string, error) {
	if bits < 2 || bits > 62 {
		return "", errors.Errorf("counter %s: invalid bit count %d", name, bits)
	}
	if period&1 == 0 || period <= 1<<uint(bits-1) || period >= 1<<uint(bits) {
		return "", errors.Errorf("counter %s: period %d not supported by a %d bits counter", name, period, bits)
	}
	hub := HubName(name)
	hubOuts := []string{out}
	for i := 0; i < bits; i++ {
		var dests []string
		if i < bits-1 {
			dests = append(dests, BitName(name, i+1))
		}
		// ones are read by the hub, zeroes and bit 0 are set by it on reset,
		// which adds 1<<bits - period to the counter.
		if period&(1<<uint(i)) != 0 {
			dests = append(dests, hub)
		}
		if i == 0 || period&(1<<uint(i)) == 0 {
			hubOuts = append(hubOuts, BitName(name, i))
		}
		b.Toggle(BitName(name, i), dests...)
	}
	b.Gate(hub, hubOuts...)
	return BitName(name, 0), nil
}

// Machine names.
//
const (
	Collector = "col"
	Target    = "rx"
)

// ChainName returns the name of counter i in a machine.
//
func ChainName(i int) string { return "c" + strconv.Itoa(i) }

// InverterName returns the name of the inverter following counter i in a machine.
//
func InverterName(i int) string { return ChainName(i) + "inv" }

// Machine returns a builder for a network where the entry module drives one
// counter per period. Each counter hub feeds an inverter, all inverters feed
// the Collector gate, which feeds the Target sink.
//
// Target first receives a low pulse after lcm(periods...) presses.
//
func Machine(bits int, periods ...int64) (*Builder, error) {
	if len(periods) == 0 {
		return nil, errors.New("machine needs at least one counter")
	}
	b := New()
	heads := make([]string, len(periods))
	for i, p := range periods {
		h, err := b.Counter(ChainName(i), bits, p, InverterName(i))
		if err != nil {
			return nil, err
		}
		heads[i] = h
		b.Gate(InverterName(i), Collector)
	}
	b.Gate(Collector, Target)
	b.Relay(pulsesim.DefaultEntry, heads...)
	return b, nil
}
