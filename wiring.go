package pulsesim

import (
	"strings"
)

// DefaultEntry is the default name of the entry module.
//
const DefaultEntry = "broadcaster"

// Network is the wiring of a set of modules together with their state.
//
// The topology of a Network never changes once built. Only the module state
// (toggle flags, gate memories) is updated by a Circuit.
//
type Network struct {
	entry int
	nodes []node
	index map[string]int
}

// An Option configures how a Network is built.
//
type Option func(*options)

type options struct {
	entry string
}

// WithEntry sets the name of the entry module. The default is "broadcaster".
//
func WithEntry(name string) Option {
	return func(o *options) { o.entry = name }
}

func (nw *Network) add(name string, k Kind, implicit bool) int {
	i := len(nw.nodes)
	nw.nodes = append(nw.nodes, node{name: name, kind: k, implicit: implicit})
	nw.index[name] = i
	return i
}

// link connects every module to the inputs of its destinations.
//
func (nw *Network) link() {
	for i := range nw.nodes {
		for _, o := range nw.nodes[i].outs {
			nw.nodes[o].connect(i)
		}
	}
}

// Reset restores the initial state of all modules: toggles off and every gate
// input low.
//
func (nw *Network) Reset() {
	for i := range nw.nodes {
		nw.nodes[i].reset()
	}
}

// Entry returns the name of the entry module.
//
func (nw *Network) Entry() string { return nw.nodes[nw.entry].name }

// Len returns the number of modules, including implicit sinks.
//
func (nw *Network) Len() int { return len(nw.nodes) }

// Names returns the module names in declaration order. Implicit sinks come
// last, in the order they were first referenced.
//
func (nw *Network) Names() []string {
	names := make([]string, len(nw.nodes))
	for i := range nw.nodes {
		names[i] = nw.nodes[i].name
	}
	return names
}

// Module is a snapshot of a module's wiring and state.
//
type Module struct {
	Name     string
	Kind     Kind
	Implicit bool
	Outputs  []string
	Inputs   []string
	// LastInput maps each input module name to the last pulse received from it.
	LastInput map[string]Pulse
	// On is the state of a Toggle.
	On bool
	// Last is the last pulse received, Received the number of pulses received.
	Last     Pulse
	Received Counts
}

// Module returns a snapshot of the named module.
//
func (nw *Network) Module(name string) (Module, bool) {
	i, ok := nw.index[name]
	if !ok {
		return Module{}, false
	}
	n := &nw.nodes[i]
	m := Module{
		Name:      n.name,
		Kind:      n.kind,
		Implicit:  n.implicit,
		Outputs:   nw.names(n.outs),
		Inputs:    nw.names(n.ins),
		LastInput: make(map[string]Pulse, len(n.ins)),
		On:        n.on,
		Last:      n.last,
		Received:  n.recv,
	}
	for s, in := range n.ins {
		m.LastInput[nw.nodes[in].name] = n.mem[s]
	}
	return m, true
}

func (nw *Network) names(idx []int) []string {
	if len(idx) == 0 {
		return nil
	}
	r := make([]string, len(idx))
	for i, n := range idx {
		r[i] = nw.nodes[n].name
	}
	return r
}

// Lines returns the declaration lines of the network. Implicit sinks are not
// declared.
//
func (nw *Network) Lines() []string {
	lines := make([]string, 0, len(nw.nodes))
	for i := range nw.nodes {
		n := &nw.nodes[i]
		if n.implicit {
			continue
		}
		lines = append(lines, declLine(n.kind.marker()+n.name, nw.names(n.outs)))
	}
	return lines
}

func declLine(name string, dests []string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" ->")
	for i, d := range dests {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(d)
	}
	return b.String()
}

// String returns the network in declaration format. The result parses back to
// an equivalent network.
//
func (nw *Network) String() string {
	return strings.Join(nw.Lines(), "\n")
}

// Subnet returns a new network made of the given modules and every module
// that can send pulses to them, directly or not. Modules outside of the
// subnet that receive pulses from it are replaced by sinks. Since all
// upstream modules are kept, the selected modules send exactly the same
// pulses as they do in the full network.
//
func (nw *Network) Subnet(names ...string) (*Network, error) {
	keep := make([]bool, len(nw.nodes))
	var todo []int
	for _, name := range names {
		i, ok := nw.index[name]
		if !ok {
			return nil, &UnknownTargetError{Name: name}
		}
		todo = append(todo, i)
	}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if keep[i] {
			continue
		}
		keep[i] = true
		for _, in := range nw.nodes[i].ins {
			if !keep[in] {
				todo = append(todo, in)
			}
		}
	}
	keep[nw.entry] = true

	var lines []string
	for i := range nw.nodes {
		n := &nw.nodes[i]
		if !keep[i] || n.implicit {
			continue
		}
		lines = append(lines, declLine(n.kind.marker()+n.name, nw.names(n.outs)))
	}
	return Parse(lines, WithEntry(nw.Entry()))
}
