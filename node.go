package pulsesim

import "strconv"

// Kind is the behavior of a module.
//
type Kind uint8

// Module kinds.
//
const (
	// Relay forwards every pulse unchanged.
	Relay Kind = iota
	// Toggle flips its state on low pulses and ignores high ones.
	Toggle
	// Gate sends low when the last pulse from every input was high, high otherwise.
	Gate
	// Sink consumes pulses.
	Sink
)

var kindNames = [...]string{"relay", "toggle", "gate", "sink"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) marker() string {
	switch k {
	case Toggle:
		return "%"
	case Gate:
		return "&"
	}
	return ""
}

// button is the sender index of the initial pulse.
//
const button = -1

type node struct {
	name     string
	kind     Kind
	implicit bool // undeclared destination
	outs     []int
	ins      []int

	// per-input memory, indexed like ins
	slot  map[int]int
	mem   []Pulse
	highs int // number of High values in mem

	on   bool // Toggle state
	last Pulse
	recv Counts
}

func (n *node) connect(from int) {
	if _, ok := n.slot[from]; ok {
		return
	}
	if n.slot == nil {
		n.slot = make(map[int]int)
	}
	n.slot[from] = len(n.ins)
	n.ins = append(n.ins, from)
	n.mem = append(n.mem, Low)
}

func (n *node) reset() {
	for i := range n.mem {
		n.mem[i] = Low
	}
	n.highs = 0
	n.on = false
	n.last = Low
	n.recv = Counts{}
}

// receive updates the node state for pulse p sent by from and returns the
// pulse to send to all outputs, if any.
//
func (n *node) receive(from int, p Pulse) (Pulse, bool) {
	if s, ok := n.slot[from]; ok && n.mem[s] != p {
		if p == High {
			n.highs++
		} else {
			n.highs--
		}
		n.mem[s] = p
	}
	n.last = p
	n.recv.add(p)

	switch n.kind {
	case Relay:
		return p, true
	case Toggle:
		if p == High {
			return Low, false
		}
		n.on = !n.on
		if n.on {
			return High, true
		}
		return Low, true
	case Gate:
		if len(n.mem) > 0 && n.highs == len(n.mem) {
			return Low, true
		}
		return High, true
	}
	return Low, false
}
