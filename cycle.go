package pulsesim

import (
	"strconv"

	"github.com/db47h/pulsesim/internal/mathx"
	"github.com/db47h/pulsesim/internal/stopwatch"
	"github.com/pkg/errors"
)

// DefaultBudget is the default maximum number of presses simulated by
// FirstActivation.
//
const DefaultBudget = 1 << 20

// watchPlan describes which emissions FirstActivation tracks.
//
type watchPlan struct {
	target int
	want   Pulse
	// emissions from srcs to collector with value qual.
	collector int
	srcs      []int
	qual      Pulse
}

// plan picks the modules to watch in order to detect the first press that
// sends want to target.
//
// When the only input of target is a gate and want is Low, the gate sends low
// exactly when the last pulse received from each of its inputs is high. These
// inputs are then watched for high pulses sent to the gate. Any other shape
// is searched directly.
//
func (c *Circuit) plan(target int, want Pulse) *watchPlan {
	p := &watchPlan{target: target, want: want, collector: -1}
	t := &c.nw.nodes[target]
	if want != Low || len(t.ins) != 1 {
		return p
	}
	g := &c.nw.nodes[t.ins[0]]
	if g.kind != Gate || len(g.ins) == 0 {
		return p
	}
	p.collector = t.ins[0]
	p.srcs = g.ins
	p.qual = High
	return p
}

// period tracks the qualifying emissions of one watched module.
//
type period struct {
	first     int64
	confirmed bool
}

// FirstActivation returns the smallest number of presses after which target
// has received a want pulse. The network is reset first.
//
// If target is fed by a single gate and want is Low, the inputs of that gate
// are assumed to be independent counters that each send high to the gate
// every p presses, p being the press index of their first high pulse. The
// result is then the least common multiple of these periods. The assumption is
// checked by simulating up to twice the longest period: each input must send
// high at press 2p and never at a press that is not a multiple of p. If the
// least common multiple fits in the budget, the simulation continues until
// that press and the target must be reached by then, otherwise the periods do
// not coincide within a single activation and an error is returned.
//
// The search never simulates more than budget presses (DefaultBudget if
// budget <= 0). If a period cannot be established within that budget, or if
// the target is searched directly and not reached, FirstActivation returns a
// *PeriodNotFoundError. If target is reached while periods are being measured,
// the exact press index is returned.
//
func (c *Circuit) FirstActivation(target string, want Pulse, budget int) (int64, error) {
	t, ok := c.nw.index[target]
	if !ok {
		return 0, &UnknownTargetError{Name: target}
	}
	if budget <= 0 {
		budget = DefaultBudget
	}
	c.Reset()

	p := c.plan(t, want)
	periods := make([]period, len(p.srcs))
	slot := c.nw.nodes[t].slot
	if p.collector >= 0 {
		slot = c.nw.nodes[p.collector].slot
	}
	// sources that fired during the current press
	fired := make([]bool, len(p.srcs))
	hit := false

	c.watch = func(e event) {
		if e.to == t && e.p == want {
			hit = true
		}
		if e.to == p.collector && e.p == p.qual {
			if s, ok := slot[e.from]; ok {
				fired[s] = true
			}
		}
	}
	defer func() { c.watch = nil }()

	sw := stopwatch.Start(c.log)
	confirmed := 0
	for k := int64(1); k <= int64(budget); k++ {
		if _, err := c.Press(); err != nil {
			return 0, err
		}
		if hit {
			sw.Stop("target reached", "target", target, "presses", k)
			return k, nil
		}
		for s, f := range fired {
			if !f {
				continue
			}
			fired[s] = false
			pr := &periods[s]
			switch {
			case pr.first == 0:
				pr.first = k
			case pr.confirmed:
			case k%pr.first != 0:
				return 0, &PeriodNotFoundError{
					Module: c.name(p.srcs[s]),
					Budget: budget,
					Reason: "fired at press " + strconv.FormatInt(k, 10) + ", not a multiple of " + strconv.FormatInt(pr.first, 10),
				}
			case k == 2*pr.first:
				pr.confirmed = true
				confirmed++
			}
		}
		if len(p.srcs) > 0 && confirmed == len(p.srcs) {
			break
		}
		sw.Tick("searching periods", "target", target, "presses", k, "confirmed", confirmed)
	}

	if len(p.srcs) == 0 {
		return 0, &PeriodNotFoundError{Module: target, Budget: budget, Reason: "target not reached"}
	}
	ps := make([]int64, len(periods))
	for s, pr := range periods {
		if !pr.confirmed {
			r := "no qualifying pulse"
			if pr.first > 0 {
				r = "period " + strconv.FormatInt(pr.first, 10) + " not confirmed"
			}
			return 0, &PeriodNotFoundError{Module: c.name(p.srcs[s]), Budget: budget, Reason: r}
		}
		ps[s] = pr.first
	}
	l, ok := mathx.LCMAll(ps...)
	if !ok {
		return 0, errors.Errorf("least common multiple of periods %v overflows", ps)
	}
	if l > int64(budget) {
		sw.Stop("periods found", "target", target, "periods", ps, "lcm", l)
		return l, nil
	}

	// within budget, the watched pulses must reach the gate during the same
	// activation.
	for !hit && c.presses < l {
		if _, err := c.Press(); err != nil {
			return 0, err
		}
		sw.Tick("checking periods", "target", target, "presses", c.presses, "lcm", l)
	}
	if !hit {
		return 0, &PeriodNotFoundError{Module: target, Budget: budget, Reason: "periods do not coincide"}
	}
	sw.Stop("target reached", "target", target, "periods", ps, "presses", c.presses)
	return c.presses, nil
}
