package netlib_test

import (
	"strings"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/netlib"
	"github.com/db47h/pulsesim/pulsetest"
	"github.com/google/go-cmp/cmp"
)

func TestCounter_lines(t *testing.T) {
	b := netlib.New()
	head, err := b.Counter("c", 4, 9, "out")
	if err != nil {
		t.Fatal(err)
	}
	if head != "cb0" {
		t.Errorf("head = %q, expected cb0", head)
	}
	exp := []string{
		"%cb0 -> cb1, chub",
		"%cb1 -> cb2",
		"%cb2 -> cb3",
		"%cb3 -> chub",
		"&chub -> out, cb0, cb1, cb2",
	}
	if diff := cmp.Diff(exp, b.Lines()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestBuilder_lines(t *testing.T) {
	b := netlib.New()
	b.Relay(pulsesim.DefaultEntry, "a", "inv")
	b.Toggle("a", "inv")
	b.Gate("inv", "a")
	b.Relay("end")
	exp := []string{
		"broadcaster -> a, inv",
		"%a -> inv",
		"&inv -> a",
		"end ->",
	}
	if diff := cmp.Diff(exp, b.Lines()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	nw, err := b.Network()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(strings.Join(exp, "\n"), nw.String()); diff != "" {
		t.Errorf("String() (-want +got)\n%s", diff)
	}
}

func TestCounter_errors(t *testing.T) {
	td := []struct {
		bits   int
		period int64
	}{
		{1, 1},
		{63, 1<<62 + 1},
		{4, 10}, // even
		{4, 7},  // too small
		{4, 17}, // too large
	}
	for _, d := range td {
		if _, err := netlib.New().Counter("c", d.bits, d.period, "out"); err == nil {
			t.Errorf("Counter(%d, %d): expected error", d.bits, d.period)
		}
	}
}

// The hub of a counter first sends low after exactly period presses.
func TestCounter_period(t *testing.T) {
	for _, p := range []int64{9, 11, 13, 15, 17, 31} {
		bits := 4
		if p > 16 {
			bits = 5
		}
		b := netlib.New()
		head, err := b.Counter("c", bits, p, "out")
		if err != nil {
			t.Fatal(err)
		}
		b.Relay(pulsesim.DefaultEntry, head)
		nw, err := b.Network()
		if err != nil {
			t.Fatal(err)
		}
		k, err := pulsetest.FirstEmission(nw, netlib.HubName("c"), pulsesim.Low, 1000)
		if err != nil {
			t.Fatal(err)
		}
		if k != p {
			t.Errorf("period %d: hub first sent low at press %d", p, k)
		}
	}
}

func TestMachine(t *testing.T) {
	if _, err := netlib.Machine(4); err == nil {
		t.Error("expected error for empty machine")
	}
	if _, err := netlib.Machine(4, 9, 8); err == nil {
		t.Error("expected error for even period")
	}
	b, err := netlib.Machine(4, 9, 11)
	if err != nil {
		t.Fatal(err)
	}
	lines := b.Lines()
	if last := lines[len(lines)-1]; last != "broadcaster -> c0b0, c1b0" {
		t.Errorf("last line = %q", last)
	}
	nw, err := b.Network()
	if err != nil {
		t.Fatal(err)
	}
	m, ok := nw.Module(netlib.Target)
	if !ok || m.Kind != pulsesim.Sink || !m.Implicit {
		t.Errorf("target module: %+v", m)
	}
	m, _ = nw.Module(netlib.Collector)
	if diff := cmp.Diff([]string{"c0inv", "c1inv"}, m.Inputs); diff != "" {
		t.Errorf("collector inputs (-want +got)\n%s", diff)
	}
	// rebuilding from the textual form yields the same behavior
	nw2, err := pulsesim.ParseString(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	pulsetest.CompareNetworks(t, 50, nw, nw2)
}
