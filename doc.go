/*
Package pulsesim simulates networks of pulse-driven logic modules.

A network is declared one module per line:

	broadcaster -> a, b
	%a -> inv
	&inv -> b

Unmarked modules are relays (the entry module, named "broadcaster" by
default, is one), '%' marks a toggle (flip-flop) and '&' marks a gate
(conjunction). Destinations that are never declared become sinks.

Pressing the button sends a single low pulse to the entry module. The
resulting cascade is processed in strict FIFO order by a Circuit, which counts
the low and high pulses sent. For networks whose target is fed by independent
binary counters, Circuit.FirstActivation finds the first press that delivers a
given pulse to the target by measuring the period of each counter and taking
their least common multiple.
*/
package pulsesim
