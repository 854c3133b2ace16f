// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"strings"

	"github.com/pkg/errors"
)

// Pulse is the value carried by a signal.
//
type Pulse uint8

// Pulse values.
//
const (
	Low Pulse = iota
	High
)

func (p Pulse) String() string {
	if p == High {
		return "high"
	}
	return "low"
}

// ParsePulse parses "low" or "high" (case insensitive).
//
func ParsePulse(s string) (Pulse, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "high":
		return High, nil
	}
	return Low, errors.Errorf("invalid pulse value %q", s)
}

// Button is the name of the virtual module that sends the first pulse of
// every activation.
//
const Button = "button"

// Signal is a pulse travelling from one module to another.
//
type Signal struct {
	From  string
	To    string
	Value Pulse
}

func (s Signal) String() string {
	return s.From + " -" + s.Value.String() + "-> " + s.To
}

// Counts holds low and high pulse counts.
//
type Counts struct {
	Low  int64
	High int64
}

func (c *Counts) add(p Pulse) {
	if p == High {
		c.High++
	} else {
		c.Low++
	}
}

// Add adds o to c.
//
func (c *Counts) Add(o Counts) {
	c.Low += o.Low
	c.High += o.High
}

// Total returns the sum of low and high counts.
//
func (c Counts) Total() int64 { return c.Low + c.High }

// Product returns Low * High.
//
func (c Counts) Product() int64 { return c.Low * c.High }
