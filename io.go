// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadLines returns the lines read from r, without line terminators.
//
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read lines")
	}
	return lines, nil
}

// ReadFile returns the lines of the named file.
//
func ReadFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return lines, nil
}

// ParseReader parses the network declared in r.
//
func ParseReader(r io.Reader, opts ...Option) (*Network, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Parse(lines, opts...)
}
