package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const example = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, append(args, "--log-level", "error"))
	return out.String(), err
}

func TestCount(t *testing.T) {
	path := writeFile(t, "input.txt", example)
	td := []struct {
		args []string
		out  string
	}{
		{[]string{"count", path}, "11687500\n"},
		{[]string{"count", "-n", "4", path}, "187\n"},
		{[]string{"count", "--human", path}, "11,687,500\n"},
	}
	for _, d := range td {
		out, err := runCmd(t, d.args...)
		if err != nil {
			t.Fatalf("%v: %v", d.args, err)
		}
		if out != d.out {
			t.Errorf("%v: got %q, expected %q", d.args, out, d.out)
		}
	}
}

func TestGenFirst(t *testing.T) {
	out, err := runCmd(t, "gen", "--bits", "4", "9", "11", "13", "15")
	if err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "machine.txt", out)
	out, err = runCmd(t, "first", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "6435\n" {
		t.Errorf("got %q, expected 6435", out)
	}
}

func TestTrace(t *testing.T) {
	path := writeFile(t, "input.txt", example)
	out, err := runCmd(t, "trace", path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "button -low-> broadcaster" || lines[8] != "# low 4, high 4" {
		t.Errorf("unexpected trace:\n%s", out)
	}
}

func TestErrors(t *testing.T) {
	bad := writeFile(t, "bad.txt", "broadcaster -> a\n%a => b\n")
	good := writeFile(t, "input.txt", example)
	td := []struct {
		name string
		args []string
		msg  string
	}{
		{"parse", []string{"count", bad}, "line 2"},
		{"missing", []string{"count", filepath.Join(t.TempDir(), "nope.txt")}, "no such file"},
		{"target", []string{"first", "-t", "zz", good}, "unknown module \"zz\""},
		{"value", []string{"first", "--value", "medium", good}, "invalid pulse value"},
		{"period", []string{"gen", "x"}, "invalid period"},
		{"budget", []string{"first", "-t", "inv", "--budget", "1", good}, "no period found"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := runCmd(t, d.args...)
			if err == nil || !strings.Contains(err.Error(), d.msg) {
				t.Errorf("got error %v, expected %q", err, d.msg)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := runCmd(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "pulsesim version ") {
		t.Errorf("unexpected output %q", out)
	}
}
