package stopwatch

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTick(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	now := time.Unix(1000, 0)
	s := start(log, func() time.Time { return now })

	td := []struct {
		advance time.Duration
		logged  bool
	}{
		{0, false},
		{500 * time.Millisecond, false},
		{500 * time.Millisecond, true},
		{10 * time.Millisecond, false},
		{2 * time.Second, true},
	}
	for i, d := range td {
		now = now.Add(d.advance)
		if got := s.Tick("tick"); got != d.logged {
			t.Errorf("tick %d: logged = %v, expected %v", i, got, d.logged)
		}
	}
	if n := strings.Count(buf.String(), "msg=tick"); n != 2 {
		t.Errorf("expected 2 tick messages, got %d:\n%s", n, buf.String())
	}
	if d := s.Stop("done"); d != 3010*time.Millisecond {
		t.Errorf("Stop() = %v", d)
	}
	if !strings.Contains(buf.String(), "msg=done elapsed=3.01s") {
		t.Errorf("missing stop message:\n%s", buf.String())
	}
}

func TestNil(t *testing.T) {
	s := Start(nil)
	if s != nil {
		t.Fatal("expected nil stopwatch")
	}
	s.Log("x")
	if s.Tick("x") || s.Stop("x") != 0 || s.Elapsed() != 0 {
		t.Error("nil stopwatch should be inert")
	}
}
