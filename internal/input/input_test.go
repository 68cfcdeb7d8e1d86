package input

import (
	"bufio"
	"context"
	"testing"
	"time"
)

func feed(s *Stream, bytes ...byte) {
	for _, b := range bytes {
		s.ch <- b
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		check func(Input) bool
	}{
		{"left letter", []byte{'a'}, func(in Input) bool { return in.Left }},
		{"right letter", []byte{'d'}, func(in Input) bool { return in.Right }},
		{"thrust letter", []byte{'w'}, func(in Input) bool { return in.Up }},
		{"hyperspace letter", []byte{'s'}, func(in Input) bool { return in.Down }},
		{"fire", []byte{' '}, func(in Input) bool { return in.Space }},
		{"enter", []byte{'\r'}, func(in Input) bool { return in.Enter }},
		{"quit", []byte{'q'}, func(in Input) bool { return in.Quit }},
		{"ctrl-c", []byte{0x03}, func(in Input) bool { return in.Quit }},
		{"up arrow", []byte{'\x1b', '[', 'A'}, func(in Input) bool { return in.Up && !in.Escape }},
		{"down arrow", []byte{'\x1b', '[', 'B'}, func(in Input) bool { return in.Down }},
		{"right arrow", []byte{'\x1b', '[', 'C'}, func(in Input) bool { return in.Right }},
		{"left arrow", []byte{'\x1b', '[', 'D'}, func(in Input) bool { return in.Left }},
		{"bare escape", []byte{'\x1b'}, func(in Input) bool { return in.Escape }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			feed(s, tt.bytes...)
			in := ReadInput(s)
			if !tt.check(in) {
				t.Errorf("unexpected input state %+v", in)
			}
			if len(in.Pressed) != len(tt.bytes) {
				t.Errorf("expected %d pressed bytes, got %d", len(tt.bytes), len(in.Pressed))
			}
		})
	}
}

func TestReadInputCombination(t *testing.T) {
	s := newStream()
	feed(s, 'a', 'w', ' ')
	in := ReadInput(s)
	if !in.Left || !in.Up || !in.Space {
		t.Errorf("expected left, thrust and fire together, got %+v", in)
	}
}

func TestKeyReleasesAfterHoldWindow(t *testing.T) {
	s := newStream()
	past := time.Now().Add(-2 * keyHoldDuration)
	s.apply([]byte{'a'}, past)

	if in := s.snapshot(time.Now()); in.Left {
		t.Error("expected key to be released after the hold window")
	}
	if in := s.snapshot(past); !in.Left {
		t.Error("expected key to be held at press time")
	}
}

func TestReset(t *testing.T) {
	s := newStream()
	feed(s, ' ')
	if in := ReadInput(s); !in.Space {
		t.Fatal("expected fire to be held")
	}
	s.Reset()
	if in := ReadInput(s); in.Space {
		t.Error("expected fire to be cleared by Reset")
	}
}

func TestClosedStream(t *testing.T) {
	s := newStream()
	close(s.ch)
	ReadInput(s)
	if !s.Closed() {
		t.Error("expected stream to report closed")
	}
}

// endlessKeys never runs out of key presses.
type endlessKeys struct{}

func (endlessKeys) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestStreamStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := StartStream(ctx, bufio.NewReader(endlessKeys{}))

	done := make(chan struct{})
	go func() {
		for range s.ch {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected stream to close after cancel")
	}
}

func TestIntents(t *testing.T) {
	in := Input{Left: true, Up: true, Space: true, Down: true, Quit: true}
	got := in.Intents()
	want := Intents{RotateLeft: true, Thrust: true, Fire: true, Hyperspace: true, Quit: true}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
