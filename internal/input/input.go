// Package input decodes raw terminal bytes into held keys and one-off presses.
package input

import (
	"bufio"
	"io"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// It covers the gap between terminal key repeats.
const keyHoldDuration = 80 * time.Millisecond

// Tuning steps per key press.
const (
	RateStep = 1  // Shots per second
	AimStep  = 15 // Degrees
)

// Keys is the decoded input of one frame.
type Keys struct {
	// Held keys.
	Left, Right, Up, Down bool
	Fire                  bool

	// Presses seen this frame.
	Quit         bool
	Start        bool
	ToggleTuning bool
	RateDelta    float64
	AimDelta     float64
}

// keyState tracks the last time each holdable key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	fire  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
	now   func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error.
func StartStream(r io.Reader) *Stream {
	s := NewStream()
	br := bufio.NewReader(r)
	go func() {
		defer close(s.ch)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// NewStream creates a stream fed only through Push.
func NewStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// Push queues bytes as if they had been read from the terminal.
func (s *Stream) Push(b ...byte) {
	for _, c := range b {
		s.ch <- c
	}
}

// Read drains all available bytes from the stream (non-blocking) and returns
// the keys of this frame. Arrow key escape sequences are decoded.
func (s *Stream) Read() Keys {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var keys Keys
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		s.apply(&keys, b, now)
	}

	keys.Left = now.Sub(s.state.left) < keyHoldDuration
	keys.Right = now.Sub(s.state.right) < keyHoldDuration
	keys.Up = now.Sub(s.state.up) < keyHoldDuration
	keys.Down = now.Sub(s.state.down) < keyHoldDuration
	keys.Fire = now.Sub(s.state.fire) < keyHoldDuration
	return keys
}

// apply records a single byte either as a held key or as a press.
func (s *Stream) apply(keys *Keys, b byte, now time.Time) {
	switch b {
	case 'a', 'A':
		s.state.left = now
	case 'd', 'D':
		s.state.right = now
	case 'w', 'W':
		s.state.up = now
	case 's', 'S':
		s.state.down = now
	case ' ':
		s.state.fire = now
	case 'q', 'Q', '\x03':
		keys.Quit = true
	case '\n', '\r':
		keys.Start = true
	case 'h', 'H':
		keys.ToggleTuning = !keys.ToggleTuning
	case '-', '_':
		keys.RateDelta -= RateStep
	case '=', '+':
		keys.RateDelta += RateStep
	case '[':
		keys.AimDelta -= AimStep
	case ']':
		keys.AimDelta += AimStep
	}
}

// Reset forgets every held key, e.g. when switching screens.
func (s *Stream) Reset() {
	s.state = keyState{}
}
