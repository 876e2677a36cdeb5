package input

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStream() (*Stream, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStream()
	s.now = func() time.Time { return now }
	return s, &now
}

func TestReadHeldKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  Keys
	}{
		{name: "nothing", bytes: "", want: Keys{}},
		{name: "wasd", bytes: "wasd", want: Keys{Left: true, Right: true, Up: true, Down: true}},
		{name: "arrows", bytes: "\x1b[A\x1b[D", want: Keys{Up: true, Left: true}},
		{name: "fire", bytes: " ", want: Keys{Fire: true}},
		{name: "upper case", bytes: "AD", want: Keys{Left: true, Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStream()
			s.Push([]byte(tt.bytes)...)
			assert.Equal(t, tt.want, s.Read())
		})
	}
}

func TestHeldKeyExpires(t *testing.T) {
	s, now := newTestStream()
	s.Push('a', ' ')
	keys := s.Read()
	require.True(t, keys.Left)
	require.True(t, keys.Fire)

	*now = now.Add(keyHoldDuration / 2)
	keys = s.Read()
	assert.True(t, keys.Left, "still held between repeats")

	*now = now.Add(keyHoldDuration)
	keys = s.Read()
	assert.False(t, keys.Left)
	assert.False(t, keys.Fire)
}

func TestPressesLastOneFrame(t *testing.T) {
	s, _ := newTestStream()
	s.Push([]byte("\r==-]]q")...)

	keys := s.Read()
	assert.True(t, keys.Start)
	assert.True(t, keys.Quit)
	assert.InDelta(t, RateStep, keys.RateDelta, 1e-9)
	assert.InDelta(t, 2*AimStep, keys.AimDelta, 1e-9)

	keys = s.Read()
	assert.Equal(t, Keys{}, keys)
}

func TestToggleTuningPairsCancel(t *testing.T) {
	s, _ := newTestStream()
	s.Push('h')
	assert.True(t, s.Read().ToggleTuning)

	s.Push('h', 'H')
	assert.False(t, s.Read().ToggleTuning)
}

func TestReset(t *testing.T) {
	s, _ := newTestStream()
	s.Push('d')
	require.True(t, s.Read().Right)

	s.Reset()
	assert.False(t, s.Read().Right)
}

func TestStartStream(t *testing.T) {
	s := StartStream(strings.NewReader("q"))

	var keys Keys
	require.Eventually(t, func() bool {
		keys = s.Read()
		return keys.Quit
	}, time.Second, time.Millisecond)
}
