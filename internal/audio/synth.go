// Package audio synthesizes the game's sound cues and plays them through the
// system speaker.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency slides linearly from one value
// to another over its duration.
type oscillator struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a finite wave generator sliding from one frequency to another.
func NewOscillator(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:  from,
		to:    to,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		freq := o.from + (o.to-o.from)*float64(o.pos)/float64(o.total)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = max(float64(left)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// tone is an enveloped oscillator.
func tone(from, to float64, d, attack, release time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(from, to, d, wave, rate), d, attack, release, rate)
}

// Kind identifies a game sound.
type Kind int

const (
	Laser     Kind = iota // Player shot
	Pop                   // Enemy destroyed
	PlayerHit             // Player lost a life
	Power                 // Shield picked up
)

func (k Kind) String() string {
	switch k {
	case Laser:
		return "laser"
	case Pop:
		return "pop"
	case PlayerHit:
		return "playerHit"
	case Power:
		return "power"
	default:
		return "unknown"
	}
}

// Streamer builds a fresh finite stream for kind k.
func Streamer(k Kind, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch k {
	case Laser:
		return tone(1400, 300, 120*ms, 2*ms, 80*ms, WaveSquare, rate)
	case Pop:
		return tone(0, 0, 90*ms, ms, 70*ms, WaveNoise, rate)
	case PlayerHit:
		return tone(180, 60, 300*ms, 5*ms, 200*ms, WaveSaw, rate)
	case Power:
		return beep.Seq(
			note(523.25, 70*ms, 20*ms, rate),
			note(659.25, 70*ms, 20*ms, rate),
			note(783.99, 120*ms, 80*ms, rate),
		)
	default:
		return beep.Silence(0)
	}
}

// note is a fixed pitch sine of length d.
func note(freq float64, d, release time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, 2*time.Millisecond, release, rate)
}

// withVolume applies a gain in halvings. 0 leaves the stream unchanged.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}
