// Package audio plays short synthesized sound effects in reaction to
// breakout session events.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundType identifies one effect recipe.
type SoundType int

const (
	SoundBrickHit SoundType = iota
	SoundBrickBreak
	SoundBonus
	SoundLaunch
	SoundLifeLost
	SoundLevelCleared
	SoundGameOver
	SoundVictory
)

var soundNames = [...]string{
	SoundBrickHit:     "brick-hit",
	SoundBrickBreak:   "brick-break",
	SoundBonus:        "bonus",
	SoundLaunch:       "launch",
	SoundLifeLost:     "life-lost",
	SoundLevelCleared: "level-cleared",
	SoundGameOver:     "game-over",
	SoundVictory:      "victory",
}

func (s SoundType) String() string {
	if int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// SoundTypes lists every effect in declaration order.
func SoundTypes() []SoundType {
	out := make([]SoundType, len(soundNames))
	for i := range out {
		out[i] = SoundType(i)
	}
	return out
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given wave shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped note.
type tone struct {
	freq     float64
	wave     WaveType
	duration time.Duration
}

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 30 * time.Millisecond
)

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	release := min(noteRelease, t.duration/2)
	osc := NewOscillator(t.freq, t.duration, t.wave, rate)
	return NewEnvelope(osc, t.duration, noteAttack, release, rate)
}

// melody plays tones back to back.
func melody(rate beep.SampleRate, tones ...tone) beep.Streamer {
	parts := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		parts[i] = t.streamer(rate)
	}
	return beep.Seq(parts...)
}

// Note frequencies used by the recipes.
const (
	noteA2 = 110.00
	noteD3 = 146.83
	noteA3 = 220.00
	noteD4 = 293.66
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteB5 = 987.77
	noteC6 = 1046.50
	noteE6 = 1318.51
)

// Effect builds a fresh streamer for sound at the given volume.
// Streamers are single use; every play needs a new one.
func Effect(sound SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case SoundBrickHit:
		// Quiet blip; the paddle and wall bounces stay silent.
		s = newVolume(tone{noteE5, WaveSquare, 25 * time.Millisecond}.streamer(rate), 0.25)
	case SoundBrickBreak:
		crack := NewEnvelope(NewOscillator(0, 70*time.Millisecond, WaveNoise, rate),
			70*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)
		s = beep.Mix(
			newVolume(crack, 0.4),
			newVolume(tone{noteA4, WaveSquare, 60 * time.Millisecond}.streamer(rate), 0.3),
		)
	case SoundBonus:
		s = melody(rate,
			tone{noteB5, WaveSquare, 70 * time.Millisecond},
			tone{noteE6, WaveSquare, 160 * time.Millisecond},
		)
	case SoundLaunch:
		s = newVolume(tone{noteC5, WaveSine, 50 * time.Millisecond}.streamer(rate), 0.6)
	case SoundLifeLost:
		s = melody(rate,
			tone{noteD4, WaveSaw, 120 * time.Millisecond},
			tone{noteA3, WaveSaw, 120 * time.Millisecond},
			tone{noteD3, WaveSaw, 220 * time.Millisecond},
		)
	case SoundLevelCleared:
		s = melody(rate,
			tone{noteC5, WaveSquare, 90 * time.Millisecond},
			tone{noteE5, WaveSquare, 90 * time.Millisecond},
			tone{noteG5, WaveSquare, 90 * time.Millisecond},
			tone{noteC6, WaveSquare, 240 * time.Millisecond},
		)
	case SoundGameOver:
		s = melody(rate,
			tone{noteA3, WaveSaw, 200 * time.Millisecond},
			tone{noteA2, WaveSaw, 500 * time.Millisecond},
		)
	case SoundVictory:
		s = melody(rate,
			tone{noteC5, WaveSquare, 100 * time.Millisecond},
			tone{noteE5, WaveSquare, 100 * time.Millisecond},
			tone{noteG5, WaveSquare, 100 * time.Millisecond},
			tone{noteC6, WaveSquare, 150 * time.Millisecond},
			tone{noteG5, WaveSquare, 100 * time.Millisecond},
			tone{noteC6, WaveSquare, 400 * time.Millisecond},
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
