package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
)

// drain streams s to completion and returns the sample count and peak.
// It gives up after limit samples.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, math.Abs(buf[i][0]), math.Abs(buf[i][1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not end within %d samples", limit)
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc, rate.N(time.Second))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: sample out of range: %f", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if !ok || n != 64 {
		t.Fatalf("expected 64 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("square sample %d should be -1 or 1, got %f", i, v)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Phase stays 0: constant 1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain should be full volume, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("release should fade: %f then %f", samples[90][0], samples[99][0])
	}
}

func TestEveryEffectEnds(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, sound := range SoundTypes() {
		s := Effect(sound, rate, 0.5)
		if s == nil {
			t.Fatalf("no recipe for %s", sound)
		}
		n, _ := drain(t, s, rate.N(3*time.Second))
		if n == 0 {
			t.Errorf("%s produced no samples", sound)
		}
		if n > rate.N(time.Second+100*time.Millisecond) {
			t.Errorf("%s is too long: %d samples", sound, n)
		}
	}
	if Effect(SoundType(99), rate, 1) != nil {
		t.Error("unknown sound should have no recipe")
	}
}

func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	_, peak := drain(t, Effect(SoundLaunch, rate, 0), rate.N(time.Second))
	if peak != 0 {
		t.Errorf("zero volume should be silent, peak %f", peak)
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		event breakout.Event
		want  SoundType
		ok    bool
	}{
		{breakout.BrickHitEvent{}, SoundBrickHit, true},
		{breakout.BrickDestroyedEvent{}, SoundBrickBreak, true},
		{breakout.BonusCollectedEvent{}, SoundBonus, true},
		{breakout.BallLaunchedEvent{Count: 1}, SoundLaunch, true},
		{breakout.LifeLostEvent{}, SoundLifeLost, true},
		{breakout.LevelClearedEvent{}, SoundLevelCleared, true},
		{breakout.GameOverEvent{}, SoundGameOver, true},
		{breakout.VictoryEvent{}, SoundVictory, true},
		{breakout.BonusSpawnedEvent{}, 0, false},
		{breakout.BallLostEvent{}, 0, false},
		{breakout.LevelStartedEvent{}, 0, false},
	}
	for _, tc := range tests {
		got, ok := SoundFor(tc.event)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("SoundFor(%T) = %s, %v; expected %s, %v", tc.event, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("player panicked without initialization: %v", r)
		}
	}()

	p.Play(SoundBonus)
	p.Handle([]breakout.Event{breakout.BrickDestroyedEvent{}})
	p.Cleanup()
	if p.Active() != 0 {
		t.Error("an uninitialized player must not queue sounds")
	}
}

func TestPlayerPlaysEachSoundOncePerFrame(t *testing.T) {
	p := NewPlayer(nil)
	p.initialized = true // Exercise the mixer without opening a device

	p.Handle([]breakout.Event{
		breakout.BrickDestroyedEvent{},
		breakout.BrickDestroyedEvent{},
		breakout.BonusSpawnedEvent{},
		breakout.BonusCollectedEvent{},
	})
	if got := p.Active(); got != 2 {
		t.Errorf("expected 2 queued effects, got %d", got)
	}

	p.SetMuted(true)
	p.Handle([]breakout.Event{breakout.VictoryEvent{}})
	if got := p.Active(); got != 2 {
		t.Errorf("a muted player must not queue, got %d", got)
	}
}

func TestPlayerVolume(t *testing.T) {
	p := NewPlayer(nil)
	if p.volume != defaultVolume {
		t.Errorf("new player volume = %f, expected %f", p.volume, defaultVolume)
	}

	p.SetVolume(0.2)
	if p.volume != 0.2 {
		t.Errorf("volume = %f, expected 0.2", p.volume)
	}
	p.SetVolume(-1)
	if p.volume != 0 {
		t.Errorf("negative volume should clamp to 0, got %f", p.volume)
	}
}
