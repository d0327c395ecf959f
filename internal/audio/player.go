package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
)

const (
	sampleRate    = beep.SampleRate(48000)
	defaultVolume = 0.5
)

// Player turns session events into sound effects. It implements the
// terminal host's event sink and is safe to call before Initialize, in
// which case nothing is played.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. A nil logger discards.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		volume: defaultVolume,
		logger: logger,
	}
}

// Initialize opens the audio device and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetMuted silences or restores the player.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// SetVolume sets the linear master volume, 0 being silent.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = max(0, v)
}

// Play queues one effect.
func (p *Player) Play(sound SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.play(sound)
}

func (p *Player) play(sound SoundType) {
	if !p.initialized || p.muted {
		return
	}
	s := Effect(sound, p.rate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.logger.Debug("sound", "effect", sound)
}

// Handle plays the effects for one frame of events. Each effect plays at
// most once per frame so a ball clearing several bricks does not stack.
func (p *Player) Handle(events []breakout.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var played [len(soundNames)]bool
	for _, e := range events {
		sound, ok := SoundFor(e)
		if !ok || played[sound] {
			continue
		}
		played[sound] = true
		p.play(sound)
	}
}

// Active returns the number of effects still playing.
func (p *Player) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// SoundFor maps a session event to its effect.
func SoundFor(e breakout.Event) (SoundType, bool) {
	switch e.(type) {
	case breakout.BrickHitEvent:
		return SoundBrickHit, true
	case breakout.BrickDestroyedEvent:
		return SoundBrickBreak, true
	case breakout.BonusCollectedEvent:
		return SoundBonus, true
	case breakout.BallLaunchedEvent:
		return SoundLaunch, true
	case breakout.LifeLostEvent:
		return SoundLifeLost, true
	case breakout.LevelClearedEvent:
		return SoundLevelCleared, true
	case breakout.GameOverEvent:
		return SoundGameOver, true
	case breakout.VictoryEvent:
		return SoundVictory, true
	}
	return 0, false
}
