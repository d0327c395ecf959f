// Package breakout implements the brick breaker simulation: entities,
// collision response, procedural levels and the per-frame session state
// machine. It has no rendering or input code; a host feeds Input into
// Session.Update once per frame and draws the returned Snapshot.
package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

// State is the session state.
type State string

// Session states. A level clear is a transition inside Update, never
// observable as a state of its own.
const (
	StateOngoing  State = "ongoing"
	StateGameOver State = "gameover" // Terminal until a restart
	StateVictory  State = "victory"  // Terminal until a restart
)

// Input is what the host samples once per frame.
type Input struct {
	PaddleX float64 // Target paddle center in playfield pixels
	Launch  bool    // Launch balls resting on the paddle
}

// Session owns every entity of a game and advances them one frame at a time.
// It is not safe for concurrent use.
type Session struct {
	cfg        config.BreakoutConfig
	field      Bounds
	table      *LevelTable
	builder    LevelBuilder
	difficulty *config.DifficultyManager
	rng        *SimpleRNG
	logger     *log.Logger
	seed       int64
	startLevel int

	paddle  *Paddle
	balls   []*Ball
	bricks  []*Brick
	bonuses []*Bonus

	lives  int
	level  int
	state  State
	frame  int
	events []Event
}

// Option configures a Session.
type Option func(*Session)

// WithConfig replaces the default game configuration.
func WithConfig(cfg config.BreakoutConfig) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithSeed seeds the session RNG. Sessions with equal seeds and inputs
// produce equal snapshots.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithLevelTable replaces the embedded level table.
func WithLevelTable(t *LevelTable) Option {
	return func(s *Session) { s.table = t }
}

// WithLevelBuilder replaces the procedural generator.
func WithLevelBuilder(b LevelBuilder) Option {
	return func(s *Session) { s.builder = b }
}

// WithStartLevel starts (and restarts) the game at level n.
func WithStartLevel(n int) Option {
	return func(s *Session) { s.startLevel = n }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession creates a session and loads its start level.
// A start level outside the level table panics.
func NewSession(opts ...Option) *Session {
	s := &Session{
		cfg:        config.DefaultBreakoutConfig(),
		seed:       1,
		startLevel: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.table == nil {
		s.table = DefaultLevelTable()
	}
	s.field = FieldFromConfig(s.cfg.Playfield)
	s.rng = NewSimpleRNG(s.seed)
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	if s.builder == nil {
		s.builder = NewGenerator(s.cfg, s.difficulty, s.rng)
	}

	s.RestartGame()
	return s
}

// RestartGame resets lives and loads the start level. The RNG keeps running,
// so a restarted game gets fresh layouts.
func (s *Session) RestartGame() {
	s.events = nil
	s.lives = s.cfg.Gameplay.Lives
	s.state = StateOngoing
	s.frame = 0
	s.loadLevel(s.startLevel)
}

// RestartLevel rebuilds the current level. Restarting from game over also
// restores the starting lives.
func (s *Session) RestartLevel() {
	s.events = nil
	if s.state == StateGameOver {
		s.lives = s.cfg.Gameplay.Lives
	}
	s.state = StateOngoing
	s.loadLevel(s.level)
}

// loadLevel regenerates bricks, balls, bonuses and the paddle for level n.
func (s *Session) loadLevel(n int) {
	spec := s.table.Spec(n)
	s.level = n

	s.paddle = NewPaddle(s.cfg.Paddle, s.field)
	s.balls = []*Ball{NewBall(s.paddle, s.cfg.Ball.Size, s.levelSpeed(), s.field)}
	s.bonuses = nil
	s.bricks = s.builder.Build(spec, n == s.table.Len())

	s.emit(LevelStartedEvent{Level: n, Name: spec.Name, Bricks: len(s.bricks)})
	s.logger.Info("level loaded", "level", n, "name", spec.Name, "bricks", len(s.bricks))
}

// levelSpeed is the ball speed for the current level.
func (s *Session) levelSpeed() float64 {
	return s.difficulty.Speed(s.cfg.Ball.Speed, s.level, s.frame)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Update advances the session by one frame and returns the resulting state.
// In a terminal state it only returns the current snapshot.
//
// Order: paddle move, widen timer, launch, balls (advance, loss, bricks),
// lost-ball pruning, bonuses, win check.
func (s *Session) Update(in Input) Snapshot {
	s.events = nil
	if s.state != StateOngoing {
		return s.Snapshot()
	}
	s.frame++

	s.paddle.MoveTo(in.PaddleX)
	s.paddle.Tick()

	if in.Launch {
		s.launch()
	}

	var lost []*Ball
	for _, b := range s.balls {
		if b.Advance(s.paddle) {
			lost = append(lost, b)
			continue
		}
		if !b.Resting {
			s.collideBricks(b)
		}
	}

	if len(lost) > 0 && s.pruneLost(lost) {
		return s.Snapshot()
	}

	s.updateBonuses()

	if s.BricksRemaining() == 0 {
		s.levelCleared()
	}
	return s.Snapshot()
}

func (s *Session) launch() {
	launched := 0
	for _, b := range s.balls {
		if b.Launch(s.cfg.Ball.LaunchAngle) {
			launched++
		}
	}
	if launched > 0 {
		s.emit(BallLaunchedEvent{Count: launched})
	}
}

// collideBricks resolves the ball against every alive brick.
func (s *Session) collideBricks(b *Ball) {
	for _, br := range s.bricks {
		if !br.IsAlive() {
			continue
		}
		hit, spawns := br.ResolveCollision(b, s.rng)
		if !hit {
			continue
		}
		if br.IsAlive() {
			s.emit(BrickHitEvent{Type: br.Type, Color: br.Color, HitPoints: br.HitPoints})
			continue
		}
		s.emit(BrickDestroyedEvent{Type: br.Type, Color: br.Color, X: br.X, Y: br.Y})
		if spawns {
			bn := NewBonus(br.Center(), s.bonusParams(), s.rng)
			s.bonuses = append(s.bonuses, bn)
			s.emit(BonusSpawnedEvent{Kind: bn.Kind, X: bn.Pos.X, Y: bn.Pos.Y})
		}
	}
}

func (s *Session) bonusParams() BonusParams {
	return BonusParams{
		Size:      s.cfg.Bonus.Size,
		FallSpeed: s.cfg.Bonus.FallSpeed,
		BallSize:  s.cfg.Ball.Size,
		Field:     s.field,
	}
}

// pruneLost removes lost balls. When none survive, the first lost ball is
// recycled onto the paddle at the level speed and a life is lost.
// It reports true when that ends the game.
func (s *Session) pruneLost(lost []*Ball) bool {
	isLost := make(map[*Ball]bool, len(lost))
	for _, b := range lost {
		isLost[b] = true
	}
	kept := s.balls[:0]
	for _, b := range s.balls {
		if !isLost[b] {
			kept = append(kept, b)
		}
	}

	if len(kept) > 0 {
		s.balls = kept
		for range lost {
			s.emit(BallLostEvent{Remaining: len(kept)})
		}
		return false
	}

	// A multiplied ball can be much slower than the level speed.
	b := lost[0]
	b.Speed = s.levelSpeed()
	b.Vel = r2.Vec{}
	b.rest(s.paddle)
	s.balls = append(kept, b)

	for range lost {
		s.emit(BallLostEvent{Remaining: 0})
	}
	s.lives--
	s.emit(LifeLostEvent{Lives: s.lives})
	s.logger.Debug("life lost", "level", s.level, "lives", s.lives, "frame", s.frame)

	if s.lives > 0 {
		return false
	}
	s.state = StateGameOver
	s.emit(GameOverEvent{Level: s.level})
	s.logger.Info("game over", "level", s.level, "frame", s.frame)
	return true
}

// updateBonuses drops every bonus one step and applies the caught ones.
func (s *Session) updateBonuses() {
	active := s.bonuses[:0]
	for _, bn := range s.bonuses {
		bn.Fall()
		if bn.Active && bn.CollidesWithPaddle(s.paddle) {
			s.lives, s.balls = bn.Apply(s.lives, s.balls, s.paddle, s.rng)
			bn.Active = false
			s.emit(BonusCollectedEvent{Kind: bn.Kind})
			s.logger.Debug("bonus collected", "kind", bn.Kind, "lives", s.lives, "balls", len(s.balls))
		}
		if bn.Active {
			active = append(active, bn)
		}
	}
	s.bonuses = active
}

func (s *Session) levelCleared() {
	s.emit(LevelClearedEvent{Level: s.level})
	if s.level >= s.table.Len() {
		s.state = StateVictory
		s.emit(VictoryEvent{Lives: s.lives})
		s.logger.Info("victory", "lives", s.lives, "frame", s.frame)
		return
	}
	s.loadLevel(s.level + 1)
}

// BricksRemaining counts the bricks still alive.
func (s *Session) BricksRemaining() int {
	n := 0
	for _, br := range s.bricks {
		if br.IsAlive() {
			n++
		}
	}
	return n
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level number.
func (s *Session) Level() int { return s.level }

// Frame returns the number of frames simulated since the game started.
func (s *Session) Frame() int { return s.frame }

// Paddle returns the paddle. Hosts must treat it as read-only.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Balls returns the balls in play. Hosts must treat them as read-only.
func (s *Session) Balls() []*Ball { return s.balls }

// Bricks returns the bricks of the current level, destroyed ones included.
func (s *Session) Bricks() []*Brick { return s.bricks }

// Bonuses returns the falling bonuses.
func (s *Session) Bonuses() []*Bonus { return s.bonuses }

// Field returns the playfield bounds.
func (s *Session) Field() Bounds { return s.field }

// Table returns the level table.
func (s *Session) Table() *LevelTable { return s.table }

// Events returns the events emitted by the last Update or restart.
func (s *Session) Events() []Event { return s.events }

// String implements fmt.Stringer for log output.
func (s *Session) String() string {
	return fmt.Sprintf("session{level=%d lives=%d state=%s frame=%d}", s.level, s.lives, s.state, s.frame)
}
