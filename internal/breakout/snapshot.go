package breakout

import "math"

// BallView is the read-only state of a ball.
type BallView struct {
	X, Y         float64
	VX, VY       float64
	HalfW, HalfH float64
	Resting      bool
}

// BrickView is the read-only state of an alive brick.
type BrickView struct {
	X, Y         float64
	HalfW, HalfH float64
	Type         BrickType
	HitPoints    int
	MaxHitPoints int
	Color        Color
}

// BonusView is the read-only state of a falling bonus.
type BonusView struct {
	X, Y         float64
	HalfW, HalfH float64
	Kind         BonusKind
}

// PaddleView is the read-only state of the paddle.
type PaddleView struct {
	X, Y         float64
	HalfW, HalfH float64
	Widened      bool
	WidenLeft    int
}

// Snapshot is a read-only copy of the session after an update.
type Snapshot struct {
	Frame      int
	Field      Bounds
	Lives      int
	Level      int
	LevelCount int
	LevelName  string
	Background string
	State      State

	Paddle  PaddleView
	Balls   []BallView
	Bricks  []BrickView // Alive bricks only
	Bonuses []BonusView

	BricksRemaining int
	Events          []Event
	RNGState        uint64
}

// GameOver reports whether the session ended in defeat.
func (snap *Snapshot) GameOver() bool { return snap.State == StateGameOver }

// Victory reports whether the final level was cleared.
func (snap *Snapshot) Victory() bool { return snap.State == StateVictory }

// Final reports whether the current level is the last one.
func (snap *Snapshot) Final() bool { return snap.Level == snap.LevelCount }

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	spec := s.table.Spec(s.level)
	snap := Snapshot{
		Frame:      s.frame,
		Field:      s.field,
		Lives:      s.lives,
		Level:      s.level,
		LevelCount: s.table.Len(),
		LevelName:  spec.Name,
		Background: spec.Background,
		State:      s.state,
		Paddle: PaddleView{
			X:         s.paddle.X,
			Y:         s.paddle.Y,
			HalfW:     s.paddle.HalfW,
			HalfH:     s.paddle.HalfH,
			Widened:   s.paddle.Widened,
			WidenLeft: s.paddle.WidenLeft,
		},
		Balls:    make([]BallView, 0, len(s.balls)),
		Bonuses:  make([]BonusView, 0, len(s.bonuses)),
		Events:   s.events,
		RNGState: s.rng.State(),
	}

	for _, b := range s.balls {
		snap.Balls = append(snap.Balls, BallView{
			X: b.Pos.X, Y: b.Pos.Y,
			VX: b.Vel.X, VY: b.Vel.Y,
			HalfW: b.HalfW, HalfH: b.HalfH,
			Resting: b.Resting,
		})
	}
	for _, br := range s.bricks {
		if !br.IsAlive() {
			continue
		}
		snap.Bricks = append(snap.Bricks, BrickView{
			X: br.X, Y: br.Y,
			HalfW: br.HalfW, HalfH: br.HalfH,
			Type:         br.Type,
			HitPoints:    br.HitPoints,
			MaxHitPoints: br.MaxHitPoints,
			Color:        br.Color,
		})
	}
	for _, bn := range s.bonuses {
		snap.Bonuses = append(snap.Bonuses, BonusView{
			X: bn.Pos.X, Y: bn.Pos.Y,
			HalfW: bn.HalfW, HalfH: bn.HalfH,
			Kind: bn.Kind,
		})
	}
	snap.BricksRemaining = len(snap.Bricks)
	return snap
}

// Hash returns a simple hash of the snapshot for comparing two runs of the
// same session. Events are not included.
func (snap *Snapshot) Hash() uint64 {
	f := math.Float64bits
	h := uint64(snap.Frame)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + f(snap.Paddle.X)
	h = h*31 + f(snap.Paddle.HalfW)

	for _, b := range snap.Balls {
		h = h*31 + f(b.X)
		h = h*31 + f(b.Y)
		h = h*31 + f(b.VX)
		h = h*31 + f(b.VY)
	}
	for _, br := range snap.Bricks {
		h = h*31 + f(br.X)
		h = h*31 + f(br.Y)
		h = h*31 + uint64(br.HitPoints) //#nosec G115 -- hash computation
		h = h*31 + uint64(br.Color)     //#nosec G115 -- hash computation
	}
	for _, bn := range snap.Bonuses {
		h = h*31 + f(bn.X)
		h = h*31 + f(bn.Y)
		h = h*31 + uint64(bn.Kind) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
