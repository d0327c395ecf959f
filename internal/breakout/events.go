package breakout

// Event is an observational notification emitted by Session.Update.
// Hosts forward events to collaborators such as audio; they never feed back
// into the simulation.
type Event interface {
	breakoutEvent()
}

// BrickHitEvent is emitted when a ball takes a hit point off a brick that
// survives the hit.
type BrickHitEvent struct {
	Type      BrickType
	Color     Color
	HitPoints int // Remaining
}

func (BrickHitEvent) breakoutEvent() {}

// BrickDestroyedEvent is emitted when a brick loses its last hit point.
type BrickDestroyedEvent struct {
	Type  BrickType
	Color Color
	X, Y  float64
}

func (BrickDestroyedEvent) breakoutEvent() {}

// BonusSpawnedEvent is emitted when a destroyed brick drops a bonus.
type BonusSpawnedEvent struct {
	Kind BonusKind
	X, Y float64
}

func (BonusSpawnedEvent) breakoutEvent() {}

// BonusCollectedEvent is emitted when the paddle catches a bonus.
type BonusCollectedEvent struct {
	Kind BonusKind
}

func (BonusCollectedEvent) breakoutEvent() {}

// BallLaunchedEvent is emitted when resting balls leave the paddle.
type BallLaunchedEvent struct {
	Count int
}

func (BallLaunchedEvent) breakoutEvent() {}

// BallLostEvent is emitted for every ball that leaves through the bottom.
type BallLostEvent struct {
	Remaining int // Balls still in play after the loss
}

func (BallLostEvent) breakoutEvent() {}

// LifeLostEvent is emitted when the last ball is lost.
type LifeLostEvent struct {
	Lives int
}

func (LifeLostEvent) breakoutEvent() {}

// LevelStartedEvent is emitted when a level is built.
type LevelStartedEvent struct {
	Level  int
	Name   string
	Bricks int
}

func (LevelStartedEvent) breakoutEvent() {}

// LevelClearedEvent is emitted when the last brick of a level falls.
type LevelClearedEvent struct {
	Level int
}

func (LevelClearedEvent) breakoutEvent() {}

// GameOverEvent is emitted when the last life is lost.
type GameOverEvent struct {
	Level int
}

func (GameOverEvent) breakoutEvent() {}

// VictoryEvent is emitted when the final level is cleared.
type VictoryEvent struct {
	Lives int
}

func (VictoryEvent) breakoutEvent() {}
