package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// DrawSnapshot draws one frame of the session into screen.
func DrawSnapshot(screen *core.Screen, layout Layout, assets *Assets, snap *breakout.Snapshot, paused bool) {
	screen.Clear()

	if layout.TooSmall() {
		screen.DrawTextCentered(screen.Height()/2, "Terminal too small", assets.Notice)
		return
	}

	drawHUD(screen, assets, snap)
	screen.DrawBox(layout.Frame, assets.Border)

	for i := range snap.Bricks {
		drawBrick(screen, layout, assets, &snap.Bricks[i])
	}
	for _, bn := range snap.Bonuses {
		s, ok := assets.Bonus(bn.Kind)
		if !ok {
			continue
		}
		screen.SetColored(layout.CellX(bn.X), layout.CellY(bn.Y), s.Glyph, s.Color)
	}
	drawPaddle(screen, layout, assets, snap.Paddle)
	for _, b := range snap.Balls {
		screen.SetColored(layout.CellX(b.X), layout.CellY(b.Y), assets.Ball.Glyph, assets.Ball.Color)
	}

	drawNotice(screen, layout, assets, snap, paused)
}

func drawHUD(screen *core.Screen, assets *Assets, snap *breakout.Snapshot) {
	lives := strings.Repeat("♥", min(snap.Lives, 10))
	if snap.Lives > 10 {
		lives = fmt.Sprintf("♥x%d", snap.Lives)
	}
	left := fmt.Sprintf(" Level %d/%d  %s", snap.Level, snap.LevelCount, snap.LevelName)
	if snap.Background != "" {
		left += fmt.Sprintf(" (%s)", filepath.Base(snap.Background))
	}
	right := fmt.Sprintf("Bricks %d  %s ", snap.BricksRemaining, lives)

	screen.DrawTextColored(0, 0, left, assets.HUD)
	screen.DrawTextColored(screen.Width()-len([]rune(right)), 0, right, assets.HUD)
}

func drawBrick(screen *core.Screen, layout Layout, assets *Assets, br *breakout.BrickView) {
	s, ok := assets.Brick(BrickKey{Type: br.Type, HitPoints: br.HitPoints, Color: br.Color})
	if !ok {
		return
	}
	x0, x1 := layout.Span(br.X-br.HalfW, br.X+br.HalfW, layout.CellX)
	y0, y1 := layout.Span(br.Y-br.HalfH, br.Y+br.HalfH, layout.CellY)
	screen.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), s.Glyph, s.Color)
}

func drawPaddle(screen *core.Screen, layout Layout, assets *Assets, p breakout.PaddleView) {
	s := assets.Paddle
	if p.Widened {
		s = assets.PaddleWide
	}
	x0, x1 := layout.Span(p.X-p.HalfW, p.X+p.HalfW, layout.CellX)
	y := layout.CellY(p.Y)
	for x := x0; x <= x1; x++ {
		screen.SetColored(x, y, s.Glyph, s.Color)
	}
}

func drawNotice(screen *core.Screen, layout Layout, assets *Assets, snap *breakout.Snapshot, paused bool) {
	mid := layout.Area.Y + layout.Area.H*2/3
	switch {
	case snap.GameOver():
		screen.DrawTextCentered(mid, " GAME OVER ", assets.Notice)
		screen.DrawTextCentered(mid+1, " r: new game  l: retry level  q: quit ", assets.Notice)
	case snap.Victory():
		screen.DrawTextCentered(mid, " VICTORY! ", assets.Notice)
		screen.DrawTextCentered(mid+1, fmt.Sprintf(" all %d levels cleared - r: play again ", snap.LevelCount), assets.Notice)
	case paused:
		screen.DrawTextCentered(mid, " PAUSED ", assets.Notice)
	case resting(snap):
		screen.DrawTextCentered(mid, "space / click to launch", assets.LaunchPrompt)
	}
}

// resting reports whether every ball waits on the paddle.
func resting(snap *breakout.Snapshot) bool {
	for _, b := range snap.Balls {
		if !b.Resting {
			return false
		}
	}
	return len(snap.Balls) > 0
}
