package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// Cell geometry: one tile is two columns wide and one row tall, which roughly
// squares up terminal cells.
const tileCols = 2

// RenderFrame draws one snapshot into the screen buffer. The top row is the
// HUD; the rest is the playfield with the camera centered on the player and
// clamped to the world.
func RenderFrame(s *Screen, snap sim.Snapshot, solidAt func(col, row int) bool) {
	s.Clear()

	viewW := s.Width()
	playH := s.Height() - 1
	if viewW <= 0 || playH <= 0 {
		return
	}

	tilePx := snap.TilePx
	if tilePx <= 0 {
		return
	}

	cellX := func(px int) int { return px * tileCols / tilePx }
	cellY := func(px int) int { return px / tilePx }

	worldCols := snap.WorldWidth * tileCols
	worldRows := snap.WorldHeight

	playerCX := cellX(snap.Player.X + snap.Player.W/2)
	playerCY := cellY(snap.Player.Y + snap.Player.H/2)
	camX := clamp(playerCX-viewW/2, 0, maxInt(0, worldCols-viewW))
	camY := clamp(playerCY-playH/2, 0, maxInt(0, worldRows-playH))

	// project converts a world pixel position to screen cells.
	project := func(px, py int) (int, int) {
		return cellX(px) - camX, cellY(py) - camY + 1
	}

	// Solid tiles.
	for row := camY; row < camY+playH && row < worldRows; row++ {
		for col2 := camX; col2 < camX+viewW && col2 < worldCols; col2++ {
			if solidAt(col2/tileCols, row) {
				s.Set(col2-camX, row-camY+1, '█', ColorGray)
			}
		}
	}

	// Goal pole with its flag.
	poleX, poleTop := project(snap.GoalPole.X+snap.GoalPole.W/2, snap.GoalPole.Y)
	poleRows := snap.GoalPole.H / tilePx
	for i := 0; i < poleRows; i++ {
		s.Set(poleX, poleTop+i, '│', ColorBrightGreen)
	}
	s.Set(poleX+1, poleTop, '▶', ColorBrightRed)

	// Pickups.
	for _, c := range snap.Coins {
		x, y := project(c.X, c.Y)
		s.Set(x, y, 'o', ColorBrightYellow)
	}
	for _, m := range snap.Mushrooms {
		x, y := project(m.X, m.Y)
		s.Set(x, y, '∩', ColorBrightRed)
	}

	// Enemies.
	for _, e := range snap.Enemies {
		if !e.Alive {
			continue
		}
		x, y := project(e.X+e.W/2, e.Y+e.H/2)
		s.Set(x-1, y, '>', ColorRed)
		s.Set(x, y, '<', ColorRed)
	}

	// Player, with flicker while the hurt grace window is active.
	drawPlayer := !snap.Invuln || (snap.Tick/4)%2 == 0
	if drawPlayer {
		x, y := project(snap.Player.X+snap.Player.W/2, snap.Player.Y+snap.Player.H/2)
		color := ColorBrightWhite
		if snap.Powered {
			color = ColorBrightYellow
		}
		s.Set(x, y, '@', color)
	}

	drawHUD(s, snap)

	switch snap.Phase {
	case sim.PhaseTitle:
		drawTitleOverlay(s)
	case sim.PhaseLevelComplete:
		drawCompleteOverlay(s, snap)
	}
}

func drawHUD(s *Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" SCORE %06d   HI %06d", snap.Score, snap.HighScore)
	s.DrawText(0, 0, hud, ColorBrightWhite)
	if snap.Powered {
		s.DrawText(len(hud)+3, 0, "POWERED", ColorBrightYellow)
	}
}

func drawTitleOverlay(s *Screen) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, "T U I   P L A T F O R M E R", ColorBrightYellow)
	s.DrawTextCentered(mid, "press enter to start", ColorBrightWhite)
	s.DrawTextCentered(mid+2, "←/→ move   space jump   r restart   esc quit", ColorGray)
}

func drawCompleteOverlay(s *Screen, snap sim.Snapshot) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-1, "LEVEL COMPLETE!", ColorBrightGreen)
	s.DrawTextCentered(mid+1, fmt.Sprintf("score %d", snap.Score), ColorBrightWhite)
	s.DrawTextCentered(mid+3, "r play again   esc title", ColorGray)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
