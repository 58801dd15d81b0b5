package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/units"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Score values awarded by the orchestrator.
const (
	coinScore     = 200
	mushroomScore = 1000
	stompScore    = 100
	goalScore     = 500
)

// GameState is the root aggregate. It owns the World exclusively; nothing
// outside Step mutates it. A fresh run is a fresh GameState with HighScore 0;
// persistence across processes is a boundary concern.
type GameState struct {
	Phase Phase
	Tick  uint64

	Config  Config
	World   *world.World
	Player  Player
	Enemies []Enemy

	// Immutable spawn snapshots; the live pickup lists in World are restored
	// from these on every level reset, so nothing is ever "un-deleted".
	CoinSpawns     []units.Vec2
	MushroomSpawns []units.Vec2

	Score     uint32
	HighScore uint32
}

// NewGame constructs the initial state, taking ownership of w.
func NewGame(w *world.World, cfg Config) *GameState {
	s := &GameState{
		Phase:  PhaseTitle,
		Config: cfg,
		World:  w,
	}

	s.Player.Reset(w.PlayerSpawn, &s.Config)

	s.Enemies = make([]Enemy, len(w.EnemySpawns))
	for i, spawn := range w.EnemySpawns {
		s.Enemies[i].Reset(spawn, w, &s.Config)
	}

	s.CoinSpawns = append([]units.Vec2(nil), w.Coins...)
	s.MushroomSpawns = append([]units.Vec2(nil), w.Mushrooms...)
	return s
}

// Step advances the simulation by exactly one tick. The tick counter
// increments unconditionally, in every phase, before anything else.
func (s *GameState) Step(in StepInput) {
	s.Tick++

	switch s.Phase {
	case PhaseTitle:
		if in.StartPressed {
			s.Phase = PhasePlaying
			s.restartRun()
		}

	case PhasePlaying:
		if in.QuitPressed {
			s.Phase = PhaseTitle
			return
		}
		if in.RestartPressed {
			s.restartRun()
			return
		}

		s.Player.Update(in, s.World, &s.Config)
		for i := range s.Enemies {
			s.Enemies[i].Update(s.World, &s.Config)
		}

		s.collectCoins()
		s.collectMushrooms()
		s.resolveCombat()
		s.checkGoal()
		s.checkFallOff()

	case PhaseLevelComplete:
		if in.QuitPressed {
			s.Phase = PhaseTitle
			return
		}
		if in.RestartPressed {
			s.restartRun()
			s.Phase = PhasePlaying
		}
	}
}

// resetLevel restores the level to its spawn state: player and enemies back
// to their spawn tiles, pickups restored from the immutable snapshots.
func (s *GameState) resetLevel() {
	s.Player.Reset(s.World.PlayerSpawn, &s.Config)
	s.World.Coins = append(s.World.Coins[:0:0], s.CoinSpawns...)
	s.World.Mushrooms = append(s.World.Mushrooms[:0:0], s.MushroomSpawns...)

	n := len(s.Enemies)
	if len(s.World.EnemySpawns) < n {
		n = len(s.World.EnemySpawns)
	}
	for i := 0; i < n; i++ {
		s.Enemies[i].Reset(s.World.EnemySpawns[i], s.World, &s.Config)
	}
}

func (s *GameState) restartRun() {
	s.Score = 0
	s.resetLevel()
}

func (s *GameState) playerDied() {
	s.Score = 0
	s.resetLevel()
}

// AddScore adds points with saturation at the uint32 boundary and tracks the
// running high score.
func (s *GameState) AddScore(points uint32) {
	sum := uint64(s.Score) + uint64(points)
	if sum > math.MaxUint32 {
		s.Score = math.MaxUint32
	} else {
		s.Score = uint32(sum)
	}
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// collectCoins removes every coin whose pickup square (radius 0.2 tiles)
// overlaps the player, keeping the rest in original order.
func (s *GameState) collectCoins() {
	playerRect := s.Player.Rect()
	radius := s.Config.TileSize / 5
	size := radius * 2

	collected := uint32(0)
	kept := s.World.Coins[:0]
	for _, coin := range s.World.Coins {
		coinRect := units.Rect{X: coin.X - radius, Y: coin.Y - radius, W: size, H: size}
		if physics.RectsIntersect(playerRect, coinRect) {
			collected++
		} else {
			kept = append(kept, coin)
		}
	}
	s.World.Coins = kept

	if collected > 0 {
		s.AddScore(collected * coinScore)
	}
}

// collectMushrooms removes overlapped mushrooms and powers the player up.
func (s *GameState) collectMushrooms() {
	playerRect := s.Player.Rect()
	size := s.Config.MushroomSize

	collected := uint32(0)
	kept := s.World.Mushrooms[:0]
	for _, pos := range s.World.Mushrooms {
		shroomRect := units.Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
		if physics.RectsIntersect(playerRect, shroomRect) {
			collected++
		} else {
			kept = append(kept, pos)
		}
	}
	s.World.Mushrooms = kept

	if collected > 0 {
		s.Player.Powered = true
		s.AddScore(collected * mushroomScore)
	}
}

// resolveCombat resolves player-enemy contact. Only the first live enemy
// overlapping the player (in index order) determines the outcome for this
// tick; later overlaps are ignored.
func (s *GameState) resolveCombat() {
	playerRect := s.Player.Rect()
	playerBottom := playerRect.Y + playerRect.H

	stompedIndex := -1
	powerDownDir := 0
	died := false

	for i := range s.Enemies {
		enemy := &s.Enemies[i]
		if !enemy.Alive {
			continue
		}

		enemyRect := enemy.Rect()
		if !physics.RectsIntersect(playerRect, enemyRect) {
			continue
		}

		stompThreshold := enemyRect.Y + units.PxToUnits(6)
		if s.Player.Vel.Y > 0 && playerBottom <= stompThreshold {
			stompedIndex = i
		} else if s.Player.IsInvulnerable() {
			// Grace period absorbs side hits.
		} else if s.Player.Powered {
			playerCenterX := playerRect.X + playerRect.W/2
			enemyCenterX := enemyRect.X + enemyRect.W/2
			if enemyCenterX < playerCenterX {
				powerDownDir = 1
			} else {
				powerDownDir = -1
			}
		} else {
			died = true
		}
		break
	}

	switch {
	case stompedIndex >= 0:
		s.Enemies[stompedIndex].Alive = false
		s.Player.Vel.Y = -s.Config.StompBounce
		s.AddScore(stompScore)
	case powerDownDir != 0:
		s.Player.Powered = false
		s.Player.InvulnTimer = max32(0, s.Config.HurtInvulnTime)
		s.Player.Vel.X = units.Units(powerDownDir) * s.Config.HurtKnockbackX
		s.Player.Vel.Y = -s.Config.HurtKnockbackY
		s.Player.Pos.X += units.Units(powerDownDir) * units.PxToUnits(4)
		s.Player.OnGround = false
	case died:
		s.playerDied()
	}
}

func (s *GameState) checkGoal() {
	goalRect := s.World.GoalTriggerRect()
	if physics.RectsIntersect(s.Player.Rect(), goalRect) {
		s.AddScore(goalScore)
		s.Phase = PhaseLevelComplete
	}
}

func (s *GameState) checkFallOff() {
	fallLimit := units.Units(s.World.Height)*s.Config.TileSize + units.PxToUnits(200)
	if s.Player.Pos.Y > fallLimit {
		s.playerDied()
	}
}
