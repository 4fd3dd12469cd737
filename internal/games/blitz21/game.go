// Package blitz21 implements the Blitz 21 falling-card puzzle: cards
// descend a grid, and connected runs summing to exactly 21 clear with
// gravity cascades.
package blitz21

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cardfall/internal/cards"
	"github.com/vovakirdan/cardfall/internal/config"
	"github.com/vovakirdan/cardfall/internal/core"
	"github.com/vovakirdan/cardfall/internal/registry"
)

// Game implements the Blitz 21 session. All mutation happens inside Step;
// Render and Snapshot only read.
type Game struct {
	mode Mode
	rng  *rand.Rand
	deck cards.Source
	cfg  config.Blitz21Config

	// Board state
	board    *Board
	piece    *Piece
	nextCard cards.Card

	// Progression
	tick       uint64
	score      int
	level      int
	fallTicker int
	speed      SpeedCurve
	scoring    Scoring

	// Spawn placement: the column of the most recently locked card.
	lastDroppedX int

	// Result of the most recent lock, kept for one tick for snapshots.
	clearedNow   []Path
	cardsCleared int
	cascades     int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. A non-empty preset
// overrides both the registered variant and any config file difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new easy mode (mixed suits) Blitz 21 game.
func New() *Game {
	return &Game{mode: ModeEasy}
}

// NewHard creates a new hard mode (single suit) Blitz 21 game.
func NewHard() *Game {
	return &Game{mode: ModeHard}
}

func init() {
	registry.Register("blitz21", func() registry.Game {
		return New()
	})
	registry.Register("blitz21_hard", func() registry.Game {
		return NewHard()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeHard {
		return "blitz21_hard"
	}
	return "blitz21"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeHard {
		return "Blitz 21 (Hard)"
	}
	return "Blitz 21"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadBlitz21(configPath)
	if err != nil {
		loaded = config.DefaultBlitz21Config()
	}
	if difficultyPreset != "" {
		if preset, perr := config.ParsePreset(difficultyPreset); perr == nil {
			config.ApplyBlitz21Preset(&loaded, preset)
		}
	}
	// The preset flag or an explicit config file can remap the variant
	// so that its leaderboard follows the rules actually played.
	if difficultyPreset != "" || configPath != "" {
		if m, merr := ParseMode(loaded.Difficulty); merr == nil {
			g.mode = m
		}
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.deck = cards.NewDeck(g.rng)
	g.tick = 0
	g.score = 0
	g.level = 1
	g.fallTicker = 0
	g.cardsCleared = 0
	g.cascades = 0
	g.clearedNow = nil
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.piece = nil
	g.nextCard = g.deck.Draw()

	g.lastDroppedX = g.cfg.Board.SpawnColumn
	if g.lastDroppedX < 0 || g.lastDroppedX >= g.board.Width() {
		g.lastDroppedX = g.board.Width() / 2
	}

	g.speed = SpeedCurve{
		InitialIntervalTicks: g.cfg.Speed.InitialIntervalTicks,
		MinIntervalTicks:     g.cfg.Speed.MinIntervalTicks,
		SpeedUpEveryTicks:    g.cfg.Speed.SpeedUpEveryTicks,
		SpeedUpPercent:       g.cfg.Speed.SpeedUpPercent,
	}
	g.scoring = Scoring{
		PointsPerCard: g.cfg.Scoring.PointsPerCard,
		CascadeBonus:  g.cfg.Scoring.CascadeBonus,
	}

	g.checkScreenSize()
}

// checkScreenSize verifies the board plus HUD and side panel fit.
func (g *Game) checkScreenSize() {
	requiredW := 2 + g.board.Width()*3 + 2 + panelWidth
	requiredH := hudHeight + g.board.Height() + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.clearedNow = nil

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Speed up on a fixed cadence
	if g.speed.SpeedUpEveryTicks > 0 && g.tick%uint64(g.speed.SpeedUpEveryTicks) == 0 {
		g.level++
	}

	// A lock leaves the board without an active piece for the rest of its
	// tick; the replacement spawns here, on the following tick.
	if g.piece == nil {
		g.spawn()
		return core.StepResult{State: g.State()}
	}

	// Horizontal movement. Blocked moves are silently ignored.
	if input.Has(core.ActionLeft) {
		g.piece.MoveLeft(g.board)
	}
	if input.Has(core.ActionRight) {
		g.piece.MoveRight(g.board)
	}

	// Hard drop falls to rest and locks immediately.
	if input.Has(core.ActionHardDrop) {
		g.piece.Drop(g.board)
		g.lock()
		return core.StepResult{State: g.State()}
	}

	// Gravity. Soft drop shortens the interval while held.
	interval := g.speed.IntervalAt(g.level)
	if input.Has(core.ActionSoftDrop) && g.cfg.Speed.SoftDropDivisor > 1 {
		interval = core.Max(1, interval/g.cfg.Speed.SoftDropDivisor)
	}

	g.fallTicker++
	if g.fallTicker >= interval {
		g.fallTicker = 0
		if !g.piece.Descend(g.board) {
			g.lock()
		}
	}

	return core.StepResult{State: g.State()}
}

// spawn places the next card at the top of the last-dropped column.
// A blocked spawn cell ends the session.
func (g *Game) spawn() {
	x := core.Clamp(g.lastDroppedX, 0, g.board.Width()-1)
	if !g.board.Empty(x, 0) {
		g.gameOver = true
		return
	}
	g.piece = &Piece{Card: g.nextCard, X: x, Y: 0}
	g.nextCard = g.deck.Draw()
	g.fallTicker = 0
}

// lock settles the active piece and resolves clears to a fixpoint.
func (g *Game) lock() {
	g.board.Place(g.piece.X, g.piece.Y, g.piece.Card)
	g.lastDroppedX = g.piece.X
	g.piece = nil

	steps := Resolve(g.board, g.mode)
	if len(steps) == 0 {
		return
	}

	g.score += g.scoring.TotalPoints(steps)
	for _, step := range steps {
		g.clearedNow = append(g.clearedNow, step.Paths...)
		g.cardsCleared += step.Removed
	}
	if len(steps) > 1 {
		g.cascades += len(steps) - 1
	}
}

// Layout constants for Render.
const (
	hudHeight  = 2
	panelWidth = 16
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	boxW := g.board.Width()*3 + 2
	boxH := g.board.Height() + 2
	boxX := 2
	boxY := hudHeight

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Settled cards
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if card, ok := g.board.CardAt(x, y); ok {
				g.renderCard(dst, boxX+1+x*3, boxY+1+y, card, suitColor(card))
			}
		}
	}

	// Active piece
	if g.piece != nil {
		g.renderCard(dst, boxX+1+g.piece.X*3, boxY+1+g.piece.Y, g.piece.Card, core.ColorBrightYellow)
	}

	g.renderPanel(dst, boxX+boxW+2, boxY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  (R to restart)", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// suitColor maps a settled card to its display color.
func suitColor(c cards.Card) core.Color {
	if c.Suit.IsRed() {
		return core.ColorBrightRed
	}
	return core.ColorBrightWhite
}

// renderCard draws one card into a 3-column cell.
func (g *Game) renderCard(dst *core.Screen, x, y int, c cards.Card, color core.Color) {
	text := c.String()
	if c.Rank != cards.Ten {
		text += " "
	}
	dst.DrawTextColored(x, y, text, color)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Level: %d", g.Title(), g.score, g.level)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderPanel draws the side panel with the next card and session stats.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	if x >= dst.Width() {
		return
	}
	dst.DrawText(x, y+1, "Next:")
	g.renderCard(dst, x+7, y+1, g.nextCard, suitColor(g.nextCard))
	dst.DrawText(x, y+3, fmt.Sprintf("Cleared: %d", g.cardsCleared))
	dst.DrawText(x, y+4, fmt.Sprintf("Cascades: %d", g.cascades))
	dst.DrawText(x, y+5, fmt.Sprintf("Mode: %s", g.mode))
	dst.DrawText(x, y+7, "A/D move")
	dst.DrawText(x, y+8, "S soft drop")
	dst.DrawText(x, y+9, "Space drop")
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for yy := boxY + 1; yy < boxY+boxH-1; yy++ {
		for xx := boxX + 1; xx < boxX+boxW-1; xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// ModeName returns the difficulty name for score records.
func (g *Game) ModeName() string {
	return g.mode.String()
}

// CardsCleared returns the number of cards removed this session.
func (g *Game) CardsCleared() int {
	return g.cardsCleared
}

// Cascades returns the number of chain iterations beyond the first
// across every lock this session.
func (g *Game) Cascades() int {
	return g.cascades
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
