package blitz21

import "github.com/vovakirdan/cardfall/internal/cards"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// GridCell is one board cell in a snapshot.
type GridCell struct {
	Card     cards.Card
	Occupied bool
}

// ActivePiece describes the falling card, if any.
type ActivePiece struct {
	Card cards.Card
	X    int
	Y    int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Score        int
	Level        int
	FallInterval int
	CardsCleared int
	Cascades     int
	Grid         [][]GridCell // Grid[y][x], row 0 at the top
	Active       *ActivePiece
	NextCard     cards.Card
	JustCleared  []Path // Paths cleared by the most recent lock
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	grid := make([][]GridCell, g.board.Height())
	for y := range grid {
		grid[y] = make([]GridCell, g.board.Width())
		for x := range grid[y] {
			if card, ok := g.board.CardAt(x, y); ok {
				grid[y][x] = GridCell{Card: card, Occupied: true}
			}
		}
	}

	var active *ActivePiece
	if g.piece != nil {
		active = &ActivePiece{Card: g.piece.Card, X: g.piece.X, Y: g.piece.Y}
	}

	cleared := make([]Path, len(g.clearedNow))
	for i, p := range g.clearedNow {
		cleared[i] = p.Clone()
	}

	return Snapshot{
		Tick:         g.tick,
		Mode:         g.mode.String(),
		Score:        g.score,
		Level:        g.level,
		FallInterval: g.speed.IntervalAt(g.level),
		CardsCleared: g.cardsCleared,
		Cascades:     g.cascades,
		Grid:         grid,
		Active:       active,
		NextCard:     g.nextCard,
		JustCleared:  cleared,
		State:        state,
	}
}
