package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/cardfall/internal/storage"

	// Register the variants so the scoreboard has modes to list.
	_ "github.com/vovakirdan/cardfall/internal/games/blitz21"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardShowsModeStats(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{100, 50} {
		if _, err := store.SaveScore(storage.ScoreEntry{
			GameID: "blitz21",
			Mode:   "Easy",
			Score:  score,
		}); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()

	if !strings.Contains(view, "Played: 2") {
		t.Errorf("sidebar missing games-played aggregate:\n%s", view)
	}
	if !strings.Contains(view, "Best:   100") {
		t.Errorf("sidebar missing best score:\n%s", view)
	}
	if !strings.Contains(view, "Avg:    75") {
		t.Errorf("sidebar missing average score:\n%s", view)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	view := m.View()

	if !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("empty scoreboard missing placeholder:\n%s", view)
	}
	if strings.Contains(view, "Played:") {
		t.Errorf("stats rendered without a store:\n%s", view)
	}
}
