package blitz21

import (
	"sort"
	"strconv"
	"strings"
)

// Path is an ordered sequence of distinct, pairwise 4-adjacent grid
// positions whose card values can sum to exactly 21. Paths are derived
// from a board scan, never stored between scans.
type Path []Point

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// key builds a stable map key for deduplication.
func (p Path) key() string {
	var sb strings.Builder
	for _, pt := range p {
		sb.WriteString(strconv.Itoa(pt.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(pt.Y))
		sb.WriteByte(';')
	}
	return sb.String()
}

// canonical orients the path so its lexicographically-smaller endpoint
// (row-major order) comes first. A path and its reverse are the same path.
func (p Path) canonical(width int) Path {
	if len(p) < 2 {
		return p
	}
	first := p[0].Y*width + p[0].X
	last := p[len(p)-1].Y*width + p[len(p)-1].X
	if last < first {
		rev := make(Path, len(p))
		for i, pt := range p {
			rev[len(p)-1-i] = pt
		}
		return rev
	}
	return p
}

// less orders paths for the acceptance pass: longer paths first, ties
// broken by comparing positions in row-major order, which matches the
// order a top-left scan would discover them in.
func (p Path) less(other Path, width int) bool {
	if len(p) != len(other) {
		return len(p) > len(other)
	}
	for i := range p {
		a := p[i].Y*width + p[i].X
		b := other[i].Y*width + other[i].X
		if a != b {
			return a < b
		}
	}
	return false
}

// canReach21 reports whether a set of cards with minimum sum minSum
// (every Ace counted as 1) and aces Aces among them can total exactly 21
// under some assignment of each Ace to 1 or 11. Promoting an Ace adds 10,
// so a total of 21 is reachable iff the gap is a non-negative multiple of
// 10 covered by the available Aces.
func canReach21(minSum, aces int) bool {
	gap := 21 - minSum
	return gap >= 0 && gap%10 == 0 && gap/10 <= aces
}

// neighborhood is the fixed 4-directional adjacency used by the finder.
var neighborhood = [4]Point{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
	{X: 1, Y: 0},  // right
}

// pathSearch carries the mutable state of one board scan. The board is
// never modified; visited marks cells of the current partial path only.
type pathSearch struct {
	board   *Board
	mode    Mode
	visited []bool
	path    Path
	seen    map[string]struct{}
	found   []Path
}

// FindPaths enumerates every valid path on the board: 4-adjacent, no cell
// repeated, length >= 2, values summing to exactly 21 under some Ace
// assignment, and (Hard mode) a single suit throughout. The result is
// deduplicated (a path equals its reverse) and deterministically ordered,
// so scanning the same board twice yields the identical slice.
func FindPaths(b *Board, mode Mode) []Path {
	s := &pathSearch{
		board:   b,
		mode:    mode,
		visited: make([]bool, b.Width()*b.Height()),
		seen:    make(map[string]struct{}),
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if _, ok := b.CardAt(x, y); ok {
				s.extend(x, y, 0, 0)
			}
		}
	}

	sort.Slice(s.found, func(i, j int) bool {
		return s.found[i].less(s.found[j], b.Width())
	})
	return s.found
}

// extend grows the current partial path onto (x, y) and recurses.
// minSum counts every Ace low; a branch is pruned only once no Ace
// resolution can keep the total at or under 21.
func (s *pathSearch) extend(x, y, minSum, aces int) {
	card, _ := s.board.CardAt(x, y)

	minSum += card.Rank.BaseValue()
	if card.IsAce() {
		aces++
	}
	if minSum > 21 {
		return // every resolution already busts
	}

	idx := y*s.board.Width() + x
	s.visited[idx] = true
	s.path = append(s.path, Point{X: x, Y: y})

	if len(s.path) >= 2 && canReach21(minSum, aces) {
		s.record()
	}

	// Cards are worth at least 1, so once the low-Ace sum hits 21 no
	// extension can stay valid.
	if minSum < 21 {
		for _, d := range neighborhood {
			nx, ny := x+d.X, y+d.Y
			next, ok := s.board.CardAt(nx, ny)
			if !ok || s.visited[ny*s.board.Width()+nx] {
				continue
			}
			if s.mode == ModeHard && next.Suit != card.Suit {
				continue
			}
			s.extend(nx, ny, minSum, aces)
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.visited[idx] = false
}

// record stores the current path in canonical orientation, once.
func (s *pathSearch) record() {
	canon := s.path.Clone().canonical(s.board.Width())
	k := canon.key()
	if _, dup := s.seen[k]; dup {
		return
	}
	s.seen[k] = struct{}{}
	s.found = append(s.found, canon)
}

// AcceptPaths selects the clear set from all valid paths: longer paths
// win, length ties go to the path closest to the top-left in row-major
// order, and every cell consumed by an accepted path disqualifies later
// candidates that touch it. Input must already be in FindPaths order.
func AcceptPaths(paths []Path) []Path {
	used := make(map[Point]struct{})
	var accepted []Path

	for _, p := range paths {
		conflict := false
		for _, pt := range p {
			if _, taken := used[pt]; taken {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		for _, pt := range p {
			used[pt] = struct{}{}
		}
		accepted = append(accepted, p)
	}
	return accepted
}

// FindClears runs a full scan and returns the accepted, non-overlapping
// clear set for the board. Deterministic and idempotent per grid state.
func FindClears(b *Board, mode Mode) []Path {
	return AcceptPaths(FindPaths(b, mode))
}
