package blitz21

// ClearStep records one cascade iteration: the accepted paths that were
// cleared and how many cards they removed.
type ClearStep struct {
	Paths   []Path
	Removed int
}

// Resolve runs the clear-and-gravity engine to a fixpoint: scan the board
// for accepted paths, remove their cells, compact every column downward,
// and rescan until a scan comes back empty. Each clearing iteration
// removes at least two cards, so the loop terminates well within
// width*height iterations.
func Resolve(b *Board, mode Mode) []ClearStep {
	var steps []ClearStep

	for {
		paths := FindClears(b, mode)
		if len(paths) == 0 {
			return steps
		}

		removed := 0
		for _, p := range paths {
			for _, pt := range p {
				if _, ok := b.Remove(pt.X, pt.Y); ok {
					removed++
				}
			}
		}
		b.Compact()

		steps = append(steps, ClearStep{Paths: paths, Removed: removed})
	}
}
