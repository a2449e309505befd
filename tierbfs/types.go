package tierbfs

import (
	"sort"

	"github.com/prixladi/a-mazing/board"
)

// TierSequence is the ordered, deduplicated sequence of checkpoint
// levels a run must touch in order. Index i is "tier position i";
// tier position k (len(sequence)) denotes "all tiers complete".
type TierSequence []int32

// Distances is the dense per-cell, per-tier distance table built by
// Solve. For cell index c and tier position t (0 <= t < k), entry
// c*k+t holds the BFS distance recorded for that cell at that tier
// level, or -1 if no such distance was ever recorded.
type Distances []int32

// DeriveTiers scans b for Checkpoint tiles and returns their distinct
// levels in ascending order. The result is independent of any soft
// walls placed on b, since walls never change a tile's Kind from
// Checkpoint to something else; callers may derive it once from a
// maze's original board and reuse it across runs.
func DeriveTiers(b *board.Board) TierSequence {
	seen := make(map[int32]struct{})
	for y := 0; y < b.RowCount(); y++ {
		for x := 0; x < b.ColCount(); x++ {
			tile := b.At(board.Position{X: x, Y: y})
			if tile.Kind == board.Checkpoint {
				seen[tile.Level] = struct{}{}
			}
		}
	}

	tiers := make(TierSequence, 0, len(seen))
	for level := range seen {
		tiers = append(tiers, level)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })

	return tiers
}
