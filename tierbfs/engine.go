package tierbfs

import "github.com/prixladi/a-mazing/board"

// Run is the result of a successful Solve: the distance table it
// built, the exit position and total distance it terminated on, and
// enough of its own shape to answer WitnessPath on demand. Solve
// returns a nil *Run when no walk from the start position completes
// all tiers.
type Run struct {
	distances Distances
	tiers     TierSequence
	colCount  int
	rowCount  int
	k         int
	exitPos   board.Position
	distance  int32
}

// Score returns the total step count of the run.
func (r *Run) Score() uint32 { return uint32(r.distance) }

// queueEntry is one FIFO entry: a cell reached at a given distance
// while pursuing a given tier index.
type queueEntry struct {
	pos       board.Position
	distance  int32
	tierIndex int
}

// walker encapsulates the mutable state of a single Solve call: the
// board being searched, the dense distance table, and a ring-buffer
// FIFO queue sized to the maximum number of (cell, tier) states that
// can ever be enqueued, mirroring the index-based ring buffer of
// gridgraph's 0-1 BFS generalized from a single visited bit to a
// per-tier distance slot.
type walker struct {
	b        *board.Board
	tiers    TierSequence
	colCount int
	rowCount int
	k        int
	dist     Distances

	queue      []queueEntry
	head, tail int
	count      int
}

func newWalker(b *board.Board, tiers TierSequence) *walker {
	colCount, rowCount := b.ColCount(), b.RowCount()
	k := len(tiers)
	cellCount := colCount * rowCount

	dist := make(Distances, cellCount*k)
	for i := range dist {
		dist[i] = -1
	}

	return &walker{
		b:        b,
		tiers:    tiers,
		colCount: colCount,
		rowCount: rowCount,
		k:        k,
		dist:     dist,
		queue:    make([]queueEntry, cellCount*(k+1)+1),
	}
}

func (w *walker) cellIndex(p board.Position) int {
	return p.Y*w.colCount + p.X
}

func (w *walker) getDist(cellIdx, tierPos int) int32 {
	return w.dist[cellIdx*w.k+tierPos]
}

func (w *walker) setDist(cellIdx, tierPos int, d int32) {
	w.dist[cellIdx*w.k+tierPos] = d
}

func (w *walker) enqueue(e queueEntry) {
	w.queue[w.tail] = e
	w.tail = (w.tail + 1) % len(w.queue)
	w.count++
}

func (w *walker) dequeue() queueEntry {
	e := w.queue[w.head]
	w.head = (w.head + 1) % len(w.queue)
	w.count--

	return e
}

// Solve runs the tiered BFS engine from start over b, pursuing tiers
// in order. It returns nil if no walk from start completes every
// tier.
func Solve(b *board.Board, tiers TierSequence, start board.Position) *Run {
	k := len(tiers)
	if k == 0 {
		return &Run{tiers: tiers, colCount: b.ColCount(), rowCount: b.RowCount(), exitPos: start}
	}

	w := newWalker(b, tiers)
	startCell := w.cellIndex(start)
	w.setDist(startCell, 0, 0)
	w.enqueue(queueEntry{pos: start, distance: 0, tierIndex: 0})

	for w.count > 0 {
		e := w.dequeue()
		if e.tierIndex >= w.k {
			return &Run{
				distances: w.dist,
				tiers:     tiers,
				colCount:  w.colCount,
				rowCount:  w.rowCount,
				k:         w.k,
				exitPos:   e.pos,
				distance:  e.distance,
			}
		}

		currentLevel := tiers[e.tierIndex]
		for _, np := range board.Neighbors(e.pos) {
			if !b.InBounds(np) {
				continue
			}
			tile := b.At(np)
			if tile.Kind == board.Wall {
				continue
			}

			cellIdx := w.cellIndex(np)
			if w.getDist(cellIdx, e.tierIndex) >= 0 {
				continue
			}

			nd := e.distance + 1
			nextTierIndex := e.tierIndex
			if tile.Kind == board.Checkpoint && tile.Level == currentLevel {
				nextTierIndex = e.tierIndex + 1
			}

			w.setDist(cellIdx, e.tierIndex, nd)
			if nextTierIndex != e.tierIndex && nextTierIndex < w.k {
				if w.getDist(cellIdx, nextTierIndex) < 0 {
					w.setDist(cellIdx, nextTierIndex, nd)
				}
			}

			w.enqueue(queueEntry{pos: np, distance: nd, tierIndex: nextTierIndex})
		}
	}

	return nil
}
