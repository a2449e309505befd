package maze_test

import (
	"errors"
	"testing"

	"github.com/prixladi/a-mazing/board"
	"github.com/prixladi/a-mazing/maze"
)

func TestNew_InvalidSize(t *testing.T) {
	_, err := maze.New(maze.Config{ColCount: 1, RowCount: 3})
	var sizeErr *maze.InvalidSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("got %v; want *InvalidSizeError", err)
	}
	if sizeErr.Size != 3 {
		t.Errorf("Size = %d; want 3", sizeErr.Size)
	}
}

func TestNew_MinimumSizeAccepted(t *testing.T) {
	_, err := maze.New(maze.Config{
		ColCount: 2, RowCount: 2,
		Entrypoints: []board.Position{{X: 0, Y: 0}},
		Checkpoints: []maze.CheckpointSpec{{Position: board.Position{X: 1, Y: 1}, Level: 1}},
	})
	if err != nil {
		t.Fatalf("2x2 board rejected: %v", err)
	}
}

func TestNew_NoEntrypoint(t *testing.T) {
	_, err := maze.New(maze.Config{ColCount: 2, RowCount: 2})
	if !errors.Is(err, maze.ErrNoEntrypoint) {
		t.Fatalf("got %v; want ErrNoEntrypoint", err)
	}
}

func TestNew_NoCheckpoint(t *testing.T) {
	_, err := maze.New(maze.Config{
		ColCount: 2, RowCount: 2,
		Entrypoints: []board.Position{{X: 0, Y: 0}},
	})
	if !errors.Is(err, maze.ErrNoCheckpoint) {
		t.Fatalf("got %v; want ErrNoCheckpoint", err)
	}
}

func TestNew_OutOfBoundsAtEachBorder(t *testing.T) {
	base := maze.Config{
		ColCount: 3, RowCount: 3,
		Checkpoints: []maze.CheckpointSpec{{Position: board.Position{X: 1, Y: 1}, Level: 1}},
	}
	cases := []board.Position{
		{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 3},
	}
	for _, pos := range cases {
		cfg := base
		cfg.Entrypoints = []board.Position{pos}
		_, err := maze.New(cfg)
		var oob *maze.OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Errorf("pos %v: got %v; want *OutOfBoundsError", pos, err)
			continue
		}
		if oob.Kind != board.Entrypoint {
			t.Errorf("pos %v: Kind = %v; want Entrypoint", pos, oob.Kind)
		}
	}
}

func TestNew_OverlapReportsFirstPlacedKind(t *testing.T) {
	pos := board.Position{X: 0, Y: 0}

	// entrypoint vs checkpoint: entrypoint placed first.
	_, err := maze.New(maze.Config{
		ColCount: 2, RowCount: 2,
		Entrypoints: []board.Position{pos},
		Checkpoints: []maze.CheckpointSpec{{Position: pos, Level: 1}},
	})
	var overlap *maze.OverlapError
	if !errors.As(err, &overlap) {
		t.Fatalf("got %v; want *OverlapError", err)
	}
	if overlap.Existing != board.Entrypoint || overlap.Incoming != board.Checkpoint {
		t.Errorf("kinds = %v/%v; want Entrypoint/Checkpoint", overlap.Existing, overlap.Incoming)
	}

	// checkpoint vs wall: checkpoint placed first.
	_, err = maze.New(maze.Config{
		ColCount: 2, RowCount: 2,
		Entrypoints: []board.Position{{X: 1, Y: 1}},
		Checkpoints: []maze.CheckpointSpec{{Position: pos, Level: 1}},
		Walls:       []board.Position{pos},
	})
	if !errors.As(err, &overlap) {
		t.Fatalf("got %v; want *OverlapError", err)
	}
	if overlap.Existing != board.Checkpoint || overlap.Incoming != board.Wall {
		t.Errorf("kinds = %v/%v; want Checkpoint/Wall", overlap.Existing, overlap.Incoming)
	}
}

func TestNew_EntrypointsPreserveDeclarationOrder(t *testing.T) {
	eps := []board.Position{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}
	m, err := maze.New(maze.Config{
		ColCount: 3, RowCount: 2,
		Entrypoints: eps,
		Checkpoints: []maze.CheckpointSpec{{Position: board.Position{X: 2, Y: 1}, Level: 1}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := m.Entrypoints()
	if len(got) != len(eps) {
		t.Fatalf("len = %d; want %d", len(got), len(eps))
	}
	for i, p := range eps {
		if got[i] != p {
			t.Errorf("entrypoints[%d] = %v; want %v", i, got[i], p)
		}
	}
}

func TestNew_RoundTripValidation(t *testing.T) {
	// Re-validating a board extracted from a Maze reproduces the same
	// Maze (idempotence property, spec.md §8).
	cfg := maze.Config{
		ColCount: 4, RowCount: 4,
		MaxSoftWallCount: 3,
		Entrypoints:      []board.Position{{X: 0, Y: 0}},
		Checkpoints:      []maze.CheckpointSpec{{Position: board.Position{X: 3, Y: 3}, Level: 1}},
		Walls:            []board.Position{{X: 1, Y: 1}},
	}
	m1, err := maze.New(cfg)
	if err != nil {
		t.Fatalf("first New: %v", err)
	}

	// Rebuild a Config from m1's board and entrypoints alone.
	extracted := maze.Config{
		ColCount: m1.Board().ColCount(), RowCount: m1.Board().RowCount(),
		MaxSoftWallCount: m1.MaxSoftWallCount(),
		Entrypoints:      m1.Entrypoints(),
	}
	for y := 0; y < extracted.RowCount; y++ {
		for x := 0; x < extracted.ColCount; x++ {
			p := board.Position{X: x, Y: y}
			switch tile := m1.Board().At(p); tile.Kind {
			case board.Checkpoint:
				extracted.Checkpoints = append(extracted.Checkpoints, maze.CheckpointSpec{Position: p, Level: tile.Level})
			case board.Wall:
				extracted.Walls = append(extracted.Walls, p)
			}
		}
	}

	m2, err := maze.New(extracted)
	if err != nil {
		t.Fatalf("second New: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := board.Position{X: x, Y: y}
			if m1.Board().At(p) != m2.Board().At(p) {
				t.Fatalf("tile mismatch at %v", p)
			}
		}
	}
}
