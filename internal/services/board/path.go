package board

import "github.com/threecgreen/nile-sub000/internal/model"

// EvalPlacement checks that a tile continues the river from prev and returns
// the anchor it leaves behind. It knows nothing about board occupancy.
func EvalPlacement(prev model.Anchor, p model.TilePlacement) (model.Anchor, error) {
	if prev.Forward() != p.Coordinates {
		return model.Anchor{}, model.NewCellError(model.ErrNotAligned, p.Coordinates)
	}

	offsets := p.Placement().Offsets()
	switch prev.Coordinates {
	case p.Coordinates.Add(offsets[0]):
		return model.Anchor{Coordinates: p.Coordinates, Offset: offsets[1]}, nil
	case p.Coordinates.Add(offsets[1]):
		return model.Anchor{Coordinates: p.Coordinates, Offset: offsets[0]}, nil
	default:
		return model.Anchor{}, model.NewCellError(model.ErrTileMisaligned, p.Coordinates)
	}
}

// NoCrossover rejects a diagonal step that would cut across the diagonal
// joining the two corner cells it passes between
func NoCrossover(b *model.Board, a model.Anchor) error {
	if !a.Offset.IsDiagonal() {
		return nil
	}

	cornerA := a.Coordinates.Add(model.Offset{Row: a.Offset.Row})
	cornerB := a.Coordinates.Add(model.Offset{Col: a.Offset.Col})
	cellA := b.Cell(cornerA)
	cellB := b.Cell(cornerB)
	if cellA == nil || cellB == nil || cellA.Tile == nil || cellB.Tile == nil {
		return nil
	}

	if pointsAt(cornerA, cellA.Tile, cornerB) && pointsAt(cornerB, cellB.Tile, cornerA) {
		return model.NewCellError(model.ErrCrossover, a.Coordinates, cornerA, cornerB)
	}
	return nil
}

// pointsAt returns true if the tile at from has an exit leading to target
func pointsAt(from model.Coordinates, p *model.Placement, target model.Coordinates) bool {
	for _, o := range p.Offsets() {
		if from.Add(o) == target {
			return true
		}
	}
	return false
}
