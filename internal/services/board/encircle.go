package board

import "github.com/threecgreen/nile-sub000/internal/model"

// Directions tried when looking for an escape; heading east first reaches the
// end-of-game column fastest on an open board
var escapeOrder = []model.Direction{
	model.East, model.NorthEast, model.SouthEast,
	model.North, model.South,
	model.NorthWest, model.SouthWest, model.West,
}

// NoEncircles proves that a river ending at a can still be extended to the
// end-of-game column. It searches on a clone; b is never modified.
func NoEncircles(b *model.Board, a model.Anchor) error {
	if model.IsEndOfGameColumn(a.Coordinates) {
		return nil
	}

	search := &escapeSearch{
		board:   b.Clone(),
		visited: model.NewCoordinateSet(),
	}
	search.board.SetLastPlacement(a)
	if search.escape(a) {
		return nil
	}

	coords := []model.Coordinates{a.Coordinates}
	forward := a.Forward()
	if b.Cell(forward) != nil {
		for _, o := range openMoves(b, forward, a.Offset.Neg()) {
			coords = append(coords, forward.Add(o))
		}
	}
	return model.NewCellError(model.ErrEncircled, coords...)
}

// escapeSearch is a depth-first search that lays speculative tiles on its own
// board and takes them back up on the way out
type escapeSearch struct {
	board   *model.Board
	visited model.CoordinateSet
}

func (s *escapeSearch) escape(a model.Anchor) bool {
	forward := a.Forward()
	cell := s.board.Cell(forward)
	if cell == nil || cell.Tile != nil || s.visited.Has(forward) {
		return false
	}
	s.visited.Add(forward)

	entry := a.Offset.Neg()
	if model.IsEndOfGameColumn(forward) {
		_, _, ok := model.PlacementFor(entry, EndOfGameEntry)
		return ok
	}

	for _, o := range openMoves(s.board, forward, entry) {
		if s.visited.Has(forward.Add(o)) {
			continue
		}
		path, rotation, ok := model.PlacementFor(entry, o)
		if !ok {
			continue
		}
		placement := model.Placement{PathType: model.NormalPath(path), Rotation: rotation}
		if _, err := s.board.PlaceTile(forward, placement); err != nil {
			continue
		}
		escaped := s.escape(model.Anchor{Coordinates: forward, Offset: o})
		s.board.RemoveTile(forward)
		if escaped {
			return true
		}
	}
	return false
}

// openMoves lists the exits from c that lead to an empty cell without
// crossing an existing diagonal
func openMoves(b *model.Board, c model.Coordinates, entry model.Offset) []model.Offset {
	var open []model.Offset
	for _, d := range escapeOrder {
		o := d.Offset()
		if o == entry {
			continue
		}
		target := b.Cell(c.Add(o))
		if target == nil || target.Tile != nil {
			continue
		}
		if NoCrossover(b, model.Anchor{Coordinates: c, Offset: o}) != nil {
			continue
		}
		open = append(open, o)
	}
	return open
}
