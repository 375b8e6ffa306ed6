package model

// BonusCell is a fixed bonus or penalty at a board position
type BonusCell struct {
	Row   int
	Col   int
	Value int
}

// Upper-left quadrant; mirrored across both axes to fill the board
var quadrantBonuses = []BonusCell{
	{Row: 1, Col: 1, Value: 3},
	{Row: 1, Col: 7, Value: -2},
	{Row: 2, Col: 4, Value: 1},
	{Row: 3, Col: 9, Value: -3},
	{Row: 4, Col: 2, Value: -1},
	{Row: 5, Col: 6, Value: 4},
	{Row: 6, Col: 0, Value: 2},
	{Row: 7, Col: 3, Value: -4},
	{Row: 8, Col: 8, Value: 5},
	{Row: 9, Col: 5, Value: -1},
}

// Rows 0 through BoardRows/2-1; mirrored for the lower half
var endOfGameHalf = []int{10, 8, 6, 5, 4, 3, 2, 1, 0, -1}

// bonusCells expands the quadrant into the full symmetric layout
func bonusCells() []BonusCell {
	cells := make([]BonusCell, 0, 4*len(quadrantBonuses))
	for _, q := range quadrantBonuses {
		mirroredRow := BoardRows - 1 - q.Row
		mirroredCol := BoardCols - 1 - q.Col
		cells = append(cells,
			q,
			BonusCell{Row: q.Row, Col: mirroredCol, Value: q.Value},
			BonusCell{Row: mirroredRow, Col: q.Col, Value: q.Value},
			BonusCell{Row: mirroredRow, Col: mirroredCol, Value: q.Value},
		)
	}
	return cells
}

// endOfGameBonuses returns the end-of-game column's bonus per row
func endOfGameBonuses() [BoardRows]int {
	var bonuses [BoardRows]int
	for row, value := range endOfGameHalf {
		bonuses[row] = value
		bonuses[BoardRows-1-row] = value
	}
	return bonuses
}
