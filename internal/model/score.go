package model

import "fmt"

// TurnScore keeps gains and losses apart so reversing an action is exact.
// Scores produced by placing a tile have Add >= 0 and Sub <= 0.
type TurnScore struct {
	Add int
	Sub int
}

// NewTurnScore scores a tile worth points laid on a cell with the given bonus
func NewTurnScore(points, bonus int) TurnScore {
	if bonus < 0 {
		return TurnScore{Add: points, Sub: bonus}
	}
	return TurnScore{Add: points + bonus}
}

// Plus accumulates another score
func (s TurnScore) Plus(o TurnScore) TurnScore {
	return TurnScore{Add: s.Add + o.Add, Sub: s.Sub + o.Sub}
}

// Neg returns the score that exactly reverses s
func (s TurnScore) Neg() TurnScore {
	return TurnScore{Add: -s.Add, Sub: -s.Sub}
}

// Total returns add + subtract
func (s TurnScore) Total() int {
	return s.Add + s.Sub
}

// IsZero returns true when nothing was scored
func (s TurnScore) IsZero() bool {
	return s.Add == 0 && s.Sub == 0
}

func (s TurnScore) String() string {
	return fmt.Sprintf("+%d %d", s.Add, s.Sub)
}
