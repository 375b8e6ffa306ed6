package scoring

import (
	"sort"

	"github.com/threecgreen/nile-sub000/internal/model"
)

// Service ranks players by score
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Standings orders players by total score, highest first. Tied players share
// a rank and the next rank is skipped (1, 1, 3).
func (s *Service) Standings(players []*model.Player) []model.Standing {
	standings := make([]model.Standing, 0, len(players))
	for _, p := range players {
		standings = append(standings, model.Standing{
			PlayerID:    p.ID,
			DisplayName: p.DisplayName,
			Score:       p.Score.Total(),
		})
	}

	// Stable so ties keep turn order
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	for i := range standings {
		if i > 0 && standings[i].Score == standings[i-1].Score {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}

// DetermineWinner returns the winner's PlayerID, or empty string if tie
func (s *Service) DetermineWinner(standings []model.Standing) model.PlayerID {
	if len(standings) == 0 {
		return ""
	}
	if len(standings) > 1 && standings[1].Rank == 1 {
		return "" // Tie
	}
	return standings[0].PlayerID
}

// IsRankedFirst returns true if projected beats every other score outright.
// A tie for first does not count.
func IsRankedFirst(projected int, others []int) bool {
	for _, o := range others {
		if o >= projected {
			return false
		}
	}
	return true
}

// Interface for dependency injection
type ServiceInterface interface {
	Standings(players []*model.Player) []model.Standing
	DetermineWinner(standings []model.Standing) model.PlayerID
}

var _ ServiceInterface = (*Service)(nil)
