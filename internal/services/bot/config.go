package bot

// SearchConfig holds the weights and limits of the brute-force search
type SearchConfig struct {
	EmptyRackBonus     int // Added for the step that plays the last tile in hand
	EndGameWinBonus    int // Ending the game while ranked first
	EndGameLossPenalty int // Ending the game while not ranked first
	MaxStates          int // Placements tried before the search gives up
}

// DefaultSearchConfig returns the standard search weights
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		EmptyRackBonus:     20,
		EndGameWinBonus:    1000,
		EndGameLossPenalty: -1000,
		MaxStates:          1_000_000,
	}
}

// withDefaults fills zero fields from DefaultSearchConfig
func (c SearchConfig) withDefaults() SearchConfig {
	d := DefaultSearchConfig()
	if c.EmptyRackBonus == 0 {
		c.EmptyRackBonus = d.EmptyRackBonus
	}
	if c.EndGameWinBonus == 0 {
		c.EndGameWinBonus = d.EndGameWinBonus
	}
	if c.EndGameLossPenalty == 0 {
		c.EndGameLossPenalty = d.EndGameLossPenalty
	}
	if c.MaxStates <= 0 {
		c.MaxStates = d.MaxStates
	}
	return c
}
