package model

// Bot strategy constants
const (
	BotStrategyBruteForce = "brute-force"
	BotStrategyRandom     = "random"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyBruteForce:
		return "Brute force"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyBruteForce, BotStrategyRandom}
}
